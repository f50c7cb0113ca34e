package http

import (
	"github.com/gin-gonic/gin"

	"crawler-console/internal/middleware"
	"crawler-console/internal/session"
	"crawler-console/pkg/log"
)

// Handler - Interface cho file HTTP handler
type Handler interface {
	RegisterRoutes(r *gin.RouterGroup, mw middleware.Middleware)
}

type handler struct {
	l              log.Logger
	sessions       session.UseCase
	maxUploadBytes int64
}

// New - Factory. Files live inside sessions, so every route resolves the
// session first.
func New(l log.Logger, sessions session.UseCase, maxUploadBytes int64) Handler {
	return &handler{l: l, sessions: sessions, maxUploadBytes: maxUploadBytes}
}
