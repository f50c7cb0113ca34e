package http

import (
	"github.com/gin-gonic/gin"

	"crawler-console/internal/middleware"
	"crawler-console/internal/session"
	"crawler-console/internal/transform"
	"crawler-console/pkg/log"
)

// Handler - Interface cho transform HTTP handler
type Handler interface {
	RegisterRoutes(r *gin.RouterGroup, mw middleware.Middleware)
}

type handler struct {
	l        log.Logger
	uc       transform.UseCase
	sessions session.UseCase
}

// New - Factory
func New(l log.Logger, uc transform.UseCase, sessions session.UseCase) Handler {
	return &handler{l: l, uc: uc, sessions: sessions}
}
