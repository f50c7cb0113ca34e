package http

import (
	"github.com/gin-gonic/gin"

	"crawler-console/internal/middleware"
)

func (h *handler) RegisterRoutes(r *gin.RouterGroup, mw middleware.Middleware) {
	r.POST("/sessions/:session_id/transform", h.Transform)
	r.GET("/transform/jobs/:job_id", h.GetProgress)
}
