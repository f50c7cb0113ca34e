package http

import (
	"github.com/gin-gonic/gin"

	"crawler-console/internal/middleware"
)

func (h *handler) RegisterRoutes(r *gin.RouterGroup, mw middleware.Middleware) {
	sessions := r.Group("/sessions")
	{
		sessions.POST("", h.Create)
		sessions.DELETE("/:session_id", h.Delete)
	}
}
