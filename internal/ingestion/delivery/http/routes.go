package http

import (
	"github.com/gin-gonic/gin"

	"crawler-console/internal/middleware"
)

func (h *handler) RegisterRoutes(r *gin.RouterGroup, mw middleware.Middleware) {
	files := r.Group("/sessions/:session_id/files")
	{
		files.POST("", mw.LimitBody(h.maxUploadBytes), h.Upload)
		files.POST("/import", h.Import)
		files.GET("", h.List)
		files.DELETE("/:name", h.Remove)
		files.DELETE("", h.Clear)
	}
}
