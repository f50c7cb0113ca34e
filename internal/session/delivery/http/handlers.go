package http

import (
	"github.com/gin-gonic/gin"

	"crawler-console/pkg/response"
)

// Create - Handler cho POST /sessions
func (h *handler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	s, err := h.uc.Create(ctx)
	if err != nil {
		h.l.Errorf(ctx, "session.delivery.http.Create: usecase Create failed: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newSessionResp(s))
}

// Delete - Handler cho DELETE /sessions/:session_id
func (h *handler) Delete(c *gin.Context) {
	ctx := c.Request.Context()

	id := c.Param("session_id")
	if err := h.uc.Delete(ctx, id); err != nil {
		h.l.Warnf(ctx, "session.delivery.http.Delete: usecase Delete failed: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, nil)
}
