package http

import (
	"github.com/gin-gonic/gin"

	"crawler-console/pkg/response"
)

// Upload - Handler cho POST /sessions/:session_id/files
// Accepts multipart "files", with an optional "paths" value per file.
func (h *handler) Upload(c *gin.Context) {
	ctx := c.Request.Context()

	s, err := h.processSession(c)
	if err != nil {
		response.Error(c, h.mapError(err))
		return
	}

	inputs, opened, err := h.processUploadRequest(c)
	if err != nil {
		h.l.Warnf(ctx, "ingestion.delivery.http.Upload: processUploadRequest failed: %v", err)
		response.Error(c, err)
		return
	}
	defer closeAll(opened)

	output := s.Files.IngestBatch(ctx, inputs)
	response.OK(c, newBatchResp(output))
}

// Import - Handler cho POST /sessions/:session_id/files/import
func (h *handler) Import(c *gin.Context) {
	ctx := c.Request.Context()

	s, err := h.processSession(c)
	if err != nil {
		response.Error(c, h.mapError(err))
		return
	}

	req, err := h.processImportRequest(c)
	if err != nil {
		h.l.Warnf(ctx, "ingestion.delivery.http.Import: processImportRequest failed: %v", err)
		response.Error(c, err)
		return
	}

	output, err := s.Files.ImportFromStorage(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "ingestion.delivery.http.Import: usecase ImportFromStorage failed: %v", err)
		response.Error(c, h.mapError(err))
		return
	}
	response.OK(c, newBatchResp(output))
}

// List - Handler cho GET /sessions/:session_id/files
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	s, err := h.processSession(c)
	if err != nil {
		response.Error(c, h.mapError(err))
		return
	}

	q, err := h.processListRequest(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, newListResp(s.Files.List(ctx), q))
}

// Remove - Handler cho DELETE /sessions/:session_id/files/:name
func (h *handler) Remove(c *gin.Context) {
	ctx := c.Request.Context()

	s, err := h.processSession(c)
	if err != nil {
		response.Error(c, h.mapError(err))
		return
	}

	if err := s.Files.Remove(ctx, c.Param("name")); err != nil {
		h.l.Warnf(ctx, "ingestion.delivery.http.Remove: usecase Remove failed: %v", err)
		response.Error(c, h.mapError(err))
		return
	}
	response.OK(c, nil)
}

// Clear - Handler cho DELETE /sessions/:session_id/files
func (h *handler) Clear(c *gin.Context) {
	s, err := h.processSession(c)
	if err != nil {
		response.Error(c, h.mapError(err))
		return
	}

	s.Files.Clear(c.Request.Context())
	response.OK(c, nil)
}
