package http

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"crawler-console/internal/transform"
	"crawler-console/pkg/response"
)

// Transform - Handler cho POST /sessions/:session_id/transform
// Responds with the zip archive itself.
func (h *handler) Transform(c *gin.Context) {
	ctx := c.Request.Context()

	req, s, files, err := h.processTransformRequest(c)
	if err != nil {
		h.l.Warnf(ctx, "transform.delivery.http.Transform: processTransformRequest failed: %v", err)
		response.Error(c, err)
		return
	}

	output, err := h.uc.Transform(ctx, transform.TransformInput{
		JobID:  req.JobID,
		Files:  files,
		Format: req.format(),
	}, func(p transform.Progress) {
		h.l.Debugf(ctx, "transform.delivery.http.Transform: job %s %d/%d %s", p.JobID, p.Completed, p.Total, p.CurrentFile)
	})
	if err != nil {
		h.l.Errorf(ctx, "transform.delivery.http.Transform: usecase Transform failed: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	if req.ClearAfter {
		s.Files.Clear(ctx)
	}

	c.Header(headerJobID, output.JobID)
	c.Header("Content-Disposition", fmt.Sprintf(dispositionFormat, output.ArchiveName))
	c.Data(http.StatusOK, contentTypeZip, output.Archive)
}

// GetProgress - Handler cho GET /transform/jobs/:job_id
func (h *handler) GetProgress(c *gin.Context) {
	ctx := c.Request.Context()

	p, err := h.uc.GetProgress(ctx, c.Param("job_id"))
	if err != nil {
		h.l.Warnf(ctx, "transform.delivery.http.GetProgress: usecase GetProgress failed: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newProgressResp(p))
}
