package http

import (
	"mime/multipart"

	"github.com/gin-gonic/gin"

	"crawler-console/internal/ingestion"
	"crawler-console/internal/session"
	"crawler-console/pkg/paginator"
)

func (h *handler) processSession(c *gin.Context) (session.Session, error) {
	return h.sessions.Get(c.Request.Context(), c.Param("session_id"))
}

// processUploadRequest opens every uploaded file. The caller closes them.
func (h *handler) processUploadRequest(c *gin.Context) ([]ingestion.IngestInput, []multipart.File, error) {
	form, err := c.MultipartForm()
	if err != nil {
		return nil, nil, errInvalidUpload
	}

	headers := form.File[formFieldFiles]
	if len(headers) == 0 {
		return nil, nil, errNoFiles
	}
	paths := form.Value[formFieldPaths]

	inputs := make([]ingestion.IngestInput, 0, len(headers))
	opened := make([]multipart.File, 0, len(headers))
	for i, fh := range headers {
		f, err := fh.Open()
		if err != nil {
			closeAll(opened)
			return nil, nil, errInvalidUpload
		}
		opened = append(opened, f)

		ip := ingestion.IngestInput{
			Name: fh.Filename,
			Size: fh.Size,
			Body: f,
		}
		if i < len(paths) {
			ip.Path = paths[i]
		}
		inputs = append(inputs, ip)
	}
	return inputs, opened, nil
}

func (h *handler) processImportRequest(c *gin.Context) (importReq, error) {
	var req importReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, errInvalidImport
	}
	return req, nil
}

func (h *handler) processListRequest(c *gin.Context) (paginator.PaginateQuery, error) {
	var q paginator.PaginateQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		return q, errInvalidPage
	}
	return q, nil
}

func closeAll(files []multipart.File) {
	for _, f := range files {
		_ = f.Close()
	}
}
