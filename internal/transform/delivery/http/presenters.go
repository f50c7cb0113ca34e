package http

import (
	"crawler-console/internal/model"
	"crawler-console/internal/transform"
	"crawler-console/pkg/response"
)

const (
	headerJobID       = "X-Job-ID"
	contentTypeZip    = "application/zip"
	defaultOutFormat  = model.FormatJSON
	dispositionFormat = `attachment; filename="%s"`
)

// =====================================================
// Request DTOs
// =====================================================

// transformReq selects files by name. An empty list means every file in
// the session, in ingestion order.
type transformReq struct {
	Files      []string `json:"files"`
	Format     string   `json:"format"`
	JobID      string   `json:"job_id"`
	ClearAfter bool     `json:"clear_after"`
}

func (r transformReq) format() model.Format {
	if r.Format == "" {
		return defaultOutFormat
	}
	return model.Format(r.Format)
}

// =====================================================
// Response DTOs
// =====================================================

type progressResp struct {
	JobID       string            `json:"job_id"`
	Completed   int               `json:"completed"`
	Total       int               `json:"total"`
	Percent     float64           `json:"percent"`
	CurrentFile string            `json:"current_file,omitempty"`
	Status      string            `json:"status"`
	Error       string            `json:"error,omitempty"`
	UpdatedAt   response.DateTime `json:"updated_at"`
}

func newProgressResp(p transform.Progress) progressResp {
	return progressResp{
		JobID:       p.JobID,
		Completed:   p.Completed,
		Total:       p.Total,
		Percent:     p.Percent,
		CurrentFile: p.CurrentFile,
		Status:      p.Status,
		Error:       p.Error,
		UpdatedAt:   response.DateTime(p.UpdatedAt),
	}
}
