package http

import (
	"crawler-console/internal/ingestion"
	"crawler-console/internal/model"
	"crawler-console/pkg/paginator"
	"crawler-console/pkg/response"
)

const (
	formFieldFiles = "files"
	formFieldPaths = "paths"
)

// =====================================================
// Request DTOs
// =====================================================

type importReq struct {
	Bucket string `json:"bucket"`
	Prefix string `json:"prefix"`
}

func (r importReq) toInput() ingestion.ImportInput {
	return ingestion.ImportInput{
		Bucket: r.Bucket,
		Prefix: r.Prefix,
	}
}

// =====================================================
// Response DTOs
// =====================================================

type fileResp struct {
	Name         string            `json:"name"`
	Path         string            `json:"path"`
	Platform     string            `json:"platform"`
	PlatformName string            `json:"platform_name"`
	Kind         string            `json:"kind"`
	RecordCount  int               `json:"record_count"`
	Size         int64             `json:"size"`
	IngestedAt   response.DateTime `json:"ingested_at"`
}

type failureResp struct {
	Name  string `json:"name"`
	Path  string `json:"path,omitempty"`
	Error string `json:"error"`
}

type batchResp struct {
	Files    []fileResp    `json:"files"`
	Failures []failureResp `json:"failures"`
}

type listResp struct {
	Files     []fileResp                   `json:"files"`
	Total     int                          `json:"total"`
	Paginator *paginator.PaginatorResponse `json:"paginator,omitempty"`
}

func newFileResp(fd model.FileDescriptor) fileResp {
	return fileResp{
		Name:         fd.Name,
		Path:         fd.Path,
		Platform:     string(fd.Platform),
		PlatformName: fd.Platform.DisplayName(),
		Kind:         string(fd.Kind),
		RecordCount:  fd.RecordCount(),
		Size:         fd.Size,
		IngestedAt:   response.DateTime(fd.IngestedAt),
	}
}

func newFileResps(fds []model.FileDescriptor) []fileResp {
	out := make([]fileResp, len(fds))
	for i, fd := range fds {
		out[i] = newFileResp(fd)
	}
	return out
}

func newBatchResp(o ingestion.IngestBatchOutput) batchResp {
	resp := batchResp{
		Files:    newFileResps(o.Files),
		Failures: make([]failureResp, len(o.Failures)),
	}
	for i, f := range o.Failures {
		resp.Failures[i] = failureResp{
			Name:  f.Name,
			Path:  f.Path,
			Error: f.Err.Error(),
		}
	}
	return resp
}

// newListResp returns every file unless a page was requested.
func newListResp(fds []model.FileDescriptor, q paginator.PaginateQuery) listResp {
	if !q.IsSet() {
		return listResp{
			Files: newFileResps(fds),
			Total: len(fds),
		}
	}

	page, p := paginator.Page(q, fds)
	pr := p.ToResponse()
	return listResp{
		Files:     newFileResps(page),
		Total:     len(fds),
		Paginator: &pr,
	}
}
