package ingestion

import (
	"io"

	"crawler-console/internal/model"
)

const (
	// DefaultMaxConcurrency bounds how many files are parsed at once.
	DefaultMaxConcurrency = 4
	// DefaultMaxFileBytes caps a single export (256MB).
	DefaultMaxFileBytes = 256 << 20
)

// Config tunes ingestion.
type Config struct {
	MaxConcurrency int
	MaxFileBytes   int64
	ImportBucket   string
}

// IngestInput is one raw file.
// Path is the directory-relative path when known; it defaults to Name.
// Open, when set, is preferred over Body and is called only once a worker
// picks the file up; the returned reader is closed after parsing.
type IngestInput struct {
	Name string
	Path string
	Size int64
	Body io.Reader
	Open func() (io.ReadCloser, error)
}

// ImportInput selects crawler exports deposited in object storage.
// An empty Bucket falls back to the configured import bucket.
type ImportInput struct {
	Bucket string
	Prefix string
}

// IngestFailure describes a file that could not be ingested.
type IngestFailure struct {
	Name string
	Path string
	Err  error
}

// IngestBatchOutput lists successes and failures in completion order.
type IngestBatchOutput struct {
	Files    []model.FileDescriptor
	Failures []IngestFailure
}
