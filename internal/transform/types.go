package transform

import (
	"time"

	"crawler-console/internal/model"
)

// CollisionPolicy decides what happens when two files map to the same
// archive entry name.
type CollisionPolicy string

const (
	// CollisionSuffix appends a short hash of the source path to the later entry.
	CollisionSuffix CollisionPolicy = "suffix"
	// CollisionOverwrite keeps only the last entry under the shared name.
	CollisionOverwrite CollisionPolicy = "overwrite"
)

const DefaultProgressTTL = time.Hour

// Config tunes transform jobs.
type Config struct {
	CollisionPolicy CollisionPolicy
	ProgressTTL     time.Duration
}

// Job statuses.
const (
	StatusRunning   = "running"
	StatusCompleted = "completed"
	StatusFailed    = "failed"
)

// TransformInput selects the files of one job.
// An empty JobID is replaced with a generated one.
type TransformInput struct {
	JobID  string
	Files  []model.FileDescriptor
	Format model.Format
}

// TransformOutput is a finished archive.
type TransformOutput struct {
	JobID       string
	ArchiveName string
	Archive     []byte
	Results     []model.TransformResult
}

// Progress is reported after every file.
type Progress struct {
	JobID       string    `json:"job_id"`
	Completed   int       `json:"completed"`
	Total       int       `json:"total"`
	Percent     float64   `json:"percent"`
	CurrentFile string    `json:"current_file"`
	Status      string    `json:"status"`
	Error       string    `json:"error,omitempty"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// ProgressObserver receives progress synchronously, in order.
type ProgressObserver func(Progress)

// JobResult summarizes a finished job.
type JobResult struct {
	JobID       string
	Status      string
	Format      model.Format
	ArchiveName string
	FileCount   int
	RecordCount int
	Error       string
	CompletedAt time.Time
}
