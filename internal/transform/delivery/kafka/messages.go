package kafka

import (
	"time"
)

// TransformProgressMessage - Kafka message for crawler.transform.progress
type TransformProgressMessage struct {
	JobID       string    `json:"job_id"`
	Completed   int       `json:"completed"`
	Total       int       `json:"total"`
	Percent     float64   `json:"percent"`
	CurrentFile string    `json:"current_file"`
	Status      string    `json:"status"`
	Error       string    `json:"error,omitempty"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// TransformResultMessage - Kafka message for crawler.transform.results
type TransformResultMessage struct {
	JobID       string    `json:"job_id"`
	Status      string    `json:"status"`
	Format      string    `json:"format"`
	ArchiveName string    `json:"archive_name,omitempty"`
	FileCount   int       `json:"file_count"`
	RecordCount int       `json:"record_count"`
	Error       string    `json:"error,omitempty"`
	CompletedAt time.Time `json:"completed_at"`
}
