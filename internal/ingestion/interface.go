package ingestion

import (
	"context"

	"crawler-console/internal/model"
)

// UseCase ingests crawler exports into one session's registry.
//
//go:generate mockery --name UseCase
type UseCase interface {
	Ingest(ctx context.Context, ip IngestInput) (model.FileDescriptor, error)
	IngestBatch(ctx context.Context, ips []IngestInput) IngestBatchOutput
	ImportFromStorage(ctx context.Context, ip ImportInput) (IngestBatchOutput, error)

	List(ctx context.Context) []model.FileDescriptor
	Get(ctx context.Context, name string) (model.FileDescriptor, error)
	Select(ctx context.Context, names []string) ([]model.FileDescriptor, error)
	Remove(ctx context.Context, name string) error
	Clear(ctx context.Context)
}
