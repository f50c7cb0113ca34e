package repository

import (
	"context"

	"crawler-console/internal/model"
)

// Registry holds the files ingested during one session, keyed by name,
// in ingestion-completion order. Writes are serialized.
//
//go:generate mockery --name Registry
type Registry interface {
	Put(ctx context.Context, fd model.FileDescriptor)
	Get(ctx context.Context, name string) (model.FileDescriptor, error)
	List(ctx context.Context) []model.FileDescriptor
	Remove(ctx context.Context, name string) error
	Clear(ctx context.Context)
	Len(ctx context.Context) int
}
