package transform

import (
	"context"
)

// UseCase turns ingested crawler exports into one downloadable archive.
//
//go:generate mockery --name UseCase
type UseCase interface {
	Transform(ctx context.Context, ip TransformInput, observer ProgressObserver) (TransformOutput, error)
	GetProgress(ctx context.Context, jobID string) (Progress, error)
}

// Producer publishes transform events.
//
//go:generate mockery --name Producer
type Producer interface {
	PublishProgress(ctx context.Context, p Progress) error
	PublishResult(ctx context.Context, r JobResult) error
}
