package repository

import (
	"context"
	"time"

	"crawler-console/internal/transform"
)

// ProgressRepository keeps the latest progress of each job for polling clients.
//
//go:generate mockery --name ProgressRepository
type ProgressRepository interface {
	SaveProgress(ctx context.Context, p transform.Progress, ttl time.Duration) error
	GetProgress(ctx context.Context, jobID string) (transform.Progress, error)
}
