package session

import (
	"context"
)

// UseCase tracks the workspaces of console users. Each session owns its own
// file registry and expires after an idle period.
//
//go:generate mockery --name UseCase
type UseCase interface {
	Create(ctx context.Context) (Session, error)
	Get(ctx context.Context, id string) (Session, error)
	Delete(ctx context.Context, id string) error
	Sweep(ctx context.Context) int
	Run(ctx context.Context)
}
