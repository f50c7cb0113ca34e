package session

import (
	"time"

	"crawler-console/internal/ingestion"
)

const (
	DefaultIdleTTL       = 30 * time.Minute
	DefaultSweepInterval = time.Minute
)

// Config tunes session expiry.
type Config struct {
	IdleTTL       time.Duration
	SweepInterval time.Duration
}

// Factory builds the file registry for a new session.
type Factory func() ingestion.UseCase

// Session is one workspace.
type Session struct {
	ID        string
	CreatedAt time.Time
	LastSeen  time.Time
	Files     ingestion.UseCase
}
