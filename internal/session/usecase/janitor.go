package usecase

import (
	"context"
	"time"

	"crawler-console/internal/session"
)

// Sweep drops sessions idle for longer than the TTL and returns how many
// were dropped.
func (uc *implUseCase) Sweep(ctx context.Context) int {
	cutoff := uc.now().Add(-uc.cfg.IdleTTL)

	var expired []session.Session
	uc.mu.Lock()
	for id, e := range uc.sessions {
		if e.s.LastSeen.Before(cutoff) {
			expired = append(expired, e.s)
			delete(uc.sessions, id)
		}
	}
	uc.mu.Unlock()

	for _, s := range expired {
		s.Files.Clear(ctx)
	}
	if len(expired) > 0 {
		uc.l.Infof(ctx, "session.usecase.Sweep: expired %d sessions", len(expired))
	}
	return len(expired)
}

// Run sweeps on every interval until ctx is done.
func (uc *implUseCase) Run(ctx context.Context) {
	ticker := time.NewTicker(uc.cfg.SweepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			uc.Sweep(ctx)
		}
	}
}
