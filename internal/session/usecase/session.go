package usecase

import (
	"context"
	"fmt"

	"crawler-console/internal/session"
)

func (uc *implUseCase) Create(ctx context.Context) (session.Session, error) {
	now := uc.now()
	s := session.Session{
		ID:        uc.newID(),
		CreatedAt: now,
		LastSeen:  now,
		Files:     uc.factory(),
	}

	uc.mu.Lock()
	uc.sessions[s.ID] = &entry{s: s}
	total := len(uc.sessions)
	uc.mu.Unlock()

	uc.l.Infof(ctx, "session.usecase.Create: created %s (active=%d)", s.ID, total)
	return s, nil
}

// Get returns the session and marks it as used.
func (uc *implUseCase) Get(ctx context.Context, id string) (session.Session, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	e, ok := uc.sessions[id]
	if !ok {
		return session.Session{}, fmt.Errorf("%w: %s", session.ErrSessionNotFound, id)
	}
	e.s.LastSeen = uc.now()
	return e.s, nil
}

func (uc *implUseCase) Delete(ctx context.Context, id string) error {
	uc.mu.Lock()
	e, ok := uc.sessions[id]
	delete(uc.sessions, id)
	uc.mu.Unlock()

	if !ok {
		return fmt.Errorf("%w: %s", session.ErrSessionNotFound, id)
	}
	e.s.Files.Clear(ctx)
	uc.l.Infof(ctx, "session.usecase.Delete: deleted %s", id)
	return nil
}
