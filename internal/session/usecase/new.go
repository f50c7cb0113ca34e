package usecase

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"crawler-console/internal/session"
	"crawler-console/pkg/log"
)

type entry struct {
	s session.Session
}

// implUseCase implements the session.UseCase interface
type implUseCase struct {
	l       log.Logger
	factory session.Factory
	cfg     session.Config
	now     func() time.Time
	newID   func() string

	mu       sync.Mutex
	sessions map[string]*entry
}

// New creates a new session usecase
func New(l log.Logger, factory session.Factory, cfg session.Config) session.UseCase {
	if cfg.IdleTTL <= 0 {
		cfg.IdleTTL = session.DefaultIdleTTL
	}
	if cfg.SweepInterval <= 0 {
		cfg.SweepInterval = session.DefaultSweepInterval
	}
	return &implUseCase{
		l:        l,
		factory:  factory,
		cfg:      cfg,
		now:      time.Now,
		newID:    uuid.NewString,
		sessions: make(map[string]*entry),
	}
}
