package usecase

import (
	"time"

	"github.com/google/uuid"

	"crawler-console/internal/normalize"
	"crawler-console/internal/transform"
	"crawler-console/internal/transform/repository"
	"crawler-console/pkg/log"
)

// implUseCase implements the transform.UseCase interface
type implUseCase struct {
	l          log.Logger
	normalizer *normalize.Normalizer
	repo       repository.ProgressRepository
	producer   transform.Producer
	cfg        transform.Config
	encode     encodeFunc
	now        func() time.Time
	newJobID   func() string
}

// New creates a new transform usecase. repo and producer are optional;
// without them progress only reaches the observer.
func New(
	l log.Logger,
	normalizer *normalize.Normalizer,
	repo repository.ProgressRepository,
	producer transform.Producer,
	cfg transform.Config,
) transform.UseCase {
	if normalizer == nil {
		normalizer = normalize.New()
	}
	if cfg.CollisionPolicy == "" {
		cfg.CollisionPolicy = transform.CollisionSuffix
	}
	if cfg.ProgressTTL <= 0 {
		cfg.ProgressTTL = transform.DefaultProgressTTL
	}
	return &implUseCase{
		l:          l,
		normalizer: normalizer,
		repo:       repo,
		producer:   producer,
		cfg:        cfg,
		encode:     encode,
		now:        time.Now,
		newJobID:   uuid.NewString,
	}
}
