package usecase

import (
	"time"

	"crawler-console/internal/ingestion"
	"crawler-console/internal/ingestion/repository"
	"crawler-console/pkg/log"
	"crawler-console/pkg/minio"
)

// implUseCase implements the ingestion.UseCase interface
type implUseCase struct {
	l       log.Logger
	repo    repository.Registry
	storage minio.MinIO
	cfg     ingestion.Config
	now     func() time.Time
}

// New creates a new ingestion usecase. storage may be nil, in which case
// ImportFromStorage reports ErrStorageUnavailable.
func New(
	l log.Logger,
	repo repository.Registry,
	storage minio.MinIO,
	cfg ingestion.Config,
) ingestion.UseCase {
	if cfg.MaxConcurrency <= 0 {
		cfg.MaxConcurrency = ingestion.DefaultMaxConcurrency
	}
	if cfg.MaxFileBytes <= 0 {
		cfg.MaxFileBytes = ingestion.DefaultMaxFileBytes
	}
	return &implUseCase{
		l:       l,
		repo:    repo,
		storage: storage,
		cfg:     cfg,
		now:     time.Now,
	}
}
