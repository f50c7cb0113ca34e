package usecase

import (
	"context"
	"errors"
	"fmt"

	"crawler-console/internal/transform"
	"crawler-console/internal/transform/repository"
)

// report hands p to the observer first, then to the progress store.
func (uc *implUseCase) report(ctx context.Context, observer transform.ProgressObserver, p transform.Progress) {
	p.UpdatedAt = uc.now()
	if observer != nil {
		observer(p)
	}
	uc.record(ctx, p)
}

// record stores and publishes p. Failures are logged and never abort a job.
func (uc *implUseCase) record(ctx context.Context, p transform.Progress) {
	if p.UpdatedAt.IsZero() {
		p.UpdatedAt = uc.now()
	}
	if uc.repo != nil {
		if err := uc.repo.SaveProgress(ctx, p, uc.cfg.ProgressTTL); err != nil {
			uc.l.Warnf(ctx, "transform.usecase.record: Failed to save progress of job %s: %v", p.JobID, err)
		}
	}
	if uc.producer != nil {
		if err := uc.producer.PublishProgress(ctx, p); err != nil {
			uc.l.Warnf(ctx, "transform.usecase.record: Failed to publish progress of job %s: %v", p.JobID, err)
		}
	}
}

func (uc *implUseCase) publishResult(ctx context.Context, r transform.JobResult) {
	if uc.producer == nil {
		return
	}
	r.CompletedAt = uc.now()
	if err := uc.producer.PublishResult(ctx, r); err != nil {
		uc.l.Warnf(ctx, "transform.usecase.publishResult: Failed to publish result of job %s: %v", r.JobID, err)
	}
}

// GetProgress returns the last progress stored for a job.
func (uc *implUseCase) GetProgress(ctx context.Context, jobID string) (transform.Progress, error) {
	if uc.repo == nil {
		return transform.Progress{}, fmt.Errorf("%w: %s", transform.ErrJobNotFound, jobID)
	}
	p, err := uc.repo.GetProgress(ctx, jobID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return transform.Progress{}, fmt.Errorf("%w: %s", transform.ErrJobNotFound, jobID)
		}
		uc.l.Errorf(ctx, "transform.usecase.GetProgress: Failed to get progress of job %s: %v", jobID, err)
		return transform.Progress{}, err
	}
	return p, nil
}
