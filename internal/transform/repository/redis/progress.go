package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"crawler-console/internal/transform"
	"crawler-console/internal/transform/repository"
	"crawler-console/pkg/redis"
)

// SaveProgress overwrites the job's progress and refreshes its TTL.
func (r *implProgressRepository) SaveProgress(ctx context.Context, p transform.Progress, ttl time.Duration) error {
	data, err := json.Marshal(p)
	if err != nil {
		r.l.Errorf(ctx, "transform.repository.redis.SaveProgress: Failed to marshal progress: %v", err)
		return err
	}

	if err := r.redis.Set(ctx, progressKey(p.JobID), string(data), ttl); err != nil {
		r.l.Errorf(ctx, "transform.repository.redis.SaveProgress: Failed to set progress: %v", err)
		return err
	}
	return nil
}

func (r *implProgressRepository) GetProgress(ctx context.Context, jobID string) (transform.Progress, error) {
	data, err := r.redis.Get(ctx, progressKey(jobID))
	if err != nil {
		if redis.IsNil(err) {
			return transform.Progress{}, repository.ErrNotFound
		}
		r.l.Errorf(ctx, "transform.repository.redis.GetProgress: Failed to get progress: %v", err)
		return transform.Progress{}, err
	}

	var p transform.Progress
	if err := json.Unmarshal([]byte(data), &p); err != nil {
		r.l.Errorf(ctx, "transform.repository.redis.GetProgress: Failed to unmarshal progress: %v", err)
		return transform.Progress{}, err
	}
	return p, nil
}

func progressKey(jobID string) string {
	return fmt.Sprintf("transform:progress:%s", jobID)
}
