package redis

import (
	"crawler-console/internal/transform/repository"
	"crawler-console/pkg/log"
	"crawler-console/pkg/redis"
)

type implProgressRepository struct {
	l     log.Logger
	redis redis.IRedis
}

// New creates a Redis-backed progress repository.
func New(l log.Logger, redis redis.IRedis) repository.ProgressRepository {
	return &implProgressRepository{
		l:     l,
		redis: redis,
	}
}
