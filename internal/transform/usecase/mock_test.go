package usecase

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"crawler-console/internal/transform"
)

type mockProgressRepo struct {
	mock.Mock
}

func (m *mockProgressRepo) SaveProgress(ctx context.Context, p transform.Progress, ttl time.Duration) error {
	return m.Called(ctx, p, ttl).Error(0)
}

func (m *mockProgressRepo) GetProgress(ctx context.Context, jobID string) (transform.Progress, error) {
	args := m.Called(ctx, jobID)
	return args.Get(0).(transform.Progress), args.Error(1)
}

type mockProducer struct {
	mock.Mock
}

func (m *mockProducer) PublishProgress(ctx context.Context, p transform.Progress) error {
	return m.Called(ctx, p).Error(0)
}

func (m *mockProducer) PublishResult(ctx context.Context, r transform.JobResult) error {
	return m.Called(ctx, r).Error(0)
}
