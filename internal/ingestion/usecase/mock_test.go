package usecase

import (
	"context"
	"io"

	"github.com/stretchr/testify/mock"

	"crawler-console/pkg/minio"
)

type mockStorage struct {
	mock.Mock
}

func (m *mockStorage) Connect(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *mockStorage) HealthCheck(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *mockStorage) Close() error {
	return m.Called().Error(0)
}

func (m *mockStorage) DownloadFile(ctx context.Context, req *minio.DownloadRequest) (io.ReadCloser, *minio.DownloadHeaders, error) {
	args := m.Called(ctx, req)
	var rc io.ReadCloser
	if v := args.Get(0); v != nil {
		rc = v.(io.ReadCloser)
	}
	var headers *minio.DownloadHeaders
	if v := args.Get(1); v != nil {
		headers = v.(*minio.DownloadHeaders)
	}
	return rc, headers, args.Error(2)
}

func (m *mockStorage) ListFiles(ctx context.Context, req *minio.ListRequest) (*minio.ListResponse, error) {
	args := m.Called(ctx, req)
	if v := args.Get(0); v != nil {
		return v.(*minio.ListResponse), args.Error(1)
	}
	return nil, args.Error(1)
}
