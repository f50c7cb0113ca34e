package minio

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/minio/minio-go/v7"
)

// --- implMinIO: connection ---

func (m *implMinIO) Connect(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	_, err := m.minioClient.ListBuckets(ctx)
	if err != nil {
		m.connected = false
		return handleMinIOError(err, "connect")
	}
	m.connected = true
	return nil
}

func (m *implMinIO) HealthCheck(ctx context.Context) error {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if !m.connected {
		return NewConnectionError(fmt.Errorf("not connected"))
	}
	if _, err := m.minioClient.ListBuckets(ctx); err != nil {
		return handleMinIOError(err, "health_check")
	}
	return nil
}

func (m *implMinIO) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.connected = false
	return nil
}

// --- implMinIO: download ---

// DownloadFile opens the object and reads its metadata from the same
// response. The caller closes the reader.
func (m *implMinIO) DownloadFile(ctx context.Context, req *DownloadRequest) (io.ReadCloser, *DownloadHeaders, error) {
	if err := validateDownloadRequest(req); err != nil {
		return nil, nil, err
	}
	object, err := m.minioClient.GetObject(ctx, req.BucketName, req.ObjectName, minio.GetObjectOptions{})
	if err != nil {
		return nil, nil, handleMinIOError(err, "download_file")
	}
	info, err := object.Stat()
	if err != nil {
		_ = object.Close()
		return nil, nil, handleMinIOError(err, "download_file")
	}
	return object, &DownloadHeaders{
		ContentType:   info.ContentType,
		ContentLength: info.Size,
		LastModified:  info.LastModified,
		ETag:          info.ETag,
	}, nil
}

// --- implMinIO: list ---

func (m *implMinIO) ListFiles(ctx context.Context, req *ListRequest) (*ListResponse, error) {
	if err := validateListRequest(req); err != nil {
		return nil, err
	}
	opts := minio.ListObjectsOptions{Prefix: req.Prefix, Recursive: req.Recursive}
	var files []*FileInfo
	for object := range m.minioClient.ListObjects(ctx, req.BucketName, opts) {
		if object.Err != nil {
			return nil, handleMinIOError(object.Err, "list_files")
		}
		if strings.HasSuffix(object.Key, "/") {
			continue
		}
		if len(files) == req.MaxKeys {
			return &ListResponse{Files: files, TotalCount: len(files), IsTruncated: true}, nil
		}
		files = append(files, &FileInfo{
			BucketName:   req.BucketName,
			ObjectName:   object.Key,
			Size:         object.Size,
			ETag:         object.ETag,
			LastModified: object.LastModified,
			ContentType:  object.ContentType,
		})
	}
	return &ListResponse{Files: files, TotalCount: len(files)}, nil
}

// --- helpers ---

func handleMinIOError(err error, operation string) error {
	if err == nil {
		return nil
	}
	var minioErr minio.ErrorResponse
	if errors.As(err, &minioErr) {
		switch minioErr.Code {
		case "NoSuchBucket":
			return NewBucketNotFoundError(minioErr.BucketName)
		case "NoSuchKey":
			return NewObjectNotFoundError(minioErr.Key)
		case "AccessDenied":
			return &StorageError{Code: ErrCodePermission, Message: "Access denied", Operation: operation, Cause: err}
		default:
			return &StorageError{Code: ErrCodeConnection, Message: fmt.Sprintf("MinIO operation failed: %s", minioErr.Code), Operation: operation, Cause: err}
		}
	}
	return NewConnectionError(err)
}
