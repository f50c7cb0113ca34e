package minio

import (
	"sync"
	"time"

	"github.com/minio/minio-go/v7"
)

// Config is the connection configuration for MinIO.
type Config struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	UseSSL    bool
	Region    string
}

// implMinIO implements MinIO.
type implMinIO struct {
	minioClient *minio.Client
	config      *Config
	mu          sync.RWMutex
	connected   bool
}

// FileInfo describes one listed object.
type FileInfo struct {
	BucketName   string
	ObjectName   string
	Size         int64
	ContentType  string
	ETag         string
	LastModified time.Time
}

// DownloadRequest names the object to stream.
type DownloadRequest struct {
	BucketName string
	ObjectName string
}

// ListRequest selects objects by prefix. MaxKeys bounds the listing; the
// response is marked truncated when more objects exist.
type ListRequest struct {
	BucketName string
	Prefix     string
	Recursive  bool
	MaxKeys    int
}

// ListResponse holds the listed objects in key order.
type ListResponse struct {
	Files       []*FileInfo
	IsTruncated bool
	TotalCount  int
}

// DownloadHeaders describes the object behind a download.
type DownloadHeaders struct {
	ContentType   string
	ContentLength int64
	LastModified  time.Time
	ETag          string
}
