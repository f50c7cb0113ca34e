package minio

import "testing"

func TestValidateConfig(t *testing.T) {
	cfg := &Config{Endpoint: "minio", AccessKey: "a", SecretKey: "s", Region: "us-east-1"}
	if err := validateConfig(cfg); err != nil {
		t.Fatalf("validateConfig failed: %v", err)
	}
	if cfg.Endpoint != "minio:9000" {
		t.Errorf("Endpoint = %s, want minio:9000", cfg.Endpoint)
	}

	if err := validateConfig(&Config{}); err == nil {
		t.Error("expected error for empty config")
	}
}

func TestValidateListRequest(t *testing.T) {
	req := &ListRequest{BucketName: "crawler-exports"}
	if err := validateListRequest(req); err != nil {
		t.Fatalf("validateListRequest failed: %v", err)
	}
	if req.MaxKeys != DefaultListMaxKeys {
		t.Errorf("MaxKeys = %d, want %d", req.MaxKeys, DefaultListMaxKeys)
	}

	tests := []struct {
		name string
		req  *ListRequest
	}{
		{name: "nil", req: nil},
		{name: "short bucket", req: &ListRequest{BucketName: "ab"}},
		{name: "upper case", req: &ListRequest{BucketName: "Crawler"}},
		{name: "too many keys", req: &ListRequest{BucketName: "crawler", MaxKeys: MaxListMaxKeys + 1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := validateListRequest(tt.req); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestValidateDownloadRequest(t *testing.T) {
	if err := validateDownloadRequest(&DownloadRequest{BucketName: "exports", ObjectName: "xhs/contents.json"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := validateDownloadRequest(&DownloadRequest{BucketName: "exports", ObjectName: `a\b.json`}); err == nil {
		t.Error("expected object name error")
	}
	if err := validateDownloadRequest(&DownloadRequest{BucketName: "b", ObjectName: "o"}); err == nil {
		t.Error("expected bucket name error")
	}
}

func TestIsNotFound(t *testing.T) {
	if !IsNotFound(NewObjectNotFoundError("x")) {
		t.Error("object not found should be not found")
	}
	if IsNotFound(NewConnectionError(nil)) {
		t.Error("connection error should not be not found")
	}
}
