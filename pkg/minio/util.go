package minio

import (
	"strings"
)

func validateConfig(cfg *Config) error {
	if cfg == nil {
		return NewInvalidInputError("config is required")
	}
	if cfg.Endpoint == "" {
		return NewInvalidInputError("endpoint is required")
	}
	if cfg.AccessKey == "" {
		return NewInvalidInputError("access key is required")
	}
	if cfg.SecretKey == "" {
		return NewInvalidInputError("secret key is required")
	}
	if cfg.Region == "" {
		return NewInvalidInputError("region is required")
	}
	if !strings.Contains(cfg.Endpoint, ":") {
		cfg.Endpoint = cfg.Endpoint + DefaultEndpointPort
	}
	return nil
}

func validateDownloadRequest(req *DownloadRequest) error {
	if req == nil {
		return NewInvalidInputError("request is required")
	}
	if err := validateBucketName(req.BucketName); err != nil {
		return err
	}
	return validateObjectName(req.ObjectName)
}

func validateListRequest(req *ListRequest) error {
	if req == nil {
		return NewInvalidInputError("request is required")
	}
	if err := validateBucketName(req.BucketName); err != nil {
		return err
	}
	if req.MaxKeys <= 0 {
		req.MaxKeys = DefaultListMaxKeys
	}
	if req.MaxKeys > MaxListMaxKeys {
		return NewInvalidInputError("max keys cannot exceed 10000")
	}
	return nil
}

func validateBucketName(bucketName string) error {
	if bucketName == "" {
		return NewInvalidInputError("bucket name is required")
	}
	if len(bucketName) < 3 {
		return NewInvalidInputError("bucket name must be at least 3 characters")
	}
	if len(bucketName) > 63 {
		return NewInvalidInputError("bucket name cannot exceed 63 characters")
	}
	for _, char := range bucketName {
		if !((char >= 'a' && char <= 'z') || (char >= '0' && char <= '9') || char == '-' || char == '.') {
			return NewInvalidInputError("bucket name can only contain lowercase letters, numbers, dots, and hyphens")
		}
	}
	if strings.HasPrefix(bucketName, "-") || strings.HasSuffix(bucketName, "-") {
		return NewInvalidInputError("bucket name cannot start or end with hyphen")
	}
	return nil
}

func validateObjectName(objectName string) error {
	if objectName == "" {
		return NewInvalidInputError("object name is required")
	}
	if strings.Contains(objectName, "\\") {
		return NewInvalidInputError("object name cannot contain backslashes")
	}
	return nil
}
