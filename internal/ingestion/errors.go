package ingestion

import "errors"

var (
	ErrMalformedInput     = errors.New("ingestion: malformed input")
	ErrUnsupportedFormat  = errors.New("ingestion: unsupported file format")
	ErrReadFailure        = errors.New("ingestion: read failure")
	ErrFileNotFound       = errors.New("ingestion: file not found")
	ErrStorageUnavailable = errors.New("ingestion: storage unavailable")
)
