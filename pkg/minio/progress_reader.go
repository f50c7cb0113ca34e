package minio

import (
	"io"
	"sync"
)

// ProgressReader wraps an io.Reader to track download progress.
type ProgressReader struct {
	Reader     io.Reader
	TotalBytes int64
	OnProgress func(bytesRead int64)

	mu        sync.Mutex
	bytesRead int64
}

// Read implements io.Reader interface
func (pr *ProgressReader) Read(p []byte) (int, error) {
	n, err := pr.Reader.Read(p)

	if n > 0 {
		pr.mu.Lock()
		pr.bytesRead += int64(n)
		bytesRead := pr.bytesRead
		pr.mu.Unlock()

		if pr.OnProgress != nil {
			pr.OnProgress(bytesRead)
		}
	}

	return n, err
}

// BytesRead returns the total bytes read so far
func (pr *ProgressReader) BytesRead() int64 {
	pr.mu.Lock()
	defer pr.mu.Unlock()
	return pr.bytesRead
}

// Progress returns the current progress percentage
func (pr *ProgressReader) Progress() float64 {
	pr.mu.Lock()
	defer pr.mu.Unlock()

	if pr.TotalBytes <= 0 {
		return 0
	}

	return float64(pr.bytesRead) / float64(pr.TotalBytes) * 100
}

// ProgressReadCloser is a ProgressReader over a stream that must be closed.
type ProgressReadCloser struct {
	*ProgressReader
	closer  io.Closer
	onClose func(bytesRead int64)
}

// NewProgressReadCloser tracks reads on rc. onClose, if set, receives the
// byte count once the stream is closed.
func NewProgressReadCloser(rc io.ReadCloser, totalBytes int64, onClose func(bytesRead int64)) *ProgressReadCloser {
	return &ProgressReadCloser{
		ProgressReader: &ProgressReader{Reader: rc, TotalBytes: totalBytes},
		closer:         rc,
		onClose:        onClose,
	}
}

// Close closes the underlying stream.
func (p *ProgressReadCloser) Close() error {
	err := p.closer.Close()
	if p.onClose != nil {
		p.onClose(p.BytesRead())
	}
	return err
}
