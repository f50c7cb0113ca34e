package transform

import "errors"

var (
	ErrNoInputSelected   = errors.New("transform: no input selected")
	ErrTransformFailed   = errors.New("transform: failed")
	ErrUnsupportedFormat = errors.New("transform: unsupported output format")
	ErrJobNotFound       = errors.New("transform: job not found")
)
