package model

import "time"

// FileDescriptor is one ingested crawler export.
type FileDescriptor struct {
	Name       string
	Path       string
	Platform   Platform
	Kind       Kind
	Records    []*Record
	Size       int64
	IngestedAt time.Time
}

// RecordCount returns the number of parsed records.
func (fd FileDescriptor) RecordCount() int {
	return len(fd.Records)
}
