package memory

import (
	"sync"

	"crawler-console/internal/ingestion/repository"
	"crawler-console/internal/model"
)

type implRegistry struct {
	mu    sync.RWMutex
	order []string
	files map[string]model.FileDescriptor
}

// New creates an empty in-memory registry.
func New() repository.Registry {
	return &implRegistry{
		files: make(map[string]model.FileDescriptor),
	}
}
