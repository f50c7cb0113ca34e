package memory

import (
	"context"
	"slices"

	"crawler-console/internal/ingestion/repository"
	"crawler-console/internal/model"
)

// Put appends fd. A file with the same name is replaced and moves to the end.
func (r *implRegistry) Put(_ context.Context, fd model.FileDescriptor) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.files[fd.Name]; ok {
		r.order = slices.DeleteFunc(r.order, func(name string) bool { return name == fd.Name })
	}
	r.order = append(r.order, fd.Name)
	r.files[fd.Name] = fd
}

func (r *implRegistry) Get(_ context.Context, name string) (model.FileDescriptor, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	fd, ok := r.files[name]
	if !ok {
		return model.FileDescriptor{}, repository.ErrNotFound
	}
	return fd, nil
}

func (r *implRegistry) List(_ context.Context) []model.FileDescriptor {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]model.FileDescriptor, 0, len(r.order))
	for _, name := range r.order {
		out = append(out, r.files[name])
	}
	return out
}

func (r *implRegistry) Remove(_ context.Context, name string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.files[name]; !ok {
		return repository.ErrNotFound
	}
	delete(r.files, name)
	r.order = slices.DeleteFunc(r.order, func(n string) bool { return n == name })
	return nil
}

func (r *implRegistry) Clear(_ context.Context) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.order = nil
	r.files = make(map[string]model.FileDescriptor)
}

func (r *implRegistry) Len(_ context.Context) int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.order)
}
