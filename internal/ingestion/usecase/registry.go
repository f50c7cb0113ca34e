package usecase

import (
	"context"
	"errors"
	"fmt"

	"crawler-console/internal/ingestion"
	"crawler-console/internal/ingestion/repository"
	"crawler-console/internal/model"
)

func (uc *implUseCase) List(ctx context.Context) []model.FileDescriptor {
	return uc.repo.List(ctx)
}

func (uc *implUseCase) Get(ctx context.Context, name string) (model.FileDescriptor, error) {
	fd, err := uc.repo.Get(ctx, name)
	if err != nil {
		return model.FileDescriptor{}, mapRepoError(err, name)
	}
	return fd, nil
}

// Select returns the named files in the order given.
func (uc *implUseCase) Select(ctx context.Context, names []string) ([]model.FileDescriptor, error) {
	out := make([]model.FileDescriptor, 0, len(names))
	for _, name := range names {
		fd, err := uc.repo.Get(ctx, name)
		if err != nil {
			return nil, mapRepoError(err, name)
		}
		out = append(out, fd)
	}
	return out, nil
}

func (uc *implUseCase) Remove(ctx context.Context, name string) error {
	if err := uc.repo.Remove(ctx, name); err != nil {
		return mapRepoError(err, name)
	}
	uc.l.Infof(ctx, "ingestion.usecase.Remove: removed %s", name)
	return nil
}

func (uc *implUseCase) Clear(ctx context.Context) {
	uc.repo.Clear(ctx)
}

func mapRepoError(err error, name string) error {
	if errors.Is(err, repository.ErrNotFound) {
		return fmt.Errorf("%w: %s", ingestion.ErrFileNotFound, name)
	}
	return err
}
