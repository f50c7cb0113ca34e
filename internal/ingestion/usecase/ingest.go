package usecase

import (
	"context"
	"fmt"
	"io"
	"path"
	"strings"

	"crawler-console/internal/ingestion"
	"crawler-console/internal/model"
	"crawler-console/internal/normalize"
)

// source is one file waiting to be parsed, either uploaded or in storage.
type source struct {
	name string
	path string
	size int64
	open func(ctx context.Context) (io.ReadCloser, error)
}

func sourceFromInput(ip ingestion.IngestInput) source {
	return source{
		name: ip.Name,
		path: ip.Path,
		size: ip.Size,
		open: func(context.Context) (io.ReadCloser, error) {
			if ip.Open != nil {
				return ip.Open()
			}
			if ip.Body == nil {
				return nil, fmt.Errorf("%w: %s: empty body", ingestion.ErrReadFailure, ip.Name)
			}
			return io.NopCloser(ip.Body), nil
		},
	}
}

// Ingest parses one crawler export and registers it.
func (uc *implUseCase) Ingest(ctx context.Context, ip ingestion.IngestInput) (model.FileDescriptor, error) {
	fd, err := uc.ingest(ctx, sourceFromInput(ip))
	if err != nil {
		uc.l.Warnf(ctx, "ingestion.usecase.Ingest: %v", err)
		return model.FileDescriptor{}, err
	}
	uc.register(ctx, fd)
	return fd, nil
}

// register adds a parsed file to the registry.
func (uc *implUseCase) register(ctx context.Context, fd model.FileDescriptor) {
	uc.repo.Put(ctx, fd)
	uc.l.Infof(ctx, "ingestion.usecase.register: registered %s platform=%s kind=%s records=%d",
		fd.Name, fd.Platform, fd.Kind, fd.RecordCount())
}

func (uc *implUseCase) ingest(ctx context.Context, src source) (model.FileDescriptor, error) {
	format, err := detectFormat(src.name)
	if err != nil {
		return model.FileDescriptor{}, err
	}

	data, err := uc.read(ctx, src)
	if err != nil {
		return model.FileDescriptor{}, err
	}

	var records []*model.Record
	switch format {
	case model.FormatJSON:
		records, err = parseJSON(data)
	case model.FormatCSV:
		records, err = parseCSV(data)
	}
	if err != nil {
		return model.FileDescriptor{}, fmt.Errorf("%w: %s: %v", ingestion.ErrMalformedInput, src.name, err)
	}

	filePath := src.path
	if filePath == "" {
		filePath = src.name
	}
	size := src.size
	if size <= 0 {
		size = int64(len(data))
	}

	fd := model.FileDescriptor{
		Name:       src.name,
		Path:       filePath,
		Platform:   normalize.DetectPlatform(records, filePath),
		Kind:       normalize.ClassifyKind(records),
		Records:    records,
		Size:       size,
		IngestedAt: uc.now(),
	}
	return fd, nil
}

func (uc *implUseCase) read(ctx context.Context, src source) ([]byte, error) {
	rc, err := src.open(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ingestion.ErrReadFailure, src.name, err)
	}
	defer rc.Close()

	data, err := io.ReadAll(io.LimitReader(rc, uc.cfg.MaxFileBytes+1))
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ingestion.ErrReadFailure, src.name, err)
	}
	if int64(len(data)) > uc.cfg.MaxFileBytes {
		return nil, fmt.Errorf("%w: %s: file exceeds %d bytes", ingestion.ErrReadFailure, src.name, uc.cfg.MaxFileBytes)
	}
	return data, nil
}

func detectFormat(name string) (model.Format, error) {
	switch strings.ToLower(path.Ext(name)) {
	case ".json":
		return model.FormatJSON, nil
	case ".csv":
		return model.FormatCSV, nil
	default:
		return "", fmt.Errorf("%w: %s", ingestion.ErrUnsupportedFormat, name)
	}
}
