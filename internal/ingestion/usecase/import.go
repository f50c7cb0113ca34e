package usecase

import (
	"context"
	"fmt"
	"io"
	"path"

	"crawler-console/internal/ingestion"
	"crawler-console/pkg/minio"
)

// ImportFromStorage ingests every .json and .csv export under a prefix.
func (uc *implUseCase) ImportFromStorage(ctx context.Context, ip ingestion.ImportInput) (ingestion.IngestBatchOutput, error) {
	if uc.storage == nil {
		return ingestion.IngestBatchOutput{}, ingestion.ErrStorageUnavailable
	}

	bucket := ip.Bucket
	if bucket == "" {
		bucket = uc.cfg.ImportBucket
	}

	list, err := uc.storage.ListFiles(ctx, &minio.ListRequest{
		BucketName: bucket,
		Prefix:     ip.Prefix,
		Recursive:  true,
	})
	if err != nil {
		uc.l.Errorf(ctx, "ingestion.usecase.ImportFromStorage: Failed to list %s/%s: %v", bucket, ip.Prefix, err)
		if minio.IsNotFound(err) {
			return ingestion.IngestBatchOutput{}, fmt.Errorf("%w: %s", ingestion.ErrFileNotFound, bucket)
		}
		return ingestion.IngestBatchOutput{}, fmt.Errorf("%w: %v", ingestion.ErrStorageUnavailable, err)
	}
	if list.IsTruncated {
		uc.l.Warnf(ctx, "ingestion.usecase.ImportFromStorage: listing of %s/%s truncated at %d objects", bucket, ip.Prefix, list.TotalCount)
	}

	sources := make([]source, 0, len(list.Files))
	for _, f := range list.Files {
		if _, err := detectFormat(f.ObjectName); err != nil {
			continue
		}
		sources = append(sources, uc.storageSource(bucket, f))
	}

	return uc.ingestAll(ctx, sources), nil
}

func (uc *implUseCase) storageSource(bucket string, f *minio.FileInfo) source {
	return source{
		name: path.Base(f.ObjectName),
		path: f.ObjectName,
		size: f.Size,
		open: func(ctx context.Context) (io.ReadCloser, error) {
			rc, headers, err := uc.storage.DownloadFile(ctx, &minio.DownloadRequest{
				BucketName: bucket,
				ObjectName: f.ObjectName,
			})
			if err != nil {
				return nil, err
			}
			total := f.Size
			if headers != nil && headers.ContentLength > 0 {
				total = headers.ContentLength
			}
			return minio.NewProgressReadCloser(rc, total, func(n int64) {
				uc.l.Debugf(ctx, "ingestion.usecase.storageSource: downloaded %s/%s %d/%d bytes", bucket, f.ObjectName, n, total)
			}), nil
		},
	}
}
