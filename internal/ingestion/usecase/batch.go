package usecase

import (
	"context"
	"sync"

	"golang.org/x/sync/errgroup"

	"crawler-console/internal/ingestion"
	"crawler-console/internal/model"
)

// IngestBatch ingests several uploaded files concurrently.
func (uc *implUseCase) IngestBatch(ctx context.Context, ips []ingestion.IngestInput) ingestion.IngestBatchOutput {
	sources := make([]source, len(ips))
	for i := range ips {
		sources[i] = sourceFromInput(ips[i])
	}
	return uc.ingestAll(ctx, sources)
}

// ingestAll parses sources on a bounded pool. A failing file never cancels
// the others, so every goroutine returns nil.
func (uc *implUseCase) ingestAll(ctx context.Context, sources []source) ingestion.IngestBatchOutput {
	var (
		mu  sync.Mutex
		out ingestion.IngestBatchOutput
	)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(uc.cfg.MaxConcurrency)

	for i := range sources {
		src := sources[i]

		g.Go(func() error {
			fd, err := uc.ingest(gctx, src)

			mu.Lock()
			defer mu.Unlock()

			if err != nil {
				uc.l.Warnf(ctx, "ingestion.usecase.ingestAll: %v", err)
				out.Failures = append(out.Failures, ingestion.IngestFailure{
					Name: src.name,
					Path: src.path,
					Err:  err,
				})
				return nil
			}
			// Registry order and Files order are the same completion order.
			uc.register(ctx, fd)
			out.Files = append(out.Files, fd)
			return nil
		})
	}

	_ = g.Wait()

	if out.Files == nil {
		out.Files = []model.FileDescriptor{}
	}

	uc.l.Infof(ctx, "ingestion.usecase.ingestAll: ingested=%d failed=%d", len(out.Files), len(out.Failures))
	return out
}
