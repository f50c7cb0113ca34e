package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	"crawler-console/internal/ingestion"
	ingestionMemory "crawler-console/internal/ingestion/repository/memory"
	ingestionUsecase "crawler-console/internal/ingestion/usecase"
	"crawler-console/internal/middleware"
	"crawler-console/internal/session"
	sessionHTTP "crawler-console/internal/session/delivery/http"
	sessionUsecase "crawler-console/internal/session/usecase"
)

// setupSessionDomain builds the session store. Every session owns its own
// in-memory file registry.
func (srv *HTTPServer) setupSessionDomain(ctx context.Context, r *gin.RouterGroup, mw middleware.Middleware) error {
	ingestCfg := ingestion.Config{
		MaxConcurrency: srv.config.Ingest.MaxConcurrency,
		MaxFileBytes:   srv.config.Ingest.MaxFileBytes,
		ImportBucket:   srv.config.Ingest.ImportBucket,
	}
	factory := func() ingestion.UseCase {
		return ingestionUsecase.New(srv.l, ingestionMemory.New(), srv.minioClient, ingestCfg)
	}

	srv.sessionUC = sessionUsecase.New(srv.l, factory, session.Config{
		IdleTTL:       srv.config.Session.IdleTTL,
		SweepInterval: srv.config.Session.SweepInterval,
	})

	handler := sessionHTTP.New(srv.l, srv.sessionUC)
	handler.RegisterRoutes(r, mw)

	srv.l.Infof(ctx, "Session domain registered")
	return nil
}
