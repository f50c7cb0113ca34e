package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	ingestionHTTP "crawler-console/internal/ingestion/delivery/http"
	"crawler-console/internal/middleware"
)

func (srv *HTTPServer) setupIngestionDomain(ctx context.Context, r *gin.RouterGroup, mw middleware.Middleware) error {
	handler := ingestionHTTP.New(srv.l, srv.sessionUC, srv.config.Ingest.MaxUploadBytes)
	handler.RegisterRoutes(r, mw)

	if srv.minioClient == nil {
		srv.l.Warnf(ctx, "Ingestion domain registered without MinIO; storage import is disabled")
		return nil
	}
	srv.l.Infof(ctx, "Ingestion domain registered")
	return nil
}
