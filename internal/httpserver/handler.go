package httpserver

import (
	"context"

	"crawler-console/internal/middleware"
)

func (srv *HTTPServer) mapHandlers(ctx context.Context) error {
	mw := middleware.New(srv.l)

	srv.registerMiddlewares(mw)
	srv.registerSystemRoutes()

	r := srv.gin.Group("")

	if err := srv.setupSessionDomain(ctx, r, mw); err != nil {
		return err
	}
	if err := srv.setupIngestionDomain(ctx, r, mw); err != nil {
		return err
	}
	if err := srv.setupTransformDomain(ctx, r, mw); err != nil {
		return err
	}

	return nil
}

func (srv *HTTPServer) registerMiddlewares(mw middleware.Middleware) {
	srv.gin.Use(middleware.Recovery(srv.l))
	srv.gin.Use(mw.RequestID())
	srv.gin.Use(mw.AccessLog())
}

func (srv *HTTPServer) registerSystemRoutes() {
	srv.gin.GET("/health", srv.healthCheck)
	srv.gin.GET("/ready", srv.readyCheck)
	srv.gin.GET("/live", srv.liveCheck)
}
