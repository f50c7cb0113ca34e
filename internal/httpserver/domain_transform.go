package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	"crawler-console/internal/middleware"
	"crawler-console/internal/normalize"
	"crawler-console/internal/transform"
	transformHTTP "crawler-console/internal/transform/delivery/http"
	transformProducer "crawler-console/internal/transform/delivery/kafka/producer"
	"crawler-console/internal/transform/repository"
	transformRedis "crawler-console/internal/transform/repository/redis"
	transformUsecase "crawler-console/internal/transform/usecase"
)

func (srv *HTTPServer) setupTransformDomain(ctx context.Context, r *gin.RouterGroup, mw middleware.Middleware) error {
	var repo repository.ProgressRepository
	if srv.redisClient != nil {
		repo = transformRedis.New(srv.l, srv.redisClient)
	} else {
		srv.l.Warnf(ctx, "Redis not configured; transform progress is not queryable")
	}

	var producer transform.Producer
	if srv.kafkaProducer != nil {
		producer = transformProducer.New(srv.l, srv.kafkaProducer)
	}

	uc := transformUsecase.New(srv.l, normalize.New(), repo, producer, transform.Config{
		CollisionPolicy: transform.CollisionPolicy(srv.config.Transform.CollisionPolicy),
		ProgressTTL:     srv.config.Transform.ProgressTTL,
	})

	handler := transformHTTP.New(srv.l, uc, srv.sessionUC)
	handler.RegisterRoutes(r, mw)

	srv.l.Infof(ctx, "Transform domain registered")
	return nil
}
