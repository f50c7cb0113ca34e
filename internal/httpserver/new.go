package httpserver

import (
	"errors"

	"github.com/gin-gonic/gin"

	"crawler-console/config"
	"crawler-console/internal/session"
	"crawler-console/pkg/kafka"
	"crawler-console/pkg/log"
	"crawler-console/pkg/minio"
	"crawler-console/pkg/redis"
)

type HTTPServer struct {
	// Server Configuration
	gin         *gin.Engine
	l           log.Logger
	host        string
	port        int
	mode        string
	environment string
	config      *config.Config

	// Optional infrastructure
	minioClient   minio.MinIO
	redisClient   redis.IRedis
	kafkaProducer kafka.IProducer

	// Domains shared across route groups
	sessionUC session.UseCase
}

type Config struct {
	// Server Configuration
	Logger      log.Logger
	Host        string
	Port        int
	Mode        string
	Environment string
	Config      *config.Config

	// Optional infrastructure; nil disables the feature that needs it
	MinIO         minio.MinIO
	Redis         redis.IRedis
	KafkaProducer kafka.IProducer
}

// New creates a new HTTPServer instance with the provided configuration.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		// Server Configuration
		l:           logger,
		gin:         gin.New(),
		host:        cfg.Host,
		port:        cfg.Port,
		mode:        cfg.Mode,
		environment: cfg.Environment,
		config:      cfg.Config,

		// Optional infrastructure
		minioClient:   cfg.MinIO,
		redisClient:   cfg.Redis,
		kafkaProducer: cfg.KafkaProducer,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	return srv, nil
}

// validate validates that all required dependencies are provided.
func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	// host can be empty (listen on all interfaces)
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.config == nil {
		return errors.New("config is required")
	}
	return nil
}
