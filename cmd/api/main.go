package main

import (
	"context"
	"fmt"

	"crawler-console/config"
	configKafka "crawler-console/config/kafka"
	configMinio "crawler-console/config/minio"
	configRedis "crawler-console/config/redis"
	"crawler-console/internal/httpserver"
	pkgKafka "crawler-console/pkg/kafka"
	"crawler-console/pkg/log"
	pkgMinio "crawler-console/pkg/minio"
	pkgRedis "crawler-console/pkg/redis"
)

func main() {
	// 1. Load configuration
	// Reads config from YAML file and environment variables
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Initialize logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx := context.Background()

	// 3. MinIO (optional): storage import of crawler exports
	var minioClient pkgMinio.MinIO
	if cfg.MinIO.Enabled {
		minioClient, err = configMinio.Connect(ctx, cfg.MinIO)
		if err != nil {
			logger.Error(ctx, "Failed to connect to MinIO: ", err)
			return
		}
		defer configMinio.Disconnect()
		logger.Infof(ctx, "MinIO connected successfully to %s", cfg.MinIO.Endpoint)
	}

	// 4. Redis (optional): transform progress
	var redisClient pkgRedis.IRedis
	if cfg.Redis.Enabled {
		redisClient, err = configRedis.Connect(ctx, cfg.Redis)
		if err != nil {
			logger.Error(ctx, "Failed to connect to Redis: ", err)
			return
		}
		defer configRedis.Disconnect()
		logger.Infof(ctx, "Redis connected successfully to %s:%d (DB %d)", cfg.Redis.Host, cfg.Redis.Port, cfg.Redis.DB)
	}

	// 5. Kafka (optional): transform events
	var kafkaProducer pkgKafka.IProducer
	if cfg.Kafka.Enabled {
		kafkaProducer, err = configKafka.ConnectProducer(cfg.Kafka)
		if err != nil {
			logger.Error(ctx, "Failed to connect to Kafka producer: ", err)
			return
		}
		defer configKafka.DisconnectProducer()
		logger.Infof(ctx, "Kafka producer connected to %v", cfg.Kafka.Brokers)
	}

	// 6. Initialize HTTP server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		// Server Configuration
		Logger:      logger,
		Host:        cfg.HTTPServer.Host,
		Port:        cfg.HTTPServer.Port,
		Mode:        cfg.HTTPServer.Mode,
		Environment: cfg.Environment.Name,
		Config:      cfg,

		// Optional infrastructure
		MinIO:         minioClient,
		Redis:         redisClient,
		KafkaProducer: kafkaProducer,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	if err := httpServer.Run(); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}
}
