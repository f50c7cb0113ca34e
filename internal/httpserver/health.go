package httpserver

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"crawler-console/pkg/response"
)

// Health response constants (single source for version and service identity).
const (
	HealthMessage = "crawler-console data transformation API"
	HealthVersion = "1.0.0"
	ServiceName   = "crawler-console"

	depConnected = "connected"
	depDisabled  = "disabled"
)

// healthCheck handles health check requests
func (srv *HTTPServer) healthCheck(c *gin.Context) {
	response.OK(c, gin.H{
		"status":  "healthy",
		"message": HealthMessage,
		"version": HealthVersion,
		"service": ServiceName,
	})
}

// readyCheck pings the optional backends that are configured.
func (srv *HTTPServer) readyCheck(c *gin.Context) {
	ctx := c.Request.Context()

	deps := gin.H{
		"minio": depDisabled,
		"redis": depDisabled,
		"kafka": depDisabled,
	}

	if srv.minioClient != nil {
		if err := srv.minioClient.HealthCheck(ctx); err != nil {
			notReady(c, "MinIO connection failed", err)
			return
		}
		deps["minio"] = depConnected
	}
	if srv.redisClient != nil {
		if err := srv.redisClient.Ping(ctx); err != nil {
			notReady(c, "Redis connection failed", err)
			return
		}
		deps["redis"] = depConnected
	}
	if srv.kafkaProducer != nil {
		if err := srv.kafkaProducer.HealthCheck(); err != nil {
			notReady(c, "Kafka producer unavailable", err)
			return
		}
		deps["kafka"] = depConnected
	}

	response.OK(c, gin.H{
		"status":       "ready",
		"message":      HealthMessage,
		"version":      HealthVersion,
		"service":      ServiceName,
		"dependencies": deps,
	})
}

func notReady(c *gin.Context, msg string, err error) {
	c.JSON(http.StatusServiceUnavailable, gin.H{
		"status":  "not ready",
		"message": msg,
		"error":   err.Error(),
	})
}

// liveCheck handles liveness check requests
func (srv *HTTPServer) liveCheck(c *gin.Context) {
	response.OK(c, gin.H{
		"status":  "alive",
		"message": HealthMessage,
		"version": HealthVersion,
		"service": ServiceName,
	})
}
