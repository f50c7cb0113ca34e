package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment Configuration
	Environment EnvironmentConfig

	// Server Configuration
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// MinIO - Crawler export storage (optional)
	MinIO MinIOConfig

	// Redis - Transform progress (optional)
	Redis RedisConfig

	// Kafka - Transform events (optional)
	Kafka KafkaConfig

	// Pipeline
	Ingest    IngestConfig
	Transform TransformConfig
	Session   SessionConfig
}

// EnvironmentConfig is the configuration for the deployment environment.
type EnvironmentConfig struct {
	Name string
}

// HTTPServerConfig is the configuration for the HTTP server
type HTTPServerConfig struct {
	Host string
	Port int
	Mode string
}

// LoggerConfig is the configuration for the logger
type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

// MinIOConfig is the configuration for MinIO
type MinIOConfig struct {
	Enabled   bool
	Endpoint  string
	AccessKey string
	SecretKey string
	UseSSL    bool
	Region    string
}

// RedisConfig is the configuration for Redis
type RedisConfig struct {
	Enabled  bool
	Host     string
	Port     int
	Password string
	DB       int
}

// KafkaConfig is the configuration for Kafka
type KafkaConfig struct {
	Enabled  bool
	Brokers  []string
	ClientID string
}

// IngestConfig bounds file ingestion.
type IngestConfig struct {
	MaxConcurrency int
	MaxUploadBytes int64
	MaxFileBytes   int64
	ImportBucket   string
}

// TransformConfig tunes transform jobs.
type TransformConfig struct {
	CollisionPolicy string
	ProgressTTL     time.Duration
}

// SessionConfig controls workspace expiry.
type SessionConfig struct {
	IdleTTL       time.Duration
	SweepInterval time.Duration
}

// Load loads configuration using Viper
func Load() (*Config, error) {
	v := viper.New()

	// Set config file name and paths
	v.SetConfigName("crawler-console")
	v.SetConfigType("yaml")
	v.AddConfigPath("./config")
	v.AddConfigPath(".")
	v.AddConfigPath("/etc/crawler-console/")

	// Enable environment variable override
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults(v)

	// Config file is optional; env vars and defaults are enough
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := fromViper(v)
	if err := validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

func fromViper(v *viper.Viper) *Config {
	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = v.GetString("environment.name")
	cfg.HTTPServer.Host = v.GetString("http_server.host")
	cfg.HTTPServer.Port = v.GetInt("http_server.port")
	cfg.HTTPServer.Mode = v.GetString("http_server.mode")
	cfg.Logger.Level = v.GetString("logger.level")
	cfg.Logger.Mode = v.GetString("logger.mode")
	cfg.Logger.Encoding = v.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = v.GetBool("logger.color_enabled")

	// MinIO
	cfg.MinIO.Enabled = v.GetBool("minio.enabled")
	cfg.MinIO.Endpoint = v.GetString("minio.endpoint")
	cfg.MinIO.AccessKey = v.GetString("minio.access_key")
	cfg.MinIO.SecretKey = v.GetString("minio.secret_key")
	cfg.MinIO.UseSSL = v.GetBool("minio.use_ssl")
	cfg.MinIO.Region = v.GetString("minio.region")

	// Redis
	cfg.Redis.Enabled = v.GetBool("redis.enabled")
	cfg.Redis.Host = v.GetString("redis.host")
	cfg.Redis.Port = v.GetInt("redis.port")
	cfg.Redis.Password = v.GetString("redis.password")
	cfg.Redis.DB = v.GetInt("redis.db")

	// Kafka
	cfg.Kafka.Enabled = v.GetBool("kafka.enabled")
	cfg.Kafka.Brokers = v.GetStringSlice("kafka.brokers")
	cfg.Kafka.ClientID = v.GetString("kafka.client_id")

	// Ingest
	cfg.Ingest.MaxConcurrency = v.GetInt("ingest.max_concurrency")
	cfg.Ingest.MaxUploadBytes = v.GetInt64("ingest.max_upload_bytes")
	cfg.Ingest.MaxFileBytes = v.GetInt64("ingest.max_file_bytes")
	cfg.Ingest.ImportBucket = v.GetString("ingest.import_bucket")

	// Transform
	cfg.Transform.CollisionPolicy = v.GetString("transform.collision_policy")
	cfg.Transform.ProgressTTL = v.GetDuration("transform.progress_ttl")

	// Session
	cfg.Session.IdleTTL = v.GetDuration("session.idle_ttl")
	cfg.Session.SweepInterval = v.GetDuration("session.sweep_interval")

	return cfg
}

func setDefaults(v *viper.Viper) {
	// Environment
	v.SetDefault("environment.name", "production")

	// HTTP Server
	v.SetDefault("http_server.host", "")
	v.SetDefault("http_server.port", 8080)
	v.SetDefault("http_server.mode", "debug")

	// Logger
	v.SetDefault("logger.level", "debug")
	v.SetDefault("logger.mode", "debug")
	v.SetDefault("logger.encoding", "console")
	v.SetDefault("logger.color_enabled", true)

	// MinIO
	v.SetDefault("minio.enabled", false)
	v.SetDefault("minio.endpoint", "localhost:9000")
	v.SetDefault("minio.access_key", "minioadmin")
	v.SetDefault("minio.secret_key", "minioadmin")
	v.SetDefault("minio.use_ssl", false)
	v.SetDefault("minio.region", "us-east-1")

	// Redis
	v.SetDefault("redis.enabled", false)
	v.SetDefault("redis.host", "localhost")
	v.SetDefault("redis.port", 6379)
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)

	// Kafka
	v.SetDefault("kafka.enabled", false)
	v.SetDefault("kafka.brokers", []string{"localhost:9092"})
	v.SetDefault("kafka.client_id", "crawler-console")

	// Ingest
	v.SetDefault("ingest.max_concurrency", 4)
	v.SetDefault("ingest.max_upload_bytes", 512<<20)
	v.SetDefault("ingest.max_file_bytes", 256<<20)
	v.SetDefault("ingest.import_bucket", "crawler-exports")

	// Transform
	v.SetDefault("transform.collision_policy", "suffix")
	v.SetDefault("transform.progress_ttl", time.Hour)

	// Session
	v.SetDefault("session.idle_ttl", 30*time.Minute)
	v.SetDefault("session.sweep_interval", time.Minute)
}

func validate(cfg *Config) error {
	if cfg.HTTPServer.Port <= 0 || cfg.HTTPServer.Port > 65535 {
		return fmt.Errorf("http_server.port must be between 1 and 65535")
	}

	if cfg.MinIO.Enabled {
		if cfg.MinIO.Endpoint == "" {
			return fmt.Errorf("minio.endpoint is required")
		}
		if cfg.MinIO.AccessKey == "" {
			return fmt.Errorf("minio.access_key is required")
		}
		if cfg.MinIO.SecretKey == "" {
			return fmt.Errorf("minio.secret_key is required")
		}
	}

	if cfg.Redis.Enabled {
		if cfg.Redis.Host == "" {
			return fmt.Errorf("redis.host is required")
		}
		if cfg.Redis.Port == 0 {
			return fmt.Errorf("redis.port is required")
		}
	}

	if cfg.Kafka.Enabled && len(cfg.Kafka.Brokers) == 0 {
		return fmt.Errorf("kafka.brokers must have at least one value")
	}

	if cfg.Ingest.MaxConcurrency <= 0 {
		return fmt.Errorf("ingest.max_concurrency must be greater than 0")
	}
	if cfg.Ingest.MaxUploadBytes <= 0 {
		return fmt.Errorf("ingest.max_upload_bytes must be greater than 0")
	}
	if cfg.Ingest.MaxFileBytes <= 0 {
		return fmt.Errorf("ingest.max_file_bytes must be greater than 0")
	}

	switch cfg.Transform.CollisionPolicy {
	case "suffix", "overwrite":
	default:
		return fmt.Errorf("transform.collision_policy must be suffix or overwrite")
	}
	if cfg.Transform.ProgressTTL <= 0 {
		return fmt.Errorf("transform.progress_ttl must be greater than 0")
	}

	if cfg.Session.IdleTTL <= 0 {
		return fmt.Errorf("session.idle_ttl must be greater than 0")
	}
	if cfg.Session.SweepInterval <= 0 {
		return fmt.Errorf("session.sweep_interval must be greater than 0")
	}

	return nil
}
