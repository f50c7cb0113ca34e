package config

import (
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func defaultConfig(t *testing.T) *Config {
	t.Helper()
	v := viper.New()
	setDefaults(v)
	return fromViper(v)
}

func TestDefaults(t *testing.T) {
	cfg := defaultConfig(t)

	require.NoError(t, validate(cfg))
	assert.Equal(t, 8080, cfg.HTTPServer.Port)
	assert.Equal(t, 4, cfg.Ingest.MaxConcurrency)
	assert.Equal(t, int64(256<<20), cfg.Ingest.MaxFileBytes)
	assert.Equal(t, "suffix", cfg.Transform.CollisionPolicy)
	assert.Equal(t, time.Hour, cfg.Transform.ProgressTTL)
	assert.Equal(t, 30*time.Minute, cfg.Session.IdleTTL)
	assert.Equal(t, []string{"localhost:9092"}, cfg.Kafka.Brokers)
	assert.False(t, cfg.MinIO.Enabled)
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Setenv("HTTP_SERVER_PORT", "9090")
	t.Setenv("TRANSFORM_COLLISION_POLICY", "overwrite")
	t.Setenv("SESSION_IDLE_TTL", "5m")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 9090, cfg.HTTPServer.Port)
	assert.Equal(t, "overwrite", cfg.Transform.CollisionPolicy)
	assert.Equal(t, 5*time.Minute, cfg.Session.IdleTTL)
}

func TestValidate(t *testing.T) {
	tcs := map[string]struct {
		mutate func(*Config)
		errMsg string
	}{
		"bad port": {
			mutate: func(c *Config) { c.HTTPServer.Port = 0 },
			errMsg: "http_server.port",
		},
		"minio without key": {
			mutate: func(c *Config) {
				c.MinIO.Enabled = true
				c.MinIO.AccessKey = ""
			},
			errMsg: "minio.access_key",
		},
		"disabled minio skips checks": {
			mutate: func(c *Config) { c.MinIO.Endpoint = "" },
		},
		"redis without host": {
			mutate: func(c *Config) {
				c.Redis.Enabled = true
				c.Redis.Host = ""
			},
			errMsg: "redis.host",
		},
		"kafka without brokers": {
			mutate: func(c *Config) {
				c.Kafka.Enabled = true
				c.Kafka.Brokers = nil
			},
			errMsg: "kafka.brokers",
		},
		"zero concurrency": {
			mutate: func(c *Config) { c.Ingest.MaxConcurrency = 0 },
			errMsg: "ingest.max_concurrency",
		},
		"unknown collision policy": {
			mutate: func(c *Config) { c.Transform.CollisionPolicy = "rename" },
			errMsg: "transform.collision_policy",
		},
		"zero sweep interval": {
			mutate: func(c *Config) { c.Session.SweepInterval = 0 },
			errMsg: "session.sweep_interval",
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			cfg := defaultConfig(t)
			tc.mutate(cfg)

			err := validate(cfg)
			if tc.errMsg == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.errMsg)
		})
	}
}
