package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := load(viper.New(), "")
	require.NoError(t, err)

	assert.Equal(t, 8000, cfg.Server.HTTPPort)
	assert.Equal(t, 50051, cfg.Server.GRPCPort)
	assert.Equal(t, DriverSQLite, cfg.Storage.Driver)
	assert.Equal(t, "transactions", cfg.Storage.Collection)
	assert.Equal(t, 3*time.Second, cfg.Storage.WriteTimeout)
	assert.Equal(t, time.Hour, cfg.Redis.CacheTTL)
	assert.Equal(t, []string{"localhost:9092"}, cfg.Kafka.Brokers)
	assert.Equal(t, "gemini-1.5-pro", cfg.Gemini.PrimaryModel)
	assert.Equal(t, "gemini-1.0-pro", cfg.Gemini.SecondaryModel)
	assert.Equal(t, 20*time.Second, cfg.Gemini.AttemptTimeout)
	assert.Equal(t, 45*time.Second, cfg.Gemini.TotalTimeout)
	assert.False(t, cfg.GeminiConfigured())
}

func TestLoad_Environment(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "test-key")
	t.Setenv("STORAGE_DRIVER", "MongoDB")
	t.Setenv("KAFKA_BROKERS", "kafka-1:9092, kafka-2:9092,")
	t.Setenv("GEMINI_ATTEMPT_TIMEOUT", "5s")

	cfg, err := load(viper.New(), "")
	require.NoError(t, err)

	assert.True(t, cfg.GeminiConfigured())
	assert.Equal(t, DriverMongoDB, cfg.Storage.Driver)
	assert.Equal(t, []string{"kafka-1:9092", "kafka-2:9092"}, cfg.Kafka.Brokers)
	assert.Equal(t, 5*time.Second, cfg.Gemini.AttemptTimeout)
}

func TestLoad_ConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := "http_port: 9090\nstorage_driver: postgres\npostgres_dsn: postgres://localhost/fraud\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	cfg, err := load(viper.New(), path)
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.HTTPPort)
	assert.Equal(t, DriverPostgres, cfg.Storage.Driver)
	assert.Equal(t, "postgres://localhost/fraud", cfg.Storage.PostgresDSN)
}

func TestLoad_MissingConfigFile(t *testing.T) {
	_, err := load(viper.New(), filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
