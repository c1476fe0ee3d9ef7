package storage

import (
	"context"
	"path/filepath"
	"testing"

	"crypto-fraud-detector/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpen_SQLite(t *testing.T) {
	repo, err := Open(context.Background(), config.StorageConfig{
		Driver:     config.DriverSQLite,
		SQLitePath: filepath.Join(t.TempDir(), "fraud.db"),
	})
	require.NoError(t, err)
	defer repo.Close()

	assert.Equal(t, config.DriverSQLite, repo.Driver())
	assert.True(t, repo.CollectionAvailable(context.Background()))
}

func TestOpen_UnknownDriver(t *testing.T) {
	repo, err := Open(context.Background(), config.StorageConfig{Driver: "cassandra"})
	assert.Error(t, err)
	assert.Nil(t, repo)
}

func TestOpen_PostgresWithoutDSN(t *testing.T) {
	repo, err := Open(context.Background(), config.StorageConfig{Driver: config.DriverPostgres})
	assert.Error(t, err)
	assert.Nil(t, repo)
}
