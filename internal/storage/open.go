package storage

import (
	"context"
	"fmt"

	"crypto-fraud-detector/internal/config"
	"crypto-fraud-detector/internal/storage/mongostore"
	"crypto-fraud-detector/internal/storage/sqlstore"
)

var (
	_ TransactionRepository = (*sqlstore.Store)(nil)
	_ TransactionRepository = (*mongostore.Store)(nil)
)

// Open подключает хранилище, выбранное через STORAGE_DRIVER
func Open(ctx context.Context, cfg config.StorageConfig) (TransactionRepository, error) {
	var (
		repo TransactionRepository
		err  error
	)

	switch cfg.Driver {
	case config.DriverSQLite, "":
		repo, err = sqlstore.NewSQLite(ctx, cfg.SQLitePath)
	case config.DriverPostgres:
		repo, err = sqlstore.NewPostgres(ctx, cfg.PostgresDSN)
	case config.DriverMongoDB:
		repo, err = mongostore.New(ctx, cfg)
	default:
		return nil, fmt.Errorf("unknown storage driver %q", cfg.Driver)
	}

	if err != nil {
		return nil, fmt.Errorf("failed to open %s storage: %w", cfg.Driver, err)
	}
	return repo, nil
}
