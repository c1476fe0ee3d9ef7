package sqlstore

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"crypto-fraud-detector/internal/config"
	"crypto-fraud-detector/internal/logger"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"
)

// Store хранилище транзакций в SQL базе (SQLite или PostgreSQL)
type Store struct {
	db     *sqlx.DB
	driver string
}

// NewSQLite открывает файл SQLite и создает схему
func NewSQLite(ctx context.Context, dbPath string) (*Store, error) {
	if dbPath == "" {
		dbPath = "./data/crypto_fraud.db"
	}

	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}

	dsn := fmt.Sprintf("file:%s?_journal_mode=WAL&_foreign_keys=1", dbPath)
	logger.Log.Infow("Connecting to SQLite", "path", dbPath)

	db, err := sqlx.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// SQLite поддерживает только одно соединение для записи
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(5 * time.Minute)

	return open(ctx, db, config.DriverSQLite)
}

// NewPostgres подключается к PostgreSQL через pgx и создает схему
func NewPostgres(ctx context.Context, dsn string) (*Store, error) {
	if dsn == "" {
		return nil, fmt.Errorf("postgres dsn is empty")
	}

	logger.Log.Infow("Connecting to PostgreSQL")
	db, err := sqlx.Open("pgx", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	db.SetMaxOpenConns(20)
	db.SetMaxIdleConns(10)
	db.SetConnMaxLifetime(5 * time.Minute)

	return open(ctx, db, config.DriverPostgres)
}

// NewFromDB оборачивает уже открытое соединение без создания схемы
func NewFromDB(db *sqlx.DB, driver string) *Store {
	return &Store{db: db, driver: driver}
}

func open(ctx context.Context, db *sqlx.DB, driver string) (*Store, error) {
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	store := &Store{db: db, driver: driver}
	if err := store.initSchema(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	logger.Log.Infow("SQL storage connection established", "driver", driver)
	return store, nil
}

// Driver возвращает имя драйвера
func (s *Store) Driver() string {
	return s.driver
}

// Close закрывает соединение с БД
func (s *Store) Close() error {
	return s.db.Close()
}
