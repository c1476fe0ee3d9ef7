package sqlstore

import (
	"context"
	"fmt"
)

// schema совместима с SQLite и PostgreSQL
var schema = []string{
	`CREATE TABLE IF NOT EXISTS transactions (
		id TEXT PRIMARY KEY,
		sender TEXT NOT NULL,
		receiver TEXT NOT NULL,
		amount DOUBLE PRECISION NOT NULL,
		description TEXT NOT NULL DEFAULT '',
		status TEXT NOT NULL,
		score DOUBLE PRECISION NOT NULL,
		explanation TEXT NOT NULL,
		risk_factors TEXT NOT NULL DEFAULT '[]',
		source TEXT NOT NULL DEFAULT '',
		analyzed_at TIMESTAMP NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_transactions_status ON transactions(status)`,
	`CREATE INDEX IF NOT EXISTS idx_transactions_analyzed_at ON transactions(analyzed_at)`,
}

// initSchema создает таблицу и индексы, если их нет
func (s *Store) initSchema(ctx context.Context) error {
	for _, stmt := range schema {
		if _, err := s.db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("failed to execute schema statement: %w", err)
		}
	}
	return nil
}
