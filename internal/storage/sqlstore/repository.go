package sqlstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"crypto-fraud-detector/internal/models"
)

const insertTransaction = `
	INSERT INTO transactions (
		id, sender, receiver, amount, description, status,
		score, explanation, risk_factors, source, analyzed_at
	) VALUES (
		:id, :sender, :receiver, :amount, :description, :status,
		:score, :explanation, :risk_factors, :source, :analyzed_at
	)
`

const selectTransaction = `
	SELECT id, sender, receiver, amount, description, status,
	       score, explanation, risk_factors, source, analyzed_at
	FROM transactions
	WHERE id = ?
`

// Save сохраняет запись анализа
func (s *Store) Save(ctx context.Context, record *models.TransactionRecord) error {
	return retryOperation(ctx, func() error {
		if _, err := s.db.NamedExecContext(ctx, insertTransaction, record); err != nil {
			return fmt.Errorf("failed to insert transaction: %w", err)
		}
		return nil
	})
}

// GetByID возвращает запись по id или nil, если ее нет
func (s *Store) GetByID(ctx context.Context, id string) (*models.TransactionRecord, error) {
	var record models.TransactionRecord
	err := s.db.GetContext(ctx, &record, s.db.Rebind(selectTransaction), id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get transaction: %w", err)
	}
	return &record, nil
}

// Ping проверяет соединение
func (s *Store) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// CollectionAvailable проверяет наличие таблицы transactions
func (s *Store) CollectionAvailable(ctx context.Context) bool {
	var one int
	err := s.db.QueryRowxContext(ctx, "SELECT 1 FROM transactions LIMIT 1").Scan(&one)
	return err == nil || errors.Is(err, sql.ErrNoRows)
}
