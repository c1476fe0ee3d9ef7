package sqlstore

import (
	"context"
	"fmt"
	"strings"
	"time"
)

const (
	maxRetries = 3
)

var retryDelay = 50 * time.Millisecond

// isRetryableError ошибки блокировки SQLite (SQLITE_BUSY, SQLITE_LOCKED)
func isRetryableError(err error) bool {
	if err == nil {
		return false
	}
	errStr := err.Error()
	return strings.Contains(errStr, "database is locked") ||
		strings.Contains(errStr, "SQLITE_BUSY") ||
		strings.Contains(errStr, "SQLITE_LOCKED")
}

// retryOperation повторяет операцию при ошибках блокировки с растущей задержкой
func retryOperation(ctx context.Context, operation func() error) error {
	var lastErr error
	for i := 0; i < maxRetries; i++ {
		err := operation()
		if err == nil {
			return nil
		}
		if !isRetryableError(err) {
			return err
		}
		lastErr = err

		if i < maxRetries-1 {
			select {
			case <-ctx.Done():
				return fmt.Errorf("retry interrupted: %w", ctx.Err())
			case <-time.After(retryDelay * time.Duration(i+1)):
			}
		}
	}

	return fmt.Errorf("operation failed after %d retries: %w", maxRetries, lastErr)
}
