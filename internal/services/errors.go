package services

import "errors"

var (
	ErrStorageUnavailable  = errors.New("storage unavailable")
	ErrTransactionNotFound = errors.New("transaction not found")
	ErrAnalysisFailed      = errors.New("analysis failed")
)
