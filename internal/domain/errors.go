package domain

import (
	"errors"
	"fmt"
)

var (
	// Account errors
	ErrAccountNotFound = errors.New("account not found")

	// Transfer errors naming the missing side; both match
	// ErrAccountNotFound under errors.Is.
	ErrSourceNotFound      = fmt.Errorf("source %w", ErrAccountNotFound)
	ErrDestinationNotFound = fmt.Errorf("destination %w", ErrAccountNotFound)

	// Operation errors
	ErrInvalidAmount     = errors.New("amount must be positive")
	ErrInsufficientFunds = errors.New("insufficient funds")
	ErrSameAccount       = errors.New("cannot transfer to same account")
	ErrOperationExists   = errors.New("operation already recorded for idempotency key")

	// ErrIdempotencyKeyReused reports a transfer retried with a key
	// already recorded by a non-transfer operation; no TransferResult
	// can be reconstructed from that record.
	ErrIdempotencyKeyReused = errors.New("idempotency key already used by another operation")

	// Query errors
	ErrInvalidTimestamp = errors.New("invalid timestamp")
)
