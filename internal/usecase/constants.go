package usecase

import "time"

const (
	// DefaultTransactionTimeout is the maximum duration for a database transaction.
	// This prevents long-running transactions from blocking account rows.
	DefaultTransactionTimeout = 10 * time.Second

	// BalanceCacheTTL bounds staleness of cached balance snapshot reads.
	BalanceCacheTTL = 2 * time.Second
)
