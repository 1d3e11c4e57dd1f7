package usecase

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/walletapp/walletd/internal/domain"
)

// AccountRepository defines data access for accounts.
type AccountRepository interface {
	Create(ctx context.Context, account *domain.Account) error
	GetByID(ctx context.Context, id string) (*domain.Account, error)
	GetByIDForUpdate(ctx context.Context, tx Transaction, id string) (*domain.Account, error)
	GetByIDsForUpdate(ctx context.Context, tx Transaction, ids []string) ([]*domain.Account, error)
	UpdateBalance(ctx context.Context, tx Transaction, id string, balance decimal.Decimal, updatedAt time.Time) error
	List(ctx context.Context, limit, offset int) ([]*domain.Account, error)
}

// OperationRepository defines data access for the append-only operation log.
type OperationRepository interface {
	Create(ctx context.Context, tx Transaction, op *domain.Operation) error
	GetByIdempotencyKey(ctx context.Context, key string) ([]*domain.Operation, error)
	GetByIdempotencyKeyTx(ctx context.Context, tx Transaction, key string) ([]*domain.Operation, error)
	ListByAccount(ctx context.Context, accountID string, limit, offset int) ([]*domain.Operation, error)
	BalanceAt(ctx context.Context, accountID string, at time.Time) (decimal.Decimal, error)
}

// Transaction represents a database transaction.
type Transaction interface {
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
}

// TransactionManager handles transaction lifecycle.
type TransactionManager interface {
	Begin(ctx context.Context) (Transaction, error)
}

// IDGenerator generates unique IDs.
type IDGenerator interface {
	Generate() string
}

// Retrier re-runs an operation on transient storage failures.
type Retrier interface {
	Retry(ctx context.Context, operation func() error) error
}

// IdempotencyIndex is a fast-path lookup from idempotency key to
// "already applied". The operation log remains the source of truth;
// the index only short-circuits retries before a transaction is opened.
type IdempotencyIndex interface {
	Seen(ctx context.Context, key string) (bool, error)
	Mark(ctx context.Context, key string) error
}

// Cache defines caching operations for balance snapshot reads.
type Cache interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}
