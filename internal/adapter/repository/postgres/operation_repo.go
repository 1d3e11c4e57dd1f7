package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/walletapp/walletd/internal/domain"
	"github.com/walletapp/walletd/internal/infrastructure/postgres/generated"
	"github.com/walletapp/walletd/internal/usecase"
)

const pgErrUniqueViolation = "23505"

// OperationRepository implements usecase.OperationRepository.
type OperationRepository struct {
	pool    *pgxpool.Pool
	queries *generated.Queries
}

// NewOperationRepository creates a new OperationRepository.
func NewOperationRepository(pool *pgxpool.Pool) *OperationRepository {
	return &OperationRepository{
		pool:    pool,
		queries: generated.New(pool),
	}
}

// Create records an operation inside the given transaction. The database
// assigns seq; a duplicate (idempotency_key, kind) pair surfaces as
// domain.ErrOperationExists.
func (r *OperationRepository) Create(ctx context.Context, tx usecase.Transaction, op *domain.Operation) error {
	pgxTx := tx.(*Tx).PgxTx()
	queries := generated.New(pgxTx)

	row, err := queries.CreateOperation(ctx, generated.CreateOperationParams{
		ID:             op.ID,
		AccountID:      op.AccountID,
		Kind:           string(op.Kind),
		Amount:         decimalToNumeric(op.Amount),
		BalanceAfter:   decimalToNumeric(op.BalanceAfter),
		IdempotencyKey: op.IdempotencyKey,
		CreatedAt:      timeToPgTimestamptz(op.CreatedAt),
	})
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgErrUniqueViolation {
			return domain.ErrOperationExists
		}

		return err
	}

	op.Seq = row.Seq

	return nil
}

// GetByIdempotencyKey retrieves all operations recorded under a key.
func (r *OperationRepository) GetByIdempotencyKey(ctx context.Context, key string) ([]*domain.Operation, error) {
	rows, err := r.queries.GetOperationsByIdempotencyKey(ctx, key)
	if err != nil {
		return nil, err
	}

	return rowsToOperations(rows), nil
}

// GetByIdempotencyKeyTx retrieves operations under a key within a transaction,
// so the check observes rows written by concurrent committed transactions
// after the account locks were taken.
func (r *OperationRepository) GetByIdempotencyKeyTx(ctx context.Context, tx usecase.Transaction, key string) ([]*domain.Operation, error) {
	pgxTx := tx.(*Tx).PgxTx()
	queries := generated.New(pgxTx)

	rows, err := queries.GetOperationsByIdempotencyKey(ctx, key)
	if err != nil {
		return nil, err
	}

	return rowsToOperations(rows), nil
}

// ListByAccount retrieves operations for an account, newest first.
func (r *OperationRepository) ListByAccount(ctx context.Context, accountID string, limit, offset int) ([]*domain.Operation, error) {
	rows, err := r.queries.ListOperationsByAccount(ctx, generated.ListOperationsByAccountParams{
		AccountID: accountID,
		Limit:     int32(limit),
		Offset:    int32(offset),
	})
	if err != nil {
		return nil, err
	}

	return rowsToOperations(rows), nil
}

// BalanceAt computes the balance of an account at a point in time by
// summing the signed amounts of all operations recorded at or before it.
func (r *OperationRepository) BalanceAt(ctx context.Context, accountID string, at time.Time) (decimal.Decimal, error) {
	balance, err := r.queries.GetAccountBalanceAt(ctx, generated.GetAccountBalanceAtParams{
		AccountID: accountID,
		CreatedAt: timeToPgTimestamptz(at),
	})
	if err != nil {
		return decimal.Zero, err
	}

	return numericToDecimal(balance), nil
}

func rowsToOperations(rows []generated.Operation) []*domain.Operation {
	ops := make([]*domain.Operation, 0, len(rows))
	for _, row := range rows {
		ops = append(ops, rowToOperation(row))
	}

	return ops
}

func rowToOperation(row generated.Operation) *domain.Operation {
	return &domain.Operation{
		ID:             row.ID,
		AccountID:      row.AccountID,
		Kind:           domain.OperationKind(row.Kind),
		Amount:         numericToDecimal(row.Amount),
		BalanceAfter:   numericToDecimal(row.BalanceAfter),
		IdempotencyKey: row.IdempotencyKey,
		Seq:            row.Seq,
		CreatedAt:      row.CreatedAt.Time,
	}
}
