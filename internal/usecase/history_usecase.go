package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/walletapp/walletd/internal/domain"
)

// Accepted textual cutoff layouts, tried in order. The first two match
// what clients of the original wallet API send; RFC3339 covers
// zone-qualified timestamps.
var cutoffLayouts = []string{
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	time.RFC3339,
}

// ParseCutoff parses a historical-balance cutoff timestamp. Unparsable
// input fails with ErrInvalidTimestamp.
func ParseCutoff(raw string) (time.Time, error) {
	for _, layout := range cutoffLayouts {
		if at, err := time.Parse(layout, raw); err == nil {
			return at.UTC(), nil
		}
	}

	return time.Time{}, fmt.Errorf("%w: %q (use 2006-01-02T15:04:05 or 2006-01-02 15:04:05)", domain.ErrInvalidTimestamp, raw)
}

// HistoryUseCase answers queries against the operation log.
type HistoryUseCase struct {
	accountRepo AccountRepository
	opRepo      OperationRepository
}

// NewHistoryUseCase creates a new HistoryUseCase.
func NewHistoryUseCase(accountRepo AccountRepository, opRepo OperationRepository) *HistoryUseCase {
	return &HistoryUseCase{
		accountRepo: accountRepo,
		opRepo:      opRepo,
	}
}

// GetHistoricalBalance reconstructs the balance of an account as of the
// cutoff by folding its operations. Account existence is checked first,
// so an unknown account fails with ErrAccountNotFound rather than
// reporting a zero balance.
func (uc *HistoryUseCase) GetHistoricalBalance(ctx context.Context, accountID string, at time.Time) (decimal.Decimal, error) {
	if _, err := uc.accountRepo.GetByID(ctx, accountID); err != nil {
		return decimal.Zero, err
	}

	return uc.opRepo.BalanceAt(ctx, accountID, at)
}

// ListOperationsInput represents input for listing operations.
type ListOperationsInput struct {
	AccountID string
	Limit     int
	Offset    int
}

// ListOperations lists the operation log for an account, newest first.
func (uc *HistoryUseCase) ListOperations(ctx context.Context, input ListOperationsInput) ([]*domain.Operation, error) {
	if input.Limit <= 0 {
		input.Limit = 20
	}

	if input.Limit > 100 {
		input.Limit = 100
	}

	if _, err := uc.accountRepo.GetByID(ctx, input.AccountID); err != nil {
		return nil, err
	}

	return uc.opRepo.ListByAccount(ctx, input.AccountID, input.Limit, input.Offset)
}
