package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/walletapp/walletd/internal/domain"
	"github.com/walletapp/walletd/internal/usecase"
)

// AccountResponse represents a wallet account in API responses.
type AccountResponse struct {
	ID        string          `json:"id"`
	OwnerID   string          `json:"owner_id"`
	Balance   decimal.Decimal `json:"balance"`
	Version   int64           `json:"version"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// AccountFromDomain converts domain account to response.
func AccountFromDomain(a *domain.Account) *AccountResponse {
	return &AccountResponse{
		ID:        a.ID,
		OwnerID:   a.OwnerID,
		Balance:   a.Balance,
		Version:   a.Version,
		CreatedAt: a.CreatedAt,
		UpdatedAt: a.UpdatedAt,
	}
}

// AccountsFromDomain converts domain accounts to responses.
func AccountsFromDomain(accounts []*domain.Account) []*AccountResponse {
	result := make([]*AccountResponse, len(accounts))
	for i, a := range accounts {
		result[i] = AccountFromDomain(a)
	}
	return result
}

// ListAccountsResponse wraps a page of accounts.
type ListAccountsResponse struct {
	Accounts []*AccountResponse `json:"accounts"`
	Total    int64              `json:"total"`
}

// OperationResponse represents a recorded operation in API responses.
type OperationResponse struct {
	ID             string          `json:"id"`
	AccountID      string          `json:"account_id"`
	Kind           string          `json:"kind"`
	Amount         decimal.Decimal `json:"amount"`
	BalanceAfter   decimal.Decimal `json:"balance_after"`
	IdempotencyKey string          `json:"idempotency_key"`
	Seq            int64           `json:"seq"`
	CreatedAt      time.Time       `json:"created_at"`
}

// OperationFromDomain converts domain operation to response.
func OperationFromDomain(op *domain.Operation) *OperationResponse {
	return &OperationResponse{
		ID:             op.ID,
		AccountID:      op.AccountID,
		Kind:           string(op.Kind),
		Amount:         op.Amount,
		BalanceAfter:   op.BalanceAfter,
		IdempotencyKey: op.IdempotencyKey,
		Seq:            op.Seq,
		CreatedAt:      op.CreatedAt,
	}
}

// OperationsFromDomain converts domain operations to responses.
func OperationsFromDomain(ops []*domain.Operation) []*OperationResponse {
	result := make([]*OperationResponse, len(ops))
	for i, op := range ops {
		result[i] = OperationFromDomain(op)
	}
	return result
}

// TransferResponse represents the pair of operations recorded by a transfer.
type TransferResponse struct {
	Outgoing *OperationResponse `json:"outgoing"`
	Incoming *OperationResponse `json:"incoming"`
}

// TransferFromResult converts a transfer result to response.
func TransferFromResult(result *usecase.TransferResult) *TransferResponse {
	return &TransferResponse{
		Outgoing: OperationFromDomain(result.Outgoing),
		Incoming: OperationFromDomain(result.Incoming),
	}
}

// BalanceResponse represents a balance snapshot in API responses.
type BalanceResponse struct {
	AccountID string          `json:"account_id"`
	Balance   decimal.Decimal `json:"balance"`
	At        *time.Time      `json:"at,omitempty"`
}

// ErrorResponse represents an error in API responses.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
