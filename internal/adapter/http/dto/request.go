package dto

import (
	"github.com/shopspring/decimal"

	"github.com/walletapp/walletd/internal/usecase"
)

// CreateWalletRequest represents a request to create a wallet account.
type CreateWalletRequest struct {
	OwnerID string `json:"owner_id"`
}

// ToUseCaseInput converts to use case input.
func (r *CreateWalletRequest) ToUseCaseInput() usecase.CreateAccountInput {
	return usecase.CreateAccountInput{
		OwnerID: r.OwnerID,
	}
}

// MoveMoneyRequest represents a deposit or withdrawal request. The
// idempotency key may come from the body or the Idempotency-Key header;
// the header wins when both are set.
type MoveMoneyRequest struct {
	Amount         decimal.Decimal `json:"amount"`
	IdempotencyKey string          `json:"idempotency_key"`
}

// CreateTransferRequest represents a request to move money between two wallets.
type CreateTransferRequest struct {
	FromAccountID  string          `json:"from_account_id"`
	ToAccountID    string          `json:"to_account_id"`
	Amount         decimal.Decimal `json:"amount"`
	IdempotencyKey string          `json:"idempotency_key"`
}

// ToUseCaseInput converts to use case input.
func (r *CreateTransferRequest) ToUseCaseInput() usecase.TransferInput {
	return usecase.TransferInput{
		FromAccountID:  r.FromAccountID,
		ToAccountID:    r.ToAccountID,
		Amount:         r.Amount,
		IdempotencyKey: r.IdempotencyKey,
	}
}
