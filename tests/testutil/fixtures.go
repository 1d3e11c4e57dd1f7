package testutil

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/walletapp/walletd/internal/domain"
	"github.com/walletapp/walletd/internal/usecase"
)

// FundAccount deposits an opening balance through the engine so the
// operation log stays consistent with the account balance.
func FundAccount(t *testing.T, wallet *usecase.WalletUseCase, accountID, amount, key string) *domain.Operation {
	t.Helper()

	op, err := wallet.Deposit(context.Background(), usecase.DepositInput{
		AccountID:      accountID,
		Amount:         decimal.RequireFromString(amount),
		IdempotencyKey: key,
	})
	if err != nil {
		t.Fatalf("failed to fund account %s: %v", accountID, err)
	}

	return op
}
