package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Account represents a wallet account holding a non-negative balance.
type Account struct {
	ID        string
	OwnerID   string
	Balance   decimal.Decimal
	Version   int64
	CreatedAt time.Time
	UpdatedAt time.Time
}

// ValidateWithdrawal checks if the account holds enough funds for amount.
func (a *Account) ValidateWithdrawal(amount decimal.Decimal) error {
	if a.Balance.Sub(amount).IsNegative() {
		return ErrInsufficientFunds
	}
	return nil
}

// ApplyDeposit returns the new balance after crediting amount.
func (a *Account) ApplyDeposit(amount decimal.Decimal) decimal.Decimal {
	return a.Balance.Add(amount)
}

// ApplyWithdrawal returns the new balance after debiting amount.
func (a *Account) ApplyWithdrawal(amount decimal.Decimal) decimal.Decimal {
	return a.Balance.Sub(amount)
}
