package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// OperationKind identifies the effect of an operation on its account.
type OperationKind string

const (
	OperationDeposit     OperationKind = "deposit"
	OperationWithdrawal  OperationKind = "withdrawal"
	OperationTransferOut OperationKind = "transfer_out"
	OperationTransferIn  OperationKind = "transfer_in"
)

// Valid reports whether k is a known operation kind.
func (k OperationKind) Valid() bool {
	switch k {
	case OperationDeposit, OperationWithdrawal, OperationTransferOut, OperationTransferIn:
		return true
	}
	return false
}

// Sign returns the contribution of the kind when folding a balance:
// +1 for credits (deposit, transfer_in), -1 for debits.
func (k OperationKind) Sign() decimal.Decimal {
	switch k {
	case OperationDeposit, OperationTransferIn:
		return decimal.NewFromInt(1)
	default:
		return decimal.NewFromInt(-1)
	}
}

// Operation is an immutable append-only record of one balance-affecting
// event. Amount is always positive; Kind carries the direction. Seq is
// assigned by storage in insertion order and breaks timestamp ties
// during replay.
type Operation struct {
	ID             string
	AccountID      string
	Kind           OperationKind
	Amount         decimal.Decimal
	BalanceAfter   decimal.Decimal
	IdempotencyKey string
	Seq            int64
	CreatedAt      time.Time
}

// SignedAmount returns the amount with the sign implied by the kind.
func (o *Operation) SignedAmount() decimal.Decimal {
	return o.Amount.Mul(o.Kind.Sign())
}
