package domain

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Validation errors
var (
	ErrAmountTooLarge     = errors.New("amount exceeds maximum allowed")
	ErrInvalidOwnerID     = errors.New("invalid owner id")
	ErrMissingIdempotency = errors.New("idempotency key is required")
)

// Validation constants
const (
	MaxOperationAmount = "1000000000000" // 1 trillion
	MaxOwnerIDLength   = 64
)

// ValidateAmount validates a deposit/withdrawal/transfer amount.
func ValidateAmount(amount decimal.Decimal) error {
	if amount.LessThanOrEqual(decimal.Zero) {
		return ErrInvalidAmount
	}

	maxAmount, _ := decimal.NewFromString(MaxOperationAmount)
	if amount.GreaterThan(maxAmount) {
		return fmt.Errorf("%w: maximum amount is %s", ErrAmountTooLarge, MaxOperationAmount)
	}

	return nil
}

// ParseAmount parses a textual decimal amount and validates it.
func ParseAmount(raw string) (decimal.Decimal, error) {
	amount, err := decimal.NewFromString(strings.TrimSpace(raw))
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %q is not a decimal", ErrInvalidAmount, raw)
	}

	if err := ValidateAmount(amount); err != nil {
		return decimal.Zero, err
	}

	return amount, nil
}

// ValidateOwnerID validates an owner identifier.
func ValidateOwnerID(ownerID string) error {
	ownerID = strings.TrimSpace(ownerID)

	if ownerID == "" {
		return fmt.Errorf("%w: owner id cannot be empty", ErrInvalidOwnerID)
	}

	if len(ownerID) > MaxOwnerIDLength {
		return fmt.Errorf("%w: owner id exceeds %d characters", ErrInvalidOwnerID, MaxOwnerIDLength)
	}

	return nil
}

// ValidateIdempotencyKey checks the caller supplied a key. Keys are
// opaque; no format is enforced beyond presence.
func ValidateIdempotencyKey(key string) error {
	if strings.TrimSpace(key) == "" {
		return ErrMissingIdempotency
	}
	return nil
}
