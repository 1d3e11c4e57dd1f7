package domain

import (
	"errors"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
)

func TestValidateAmount(t *testing.T) {
	tests := []struct {
		name      string
		amount    decimal.Decimal
		wantError error
	}{
		{
			name:      "positive amount",
			amount:    decimal.NewFromInt(100),
			wantError: nil,
		},
		{
			name:      "smallest positive amount",
			amount:    decimal.RequireFromString("0.01"),
			wantError: nil,
		},
		{
			name:      "zero amount",
			amount:    decimal.Zero,
			wantError: ErrInvalidAmount,
		},
		{
			name:      "negative amount",
			amount:    decimal.NewFromInt(-5),
			wantError: ErrInvalidAmount,
		},
		{
			name:      "amount above maximum",
			amount:    decimal.RequireFromString(MaxOperationAmount).Add(decimal.NewFromInt(1)),
			wantError: ErrAmountTooLarge,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateAmount(tt.amount)

			if tt.wantError == nil {
				if err != nil {
					t.Errorf("unexpected error: %v", err)
				}
				return
			}

			if !errors.Is(err, tt.wantError) {
				t.Errorf("expected %v, got %v", tt.wantError, err)
			}
		})
	}
}

func TestParseAmount(t *testing.T) {
	amount, err := ParseAmount(" 42.50 ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !amount.Equal(decimal.RequireFromString("42.50")) {
		t.Errorf("expected 42.50, got %s", amount)
	}

	if _, err := ParseAmount("not-a-number"); !errors.Is(err, ErrInvalidAmount) {
		t.Errorf("expected ErrInvalidAmount, got %v", err)
	}

	if _, err := ParseAmount("-10"); !errors.Is(err, ErrInvalidAmount) {
		t.Errorf("expected ErrInvalidAmount, got %v", err)
	}
}

func TestValidateOwnerID(t *testing.T) {
	if err := ValidateOwnerID("user-123"); err != nil {
		t.Errorf("unexpected error: %v", err)
	}

	if err := ValidateOwnerID("   "); !errors.Is(err, ErrInvalidOwnerID) {
		t.Errorf("expected ErrInvalidOwnerID, got %v", err)
	}

	if err := ValidateOwnerID(strings.Repeat("x", MaxOwnerIDLength+1)); !errors.Is(err, ErrInvalidOwnerID) {
		t.Errorf("expected ErrInvalidOwnerID for oversized id, got %v", err)
	}
}

func TestValidateIdempotencyKey(t *testing.T) {
	if err := ValidateIdempotencyKey("tok-1"); err != nil {
		t.Errorf("unexpected error: %v", err)
	}

	if err := ValidateIdempotencyKey(""); !errors.Is(err, ErrMissingIdempotency) {
		t.Errorf("expected ErrMissingIdempotency, got %v", err)
	}
}
