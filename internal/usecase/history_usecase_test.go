package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"

	"github.com/walletapp/walletd/internal/domain"
	"github.com/walletapp/walletd/internal/usecase"
	"github.com/walletapp/walletd/internal/usecase/mocks"
)

func TestHistoryUseCase_GetHistoricalBalance(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	accountRepo := mocks.NewMockAccountRepository(ctrl)
	opRepo := mocks.NewMockOperationRepository(ctrl)

	at := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

	accountRepo.EXPECT().GetByID(gomock.Any(), "acc-1").Return(&domain.Account{ID: "acc-1"}, nil)
	opRepo.EXPECT().BalanceAt(gomock.Any(), "acc-1", at).Return(decimal.NewFromInt(500), nil)

	uc := usecase.NewHistoryUseCase(accountRepo, opRepo)

	balance, err := uc.GetHistoricalBalance(context.Background(), "acc-1", at)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !balance.Equal(decimal.NewFromInt(500)) {
		t.Errorf("expected balance 500, got %s", balance)
	}
}

func TestHistoryUseCase_GetHistoricalBalance_UnknownAccount(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	accountRepo := mocks.NewMockAccountRepository(ctrl)
	opRepo := mocks.NewMockOperationRepository(ctrl)

	// Existence is checked before the fold, so an unknown account is
	// reported as not-found rather than as a zero balance.
	accountRepo.EXPECT().GetByID(gomock.Any(), "missing").Return(nil, domain.ErrAccountNotFound)

	uc := usecase.NewHistoryUseCase(accountRepo, opRepo)

	_, err := uc.GetHistoricalBalance(context.Background(), "missing", time.Now())
	if !errors.Is(err, domain.ErrAccountNotFound) {
		t.Errorf("expected ErrAccountNotFound, got %v", err)
	}
}

func TestHistoryUseCase_ListOperations(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	accountRepo := mocks.NewMockAccountRepository(ctrl)
	opRepo := mocks.NewMockOperationRepository(ctrl)

	accountRepo.EXPECT().GetByID(gomock.Any(), "acc-1").Return(&domain.Account{ID: "acc-1"}, nil)
	opRepo.EXPECT().ListByAccount(gomock.Any(), "acc-1", 10, 0).Return([]*domain.Operation{
		{ID: "op-1", AccountID: "acc-1", Kind: domain.OperationDeposit, Amount: decimal.NewFromInt(100)},
		{ID: "op-2", AccountID: "acc-1", Kind: domain.OperationWithdrawal, Amount: decimal.NewFromInt(50)},
	}, nil)

	uc := usecase.NewHistoryUseCase(accountRepo, opRepo)

	ops, err := uc.ListOperations(context.Background(), usecase.ListOperationsInput{
		AccountID: "acc-1",
		Limit:     10,
		Offset:    0,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(ops) != 2 {
		t.Errorf("expected 2 operations, got %d", len(ops))
	}
}

func TestParseCutoff(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    time.Time
		wantErr bool
	}{
		{
			name: "date and time with T separator",
			raw:  "2024-06-01T12:30:00",
			want: time.Date(2024, 6, 1, 12, 30, 0, 0, time.UTC),
		},
		{
			name: "date and time with space separator",
			raw:  "2024-06-01 12:30:00",
			want: time.Date(2024, 6, 1, 12, 30, 0, 0, time.UTC),
		},
		{
			name: "rfc3339 with zone",
			raw:  "2024-06-01T12:30:00Z",
			want: time.Date(2024, 6, 1, 12, 30, 0, 0, time.UTC),
		},
		{
			name:    "garbage",
			raw:     "yesterday",
			wantErr: true,
		},
		{
			name:    "date only",
			raw:     "2024-06-01",
			wantErr: true,
		},
		{
			name:    "empty",
			raw:     "",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			at, err := usecase.ParseCutoff(tt.raw)

			if tt.wantErr {
				if !errors.Is(err, domain.ErrInvalidTimestamp) {
					t.Errorf("expected ErrInvalidTimestamp, got %v", err)
				}
				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if !at.Equal(tt.want) {
				t.Errorf("expected %s, got %s", tt.want, at)
			}
		})
	}
}
