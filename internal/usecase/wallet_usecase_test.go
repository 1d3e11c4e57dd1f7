package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	promtestutil "github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"

	"github.com/walletapp/walletd/internal/domain"
	"github.com/walletapp/walletd/internal/infrastructure/metrics"
	"github.com/walletapp/walletd/internal/usecase"
	"github.com/walletapp/walletd/internal/usecase/mocks"
)

type engineMocks struct {
	accountRepo *mocks.MockAccountRepository
	opRepo      *mocks.MockOperationRepository
	txManager   *mocks.MockTransactionManager
	tx          *mocks.MockTransaction
	idGen       *mocks.MockIDGenerator
}

func newEngine(ctrl *gomock.Controller) (*usecase.WalletUseCase, engineMocks) {
	m := engineMocks{
		accountRepo: mocks.NewMockAccountRepository(ctrl),
		opRepo:      mocks.NewMockOperationRepository(ctrl),
		txManager:   mocks.NewMockTransactionManager(ctrl),
		tx:          mocks.NewMockTransaction(ctrl),
		idGen:       mocks.NewMockIDGenerator(ctrl),
	}

	uc := usecase.NewWalletUseCase(m.txManager, m.accountRepo, m.opRepo, m.idGen, nil, nil, nil, nil)

	return uc, m
}

func expectMutation(m engineMocks) {
	m.txManager.EXPECT().Begin(gomock.Any()).Return(m.tx, nil)
	m.tx.EXPECT().Rollback(gomock.Any()).Return(nil).AnyTimes()
	m.idGen.EXPECT().Generate().Return("op-id").AnyTimes()
}

func TestWalletUseCase_CreateAccount(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc, m := newEngine(ctrl)
	m.idGen.EXPECT().Generate().Return("acc-1")
	m.accountRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)

	account, err := uc.CreateAccount(context.Background(), usecase.CreateAccountInput{OwnerID: "owner-1"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if account.ID != "acc-1" || account.OwnerID != "owner-1" {
		t.Errorf("unexpected account %+v", account)
	}

	if !account.Balance.IsZero() {
		t.Errorf("expected zero starting balance, got %s", account.Balance)
	}
}

func TestWalletUseCase_CreateAccount_InvalidOwner(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc, _ := newEngine(ctrl)

	if _, err := uc.CreateAccount(context.Background(), usecase.CreateAccountInput{OwnerID: "  "}); !errors.Is(err, domain.ErrInvalidOwnerID) {
		t.Errorf("expected ErrInvalidOwnerID, got %v", err)
	}
}

func TestWalletUseCase_Deposit(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc, m := newEngine(ctrl)
	expectMutation(m)

	account := &domain.Account{ID: "acc-1", Balance: decimal.NewFromInt(50)}
	m.opRepo.EXPECT().GetByIdempotencyKey(gomock.Any(), "tok-1").Return(nil, nil)
	m.opRepo.EXPECT().GetByIdempotencyKeyTx(gomock.Any(), m.tx, "tok-1").Return(nil, nil)
	m.accountRepo.EXPECT().GetByIDForUpdate(gomock.Any(), m.tx, "acc-1").Return(account, nil)

	var recorded *domain.Operation
	m.opRepo.EXPECT().Create(gomock.Any(), m.tx, gomock.Any()).DoAndReturn(
		func(_ context.Context, _ usecase.Transaction, op *domain.Operation) error {
			recorded = op
			return nil
		})
	m.accountRepo.EXPECT().UpdateBalance(gomock.Any(), m.tx, "acc-1", decimal.NewFromInt(80), gomock.Any()).Return(nil)
	m.tx.EXPECT().Commit(gomock.Any()).Return(nil)

	op, err := uc.Deposit(context.Background(), usecase.DepositInput{
		AccountID:      "acc-1",
		Amount:         decimal.NewFromInt(30),
		IdempotencyKey: "tok-1",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if op.Kind != domain.OperationDeposit {
		t.Errorf("expected deposit kind, got %s", op.Kind)
	}

	if !op.BalanceAfter.Equal(decimal.NewFromInt(80)) {
		t.Errorf("expected balance after 80, got %s", op.BalanceAfter)
	}

	if recorded == nil || recorded.IdempotencyKey != "tok-1" {
		t.Errorf("expected recorded operation to carry the idempotency key, got %+v", recorded)
	}
}

func TestWalletUseCase_Deposit_InvalidAmount(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc, m := newEngine(ctrl)
	m.opRepo.EXPECT().GetByIdempotencyKey(gomock.Any(), "tok-1").Return(nil, nil).Times(2)

	for _, amount := range []decimal.Decimal{decimal.Zero, decimal.NewFromInt(-10)} {
		_, err := uc.Deposit(context.Background(), usecase.DepositInput{
			AccountID:      "acc-1",
			Amount:         amount,
			IdempotencyKey: "tok-1",
		})
		if !errors.Is(err, domain.ErrInvalidAmount) {
			t.Errorf("amount %s: expected ErrInvalidAmount, got %v", amount, err)
		}
	}
}

func TestWalletUseCase_Deposit_MissingKey(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc, _ := newEngine(ctrl)

	_, err := uc.Deposit(context.Background(), usecase.DepositInput{
		AccountID: "acc-1",
		Amount:    decimal.NewFromInt(10),
	})
	if !errors.Is(err, domain.ErrMissingIdempotency) {
		t.Errorf("expected ErrMissingIdempotency, got %v", err)
	}
}

func TestWalletUseCase_Deposit_AccountNotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc, m := newEngine(ctrl)
	expectMutation(m)

	m.opRepo.EXPECT().GetByIdempotencyKey(gomock.Any(), "tok-1").Return(nil, nil)
	m.opRepo.EXPECT().GetByIdempotencyKeyTx(gomock.Any(), m.tx, "tok-1").Return(nil, nil)
	m.accountRepo.EXPECT().GetByIDForUpdate(gomock.Any(), m.tx, "missing").Return(nil, domain.ErrAccountNotFound)

	_, err := uc.Deposit(context.Background(), usecase.DepositInput{
		AccountID:      "missing",
		Amount:         decimal.NewFromInt(10),
		IdempotencyKey: "tok-1",
	})
	if !errors.Is(err, domain.ErrAccountNotFound) {
		t.Errorf("expected ErrAccountNotFound, got %v", err)
	}
}

func TestWalletUseCase_Deposit_ReplayedKeyIsNoOp(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc, m := newEngine(ctrl)
	expectMutation(m)

	existing := &domain.Operation{
		ID:             "op-prev",
		AccountID:      "acc-1",
		Kind:           domain.OperationDeposit,
		Amount:         decimal.NewFromInt(50),
		IdempotencyKey: "tok-1",
	}

	m.opRepo.EXPECT().GetByIdempotencyKey(gomock.Any(), "tok-1").Return(nil, nil)
	m.opRepo.EXPECT().GetByIdempotencyKeyTx(gomock.Any(), m.tx, "tok-1").Return([]*domain.Operation{existing}, nil)
	// No account lookup, no Create, no UpdateBalance, no Commit: the
	// retry must not touch state.

	op, err := uc.Deposit(context.Background(), usecase.DepositInput{
		AccountID:      "acc-1",
		Amount:         decimal.NewFromInt(50),
		IdempotencyKey: "tok-1",
	})
	if err != nil {
		t.Fatalf("expected idempotent success, got %v", err)
	}

	if op.ID != "op-prev" {
		t.Errorf("expected the originally recorded operation, got %+v", op)
	}
}

func TestWalletUseCase_Withdraw_InsufficientFunds(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc, m := newEngine(ctrl)
	expectMutation(m)

	account := &domain.Account{ID: "acc-1", Balance: decimal.NewFromInt(50)}
	m.opRepo.EXPECT().GetByIdempotencyKey(gomock.Any(), "tok-2").Return(nil, nil)
	m.opRepo.EXPECT().GetByIdempotencyKeyTx(gomock.Any(), m.tx, "tok-2").Return(nil, nil)
	m.accountRepo.EXPECT().GetByIDForUpdate(gomock.Any(), m.tx, "acc-1").Return(account, nil)
	// Validation fails before any append or balance write.

	_, err := uc.Withdraw(context.Background(), usecase.WithdrawInput{
		AccountID:      "acc-1",
		Amount:         decimal.NewFromInt(200),
		IdempotencyKey: "tok-2",
	})
	if !errors.Is(err, domain.ErrInsufficientFunds) {
		t.Errorf("expected ErrInsufficientFunds, got %v", err)
	}
}

func TestWalletUseCase_Withdraw(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc, m := newEngine(ctrl)
	expectMutation(m)

	account := &domain.Account{ID: "acc-1", Balance: decimal.NewFromInt(50)}
	m.opRepo.EXPECT().GetByIdempotencyKey(gomock.Any(), "tok-2").Return(nil, nil)
	m.opRepo.EXPECT().GetByIdempotencyKeyTx(gomock.Any(), m.tx, "tok-2").Return(nil, nil)
	m.accountRepo.EXPECT().GetByIDForUpdate(gomock.Any(), m.tx, "acc-1").Return(account, nil)
	m.opRepo.EXPECT().Create(gomock.Any(), m.tx, gomock.Any()).Return(nil)
	m.accountRepo.EXPECT().UpdateBalance(gomock.Any(), m.tx, "acc-1", decimal.NewFromInt(20), gomock.Any()).Return(nil)
	m.tx.EXPECT().Commit(gomock.Any()).Return(nil)

	op, err := uc.Withdraw(context.Background(), usecase.WithdrawInput{
		AccountID:      "acc-1",
		Amount:         decimal.NewFromInt(30),
		IdempotencyKey: "tok-2",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if op.Kind != domain.OperationWithdrawal || !op.BalanceAfter.Equal(decimal.NewFromInt(20)) {
		t.Errorf("unexpected operation %+v", op)
	}
}

func TestWalletUseCase_Transfer_SameAccount(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc, _ := newEngine(ctrl)

	// Rejected before the idempotency lookup and without any repo access,
	// regardless of balances or key state.
	_, err := uc.Transfer(context.Background(), usecase.TransferInput{
		FromAccountID:  "acc-1",
		ToAccountID:    "acc-1",
		Amount:         decimal.NewFromInt(10),
		IdempotencyKey: "tok-3",
	})
	if !errors.Is(err, domain.ErrSameAccount) {
		t.Errorf("expected ErrSameAccount, got %v", err)
	}
}

func TestWalletUseCase_Transfer_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc, m := newEngine(ctrl)
	expectMutation(m)

	source := &domain.Account{ID: "acc-1", Balance: decimal.NewFromInt(50)}
	dest := &domain.Account{ID: "acc-2", Balance: decimal.NewFromInt(5)}

	m.opRepo.EXPECT().GetByIdempotencyKey(gomock.Any(), "tok-3").Return(nil, nil)
	m.opRepo.EXPECT().GetByIdempotencyKeyTx(gomock.Any(), m.tx, "tok-3").Return(nil, nil)
	m.accountRepo.EXPECT().GetByIDsForUpdate(gomock.Any(), m.tx, []string{"acc-1", "acc-2"}).
		Return([]*domain.Account{source, dest}, nil)

	var ops []*domain.Operation
	m.opRepo.EXPECT().Create(gomock.Any(), m.tx, gomock.Any()).DoAndReturn(
		func(_ context.Context, _ usecase.Transaction, op *domain.Operation) error {
			ops = append(ops, op)
			return nil
		}).Times(2)
	m.accountRepo.EXPECT().UpdateBalance(gomock.Any(), m.tx, "acc-1", decimal.NewFromInt(20), gomock.Any()).Return(nil)
	m.accountRepo.EXPECT().UpdateBalance(gomock.Any(), m.tx, "acc-2", decimal.NewFromInt(35), gomock.Any()).Return(nil)
	m.tx.EXPECT().Commit(gomock.Any()).Return(nil)

	result, err := uc.Transfer(context.Background(), usecase.TransferInput{
		FromAccountID:  "acc-1",
		ToAccountID:    "acc-2",
		Amount:         decimal.NewFromInt(30),
		IdempotencyKey: "tok-3",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result.Outgoing.Kind != domain.OperationTransferOut || result.Outgoing.AccountID != "acc-1" {
		t.Errorf("unexpected outgoing operation %+v", result.Outgoing)
	}

	if result.Incoming.Kind != domain.OperationTransferIn || result.Incoming.AccountID != "acc-2" {
		t.Errorf("unexpected incoming operation %+v", result.Incoming)
	}

	if result.Outgoing.IdempotencyKey != result.Incoming.IdempotencyKey {
		t.Error("expected both operations to share the idempotency key")
	}

	// Conservation: the debit and the credit cancel out.
	total := result.Outgoing.SignedAmount().Add(result.Incoming.SignedAmount())
	if !total.IsZero() {
		t.Errorf("expected transfer to conserve funds, net %s", total)
	}

	if len(ops) != 2 {
		t.Fatalf("expected exactly two recorded operations, got %d", len(ops))
	}
}

func TestWalletUseCase_Transfer_MissingSide(t *testing.T) {
	tests := []struct {
		name      string
		present   string
		wantError error
	}{
		{name: "source missing", present: "acc-2", wantError: domain.ErrSourceNotFound},
		{name: "destination missing", present: "acc-1", wantError: domain.ErrDestinationNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			uc, m := newEngine(ctrl)
			expectMutation(m)

			m.opRepo.EXPECT().GetByIdempotencyKey(gomock.Any(), "tok-4").Return(nil, nil)
			m.opRepo.EXPECT().GetByIdempotencyKeyTx(gomock.Any(), m.tx, "tok-4").Return(nil, nil)
			m.accountRepo.EXPECT().GetByIDsForUpdate(gomock.Any(), m.tx, []string{"acc-1", "acc-2"}).
				Return([]*domain.Account{{ID: tt.present, Balance: decimal.NewFromInt(100)}}, nil)

			_, err := uc.Transfer(context.Background(), usecase.TransferInput{
				FromAccountID:  "acc-1",
				ToAccountID:    "acc-2",
				Amount:         decimal.NewFromInt(10),
				IdempotencyKey: "tok-4",
			})
			if !errors.Is(err, tt.wantError) {
				t.Errorf("expected %v, got %v", tt.wantError, err)
			}

			if !errors.Is(err, domain.ErrAccountNotFound) {
				t.Errorf("expected error to match ErrAccountNotFound, got %v", err)
			}
		})
	}
}

func TestWalletUseCase_Transfer_InsufficientFunds(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc, m := newEngine(ctrl)
	expectMutation(m)

	source := &domain.Account{ID: "acc-1", Balance: decimal.NewFromInt(5)}
	dest := &domain.Account{ID: "acc-2", Balance: decimal.Zero}

	m.opRepo.EXPECT().GetByIdempotencyKey(gomock.Any(), "tok-5").Return(nil, nil)
	m.opRepo.EXPECT().GetByIdempotencyKeyTx(gomock.Any(), m.tx, "tok-5").Return(nil, nil)
	m.accountRepo.EXPECT().GetByIDsForUpdate(gomock.Any(), m.tx, []string{"acc-1", "acc-2"}).
		Return([]*domain.Account{source, dest}, nil)

	_, err := uc.Transfer(context.Background(), usecase.TransferInput{
		FromAccountID:  "acc-1",
		ToAccountID:    "acc-2",
		Amount:         decimal.NewFromInt(10),
		IdempotencyKey: "tok-5",
	})
	if !errors.Is(err, domain.ErrInsufficientFunds) {
		t.Errorf("expected ErrInsufficientFunds, got %v", err)
	}
}

func TestWalletUseCase_ReplayPrecedesAmountValidation(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc, m := newEngine(ctrl)

	existing := &domain.Operation{
		ID:             "op-prev",
		AccountID:      "acc-1",
		Kind:           domain.OperationDeposit,
		Amount:         decimal.NewFromInt(50),
		IdempotencyKey: "tok-1",
	}

	m.opRepo.EXPECT().GetByIdempotencyKey(gomock.Any(), "tok-1").Return([]*domain.Operation{existing}, nil)
	// No Begin: a resend of an applied request answers from the log even
	// when its amount would no longer validate.

	op, err := uc.Deposit(context.Background(), usecase.DepositInput{
		AccountID:      "acc-1",
		Amount:         decimal.NewFromInt(-5),
		IdempotencyKey: "tok-1",
	})
	if err != nil {
		t.Fatalf("expected idempotent success, got %v", err)
	}

	if op.ID != "op-prev" {
		t.Errorf("expected the originally recorded operation, got %+v", op)
	}
}

func TestWalletUseCase_ReplayPrecedesAccountLookup(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc, m := newEngine(ctrl)

	existing := &domain.Operation{
		ID:             "op-prev",
		AccountID:      "acc-1",
		Kind:           domain.OperationDeposit,
		Amount:         decimal.NewFromInt(50),
		IdempotencyKey: "tok-1",
	}

	m.opRepo.EXPECT().GetByIdempotencyKey(gomock.Any(), "tok-1").Return([]*domain.Operation{existing}, nil)
	// No account access of any kind: the resend names an account that
	// does not exist, and the replay must still succeed.

	op, err := uc.Deposit(context.Background(), usecase.DepositInput{
		AccountID:      "missing",
		Amount:         decimal.NewFromInt(50),
		IdempotencyKey: "tok-1",
	})
	if err != nil {
		t.Fatalf("expected idempotent success, got %v", err)
	}

	if op.ID != "op-prev" {
		t.Errorf("expected the originally recorded operation, got %+v", op)
	}
}

func TestWalletUseCase_Transfer_KeyRecordedByOtherKind(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc, m := newEngine(ctrl)

	existing := &domain.Operation{
		ID:             "op-prev",
		AccountID:      "acc-1",
		Kind:           domain.OperationDeposit,
		Amount:         decimal.NewFromInt(50),
		IdempotencyKey: "tok-6",
	}

	m.opRepo.EXPECT().GetByIdempotencyKey(gomock.Any(), "tok-6").Return([]*domain.Operation{existing}, nil)
	// No transaction: a transfer cannot be answered from a deposit record.

	_, err := uc.Transfer(context.Background(), usecase.TransferInput{
		FromAccountID:  "acc-1",
		ToAccountID:    "acc-2",
		Amount:         decimal.NewFromInt(10),
		IdempotencyKey: "tok-6",
	})
	if !errors.Is(err, domain.ErrIdempotencyKeyReused) {
		t.Errorf("expected ErrIdempotencyKeyReused, got %v", err)
	}
}

func TestWalletUseCase_InTxReplayCountsAsReplay(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	registry := prometheus.NewRegistry()
	prometheus.DefaultRegisterer = registry
	prometheus.DefaultGatherer = registry
	met := metrics.New()

	accountRepo := mocks.NewMockAccountRepository(ctrl)
	opRepo := mocks.NewMockOperationRepository(ctrl)
	txManager := mocks.NewMockTransactionManager(ctrl)
	tx := mocks.NewMockTransaction(ctrl)
	idGen := mocks.NewMockIDGenerator(ctrl)

	uc := usecase.NewWalletUseCase(txManager, accountRepo, opRepo, idGen, nil, nil, nil, met)

	existing := &domain.Operation{
		ID:             "op-prev",
		AccountID:      "acc-1",
		Kind:           domain.OperationDeposit,
		Amount:         decimal.NewFromInt(50),
		IdempotencyKey: "tok-1",
	}

	opRepo.EXPECT().GetByIdempotencyKey(gomock.Any(), "tok-1").Return(nil, nil)
	txManager.EXPECT().Begin(gomock.Any()).Return(tx, nil)
	tx.EXPECT().Rollback(gomock.Any()).Return(nil).AnyTimes()
	opRepo.EXPECT().GetByIdempotencyKeyTx(gomock.Any(), tx, "tok-1").Return([]*domain.Operation{existing}, nil)

	op, err := uc.Deposit(context.Background(), usecase.DepositInput{
		AccountID:      "acc-1",
		Amount:         decimal.NewFromInt(50),
		IdempotencyKey: "tok-1",
	})
	if err != nil {
		t.Fatalf("expected idempotent success, got %v", err)
	}
	if op.ID != "op-prev" {
		t.Fatalf("expected the originally recorded operation, got %+v", op)
	}

	if got := promtestutil.ToFloat64(met.IdempotentReplays.WithLabelValues("transaction")); got != 1 {
		t.Errorf("expected one replay counted for the transaction source, got %v", got)
	}
	if got := promtestutil.ToFloat64(met.OperationsApplied.WithLabelValues("deposit")); got != 0 {
		t.Errorf("expected no applied operation counted for a replay, got %v", got)
	}
}

func TestWalletUseCase_GetBalance(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc, m := newEngine(ctrl)

	m.accountRepo.EXPECT().GetByID(gomock.Any(), "acc-1").
		Return(&domain.Account{ID: "acc-1", Balance: decimal.NewFromInt(75)}, nil)

	balance, err := uc.GetBalance(context.Background(), "acc-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !balance.Equal(decimal.NewFromInt(75)) {
		t.Errorf("expected 75, got %s", balance)
	}
}

func TestWalletUseCase_IndexShortCircuit(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	accountRepo := mocks.NewMockAccountRepository(ctrl)
	opRepo := mocks.NewMockOperationRepository(ctrl)
	txManager := mocks.NewMockTransactionManager(ctrl)
	idGen := mocks.NewMockIDGenerator(ctrl)
	index := mocks.NewMockIdempotencyIndex(ctrl)

	uc := usecase.NewWalletUseCase(txManager, accountRepo, opRepo, idGen, nil, index, nil, nil)

	existing := &domain.Operation{
		ID:             "op-prev",
		AccountID:      "acc-1",
		Kind:           domain.OperationDeposit,
		Amount:         decimal.NewFromInt(50),
		IdempotencyKey: "tok-1",
	}

	index.EXPECT().Seen(gomock.Any(), "tok-1").Return(true, nil)
	opRepo.EXPECT().GetByIdempotencyKey(gomock.Any(), "tok-1").Return([]*domain.Operation{existing}, nil)
	// No Begin: the replay never opens a transaction.

	op, err := uc.Deposit(context.Background(), usecase.DepositInput{
		AccountID:      "acc-1",
		Amount:         decimal.NewFromInt(50),
		IdempotencyKey: "tok-1",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if op.ID != "op-prev" {
		t.Errorf("expected recorded operation, got %+v", op)
	}
}
