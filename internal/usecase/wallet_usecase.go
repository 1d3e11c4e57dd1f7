package usecase

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/walletapp/walletd/internal/domain"
	"github.com/walletapp/walletd/internal/infrastructure/metrics"
)

// WalletUseCase is the ledger engine. Every mutating call runs as one
// storage transaction: idempotency check, balance change and operation
// append commit together or not at all. Account rows are locked in
// sorted ID order so concurrent transfers between the same pair cannot
// deadlock.
type WalletUseCase struct {
	txManager   TransactionManager
	accountRepo AccountRepository
	opRepo      OperationRepository
	idGen       IDGenerator
	retrier     Retrier
	idemIndex   IdempotencyIndex
	cache       Cache
	metrics     *metrics.Metrics
}

// NewWalletUseCase creates a new WalletUseCase. retrier, idemIndex,
// cache and m are optional; pass nil to disable them.
func NewWalletUseCase(
	txManager TransactionManager,
	accountRepo AccountRepository,
	opRepo OperationRepository,
	idGen IDGenerator,
	retrier Retrier,
	idemIndex IdempotencyIndex,
	cache Cache,
	m *metrics.Metrics,
) *WalletUseCase {
	return &WalletUseCase{
		txManager:   txManager,
		accountRepo: accountRepo,
		opRepo:      opRepo,
		idGen:       idGen,
		retrier:     retrier,
		idemIndex:   idemIndex,
		cache:       cache,
		metrics:     m,
	}
}

// CreateAccountInput represents input for creating an account.
type CreateAccountInput struct {
	OwnerID string
}

// CreateAccount creates a new account with a zero balance.
func (uc *WalletUseCase) CreateAccount(ctx context.Context, input CreateAccountInput) (*domain.Account, error) {
	if err := domain.ValidateOwnerID(input.OwnerID); err != nil {
		return nil, err
	}

	now := time.Now().UTC()

	account := &domain.Account{
		ID:        uc.idGen.Generate(),
		OwnerID:   input.OwnerID,
		Balance:   decimal.Zero,
		Version:   0,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := uc.accountRepo.Create(ctx, account); err != nil {
		return nil, err
	}

	if uc.metrics != nil {
		uc.metrics.AccountsCreated.Inc()
	}

	return account, nil
}

// GetAccount retrieves an account by ID.
func (uc *WalletUseCase) GetAccount(ctx context.Context, id string) (*domain.Account, error) {
	return uc.accountRepo.GetByID(ctx, id)
}

// ListAccountsInput represents input for listing accounts.
type ListAccountsInput struct {
	Limit  int
	Offset int
}

// ListAccounts lists accounts with pagination.
func (uc *WalletUseCase) ListAccounts(ctx context.Context, input ListAccountsInput) ([]*domain.Account, error) {
	if input.Limit <= 0 {
		input.Limit = 20
	}
	if input.Limit > 100 {
		input.Limit = 100
	}
	return uc.accountRepo.List(ctx, input.Limit, input.Offset)
}

// GetBalance returns the current balance of an account. The read is a
// snapshot: it goes through the cache when one is configured and never
// takes an account lock.
func (uc *WalletUseCase) GetBalance(ctx context.Context, id string) (decimal.Decimal, error) {
	if uc.cache != nil {
		if raw, err := uc.cache.Get(ctx, balanceCacheKey(id)); err == nil {
			if cached, parseErr := decimal.NewFromString(raw); parseErr == nil {
				return cached, nil
			}
		}
	}

	account, err := uc.accountRepo.GetByID(ctx, id)
	if err != nil {
		return decimal.Zero, err
	}

	if uc.cache != nil {
		_ = uc.cache.Set(ctx, balanceCacheKey(id), account.Balance.String(), BalanceCacheTTL)
	}

	return account.Balance, nil
}

// DepositInput represents input for a deposit.
type DepositInput struct {
	AccountID      string
	Amount         decimal.Decimal
	IdempotencyKey string
}

// Deposit credits amount to an account and appends a deposit operation.
// A replayed idempotency key is a no-op returning the recorded operation.
func (uc *WalletUseCase) Deposit(ctx context.Context, input DepositInput) (*domain.Operation, error) {
	return uc.applyOperation(ctx, input.AccountID, input.Amount, domain.OperationDeposit, input.IdempotencyKey)
}

// WithdrawInput represents input for a withdrawal.
type WithdrawInput struct {
	AccountID      string
	Amount         decimal.Decimal
	IdempotencyKey string
}

// Withdraw debits amount from an account and appends a withdrawal
// operation. Fails with ErrInsufficientFunds before any state changes.
func (uc *WalletUseCase) Withdraw(ctx context.Context, input WithdrawInput) (*domain.Operation, error) {
	return uc.applyOperation(ctx, input.AccountID, input.Amount, domain.OperationWithdrawal, input.IdempotencyKey)
}

// TransferInput represents input for a transfer between two accounts.
type TransferInput struct {
	FromAccountID  string
	ToAccountID    string
	Amount         decimal.Decimal
	IdempotencyKey string
}

// TransferResult holds the pair of operations recorded by a transfer.
type TransferResult struct {
	Outgoing *domain.Operation
	Incoming *domain.Operation
}

// Transfer atomically moves amount between two accounts, appending a
// transfer_out operation on the source and a transfer_in operation on
// the destination, both carrying the same idempotency key.
func (uc *WalletUseCase) Transfer(ctx context.Context, input TransferInput) (*TransferResult, error) {
	// Same-account rejection comes before the idempotency lookup.
	if input.FromAccountID == input.ToAccountID {
		return nil, domain.ErrSameAccount
	}

	if err := domain.ValidateIdempotencyKey(input.IdempotencyKey); err != nil {
		return nil, err
	}

	// Replay short-circuit before any further validation: a verbatim
	// resend of an applied request succeeds even when the rest of it
	// would no longer validate.
	if recorded, source := uc.recordedOperations(ctx, input.IdempotencyKey); len(recorded) > 0 {
		result, err := transferResultFromOperations(recorded)
		if err != nil {
			uc.countError(err)
			return nil, err
		}
		uc.countReplay(source)
		return result, nil
	}

	if err := domain.ValidateAmount(input.Amount); err != nil {
		return nil, err
	}

	start := time.Now()

	var (
		result   *TransferResult
		replayed bool
	)

	err := uc.run(ctx, func() error {
		applied, fromLog, applyErr := uc.applyTransfer(ctx, input)
		if applyErr != nil {
			return applyErr
		}
		result = applied
		replayed = fromLog
		return nil
	})
	if err != nil {
		if errors.Is(err, domain.ErrOperationExists) {
			uc.countReplay("unique_violation")
			ops, lookupErr := uc.opRepo.GetByIdempotencyKey(ctx, input.IdempotencyKey)
			if lookupErr != nil {
				return nil, lookupErr
			}
			return transferResultFromOperations(ops)
		}
		uc.countError(err)
		return nil, err
	}

	if replayed {
		uc.countReplay("transaction")
		return result, nil
	}

	uc.observeApplied(domain.OperationTransferOut, input.Amount, start)
	uc.markApplied(ctx, input.IdempotencyKey)
	uc.invalidateBalance(ctx, input.FromAccountID)
	uc.invalidateBalance(ctx, input.ToAccountID)

	return result, nil
}

func (uc *WalletUseCase) applyOperation(ctx context.Context, accountID string, amount decimal.Decimal, kind domain.OperationKind, key string) (*domain.Operation, error) {
	if err := domain.ValidateIdempotencyKey(key); err != nil {
		return nil, err
	}

	// Replay short-circuit before any further validation: a verbatim
	// resend of an applied request succeeds even when the rest of it
	// would no longer validate.
	if recorded, source := uc.recordedOperations(ctx, key); len(recorded) > 0 {
		uc.countReplay(source)
		return operationOfKind(recorded, kind), nil
	}

	if err := domain.ValidateAmount(amount); err != nil {
		return nil, err
	}

	start := time.Now()

	var (
		op       *domain.Operation
		replayed bool
	)

	err := uc.run(ctx, func() error {
		applied, fromLog, applyErr := uc.applySingle(ctx, accountID, amount, kind, key)
		if applyErr != nil {
			return applyErr
		}
		op = applied
		replayed = fromLog
		return nil
	})
	if err != nil {
		if errors.Is(err, domain.ErrOperationExists) {
			uc.countReplay("unique_violation")
			ops, lookupErr := uc.opRepo.GetByIdempotencyKey(ctx, key)
			if lookupErr != nil {
				return nil, lookupErr
			}
			if len(ops) == 0 {
				return nil, err
			}
			return operationOfKind(ops, kind), nil
		}
		uc.countError(err)
		return nil, err
	}

	if replayed {
		uc.countReplay("transaction")
		return op, nil
	}

	uc.observeApplied(kind, amount, start)
	uc.markApplied(ctx, key)
	uc.invalidateBalance(ctx, accountID)

	return op, nil
}

func (uc *WalletUseCase) applySingle(ctx context.Context, accountID string, amount decimal.Decimal, kind domain.OperationKind, key string) (*domain.Operation, bool, error) {
	ctx, cancel := context.WithTimeout(ctx, DefaultTransactionTimeout)
	defer cancel()

	tx, err := uc.txManager.Begin(ctx)
	if err != nil {
		return nil, false, err
	}
	defer tx.Rollback(ctx)

	// Authoritative idempotency check, before the account row is even
	// looked at: any operation carrying the key means "already applied",
	// and a replay must succeed whatever else is wrong with the resend.
	recorded, err := uc.opRepo.GetByIdempotencyKeyTx(ctx, tx, key)
	if err != nil {
		return nil, false, err
	}
	if len(recorded) > 0 {
		return operationOfKind(recorded, kind), true, nil
	}

	account, err := uc.accountRepo.GetByIDForUpdate(ctx, tx, accountID)
	if err != nil {
		return nil, false, err
	}

	var newBalance decimal.Decimal
	switch kind {
	case domain.OperationWithdrawal:
		if err := account.ValidateWithdrawal(amount); err != nil {
			return nil, false, err
		}
		newBalance = account.ApplyWithdrawal(amount)
	case domain.OperationDeposit:
		newBalance = account.ApplyDeposit(amount)
	default:
		return nil, false, fmt.Errorf("unsupported single-account operation kind %q", kind)
	}

	now := time.Now().UTC()

	op := &domain.Operation{
		ID:             uc.idGen.Generate(),
		AccountID:      account.ID,
		Kind:           kind,
		Amount:         amount,
		BalanceAfter:   newBalance,
		IdempotencyKey: key,
		CreatedAt:      now,
	}

	if err := uc.opRepo.Create(ctx, tx, op); err != nil {
		return nil, false, err
	}

	if err := uc.accountRepo.UpdateBalance(ctx, tx, account.ID, newBalance, now); err != nil {
		return nil, false, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, false, err
	}

	return op, false, nil
}

func (uc *WalletUseCase) applyTransfer(ctx context.Context, input TransferInput) (*TransferResult, bool, error) {
	ctx, cancel := context.WithTimeout(ctx, DefaultTransactionTimeout)
	defer cancel()

	tx, err := uc.txManager.Begin(ctx)
	if err != nil {
		return nil, false, err
	}
	defer tx.Rollback(ctx)

	// Authoritative idempotency check, before either account row is
	// touched: a replay must succeed even when a resend no longer
	// validates (say, one side has since been removed).
	recorded, err := uc.opRepo.GetByIdempotencyKeyTx(ctx, tx, input.IdempotencyKey)
	if err != nil {
		return nil, false, err
	}
	if len(recorded) > 0 {
		result, err := transferResultFromOperations(recorded)
		return result, true, err
	}

	// Lock both rows in sorted ID order (deadlock prevention).
	ids := []string{input.FromAccountID, input.ToAccountID}
	sort.Strings(ids)

	accounts, err := uc.accountRepo.GetByIDsForUpdate(ctx, tx, ids)
	if err != nil {
		return nil, false, err
	}

	byID := make(map[string]*domain.Account, len(accounts))
	for _, a := range accounts {
		byID[a.ID] = a
	}

	source, ok := byID[input.FromAccountID]
	if !ok {
		return nil, false, domain.ErrSourceNotFound
	}

	dest, ok := byID[input.ToAccountID]
	if !ok {
		return nil, false, domain.ErrDestinationNotFound
	}

	if err := source.ValidateWithdrawal(input.Amount); err != nil {
		return nil, false, err
	}

	now := time.Now().UTC()

	outgoing := &domain.Operation{
		ID:             uc.idGen.Generate(),
		AccountID:      source.ID,
		Kind:           domain.OperationTransferOut,
		Amount:         input.Amount,
		BalanceAfter:   source.ApplyWithdrawal(input.Amount),
		IdempotencyKey: input.IdempotencyKey,
		CreatedAt:      now,
	}

	if err := uc.opRepo.Create(ctx, tx, outgoing); err != nil {
		return nil, false, err
	}

	if err := uc.accountRepo.UpdateBalance(ctx, tx, source.ID, outgoing.BalanceAfter, now); err != nil {
		return nil, false, err
	}

	incoming := &domain.Operation{
		ID:             uc.idGen.Generate(),
		AccountID:      dest.ID,
		Kind:           domain.OperationTransferIn,
		Amount:         input.Amount,
		BalanceAfter:   dest.ApplyDeposit(input.Amount),
		IdempotencyKey: input.IdempotencyKey,
		CreatedAt:      now,
	}

	if err := uc.opRepo.Create(ctx, tx, incoming); err != nil {
		return nil, false, err
	}

	if err := uc.accountRepo.UpdateBalance(ctx, tx, dest.ID, incoming.BalanceAfter, now); err != nil {
		return nil, false, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, false, err
	}

	return &TransferResult{Outgoing: outgoing, Incoming: incoming}, false, nil
}

// recordedOperations is the pre-transaction replay lookup. The index is
// only a hint (markers expire), so an index miss still consults the
// operation log; a lookup failure falls through to the authoritative
// in-transaction check. The second return names where the hit came from.
func (uc *WalletUseCase) recordedOperations(ctx context.Context, key string) ([]*domain.Operation, string) {
	if uc.idemIndex != nil {
		if seen, err := uc.idemIndex.Seen(ctx, key); err == nil && seen {
			if ops, err := uc.opRepo.GetByIdempotencyKey(ctx, key); err == nil {
				return ops, "index"
			}
		}
	}

	ops, err := uc.opRepo.GetByIdempotencyKey(ctx, key)
	if err != nil {
		return nil, ""
	}
	return ops, "log"
}

func (uc *WalletUseCase) run(ctx context.Context, operation func() error) error {
	if uc.retrier == nil {
		return operation()
	}
	return uc.retrier.Retry(ctx, operation)
}

func (uc *WalletUseCase) markApplied(ctx context.Context, key string) {
	if uc.idemIndex == nil {
		return
	}
	_ = uc.idemIndex.Mark(ctx, key)
}

func (uc *WalletUseCase) observeApplied(kind domain.OperationKind, amount decimal.Decimal, start time.Time) {
	if uc.metrics == nil {
		return
	}
	uc.metrics.OperationsApplied.WithLabelValues(string(kind)).Inc()
	uc.metrics.OperationDuration.WithLabelValues(string(kind)).Observe(time.Since(start).Seconds())
	uc.metrics.OperationAmount.Observe(amount.InexactFloat64())
}

func (uc *WalletUseCase) countReplay(source string) {
	if uc.metrics == nil {
		return
	}
	uc.metrics.IdempotentReplays.WithLabelValues(source).Inc()
}

func (uc *WalletUseCase) countError(err error) {
	if uc.metrics == nil {
		return
	}

	label := "internal"
	switch {
	case errors.Is(err, domain.ErrInsufficientFunds):
		label = "insufficient_funds"
	case errors.Is(err, domain.ErrAccountNotFound):
		label = "account_not_found"
	case errors.Is(err, domain.ErrIdempotencyKeyReused):
		label = "key_reused"
	}
	uc.metrics.OperationErrors.WithLabelValues(label).Inc()
}

func (uc *WalletUseCase) invalidateBalance(ctx context.Context, accountID string) {
	if uc.cache == nil {
		return
	}
	_ = uc.cache.Delete(ctx, balanceCacheKey(accountID))
}

func balanceCacheKey(accountID string) string {
	return "balance:" + accountID
}

func operationOfKind(ops []*domain.Operation, kind domain.OperationKind) *domain.Operation {
	for _, op := range ops {
		if op.Kind == kind {
			return op
		}
	}
	return ops[0]
}

func transferResultFromOperations(ops []*domain.Operation) (*TransferResult, error) {
	result := &TransferResult{}
	for _, op := range ops {
		switch op.Kind {
		case domain.OperationTransferOut:
			result.Outgoing = op
		case domain.OperationTransferIn:
			result.Incoming = op
		}
	}

	if result.Outgoing == nil || result.Incoming == nil {
		return nil, fmt.Errorf("%w: recorded by a non-transfer operation", domain.ErrIdempotencyKeyReused)
	}

	return result, nil
}
