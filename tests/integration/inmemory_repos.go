package integration

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/walletapp/walletd/internal/domain"
	"github.com/walletapp/walletd/internal/usecase"
)

// memStore is an in-memory stand-in for the PostgreSQL storage layer.
// Transactions serialize on txMu, which gives the same guarantee the
// row locks provide: no two mutating transactions interleave on shared
// accounts. Committed state is guarded separately by mu so snapshot
// reads never block a transaction.
type memStore struct {
	txMu sync.Mutex

	mu       sync.RWMutex
	accounts map[string]*domain.Account
	ops      []*domain.Operation
	nextSeq  int64
}

func newMemStore() *memStore {
	return &memStore{
		accounts: make(map[string]*domain.Account),
		nextSeq:  1,
	}
}

// memTx journals writes until Commit. Rollback after Commit is a no-op,
// matching pgx.Tx semantics.
type memTx struct {
	store *memStore
	done  bool

	pendingOps      []*domain.Operation
	pendingBalances map[string]balanceUpdate
}

type balanceUpdate struct {
	balance   decimal.Decimal
	updatedAt time.Time
}

func (s *memStore) begin() *memTx {
	s.txMu.Lock()
	return &memTx{
		store:           s,
		pendingBalances: make(map[string]balanceUpdate),
	}
}

func (t *memTx) Commit(ctx context.Context) error {
	if t.done {
		return fmt.Errorf("transaction already finished")
	}
	t.done = true

	s := t.store
	s.mu.Lock()
	for _, op := range t.pendingOps {
		op.Seq = s.nextSeq
		s.nextSeq++
		s.ops = append(s.ops, op)
	}
	for id, upd := range t.pendingBalances {
		if acc, ok := s.accounts[id]; ok {
			acc.Balance = upd.balance
			acc.Version++
			acc.UpdatedAt = upd.updatedAt
		}
	}
	s.mu.Unlock()

	s.txMu.Unlock()
	return nil
}

func (t *memTx) Rollback(ctx context.Context) error {
	if t.done {
		return nil
	}
	t.done = true
	t.store.txMu.Unlock()
	return nil
}

// memTxManager implements usecase.TransactionManager.
type memTxManager struct {
	store *memStore
}

func (m *memTxManager) Begin(ctx context.Context) (usecase.Transaction, error) {
	return m.store.begin(), nil
}

// memAccountRepo implements usecase.AccountRepository.
type memAccountRepo struct {
	store *memStore
}

func (r *memAccountRepo) Create(ctx context.Context, account *domain.Account) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.accounts[account.ID]; exists {
		return fmt.Errorf("account %s already exists", account.ID)
	}

	clone := *account
	s.accounts[account.ID] = &clone
	return nil
}

func (r *memAccountRepo) GetByID(ctx context.Context, id string) (*domain.Account, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	acc, ok := s.accounts[id]
	if !ok {
		return nil, domain.ErrAccountNotFound
	}

	clone := *acc
	return &clone, nil
}

func (r *memAccountRepo) GetByIDForUpdate(ctx context.Context, tx usecase.Transaction, id string) (*domain.Account, error) {
	return r.GetByID(ctx, id)
}

func (r *memAccountRepo) GetByIDsForUpdate(ctx context.Context, tx usecase.Transaction, ids []string) ([]*domain.Account, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	sorted := append([]string(nil), ids...)
	sort.Strings(sorted)

	accounts := make([]*domain.Account, 0, len(sorted))
	for _, id := range sorted {
		if acc, ok := s.accounts[id]; ok {
			clone := *acc
			accounts = append(accounts, &clone)
		}
	}

	return accounts, nil
}

func (r *memAccountRepo) UpdateBalance(ctx context.Context, tx usecase.Transaction, id string, balance decimal.Decimal, updatedAt time.Time) error {
	mt := tx.(*memTx)
	mt.pendingBalances[id] = balanceUpdate{balance: balance, updatedAt: updatedAt}
	return nil
}

func (r *memAccountRepo) List(ctx context.Context, limit, offset int) ([]*domain.Account, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	all := make([]*domain.Account, 0, len(s.accounts))
	for _, acc := range s.accounts {
		clone := *acc
		all = append(all, &clone)
	}

	sort.Slice(all, func(i, j int) bool {
		return all[i].CreatedAt.After(all[j].CreatedAt)
	})

	if offset >= len(all) {
		return nil, nil
	}
	all = all[offset:]
	if limit < len(all) {
		all = all[:limit]
	}

	return all, nil
}

// memOperationRepo implements usecase.OperationRepository.
type memOperationRepo struct {
	store *memStore
}

func (r *memOperationRepo) Create(ctx context.Context, tx usecase.Transaction, op *domain.Operation) error {
	mt := tx.(*memTx)
	s := r.store

	s.mu.RLock()
	for _, existing := range s.ops {
		if existing.IdempotencyKey == op.IdempotencyKey && existing.Kind == op.Kind {
			s.mu.RUnlock()
			return domain.ErrOperationExists
		}
	}
	s.mu.RUnlock()

	for _, pending := range mt.pendingOps {
		if pending.IdempotencyKey == op.IdempotencyKey && pending.Kind == op.Kind {
			return domain.ErrOperationExists
		}
	}

	mt.pendingOps = append(mt.pendingOps, op)
	return nil
}

func (r *memOperationRepo) GetByIdempotencyKey(ctx context.Context, key string) ([]*domain.Operation, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	return r.opsByKeyLocked(key), nil
}

func (r *memOperationRepo) GetByIdempotencyKeyTx(ctx context.Context, tx usecase.Transaction, key string) ([]*domain.Operation, error) {
	return r.GetByIdempotencyKey(ctx, key)
}

func (r *memOperationRepo) opsByKeyLocked(key string) []*domain.Operation {
	var result []*domain.Operation
	for _, op := range r.store.ops {
		if op.IdempotencyKey == key {
			clone := *op
			result = append(result, &clone)
		}
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].Seq < result[j].Seq
	})

	return result
}

func (r *memOperationRepo) ListByAccount(ctx context.Context, accountID string, limit, offset int) ([]*domain.Operation, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	var result []*domain.Operation
	for _, op := range s.ops {
		if op.AccountID == accountID {
			clone := *op
			result = append(result, &clone)
		}
	}

	sort.Slice(result, func(i, j int) bool {
		if !result[i].CreatedAt.Equal(result[j].CreatedAt) {
			return result[i].CreatedAt.After(result[j].CreatedAt)
		}
		return result[i].Seq > result[j].Seq
	})

	if offset >= len(result) {
		return nil, nil
	}
	result = result[offset:]
	if limit < len(result) {
		result = result[:limit]
	}

	return result, nil
}

func (r *memOperationRepo) BalanceAt(ctx context.Context, accountID string, at time.Time) (decimal.Decimal, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	balance := decimal.Zero
	for _, op := range s.ops {
		if op.AccountID != accountID || op.CreatedAt.After(at) {
			continue
		}
		balance = balance.Add(op.SignedAmount())
	}

	return balance, nil
}
