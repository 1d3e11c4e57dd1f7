package integration

import (
	"context"
	"testing"
	"time"

	miniredis "github.com/alicebob/miniredis/v2"
	redislib "github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"

	postgresRepo "github.com/walletapp/walletd/internal/adapter/repository/postgres"
	redisRepo "github.com/walletapp/walletd/internal/adapter/repository/redis"
	"github.com/walletapp/walletd/internal/usecase"
)

// env wires the engine over the in-memory store, optionally with a
// miniredis-backed idempotency index and balance cache.
type env struct {
	store   *memStore
	wallet  *usecase.WalletUseCase
	history *usecase.HistoryUseCase

	accountRepo *memAccountRepo
	opRepo      *memOperationRepo
}

func newEnv(t *testing.T) *env {
	t.Helper()
	return buildEnv(t, nil, nil)
}

func newEnvWithRedis(t *testing.T) *env {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redislib.NewClient(&redislib.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	return buildEnv(t, redisRepo.NewIdempotencyIndex(client, time.Hour), redisRepo.NewCache(client))
}

func buildEnv(t *testing.T, idemIndex usecase.IdempotencyIndex, cache usecase.Cache) *env {
	t.Helper()

	store := newMemStore()
	accountRepo := &memAccountRepo{store: store}
	opRepo := &memOperationRepo{store: store}
	txManager := &memTxManager{store: store}
	idGen := postgresRepo.NewULIDGenerator()

	return &env{
		store:       store,
		wallet:      usecase.NewWalletUseCase(txManager, accountRepo, opRepo, idGen, nil, idemIndex, cache, nil),
		history:     usecase.NewHistoryUseCase(accountRepo, opRepo),
		accountRepo: accountRepo,
		opRepo:      opRepo,
	}
}

func (e *env) createAccount(t *testing.T, ownerID string) string {
	t.Helper()

	account, err := e.wallet.CreateAccount(context.Background(), usecase.CreateAccountInput{OwnerID: ownerID})
	if err != nil {
		t.Fatalf("failed to create account for %s: %v", ownerID, err)
	}

	return account.ID
}

func (e *env) balance(t *testing.T, accountID string) decimal.Decimal {
	t.Helper()

	account, err := e.accountRepo.GetByID(context.Background(), accountID)
	if err != nil {
		t.Fatalf("failed to read account %s: %v", accountID, err)
	}

	return account.Balance
}

func amount(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}
