package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/walletapp/walletd/internal/adapter/http/dto"
	"github.com/walletapp/walletd/internal/domain"
	"github.com/walletapp/walletd/internal/usecase"
)

// OperationService defines the mutation behavior needed by OperationHandler.
type OperationService interface {
	Deposit(ctx context.Context, input usecase.DepositInput) (*domain.Operation, error)
	Withdraw(ctx context.Context, input usecase.WithdrawInput) (*domain.Operation, error)
}

// HistoryService defines the query behavior needed by OperationHandler.
type HistoryService interface {
	GetHistoricalBalance(ctx context.Context, accountID string, at time.Time) (decimal.Decimal, error)
	ListOperations(ctx context.Context, input usecase.ListOperationsInput) ([]*domain.Operation, error)
}

// OperationHandler handles deposit, withdrawal and operation-log HTTP requests.
type OperationHandler struct {
	walletUC  OperationService
	historyUC HistoryService
}

// NewOperationHandler creates a new OperationHandler.
func NewOperationHandler(walletUC OperationService, historyUC HistoryService) *OperationHandler {
	return &OperationHandler{
		walletUC:  walletUC,
		historyUC: historyUC,
	}
}

// Deposit credits money to a wallet.
func (h *OperationHandler) Deposit(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "missing wallet ID", "")
		return
	}

	var req dto.MoveMoneyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	op, err := h.walletUC.Deposit(r.Context(), usecase.DepositInput{
		AccountID:      id,
		Amount:         req.Amount,
		IdempotencyKey: idempotencyKey(r, req.IdempotencyKey),
	})
	if err != nil {
		status := mapDomainError(err)
		writeError(w, status, "failed to deposit", err.Error())

		return
	}

	writeJSON(w, http.StatusCreated, dto.OperationFromDomain(op))
}

// Withdraw debits money from a wallet.
func (h *OperationHandler) Withdraw(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "missing wallet ID", "")
		return
	}

	var req dto.MoveMoneyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	op, err := h.walletUC.Withdraw(r.Context(), usecase.WithdrawInput{
		AccountID:      id,
		Amount:         req.Amount,
		IdempotencyKey: idempotencyKey(r, req.IdempotencyKey),
	})
	if err != nil {
		status := mapDomainError(err)
		writeError(w, status, "failed to withdraw", err.Error())

		return
	}

	writeJSON(w, http.StatusCreated, dto.OperationFromDomain(op))
}

// ListOperations lists the operation log for a wallet.
func (h *OperationHandler) ListOperations(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "missing wallet ID", "")
		return
	}

	limit := parseIntQuery(r, "limit", 20)
	offset := parseIntQuery(r, "offset", 0)

	ops, err := h.historyUC.ListOperations(r.Context(), usecase.ListOperationsInput{
		AccountID: id,
		Limit:     limit,
		Offset:    offset,
	})
	if err != nil {
		status := mapDomainError(err)
		writeError(w, status, "failed to list operations", err.Error())

		return
	}

	writeJSON(w, http.StatusOK, dto.OperationsFromDomain(ops))
}

// GetHistoricalBalance reconstructs the wallet balance at a past moment.
func (h *OperationHandler) GetHistoricalBalance(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "missing wallet ID", "")
		return
	}

	atStr := r.URL.Query().Get("at")
	if atStr == "" {
		writeError(w, http.StatusBadRequest, "missing 'at' parameter", "")
		return
	}

	at, err := usecase.ParseCutoff(atStr)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid 'at' timestamp", err.Error())
		return
	}

	balance, err := h.historyUC.GetHistoricalBalance(r.Context(), id, at)
	if err != nil {
		status := mapDomainError(err)
		writeError(w, status, "failed to get historical balance", err.Error())

		return
	}

	writeJSON(w, http.StatusOK, dto.BalanceResponse{
		AccountID: id,
		Balance:   balance,
		At:        &at,
	})
}
