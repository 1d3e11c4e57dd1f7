package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/walletapp/walletd/internal/adapter/http/dto"
	"github.com/walletapp/walletd/internal/usecase"
)

// TransferService defines the behavior needed by TransferHandler.
type TransferService interface {
	Transfer(ctx context.Context, input usecase.TransferInput) (*usecase.TransferResult, error)
}

// TransferHandler handles transfer HTTP requests.
type TransferHandler struct {
	walletUC TransferService
}

// NewTransferHandler creates a new TransferHandler.
func NewTransferHandler(walletUC TransferService) *TransferHandler {
	return &TransferHandler{walletUC: walletUC}
}

// Create moves money between two wallets.
func (h *TransferHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateTransferRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	input := req.ToUseCaseInput()
	input.IdempotencyKey = idempotencyKey(r, req.IdempotencyKey)

	result, err := h.walletUC.Transfer(r.Context(), input)
	if err != nil {
		status := mapDomainError(err)
		writeError(w, status, "failed to transfer", err.Error())

		return
	}

	writeJSON(w, http.StatusCreated, dto.TransferFromResult(result))
}
