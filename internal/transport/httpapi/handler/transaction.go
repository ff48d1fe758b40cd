package handler

import (
	"context"
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/kislikjeka/xrplview/internal/module/transactions"
	"github.com/kislikjeka/xrplview/internal/platform/txview"
	apperrors "github.com/kislikjeka/xrplview/internal/shared/errors"
	"github.com/kislikjeka/xrplview/pkg/logger"
)

// maxProcessBody caps the envelope array accepted by POST /transactions/process
const maxProcessBody = 5 << 20

// TransactionServiceInterface defines the transaction operations needed by TransactionHandler
type TransactionServiceInterface interface {
	ListAccountTransactions(ctx context.Context, address string, limit int, marker string) (*transactions.AccountTransactionsPage, error)
	GetTransaction(ctx context.Context, hash, address string) (*txview.TransactionView, error)
	ProcessTransactions(ctx context.Context, body []byte, address string) ([]txview.TransactionView, error)
}

// TransactionHandler handles transaction-related HTTP requests
type TransactionHandler struct {
	transactionService TransactionServiceInterface
}

// NewTransactionHandler creates a new transaction handler
func NewTransactionHandler(transactionService TransactionServiceInterface) *TransactionHandler {
	return &TransactionHandler{
		transactionService: transactionService,
	}
}

// ProcessResponse is the response of POST /transactions/process
type ProcessResponse struct {
	Transactions []txview.TransactionView `json:"transactions"`
}

// GetAccountTransactions handles GET /accounts/{address}/transactions
func (h *TransactionHandler) GetAccountTransactions(w http.ResponseWriter, r *http.Request) {
	address := chi.URLParam(r, "address")
	query := r.URL.Query()

	limit := 0
	if raw := query.Get("limit"); raw != "" {
		var err error
		limit, err = strconv.Atoi(raw)
		if err != nil {
			respondWithError(w, http.StatusBadRequest, apperrors.ErrCodeValidation, "limit must be an integer")
			return
		}
	}

	ctx := withAddress(r.Context(), address)
	page, err := h.transactionService.ListAccountTransactions(ctx, address, limit, query.Get("marker"))
	if err != nil {
		respondWithAppError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, page)
}

// GetTransaction handles GET /transactions/{hash}
func (h *TransactionHandler) GetTransaction(w http.ResponseWriter, r *http.Request) {
	hash := chi.URLParam(r, "hash")
	address := r.URL.Query().Get("address")

	view, err := h.transactionService.GetTransaction(withAddress(r.Context(), address), hash, address)
	if err != nil {
		respondWithAppError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, view)
}

// ProcessTransactions handles POST /transactions/process
func (h *TransactionHandler) ProcessTransactions(w http.ResponseWriter, r *http.Request) {
	address := r.URL.Query().Get("address")

	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxProcessBody))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			respondWithError(w, http.StatusRequestEntityTooLarge, apperrors.ErrCodeValidation, "request body too large")
			return
		}
		respondWithError(w, http.StatusBadRequest, apperrors.ErrCodeValidation, "invalid request body")
		return
	}

	views, err := h.transactionService.ProcessTransactions(withAddress(r.Context(), address), body, address)
	if err != nil {
		respondWithAppError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, ProcessResponse{Transactions: views})
}

func withAddress(ctx context.Context, address string) context.Context {
	if address == "" {
		return ctx
	}
	return context.WithValue(ctx, logger.AddressKey, address)
}
