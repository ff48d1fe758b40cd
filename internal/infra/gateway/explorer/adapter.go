package explorer

import (
	"context"
	"errors"

	"github.com/kislikjeka/xrplview/internal/module/transactions"
	apperrors "github.com/kislikjeka/xrplview/internal/shared/errors"
)

// TransactionsAdapter adapts the explorer client to the transactions.Explorer interface
type TransactionsAdapter struct {
	client *Client
}

// Compile-time check that TransactionsAdapter implements Explorer
var _ transactions.Explorer = (*TransactionsAdapter)(nil)

// NewTransactionsAdapter creates a new explorer adapter
func NewTransactionsAdapter(client *Client) *TransactionsAdapter {
	return &TransactionsAdapter{client: client}
}

// GetAccountTransactions fetches a page of account transactions
func (a *TransactionsAdapter) GetAccountTransactions(ctx context.Context, address string, limit int, marker string) ([]byte, error) {
	body, err := a.client.GetAccountTransactions(ctx, address, limit, marker)
	if err != nil {
		return nil, toAppError(err, "account")
	}
	return body, nil
}

// GetTransaction fetches a single transaction
func (a *TransactionsAdapter) GetTransaction(ctx context.Context, hash string) ([]byte, error) {
	body, err := a.client.GetTransaction(ctx, hash)
	if err != nil {
		return nil, toAppError(err, "transaction")
	}
	return body, nil
}

// toAppError classifies client errors for the HTTP layer. Context errors pass through.
func toAppError(err error, resource string) error {
	switch {
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return err
	case errors.Is(err, ErrNotFound):
		appErr := apperrors.NotFound(resource)
		appErr.Err = err
		return appErr
	case IsRateLimitError(err):
		return apperrors.RateLimited("explorer API rate limit exceeded", err)
	default:
		return apperrors.Upstream("explorer API request failed", err)
	}
}
