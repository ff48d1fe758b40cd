package transactions

import "context"

// Explorer fetches raw explorer API responses
type Explorer interface {
	// GetAccountTransactions fetches one page of an account's transactions
	GetAccountTransactions(ctx context.Context, address string, limit int, marker string) ([]byte, error)

	// GetTransaction fetches a single transaction by hash
	GetTransaction(ctx context.Context, hash string) ([]byte, error)
}

// ResponseCache stores raw explorer responses
type ResponseCache interface {
	// Get retrieves a fresh response
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// GetStale retrieves the fallback copy kept after the fresh entry expires
	GetStale(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores a response and refreshes its fallback copy
	Set(ctx context.Context, key string, body []byte) error
}
