package dapp

import "context"

// Repository defines the interface for dapp persistence operations
type Repository interface {
	// ListByNetwork retrieves every dapp registered for a network
	ListByNetwork(ctx context.Context, network string) ([]Dapp, error)

	// GetBySourceTag retrieves a single dapp, ErrDappNotFound when absent
	GetBySourceTag(ctx context.Context, network string, sourceTag uint32) (*Dapp, error)

	// Upsert creates a dapp or renames the existing entry for its tag
	Upsert(ctx context.Context, d *Dapp) error
}
