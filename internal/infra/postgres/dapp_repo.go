package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/kislikjeka/xrplview/internal/platform/dapp"
)

// DappRepository handles dapp persistence operations
type DappRepository struct {
	pool *pgxpool.Pool
}

// NewDappRepository creates a new PostgreSQL dapp repository
func NewDappRepository(pool *pgxpool.Pool) *DappRepository {
	return &DappRepository{pool: pool}
}

var _ dapp.Repository = (*DappRepository)(nil)

// ListByNetwork retrieves every dapp registered for a network
func (r *DappRepository) ListByNetwork(ctx context.Context, network string) ([]dapp.Dapp, error) {
	query := `
		SELECT network, source_tag, name, url, created_at, updated_at
		FROM dapps
		WHERE network = $1
		ORDER BY source_tag
	`

	rows, err := r.pool.Query(ctx, query, network)
	if err != nil {
		return nil, fmt.Errorf("failed to list dapps: %w", err)
	}
	defer rows.Close()

	var dapps []dapp.Dapp
	for rows.Next() {
		d, err := scanDapp(rows)
		if err != nil {
			return nil, err
		}
		dapps = append(dapps, *d)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating dapps: %w", err)
	}

	return dapps, nil
}

// GetBySourceTag retrieves a single dapp
func (r *DappRepository) GetBySourceTag(ctx context.Context, network string, sourceTag uint32) (*dapp.Dapp, error) {
	query := `
		SELECT network, source_tag, name, url, created_at, updated_at
		FROM dapps
		WHERE network = $1 AND source_tag = $2
	`

	d, err := scanDapp(r.pool.QueryRow(ctx, query, network, int64(sourceTag)))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, dapp.ErrDappNotFound
		}
		return nil, err
	}

	return d, nil
}

// Upsert creates a dapp or updates the name and URL of an existing tag
func (r *DappRepository) Upsert(ctx context.Context, d *dapp.Dapp) error {
	query := `
		INSERT INTO dapps (network, source_tag, name, url, created_at, updated_at)
		VALUES ($1, $2, $3, $4, NOW(), NOW())
		ON CONFLICT (network, source_tag)
		DO UPDATE SET name = EXCLUDED.name, url = EXCLUDED.url, updated_at = NOW()
		RETURNING created_at, updated_at
	`

	err := r.pool.QueryRow(ctx, query, d.Network, int64(d.SourceTag), d.Name, d.URL).
		Scan(&d.CreatedAt, &d.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to upsert dapp: %w", err)
	}

	return nil
}

func scanDapp(row pgx.Row) (*dapp.Dapp, error) {
	var d dapp.Dapp
	var sourceTag int64

	if err := row.Scan(&d.Network, &sourceTag, &d.Name, &d.URL, &d.CreatedAt, &d.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to scan dapp: %w", err)
	}

	d.SourceTag = uint32(sourceTag)
	return &d, nil
}
