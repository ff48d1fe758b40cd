package transactions

import (
	"context"
	"encoding/hex"
	"encoding/json"
	"fmt"

	"github.com/kislikjeka/xrplview/internal/platform/txview"
	apperrors "github.com/kislikjeka/xrplview/internal/shared/errors"
	"github.com/kislikjeka/xrplview/internal/xrpl"
	"github.com/kislikjeka/xrplview/pkg/logger"
)

const (
	// MaxLimit is the largest page size a caller may ask for
	MaxLimit = 200

	hashLength = 32
)

// Service fetches transactions from the explorer and turns them into view models
type Service struct {
	network   string
	explorer  Explorer
	cache     ResponseCache
	processor *txview.Processor
	logger    *logger.Logger
}

// NewService creates a new transaction service. cache may be nil.
func NewService(
	network string,
	explorer Explorer,
	cache ResponseCache,
	processor *txview.Processor,
	log *logger.Logger,
) *Service {
	return &Service{
		network:   network,
		explorer:  explorer,
		cache:     cache,
		processor: processor,
		logger:    log.WithComponent("transactions"),
	}
}

// ListAccountTransactions returns one page of address's transactions as seen from address
func (s *Service) ListAccountTransactions(ctx context.Context, address string, limit int, marker string) (*AccountTransactionsPage, error) {
	if err := xrpl.ValidateAddress(address); err != nil {
		return nil, apperrors.InvalidAddress(address, err)
	}
	if limit < 0 || limit > MaxLimit {
		return nil, apperrors.Validation(fmt.Sprintf("limit must be between 0 and %d (0 = explorer default)", MaxLimit))
	}

	key := fmt.Sprintf("%s:account:%s:%d:%s", s.network, address, limit, marker)
	body, err := s.fetch(ctx, key, func(ctx context.Context) ([]byte, error) {
		return s.explorer.GetAccountTransactions(ctx, address, limit, marker)
	})
	if err != nil {
		return nil, err
	}

	var resp accountTransactionsResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, apperrors.Upstream("explorer returned an invalid transaction list", err)
	}

	log := s.logger.WithContext(ctx).WithField("address", address)
	txs := make([]xrpl.Transaction, len(resp.Transactions))
	for i, raw := range resp.Transactions {
		tx, err := xrpl.ParseTransaction(raw)
		if err != nil {
			log.Warn("undecodable transaction kept as placeholder", "index", i, "error", err)
			tx = xrpl.Placeholder(raw)
		}
		txs[i] = *tx
	}

	views := s.processor.ProcessTransactionBlocks(txs, address)
	s.logUnclassified(log, views)

	return &AccountTransactionsPage{
		Address:      address,
		Transactions: views,
		Marker:       markerString(resp.Marker),
	}, nil
}

// GetTransaction returns a single transaction as seen from address.
// An empty address means the submitter's point of view.
func (s *Service) GetTransaction(ctx context.Context, hash, address string) (*txview.TransactionView, error) {
	if raw, err := hex.DecodeString(hash); err != nil || len(raw) != hashLength {
		return nil, apperrors.Validation("hash must be 64 hexadecimal characters")
	}
	if address != "" {
		if err := xrpl.ValidateAddress(address); err != nil {
			return nil, apperrors.InvalidAddress(address, err)
		}
	}

	key := fmt.Sprintf("%s:tx:%s", s.network, hash)
	body, err := s.fetch(ctx, key, func(ctx context.Context) ([]byte, error) {
		return s.explorer.GetTransaction(ctx, hash)
	})
	if err != nil {
		return nil, err
	}

	tx, err := xrpl.ParseTransaction(body)
	if err != nil {
		return nil, apperrors.Upstream("explorer returned an invalid transaction", err)
	}

	view := s.processor.ProcessTransactionBlock(tx, address)
	s.logUnclassified(s.logger.WithContext(ctx), []txview.TransactionView{view})
	return &view, nil
}

// ProcessTransactions formats envelopes the caller already has, without calling the explorer
func (s *Service) ProcessTransactions(ctx context.Context, body []byte, address string) ([]txview.TransactionView, error) {
	if address != "" {
		if err := xrpl.ValidateAddress(address); err != nil {
			return nil, apperrors.InvalidAddress(address, err)
		}
	}

	txs, err := xrpl.ParseTransactions(body)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrCodeValidation, "invalid transaction list")
	}

	views := s.processor.ProcessTransactionBlocks(txs, address)
	s.logUnclassified(s.logger.WithContext(ctx), views)
	return views, nil
}

// fetch serves key from the cache, falling back to the explorer. When the explorer fails
// with an upstream error the stale copy is served if there is one.
func (s *Service) fetch(ctx context.Context, key string, load func(context.Context) ([]byte, error)) ([]byte, error) {
	log := s.logger.WithContext(ctx).WithField("key", key)

	if s.cache != nil {
		body, found, err := s.cache.Get(ctx, key)
		if err != nil {
			log.Warn("cache read failed", "error", err)
		} else if found {
			return body, nil
		}
	}

	body, err := load(ctx)
	if err != nil {
		if s.cache != nil && servesStale(err) {
			if stale, found, staleErr := s.cache.GetStale(ctx, key); staleErr == nil && found {
				log.Warn("explorer unavailable, serving stale response", "error", err)
				return stale, nil
			}
		}
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, key, body); err != nil {
			log.Warn("cache write failed", "error", err)
		}
	}
	return body, nil
}

func servesStale(err error) bool {
	switch apperrors.CodeOf(err) {
	case apperrors.ErrCodeUpstream, apperrors.ErrCodeRateLimited:
		return true
	}
	return false
}

func (s *Service) logUnclassified(log *logger.Logger, views []txview.TransactionView) {
	for _, v := range views {
		if v.Family == txview.FamilyUnclassified {
			log.Debug("unclassified transaction type", "type", v.RawType, "hash", v.Hash)
		}
	}
}
