package dapp

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/kislikjeka/xrplview/pkg/config"
)

// Service assembles the registry for a network from built-in entries, the networks
// config file and the optional database table
type Service struct {
	repo   Repository
	logger *slog.Logger
}

// NewService creates a new dapp service. repo may be nil when no database is configured.
func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

// LoadRegistry merges the registry layers for network. Database rows win over config entries,
// which win over built-in ones.
func (s *Service) LoadRegistry(ctx context.Context, network *config.Network) (*Registry, error) {
	fromConfig := make([]Dapp, 0, len(network.Dapps))
	for _, tag := range network.Dapps {
		fromConfig = append(fromConfig, Dapp{
			Network:   network.Name,
			SourceTag: tag.SourceTag,
			Name:      tag.Name,
		})
	}

	var fromDB []Dapp
	if s.repo != nil {
		var err error
		fromDB, err = s.repo.ListByNetwork(ctx, network.Name)
		if err != nil {
			return nil, fmt.Errorf("failed to list dapps: %w", err)
		}
	}

	registry := NewRegistry(builtin, fromConfig, fromDB)
	s.logger.Info("dapp registry loaded",
		"network", network.Name,
		"builtin", len(builtin),
		"config", len(fromConfig),
		"database", len(fromDB),
		"total", registry.Len())

	return registry, nil
}

// Register validates and stores a dapp. It takes effect on the next LoadRegistry.
func (s *Service) Register(ctx context.Context, d *Dapp) error {
	if s.repo == nil {
		return fmt.Errorf("dapp storage is not configured")
	}
	if err := d.Validate(); err != nil {
		return err
	}
	if err := s.repo.Upsert(ctx, d); err != nil {
		return fmt.Errorf("failed to register dapp: %w", err)
	}
	return nil
}
