package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/kislikjeka/xrplview/internal/infra/gateway/explorer"
	"github.com/kislikjeka/xrplview/internal/infra/postgres"
	infraRedis "github.com/kislikjeka/xrplview/internal/infra/redis"
	"github.com/kislikjeka/xrplview/internal/module/transactions"
	"github.com/kislikjeka/xrplview/internal/platform/dapp"
	"github.com/kislikjeka/xrplview/internal/platform/txview"
	"github.com/kislikjeka/xrplview/internal/transport/httpapi"
	"github.com/kislikjeka/xrplview/internal/transport/httpapi/handler"
	"github.com/kislikjeka/xrplview/pkg/config"
	"github.com/kislikjeka/xrplview/pkg/logger"

	"github.com/redis/go-redis/v9"
)

func main() {
	// Create context that listens for termination signals
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	log := logger.NewDefault(cfg.Env)
	log.Info("Starting XRPL transaction view server",
		"env", cfg.Env,
		"port", cfg.Port,
		"network", cfg.Network,
	)

	networks, err := config.LoadNetworksConfig(cfg.NetworksConfigPath)
	if err != nil {
		log.Error("Failed to load networks config", "error", err, "path", cfg.NetworksConfigPath)
		os.Exit(1)
	}
	network, ok := networks.GetNetwork(cfg.Network)
	if !ok {
		log.Error("Unknown network", "network", cfg.Network, "available", networks.Names())
		os.Exit(1)
	}

	// Initialize Redis client for explorer response caching
	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisURL,
		Password: cfg.RedisPassword,
		DB:       0,
	})
	defer redisClient.Close()

	if err := redisClient.Ping(ctx).Err(); err != nil {
		log.Error("Failed to connect to Redis", "error", err)
		os.Exit(1)
	}
	log.Info("Redis connection established")

	responseCache := infraRedis.NewCacheWithTTL(redisClient, cfg.CacheTTL, log)

	// The dapp table is optional; without a database only built-in and configured tags apply
	var (
		dappRepo dapp.Repository
		dbPinger handler.Pinger
	)
	if cfg.HasDatabase() {
		db, err := postgres.NewPool(ctx, postgres.Config{URL: cfg.DatabaseURL})
		if err != nil {
			log.Error("Failed to connect to database", "error", err)
			os.Exit(1)
		}
		defer db.Close()
		log.Info("Database connection established")

		dappRepo = postgres.NewDappRepository(db.Pool)
		dbPinger = db
	} else {
		log.Warn("DATABASE_URL not configured, dapp registry limited to built-in and configured tags")
	}

	dappSvc := dapp.NewService(dappRepo, log.Logger)
	registry, err := dappSvc.LoadRegistry(ctx, network)
	if err != nil {
		log.Error("Failed to load dapp registry", "error", err)
		os.Exit(1)
	}

	processor := txview.NewProcessor(network.NativeCurrency, registry)

	explorerURL := network.ExplorerAPIURL
	if cfg.ExplorerAPIURL != "" {
		explorerURL = cfg.ExplorerAPIURL
	}
	explorerClient := explorer.NewClient(explorerURL, cfg.ExplorerAPIKey, cfg.ExplorerRateLimit, log)
	explorerAdapter := explorer.NewTransactionsAdapter(explorerClient)
	log.Info("Explorer client initialized", "url", explorerURL, "rate_limit", cfg.ExplorerRateLimit)

	transactionSvc := transactions.NewService(network.Name, explorerAdapter, responseCache, processor, log)

	// Initialize HTTP handlers
	var registrar handler.DappRegistrar
	if dappRepo != nil {
		registrar = dappSvc
	}
	transactionHandler := handler.NewTransactionHandler(transactionSvc)
	dappHandler := handler.NewDappHandler(registry, registrar, network.Name)
	healthHandler := handler.NewHealthHandler(responseCache, dbPinger, network.Name)
	docsHandler := handler.NewDocsHandler()

	// Create HTTP router
	routerCfg := httpapi.Config{
		Logger:             log,
		Network:            network.Name,
		AllowedOrigins:     cfg.AllowedOrigins,
		TrustProxy:         cfg.TrustProxy,
		TransactionHandler: transactionHandler,
		DappHandler:        dappHandler,
		HealthHandler:      healthHandler,
		DocsHandler:        docsHandler,
	}
	r := httpapi.NewRouter(routerCfg)

	// Create HTTP server
	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second, // explorer retries can take a while
		IdleTimeout:  60 * time.Second,
	}

	// Start server in a goroutine
	go func() {
		log.Info("Server listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("Server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	// Wait for termination signal
	<-ctx.Done()
	log.Info("Shutdown signal received")

	// Graceful shutdown with timeout
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server shutdown failed", "error", err)
		os.Exit(1)
	}

	log.Info("Server stopped gracefully")
}
