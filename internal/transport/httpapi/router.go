package httpapi

import (
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/kislikjeka/xrplview/internal/transport/httpapi/handler"
	"github.com/kislikjeka/xrplview/internal/transport/httpapi/middleware"
	"github.com/kislikjeka/xrplview/pkg/logger"
)

// Config holds router configuration
type Config struct {
	Logger             *logger.Logger
	Network            string
	AllowedOrigins     []string
	TrustProxy         bool
	TransactionHandler *handler.TransactionHandler
	DappHandler        *handler.DappHandler
	HealthHandler      *handler.HealthHandler
	DocsHandler        *handler.DocsHandler
}

// NewRouter creates a new HTTP router
func NewRouter(cfg Config) *chi.Mux {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chimiddleware.RequestID)
	if cfg.TrustProxy {
		r.Use(chimiddleware.RealIP)
	}
	r.Use(middleware.Recovery(cfg.Logger))
	r.Use(middleware.Logger(cfg.Logger, cfg.Network))
	r.Use(middleware.CORS(cfg.AllowedOrigins))
	r.Use(chimiddleware.Compress(5))
	r.Use(middleware.RateLimit())

	r.Get("/health", handler.GetHealth)
	r.Get("/health/live", handler.GetLiveness)
	if cfg.HealthHandler != nil {
		r.Get("/health/ready", cfg.HealthHandler.GetReadiness)
		r.Get("/health/detailed", cfg.HealthHandler.GetHealthDetailed)
	}

	if cfg.DocsHandler != nil {
		r.Get("/docs", cfg.DocsHandler.GetOpenAPISpec)
		r.Get("/docs/info", cfg.DocsHandler.GetOpenAPIJSON)
	}

	r.Route("/api/v1", func(r chi.Router) {
		if cfg.TransactionHandler != nil {
			r.Get("/accounts/{address}/transactions", cfg.TransactionHandler.GetAccountTransactions)
			r.Post("/transactions/process", cfg.TransactionHandler.ProcessTransactions)
			r.Get("/transactions/{hash}", cfg.TransactionHandler.GetTransaction)
		}

		if cfg.DappHandler != nil {
			r.Get("/dapps", cfg.DappHandler.ListDapps)
			r.Post("/dapps", cfg.DappHandler.RegisterDapp)
		}
	})

	return r
}
