package handler

import (
	"context"
	"net/http"
	"time"
)

// Pinger defines the interface for checking a dependency's connectivity
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthHandler handles health check requests
type HealthHandler struct {
	cache   Pinger
	db      Pinger // nil when no database is configured
	network string
}

// NewHealthHandler creates a new health handler
func NewHealthHandler(cache, db Pinger, network string) *HealthHandler {
	return &HealthHandler{
		cache:   cache,
		db:      db,
		network: network,
	}
}

// HealthResponse represents the health check response
type HealthResponse struct {
	Status  string            `json:"status"`
	Version string            `json:"version"`
	Network string            `json:"network,omitempty"`
	Checks  map[string]string `json:"checks"`
	Uptime  string            `json:"uptime,omitempty"`
}

const version = "1.0.0"

var startTime = time.Now()

// GetHealth handles GET /health
// Basic health check - returns 200 OK if service is running
func GetHealth(w http.ResponseWriter, r *http.Request) {
	response := HealthResponse{
		Status:  "ok",
		Version: version,
		Uptime:  time.Since(startTime).String(),
		Checks:  map[string]string{},
	}

	respondWithJSON(w, http.StatusOK, response)
}

// GetHealthDetailed handles GET /health/detailed
func (h *HealthHandler) GetHealthDetailed(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	checks := make(map[string]string)
	status := "ok"

	if err := h.cache.Ping(ctx); err != nil {
		checks["redis"] = "unhealthy: " + err.Error()
		status = "degraded"
	} else {
		checks["redis"] = "healthy"
	}

	if h.db != nil {
		if err := h.db.Ping(ctx); err != nil {
			checks["database"] = "unhealthy: " + err.Error()
			status = "degraded"
		} else {
			checks["database"] = "healthy"
		}
	}

	httpStatus := http.StatusOK
	if status == "degraded" {
		httpStatus = http.StatusServiceUnavailable
	}

	respondWithJSON(w, httpStatus, HealthResponse{
		Status:  status,
		Version: version,
		Network: h.network,
		Uptime:  time.Since(startTime).String(),
		Checks:  checks,
	})
}

// GetReadiness handles GET /health/ready
// Readiness probe - the service needs its response cache to accept traffic
func (h *HealthHandler) GetReadiness(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	if err := h.cache.Ping(ctx); err != nil {
		respondWithError(w, http.StatusServiceUnavailable, "", "cache not ready")
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]string{"status": "ready"})
}

// GetLiveness handles GET /health/live
func GetLiveness(w http.ResponseWriter, r *http.Request) {
	respondWithJSON(w, http.StatusOK, map[string]string{"status": "alive"})
}
