package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/kislikjeka/xrplview/internal/platform/dapp"
	apperrors "github.com/kislikjeka/xrplview/internal/shared/errors"
)

// DappRegistrar stores new dapp source tags
type DappRegistrar interface {
	Register(ctx context.Context, d *dapp.Dapp) error
}

// DappLister lists the source tags currently recognised
type DappLister interface {
	All() []dapp.Dapp
}

// DappHandler handles dapp registry requests
type DappHandler struct {
	registry  DappLister
	registrar DappRegistrar // nil when no database is configured
	network   string
}

// NewDappHandler creates a new dapp handler
func NewDappHandler(registry DappLister, registrar DappRegistrar, network string) *DappHandler {
	return &DappHandler{
		registry:  registry,
		registrar: registrar,
		network:   network,
	}
}

// DappResponse represents a dapp entry
type DappResponse struct {
	SourceTag uint32 `json:"source_tag"`
	Name      string `json:"name"`
	URL       string `json:"url,omitempty"`
}

// RegisterDappRequest represents the dapp registration request
type RegisterDappRequest struct {
	SourceTag uint32 `json:"source_tag"`
	Name      string `json:"name"`
	URL       string `json:"url,omitempty"`
}

// ListDapps handles GET /dapps
func (h *DappHandler) ListDapps(w http.ResponseWriter, r *http.Request) {
	entries := h.registry.All()
	response := make([]DappResponse, len(entries))
	for i, d := range entries {
		response[i] = DappResponse{SourceTag: d.SourceTag, Name: d.Name, URL: d.URL}
	}
	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"network": h.network,
		"dapps":   response,
	})
}

// RegisterDapp handles POST /dapps. New entries apply after the next restart.
func (h *DappHandler) RegisterDapp(w http.ResponseWriter, r *http.Request) {
	if h.registrar == nil {
		respondWithError(w, http.StatusNotImplemented, "", "dapp storage is not configured")
		return
	}

	var req RegisterDappRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, apperrors.ErrCodeValidation, "invalid request body")
		return
	}

	d := &dapp.Dapp{
		Network:   h.network,
		SourceTag: req.SourceTag,
		Name:      req.Name,
		URL:       req.URL,
	}
	if err := h.registrar.Register(r.Context(), d); err != nil {
		if errors.Is(err, dapp.ErrInvalidName) || errors.Is(err, dapp.ErrInvalidSourceTag) || errors.Is(err, dapp.ErrInvalidNetwork) {
			respondWithError(w, http.StatusBadRequest, apperrors.ErrCodeValidation, err.Error())
			return
		}
		respondWithError(w, http.StatusInternalServerError, apperrors.ErrCodeInternal, "failed to register dapp")
		return
	}

	respondWithJSON(w, http.StatusCreated, DappResponse{SourceTag: d.SourceTag, Name: d.Name, URL: d.URL})
}
