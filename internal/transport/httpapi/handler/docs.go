package handler

import (
	_ "embed"
	"net/http"
)

//go:embed openapi.yaml
var openAPISpec []byte

// DocsHandler handles API documentation requests
type DocsHandler struct {
	specContent []byte
}

// NewDocsHandler creates a new docs handler serving the bundled OpenAPI document
func NewDocsHandler() *DocsHandler {
	return &DocsHandler{
		specContent: openAPISpec,
	}
}

// GetOpenAPISpec handles GET /docs - returns the OpenAPI specification
func (h *DocsHandler) GetOpenAPISpec(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/yaml")
	w.WriteHeader(http.StatusOK)
	w.Write(h.specContent)
}

// GetOpenAPIJSON handles GET /docs/info - returns the OpenAPI specification info
func (h *DocsHandler) GetOpenAPIJSON(w http.ResponseWriter, r *http.Request) {
	respondWithJSON(w, http.StatusOK, map[string]string{
		"title":       "XRPL Transaction View API",
		"version":     version,
		"docs_url":    "/docs",
		"description": "Display-ready views of XRPL and Xahau account transactions",
	})
}
