package middleware

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kislikjeka/xrplview/pkg/logger"
)

func newLoggedRouter(buf *bytes.Buffer) http.Handler {
	r := chi.NewRouter()
	r.Use(Logger(logger.NewWithFormat("test", "json", buf), "xahau"))
	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/accounts/{address}/transactions", func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusNotFound)
			w.Write([]byte(`{"error":"account not found","code":"NOT_FOUND"}`))
		})
		r.Get("/transactions/{hash}", func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
		})
	})
	return r
}

func logLine(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()
	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line), buf.String())
	return line
}

func TestLogger_RouteAttributes(t *testing.T) {
	t.Setenv("LOG_LEVEL", "")

	tests := []struct {
		name   string
		target string
		level  string
		want   map[string]any
	}{
		{
			name:   "account route",
			target: "/api/v1/accounts/rHb9CJAWyB4rj91VRWn96DkukG4bwdtyTh/transactions?limit=5",
			level:  "WARN",
			want: map[string]any{
				"route":   "/api/v1/accounts/{address}/transactions",
				"address": "rHb9CJAWyB4rj91VRWn96DkukG4bwdtyTh",
				"status":  float64(http.StatusNotFound),
				"error":   "account not found",
			},
		},
		{
			name:   "transaction route with viewer",
			target: "/api/v1/transactions/ABCD?address=rViewer",
			level:  "INFO",
			want: map[string]any{
				"route":   "/api/v1/transactions/{hash}",
				"hash":    "ABCD",
				"address": "rViewer",
				"status":  float64(http.StatusOK),
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			h := newLoggedRouter(&buf)

			h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, tt.target, nil))

			line := logLine(t, &buf)
			assert.Equal(t, "HTTP request", line["msg"])
			assert.Equal(t, tt.level, line["level"])
			assert.Equal(t, "xahau", line["network"])
			for key, value := range tt.want {
				assert.Equal(t, value, line[key], key)
			}
		})
	}
}

func TestLogger_UnmatchedRouteHasNoParams(t *testing.T) {
	t.Setenv("LOG_LEVEL", "")

	var buf bytes.Buffer
	newLoggedRouter(&buf).ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/nowhere", nil))

	line := logLine(t, &buf)
	assert.Equal(t, float64(http.StatusNotFound), line["status"])
	assert.NotContains(t, line, "address")
	assert.NotContains(t, line, "hash")
}
