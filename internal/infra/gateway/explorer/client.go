package explorer

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/time/rate"

	"github.com/kislikjeka/xrplview/pkg/logger"
)

const (
	requestTimeout = 30 * time.Second
	maxRetries     = 3
	maxErrorBody   = 512

	// DefaultPageSize is used when the caller does not ask for a limit
	DefaultPageSize = 20
	// MaxPageSize caps the number of transactions requested per page
	MaxPageSize = 200
)

// Client is an HTTP client for the explorer REST API
type Client struct {
	apiKey     string
	httpClient *http.Client
	baseURL    string
	limiter    *rate.Limiter
	backoff    time.Duration
	logger     *logger.Logger
}

// NewClient creates a new explorer API client allowing requestsPerSecond outbound requests
func NewClient(baseURL, apiKey string, requestsPerSecond float64, log *logger.Logger) *Client {
	burst := int(requestsPerSecond)
	if burst < 1 {
		burst = 1
	}
	return &Client{
		apiKey: apiKey,
		httpClient: &http.Client{
			Timeout: requestTimeout,
		},
		baseURL: strings.TrimRight(baseURL, "/"),
		limiter: rate.NewLimiter(rate.Limit(requestsPerSecond), burst),
		backoff: time.Second,
		logger:  log.WithComponent("explorer"),
	}
}

// SetBaseURL overrides the base URL (useful for testing)
func (c *Client) SetBaseURL(u string) {
	c.baseURL = strings.TrimRight(u, "/")
}

// SetBackoff overrides the initial retry delay (useful for testing)
func (c *Client) SetBackoff(d time.Duration) {
	c.backoff = d
}

// GetAccountTransactions fetches one page of an account's transactions. The body is returned
// undecoded so callers can cache it as received.
func (c *Client) GetAccountTransactions(ctx context.Context, address string, limit int, marker string) ([]byte, error) {
	if limit <= 0 {
		limit = DefaultPageSize
	}
	if limit > MaxPageSize {
		limit = MaxPageSize
	}

	params := url.Values{}
	params.Set("limit", strconv.Itoa(limit))
	if marker != "" {
		params.Set("marker", marker)
	}

	reqURL := fmt.Sprintf("%s/transactions/%s", c.baseURL, url.PathEscape(address))
	body, err := c.doRequest(ctx, http.MethodGet, reqURL, params)
	if err != nil {
		return nil, fmt.Errorf("GetAccountTransactions failed: %w", err)
	}
	return body, nil
}

// GetTransaction fetches a single transaction by hash
func (c *Client) GetTransaction(ctx context.Context, hash string) ([]byte, error) {
	reqURL := fmt.Sprintf("%s/transaction/%s", c.baseURL, url.PathEscape(hash))
	body, err := c.doRequest(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("GetTransaction failed: %w", err)
	}
	return body, nil
}

// doRequest performs an authenticated HTTP request with rate-limit retry.
// Outbound requests are paced by the limiter; 429 responses are retried up to maxRetries
// times with exponential backoff.
func (c *Client) doRequest(ctx context.Context, method, reqURL string, params url.Values) ([]byte, error) {
	if len(params) > 0 {
		reqURL = reqURL + "?" + params.Encode()
	}

	requestID := requestIDFrom(ctx)
	log := c.logger.WithField("request_id", requestID)

	backoff := c.backoff
	for attempt := 0; attempt <= maxRetries; attempt++ {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, fmt.Errorf("rate limiter: %w", err)
		}

		log.Debug("API request", "method", method, "url", reqURL, "attempt", attempt)
		attemptStart := time.Now()

		req, err := http.NewRequestWithContext(ctx, method, reqURL, nil)
		if err != nil {
			return nil, fmt.Errorf("failed to create request: %w", err)
		}

		req.Header.Set("Accept", "application/json")
		req.Header.Set("X-Request-ID", requestID)
		if c.apiKey != "" {
			req.Header.Set("x-bithomp-token", c.apiKey)
		}

		resp, err := c.httpClient.Do(req)
		if err != nil {
			return nil, fmt.Errorf("failed to execute request: %w", err)
		}

		body, readErr := io.ReadAll(resp.Body)
		resp.Body.Close()
		if readErr != nil {
			return nil, fmt.Errorf("failed to read response body: %w", readErr)
		}

		switch resp.StatusCode {
		case http.StatusOK:
			log.Debug("API response", "status_code", resp.StatusCode, "duration_ms", time.Since(attemptStart).Milliseconds())
			return body, nil

		case http.StatusNotFound:
			return nil, ErrNotFound

		case http.StatusTooManyRequests:
			wait := retryAfter(resp.Header.Get("Retry-After"), backoff)
			if attempt == maxRetries {
				log.Error("rate limit exhausted", "attempts", maxRetries+1)
				return nil, &RateLimitError{
					RetryAfter: wait,
					Message:    "explorer API rate limit exceeded after retries",
				}
			}
			log.Warn("rate limited, retrying", "attempt", attempt, "backoff_ms", wait.Milliseconds())
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(wait):
				backoff *= 2
				continue
			}
		}

		log.Error("API error", "status_code", resp.StatusCode)
		if len(body) > maxErrorBody {
			body = body[:maxErrorBody]
		}
		return nil, &StatusError{StatusCode: resp.StatusCode, Body: string(body)}
	}

	return nil, fmt.Errorf("explorer API: exhausted retries")
}

// requestIDFrom reuses the inbound request ID when there is one
func requestIDFrom(ctx context.Context) string {
	if id, ok := ctx.Value(logger.RequestIDKey).(string); ok && id != "" {
		return id
	}
	return uuid.NewString()
}

// retryAfter honours a Retry-After header given in seconds, falling back to the backoff
func retryAfter(header string, fallback time.Duration) time.Duration {
	if header == "" {
		return fallback
	}
	secs, err := strconv.Atoi(header)
	if err != nil || secs < 0 {
		return fallback
	}
	return time.Duration(secs) * time.Second
}
