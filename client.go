package natureos

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

const (
	// DefaultBaseURL is the NatureOS API base URL used when neither an
	// explicit URL nor NATUREOS_API_URL is provided.
	DefaultBaseURL = "http://localhost:8002"

	// DefaultTimeout is the default HTTP request timeout.
	DefaultTimeout = 30 * time.Second
)

// Environment variables consulted for construction-time defaults.
const (
	EnvAPIURL   = "NATUREOS_API_URL"
	EnvAPIKey   = "NATUREOS_API_KEY"
	EnvTenantID = "NATUREOS_TENANT_ID"
)

// Client is a NatureOS API client.
//
// The underlying HTTP handle is created lazily on first use and reused for
// all subsequent calls. Close releases it; a later call re-creates a fresh
// handle. No network activity occurs at construction time.
type Client struct {
	baseURL     string
	apiKey      string
	tenantID    string
	timeout     time.Duration
	retryConfig *RetryConfig
	logger      *slog.Logger

	// custom, when set, is used instead of the default handle on lazy init.
	custom *http.Client

	mu         sync.Mutex
	httpClient *http.Client
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL sets a custom base URL for the API.
// Trailing slashes are stripped.
func WithBaseURL(url string) Option {
	return func(c *Client) {
		c.baseURL = url
	}
}

// WithAPIKey sets the bearer API key. When empty, no Authorization header is sent.
func WithAPIKey(key string) Option {
	return func(c *Client) {
		c.apiKey = key
	}
}

// WithTenantID sets the tenant scope. When empty, no X-Tenant-ID header is sent.
func WithTenantID(tenantID string) Option {
	return func(c *Client) {
		c.tenantID = tenantID
	}
}

// WithTimeout sets the per-request timeout applied to the lazily created
// HTTP handle.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.timeout = timeout
	}
}

// WithHTTPClient sets a custom HTTP client to use instead of the default
// lazily created one. Close still releases it; the same client is reused on
// the next lazy init.
func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) {
		c.custom = client
	}
}

// WithRetry enables automatic retry with the given configuration.
// Retries are attempted on rate limits (429), server errors (5xx), and timeouts.
func WithRetry(config *RetryConfig) Option {
	return func(c *Client) {
		c.retryConfig = config
	}
}

// WithMaxRetries enables automatic retry with default backoff settings and
// the given maximum attempt count. Zero or negative disables retries.
func WithMaxRetries(maxRetries int) Option {
	return func(c *Client) {
		if maxRetries <= 0 {
			c.retryConfig = nil
			return
		}
		config := DefaultRetryConfig()
		config.MaxRetries = maxRetries
		c.retryConfig = config
	}
}

// NewClient creates a new NatureOS API client.
//
// Base URL, API key, and tenant ID default to the NATUREOS_API_URL,
// NATUREOS_API_KEY, and NATUREOS_TENANT_ID environment variables when not
// set through options; the base URL falls back to DefaultBaseURL.
func NewClient(opts ...Option) *Client {
	c := &Client{
		baseURL:  getenvDefault(EnvAPIURL, DefaultBaseURL),
		apiKey:   os.Getenv(EnvAPIKey),
		tenantID: os.Getenv(EnvTenantID),
		timeout:  DefaultTimeout,
	}

	for _, opt := range opts {
		opt(c)
	}

	c.baseURL = strings.TrimRight(c.baseURL, "/")

	return c
}

// getenvDefault returns the environment value for key, or fallback when unset
// or empty.
func getenvDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// ensureHTTPClient returns the HTTP handle, creating it on first use.
// The handle is created at most once per client, even under concurrent
// first calls.
func (c *Client) ensureHTTPClient() *http.Client {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.httpClient != nil {
		return c.httpClient
	}

	if c.custom != nil {
		c.httpClient = c.custom
		return c.httpClient
	}

	c.httpClient = &http.Client{
		Timeout: c.timeout,
		Transport: &http.Transport{
			MaxIdleConns:        100,
			MaxIdleConnsPerHost: 10,
			IdleConnTimeout:     90 * time.Second,
			DisableKeepAlives:   false,
		},
	}

	return c.httpClient
}

// Close releases the HTTP handle if one exists. It is safe to call multiple
// times; a subsequent operation re-creates a fresh handle.
func (c *Client) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.httpClient == nil {
		return nil
	}

	c.httpClient.CloseIdleConnections()
	c.httpClient = nil
	return nil
}

// do performs an HTTP request and returns the response body.
func (c *Client) do(ctx context.Context, method, path string, body any) ([]byte, error) {
	url := c.baseURL + path

	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal request body: %w", err)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, reqBody)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	requestID := uuid.New().String()
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", requestID)
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}
	if c.tenantID != "" {
		req.Header.Set("X-Tenant-ID", c.tenantID)
	}

	httpClient := c.ensureHTTPClient()

	c.logRequest(ctx, method, path, requestID)
	start := time.Now()

	resp, err := httpClient.Do(req)
	if err != nil {
		c.logResponse(ctx, method, path, 0, time.Since(start), err)
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		c.logResponse(ctx, method, path, resp.StatusCode, time.Since(start), err)
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode >= 400 {
		err := c.handleError(resp.StatusCode, respBody, requestID)
		c.logResponse(ctx, method, path, resp.StatusCode, time.Since(start), err)
		return nil, err
	}

	c.logResponse(ctx, method, path, resp.StatusCode, time.Since(start), nil)

	return respBody, nil
}

// handleError converts HTTP error responses to appropriate errors.
func (c *Client) handleError(statusCode int, body []byte, requestID string) error {
	switch statusCode {
	case http.StatusUnauthorized:
		return ErrUnauthorized
	case http.StatusNotFound:
		return ErrNotFound
	case http.StatusTooManyRequests:
		return ErrRateLimited
	default:
		// Try to extract an error message from the response
		var errResp struct {
			Detail  string `json:"detail"`
			Message string `json:"message"`
		}
		if err := json.Unmarshal(body, &errResp); err == nil {
			message := errResp.Detail
			if message == "" {
				message = errResp.Message
			}
			if message != "" {
				return &APIError{
					StatusCode: statusCode,
					Message:    message,
					RequestID:  requestID,
				}
			}
		}
		return &APIError{
			StatusCode: statusCode,
			Message:    string(body),
			RequestID:  requestID,
		}
	}
}

// get performs a GET request.
func (c *Client) get(ctx context.Context, path string) ([]byte, error) {
	return c.doWithRetry(ctx, http.MethodGet, path, nil)
}

// post performs a POST request.
func (c *Client) post(ctx context.Context, path string, body any) ([]byte, error) {
	return c.doWithRetry(ctx, http.MethodPost, path, body)
}
