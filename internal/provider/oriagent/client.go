package oriagent

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/saturnino-fabrica-de-software/oriboard/internal/domain"
	"github.com/saturnino-fabrica-de-software/oriboard/internal/provider"
)

// Config holds the configuration for the console API client
type Config struct {
	BaseURL    string
	Timeout    time.Duration
	RetryCount int
}

// DefaultConfig returns a Config with sensible defaults
func DefaultConfig() Config {
	return Config{
		BaseURL:    "https://cloud.oriagent.com/console/api",
		Timeout:    30 * time.Second,
		RetryCount: 2,
	}
}

// Client is the HTTP client for the Oriagent console API
type Client struct {
	httpClient *http.Client
	config     Config
	tokens     provider.TokenSource
	logger     *slog.Logger
}

// NewClient creates a new console API client
func NewClient(config Config, tokens provider.TokenSource, logger *slog.Logger) *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: config.Timeout,
		},
		config: config,
		tokens: tokens,
		logger: logger.With("component", "oriagent"),
	}
}

// FetchAccounts calls GET /account/admin and returns the validated
// account list. Records missing required fields are quarantined here so
// loosely-typed provider data never reaches the query layer.
func (c *Client) FetchAccounts(ctx context.Context) ([]domain.Account, error) {
	var accounts []domain.Account
	if err := c.doRequestWithRetry(ctx, http.MethodGet, "/account/admin", nil, &accounts); err != nil {
		return nil, domain.ErrUpstreamFetch.WithError(err)
	}

	valid := make([]domain.Account, 0, len(accounts))
	for i := range accounts {
		if err := accounts[i].Validate(); err != nil {
			c.logger.Warn("quarantining malformed account record", "error", err)
			continue
		}
		valid = append(valid, accounts[i])
	}

	return valid, nil
}

// ExtendSubscription calls POST /account/extend
func (c *Client) ExtendSubscription(ctx context.Context, req provider.MutationRequest) error {
	return c.mutate(ctx, "/account/extend", req)
}

// SetMaxApps calls POST /account/max-apps
func (c *Client) SetMaxApps(ctx context.Context, req provider.MutationRequest) error {
	return c.mutate(ctx, "/account/max-apps", req)
}

// SetMaxTokens calls POST /account/max-tokens
func (c *Client) SetMaxTokens(ctx context.Context, req provider.MutationRequest) error {
	return c.mutate(ctx, "/account/max-tokens", req)
}

// SetMaxFileDatasets calls POST /account/max-file-datasets
func (c *Client) SetMaxFileDatasets(ctx context.Context, req provider.MutationRequest) error {
	return c.mutate(ctx, "/account/max-file-datasets", req)
}

// RemoveAccount calls POST /account/remove
func (c *Client) RemoveAccount(ctx context.Context, accountID string) error {
	return c.mutate(ctx, "/account/remove", provider.MutationRequest{AccountID: accountID})
}

func (c *Client) mutate(ctx context.Context, path string, req provider.MutationRequest) error {
	if err := c.doRequestWithRetry(ctx, http.MethodPost, path, req, nil); err != nil {
		return domain.ErrUpstreamFetch.WithError(err)
	}
	return nil
}

// maxBackoff is the maximum backoff duration for retries
const maxBackoff = 30 * time.Second

// calculateBackoff calculates exponential backoff duration for a given attempt
// Returns 1s, 2s, 4s, 8s, etc. up to maxBackoff
func calculateBackoff(attempt int) time.Duration {
	if attempt <= 0 {
		return time.Second
	}
	seconds := 1
	for i := 1; i < attempt && i < 6; i++ {
		seconds *= 2
	}
	return time.Duration(seconds) * time.Second
}

// doRequestWithRetry executes HTTP request with retry logic
func (c *Client) doRequestWithRetry(ctx context.Context, method, path string, body interface{}, result interface{}) error {
	var lastErr error

	for attempt := 0; attempt <= c.config.RetryCount; attempt++ {
		if attempt > 0 {
			backoff := calculateBackoff(attempt)
			if backoff > maxBackoff {
				backoff = maxBackoff
			}
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(backoff):
			}
		}

		lastErr = c.doRequest(ctx, method, path, body, result)
		if lastErr == nil {
			return nil
		}

		// Don't retry on context errors
		if ctx.Err() != nil {
			return ctx.Err()
		}

		// Don't retry on client errors (4xx) - only retry on server errors (5xx)
		if isClientError(lastErr) {
			return lastErr
		}
	}

	return fmt.Errorf("%w: %v", ErrUnavailable, lastErr)
}

// isClientError checks if the error is a 4xx client error
func isClientError(err error) bool {
	if err == nil {
		return false
	}
	errStr := err.Error()
	for status := 400; status < 500; status++ {
		if strings.Contains(errStr, fmt.Sprintf("status %d", status)) {
			return true
		}
	}
	return false
}

// doRequest executes a single HTTP request
func (c *Client) doRequest(ctx context.Context, method, path string, body interface{}, result interface{}) error {
	token, err := c.tokens.Token(ctx)
	if err != nil {
		return err
	}

	var bodyReader io.Reader
	if body != nil {
		bodyBytes, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal request: %w", err)
		}
		bodyReader = bytes.NewReader(bodyBytes)
	}

	url := c.config.BaseURL + path
	req, err := http.NewRequestWithContext(ctx, method, url, bodyReader)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("do request: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode >= 400 {
		return fmt.Errorf("console API returned status %d: %s", resp.StatusCode, string(respBody))
	}

	if result != nil {
		if err := json.Unmarshal(respBody, result); err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidResponse, err)
		}
	}

	return nil
}
