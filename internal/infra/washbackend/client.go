// Package washbackend implements the gateway ports over the external
// Washify REST backend. One Client carries the base URL and bearer
// token injection; per-entity gateways normalize whatever response
// shape the backend answers with into the internal envelope.
package washbackend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"washify/config"
	"washify/internal/errors"

	"go.uber.org/fx"
)

// APIError is a non-2xx answer from the backend. ServerMessage carries
// the backend's own message field when the body had one.
type APIError struct {
	StatusCode    int
	ServerMessage string
}

func (e *APIError) Error() string {
	if e.ServerMessage != "" {
		return fmt.Sprintf("backend returned %d: %s", e.StatusCode, e.ServerMessage)
	}

	return fmt.Sprintf("backend returned %d", e.StatusCode)
}

// ClientParams defines the parameters required for the backend client.
type ClientParams struct {
	fx.In

	Config *config.Config
	Tokens *TokenHolder
	Logger *slog.Logger
}

// Client is the single configured request sender for the backend.
// Every request carries Content-Type application/json and, when a
// session is active, an Authorization bearer header. Idempotent GETs
// are retried with exponential backoff; writes never are.
type Client struct {
	baseURL    string
	httpClient *http.Client
	tokens     *TokenHolder
	logger     *slog.Logger

	retryMax  int
	retryBase time.Duration
}

// NewClient creates the backend client from configuration.
func NewClient(params ClientParams) (*Client, error) {
	backend := params.Config.Backend
	if backend == nil || strings.TrimSpace(backend.BaseURL) == "" {
		return nil, errors.New("backend base URL is required")
	}

	return &Client{
		baseURL:    strings.TrimRight(backend.BaseURL, "/"),
		httpClient: &http.Client{Timeout: backend.Timeout},
		tokens:     params.Tokens,
		logger:     params.Logger,
		retryMax:   backend.RetryMax,
		retryBase:  backend.RetryBaseDelay,
	}, nil
}

// Get performs a GET and returns the raw response body. Transport
// failures and 5xx answers are retried up to the configured maximum,
// doubling the delay each attempt.
func (c *Client) Get(ctx context.Context, path string, query url.Values) ([]byte, error) {
	var lastErr error
	delay := c.retryBase

	for attempt := 0; attempt <= c.retryMax; attempt++ {
		if attempt > 0 {
			c.logger.Debug("retrying backend GET",
				slog.String("path", path),
				slog.Int("attempt", attempt),
				slog.Duration("delay", delay))

			select {
			case <-ctx.Done():
				return nil, errors.Wrap(ctx.Err(), "backend GET canceled")
			case <-time.After(delay):
			}
			delay *= 2
		}

		body, err := c.do(ctx, http.MethodGet, path, query, nil)
		if err == nil {
			return body, nil
		}
		lastErr = err

		if !retryable(err) {
			break
		}
	}

	return nil, lastErr
}

// Post performs a POST with a JSON body and returns the raw response body.
func (c *Client) Post(ctx context.Context, path string, payload any) ([]byte, error) {
	return c.do(ctx, http.MethodPost, path, nil, payload)
}

// Put performs a PUT with a JSON body and returns the raw response body.
func (c *Client) Put(ctx context.Context, path string, payload any) ([]byte, error) {
	return c.do(ctx, http.MethodPut, path, nil, payload)
}

// Patch performs a PATCH with an optional JSON body and returns the raw
// response body.
func (c *Client) Patch(ctx context.Context, path string, payload any) ([]byte, error) {
	return c.do(ctx, http.MethodPatch, path, nil, payload)
}

// Delete performs a DELETE and returns the raw response body.
func (c *Client) Delete(ctx context.Context, path string) ([]byte, error) {
	return c.do(ctx, http.MethodDelete, path, nil, nil)
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, payload any) ([]byte, error) {
	target := c.baseURL + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	var reqBody io.Reader
	if payload != nil {
		encoded, err := json.Marshal(payload)
		if err != nil {
			return nil, errors.Wrap(err, "marshal request payload")
		}
		reqBody = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, target, reqBody)
	if err != nil {
		return nil, errors.Wrap(err, "build backend request")
	}

	req.Header.Set("Content-Type", "application/json")
	if token := c.tokens.Token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrapf(err, "%s %s", method, path)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrapf(err, "read %s %s response", method, path)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &APIError{
			StatusCode:    resp.StatusCode,
			ServerMessage: extractServerMessage(body),
		}
	}

	return body, nil
}

// retryable reports whether a GET failure is worth another attempt:
// transport errors and 5xx answers are, 4xx answers are not.
func retryable(err error) bool {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode >= 500
	}

	// Everything that is not an HTTP status is a transport failure.
	return !errors.Is(err, context.Canceled) && !errors.Is(err, context.DeadlineExceeded)
}

// extractServerMessage pulls the human message out of an error body.
// The backend uses "message" for most errors and "error" for a few.
func extractServerMessage(body []byte) string {
	var envelope struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	if err := json.Unmarshal(body, &envelope); err != nil {
		return ""
	}
	if envelope.Message != "" {
		return envelope.Message
	}

	return envelope.Error
}
