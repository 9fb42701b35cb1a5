// Package api implements the shared HTTP client for the Epic Robotics
// Academy backend. It is the single place where requests are built:
// bearer-token attachment, JSON encoding/decoding, and normalization of
// every failure into a typed *Error.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/google/uuid"

	"github.com/epicrobotics/academy-cli/internal/logging"
)

// TokenProvider yields the current bearer token, or "" when the session is
// anonymous. It is consulted on every outgoing request.
type TokenProvider interface {
	Token(ctx context.Context) (string, error)
}

// Config describes how to reach the backend.
//
// BaseURL is the origin (e.g. https://api.example.com), BasePath the common
// prefix of every endpoint (e.g. /api). Timeout bounds each request when no
// custom HTTPClient is supplied.
type Config struct {
	BaseURL    string
	BasePath   string
	Timeout    time.Duration
	HTTPClient *http.Client
	Tokens     TokenProvider
	Logger     logging.Logger
}

// Client issues requests against the backend. One Client is shared by all
// service modules; it is safe for concurrent use.
type Client struct {
	baseURL    string
	httpClient *http.Client
	tokens     TokenProvider
	log        logging.Logger
}

// New builds a Client from cfg.
func New(cfg Config) *Client {
	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.Timeout}
	}
	log := cfg.Logger
	if log == nil {
		log = logging.Nop{}
	}
	return &Client{
		baseURL:    cfg.BaseURL + cfg.BasePath,
		httpClient: httpClient,
		tokens:     cfg.Tokens,
		log:        log,
	}
}

// BaseURL returns the resolved origin+prefix every request is issued against.
func (c *Client) BaseURL() string {
	return c.baseURL
}

func (c *Client) Get(ctx context.Context, path string, out any) error {
	return c.do(ctx, http.MethodGet, path, nil, out)
}

func (c *Client) Post(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPost, path, body, out)
}

func (c *Client) Put(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPut, path, body, out)
}

func (c *Client) Patch(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPatch, path, body, out)
}

func (c *Client) Delete(ctx context.Context, path string, out any) error {
	return c.do(ctx, http.MethodDelete, path, nil, out)
}

// do performs one fire-and-wait round trip. There are no retries and no
// caching.
//
// Response handling:
//   - 204 or an empty body resolves successfully with out left untouched.
//   - Non-2xx responses become an *Error carrying the body's "error" (or
//     "message") text, the HTTP status, and the optional "field" list.
//   - Transport failures and unparsable bodies become an *Error with
//     Status 0 and a generic connectivity message.
func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	reqURL := c.baseURL + path

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return newConnectivityError()
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, reqURL, reader)
	if err != nil {
		return newConnectivityError()
	}

	req.Header.Set("Content-Type", "application/json")
	requestID := uuid.NewString()
	req.Header.Set("X-Request-ID", requestID)

	if c.tokens != nil {
		token, err := c.tokens.Token(ctx)
		if err != nil {
			c.log.Error(ctx, "token read failed", "error", err)
			return newConnectivityError()
		}
		if token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.Warn(ctx, "request failed", "method", method, "path", path, "request_id", requestID, "error", err)
		return newConnectivityError()
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return newConnectivityError()
	}

	c.log.Debug(ctx, "request completed",
		"method", method, "path", path, "status", resp.StatusCode,
		"request_id", requestID, "elapsed", time.Since(start))

	// 204 No Content and zero-length bodies are valid empty results,
	// never a parse attempt.
	if resp.StatusCode == http.StatusNoContent || len(data) == 0 {
		return nil
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var envelope struct {
			Error   string   `json:"error"`
			Message string   `json:"message"`
			Field   []string `json:"field"`
		}
		if err := json.Unmarshal(data, &envelope); err != nil {
			return newConnectivityError()
		}
		message := envelope.Error
		if message == "" {
			message = envelope.Message
		}
		return newError(message, resp.StatusCode, envelope.Field)
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return newConnectivityError()
	}
	return nil
}

// DirectURL builds an absolute URL with the current bearer token embedded as
// a "token" query parameter. It is meant for direct-link contexts (file
// downloads, previews) where setting an Authorization header is not
// possible. Callers should treat the result as sensitive: the token is
// visible in the URL.
func (c *Client) DirectURL(ctx context.Context, path string) (string, error) {
	direct := c.baseURL + path
	if c.tokens == nil {
		return direct, nil
	}
	token, err := c.tokens.Token(ctx)
	if err != nil {
		return "", err
	}
	if token == "" {
		return direct, nil
	}
	return direct + "?token=" + url.QueryEscape(token), nil
}
