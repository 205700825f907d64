// Package api is the typed HTTP gateway to the mcnews publishing service.
// It owns the wire DTOs, the JSON and multipart request encodings, bearer
// credential attachment, and the normalization of every transport failure
// into the closed error taxonomy in errors.go.
package api

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

	"github.com/google/uuid"
)

// TokenSource supplies the current bearer token, if a session exists.
// session.Store satisfies it.
type TokenSource interface {
	Token() (string, bool)
}

// anonymous is a TokenSource with no token, used when nil is injected.
type anonymous struct{}

func (anonymous) Token() (string, bool) { return "", false }

// Client is the gateway to the remote API. All operations are
// single-attempt: no retry, no token refresh, no recovery — every failure
// is returned to the caller as a normalized *Error.
type Client struct {
	baseURL    string
	httpClient *http.Client
	tokens     TokenSource
	logger     *slog.Logger
}

// NewClient creates a gateway for the API rooted at baseURL. A nil
// TokenSource yields an unauthenticated client.
func NewClient(baseURL string, tokens TokenSource, logger *slog.Logger) *Client {
	if logger == nil {
		logger = slog.Default()
	}
	if tokens == nil {
		tokens = anonymous{}
	}

	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		tokens:  tokens,
		logger:  logger,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
			Transport: &http.Transport{
				TLSHandshakeTimeout:   10 * time.Second,
				ResponseHeaderTimeout: 15 * time.Second,
				IdleConnTimeout:       90 * time.Second,
				MaxIdleConns:          10,
				MaxIdleConnsPerHost:   2,
			},
		},
	}
}

// SetHTTPClient replaces the underlying http.Client. Intended for tests
// and callers that need custom transport settings.
func (c *Client) SetHTTPClient(hc *http.Client) {
	c.httpClient = hc
}

// SetTimeout overrides the overall per-request timeout.
func (c *Client) SetTimeout(d time.Duration) {
	if d > 0 {
		c.httpClient.Timeout = d
	}
}

// newRequest builds a request against the API base URL and authenticates
// it: when the token source holds a credential it is attached as a bearer
// header, otherwise the request goes out unmodified. Each request also
// carries an X-Request-ID for log correlation.
func (c *Client) newRequest(ctx context.Context, method, path string, query url.Values, body io.Reader, contentType string) (*http.Request, error) {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, u, body)
	if err != nil {
		return nil, fmt.Errorf("building %s %s request: %w", method, path, err)
	}

	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", "newsctl/1.0")
	req.Header.Set("X-Request-ID", uuid.NewString())

	if token, ok := c.tokens.Token(); ok {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	return req, nil
}

// do executes the request and returns the raw response body on success.
// Transport failures become KindNetwork, non-2xx statuses go through
// classifyStatus.
func (c *Client) do(req *http.Request) ([]byte, error) {
	start := time.Now()

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Debug("request failed before a response arrived",
			"method", req.Method, "url", req.URL.String(), "error", err)
		return nil, networkError(err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, networkError(err)
	}

	c.logger.Debug("request completed",
		"method", req.Method,
		"url", req.URL.String(),
		"status", resp.StatusCode,
		"elapsed", time.Since(start),
		"request_id", req.Header.Get("X-Request-ID"))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, classifyStatus(resp.StatusCode, body)
	}

	return body, nil
}

// doJSON executes the request and decodes the success body into out.
// Pass nil to discard the body (empty-response endpoints).
func (c *Client) doJSON(req *http.Request, out any) error {
	body, err := c.do(req)
	if err != nil {
		return err
	}
	if out == nil {
		return nil
	}
	if err := json.Unmarshal(body, out); err != nil {
		return decodeError(err)
	}
	return nil
}

// getJSON issues a GET and decodes the response.
func (c *Client) getJSON(ctx context.Context, path string, query url.Values, out any) error {
	req, err := c.newRequest(ctx, http.MethodGet, path, query, nil, "")
	if err != nil {
		return err
	}
	return c.doJSON(req, out)
}

// sendJSON issues a request with a JSON-encoded body and decodes the
// response.
func (c *Client) sendJSON(ctx context.Context, method, path string, payload, out any) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("encoding %s %s payload: %w", method, path, err)
	}

	req, err := c.newRequest(ctx, method, path, nil, bytes.NewReader(data), "application/json")
	if err != nil {
		return err
	}
	return c.doJSON(req, out)
}
