package inventree

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"inventree-sync/core/catalog"
	"inventree-sync/core/utils"

	"go.uber.org/zap"
)

// HTTPClient executes HTTP requests. *http.Client implements it.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client is the REST implementation of catalog.Gateway.
type Client struct {
	baseURL    string
	token      string
	userAgent  string
	httpClient HTTPClient
	logger     *zap.Logger
}

var _ catalog.Gateway = (*Client)(nil)

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the default HTTP client.
func WithHTTPClient(hc HTTPClient) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// NewClient creates a client for the API at cfg.APIHost.
func NewClient(cfg Config, logger *zap.Logger, opts ...Option) (*Client, error) {
	u, err := url.Parse(cfg.APIHost)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("invalid api host %q", cfg.APIHost)
	}
	if cfg.APIToken == "" {
		return nil, fmt.Errorf("api token is required")
	}

	userAgent := "inventree-sync"
	if cfg.TokenName != "" {
		userAgent += "/" + cfg.TokenName
	}

	c := &Client{
		baseURL:    strings.TrimRight(cfg.APIHost, "/"),
		token:      cfg.APIToken,
		userAgent:  userAgent,
		httpClient: utils.NewHTTPClient(cfg.TimeoutSeconds),
		logger:     logger,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// PartURL returns the web UI address of a part.
func (c *Client) PartURL(id int) string {
	return fmt.Sprintf("%s/part/%d/", c.baseURL, id)
}

// SupplierPartURL returns the web UI address of a supplier part.
func (c *Client) SupplierPartURL(id int) string {
	return fmt.Sprintf("%s/supplier-part/%d/", c.baseURL, id)
}

func (c *Client) endpoint(path string, query url.Values) string {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}
	return u
}

// do sends a request and returns the response body of a 2xx response.
func (c *Client) do(ctx context.Context, method, rawURL, contentType string, body io.Reader) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, method, rawURL, body)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Authorization", "Token "+c.token)
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s %s: %w", method, rawURL, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%s %s: failed to read response: %w", method, rawURL, err)
	}

	c.logger.Debug("API request",
		zap.String("method", method),
		zap.String("url", rawURL),
		zap.Int("status", resp.StatusCode),
		zap.Duration("duration", time.Since(start)))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &APIError{Method: method, URL: rawURL, StatusCode: resp.StatusCode, Body: string(data)}
	}
	return data, nil
}

func (c *Client) sendJSON(ctx context.Context, method, path string, in any) ([]byte, error) {
	payload, err := json.Marshal(in)
	if err != nil {
		return nil, fmt.Errorf("failed to encode %s body: %w", path, err)
	}
	return c.do(ctx, method, c.endpoint(path, nil), "application/json", bytes.NewReader(payload))
}

type page[T any] struct {
	Next    *string `json:"next"`
	Results []T     `json:"results"`
}

// list fetches a collection. Plain arrays and paginated {"results": [...]}
// payloads are both accepted; pagination links are followed.
func list[T any](ctx context.Context, c *Client, path string, query url.Values) ([]T, error) {
	var out []T
	next := c.endpoint(path, query)

	for next != "" {
		data, err := c.do(ctx, http.MethodGet, next, "", nil)
		if err != nil {
			return nil, err
		}

		trimmed := bytes.TrimSpace(data)
		if len(trimmed) > 0 && trimmed[0] == '[' {
			var items []T
			if err := json.Unmarshal(trimmed, &items); err != nil {
				return nil, fmt.Errorf("failed to decode %s: %w", path, err)
			}
			return append(out, items...), nil
		}

		var p page[T]
		if err := json.Unmarshal(trimmed, &p); err != nil {
			return nil, fmt.Errorf("failed to decode %s: %w", path, err)
		}
		out = append(out, p.Results...)

		next = ""
		if p.Next != nil {
			next = *p.Next
		}
	}
	return out, nil
}

func get[T any](ctx context.Context, c *Client, path string) (*T, error) {
	data, err := c.do(ctx, http.MethodGet, c.endpoint(path, nil), "", nil)
	if err != nil {
		return nil, err
	}
	return decodeOne[T](path, data)
}

func post[T any](ctx context.Context, c *Client, path string, in any) (*T, error) {
	data, err := c.sendJSON(ctx, http.MethodPost, path, in)
	if err != nil {
		return nil, err
	}
	return decodeOne[T](path, data)
}

func patch[T any](ctx context.Context, c *Client, path string, in any) (*T, error) {
	data, err := c.sendJSON(ctx, http.MethodPatch, path, in)
	if err != nil {
		return nil, err
	}
	return decodeOne[T](path, data)
}

// decodeOne decodes a single record. Some create endpoints answer with a
// one-element array.
func decodeOne[T any](path string, data []byte) (*T, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) > 0 && trimmed[0] == '[' {
		var items []T
		if err := json.Unmarshal(trimmed, &items); err != nil {
			return nil, fmt.Errorf("failed to decode %s: %w", path, err)
		}
		if len(items) != 1 {
			return nil, fmt.Errorf("failed to decode %s: expected one record, got %d", path, len(items))
		}
		return &items[0], nil
	}

	var out T
	if err := json.Unmarshal(trimmed, &out); err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", path, err)
	}
	return &out, nil
}

func idPath(prefix string, id int) string {
	return fmt.Sprintf("%s%d/", prefix, id)
}
