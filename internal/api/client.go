package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"midnight-auction/internal/auctionerrors"
	"midnight-auction/internal/models"
	"midnight-auction/utils"

	"github.com/go-resty/resty/v2"
)

// APIKeyHeader carries the shared API key on every call
const APIKeyHeader = "X-Noroff-API-Key"

// Config describes how to reach the remote auction API
type Config struct {
	BaseURL    string
	APIKey     string
	Timeout    time.Duration
	HTTPClient *http.Client
}

// Client is a typed facade over the remote auction API.
// Each method issues exactly one HTTP call; errors are either *auctionerrors.APIError
// or *auctionerrors.TransportError.
type Client struct {
	cfg   Config
	token string
	rc    *resty.Client
}

// New creates an unauthenticated client
func New(cfg Config) *Client {
	if cfg.HTTPClient == nil {
		cfg.HTTPClient = &http.Client{}
	}
	return &Client{cfg: cfg, rc: newResty(cfg, "")}
}

// WithToken returns a client that sends the given bearer token. An empty token yields
// an unauthenticated client.
func (c *Client) WithToken(token string) *Client {
	return &Client{cfg: c.cfg, token: token, rc: newResty(c.cfg, token)}
}

// Factory returns a constructor of API clients bound to a token
func (c *Client) Factory() Factory {
	return func(token string) AuctionAPI { return c.WithToken(token) }
}

// Token returns the bearer token the client sends, or ""
func (c *Client) Token() string { return c.token }

func newResty(cfg Config, token string) *resty.Client {
	rc := resty.NewWithClient(cfg.HTTPClient).
		SetBaseURL(cfg.BaseURL).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json").
		SetLogger(utils.Logger())
	if cfg.APIKey != "" {
		rc.SetHeader(APIKeyHeader, cfg.APIKey)
	}
	if cfg.Timeout > 0 {
		rc.SetTimeout(cfg.Timeout)
	}
	if token != "" {
		rc.SetAuthToken(token)
	}
	return rc
}

// call issues one request and decodes the success envelope into T
func call[T any](ctx context.Context, c *Client, method, path string, query map[string]string, body any) (models.Envelope[T], error) {
	var out models.Envelope[T]
	op := method + " " + path

	req := c.rc.R().SetContext(ctx)
	if len(query) > 0 {
		req.SetQueryParams(query)
	}
	if body != nil {
		req.SetBody(body)
	}

	start := time.Now()
	resp, err := req.Execute(method, path)
	if err != nil {
		return out, &auctionerrors.TransportError{Op: op, Err: err}
	}
	status := resp.StatusCode()
	utils.Debug("api call", map[string]any{
		"op":      op,
		"status":  status,
		"latency": time.Since(start).String(),
	})

	raw := resp.Body()
	if status >= 200 && status < 300 {
		if len(raw) == 0 {
			return out, nil
		}
		if err := json.Unmarshal(raw, &out); err != nil {
			return out, &auctionerrors.TransportError{Op: op, StatusCode: status, Err: fmt.Errorf("decode response: %w", err)}
		}
		return out, nil
	}

	return out, decodeError(op, status, raw)
}

// decodeError turns a non-2xx body into a structured APIError when it has one
func decodeError(op string, status int, raw []byte) error {
	var apiErr auctionerrors.APIError
	if err := json.Unmarshal(raw, &apiErr); err == nil && apiErr.Errors != nil {
		if apiErr.StatusCode == 0 {
			apiErr.StatusCode = status
		}
		return &apiErr
	}
	return &auctionerrors.TransportError{Op: op, StatusCode: status, Err: errors.New(http.StatusText(status))}
}

func pageParams(page, limit int) map[string]string {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = DefaultPageSize
	}
	return map[string]string{
		"page":  strconv.Itoa(page),
		"limit": strconv.Itoa(limit),
	}
}
