package catalog

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/tidwall/gjson"
	"go.uber.org/zap"
)

const (
	DefaultBaseURL = "https://www.googleapis.com/books/v1"

	endpointSearch = "search"
	endpointVolume = "volume"
)

var (
	ErrUnavailable = errors.New("catalog unavailable")
	ErrBadPayload  = errors.New("catalog returned invalid json")
)

// StatusError carries a non-2xx status from the provider so handlers can
// relay it unchanged.
type StatusError struct {
	Endpoint string
	Status   int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("catalog %s: status=%d", e.Endpoint, e.Status)
}

type ClientConfig struct {
	BaseURL string
	APIKey  string
	Timeout time.Duration
	Metrics *UpstreamMetrics
	Log     *zap.Logger
}

// Client talks to the Google Books volumes API. It never retries and keeps
// no state between calls.
type Client struct {
	rc      *resty.Client
	apiKey  string
	metrics *UpstreamMetrics
}

func NewClient(cfg ClientConfig) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}

	rc := resty.New().
		SetBaseURL(cfg.BaseURL).
		SetHeader("Accept", "application/json").
		SetRetryCount(0)
	if cfg.Timeout > 0 {
		rc.SetTimeout(cfg.Timeout)
	}
	if cfg.Log != nil {
		rc.SetLogger(cfg.Log.Named("resty").Sugar())
	}

	return &Client{rc: rc, apiKey: cfg.APIKey, metrics: cfg.Metrics}
}

// Search returns the provider's volume list document verbatim.
func (c *Client) Search(ctx context.Context, p SearchParams) ([]byte, error) {
	req := c.request(ctx).SetQueryParams(p.values())
	return c.do(endpointSearch, func() (*resty.Response, error) {
		return req.Get("/volumes")
	})
}

// Volume returns a single volume document verbatim.
func (c *Client) Volume(ctx context.Context, id string) ([]byte, error) {
	req := c.request(ctx).SetPathParam("id", id)
	return c.do(endpointVolume, func() (*resty.Response, error) {
		return req.Get("/volumes/{id}")
	})
}

func (c *Client) request(ctx context.Context) *resty.Request {
	req := c.rc.R().SetContext(ctx)
	if c.apiKey != "" {
		req.SetQueryParam("key", c.apiKey)
	}
	return req
}

func (c *Client) do(endpoint string, send func() (*resty.Response, error)) ([]byte, error) {
	resp, err := send()
	if err != nil {
		c.metrics.observe(endpoint, "error")
		return nil, fmt.Errorf("%w: %w", ErrUnavailable, err)
	}
	c.metrics.observe(endpoint, strconv.Itoa(resp.StatusCode()))

	if !resp.IsSuccess() {
		return nil, &StatusError{Endpoint: endpoint, Status: resp.StatusCode()}
	}

	body := resp.Body()
	if !gjson.ValidBytes(body) {
		return nil, ErrBadPayload
	}
	return body, nil
}
