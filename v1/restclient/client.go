package restclient

import (
	"bytes"
	"context"
	"crypto/tls"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/labrador-ai/watsonx/v1/observability"
)

// DefaultTimeout is applied when Config.Timeout is zero.
const DefaultTimeout = 60 * time.Second

// Authenticator attaches credentials to an outgoing request.
type Authenticator interface {
	Authenticate(ctx context.Context, req *http.Request) error
}

// Config configures a Client.
type Config struct {
	// Component names the service in observed operations, e.g. "openscale".
	Component string

	// BaseURL is the service root; a trailing slash is removed.
	BaseURL string

	// Authenticator is optional; requests are sent unauthenticated when nil.
	Authenticator Authenticator

	// HTTPClient overrides the client built from Timeout and DisableSSLVerification.
	HTTPClient *http.Client

	Timeout                time.Duration
	DisableSSLVerification bool

	// Observer receives one OperationContext per request. Optional.
	Observer observability.Observer
}

// Client sends JSON requests to one watsonx service.
type Client struct {
	component  string
	baseURL    string
	httpClient *http.Client
	auth       Authenticator
	observer   observability.Observer
}

// Request describes a single call.
type Request struct {
	// Operation is the logical name reported to the observer.
	Operation string

	Method string
	Path   string
	Query  url.Values

	// Body is JSON-encoded when not nil.
	Body any

	// Resource is reported to the observer, e.g. the subscription id.
	Resource string

	// Size is reported to the observer, e.g. the number of records sent.
	Size int64
}

// New creates a Client. BaseURL is required.
func New(cfg Config) (*Client, error) {
	if cfg.BaseURL == "" {
		return nil, fmt.Errorf("restclient: base URL is required for %s", cfg.Component)
	}
	if _, err := url.Parse(cfg.BaseURL); err != nil {
		return nil, fmt.Errorf("restclient: invalid base URL %q: %w", cfg.BaseURL, err)
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = NewHTTPClient(cfg.Timeout, cfg.DisableSSLVerification)
	}

	return &Client{
		component:  cfg.Component,
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		httpClient: httpClient,
		auth:       cfg.Authenticator,
		observer:   cfg.Observer,
	}, nil
}

// NewHTTPClient returns an *http.Client with the given timeout that optionally
// skips TLS certificate verification (self-signed Cloud Pak for Data clusters).
func NewHTTPClient(timeout time.Duration, disableSSLVerification bool) *http.Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	client := &http.Client{Timeout: timeout}
	if disableSSLVerification {
		transport := http.DefaultTransport.(*http.Transport).Clone()
		transport.TLSClientConfig = &tls.Config{InsecureSkipVerify: true} //nolint:gosec // opt-in for self-signed clusters
		client.Transport = transport
	}
	return client
}

// BaseURL returns the service root the client was configured with.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Do sends r and decodes a 2xx JSON response into out (when out is not nil).
// Non-2xx responses are returned as *APIError.
func (c *Client) Do(ctx context.Context, r Request, out any) (err error) {
	start := time.Now()
	defer func() {
		c.observeOperation(r, time.Since(start), err)
	}()

	target := c.baseURL + r.Path
	if len(r.Query) > 0 {
		target += "?" + r.Query.Encode()
	}

	var body io.Reader
	if r.Body != nil {
		data, err := json.Marshal(r.Body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, r.Method, target, body)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	if r.Body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.auth != nil {
		if err := c.auth.Authenticate(ctx, req); err != nil {
			return fmt.Errorf("authenticate %s: %w", c.component, err)
		}
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", r.Method, target, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		respBody, _ := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
		return NewAPIError(r.Method, target, resp.StatusCode, respBody)
	}

	if out == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil && err != io.EOF {
		return fmt.Errorf("decode %s response: %w", r.Operation, err)
	}
	return nil
}

func (c *Client) observeOperation(r Request, duration time.Duration, err error) {
	if c.observer == nil {
		return
	}
	c.observer.ObserveOperation(observability.OperationContext{
		Component: c.component,
		Operation: r.Operation,
		Resource:  r.Resource,
		Duration:  duration,
		Error:     err,
		Size:      r.Size,
	})
}
