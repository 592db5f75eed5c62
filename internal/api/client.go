package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"vpndash/pkg/logging"

	"github.com/google/uuid"
	"github.com/hashicorp/go-cleanhttp"
)

const clientSubsystem = "APIClient"

const (
	PathStatus     = "/api/vpn/status"
	PathServers    = "/api/servers"
	PathConnect    = "/api/vpn/connect"
	PathDisconnect = "/api/vpn/disconnect"
	PathConfig     = "/api/vpn/config"
)

// maxBodyBytes bounds how much of a response is read.
const maxBodyBytes = 1 << 20

// VPNAPI is the set of calls the dashboard makes against the control API.
type VPNAPI interface {
	Status(ctx context.Context) (StatusSnapshot, error)
	Servers(ctx context.Context) ([]ServerDescriptor, error)
	Connect(ctx context.Context, serverID string) (ActionResult, error)
	Disconnect(ctx context.Context) (ActionResult, error)
	Config(ctx context.Context) (ConfigDocument, error)
}

// Client is the HTTP implementation of VPNAPI.
type Client struct {
	baseURL    string
	httpClient *http.Client
	userAgent  string
	timeout    time.Duration
}

// Option customises a Client.
type Option func(*Client)

// WithHTTPClient replaces the pooled default client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// WithUserAgent sets the User-Agent header sent with every request.
func WithUserAgent(ua string) Option {
	return func(c *Client) { c.userAgent = ua }
}

// WithTimeout bounds each request when the caller's context has no deadline.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.timeout = d }
}

// NewClient creates a client for the API rooted at baseURL.
func NewClient(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: cleanhttp.DefaultPooledClient(),
		userAgent:  "vpndash",
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

var _ VPNAPI = (*Client)(nil)

// BaseURL returns the API root this client talks to.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Status fetches the current connection snapshot.
func (c *Client) Status(ctx context.Context) (StatusSnapshot, error) {
	var status StatusSnapshot
	err := c.do(ctx, "status", http.MethodGet, PathStatus, nil, &status)
	return status, err
}

// Servers fetches the ordered server list.
func (c *Client) Servers(ctx context.Context) ([]ServerDescriptor, error) {
	var list ServerList
	if err := c.do(ctx, "servers", http.MethodGet, PathServers, nil, &list); err != nil {
		return nil, err
	}
	if list.Servers == nil {
		return nil, &DecodeError{Op: "servers", Err: fmt.Errorf("missing servers field")}
	}
	return list.Servers, nil
}

// Connect asks the backend to connect through serverID.
func (c *Client) Connect(ctx context.Context, serverID string) (ActionResult, error) {
	if serverID == "" {
		return ActionResult{}, ErrNoServerSelected
	}
	return c.action(ctx, "connect", PathConnect, ConnectRequest{Server: serverID})
}

// Disconnect asks the backend to tear down the current connection.
func (c *Client) Disconnect(ctx context.Context) (ActionResult, error) {
	return c.action(ctx, "disconnect", PathDisconnect, nil)
}

// Config fetches the client configuration text.
func (c *Client) Config(ctx context.Context) (ConfigDocument, error) {
	var doc ConfigDocument
	err := c.do(ctx, "config", http.MethodGet, PathConfig, nil, &doc)
	return doc, err
}

func (c *Client) action(ctx context.Context, op, path string, body interface{}) (ActionResult, error) {
	var result ActionResult
	if err := c.do(ctx, op, http.MethodPost, path, body, &result); err != nil {
		return result, err
	}
	if !result.Success {
		return result, &ActionError{Op: op, Result: result}
	}
	return result, nil
}

func (c *Client) do(ctx context.Context, op, method, path string, body interface{}, out interface{}) error {
	if c.timeout > 0 {
		if _, ok := ctx.Deadline(); !ok {
			var cancel context.CancelFunc
			ctx, cancel = context.WithTimeout(ctx, c.timeout)
			defer cancel()
		}
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("%s: failed to marshal request: %w", op, err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("%s: failed to build request: %w", op, err)
	}
	requestID := uuid.NewString()
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("X-Request-ID", requestID)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &TransportError{Op: op, Err: err}
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return &TransportError{Op: op, Err: err}
	}
	logging.Debug(clientSubsystem, "%s %s -> %d in %s (request %s)", method, path, resp.StatusCode, time.Since(start).Round(time.Millisecond), requestID)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &StatusError{Op: op, StatusCode: resp.StatusCode, Message: serverMessage(data)}
	}

	if err := json.Unmarshal(data, out); err != nil {
		return &DecodeError{Op: op, Err: err}
	}
	return nil
}

// serverMessage pulls a human-readable reason out of an error body, if any.
func serverMessage(data []byte) string {
	var body struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	if err := json.Unmarshal(data, &body); err != nil {
		return ""
	}
	if body.Error != "" {
		return body.Error
	}
	return body.Message
}
