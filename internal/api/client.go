package api

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

	"taskdo/internal/model"

	"github.com/google/uuid"
)

const (
	// DefaultBaseURL is used when nothing else configures the API location.
	DefaultBaseURL = "http://localhost:8000"

	// Timeout bounds each request, including reading the body.
	Timeout = 10 * time.Second

	// RequestIDHeader is sent with every request and echoed by `taskdo serve`.
	RequestIDHeader = "X-Request-Id"
)

// Client implements Service over HTTP.
type Client struct {
	baseURL string
	http    *http.Client
	log     *slog.Logger
}

type Option func(*Client)

func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.http = hc }
}

func WithLogger(l *slog.Logger) Option {
	return func(c *Client) { c.log = l }
}

// New creates a client for baseURL (DefaultBaseURL when empty).
func New(baseURL string, opts ...Option) *Client {
	baseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	c := &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: Timeout},
		log:     slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

func (c *Client) BaseURL() string { return c.baseURL }

func (c *Client) List(ctx context.Context) ([]model.Task, error) {
	var out []model.Task
	if err := c.do(ctx, "list", http.MethodGet, "/tasks", nil, &out); err != nil {
		return nil, err
	}
	if out == nil {
		out = []model.Task{}
	}
	return out, nil
}

func (c *Client) Get(ctx context.Context, id int64) (model.Task, error) {
	var out model.Task
	err := c.do(ctx, "get", http.MethodGet, taskPath(id), nil, &out)
	return out, err
}

func (c *Client) Create(ctx context.Context, req model.CreateRequest) (model.Task, error) {
	var out model.Task
	err := c.do(ctx, "create", http.MethodPost, "/tasks", req, &out)
	return out, err
}

func (c *Client) Update(ctx context.Context, id int64, p model.Patch) (model.Task, error) {
	var out model.Task
	err := c.do(ctx, "update", http.MethodPatch, taskPath(id), p, &out)
	return out, err
}

func (c *Client) Delete(ctx context.Context, id int64) error {
	return c.do(ctx, "delete", http.MethodDelete, taskPath(id), nil, nil)
}

func taskPath(id int64) string {
	return fmt.Sprintf("/tasks/%d", id)
}

// do issues one request. A 204 leaves out untouched; any other 2xx body is
// decoded into out when out is non-nil.
func (c *Client) do(ctx context.Context, op, method, path string, body any, out any) error {
	var rdr io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return &Error{Op: op, Message: fmt.Sprintf("encode request: %v", err), Err: err}
		}
		rdr = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, rdr)
	if err != nil {
		return transportError(op, err)
	}
	reqID := uuid.NewString()
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set(RequestIDHeader, reqID)

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Debug("api request failed", "op", op, "method", method, "path", path, "request_id", reqID, "error", err)
		return transportError(op, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return transportError(op, err)
	}
	c.log.Debug("api request", "op", op, "method", method, "path", path, "status", resp.StatusCode, "request_id", reqID, "dur", time.Since(start))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return statusError(op, resp.StatusCode, respBody)
	}
	if resp.StatusCode == http.StatusNoContent || out == nil || len(bytes.TrimSpace(respBody)) == 0 {
		return nil
	}
	if err := json.Unmarshal(respBody, out); err != nil {
		return &Error{Op: op, Status: resp.StatusCode, Message: fmt.Sprintf("decode response: %v", err), Err: err}
	}
	return nil
}
