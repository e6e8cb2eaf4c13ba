// Package bridge is the protocol client for the local command-execution
// bridge, an external process reached over HTTP on a fixed local origin.
package bridge

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
)

// Per-operation timeouts. Health is deliberately short so the status poller
// settles quickly when the bridge is down.
const (
	healthTimeout  = 3 * time.Second
	executeTimeout = 30 * time.Second
	listTimeout    = 5 * time.Second
)

// ExecResult is the response of a synchronous execute.
type ExecResult struct {
	Stdout   string `json:"stdout"`
	Stderr   string `json:"stderr"`
	ExitCode int    `json:"exitCode"`
}

// FileEntry is one row of a directory listing.
type FileEntry struct {
	Name     string `json:"name"`
	Path     string `json:"path"`
	Type     string `json:"type"` // "file" or "directory"
	Size     int64  `json:"size"`
	Modified string `json:"modified"`
}

// Client talks to the bridge. Streaming uses a plain http.Client because the
// chunked body must be consumed incrementally.
type Client struct {
	base   string
	rc     *resty.Client
	stream *http.Client
}

// New returns a client for the bridge at base (no trailing slash).
func New(base string) *Client {
	return &Client{
		base:   base,
		rc:     resty.New().SetBaseURL(base),
		stream: &http.Client{},
	}
}

// BaseURL reports the configured bridge origin.
func (c *Client) BaseURL() string { return c.base }

// Health probes GET /health. Any transport failure, timeout or non-2xx
// response yields false; Health never returns an error.
func (c *Client) Health(ctx context.Context) bool {
	hctx, cancel := context.WithTimeout(ctx, healthTimeout)
	defer cancel()
	res, err := c.rc.R().SetContext(hctx).Get("/health")
	if err != nil {
		return false
	}
	return res.IsSuccess()
}

// Execute runs command synchronously via POST /execute. A non-2xx status is
// a hard failure.
func (c *Client) Execute(ctx context.Context, command string) (ExecResult, error) {
	ectx, cancel := context.WithTimeout(ctx, executeTimeout)
	defer cancel()
	var out ExecResult
	res, err := c.rc.R().
		SetContext(ectx).
		SetBody(map[string]string{"command": command}).
		SetResult(&out).
		Post("/execute")
	if err != nil {
		return ExecResult{}, fmt.Errorf("bridge execute: %w", err)
	}
	if res.IsError() {
		return ExecResult{}, fmt.Errorf("bridge error: %d", res.StatusCode())
	}
	return out, nil
}

// ListDirectory fetches GET /fs?path=... . A non-2xx status is a hard
// failure.
func (c *Client) ListDirectory(ctx context.Context, path string) ([]FileEntry, error) {
	lctx, cancel := context.WithTimeout(ctx, listTimeout)
	defer cancel()
	var out []FileEntry
	res, err := c.rc.R().
		SetContext(lctx).
		SetQueryParam("path", path).
		SetResult(&out).
		Get("/fs")
	if err != nil {
		return nil, fmt.Errorf("bridge fs: %w", err)
	}
	if res.IsError() {
		return nil, fmt.Errorf("bridge fs error: %d", res.StatusCode())
	}
	return out, nil
}
