// Package workspace is a thin typed client for the Databricks workspace
// REST API. It covers the three endpoints deployment verification needs:
// the path-status probe, the recursive path listing, and the cluster list.
package workspace

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"
)

// apiPrefix is prepended to endpoints that do not already carry it.
const apiPrefix = "/api/2.0"

// ErrNotFound indicates the probed path does not exist in the workspace.
var ErrNotFound = errors.New("workspace: path not found")

// APIError is a non-200 response from the workspace API.
type APIError struct {
	StatusCode int
	Endpoint   string
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("workspace: %s returned %d: %s", e.Endpoint, e.StatusCode, e.Body)
}

// Client issues authenticated requests against a single workspace host.
type Client struct {
	host  string
	token string
	httpc *http.Client
	log   *slog.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client. Used by tests and
// callers that need custom transports.
func WithHTTPClient(httpc *http.Client) Option {
	return func(c *Client) { c.httpc = httpc }
}

// WithLogger sets the logger used for request diagnostics.
func WithLogger(log *slog.Logger) Option {
	return func(c *Client) { c.log = log }
}

// WithTimeout sets the per-request timeout on the default HTTP client.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.httpc.Timeout = d }
}

// NewClient creates a client for the given workspace host and access token.
// A trailing slash on the host is tolerated.
func NewClient(host, token string, opts ...Option) *Client {
	c := &Client{
		host:  strings.TrimRight(host, "/"),
		token: token,
		httpc: &http.Client{Timeout: 30 * time.Second},
		log:   slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Host returns the normalized workspace host URL.
func (c *Client) Host() string { return c.host }

// do issues a single request and decodes the JSON response into out.
// Endpoints without the API version prefix get it prepended.
func (c *Client) do(ctx context.Context, method, endpoint string, body, out any) error {
	if !strings.HasPrefix(endpoint, apiPrefix) {
		endpoint = apiPrefix + endpoint
	}
	url := c.host + endpoint

	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("workspace: encoding %s request: %w", endpoint, err)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, reqBody)
	if err != nil {
		return fmt.Errorf("workspace: building %s request: %w", endpoint, err)
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Content-Type", "application/json")

	c.log.Debug("workspace request", "method", method, "endpoint", endpoint)

	resp, err := c.httpc.Do(req)
	if err != nil {
		c.log.Warn("workspace request failed", "endpoint", endpoint, "error", err)
		return fmt.Errorf("workspace: %s: %w", endpoint, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		data, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		apiErr := &APIError{
			StatusCode: resp.StatusCode,
			Endpoint:   endpoint,
			Body:       strings.TrimSpace(string(data)),
		}
		c.log.Warn("workspace API error", "endpoint", endpoint, "status", resp.StatusCode)
		return apiErr
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("workspace: decoding %s response: %w", endpoint, err)
	}
	return nil
}

// GetStatus probes a workspace path. It returns ErrNotFound when the API
// reports the path as missing (404, or the Databricks-style 400 with a
// RESOURCE_DOES_NOT_EXIST body).
func (c *Client) GetStatus(ctx context.Context, path string) (*ObjectInfo, error) {
	var resp statusResponse
	err := c.do(ctx, http.MethodPost, "/workspace/get-status", map[string]string{"path": path}, &resp)
	if err != nil {
		var apiErr *APIError
		if errors.As(err, &apiErr) && isNotFound(apiErr) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return nil, err
	}
	if resp.Path == "" {
		return nil, fmt.Errorf("workspace: get-status response for %s missing path field", path)
	}
	return &ObjectInfo{Path: resp.Path, ObjectType: resp.ObjectType}, nil
}

// PathExists reports whether a path exists. Transport and API failures are
// logged and collapse to false so callers can treat them as absence.
func (c *Client) PathExists(ctx context.Context, path string) bool {
	_, err := c.GetStatus(ctx, path)
	if err == nil {
		return true
	}
	if !errors.Is(err, ErrNotFound) {
		c.log.Warn("existence probe failed", "path", path, "error", err)
	}
	return false
}

// ListObjects lists the immediate children of a workspace directory.
// An empty directory comes back with no objects field, which is not an error.
func (c *Client) ListObjects(ctx context.Context, path string) ([]ObjectInfo, error) {
	var resp listResponse
	if err := c.do(ctx, http.MethodPost, "/workspace/list", map[string]string{"path": path}, &resp); err != nil {
		return nil, err
	}
	return resp.Objects, nil
}

// ListNotebooks recursively collects notebook paths beneath path, in the
// order the API returns them (pre-order, directories expanded in place).
// On a failed listing it returns the notebooks found so far together with
// the error so callers can tell "empty" from "listing failed".
func (c *Client) ListNotebooks(ctx context.Context, path string) ([]string, error) {
	objects, err := c.ListObjects(ctx, path)
	if err != nil {
		return nil, err
	}

	var notebooks []string
	for _, obj := range objects {
		switch obj.ObjectType {
		case ObjectTypeNotebook:
			notebooks = append(notebooks, obj.Path)
		case ObjectTypeDirectory:
			sub, err := c.ListNotebooks(ctx, obj.Path)
			notebooks = append(notebooks, sub...)
			if err != nil {
				return notebooks, err
			}
		}
	}
	return notebooks, nil
}

// ListClusters returns every cluster visible to the token.
func (c *Client) ListClusters(ctx context.Context) ([]ClusterInfo, error) {
	var resp clustersResponse
	if err := c.do(ctx, http.MethodGet, "/clusters/list", nil, &resp); err != nil {
		return nil, err
	}
	return resp.Clusters, nil
}

func isNotFound(err *APIError) bool {
	if err.StatusCode == http.StatusNotFound {
		return true
	}
	// The workspace API reports missing paths as 400 with an error code.
	return err.StatusCode == http.StatusBadRequest &&
		strings.Contains(err.Body, "RESOURCE_DOES_NOT_EXIST")
}
