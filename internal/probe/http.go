package probe

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

	"github.com/google/uuid"
	"github.com/octofit/tracker/pkg/logger"
)

// httpClient issues probe requests against a single base URL.
type httpClient struct {
	base    string
	client  *http.Client
	log     logger.Logger
	verbose bool
}

func newHTTPClient(base string, timeout time.Duration, log logger.Logger, verbose bool) *httpClient {
	return &httpClient{
		base:    strings.TrimRight(base, "/"),
		client:  &http.Client{Timeout: timeout},
		log:     log,
		verbose: verbose,
	}
}

// response is a fully read reply.
type response struct {
	method string
	path   string
	status int
	body   []byte
}

// get issues GET base+path.
func (c *httpClient) get(ctx context.Context, path string) (*response, error) {
	return c.do(ctx, http.MethodGet, path, nil)
}

// post issues POST base+path with body sent as application/json.
func (c *httpClient) post(ctx context.Context, path string, body []byte) (*response, error) {
	return c.do(ctx, http.MethodPost, path, body)
}

func (c *httpClient) do(ctx context.Context, method, path string, body []byte) (*response, error) {
	var rd io.Reader = http.NoBody
	if body != nil {
		rd = bytes.NewReader(body)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.base+path, rd)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	id := uuid.NewString()
	req.Header.Set("X-Request-ID", id)
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	start := time.Now()
	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer func() { _ = resp.Body.Close() }()

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, fmt.Errorf("%s %s: read body: %w", method, path, err)
	}

	if c.verbose {
		c.log.Info(logger.WithRequestID(ctx, id), "probe request",
			logger.String("method", method),
			logger.String("path", path),
			logger.Int("status", resp.StatusCode),
			logger.Float64("duration_ms", float64(time.Since(start).Microseconds())/1000))
	}
	return &response{method: method, path: path, status: resp.StatusCode, body: data}, nil
}

// expect fails with ErrUnexpectedStatus unless r has the given status.
func (r *response) expect(status int) error {
	if r.status != status {
		return fmt.Errorf("%w: %s %s returned %d, want %d", ErrUnexpectedStatus, r.method, r.path, r.status, status)
	}
	return nil
}

// decode unmarshals the body into v.
func (r *response) decode(v any) error {
	if err := json.Unmarshal(r.body, v); err != nil {
		return fmt.Errorf("%w: %s %s body is not JSON: %w", ErrMismatch, r.method, r.path, err)
	}
	return nil
}

// endpointPath maps an absolute endpoint link advertised under baseURL to a
// path on the probed server.
func endpointPath(baseURL, link string) (string, error) {
	if !strings.HasPrefix(link, baseURL) {
		return "", fmt.Errorf("%w: endpoint %q is not under base_url %q", ErrMismatch, link, baseURL)
	}
	u, err := url.Parse(link)
	if err != nil {
		return "", fmt.Errorf("%w: endpoint %q: %w", ErrMismatch, link, err)
	}
	return u.Path, nil
}
