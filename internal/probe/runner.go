// Package probe exercises every endpoint of a running tracker API and checks
// the responses the way a browser client consumes them.
package probe

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"slices"
	"sort"
	"time"

	"github.com/octofit/tracker/internal/domain/types"
	"github.com/octofit/tracker/pkg/logger"
)

// Run executes the probe against cfg.BaseURL. Any failed check returns an
// error wrapping ErrUnexpectedStatus or ErrMismatch.
func Run(ctx context.Context, cfg *Config) (*Report, error) {
	if cfg == nil || cfg.BaseURL == "" {
		return nil, errors.New("probe: base URL is required")
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	log := cfg.Logger
	if log == nil {
		log = logger.Nop()
	}

	start := time.Now()
	c := newHTTPClient(cfg.BaseURL, timeout, log, cfg.Verbose)
	report := &Report{}

	log.Info(ctx, "starting probe", logger.String("url", cfg.BaseURL), logger.String("timeout", timeout.String()))

	// Step 1: discover endpoints
	root, err := fetchRoot(ctx, c)
	if err != nil {
		return nil, fmt.Errorf("root: %w", err)
	}
	report.BaseURL = root.BaseURL
	report.Endpoints = len(root.Endpoints)

	names := make([]string, 0, len(root.Endpoints))
	for name := range root.Endpoints {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		path, err := endpointPath(root.BaseURL, root.Endpoints[name])
		if err != nil {
			return nil, fmt.Errorf("%s: %w", name, err)
		}

		// Step 2: read the collection
		doc, err := fetchCollection(ctx, c, root.BaseURL, path)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", name, err)
		}
		report.RecordsRead += len(doc.Data)

		if name == leaderboardName {
			n, err := checkLeaderboard(path, doc)
			if err != nil {
				return nil, err
			}
			report.LeaderboardEntries = n
		}

		if !slices.Contains(doc.Methods, http.MethodPost) {
			continue
		}

		// Step 3: echo a valid payload
		if err := checkEcho(ctx, c, name, path); err != nil {
			return nil, fmt.Errorf("%s: %w", name, err)
		}
		report.PayloadsEchoed++

		// Step 4: reject a malformed one
		if err := checkRejected(ctx, c, path); err != nil {
			return nil, fmt.Errorf("%s: %w", name, err)
		}
		report.PayloadsRejected++
	}

	report.Duration = time.Since(start)
	log.Info(ctx, "probe passed",
		logger.String("base_url", report.BaseURL),
		logger.Int("endpoints", report.Endpoints),
		logger.Int("records", report.RecordsRead),
		logger.Int("echoed", report.PayloadsEchoed),
		logger.Int("rejected", report.PayloadsRejected),
		logger.String("duration", report.Duration.String()))
	return report, nil
}

func fetchRoot(ctx context.Context, c *httpClient) (*rootDocument, error) {
	resp, err := c.get(ctx, "/")
	if err != nil {
		return nil, err
	}
	if err := resp.expect(http.StatusOK); err != nil {
		return nil, err
	}
	var root rootDocument
	if err := resp.decode(&root); err != nil {
		return nil, err
	}
	if root.Version != expectedVersion {
		return nil, fmt.Errorf("%w: version %q, want %q", ErrMismatch, root.Version, expectedVersion)
	}
	if len(root.Endpoints) == 0 {
		return nil, fmt.Errorf("%w: no endpoints listed", ErrMismatch)
	}
	return &root, nil
}

func fetchCollection(ctx context.Context, c *httpClient, baseURL, path string) (*collectionDocument, error) {
	resp, err := c.get(ctx, path)
	if err != nil {
		return nil, err
	}
	if err := resp.expect(http.StatusOK); err != nil {
		return nil, err
	}
	var doc collectionDocument
	if err := resp.decode(&doc); err != nil {
		return nil, err
	}
	if doc.BaseURL != baseURL {
		return nil, fmt.Errorf("%w: base_url %q differs from root %q", ErrMismatch, doc.BaseURL, baseURL)
	}
	if len(doc.Data) == 0 {
		return nil, fmt.Errorf("%w: %s returned no records", ErrMismatch, path)
	}
	return &doc, nil
}

// checkLeaderboard requires ranks to be non-decreasing.
func checkLeaderboard(path string, doc *collectionDocument) (int, error) {
	prev := 0
	for i, raw := range doc.Data {
		var e types.LeaderboardEntry
		if err := json.Unmarshal(raw, &e); err != nil {
			return 0, fmt.Errorf("%w: %s entry %d: %w", ErrMismatch, path, i, err)
		}
		if i > 0 && e.Rank < prev {
			return 0, fmt.Errorf("%w: %s rank %d follows rank %d", ErrMismatch, path, e.Rank, prev)
		}
		prev = e.Rank
	}
	return len(doc.Data), nil
}

func checkEcho(ctx context.Context, c *httpClient, name, path string) error {
	payload, err := samplePayload(name)
	if err != nil {
		return err
	}
	resp, err := c.post(ctx, path, payload)
	if err != nil {
		return err
	}
	if err := resp.expect(http.StatusCreated); err != nil {
		return err
	}
	var doc echoDocument
	if err := resp.decode(&doc); err != nil {
		return err
	}
	if !sameJSON(payload, doc.Data) {
		return fmt.Errorf("%w: POST %s echoed %s, sent %s", ErrMismatch, path, doc.Data, payload)
	}
	return nil
}

func checkRejected(ctx context.Context, c *httpClient, path string) error {
	resp, err := c.post(ctx, path, []byte(malformedBody))
	if err != nil {
		return err
	}
	if err := resp.expect(http.StatusBadRequest); err != nil {
		return err
	}
	var doc errorDocument
	if err := resp.decode(&doc); err != nil {
		return err
	}
	if doc.Error != invalidJSONMessage {
		return fmt.Errorf("%w: POST %s error %q, want %q", ErrMismatch, path, doc.Error, invalidJSONMessage)
	}
	return nil
}
