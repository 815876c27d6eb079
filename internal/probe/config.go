package probe

import (
	"encoding/json"
	"time"

	"github.com/octofit/tracker/pkg/logger"
)

// Config holds configuration for a probe run.
type Config struct {
	BaseURL string        // Base URL of the running API
	Timeout time.Duration // Per-request timeout
	Verbose bool          // Log every request, not only failures

	// Logger receives progress lines. Nil discards them.
	Logger logger.Logger
}

// Report summarises a successful probe run.
type Report struct {
	BaseURL            string // base_url reported by the API root
	Endpoints          int    // collection endpoints listed by the root
	RecordsRead        int    // records across all collections
	PayloadsEchoed     int    // writes echoed back unchanged
	PayloadsRejected   int    // malformed writes answered with 400
	LeaderboardEntries int
	Duration           time.Duration
}

// rootDocument is the body of GET /.
type rootDocument struct {
	Message   string            `json:"message"`
	BaseURL   string            `json:"base_url"`
	Endpoints map[string]string `json:"endpoints"`
	Version   string            `json:"version"`
}

// collectionDocument is the body of a collection read.
type collectionDocument struct {
	Message  string            `json:"message"`
	BaseURL  string            `json:"base_url"`
	Endpoint string            `json:"endpoint"`
	Methods  []string          `json:"methods"`
	Data     []json.RawMessage `json:"data"`
}

// echoDocument is the body of an accepted write.
type echoDocument struct {
	Message string          `json:"message"`
	BaseURL string          `json:"base_url"`
	Data    json.RawMessage `json:"data"`
}

type errorDocument struct {
	Error string `json:"error"`
}
