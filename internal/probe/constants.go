package probe

import "time"

// Values the API is expected to return.
const (
	expectedVersion    = "1.0.0"
	invalidJSONMessage = "Invalid JSON"
	leaderboardName    = "leaderboard"
	malformedBody      = "not json"
	defaultTimeout     = 10 * time.Second
	maxResponseBytes   = 1 << 20
)
