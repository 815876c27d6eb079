package api

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/octofit/tracker/pkg/logger"
	"github.com/octofit/tracker/pkg/metrics"
)

// resource describes one collection route under /api/.
type resource struct {
	name     string // path segment and metrics label
	title    string // used in the read message
	singular string // used in the write message
	writable bool
	list     func() any
}

func (r resource) path() string { return "/api/" + r.name + "/" }

func (r resource) methods() []string {
	if r.writable {
		return []string{http.MethodGet, http.MethodPost}
	}
	return []string{http.MethodGet}
}

func (s *Server) resources() []resource {
	return []resource{
		{name: "activities", title: "Activities", singular: "Activity", writable: true,
			list: func() any { return s.catalog.Activities() }},
		{name: "users", title: "Users", singular: "User", writable: true,
			list: func() any { return s.catalog.Users() }},
		{name: "teams", title: "Teams", singular: "Team", writable: true,
			list: func() any { return s.catalog.Teams() }},
		{name: "leaderboard", title: "Leaderboard", writable: false,
			list: func() any { return s.catalog.Leaderboard() }},
	}
}

// listResponse is the GET body of every collection route.
type listResponse struct {
	Message  string   `json:"message"`
	BaseURL  string   `json:"base_url"`
	Endpoint string   `json:"endpoint"`
	Methods  []string `json:"methods"`
	Data     any      `json:"data"`
}

// createResponse is the POST body of every writable collection route.
type createResponse struct {
	Message string          `json:"message"`
	BaseURL string          `json:"base_url"`
	Data    json.RawMessage `json:"data"`
}

// handleList serves GET /api/{name}/.
func (s *Server) handleList(res resource) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		base := s.origin.BaseURL()
		metrics.RecordResourceRead(res.name)
		writeJSON(w, http.StatusOK, listResponse{
			Message:  res.title + " API endpoint",
			BaseURL:  base,
			Endpoint: base + res.path(),
			Methods:  res.methods(),
			Data:     res.list(),
		})
	}
}

// handleCreate serves POST /api/{name}/. The body is echoed, never stored.
func (s *Server) handleCreate(res resource) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "api.create"
		base := s.origin.BaseURL()

		payload, err := readPayload(http.MaxBytesReader(w, r.Body, s.maxBody))
		if err != nil {
			metrics.RecordMalformedPayload(res.name)
			s.log.Debug(r.Context(), "rejected payload",
				logger.String("resource", res.name),
				logger.Error(fmt.Errorf("%s: %w", op, err)))
			writeError(w, http.StatusBadRequest, invalidJSONMessage)
			return
		}

		metrics.RecordPayloadEchoed(res.name)
		writeJSON(w, http.StatusCreated, createResponse{
			Message: res.singular + " created successfully",
			BaseURL: base,
			Data:    payload,
		})
	}
}

// readPayload reads body and returns it if it is a single well-formed JSON
// value. Read failures, including an exceeded size limit, count as malformed.
func readPayload(body io.Reader) (json.RawMessage, error) {
	raw, err := io.ReadAll(body)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedPayload, err)
	}
	if !json.Valid(raw) {
		return nil, ErrMalformedPayload
	}
	return json.RawMessage(raw), nil
}
