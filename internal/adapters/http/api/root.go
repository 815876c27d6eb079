package api

import (
	"net/http"
)

const apiVersion = "1.0.0"

// rootResponse is the discovery document served at /.
type rootResponse struct {
	Message   string            `json:"message"`
	BaseURL   string            `json:"base_url"`
	Endpoints map[string]string `json:"endpoints"`
	Version   string            `json:"version"`
}

// handleRoot serves / for any method and lists every collection URL.
func (s *Server) handleRoot(w http.ResponseWriter, r *http.Request) {
	base := s.origin.BaseURL()
	endpoints := make(map[string]string, len(s.resource))
	for _, res := range s.resource {
		endpoints[res.name] = base + res.path()
	}
	writeJSON(w, http.StatusOK, rootResponse{
		Message:   "OctoFit Tracker API",
		BaseURL:   base,
		Endpoints: endpoints,
		Version:   apiVersion,
	})
}
