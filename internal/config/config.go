// Package config defines service configuration and its loading.
//
// Values are layered defaults -> optional YAML file -> OCTOFIT_* environment
// variables. The workspace variable used for base URL resolution is read at
// request time by the origin package, not here.
package config

import (
	"github.com/octofit/tracker/internal/domain/catalog"
	"github.com/octofit/tracker/internal/origin"
)

// Config contains process configuration.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// LogFormat selects the log handler: text or json.
	LogFormat string `koanf:"log_format"`

	// Addr configures the HTTP listen address, e.g. ":8000".
	Addr string `koanf:"addr"`

	// MaxBodyBytes caps the request body read on write routes.
	MaxBodyBytes int64 `koanf:"max_body_bytes"`

	// PublicURL, when set, is used verbatim as the base URL.
	PublicURL string `koanf:"public_url"`

	// WorkspaceEnv names the variable holding the remote workspace name.
	WorkspaceEnv string `koanf:"workspace_env"`

	// WorkspacePort and WorkspaceDomain shape https://{name}-{port}.{domain}.
	WorkspacePort   int    `koanf:"workspace_port"`
	WorkspaceDomain string `koanf:"workspace_domain"`

	// LocalOrigin is the base URL outside a workspace.
	LocalOrigin string `koanf:"local_origin"`

	// Fixtures optionally replaces the built-in record tables.
	Fixtures catalog.Fixtures `koanf:"fixtures"`
}

// New creates a Config populated with defaults.
func New() *Config {
	return &Config{
		LogLevel:        "info",
		LogFormat:       "text",
		Addr:            ":8000",
		MaxBodyBytes:    1 << 20,
		WorkspaceEnv:    origin.DefaultWorkspaceEnv,
		WorkspacePort:   origin.DefaultPort,
		WorkspaceDomain: origin.DefaultDomain,
		LocalOrigin:     origin.DefaultLocal,
	}
}

// Resolver returns the base URL resolver described by the configuration.
func (c *Config) Resolver() origin.Resolver {
	if c.PublicURL != "" {
		return origin.Static(c.PublicURL)
	}
	return origin.NewEnv(
		origin.WithVariable(c.WorkspaceEnv),
		origin.WithPort(c.WorkspacePort),
		origin.WithDomain(c.WorkspaceDomain),
		origin.WithLocal(c.LocalOrigin),
	)
}

// Catalog builds the read-only record tables.
func (c *Config) Catalog() *catalog.Catalog {
	return catalog.New(c.Fixtures)
}
