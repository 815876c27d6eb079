// Package origin computes the externally visible base URL used to build
// self-referential links in API responses.
package origin

import (
	"fmt"
	"os"
	"strings"
)

// Defaults matching a GitHub Codespaces forwarded port.
const (
	DefaultWorkspaceEnv = "CODESPACE_NAME"
	DefaultPort         = 8000
	DefaultDomain       = "app.github.dev"
	DefaultLocal        = "http://localhost:8000"
)

// Resolver yields the origin string (scheme://host[:port]) for a request.
type Resolver interface {
	BaseURL() string
}

// Resolve is the pure form of the default resolution: a non-empty workspace
// name yields https://{workspace}-8000.app.github.dev, anything else yields
// http://localhost:8000.
func Resolve(workspace string) string {
	return resolve(workspace, DefaultPort, DefaultDomain, DefaultLocal)
}

func resolve(workspace string, port int, domain, local string) string {
	if workspace == "" {
		return local
	}
	return fmt.Sprintf("https://%s-%d.%s", workspace, port, domain)
}

// Static always returns the same origin.
type Static string

// BaseURL implements Resolver.
func (s Static) BaseURL() string { return strings.TrimRight(string(s), "/") }

// Env resolves from a process environment variable on every call.
type Env struct {
	variable string
	port     int
	domain   string
	local    string
	lookup   func(string) (string, bool)
}

// Option configures an Env resolver.
type Option func(*Env)

// WithVariable sets the environment variable naming the workspace.
func WithVariable(name string) Option {
	return func(e *Env) {
		if name != "" {
			e.variable = name
		}
	}
}

// WithPort sets the forwarded port embedded in the workspace host name.
func WithPort(port int) Option {
	return func(e *Env) {
		if port > 0 {
			e.port = port
		}
	}
}

// WithDomain sets the workspace forwarding domain.
func WithDomain(domain string) Option {
	return func(e *Env) {
		if domain != "" {
			e.domain = domain
		}
	}
}

// WithLocal sets the origin used outside a workspace.
func WithLocal(local string) Option {
	return func(e *Env) {
		if local != "" {
			e.local = strings.TrimRight(local, "/")
		}
	}
}

// WithLookup replaces os.LookupEnv, mainly for tests.
func WithLookup(fn func(string) (string, bool)) Option {
	return func(e *Env) {
		if fn != nil {
			e.lookup = fn
		}
	}
}

// NewEnv creates an environment-backed resolver.
func NewEnv(opts ...Option) *Env {
	e := &Env{
		variable: DefaultWorkspaceEnv,
		port:     DefaultPort,
		domain:   DefaultDomain,
		local:    DefaultLocal,
		lookup:   os.LookupEnv,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// BaseURL implements Resolver. The variable is read on each call.
func (e *Env) BaseURL() string {
	workspace, _ := e.lookup(e.variable)
	return resolve(workspace, e.port, e.domain, e.local)
}
