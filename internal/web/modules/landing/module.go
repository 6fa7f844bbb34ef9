// Package landing serves the marketing page: hero, feature grid, statistics
// grid, closing call to action, and the scroll progress indicator.
package landing

import (
	"net/http"
	"strings"

	module "github.com/cursorworkshop/aegistry/internal/web/module"
	"github.com/cursorworkshop/aegistry/internal/web/routepath"
	"github.com/cursorworkshop/aegistry/internal/web/templates"
)

// Config carries the destinations for the page's controls. Empty values fall
// back to in-page anchors so the page works with no product config at all.
type Config struct {
	DocsURL   string
	SignupURL string
}

// Module provides the public landing routes.
type Module struct {
	links templates.Links
}

// New returns the landing module with the given control destinations.
func New(cfg Config) Module {
	docs := strings.TrimSpace(cfg.DocsURL)
	if docs == "" {
		docs = routepath.FeaturesAnchor
	}
	signup := strings.TrimSpace(cfg.SignupURL)
	if signup == "" {
		signup = routepath.SignupAnchor
	}
	return Module{links: templates.Links{DocsURL: docs, SignupURL: signup}}
}

// ID returns a stable identifier for diagnostics and startup logs.
func (m Module) ID() string {
	return "landing"
}

// Mount wires landing routes under the root prefix.
func (m Module) Mount() (module.Mount, error) {
	mux := http.NewServeMux()
	registerRoutes(mux, newHandlers(m.links))
	return module.Mount{Prefix: routepath.Root, Handler: mux}, nil
}
