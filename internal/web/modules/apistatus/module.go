// Package apistatus surfaces the advertised screening API's availability so
// the marketing page can show a live badge instead of a static claim.
package apistatus

import (
	"net/http"
	"strings"
	"time"

	module "github.com/cursorworkshop/aegistry/internal/web/module"
	"github.com/cursorworkshop/aegistry/internal/web/platform/httpx"
	"github.com/cursorworkshop/aegistry/internal/web/routepath"
)

// Module provides the upstream availability route.
type Module struct {
	gateway Gateway
}

// New returns a status module against the given screening API base URL.
// An empty base URL yields a module that reports unknown without dialing.
func New(apiBaseURL string) Module {
	if strings.TrimSpace(apiBaseURL) == "" {
		return NewWithGateway(unconfiguredGateway{})
	}
	return NewWithGateway(NewHTTPGateway(apiBaseURL, nil))
}

// NewWithGateway returns a status module with an explicit gateway.
func NewWithGateway(gateway Gateway) Module {
	return Module{gateway: gateway}
}

// ID returns a stable identifier for diagnostics and startup logs.
func (m Module) ID() string {
	return "apistatus"
}

// Mount wires status routes under the status prefix.
func (m Module) Mount() (module.Mount, error) {
	mux := http.NewServeMux()
	h := handlers{gateway: m.gateway, now: time.Now}
	mux.Handle(routepath.StatusAPI, httpx.Chain(http.HandlerFunc(h.handleAPIStatus), httpx.RequireMethod(http.MethodGet)))
	return module.Mount{Prefix: routepath.StatusPrefix, Handler: mux}, nil
}

type handlers struct {
	gateway Gateway
	now     func() time.Time
}

func (h handlers) handleAPIStatus(w http.ResponseWriter, r *http.Request) {
	status := h.gateway.CheckHealth(r.Context())
	httpx.WriteJSON(w, http.StatusOK, map[string]any{
		"status":     string(status),
		"checked_at": h.now().UTC().Format(time.RFC3339),
	})
}
