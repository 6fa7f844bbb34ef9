package apistatus

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"time"
)

// Status describes the advertised screening API's availability as seen from
// the site.
type Status string

const (
	// StatusOperational means the upstream health check returned ok.
	StatusOperational Status = "operational"
	// StatusDegraded means the upstream answered badly or not at all.
	StatusDegraded Status = "degraded"
	// StatusUnknown means no upstream is configured, so nothing was checked.
	StatusUnknown Status = "unknown"
)

// Gateway reports upstream availability.
type Gateway interface {
	CheckHealth(ctx context.Context) Status
}

const defaultCheckTimeout = 3 * time.Second

// HTTPGateway checks the upstream /health endpoint over HTTP. The upstream
// contract is a black box: HTTP 200 with a JSON body carrying "status":"ok"
// counts as operational; any non-200, malformed body, or transport failure
// counts as degraded.
type HTTPGateway struct {
	baseURL string
	client  *http.Client
}

// NewHTTPGateway returns a gateway against the given base URL. A nil client
// gets a short default timeout so a wedged upstream cannot stall page loads.
func NewHTTPGateway(baseURL string, client *http.Client) *HTTPGateway {
	if client == nil {
		client = &http.Client{Timeout: defaultCheckTimeout}
	}
	return &HTTPGateway{baseURL: strings.TrimRight(strings.TrimSpace(baseURL), "/"), client: client}
}

// CheckHealth performs one upstream health probe.
func (g *HTTPGateway) CheckHealth(ctx context.Context) Status {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, g.baseURL+"/health", nil)
	if err != nil {
		return StatusDegraded
	}
	res, err := g.client.Do(req)
	if err != nil {
		return StatusDegraded
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		return StatusDegraded
	}
	var payload struct {
		Status string `json:"status"`
	}
	if err := json.NewDecoder(res.Body).Decode(&payload); err != nil {
		return StatusDegraded
	}
	if payload.Status != "ok" {
		return StatusDegraded
	}
	return StatusOperational
}

// unconfiguredGateway reports unknown without dialing anything.
type unconfiguredGateway struct{}

func (unconfiguredGateway) CheckHealth(context.Context) Status {
	return StatusUnknown
}
