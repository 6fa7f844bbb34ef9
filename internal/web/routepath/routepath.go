// Package routepath centralizes route constants shared across web modules.
package routepath

const (
	// Root is the landing page route.
	Root = "/"
	// Healthz reports site process liveness.
	Healthz = "/healthz"
	// Metrics exposes Prometheus metrics.
	Metrics = "/metrics"
	// StaticPrefix serves embedded assets.
	StaticPrefix = "/static/"
	// StatusPrefix mounts upstream availability routes.
	StatusPrefix = "/status/"
	// StatusAPI reports screening API availability.
	StatusAPI = "/status/api"

	// FeaturesAnchor is the in-page fallback destination for docs controls.
	FeaturesAnchor = "#features"
	// SignupAnchor is the in-page fallback destination for signup controls.
	SignupAnchor = "#get-started"
)
