// Package metrics collects Prometheus request metrics for the web server.
package metrics

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/cursorworkshop/aegistry/internal/web/platform/httpx"
	"github.com/cursorworkshop/aegistry/internal/web/routepath"
)

// Recorder owns the metrics registry and request collectors.
type Recorder struct {
	registry *prometheus.Registry
	requests *prometheus.CounterVec
	latency  *prometheus.HistogramVec
}

// New returns a recorder with request count and latency collectors
// registered against a private registry.
func New() *Recorder {
	registry := prometheus.NewRegistry()
	requests := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "aegistry",
		Subsystem: "web",
		Name:      "http_requests_total",
		Help:      "HTTP requests handled, by method, route group and status.",
	}, []string{"method", "path", "status"})
	latency := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "aegistry",
		Subsystem: "web",
		Name:      "http_request_duration_seconds",
		Help:      "HTTP request latency, by method and route group.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"method", "path"})
	registry.MustRegister(requests, latency)
	return &Recorder{registry: registry, requests: requests, latency: latency}
}

// Middleware records request count and latency for every handled request.
func (r *Recorder) Middleware() httpx.Middleware {
	return func(next http.Handler) http.Handler {
		if next == nil {
			next = http.NotFoundHandler()
		}
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			start := time.Now()
			recorder := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
			next.ServeHTTP(recorder, req)
			path := pathLabel(req.URL.Path)
			r.requests.WithLabelValues(req.Method, path, strconv.Itoa(recorder.status)).Inc()
			r.latency.WithLabelValues(req.Method, path).Observe(time.Since(start).Seconds())
		})
	}
}

// pathLabel maps a request path onto the fixed set of mounted route groups,
// keeping label cardinality bounded under arbitrary probe traffic.
func pathLabel(path string) string {
	switch {
	case path == routepath.Root, path == routepath.Healthz, path == routepath.Metrics:
		return path
	case strings.HasPrefix(path, routepath.StaticPrefix):
		return routepath.StaticPrefix
	case strings.HasPrefix(path, routepath.StatusPrefix):
		return routepath.StatusPrefix
	default:
		return "other"
	}
}

// Handler exposes the registry in Prometheus text format.
func (r *Recorder) Handler() http.Handler {
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{})
}

type statusRecorder struct {
	http.ResponseWriter
	status      int
	headerWrote bool
}

func (r *statusRecorder) WriteHeader(status int) {
	if !r.headerWrote {
		r.headerWrote = true
		r.status = status
	}
	r.ResponseWriter.WriteHeader(status)
}
