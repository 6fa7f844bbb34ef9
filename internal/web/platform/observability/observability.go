// Package observability provides request logging and tracing middleware for
// the web server.
package observability

import (
	"log"
	"net/http"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/cursorworkshop/aegistry/internal/web/platform/httpx"
)

// statusRecorder captures the status code and byte count of a response.
type statusRecorder struct {
	http.ResponseWriter
	status int
	bytes  int
}

func (r *statusRecorder) WriteHeader(status int) {
	if r.status == 0 {
		r.status = status
	}
	r.ResponseWriter.WriteHeader(status)
}

func (r *statusRecorder) Write(body []byte) (int, error) {
	if r.status == 0 {
		r.status = http.StatusOK
	}
	n, err := r.ResponseWriter.Write(body)
	r.bytes += n
	return n, err
}

// RequestLogger logs one line per request with method, path, status, size,
// latency and correlation id.
func RequestLogger(logger *log.Logger) httpx.Middleware {
	return func(next http.Handler) http.Handler {
		if next == nil {
			next = http.NotFoundHandler()
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			recorder := &statusRecorder{ResponseWriter: w}
			next.ServeHTTP(recorder, r)
			if recorder.status == 0 {
				recorder.status = http.StatusOK
			}
			logger.Printf("method=%s path=%s status=%d bytes=%d latency=%s request_id=%s",
				r.Method, r.URL.Path, recorder.status, recorder.bytes, time.Since(start), httpx.RequestID(r))
		})
	}
}

// TraceRequests opens a span per request using the given tracer. With no
// global provider registered the tracer is a no-op, so the middleware is safe
// to install unconditionally.
func TraceRequests(tracer trace.Tracer) httpx.Middleware {
	return func(next http.Handler) http.Handler {
		if next == nil {
			next = http.NotFoundHandler()
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, span := tracer.Start(r.Context(), r.Method+" "+r.URL.Path,
				trace.WithSpanKind(trace.SpanKindServer),
				trace.WithAttributes(
					attribute.String("http.request.method", r.Method),
					attribute.String("url.path", r.URL.Path),
				),
			)
			defer span.End()
			recorder := &statusRecorder{ResponseWriter: w}
			next.ServeHTTP(recorder, r.WithContext(ctx))
			if recorder.status == 0 {
				recorder.status = http.StatusOK
			}
			span.SetAttributes(attribute.Int("http.response.status_code", recorder.status))
		})
	}
}
