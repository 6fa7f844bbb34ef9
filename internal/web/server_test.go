package web

import (
	"bytes"
	"context"
	"log"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func newTestHandler(t *testing.T) http.Handler {
	t.Helper()
	h, err := NewHandler(Config{Logger: log.New(&bytes.Buffer{}, "", 0)})
	if err != nil {
		t.Fatalf("NewHandler() error = %v", err)
	}
	return h
}

func TestLandingServedAtRoot(t *testing.T) {
	t.Parallel()

	h := newTestHandler(t)
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))

	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusOK)
	}
	if !strings.Contains(rr.Body.String(), `class="hero"`) {
		t.Fatalf("expected hero section, got %q", rr.Body.String())
	}
}

func TestStaticStylesheetServedByWeb(t *testing.T) {
	t.Parallel()

	h := newTestHandler(t)
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/static/site.css", nil))

	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusOK)
	}
	if ct := rr.Header().Get("Content-Type"); !strings.Contains(ct, "text/css") {
		t.Fatalf("content-type = %q, want text/css", ct)
	}
	body := rr.Body.String()
	for _, marker := range []string{
		"scroll-progress",
		"scroll-progress-bar",
		"feature-grid",
		"stats-grid",
		"closing-cta",
	} {
		if !strings.Contains(body, marker) {
			t.Fatalf("site.css missing marker %q", marker)
		}
	}
}

func TestProgressScriptServedByWeb(t *testing.T) {
	t.Parallel()

	h := newTestHandler(t)
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/static/progress.js", nil))

	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusOK)
	}
	if ct := rr.Header().Get("Content-Type"); !strings.Contains(ct, "application/javascript") && !strings.Contains(ct, "text/javascript") {
		t.Fatalf("content-type = %q, want javascript", ct)
	}
	body := rr.Body.String()
	for _, marker := range []string{
		`getElementById("scroll-progress")`,
		"document.documentElement.scrollHeight - window.innerHeight",
		`addEventListener("scroll", render)`,
		`removeEventListener("scroll", render)`,
		"if (distance <= 0)",
	} {
		if !strings.Contains(body, marker) {
			t.Fatalf("progress.js missing marker %q", marker)
		}
	}
}

func TestHealthzServedByWeb(t *testing.T) {
	t.Parallel()

	h := newTestHandler(t)
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusOK)
	}
}

func TestStatusServedByWeb(t *testing.T) {
	t.Parallel()

	h := newTestHandler(t)
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/status/api", nil))

	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusOK)
	}
	if !strings.Contains(rr.Body.String(), `"status":"unknown"`) {
		t.Fatalf("expected unknown status without configured upstream, got %q", rr.Body.String())
	}
}

func TestMetricsServedByWeb(t *testing.T) {
	t.Parallel()

	h := newTestHandler(t)
	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))

	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusOK)
	}
	if !strings.Contains(rr.Body.String(), "aegistry_web_http_requests_total") {
		t.Fatalf("expected request counter in metrics output, got %q", rr.Body.String())
	}
}

func TestRequestLoggingCoversEveryRoute(t *testing.T) {
	t.Parallel()

	var buffer bytes.Buffer
	h, err := NewHandler(Config{Logger: log.New(&buffer, "", 0)})
	if err != nil {
		t.Fatalf("NewHandler() error = %v", err)
	}
	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/healthz", nil))

	logLine := buffer.String()
	for _, marker := range []string{"method=GET", "path=/healthz", "status=200", "request_id=local-"} {
		if !strings.Contains(logLine, marker) {
			t.Fatalf("log line missing marker %q: %q", marker, logLine)
		}
	}
}

func TestNewServerRequiresHTTPAddr(t *testing.T) {
	t.Parallel()

	if _, err := NewServer(Config{HTTPAddr: "  "}); err == nil {
		t.Fatal("expected error for empty http address")
	}
}

func TestListenAndServeStopsOnContextCancel(t *testing.T) {
	t.Parallel()

	server, err := NewServer(Config{HTTPAddr: "127.0.0.1:0", Logger: log.New(&bytes.Buffer{}, "", 0)})
	if err != nil {
		t.Fatalf("NewServer() error = %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- server.ListenAndServe(ctx)
	}()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("ListenAndServe() = %v, want nil after cancel", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("server did not stop after context cancellation")
	}
}
