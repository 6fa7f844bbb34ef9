// Package web hosts the marketing site HTTP server.
package web

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"go.opentelemetry.io/otel"

	"github.com/cursorworkshop/aegistry/internal/web/modules"
	"github.com/cursorworkshop/aegistry/internal/web/platform/httpx"
	"github.com/cursorworkshop/aegistry/internal/web/platform/metrics"
	"github.com/cursorworkshop/aegistry/internal/web/platform/observability"
	"github.com/cursorworkshop/aegistry/internal/web/routepath"
	"github.com/cursorworkshop/aegistry/internal/web/static"
)

const tracerName = "aegistry.web"

// Config defines the inputs for the web server.
type Config struct {
	HTTPAddr   string
	APIBaseURL string
	DocsURL    string
	SignupURL  string
	Logger     *log.Logger
}

// Server hosts the site HTTP server.
type Server struct {
	httpAddr   string
	httpServer *http.Server
	logger     *log.Logger
}

// NewHandler builds the composed site handler: feature modules, static
// assets, metrics, and the shared middleware stack.
func NewHandler(config Config) (http.Handler, error) {
	logger := config.Logger
	if logger == nil {
		logger = log.Default()
	}

	mux := http.NewServeMux()
	mounted := map[string]string{}
	for _, m := range modules.Default(modules.Dependencies{
		DocsURL:    config.DocsURL,
		SignupURL:  config.SignupURL,
		APIBaseURL: config.APIBaseURL,
	}) {
		mount, err := m.Mount()
		if err != nil {
			return nil, fmt.Errorf("mount module %s: %w", m.ID(), err)
		}
		if other, dup := mounted[mount.Prefix]; dup {
			return nil, fmt.Errorf("modules %s and %s share prefix %q", other, m.ID(), mount.Prefix)
		}
		mounted[mount.Prefix] = m.ID()
		mux.Handle(mount.Prefix, mount.Handler)
	}

	mux.Handle(routepath.StaticPrefix, http.StripPrefix(routepath.StaticPrefix,
		httpx.WithStaticMime(http.FileServerFS(static.FS))))

	recorder := metrics.New()
	mux.Handle(routepath.Metrics, recorder.Handler())

	return httpx.Chain(mux,
		httpx.EnsureRequestID(),
		observability.RequestLogger(logger),
		recorder.Middleware(),
		observability.TraceRequests(otel.Tracer(tracerName)),
	), nil
}

// NewServer builds a configured web server.
func NewServer(config Config) (*Server, error) {
	httpAddr := strings.TrimSpace(config.HTTPAddr)
	if httpAddr == "" {
		return nil, errors.New("http address is required")
	}
	logger := config.Logger
	if logger == nil {
		logger = log.Default()
	}

	handler, err := NewHandler(config)
	if err != nil {
		return nil, err
	}
	httpServer := &http.Server{
		Addr:              httpAddr,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
	}

	return &Server{
		httpAddr:   httpAddr,
		httpServer: httpServer,
		logger:     logger,
	}, nil
}

// ListenAndServe runs the HTTP server until the context ends.
func (s *Server) ListenAndServe(ctx context.Context) error {
	if s == nil {
		return errors.New("web server is nil")
	}
	if ctx == nil {
		ctx = context.Background()
	}

	serveErr := make(chan error, 1)
	s.logger.Printf("web listening on %s", s.httpAddr)
	go func() {
		serveErr <- s.httpServer.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		err := s.httpServer.Shutdown(shutdownCtx)
		cancel()
		if err != nil {
			return fmt.Errorf("shutdown http server: %w", err)
		}
		return nil
	case err := <-serveErr:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serve http: %w", err)
	}
}
