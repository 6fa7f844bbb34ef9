// Package web wires configuration and startup for the site web server.
package web

import (
	"context"
	"flag"
	"fmt"
	"log"

	"github.com/cursorworkshop/aegistry/internal/platform/config"
	"github.com/cursorworkshop/aegistry/internal/platform/otel"
	"github.com/cursorworkshop/aegistry/internal/web"
)

const serviceName = "aegistry-web"

// Config holds the web command configuration.
type Config struct {
	HTTPAddr   string
	APIBaseURL string
	DocsURL    string
	SignupURL  string
}

type envConfig struct {
	HTTPAddr   string `env:"AEGISTRY_WEB_HTTP_ADDR" envDefault:"localhost:8080"`
	APIBaseURL string `env:"AEGISTRY_WEB_API_BASE_URL"`
	DocsURL    string `env:"AEGISTRY_WEB_DOCS_URL"`
	SignupURL  string `env:"AEGISTRY_WEB_SIGNUP_URL"`
}

// ParseConfig resolves configuration from the environment, then flags.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var envCfg envConfig
	if err := config.ParseEnv(&envCfg); err != nil {
		return Config{}, err
	}

	cfg := Config{
		HTTPAddr:   envCfg.HTTPAddr,
		APIBaseURL: envCfg.APIBaseURL,
		DocsURL:    envCfg.DocsURL,
		SignupURL:  envCfg.SignupURL,
	}
	fs.StringVar(&cfg.HTTPAddr, "http-addr", cfg.HTTPAddr, "HTTP listen address")
	fs.StringVar(&cfg.APIBaseURL, "api-base-url", cfg.APIBaseURL, "Screening API base URL for the status badge")
	fs.StringVar(&cfg.DocsURL, "docs-url", cfg.DocsURL, "Destination for the View Docs control")
	fs.StringVar(&cfg.SignupURL, "signup-url", cfg.SignupURL, "Destination for the Get Started controls")
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Run starts the site web server.
func Run(ctx context.Context, cfg Config) error {
	shutdownTracing, err := otel.Setup(ctx, serviceName)
	if err != nil {
		return fmt.Errorf("init tracing: %w", err)
	}
	defer func() {
		if err := shutdownTracing(context.Background()); err != nil {
			log.Printf("shutdown tracing: %v", err)
		}
	}()

	server, err := web.NewServer(web.Config{
		HTTPAddr:   cfg.HTTPAddr,
		APIBaseURL: cfg.APIBaseURL,
		DocsURL:    cfg.DocsURL,
		SignupURL:  cfg.SignupURL,
	})
	if err != nil {
		return fmt.Errorf("init web server: %w", err)
	}

	if err := server.ListenAndServe(ctx); err != nil {
		return fmt.Errorf("serve web: %w", err)
	}
	return nil
}
