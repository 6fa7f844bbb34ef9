package web

import (
	"flag"
	"testing"
)

func TestParseConfigDefaults(t *testing.T) {
	fs := flag.NewFlagSet("web", flag.ContinueOnError)
	cfg, err := ParseConfig(fs, nil)
	if err != nil {
		t.Fatalf("ParseConfig() error = %v", err)
	}
	if cfg.HTTPAddr != "localhost:8080" {
		t.Fatalf("HTTPAddr = %q, want %q", cfg.HTTPAddr, "localhost:8080")
	}
	if cfg.APIBaseURL != "" {
		t.Fatalf("APIBaseURL = %q, want empty", cfg.APIBaseURL)
	}
}

func TestParseConfigOverrideHTTPAddr(t *testing.T) {
	fs := flag.NewFlagSet("web", flag.ContinueOnError)
	cfg, err := ParseConfig(fs, []string{"-http-addr", "127.0.0.1:9002"})
	if err != nil {
		t.Fatalf("ParseConfig() error = %v", err)
	}
	if cfg.HTTPAddr != "127.0.0.1:9002" {
		t.Fatalf("HTTPAddr = %q, want %q", cfg.HTTPAddr, "127.0.0.1:9002")
	}
}

func TestParseConfigReadsEnvironment(t *testing.T) {
	t.Setenv("AEGISTRY_WEB_API_BASE_URL", "http://api.internal:8081")
	t.Setenv("AEGISTRY_WEB_DOCS_URL", "https://docs.example.com")

	fs := flag.NewFlagSet("web", flag.ContinueOnError)
	cfg, err := ParseConfig(fs, nil)
	if err != nil {
		t.Fatalf("ParseConfig() error = %v", err)
	}
	if cfg.APIBaseURL != "http://api.internal:8081" {
		t.Fatalf("APIBaseURL = %q, want env value", cfg.APIBaseURL)
	}
	if cfg.DocsURL != "https://docs.example.com" {
		t.Fatalf("DocsURL = %q, want env value", cfg.DocsURL)
	}
}

func TestParseConfigFlagsOverrideEnvironment(t *testing.T) {
	t.Setenv("AEGISTRY_WEB_HTTP_ADDR", "localhost:9999")

	fs := flag.NewFlagSet("web", flag.ContinueOnError)
	cfg, err := ParseConfig(fs, []string{"-http-addr", "127.0.0.1:9003"})
	if err != nil {
		t.Fatalf("ParseConfig() error = %v", err)
	}
	if cfg.HTTPAddr != "127.0.0.1:9003" {
		t.Fatalf("HTTPAddr = %q, want flag value", cfg.HTTPAddr)
	}
}
