package config_test

import (
	"testing"
	"time"

	"github.com/iho/cashfee/internal/infrastructure/config"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("unexpected error loading config: %v", err)
	}

	if cfg.RuleAPIBaseURL == "" {
		t.Fatalf("expected default rule API base URL to be set")
	}

	if cfg.HTTPPort != "8080" {
		t.Fatalf("expected default HTTP port 8080, got %s", cfg.HTTPPort)
	}

	if cfg.CacheEnabled {
		t.Fatalf("expected cache to be disabled by default")
	}

	if cfg.RuleCacheTTL != time.Hour {
		t.Fatalf("expected default rule cache TTL 1h, got %s", cfg.RuleCacheTTL)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("RULE_API_BASE_URL", "https://rules.example.com/api")
	t.Setenv("RULE_FETCH_TIMEOUT", "3s")
	t.Setenv("REDIS_URL", "redis://example")
	t.Setenv("CACHE_ENABLED", "true")
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("unexpected error loading config: %v", err)
	}

	if cfg.RuleAPIBaseURL != "https://rules.example.com/api" {
		t.Fatalf("expected custom rule API base URL, got %s", cfg.RuleAPIBaseURL)
	}

	if cfg.RuleFetchTimeout != 3*time.Second {
		t.Fatalf("expected rule fetch timeout override, got %s", cfg.RuleFetchTimeout)
	}

	if cfg.RedisURL != "redis://example" {
		t.Fatalf("expected custom redis URL, got %s", cfg.RedisURL)
	}

	if !cfg.CacheEnabled {
		t.Fatalf("expected cache to be enabled")
	}

	if cfg.HTTPPort != "9090" {
		t.Fatalf("expected HTTP port override, got %s", cfg.HTTPPort)
	}

	if cfg.LogLevel != "debug" {
		t.Fatalf("expected log level override, got %s", cfg.LogLevel)
	}
}
