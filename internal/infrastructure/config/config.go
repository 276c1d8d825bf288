package config

import (
	"time"

	"github.com/caarlos0/env/v10"
)

// Config holds all application configuration.
type Config struct {
	// Rules API
	RuleAPIBaseURL   string        `env:"RULE_API_BASE_URL" envDefault:"http://localhost:8081/api"`
	RuleFetchTimeout time.Duration `env:"RULE_FETCH_TIMEOUT" envDefault:"10s"`

	// Rule cache (optional - set CACHE_ENABLED=true to use Redis)
	CacheEnabled bool          `env:"CACHE_ENABLED"  envDefault:"false"`
	RedisURL     string        `env:"REDIS_URL"      envDefault:"redis://localhost:6379"`
	RuleCacheTTL time.Duration `env:"RULE_CACHE_TTL" envDefault:"1h"`

	// HTTP Server
	HTTPPort            string        `env:"HTTP_PORT"             envDefault:"8080"`
	HTTPReadTimeout     time.Duration `env:"HTTP_READ_TIMEOUT"     envDefault:"30s"`
	HTTPWriteTimeout    time.Duration `env:"HTTP_WRITE_TIMEOUT"    envDefault:"30s"`
	HTTPShutdownTimeout time.Duration `env:"HTTP_SHUTDOWN_TIMEOUT" envDefault:"10s"`

	// Logging
	LogLevel  string `env:"LOG_LEVEL"  envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"json"`
}

// Load loads configuration from environment variables.
func Load() (*Config, error) {
	cfg := &Config{}
	err := env.Parse(cfg)
	if err != nil {
		return nil, err
	}

	return cfg, nil
}
