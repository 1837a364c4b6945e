// Package config loads service configuration from the environment.
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type Config struct {
	AppEnv      string `env:"APP_ENV" envDefault:"local"`
	PostgresDSN string `env:"POSTGRES_DSN,required"`
	HTTPPort    int    `env:"HTTP_PORT" envDefault:"8080"`
	HealthPort  int    `env:"HEALTH_PORT" envDefault:"8081"`
	WebBaseURL  string `env:"WEB_BASE_URL" envDefault:"https://loanwatch.app"`
	Brand       string `env:"BRAND" envDefault:"Loan Watch"`

	// Chart data backend
	StatsAPIURL   string        `env:"STATS_API_URL" envDefault:"http://localhost:9000"`
	StatsAPIRPS   float64       `env:"STATS_API_RPS" envDefault:"5"`
	RedisAddr     string        `env:"REDIS_ADDR"`
	ChartCacheTTL time.Duration `env:"CHART_CACHE_TTL" envDefault:"10m"`

	// Link resolution
	LinkFetchRPS     float64       `env:"LINK_FETCH_RPS" envDefault:"2"`
	LinkFetchTimeout time.Duration `env:"LINK_FETCH_TIMEOUT" envDefault:"30s"`

	// Feed ingestion
	FeedURLs         []string      `env:"FEED_URLS" envSeparator:","`
	FeedPollInterval time.Duration `env:"FEED_POLL_INTERVAL" envDefault:"30m"`

	// Summary drafting
	SummaryDraftingEnabled bool   `env:"SUMMARY_DRAFTING_ENABLED" envDefault:"false"`
	LLMAPIKey              string `env:"LLM_API_KEY"`
	LLMModel               string `env:"LLM_MODEL" envDefault:"gpt-4o-mini"`
	LLMRateLimitRPS        int    `env:"LLM_RATE_LIMIT_RPS" envDefault:"1"`

	// Publishing
	BotToken        string `env:"BOT_TOKEN"`
	PublishChatID   int64  `env:"PUBLISH_CHAT_ID"`
	PublishDisabled bool   `env:"PUBLISH_DISABLED" envDefault:"false"`

	// Database pool
	DBMaxConnections    int32         `env:"DB_MAX_CONNECTIONS" envDefault:"10"`
	DBMinConnections    int32         `env:"DB_MIN_CONNECTIONS" envDefault:"2"`
	DBMaxConnIdleTime   time.Duration `env:"DB_MAX_CONN_IDLE_TIME" envDefault:"30m"`
	DBMaxConnLifetime   time.Duration `env:"DB_MAX_CONN_LIFETIME" envDefault:"1h"`
	DBHealthCheckPeriod time.Duration `env:"DB_HEALTH_CHECK_PERIOD" envDefault:"1m"`
}

// Load reads .env (when present) and parses the environment.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	return cfg, nil
}
