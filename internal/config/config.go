package config

import (
	"fmt"

	"github.com/spf13/viper"

	authservice "github.com/jwalitptl/clinician-api/internal/service/auth"
	scheduleservice "github.com/jwalitptl/clinician-api/internal/service/schedule"
	"github.com/jwalitptl/clinician-api/internal/store"
)

type Config struct {
	Server    ServerConfig           `mapstructure:"server"`
	Store     StoreConfig            `mapstructure:"store"`
	Auth      AuthConfig             `mapstructure:"auth"`
	Data      scheduleservice.Config `mapstructure:"data"`
	RateLimit RateLimitConfig        `mapstructure:"rate_limit"`
	Analytics AnalyticsConfig        `mapstructure:"analytics"`
}

type ServerConfig struct {
	Port           int `mapstructure:"port"`
	TimeoutSeconds int `mapstructure:"timeout_seconds"`
}

// StoreConfig selects the session store backend: "file" (default), "redis",
// or "memory" for ephemeral runs.
type StoreConfig struct {
	Backend string            `mapstructure:"backend"`
	Path    string            `mapstructure:"path"`
	Redis   store.RedisConfig `mapstructure:"redis"`
}

type AuthConfig struct {
	authservice.Config `mapstructure:",squash"`
	TokenSecret        string `mapstructure:"token_secret"`
	TokenExpiryHours   int    `mapstructure:"token_expiry_hours"`
}

type RateLimitConfig struct {
	Enabled bool    `mapstructure:"enabled"`
	RPS     float64 `mapstructure:"rps"`
	Burst   int     `mapstructure:"burst"`
}

type AnalyticsConfig struct {
	Enabled bool `mapstructure:"enabled"`
}

func LoadConfig() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")

	viper.SetDefault("server.port", 8080)
	viper.SetDefault("server.timeout_seconds", 30)
	viper.SetDefault("store.backend", "file")
	viper.SetDefault("store.path", "session.json")
	viper.SetDefault("auth.email", "dr.smith@hospital.com")
	viper.SetDefault("auth.password", "password123")
	viper.SetDefault("auth.latency", "1s")
	viper.SetDefault("auth.token_secret", "demo-token-secret")
	viper.SetDefault("auth.token_expiry_hours", 24)
	viper.SetDefault("data.cache_ttl", "24h")
	viper.SetDefault("data.latency", "500ms")
	viper.SetDefault("rate_limit.enabled", true)
	viper.SetDefault("rate_limit.rps", 50)
	viper.SetDefault("rate_limit.burst", 100)
	viper.SetDefault("analytics.enabled", true)

	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		// The defaults describe a complete demo setup; only a malformed
		// file is fatal, a missing one is not.
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &config, nil
}
