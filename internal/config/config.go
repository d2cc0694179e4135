// Package config provides Viper-based configuration loading for the vagabond-api server.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"

	redisclient "github.com/KirkDiggler/vagabond-api/internal/redis"
)

// EnvPrefix is the prefix for environment variable overrides, e.g.
// VAGABOND_REDIS_ENDPOINT.
const EnvPrefix = "VAGABOND"

// ServerConfig holds gRPC listener settings.
type ServerConfig struct {
	Port            int           `mapstructure:"port"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

// Addr returns the ":port" listen address.
func (s ServerConfig) Addr() string {
	return fmt.Sprintf(":%d", s.Port)
}

// RedisConfig holds the document store connection settings.
type RedisConfig struct {
	Endpoint        string        `mapstructure:"endpoint"`
	PoolSize        int           `mapstructure:"pool_size"`
	MinIdleConns    int           `mapstructure:"min_idle_conns"`
	MaxRetries      int           `mapstructure:"max_retries"`
	ConnMaxIdleTime time.Duration `mapstructure:"conn_max_idle_time"`
	UseTLS          bool          `mapstructure:"use_tls"`
}

// Options converts the settings into redis client options.
func (r RedisConfig) Options() *redisclient.Options {
	return &redisclient.Options{
		PoolSize:        r.PoolSize,
		MinIdleConns:    r.MinIdleConns,
		ConnMaxIdleTime: r.ConnMaxIdleTime,
		MaxRetries:      r.MaxRetries,
		UseTLS:          r.UseTLS,
	}
}

// LoggingConfig holds structured logging settings.
type LoggingConfig struct {
	// Level is the minimum log level: "debug", "info", "warn", "error".
	Level string `mapstructure:"level"`
	// Format is the log output format: "json" or "console".
	Format string `mapstructure:"format"`
}

// RulesConfig selects the ruleset tables.
type RulesConfig struct {
	// Path to a ruleset YAML file. Empty means the embedded default.
	Path string `mapstructure:"path"`
}

// ActivityConfig bounds the activity log.
type ActivityConfig struct {
	// MaxEntries caps each actor's log and the global log.
	MaxEntries int64 `mapstructure:"max_entries"`
}

// Config is the top-level application configuration.
type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Redis    RedisConfig    `mapstructure:"redis"`
	Logging  LoggingConfig  `mapstructure:"logging"`
	Rules    RulesConfig    `mapstructure:"rules"`
	Activity ActivityConfig `mapstructure:"activity"`
}

// Validate checks all configuration invariants and reports every violation.
func (c Config) Validate() error {
	var errs []string

	if c.Server.Port < 1 || c.Server.Port > 65535 {
		errs = append(errs, fmt.Sprintf("server.port must be 1-65535, got %d", c.Server.Port))
	}
	if c.Server.ShutdownTimeout < 0 {
		errs = append(errs, "server.shutdown_timeout must not be negative")
	}
	if c.Redis.Endpoint == "" {
		errs = append(errs, "redis.endpoint must not be empty")
	}
	if c.Redis.PoolSize < 0 {
		errs = append(errs, fmt.Sprintf("redis.pool_size must be >= 0, got %d", c.Redis.PoolSize))
	}
	if c.Redis.MinIdleConns < 0 {
		errs = append(errs, fmt.Sprintf("redis.min_idle_conns must be >= 0, got %d", c.Redis.MinIdleConns))
	}

	if c.Activity.MaxEntries < 1 {
		errs = append(errs, fmt.Sprintf("activity.max_entries must be >= 1, got %d", c.Activity.MaxEntries))
	}

	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[c.Logging.Level] {
		errs = append(errs, fmt.Sprintf("logging.level must be one of [debug, info, warn, error], got %q", c.Logging.Level))
	}
	validFormats := map[string]bool{"json": true, "console": true}
	if !validFormats[c.Logging.Format] {
		errs = append(errs, fmt.Sprintf("logging.format must be one of [json, console], got %q", c.Logging.Format))
	}

	if len(errs) > 0 {
		return fmt.Errorf("configuration validation failed: %s", strings.Join(errs, "; "))
	}
	return nil
}

// Load reads configuration from an optional YAML file, applies VAGABOND_*
// environment overrides and defaults, and validates the result.
func Load(path string) (Config, error) {
	v := viper.New()

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("reading config file: %w", err)
		}
	}

	return LoadFromViper(v)
}

// LoadFromViper builds a Config from an already-configured Viper instance.
func LoadFromViper(v *viper.Viper) (Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshalling config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", 50051)
	v.SetDefault("server.shutdown_timeout", "30s")

	v.SetDefault("redis.endpoint", "localhost:6379")
	v.SetDefault("redis.pool_size", 10)
	v.SetDefault("redis.min_idle_conns", 2)
	v.SetDefault("redis.max_retries", 3)
	v.SetDefault("redis.conn_max_idle_time", "5m")
	v.SetDefault("redis.use_tls", false)

	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "json")

	v.SetDefault("rules.path", "")

	v.SetDefault("activity.max_entries", 500)
}
