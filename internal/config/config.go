// Package config provides configuration loading and validation for the CLI and server.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment override, e.g. PLACEMENT_SERVER_PORT.
const EnvPrefix = "PLACEMENT"

// History backends.
const (
	HistoryMemory = "memory"
	HistoryFile   = "file"
	HistoryRedis  = "redis"
)

// Config is the full application configuration.
type Config struct {
	App       AppConfig       `mapstructure:"app"`
	Server    ServerConfig    `mapstructure:"server"`
	Database  DatabaseConfig  `mapstructure:"database"`
	Redis     RedisConfig     `mapstructure:"redis"`
	History   HistoryConfig   `mapstructure:"history"`
	Analysis  AnalysisConfig  `mapstructure:"analysis"`
	Auth      AuthConfig      `mapstructure:"auth"`
	RateLimit RateLimitConfig `mapstructure:"rate_limit"`
	Logging   LoggingConfig   `mapstructure:"logging"`
}

type AppConfig struct {
	Name        string `mapstructure:"name"`
	Environment string `mapstructure:"environment"`
}

type ServerConfig struct {
	Port            int           `mapstructure:"port"`
	StaticDir       string        `mapstructure:"static_dir"`
	ReadTimeout     time.Duration `mapstructure:"read_timeout"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout"`
	IdleTimeout     time.Duration `mapstructure:"idle_timeout"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

// DatabaseConfig configures the optional relational user store. An empty URL selects
// the in-memory store.
type DatabaseConfig struct {
	URL             string        `mapstructure:"url"`
	MaxOpenConns    int           `mapstructure:"max_open_conns"`
	MaxIdleConns    int           `mapstructure:"max_idle_conns"`
	ConnMaxLifetime time.Duration `mapstructure:"conn_max_lifetime"`
	ConnectTimeout  time.Duration `mapstructure:"connect_timeout"`
}

type RedisConfig struct {
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// HistoryConfig selects where analysis history lives.
type HistoryConfig struct {
	Backend string `mapstructure:"backend"`
	Path    string `mapstructure:"path"`
	Key     string `mapstructure:"key"`
}

type AnalysisConfig struct {
	// Delay is the pause before an analysis runs.
	Delay time.Duration `mapstructure:"delay"`
}

type AuthConfig struct {
	BcryptCost int    `mapstructure:"bcrypt_cost"`
	Pepper     string `mapstructure:"pepper"`
}

type RateLimitConfig struct {
	Enabled         bool          `mapstructure:"enabled"`
	DefaultLimit    int           `mapstructure:"default_limit"`
	DefaultWindow   time.Duration `mapstructure:"default_window"`
	CleanupInterval time.Duration `mapstructure:"cleanup_interval"`
	Whitelist       []string      `mapstructure:"whitelist"`
	Blacklist       []string      `mapstructure:"blacklist"`
}

type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// Load reads configuration from path (or the default search locations when path is
// empty), applies environment overrides and defaults, then validates.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()
	if err := v.BindEnv("database.url", EnvPrefix+"_DATABASE_URL", "DATABASE_URL"); err != nil {
		return nil, fmt.Errorf("failed to bind database url: %w", err)
	}

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./configs")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("error reading config: %w", err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	applyDefaults(&cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return &cfg, nil
}

// Default returns the configuration used when nothing is set.
func Default() *Config {
	cfg, err := Load("")
	if err == nil {
		return cfg
	}
	v := viper.New()
	setDefaults(v)
	cfg = &Config{}
	_ = v.Unmarshal(cfg)
	applyDefaults(cfg)
	return cfg
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("app.name", "placement-prep")
	v.SetDefault("app.environment", "development")

	v.SetDefault("server.port", 8080)
	v.SetDefault("server.static_dir", filepath.Join("dist", "public"))
	v.SetDefault("server.read_timeout", 30*time.Second)
	v.SetDefault("server.write_timeout", 30*time.Second)
	v.SetDefault("server.idle_timeout", 60*time.Second)
	v.SetDefault("server.shutdown_timeout", 30*time.Second)

	v.SetDefault("database.url", "")
	v.SetDefault("database.max_open_conns", 25)
	v.SetDefault("database.max_idle_conns", 5)
	v.SetDefault("database.conn_max_lifetime", 5*time.Minute)
	v.SetDefault("database.connect_timeout", 5*time.Second)

	v.SetDefault("redis.addr", "localhost:6379")
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)

	v.SetDefault("history.backend", HistoryFile)
	v.SetDefault("history.path", "")
	v.SetDefault("history.key", "analysisHistory")

	v.SetDefault("analysis.delay", 1500*time.Millisecond)

	v.SetDefault("auth.bcrypt_cost", 12)
	v.SetDefault("auth.pepper", "")

	v.SetDefault("rate_limit.enabled", true)
	v.SetDefault("rate_limit.default_limit", 1000)
	v.SetDefault("rate_limit.default_window", time.Minute)
	v.SetDefault("rate_limit.cleanup_interval", 5*time.Minute)
	v.SetDefault("rate_limit.whitelist", []string{})
	v.SetDefault("rate_limit.blacklist", []string{})

	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")
}

// applyDefaults fills values that depend on the environment.
func applyDefaults(cfg *Config) {
	if cfg.History.Path == "" {
		cfg.History.Path = DefaultHistoryPath()
	}
	if cfg.History.Key == "" {
		cfg.History.Key = "analysisHistory"
	}
	cfg.History.Backend = strings.ToLower(strings.TrimSpace(cfg.History.Backend))
	cfg.Logging.Level = strings.ToLower(cfg.Logging.Level)
}

// DefaultHistoryPath returns $HOME/.placement-prep/analysisHistory.json, or a path in
// the working directory when no home directory is known.
func DefaultHistoryPath() string {
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return filepath.Join(".placement-prep", "analysisHistory.json")
	}
	return filepath.Join(home, ".placement-prep", "analysisHistory.json")
}

// Validate checks that the configuration has usable values.
func (c *Config) Validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("config error: 'server.port' out of range: %d", c.Server.Port)
	}

	switch c.History.Backend {
	case HistoryMemory, HistoryFile:
	case HistoryRedis:
		if c.Redis.Addr == "" {
			return fmt.Errorf("config error: 'redis.addr' is required for the redis history backend")
		}
	default:
		return fmt.Errorf("config error: unknown history backend %q", c.History.Backend)
	}

	if c.Analysis.Delay < 0 {
		return fmt.Errorf("config error: 'analysis.delay' must be non-negative")
	}

	if err := checkBcryptCost(c.Auth.BcryptCost); err != nil {
		return fmt.Errorf("config error: %w", err)
	}

	if c.RateLimit.Enabled && c.RateLimit.DefaultLimit < 0 {
		return fmt.Errorf("config error: 'rate_limit.default_limit' must be non-negative")
	}

	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("config error: unknown log level %q", c.Logging.Level)
	}

	return nil
}
