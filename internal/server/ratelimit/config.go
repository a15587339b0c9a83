package ratelimit

import (
	"strings"
	"time"

	"github.com/jonathan/placement-prep/internal/config"
)

// EndpointConfig is a limit applied to one route.
type EndpointConfig struct {
	Path   string // exact path, or a prefix when it ends in "/"
	Method string
	Limit  int
	Window time.Duration
	Burst  int // defaults to Limit when 0
}

// Config holds rate limiting configuration.
type Config struct {
	Enabled         bool
	DefaultLimit    int
	DefaultWindow   time.Duration
	CleanupInterval time.Duration
	Whitelist       map[string]bool
	Blacklist       map[string]bool
	EndpointConfigs []EndpointConfig
}

// FromConfig builds a limiter Config from the application's rate limit section.
func FromConfig(rl config.RateLimitConfig) *Config {
	if !rl.Enabled {
		return &Config{Enabled: false}
	}
	return &Config{
		Enabled:         true,
		DefaultLimit:    rl.DefaultLimit,
		DefaultWindow:   rl.DefaultWindow,
		CleanupInterval: rl.CleanupInterval,
		Whitelist:       toSet(rl.Whitelist),
		Blacklist:       toSet(rl.Blacklist),
		EndpointConfigs: DefaultEndpointConfigs(),
	}
}

// DefaultEndpointConfigs returns the per-route limits. Anything else gets the default.
func DefaultEndpointConfigs() []EndpointConfig {
	return []EndpointConfig{
		// Account creation hashes a password, so it is the expensive write.
		{Path: "/api/users", Method: "POST", Limit: 20, Window: time.Minute, Burst: 10},
		{Path: "/api/users/", Method: "GET", Limit: 300, Window: time.Minute, Burst: 30},
	}
}

func toSet(list []string) map[string]bool {
	result := make(map[string]bool, len(list))
	for _, ip := range list {
		ip = strings.TrimSpace(ip)
		if ip != "" {
			result[ip] = true
		}
	}
	return result
}
