package ratelimit

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// EndpointConfig is the limit tier for one route. A Path ending in "/" covers
// every path below it.
type EndpointConfig struct {
	Path   string
	Method string
	Limit  int
	Window time.Duration
	Burst  int // zero means Limit
}

// LoadConfig reads RATE_LIMIT_* variables. Unset or malformed values keep
// their defaults.
func LoadConfig() *Config {
	if !envBool("RATE_LIMIT_ENABLED", true) {
		return &Config{Enabled: false}
	}

	roadmapTier := EndpointConfig{
		Limit:  envInt("RATE_LIMIT_ROADMAP_PER_HOUR", 20),
		Window: time.Hour,
		Burst:  3,
	}

	return &Config{
		Enabled:         true,
		DefaultLimit:    envInt("RATE_LIMIT_DEFAULT_LIMIT", 1000),
		DefaultWindow:   envDuration("RATE_LIMIT_DEFAULT_WINDOW", time.Minute),
		CleanupInterval: envDuration("RATE_LIMIT_CLEANUP_INTERVAL", 5*time.Minute),
		Whitelist:       addressSet(os.Getenv("RATE_LIMIT_WHITELIST")),
		Blacklist:       addressSet(os.Getenv("RATE_LIMIT_BLACKLIST")),
		EndpointConfigs: endpointConfigs(roadmapTier),
	}
}

// DefaultEndpointConfigs returns the built-in tiers:
//   - roadmap generation (plain and streamed) queries the video and search
//     APIs for every skill, so it gets the tightest hourly budget
//   - resume parsing, skill level writes and ranking share per-minute budgets
//   - stored document lookups under /users/ are cheap reads
func DefaultEndpointConfigs() []EndpointConfig {
	return endpointConfigs(EndpointConfig{Limit: 20, Window: time.Hour, Burst: 3})
}

func endpointConfigs(roadmap EndpointConfig) []EndpointConfig {
	tier := func(path, method string, base EndpointConfig) EndpointConfig {
		base.Path, base.Method = path, method
		return base
	}
	writes := EndpointConfig{Limit: 100, Window: time.Minute, Burst: 10}

	return []EndpointConfig{
		tier("/generate-roadmap", "POST", roadmap),
		tier("/generate-roadmap/stream", "POST", roadmap),
		tier("/parse-resume", "POST", EndpointConfig{Limit: 60, Window: time.Minute, Burst: 10}),
		tier("/update-skill-levels", "POST", writes),
		tier("/rank-resources", "POST", writes),
		tier("/users/", "GET", EndpointConfig{Limit: 300, Window: time.Minute, Burst: 30}),
	}
}

func envInt(key string, fallback int) int {
	if n, err := strconv.Atoi(os.Getenv(key)); err == nil {
		return n
	}
	return fallback
}

func envBool(key string, fallback bool) bool {
	if b, err := strconv.ParseBool(os.Getenv(key)); err == nil {
		return b
	}
	return fallback
}

func envDuration(key string, fallback time.Duration) time.Duration {
	if d, err := time.ParseDuration(os.Getenv(key)); err == nil {
		return d
	}
	return fallback
}

// addressSet turns "a, b,,c" into {a, b, c}.
func addressSet(list string) map[string]bool {
	set := make(map[string]bool)
	for _, addr := range strings.Split(list, ",") {
		if addr = strings.TrimSpace(addr); addr != "" {
			set[addr] = true
		}
	}
	return set
}
