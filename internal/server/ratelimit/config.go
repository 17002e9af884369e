package ratelimit

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// EndpointConfig represents rate limiting configuration for a specific endpoint.
type EndpointConfig struct {
	Path   string        // Endpoint path
	Method string        // HTTP method
	Limit  int           // Maximum requests per window; <= 0 means unlimited
	Window time.Duration // Time window
	Burst  int           // Burst capacity (defaults to Limit if 0)
}

// LoadConfig loads rate limiting configuration from environment variables.
func LoadConfig() *Config {
	if !getEnvBool("RATE_LIMIT_ENABLED", true) {
		return &Config{Enabled: false}
	}

	return &Config{
		Enabled:         true,
		DefaultLimit:    getEnvInt("RATE_LIMIT_DEFAULT_LIMIT", 1000),
		DefaultWindow:   getEnvDuration("RATE_LIMIT_DEFAULT_WINDOW", time.Minute),
		CleanupInterval: getEnvDuration("RATE_LIMIT_CLEANUP_INTERVAL", 5*time.Minute),
		Whitelist:       parseIPList(os.Getenv("RATE_LIMIT_WHITELIST")),
		Blacklist:       parseIPList(os.Getenv("RATE_LIMIT_BLACKLIST")),
		EndpointConfigs: DefaultEndpointConfigs(),
	}
}

// DefaultEndpointConfigs returns the default endpoint-specific configurations.
// Variant generation is the priciest call, so it gets the strictest tier.
func DefaultEndpointConfigs() []EndpointConfig {
	return []EndpointConfig{
		{Path: "/polish", Method: "POST", Limit: 60, Window: time.Minute, Burst: 10},
		{Path: "/buzzwordify", Method: "POST", Limit: 120, Window: time.Minute, Burst: 20},
		{Path: "/reply-suggestions", Method: "POST", Limit: 120, Window: time.Minute, Burst: 20},
		{Path: "/phrases", Method: "GET", Limit: 300, Window: time.Minute, Burst: 50},
	}
}

// MatchEndpoint matches a request path and method to an endpoint
// configuration. Returns nil when no specific configuration applies, in
// which case the limiter falls back to its default tier.
func MatchEndpoint(path, method string, configs []EndpointConfig) *EndpointConfig {
	// The meta endpoints are never throttled.
	if method == "GET" && (path == "/health" || path == "/") {
		return &EndpointConfig{Limit: 0}
	}

	for i := range configs {
		ec := &configs[i]
		if ec.Method != method {
			continue
		}
		if ec.Path == path {
			return ec
		}
		// Trailing-slash patterns match by prefix, e.g. "/phrases/".
		if strings.HasSuffix(ec.Path, "/") && strings.HasPrefix(path, ec.Path) {
			return ec
		}
	}
	return nil
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}

// parseIPList parses a comma-separated list of IP addresses into a set.
func parseIPList(list string) map[string]bool {
	result := make(map[string]bool)
	for _, ip := range strings.Split(list, ",") {
		if ip = strings.TrimSpace(ip); ip != "" {
			result[ip] = true
		}
	}
	return result
}
