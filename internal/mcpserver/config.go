package mcpserver

import (
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/erraggy/edmxconv/converter"
)

// serverConfig holds all configurable MCP server defaults.
// Loaded once at startup from environment variables via loadConfig().
type serverConfig struct {
	// Cache settings.
	CacheEnabled       bool
	CacheMaxSize       int
	CacheFileTTL       time.Duration
	CacheContentTTL    time.Duration
	CacheSweepInterval time.Duration

	// Walk tool defaults.
	WalkLimit       int
	WalkDetailLimit int
	MaxLimit        int

	// Convert tool defaults.
	Format      string
	IncludeInfo bool
	Strict      bool

	// Input limits.
	MaxInlineSize int64
}

// cfg is the active server configuration, initialized at package load time.
var cfg = loadConfig()

// loadConfig reads configuration from EDMXCONV_* environment variables.
// Invalid values log a warning and fall back to the hardcoded default.
func loadConfig() *serverConfig {
	return &serverConfig{
		CacheEnabled:       envBool("EDMXCONV_CACHE_ENABLED", true),
		CacheMaxSize:       envInt("EDMXCONV_CACHE_MAX_SIZE", 10),
		CacheFileTTL:       envDuration("EDMXCONV_CACHE_FILE_TTL", 15*time.Minute),
		CacheContentTTL:    envDuration("EDMXCONV_CACHE_CONTENT_TTL", 15*time.Minute),
		CacheSweepInterval: envDuration("EDMXCONV_CACHE_SWEEP_INTERVAL", 60*time.Second),
		WalkLimit:          envInt("EDMXCONV_WALK_LIMIT", 100),
		WalkDetailLimit:    envInt("EDMXCONV_WALK_DETAIL_LIMIT", 25),
		MaxLimit:           envInt("EDMXCONV_MAX_LIMIT", 1000),
		Format:             envFormat("EDMXCONV_FORMAT", converter.FormatJSON),
		IncludeInfo:        envBool("EDMXCONV_INCLUDE_INFO", true),
		Strict:             envBool("EDMXCONV_STRICT", false),
		MaxInlineSize:      int64(envInt("EDMXCONV_MAX_INLINE_SIZE", 10*1024*1024)),
	}
}

func envBool(key string, fallback bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		slog.Warn("invalid bool env var, using default", "key", key, "value", v, "default", fallback) //nolint:gosec // G706: values are structured log fields, not format strings
		return fallback
	}
	return b
}

func envInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		slog.Warn("invalid int env var, using default", "key", key, "value", v, "default", fallback) //nolint:gosec // G706: values are structured log fields, not format strings
		return fallback
	}
	return n
}

func envFormat(key, fallback string) string {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	if v != converter.FormatJSON && v != converter.FormatYAML {
		slog.Warn("invalid format env var, using default", "key", key, "value", v, "default", fallback) //nolint:gosec // G706: values are structured log fields, not format strings
		return fallback
	}
	return v
}

func envDuration(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil || d <= 0 {
		slog.Warn("invalid duration env var, using default", "key", key, "value", v, "default", fallback) //nolint:gosec // G706: values are structured log fields, not format strings
		return fallback
	}
	return d
}
