package mcpserver

import (
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/erraggy/googlemap/internal/report"
	"github.com/erraggy/googlemap/mapdoc"
)

// serverConfig holds the configurable MCP server defaults.
// Loaded once at startup from environment variables via loadConfig().
type serverConfig struct {
	// Document cache.
	CacheEnabled       bool
	CacheMaxSize       int
	CacheFileTTL       time.Duration
	CacheContentTTL    time.Duration
	CacheSweepInterval time.Duration

	// MaxDocumentSize caps file and inline documents, in bytes.
	MaxDocumentSize int64

	// DefaultFormat is the format assumed for inline documents without one.
	// Empty means detect from the content.
	DefaultFormat mapdoc.Format

	// DefaultKind is the aggregation returned when a call names none.
	DefaultKind report.Kind

	// MaxLimit caps the entries returned per list.
	MaxLimit int
}

// cfg is the active server configuration, initialized at package load time.
var cfg = loadConfig()

// loadConfig reads configuration from GMAPS_* environment variables.
// Invalid values log a warning and fall back to the default.
func loadConfig() *serverConfig {
	return &serverConfig{
		CacheEnabled:       envBool("GMAPS_CACHE_ENABLED", true),
		CacheMaxSize:       envInt("GMAPS_CACHE_MAX_SIZE", 10),
		CacheFileTTL:       envDuration("GMAPS_CACHE_FILE_TTL", 15*time.Minute),
		CacheContentTTL:    envDuration("GMAPS_CACHE_CONTENT_TTL", 15*time.Minute),
		CacheSweepInterval: envDuration("GMAPS_CACHE_SWEEP_INTERVAL", 60*time.Second),
		MaxDocumentSize:    envInt64("GMAPS_MAX_DOCUMENT_SIZE", mapdoc.DefaultMaxSize),
		DefaultFormat:      envFormat("GMAPS_DEFAULT_FORMAT"),
		DefaultKind:        envKind("GMAPS_DEFAULT_KIND"),
		MaxLimit:           envInt("GMAPS_MAX_LIMIT", 1000),
	}
}

func envBool(key string, fallback bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		slog.Warn("invalid bool env var, using default", "key", key, "value", v, "default", fallback)
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
		slog.Warn("invalid int env var, using default", "key", key, "value", v, "default", fallback)
		return fallback
	}
	return n
}

func envInt64(key string, fallback int64) int64 {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil || n <= 0 {
		slog.Warn("invalid size env var, using default", "key", key, "value", v, "default", fallback)
		return fallback
	}
	return n
}

func envDuration(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil || d <= 0 {
		slog.Warn("invalid duration env var, using default", "key", key, "value", v, "default", fallback)
		return fallback
	}
	return d
}

func envFormat(key string) mapdoc.Format {
	v := os.Getenv(key)
	if v == "" {
		return mapdoc.FormatUnknown
	}
	f, ok := mapdoc.ParseFormat(v)
	if !ok {
		slog.Warn("invalid format env var, detecting from content", "key", key, "value", v)
		return mapdoc.FormatUnknown
	}
	return f
}

func envKind(key string) report.Kind {
	v := os.Getenv(key)
	k, err := report.ParseKind(v)
	if err != nil {
		slog.Warn("invalid kind env var, using default", "key", key, "value", v, "default", report.KindAll)
		return report.KindAll
	}
	return k
}
