package main

import (
	"flag"
	"log/slog"
	"os"
	"strconv"
	"strings"
)

const (
	DefaultRateLimit   = 60
	DefaultMaxBodySize = 1 << 20
)

// Config holds the server configuration
type Config struct {
	// HTTPAddr is the listen address for the streamable HTTP transport.
	// Empty means stdio.
	HTTPAddr string

	// LogLevel is the minimum level written to stderr
	LogLevel slog.Level

	Security SecurityConfig
}

// LoadConfig reads the configuration from environment variables and then
// applies command line flags on top.
func LoadConfig(args []string) (Config, error) {
	cfg := Config{
		HTTPAddr: os.Getenv("CLABE_MCP_HTTP_ADDR"),
		LogLevel: parseLogLevel(os.Getenv("CLABE_MCP_LOG_LEVEL")),
		Security: SecurityConfig{
			RateLimit:   envInt("CLABE_MCP_RATE_LIMIT", DefaultRateLimit),
			MaxBodySize: int64(envInt("CLABE_MCP_MAX_BODY_BYTES", DefaultMaxBodySize)),
		},
	}

	fs := flag.NewFlagSet(ServerName, flag.ContinueOnError)
	fs.StringVar(&cfg.HTTPAddr, "http", cfg.HTTPAddr, "HTTP listen address (e.g. :8080); stdio when empty")
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func parseLogLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// envInt returns the integer value of key, or def when unset, malformed or negative.
func envInt(key string, def int) int {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 0 {
		return def
	}
	return n
}
