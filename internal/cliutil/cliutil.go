// Package cliutil provides utilities for CLI operations: best-effort output
// and flag defaults taken from EDMXCONV_* environment variables.
package cliutil

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"slices"
	"strconv"
)

// Writef writes formatted output to w. A failed write is reported on stderr
// instead of being returned, so diagnostic output never aborts a command.
func Writef(w io.Writer, format string, args ...any) {
	if _, err := fmt.Fprintf(w, format, args...); err != nil { //nolint:gosec // G705 - CLI tool, not a web server
		_, _ = fmt.Fprintf(os.Stderr, "write error: %v\n", err)
	}
}

// EnvBool returns the boolean value of the environment variable key, or
// fallback when it is unset. Unparseable values log a warning and fall back.
func EnvBool(key string, fallback bool) bool {
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

// EnvChoice returns the environment variable key when it is one of allowed,
// or fallback when it is unset. Other values log a warning and fall back.
func EnvChoice(key, fallback string, allowed ...string) string {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	if !slices.Contains(allowed, v) {
		slog.Warn("invalid env var, using default", "key", key, "value", v, "default", fallback, "allowed", allowed) //nolint:gosec // G706: values are structured log fields, not format strings
		return fallback
	}
	return v
}
