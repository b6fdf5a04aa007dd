// Package commands provides CLI command handlers for edmxconv.
package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/erraggy/edmxconv"
	"github.com/erraggy/edmxconv/internal/cliutil"
	"github.com/erraggy/edmxconv/xmltree"
	"go.yaml.in/yaml/v4"
)

// Output format constants
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// StdinFilePath is the special file path used to indicate reading from stdin.
const StdinFilePath = "-"

// Environment variables that override flag defaults.
const (
	EnvFormat      = "EDMXCONV_FORMAT"
	EnvIncludeInfo = "EDMXCONV_INCLUDE_INFO"
)

// ValidateOutputFormat validates an output format against the allowed formats
// and returns an error if invalid.
func ValidateOutputFormat(format string, allowed ...string) error {
	for _, a := range allowed {
		if format == a {
			return nil
		}
	}
	return fmt.Errorf("invalid format '%s'. Valid formats: %v", format, allowed)
}

// OutputStructured writes data in the specified format (json or yaml) to w.
// Returns an error if marshaling fails.
func OutputStructured(w io.Writer, data any, format string) error {
	var bytes []byte
	var err error

	switch format {
	case FormatJSON:
		bytes, err = json.MarshalIndent(data, "", "  ")
	case FormatYAML:
		bytes, err = yaml.Marshal(data)
	default:
		return fmt.Errorf("invalid format for structured output: %s", format)
	}

	if err != nil {
		return fmt.Errorf("marshaling to %s: %w", format, err)
	}

	cliutil.Writef(w, "%s\n", bytes)
	return nil
}

// ValidateOutputPath checks if the output path is safe to write to
func ValidateOutputPath(outputPath, inputPath string) error {
	absOutputPath, err := filepath.Abs(outputPath)
	if err != nil {
		return fmt.Errorf("invalid output path: %w", err)
	}

	if inputPath != StdinFilePath {
		absInputPath, err := filepath.Abs(inputPath)
		if err != nil {
			return fmt.Errorf("invalid input path %s: %w", inputPath, err)
		}
		if absOutputPath == absInputPath {
			return fmt.Errorf("output file %s would overwrite input file %s", outputPath, inputPath)
		}
	}

	return RejectSymlinkOutput(absOutputPath)
}

// RejectSymlinkOutput checks if the output path is a symlink and returns an error if so.
func RejectSymlinkOutput(cleanedPath string) error {
	info, err := os.Lstat(cleanedPath)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("commands: checking output path: %w", err)
	}
	if info.Mode()&os.ModeSymlink != 0 {
		return fmt.Errorf("commands: refusing to write to symlink: %s", cleanedPath)
	}
	return nil
}

// FormatInputPath returns a display-friendly path for the metadata input.
// Returns "<stdin>" if the path is StdinFilePath, otherwise returns the path as-is.
func FormatInputPath(path string) string {
	if path == StdinFilePath {
		return "<stdin>"
	}
	return path
}

// OutputHeader writes the common diagnostic header to stderr.
func OutputHeader(inputPath, version string) {
	cliutil.Writef(os.Stderr, "edmxconv version: %s\n", edmxconv.Version())
	cliutil.Writef(os.Stderr, "Metadata: %s\n", FormatInputPath(inputPath))
	if version != "" {
		cliutil.Writef(os.Stderr, "OData Version: %s\n", version)
	}
}

// NewLogger returns the logger handed to the converter. Verbose mode logs
// debug records as text to stderr; otherwise nothing is logged.
func NewLogger(verbose bool) xmltree.Logger {
	if !verbose {
		return xmltree.NopLogger{}
	}
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})
	return xmltree.NewSlogAdapter(slog.New(handler)).With("app", edmxconv.UserAgent())
}
