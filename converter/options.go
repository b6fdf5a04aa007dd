package converter

import (
	"fmt"
	"io"

	"github.com/erraggy/edmxconv/edmxerrors"
	"github.com/erraggy/edmxconv/internal/options"
	"github.com/erraggy/edmxconv/xmltree"
)

// Option is a function that configures a conversion operation
type Option func(*convertConfig) error

// convertConfig holds configuration for a conversion operation
type convertConfig struct {
	// Input source (exactly one must be set)
	element  *xmltree.Element
	filePath *string
	reader   io.Reader
	bytes    []byte

	// Configuration options
	strictMode  bool
	includeInfo bool
	logger      xmltree.Logger
}

// ConvertWithOptions converts a metadata document using functional options.
// This combines input source selection and configuration in a single call.
//
// Example:
//
//	result, err := converter.ConvertWithOptions(
//	    converter.WithFilePath("metadata.xml"),
//	    converter.WithStrictMode(true),
//	)
func ConvertWithOptions(opts ...Option) (*ConversionResult, error) {
	cfg, err := applyOptions(opts...)
	if err != nil {
		return nil, fmt.Errorf("converter: invalid options: %w", err)
	}

	c := &Converter{
		StrictMode:  cfg.strictMode,
		IncludeInfo: cfg.includeInfo,
		Logger:      cfg.logger,
	}

	if cfg.element != nil {
		return c.Convert(cfg.element)
	}

	p := xmltree.New()
	p.Logger = cfg.logger

	var doc *xmltree.Document
	switch {
	case cfg.filePath != nil:
		doc, err = p.ParseFile(*cfg.filePath)
	case cfg.reader != nil:
		doc, err = p.ParseReader(cfg.reader)
	case cfg.bytes != nil:
		doc, err = p.ParseBytes(cfg.bytes)
	default:
		// Should never reach here due to validation in applyOptions
		return nil, fmt.Errorf("converter: no input source specified")
	}
	if err != nil {
		return nil, fmt.Errorf("converter: %w", err)
	}

	result, err := c.Convert(doc.Root)
	if result != nil {
		result.SourcePath = doc.SourcePath
	}
	return result, err
}

// applyOptions applies option functions and validates configuration
func applyOptions(opts ...Option) (*convertConfig, error) {
	cfg := &convertConfig{
		includeInfo: true,
	}

	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, err
		}
	}

	if _, err := options.ValidateSingleInputSource("converter",
		options.Source{Option: "WithElement", Set: cfg.element != nil},
		options.Source{Option: "WithFilePath", Set: cfg.filePath != nil},
		options.Source{Option: "WithReader", Set: cfg.reader != nil},
		options.Source{Option: "WithBytes", Set: cfg.bytes != nil},
	); err != nil {
		return nil, err
	}

	return cfg, nil
}

// WithElement specifies an already-built element tree as the input source
func WithElement(root *xmltree.Element) Option {
	return func(cfg *convertConfig) error {
		if root == nil {
			return &edmxerrors.ConfigError{Option: "WithElement", Message: "element cannot be nil"}
		}
		cfg.element = root
		return nil
	}
}

// WithFilePath specifies a file path as the input source
func WithFilePath(path string) Option {
	return func(cfg *convertConfig) error {
		if path == "" {
			return &edmxerrors.ConfigError{Option: "WithFilePath", Message: "path cannot be empty"}
		}
		cfg.filePath = &path
		return nil
	}
}

// WithReader specifies an io.Reader as the input source
func WithReader(r io.Reader) Option {
	return func(cfg *convertConfig) error {
		if r == nil {
			return &edmxerrors.ConfigError{Option: "WithReader", Message: "reader cannot be nil"}
		}
		cfg.reader = r
		return nil
	}
}

// WithBytes specifies the raw XML document as the input source
func WithBytes(data []byte) Option {
	return func(cfg *convertConfig) error {
		if data == nil {
			return &edmxerrors.ConfigError{Option: "WithBytes", Message: "data cannot be nil"}
		}
		cfg.bytes = data
		return nil
	}
}

// WithStrictMode makes the conversion fail when warnings were recorded
func WithStrictMode(enabled bool) Option {
	return func(cfg *convertConfig) error {
		cfg.strictMode = enabled
		return nil
	}
}

// WithIncludeInfo controls whether informational issues are reported.
// Default: true
func WithIncludeInfo(enabled bool) Option {
	return func(cfg *convertConfig) error {
		cfg.includeInfo = enabled
		return nil
	}
}

// WithLogger sets the logger for the parse and conversion steps
func WithLogger(l xmltree.Logger) Option {
	return func(cfg *convertConfig) error {
		cfg.logger = l
		return nil
	}
}
