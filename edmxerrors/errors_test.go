package edmxerrors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseError(t *testing.T) {
	t.Run("Error message with all fields", func(t *testing.T) {
		err := &ParseError{
			Path:    "metadata.xml",
			Offset:  128,
			Message: "unexpected EOF",
			Cause:   errors.New("underlying"),
		}
		assert.Equal(t, "parse error in metadata.xml at offset 128: unexpected EOF: underlying", err.Error())
	})

	t.Run("Error message with minimal fields", func(t *testing.T) {
		assert.Equal(t, "parse error", (&ParseError{}).Error())
	})

	t.Run("Is matches ErrParse only", func(t *testing.T) {
		err := &ParseError{Message: "test"}
		assert.True(t, errors.Is(err, ErrParse))
		assert.False(t, errors.Is(err, ErrConversion))
		assert.False(t, errors.Is(err, ErrConfig))
	})

	t.Run("Unwrap returns cause", func(t *testing.T) {
		cause := errors.New("underlying")
		err := &ParseError{Cause: cause}
		assert.Same(t, cause, err.Unwrap())
	})
}

func TestConversionError(t *testing.T) {
	t.Run("Error message with path", func(t *testing.T) {
		err := &ConversionError{
			Path:    "Edmx/DataServices/Schema/Parameter",
			Element: "Parameter",
			Message: "no enclosing Action or Function",
		}
		assert.Equal(t, "conversion error at Edmx/DataServices/Schema/Parameter: no enclosing Action or Function", err.Error())
	})

	t.Run("Error message falls back to element", func(t *testing.T) {
		err := &ConversionError{Element: "Member", Message: "no enclosing EnumType"}
		assert.Equal(t, "conversion error at Member: no enclosing EnumType", err.Error())
	})

	t.Run("As extracts through wrapping", func(t *testing.T) {
		wrapped := fmt.Errorf("converter: %w", &ConversionError{Element: "Annotation"})

		var convErr *ConversionError
		require.True(t, errors.As(wrapped, &convErr))
		assert.Equal(t, "Annotation", convErr.Element)
		assert.True(t, errors.Is(wrapped, ErrConversion))
	})
}

func TestConfigError(t *testing.T) {
	t.Run("Error message with all fields", func(t *testing.T) {
		err := &ConfigError{
			Option:  "format",
			Value:   "xml",
			Message: "unsupported output format",
		}
		assert.Equal(t, "configuration error for format (value: xml): unsupported output format", err.Error())
	})

	t.Run("Is matches ErrConfig", func(t *testing.T) {
		assert.True(t, errors.Is(&ConfigError{}, ErrConfig))
		assert.False(t, errors.Is(&ConfigError{}, ErrParse))
	})

	t.Run("Unwrap returns nil when no cause", func(t *testing.T) {
		assert.NoError(t, (&ConfigError{}).Unwrap())
	})
}
