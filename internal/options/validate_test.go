package options

import (
	"errors"
	"testing"

	"github.com/erraggy/edmxconv/edmxerrors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sources(set ...bool) []Source {
	names := []string{"WithElement", "WithFilePath", "WithReader", "WithBytes"}
	out := make([]Source, len(set))
	for i, s := range set {
		out[i] = Source{Option: names[i], Set: s}
	}
	return out
}

func TestValidateSingleInputSource(t *testing.T) {
	t.Run("exactly one", func(t *testing.T) {
		chosen, err := ValidateSingleInputSource("converter", sources(false, true, false, false)...)
		require.NoError(t, err)
		assert.Equal(t, "WithFilePath", chosen)
	})

	t.Run("none", func(t *testing.T) {
		_, err := ValidateSingleInputSource("converter", sources(false, false, false, false)...)
		require.Error(t, err)
		assert.True(t, errors.Is(err, edmxerrors.ErrConfig))
		assert.Contains(t, err.Error(),
			"converter: must specify an input source (use WithElement, WithFilePath, WithReader, or WithBytes)")
	})

	t.Run("multiple", func(t *testing.T) {
		_, err := ValidateSingleInputSource("converter", sources(true, false, true, true)...)
		require.Error(t, err)

		var cfgErr *edmxerrors.ConfigError
		require.True(t, errors.As(err, &cfgErr))
		assert.Equal(t, "WithElement, WithReader, WithBytes", cfgErr.Value)
		assert.Equal(t, "converter: must specify exactly one input source", cfgErr.Message)
	})
}

func TestJoinOr(t *testing.T) {
	assert.Equal(t, "", joinOr(nil))
	assert.Equal(t, "a", joinOr([]string{"a"}))
	assert.Equal(t, "a or b", joinOr([]string{"a", "b"}))
	assert.Equal(t, "a, b, or c", joinOr([]string{"a", "b", "c"}))
}
