package commands

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/erraggy/edmxconv/xmltree"
)

func TestValidateOutputFormat(t *testing.T) {
	tests := []struct {
		name    string
		format  string
		allowed []string
		wantErr bool
	}{
		{"json for convert", FormatJSON, []string{FormatJSON, FormatYAML}, false},
		{"yaml for convert", FormatYAML, []string{FormatJSON, FormatYAML}, false},
		{"text rejected for convert", FormatText, []string{FormatJSON, FormatYAML}, true},
		{"text for aliases", FormatText, []string{FormatText, FormatJSON, FormatYAML}, false},
		{"unknown", "xml", []string{FormatText, FormatJSON, FormatYAML}, true},
		{"empty", "", []string{FormatJSON}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateOutputFormat(tt.format, tt.allowed...)
			assert.Equal(t, tt.wantErr, err != nil, "error = %v", err)
		})
	}
}

func TestOutputStructured(t *testing.T) {
	data := []AliasEntry{{Alias: "Core", Namespace: "Org.OData.Core.V1"}}

	t.Run("json", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, OutputStructured(&buf, data, FormatJSON))
		assert.Contains(t, buf.String(), `"alias": "Core"`)
	})

	t.Run("yaml", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, OutputStructured(&buf, data, FormatYAML))
		assert.Contains(t, buf.String(), "alias: Core")
	})

	t.Run("text is not structured", func(t *testing.T) {
		assert.Error(t, OutputStructured(&bytes.Buffer{}, data, FormatText))
	})
}

func TestValidateOutputPath(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "metadata.xml")

	assert.NoError(t, ValidateOutputPath(filepath.Join(dir, "metadata.json"), input))
	assert.NoError(t, ValidateOutputPath(filepath.Join(dir, "metadata.json"), StdinFilePath))
	assert.Error(t, ValidateOutputPath(input, input))

	target := filepath.Join(dir, "target.json")
	require.NoError(t, os.WriteFile(target, nil, 0600))
	link := filepath.Join(dir, "link.json")
	require.NoError(t, os.Symlink(target, link))
	err := ValidateOutputPath(link, input)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "symlink")
}

func TestFormatInputPath(t *testing.T) {
	assert.Equal(t, "<stdin>", FormatInputPath(StdinFilePath))
	assert.Equal(t, "metadata.xml", FormatInputPath("metadata.xml"))
}

func TestNewLogger(t *testing.T) {
	assert.IsType(t, xmltree.NopLogger{}, NewLogger(false))
	assert.NotNil(t, NewLogger(true))
}
