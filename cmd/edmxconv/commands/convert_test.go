package commands

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.yaml.in/yaml/v4"

	"github.com/erraggy/edmxconv/edmxerrors"
	"github.com/erraggy/edmxconv/internal/testutil"
)

func TestSetupConvertFlags(t *testing.T) {
	t.Setenv(EnvFormat, "")
	t.Setenv(EnvIncludeInfo, "")

	t.Run("default values", func(t *testing.T) {
		_, flags := SetupConvertFlags()
		assert.Equal(t, FormatJSON, flags.Format)
		assert.Empty(t, flags.Output)
		assert.False(t, flags.IncludeInfo)
		assert.False(t, flags.Strict)
		assert.False(t, flags.Quiet)
		assert.False(t, flags.Verbose)
	})

	t.Run("short flags", func(t *testing.T) {
		fs, flags := SetupConvertFlags()
		require.NoError(t, fs.Parse([]string{"-f", "yaml", "-o", "out.yaml", "-info", "-strict", "-q", "-v", "metadata.xml"}))
		assert.Equal(t, FormatYAML, flags.Format)
		assert.Equal(t, "out.yaml", flags.Output)
		assert.True(t, flags.IncludeInfo)
		assert.True(t, flags.Strict)
		assert.True(t, flags.Quiet)
		assert.True(t, flags.Verbose)
		assert.Equal(t, "metadata.xml", fs.Arg(0))
	})

	t.Run("long flags", func(t *testing.T) {
		fs, flags := SetupConvertFlags()
		require.NoError(t, fs.Parse([]string{"--format", "yaml", "--output", "out.yaml", "--quiet", "--verbose", "-"}))
		assert.Equal(t, FormatYAML, flags.Format)
		assert.Equal(t, "out.yaml", flags.Output)
		assert.True(t, flags.Quiet)
		assert.True(t, flags.Verbose)
		assert.Equal(t, StdinFilePath, fs.Arg(0))
	})
}

func TestSetupConvertFlags_EnvDefaults(t *testing.T) {
	t.Setenv(EnvFormat, "yaml")
	t.Setenv(EnvIncludeInfo, "true")
	_, flags := SetupConvertFlags()
	assert.Equal(t, FormatYAML, flags.Format)
	assert.True(t, flags.IncludeInfo)

	t.Setenv(EnvFormat, "toml")
	t.Setenv(EnvIncludeInfo, "perhaps")
	_, flags = SetupConvertFlags()
	assert.Equal(t, FormatJSON, flags.Format, "invalid env value falls back")
	assert.False(t, flags.IncludeInfo, "invalid env value falls back")
}

func TestHandleConvert_NoArgs(t *testing.T) {
	assert.Error(t, HandleConvert([]string{}))
}

func TestHandleConvert_Help(t *testing.T) {
	assert.NoError(t, HandleConvert([]string{"--help"}))
}

func TestHandleConvert_InvalidFormat(t *testing.T) {
	err := HandleConvert([]string{"-format", "xml", "metadata.xml"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid format")
}

func TestRunConvert_FileToStdout(t *testing.T) {
	path := testutil.WriteTempXML(t, testutil.MinimalMetadata)

	var stdout bytes.Buffer
	require.NoError(t, runConvert([]string{"-q", path}, nil, &stdout))

	var doc map[string]any
	require.NoError(t, json.Unmarshal(stdout.Bytes(), &doc))
	assert.Equal(t, "4.01", doc["$Version"])
	assert.Contains(t, doc, "min.Item")
}

func TestRunConvert_StdinToYAML(t *testing.T) {
	var stdout bytes.Buffer
	err := runConvert([]string{"-q", "-format", "yaml", "-"}, strings.NewReader(testutil.ForwardAliasMetadata), &stdout)
	require.NoError(t, err)

	var doc map[string]any
	require.NoError(t, yaml.Unmarshal(stdout.Bytes(), &doc))
	holder, ok := doc["first.Holder"].(map[string]any)
	require.True(t, ok, "expected first.Holder, got %T", doc["first.Holder"])
	value, ok := holder["Value"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "second.Value", value["$Type"])
}

func TestRunConvert_OutputFile(t *testing.T) {
	input := testutil.WriteTempXML(t, testutil.TeaBusiMetadata)
	output := filepath.Join(t.TempDir(), "metadata.json")

	var stdout bytes.Buffer
	require.NoError(t, runConvert([]string{"-q", "-o", output, input}, nil, &stdout))
	assert.Empty(t, stdout.String())

	data, err := os.ReadFile(output)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"$EntityContainer": "tea_busi.Container"`)
}

func TestRunConvert_OutputOverwritesInput(t *testing.T) {
	input := testutil.WriteTempXML(t, testutil.MinimalMetadata)
	err := runConvert([]string{"-o", input, input}, nil, &bytes.Buffer{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "would overwrite input file")
}

func TestRunConvert_Strict(t *testing.T) {
	input := testutil.WriteTempXML(t, testutil.UnsafeIntMetadata)

	var stdout bytes.Buffer
	err := runConvert([]string{"-q", "-strict", input}, nil, &stdout)
	require.Error(t, err)
	assert.True(t, errors.Is(err, edmxerrors.ErrConversion))
	assert.Empty(t, stdout.String(), "nothing is written on failure")

	// Without strict mode the boxed literal is written.
	require.NoError(t, runConvert([]string{"-q", input}, nil, &stdout))
	assert.Contains(t, stdout.String(), `"$Int": "9007199254740993"`)
}

func TestRunConvert_ErrorPaths(t *testing.T) {
	t.Run("non-existent file", func(t *testing.T) {
		err := runConvert([]string{"/nonexistent/path/metadata.xml"}, nil, &bytes.Buffer{})
		assert.Error(t, err)
	})

	t.Run("malformed XML", func(t *testing.T) {
		err := runConvert([]string{"-"}, strings.NewReader("<edmx:Edmx><unclosed>"), &bytes.Buffer{})
		assert.Error(t, err)
	})

	t.Run("wrong root element", func(t *testing.T) {
		input := testutil.WriteTempXML(t, `<Schema Namespace="n"/>`)
		err := runConvert([]string{input}, nil, &bytes.Buffer{})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "root element must be Edmx")
	})

	t.Run("two inputs", func(t *testing.T) {
		err := runConvert([]string{"a.xml", "b.xml"}, nil, &bytes.Buffer{})
		assert.Error(t, err)
	})
}
