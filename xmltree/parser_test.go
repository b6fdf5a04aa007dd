package xmltree

import (
	"bytes"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/erraggy/edmxconv/edmxerrors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleEdmx = `<?xml version="1.0" encoding="utf-8"?>
<edmx:Edmx Version="4.0" xmlns:edmx="http://docs.oasis-open.org/odata/ns/edmx">
	<!-- services -->
	<edmx:DataServices>
		<Schema Namespace="tea_busi" Alias="self" xmlns="http://docs.oasis-open.org/odata/ns/edm">
			<EntityType Name="Worker">
				<Key><PropertyRef Name="ID"/></Key>
				<Property Name="ID" Type="Edm.String" Nullable="false"/>
			</EntityType>
		</Schema>
	</edmx:DataServices>
</edmx:Edmx>`

func TestParseString(t *testing.T) {
	root, err := ParseString(sampleEdmx)
	require.NoError(t, err)

	assert.Equal(t, "Edmx", root.Local)
	assert.Equal(t, "http://docs.oasis-open.org/odata/ns/edmx", root.Space)
	assert.Equal(t, "4.0", root.AttrValue("Version"))

	// namespace declarations are kept as attributes, like a DOM does
	require.Len(t, root.Attrs, 2)
	assert.Equal(t, "xmlns:edmx", root.Attrs[1].Name())

	dataServices := root.ChildElements()
	require.Len(t, dataServices, 1)
	schema := dataServices[0].ChildElements()[0]
	assert.Equal(t, "Schema", schema.Local)
	assert.Equal(t, "self", schema.AttrValue("Alias"))

	entityType := schema.ChildElements()[0]
	names := []string{}
	for _, child := range entityType.ChildElements() {
		names = append(names, child.Local)
	}
	assert.Equal(t, []string{"Key", "Property"}, names)
}

func TestParseKeepsAttributeOrder(t *testing.T) {
	root, err := ParseString(`<Annotation Term="T" String="s" Bool="true" Qualifier="q"/>`)
	require.NoError(t, err)

	var names []string
	for _, a := range root.Attrs {
		names = append(names, a.Name())
	}
	assert.Equal(t, []string{"Term", "String", "Bool", "Qualifier"}, names)
}

func TestParseTextAndCDATA(t *testing.T) {
	root, err := ParseString(`<String>a&amp;b<![CDATA[<c>]]></String>`)
	require.NoError(t, err)
	assert.Equal(t, "a&b<c>", root.TextContent())
}

func TestParseDeclaredCharset(t *testing.T) {
	latin1 := []byte("<?xml version=\"1.0\" encoding=\"ISO-8859-1\"?><String>caf\xe9</String>")

	doc, err := New().ParseBytes(latin1)
	require.NoError(t, err)
	assert.Equal(t, "café", doc.Root.TextContent())
	assert.Equal(t, "ParseBytes.xml", doc.SourcePath)
}

func TestParseUnknownCharset(t *testing.T) {
	_, err := New().ParseBytes([]byte(`<?xml version="1.0" encoding="x-no-such-charset"?><a/>`))
	require.Error(t, err)
	assert.True(t, errors.Is(err, edmxerrors.ErrParse))
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"empty input", ""},
		{"whitespace only", "  \n"},
		{"unclosed element", "<Edmx><DataServices>"},
		{"mismatched tags", "<Edmx></DataServices>"},
		{"second root", "<Edmx/><Edmx/>"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New().ParseReader(strings.NewReader(tt.input))
			require.Error(t, err)

			var parseErr *edmxerrors.ParseError
			require.True(t, errors.As(err, &parseErr))
			assert.Equal(t, "ParseReader.xml", parseErr.Path)
		})
	}
}

func TestParseFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "metadata.xml")
	require.NoError(t, os.WriteFile(path, []byte(sampleEdmx), 0o600))

	doc, err := New().ParseFile(path)
	require.NoError(t, err)
	assert.Equal(t, path, doc.SourcePath)
	assert.Equal(t, "Edmx", doc.Root.Local)

	t.Run("missing file", func(t *testing.T) {
		_, err := New().ParseFile(filepath.Join(dir, "missing.xml"))
		assert.True(t, errors.Is(err, edmxerrors.ErrParse))
	})

	t.Run("size limit", func(t *testing.T) {
		p := New()
		p.MaxFileSize = 10
		_, err := p.ParseFile(path)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "exceeds limit")
	})
}

func TestParserLogsDebug(t *testing.T) {
	var buf bytes.Buffer
	handler := slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})

	p := New()
	p.Logger = NewSlogAdapter(slog.New(handler))
	_, err := p.ParseReader(strings.NewReader(sampleEdmx))
	require.NoError(t, err)

	assert.Contains(t, buf.String(), "parsed XML document")
	assert.Contains(t, buf.String(), "root=Edmx")
}

func TestParse(t *testing.T) {
	root, err := Parse(strings.NewReader(sampleEdmx))
	require.NoError(t, err)
	assert.Equal(t, "Edmx", root.Local)

	_, err = Parse(strings.NewReader("<a>"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, edmxerrors.ErrParse))
}
