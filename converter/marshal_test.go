package converter

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.yaml.in/yaml/v4"

	"github.com/erraggy/edmxconv/internal/testutil"
)

func TestMarshalFormats(t *testing.T) {
	result := convertString(t, testutil.TeaBusiMetadata)

	data, err := result.Marshal(FormatJSON)
	require.NoError(t, err)
	var fromJSON map[string]any
	require.NoError(t, json.Unmarshal(data, &fromJSON))
	assert.Equal(t, "tea_busi.Container", fromJSON["$EntityContainer"])
	assert.Contains(t, string(data), `"$Key": [`)

	data, err = result.Marshal(FormatYAML)
	require.NoError(t, err)
	var fromYAML map[string]any
	require.NoError(t, yaml.Unmarshal(data, &fromYAML))
	assert.Equal(t, "4.0", fromYAML["$Version"])
	importance, ok := fromYAML["tea_busi.Importance"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, 5, importance["Medium"])

	_, err = result.Marshal("xml")
	assert.Error(t, err)
}

func TestMarshalBoxedValues(t *testing.T) {
	result := convertString(t, edmx(`<Schema Namespace="n"><Annotations Target="n.T">
		<Annotation Term="n.Nan"><Float>NaN</Float></Annotation>
		<Annotation Term="n.Null"><Null/></Annotation>
		</Annotations></Schema>`))

	data, err := result.MarshalJSONIndent("", "")
	require.NoError(t, err)
	assert.JSONEq(t,
		`{"$Version":"4.0","n":{"$kind":"Schema","$Annotations":{"n.T":{"@n.Nan":{"$Float":"NaN"},"@n.Null":null}}}}`,
		string(data))
}
