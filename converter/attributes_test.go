package converter

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/erraggy/edmxconv/alias"
	"github.com/erraggy/edmxconv/xmltree"
)

func TestAttrRules(t *testing.T) {
	t.Run("setValue", func(t *testing.T) {
		v, ok := setValue("x", true)
		assert.True(t, ok)
		assert.Equal(t, "x", v)

		v, ok = setValue("", true)
		assert.True(t, ok)
		assert.Equal(t, "", v)

		_, ok = setValue("", false)
		assert.False(t, ok)
	})

	t.Run("setIfTrue", func(t *testing.T) {
		_, ok := setIfTrue("false", true)
		assert.False(t, ok)
		_, ok = setIfTrue("", false)
		assert.False(t, ok)
		v, ok := setIfTrue("true", true)
		assert.True(t, ok)
		assert.Equal(t, true, v)
	})

	t.Run("setIfFalse", func(t *testing.T) {
		_, ok := setIfFalse("true", true)
		assert.False(t, ok)
		v, ok := setIfFalse("false", true)
		assert.True(t, ok)
		assert.Equal(t, false, v)
	})

	t.Run("setNumber", func(t *testing.T) {
		v, ok := setNumber("10", true)
		assert.True(t, ok)
		assert.Equal(t, int64(10), v)

		v, ok = setNumber("max", true)
		assert.True(t, ok)
		assert.Equal(t, "max", v)

		v, ok = setNumber("variable", true)
		assert.True(t, ok)
		assert.Equal(t, "variable", v)

		_, ok = setNumber("", true)
		assert.False(t, ok)
		_, ok = setNumber("", false)
		assert.False(t, ok)
	})
}

func TestCopyAttributesFacets(t *testing.T) {
	e := xmltree.NewElement("Property",
		xmltree.A("MaxLength", "max"),
		xmltree.A("Precision", "7"),
		xmltree.A("Scale", "variable"),
		xmltree.A("SRID", "4326"),
		xmltree.A("Unicode", "false"),
	)
	got := Object{}
	copyAttributes(e, got, facetAttributes...)

	assert.Equal(t, Object{
		"$MaxLength": "max",
		"$Precision": int64(7),
		"$Scale":     "variable",
		"$SRID":      "4326",
		"$Unicode":   false,
	}, got)
}

func TestCopyAttributesOmitsDefaults(t *testing.T) {
	e := xmltree.NewElement("Property", xmltree.A("Unicode", "true"), xmltree.A("Nullable", "true"))
	got := Object{}
	copyAttributes(e, got, append([]attrSpec{{"Nullable", setIfFalse}}, facetAttributes...)...)
	assert.Empty(t, got)
}

func TestSetTypedCollection(t *testing.T) {
	aliases := alias.Table{"tea": "com.sap.tea"}

	tests := []struct {
		name string
		attr []xmltree.Attr
		want Object
	}{
		{"plain", []xmltree.Attr{xmltree.A("Type", "Edm.String")}, Object{"$Type": "Edm.String"}},
		{"collection", []xmltree.Attr{xmltree.A("Type", "Collection(Edm.String)")},
			Object{"$isCollection": true, "$Type": "Edm.String"}},
		{"aliased collection", []xmltree.Attr{xmltree.A("Type", "Collection(tea.Worker)")},
			Object{"$isCollection": true, "$Type": "com.sap.tea.Worker"}},
		{"aliased", []xmltree.Attr{xmltree.A("Type", "tea.Worker")}, Object{"$Type": "com.sap.tea.Worker"}},
		{"empty collection", []xmltree.Attr{xmltree.A("Type", "Collection()")},
			Object{"$isCollection": true, "$Type": ""}},
		{"unterminated collection", []xmltree.Attr{xmltree.A("Type", "Collection(Edm.String")},
			Object{"$Type": "Collection(Edm.String"}},
		{"absent", nil, Object{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Object{}
			setTypedCollection(xmltree.NewElement("Property", tt.attr...), got, aliases)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPathName(t *testing.T) {
	assert.Equal(t, "Worker", pathName(xmltree.NewElement("EntityType", xmltree.A("Name", "Worker"))))
	assert.Equal(t, "com.sap.tea", pathName(xmltree.NewElement("Schema", xmltree.A("Namespace", "com.sap.tea"))))
	assert.Equal(t, "Core.Description", pathName(xmltree.NewElement("Annotation", xmltree.A("Term", "Core.Description"))))
	assert.Equal(t, "", pathName(xmltree.NewElement("Key")))
}
