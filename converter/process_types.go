package converter

import (
	"strings"

	"github.com/erraggy/edmxconv/alias"
	"github.com/erraggy/edmxconv/internal/safeint"
	"github.com/erraggy/edmxconv/xmltree"
)

// processStructuredType handles EntityType and ComplexType; typ is the initial
// output object.
func (cv *conversion) processStructuredType(e *xmltree.Element, s scope, typ Object) (scope, error) {
	if s.schema == nil {
		return s, cv.outside(e, "a Schema")
	}
	copyAttributes(e, typ,
		attrSpec{"OpenType", setIfTrue},
		attrSpec{"HasStream", setIfTrue},
		attrSpec{"Abstract", setIfTrue},
		attrSpec{"BaseType", setValue},
	)
	cv.result[s.qualifiedName(e.AttrValue("Name"))] = typ
	s.typ = typ
	return s, nil
}

// processPropertyRef appends a key property, as {alias: name} when the
// PropertyRef carries an Alias.
func (cv *conversion) processPropertyRef(e *xmltree.Element, s scope) (scope, error) {
	if s.typ == nil {
		return s, cv.outside(e, "an EntityType")
	}
	var key any = e.AttrValue("Name")
	if a := e.AttrValue("Alias"); a != "" {
		key = Object{a: key}
	}
	keys, _ := s.typ["$Key"].([]any)
	s.typ["$Key"] = append(keys, key)
	return s, nil
}

func (cv *conversion) processProperty(e *xmltree.Element, s scope) (scope, error) {
	if s.typ == nil {
		return s, cv.outside(e, "an EntityType or ComplexType")
	}
	property := Object{"$kind": "Property"}
	setTypedCollection(e, property, cv.aliases)
	copyAttributes(e, property,
		attrSpec{"Nullable", setIfFalse},
		attrSpec{"DefaultValue", setValue},
	)
	copyAttributes(e, property, facetAttributes...)
	s.typ[e.AttrValue("Name")] = property
	return s, nil
}

func (cv *conversion) processNavigationProperty(e *xmltree.Element, s scope) (scope, error) {
	if s.typ == nil {
		return s, cv.outside(e, "an EntityType or ComplexType")
	}
	property := Object{"$kind": "NavigationProperty"}
	setTypedCollection(e, property, cv.aliases)
	copyAttributes(e, property,
		attrSpec{"Nullable", setIfFalse},
		attrSpec{"Partner", setValue},
		attrSpec{"ContainsTarget", setIfTrue},
	)
	s.typ[e.AttrValue("Name")] = property
	s.navigationProperty = property
	return s, nil
}

func (cv *conversion) processOnDelete(e *xmltree.Element, s scope) (scope, error) {
	if s.navigationProperty == nil {
		return s, cv.outside(e, "a NavigationProperty")
	}
	s.navigationProperty["$OnDelete"] = e.AttrValue("Action")
	return s, nil
}

func (cv *conversion) processReferentialConstraint(e *xmltree.Element, s scope) (scope, error) {
	if s.navigationProperty == nil {
		return s, cv.outside(e, "a NavigationProperty")
	}
	constraints := getOrCreateStringMap(s.navigationProperty, "$ReferentialConstraint")
	constraints[e.AttrValue("Property")] = e.AttrValue("ReferencedProperty")
	return s, nil
}

// processEnumType starts a fresh implicit value counter for the members of the
// enum type.
func (cv *conversion) processEnumType(e *xmltree.Element, s scope) (scope, error) {
	if s.schema == nil {
		return s, cv.outside(e, "a Schema")
	}
	enum := Object{"$kind": "EnumType"}
	copyAttributes(e, enum,
		attrSpec{"IsFlags", setIfTrue},
		attrSpec{"UnderlyingType", func(value string, present bool) (any, bool) {
			return value, present && value != "Edm.Int32"
		}},
	)
	cv.result[s.qualifiedName(e.AttrValue("Name"))] = enum
	s.enumType = enum
	s.enumCounter = new(int64)
	return s, nil
}

// processEnumMember assigns an explicit Value when given, and otherwise the next
// implicit value. Explicit values do not move the counter. Value is an xs:long,
// so surrounding whitespace is ignored and a blank Value counts as absent.
func (cv *conversion) processEnumMember(e *xmltree.Element, s scope) (scope, error) {
	if s.enumType == nil || s.enumCounter == nil {
		return s, cv.outside(e, "an EnumType")
	}
	name := e.AttrValue("Name")
	if value := e.AttrValue("Value"); strings.TrimSpace(value) != "" {
		if n, ok := safeint.Parse(strings.TrimSpace(value)); ok {
			s.enumType[name] = n
		} else {
			cv.warn(e, "enum member value is not a safe integer; kept as string", value)
			s.enumType[name] = value
		}
		return s, nil
	}
	s.enumType[name] = *s.enumCounter
	*s.enumCounter++
	return s, nil
}

func (cv *conversion) processTerm(e *xmltree.Element, s scope) (scope, error) {
	if s.schema == nil {
		return s, cv.outside(e, "a Schema")
	}
	term := Object{"$kind": "Term"}
	setTypedCollection(e, term, cv.aliases)
	copyAttributes(e, term,
		attrSpec{"Nullable", setIfFalse},
		attrSpec{"BaseTerm", func(value string, _ bool) (any, bool) {
			return alias.Resolve(value, cv.aliases), value != ""
		}},
	)
	copyAttributes(e, term, facetAttributes...)
	cv.result[s.qualifiedName(e.AttrValue("Name"))] = term
	return s, nil
}

func (cv *conversion) processTypeDefinition(e *xmltree.Element, s scope) (scope, error) {
	if s.schema == nil {
		return s, cv.outside(e, "a Schema")
	}
	def := Object{"$kind": "TypeDefinition"}
	copyAttributes(e, def, attrSpec{"UnderlyingType", setValue})
	copyAttributes(e, def, facetAttributes...)
	cv.result[s.qualifiedName(e.AttrValue("Name"))] = def
	return s, nil
}
