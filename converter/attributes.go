package converter

import (
	"strings"

	"github.com/erraggy/edmxconv/alias"
	"github.com/erraggy/edmxconv/internal/safeint"
	"github.com/erraggy/edmxconv/xmltree"
)

// attrRule converts an attribute value into its output value. The boolean result
// reports whether the output key is written at all.
type attrRule func(value string, present bool) (any, bool)

// attrSpec pairs an attribute name with its rule. The output key is "$" + name.
type attrSpec struct {
	name string
	rule attrRule
}

// setValue copies the attribute verbatim when present.
func setValue(value string, present bool) (any, bool) {
	return value, present
}

// setIfTrue records true only for the literal "true"; false is the CSDL default.
func setIfTrue(value string, _ bool) (any, bool) {
	return true, value == "true"
}

// setIfFalse records false only for the literal "false"; true is the CSDL default.
func setIfFalse(value string, _ bool) (any, bool) {
	return false, value == "false"
}

// setNumber records decimal integers as int64 and any other literal, such as
// "max" or "variable", verbatim.
func setNumber(value string, present bool) (any, bool) {
	if !present || value == "" {
		return nil, false
	}
	if n, ok := safeint.Parse(value); ok {
		return n, true
	}
	return value, true
}

// facetAttributes are shared by Property, Parameter, ReturnType, Term and
// TypeDefinition.
var facetAttributes = []attrSpec{
	{"MaxLength", setNumber},
	{"Precision", setNumber},
	{"Scale", setNumber},
	{"SRID", setValue},
	{"Unicode", setIfFalse},
}

// copyAttributes writes the attributes of e selected by specs into target.
func copyAttributes(e *xmltree.Element, target Object, specs ...attrSpec) {
	for _, spec := range specs {
		value, present := e.Attr(spec.name)
		if out, ok := spec.rule(value, present); ok {
			target["$"+spec.name] = out
		}
	}
}

// setTypedCollection writes $Type, unwrapping "Collection(X)" into
// $isCollection and X. $Type is omitted when the element has no Type.
func setTypedCollection(e *xmltree.Element, target Object, aliases alias.Table) {
	typ, ok := e.Attr("Type")
	if !ok {
		return
	}
	if inner, ok := strings.CutPrefix(typ, "Collection("); ok {
		if inner, ok = strings.CutSuffix(inner, ")"); ok {
			target["$isCollection"] = true
			typ = inner
		}
	}
	target["$Type"] = alias.Resolve(typ, aliases)
}

// pathName returns the attribute that identifies e within its parent, used to
// make element paths readable.
func pathName(e *xmltree.Element) string {
	for _, name := range [...]string{"Name", "Namespace", "Term", "Target", "Uri"} {
		if v, ok := e.Attr(name); ok && v != "" {
			return v
		}
	}
	return ""
}
