package converter

import (
	"math"
	"strconv"
	"strings"

	"github.com/erraggy/edmxconv/alias"
	"github.com/erraggy/edmxconv/internal/safeint"
)

// typedValue maps an annotation expression kind and its literal to the JSON value
// stored for the annotation. kind is either the name of an inline attribute of an
// Annotation element or the local name of its child expression element.
//
// degraded reports that the literal could not be represented natively and was
// boxed as {"$Int": literal} or {"$Float": literal}.
func typedValue(kind, value string, aliases alias.Table) (v any, degraded bool) {
	switch kind {
	case "AnnotationPath", "NavigationPropertyPath", "Path", "PropertyPath":
		value = alias.ResolveInPath(value, aliases)
		fallthrough
	case "Binary", "Date", "DateTimeOffset", "Decimal", "Duration", "Guid", "TimeOfDay", "UrlRef":
		return Object{"$" + kind: value}, false
	case "Bool":
		return value == "true", false
	case "EnumMember":
		members := strings.Split(value, " ")
		for i, m := range members {
			members[i] = alias.ResolveInPath(m, aliases)
		}
		return Object{"$EnumMember": strings.Join(members, " ")}, false
	case "Float":
		return floatValue(value)
	case "Int":
		if n, ok := safeint.Parse(strings.TrimSpace(value)); ok {
			return n, false
		}
		return Object{"$Int": value}, true
	case "Null":
		return nil, false
	case "String":
		return value, false
	default:
		return true, false
	}
}

// floatValue boxes the special literals NaN, INF and -INF, and any literal that
// does not parse to a finite float64. Surrounding whitespace is collapsed as for
// xs:double; an unparsable literal is boxed as written.
func floatValue(value string) (any, bool) {
	literal := strings.TrimSpace(value)
	switch literal {
	case "NaN", "INF", "-INF":
		return Object{"$Float": literal}, false
	}
	f, err := strconv.ParseFloat(literal, 64)
	if err != nil || math.IsInf(f, 0) || math.IsNaN(f) {
		return Object{"$Float": value}, true
	}
	return f, false
}
