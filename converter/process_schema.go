package converter

import "github.com/erraggy/edmxconv/xmltree"

func (cv *conversion) processEdmx(e *xmltree.Element, s scope) (scope, error) {
	copyAttributes(e, cv.result, attrSpec{"Version", setValue})
	return s, nil
}

// processReference opens the bucket for a referenced document, keyed by its URI.
func (cv *conversion) processReference(e *xmltree.Element, s scope) (scope, error) {
	refs := getOrCreateObject(cv.result, "$Reference")
	s.reference = Object{}
	refs[e.AttrValue("Uri")] = s.reference
	return s, nil
}

func (cv *conversion) processInclude(e *xmltree.Element, s scope) (scope, error) {
	if s.reference == nil {
		return s, cv.outside(e, "a Reference")
	}
	includes, _ := s.reference["$Include"].([]string)
	s.reference["$Include"] = append(includes, e.AttrValue("Namespace"))
	return s, nil
}

func (cv *conversion) processIncludeAnnotations(e *xmltree.Element, s scope) (scope, error) {
	if s.reference == nil {
		return s, cv.outside(e, "a Reference")
	}
	include := Object{"$TermNamespace": e.AttrValue("TermNamespace")}
	copyAttributes(e, include,
		attrSpec{"TargetNamespace", setValue},
		attrSpec{"Qualifier", setValue},
	)
	list, _ := s.reference["$IncludeAnnotations"].([]Object)
	s.reference["$IncludeAnnotations"] = append(list, include)
	return s, nil
}

// processSchema makes the Schema's namespace current for the subtree. Several
// Schema elements with the same namespace share one output object.
func (cv *conversion) processSchema(e *xmltree.Element, s scope) (scope, error) {
	s.namespace = e.AttrValue("Namespace")
	// Merge, don't replace. Replacing the object would silently drop what an
	// earlier Schema with the same namespace declared.
	s.schema = getOrCreateObject(cv.result, s.namespace)
	s.schema["$kind"] = "Schema"
	cv.log.Debug("converting schema", "namespace", s.namespace)
	return s, nil
}
