package converter

import (
	"github.com/erraggy/edmxconv/alias"
	"github.com/erraggy/edmxconv/xmltree"
)

// processAnnotations opens the bucket for the resolved Target under the schema's
// $Annotations. Several Annotations elements for one target share the bucket.
func (cv *conversion) processAnnotations(e *xmltree.Element, s scope) (scope, error) {
	if s.schema == nil {
		return s, cv.outside(e, "a Schema")
	}
	target := alias.ResolveInPath(e.AttrValue("Target"), cv.aliases)
	annotations := getOrCreateObject(s.schema, "$Annotations")
	// Merge, don't replace. Replacing the bucket would silently drop the
	// annotations of an earlier Annotations element for the same target.
	s.annotationTarget = getOrCreateObject(annotations, target)
	s.annotationsQualifier = e.AttrValue("Qualifier")
	return s, nil
}

// processAnnotation stores the annotation under "@term[#qualifier]". The value
// comes from the first attribute other than Term and Qualifier, typed by the
// attribute's name, and defaults to true. A child expression replaces it in
// postAnnotation.
func (cv *conversion) processAnnotation(e *xmltree.Element, s scope) (scope, error) {
	if s.annotationTarget == nil {
		return s, cv.outside(e, "an Annotations element")
	}
	key := "@" + alias.Resolve(e.AttrValue("Term"), cv.aliases)
	qualifier := s.annotationsQualifier
	if qualifier == "" {
		qualifier = e.AttrValue("Qualifier")
	}
	if qualifier != "" {
		key += "#" + qualifier
	}

	var value any = true
	for _, a := range e.Attrs {
		if name := a.Name(); name != "Term" && name != "Qualifier" {
			v, degraded := typedValue(name, a.Value, cv.aliases)
			if degraded {
				cv.warn(e, name+" literal cannot be represented natively; kept as string", a.Value)
			}
			value = v
			break
		}
	}

	s.annotationKey = key
	s.annotationTarget[key] = value
	return s, nil
}

// postAnnotation overrides the annotation's value with the value of its first
// child expression, if it has one.
func (cv *conversion) postAnnotation(e *xmltree.Element, results []any, s scope) error {
	if results == nil {
		return nil
	}
	if s.annotationTarget == nil {
		return cv.outside(e, "an Annotations element")
	}
	s.annotationTarget[s.annotationKey] = results[0]
	return nil
}
