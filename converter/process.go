package converter

import (
	"github.com/erraggy/edmxconv/alias"
	"github.com/erraggy/edmxconv/xmltree"
)

// process runs the processor selected by tag on e and returns the scope for e's
// subtree.
func (cv *conversion) process(tag processorTag, e *xmltree.Element, s scope) (scope, error) {
	switch tag {
	case procNone:
		return s, nil
	case procAlias:
		return cv.processAlias(e, s)
	case procEdmx:
		return cv.processEdmx(e, s)
	case procReference:
		return cv.processReference(e, s)
	case procInclude:
		return cv.processInclude(e, s)
	case procIncludeAnnotations:
		return cv.processIncludeAnnotations(e, s)
	case procSchema:
		return cv.processSchema(e, s)
	case procEntityType:
		return cv.processStructuredType(e, s, Object{"$kind": "EntityType", "$Key": []any{}})
	case procComplexType:
		return cv.processStructuredType(e, s, Object{"$kind": "ComplexType"})
	case procPropertyRef:
		return cv.processPropertyRef(e, s)
	case procProperty:
		return cv.processProperty(e, s)
	case procNavigationProperty:
		return cv.processNavigationProperty(e, s)
	case procOnDelete:
		return cv.processOnDelete(e, s)
	case procReferentialConstraint:
		return cv.processReferentialConstraint(e, s)
	case procEntityContainer:
		return cv.processEntityContainer(e, s)
	case procEntitySet:
		return cv.processEntitySet(e, s)
	case procSingleton:
		return cv.processSingleton(e, s)
	case procNavigationPropertyBinding:
		return cv.processNavigationPropertyBinding(e, s)
	case procActionImport:
		return cv.processImport("Action", e, s)
	case procFunctionImport:
		return cv.processImport("Function", e, s)
	case procActionOrFunction:
		return cv.processActionOrFunction(e, s)
	case procParameter:
		return cv.processParameter(e, s)
	case procReturnType:
		return cv.processReturnType(e, s)
	case procEnumType:
		return cv.processEnumType(e, s)
	case procEnumMember:
		return cv.processEnumMember(e, s)
	case procTerm:
		return cv.processTerm(e, s)
	case procTypeDefinition:
		return cv.processTypeDefinition(e, s)
	case procAnnotations:
		return cv.processAnnotations(e, s)
	case procAnnotation:
		return cv.processAnnotation(e, s)
	}
	return s, cv.errorf(e, "unknown processor %s", tag)
}

// postProcess runs the post-processor selected by tag on e. results holds the
// values of e's recognized children, or nil when there were none.
func (cv *conversion) postProcess(tag postProcessorTag, e *xmltree.Element, results []any, s scope) (any, error) {
	switch tag {
	case postNone:
		return nil, nil
	case postAnnotation:
		return nil, cv.postAnnotation(e, results, s)
	case postLeaf:
		text := e.TextContent()
		v, degraded := typedValue(e.Local, text, cv.aliases)
		if degraded {
			cv.warn(e, e.Local+" literal cannot be represented natively; kept as string", text)
		}
		return v, nil
	case postLabeledElementReference:
		return Object{"$LabeledElementReference": alias.Resolve(e.TextContent(), cv.aliases)}, nil
	}
	return nil, cv.errorf(e, "unknown post-processor %s", tag)
}

// processAlias records the Alias of an Include or Schema element.
func (cv *conversion) processAlias(e *xmltree.Element, s scope) (scope, error) {
	cv.aliases.Add(e.AttrValue("Alias"), e.AttrValue("Namespace"))
	return s, nil
}
