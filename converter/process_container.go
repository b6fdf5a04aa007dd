package converter

import (
	"strings"

	"github.com/erraggy/edmxconv/alias"
	"github.com/erraggy/edmxconv/xmltree"
)

func (cv *conversion) processEntityContainer(e *xmltree.Element, s scope) (scope, error) {
	if s.schema == nil {
		return s, cv.outside(e, "a Schema")
	}
	s.containerName = s.qualifiedName(e.AttrValue("Name"))
	s.container = Object{"$kind": "EntityContainer"}
	cv.result[s.containerName] = s.container
	cv.result["$EntityContainer"] = s.containerName
	return s, nil
}

func (cv *conversion) processEntitySet(e *xmltree.Element, s scope) (scope, error) {
	if s.container == nil {
		return s, cv.outside(e, "an EntityContainer")
	}
	set := Object{"$kind": "EntitySet"}
	if typ, ok := e.Attr("EntityType"); ok {
		set["$Type"] = alias.Resolve(typ, cv.aliases)
	}
	copyAttributes(e, set, attrSpec{"IncludeInServiceDocument", setIfFalse})
	s.container[e.AttrValue("Name")] = set
	s.entitySet = set
	return s, nil
}

func (cv *conversion) processSingleton(e *xmltree.Element, s scope) (scope, error) {
	if s.container == nil {
		return s, cv.outside(e, "an EntityContainer")
	}
	singleton := Object{"$kind": "Singleton"}
	if typ, ok := e.Attr("Type"); ok {
		singleton["$Type"] = alias.Resolve(typ, cv.aliases)
	}
	s.container[e.AttrValue("Name")] = singleton
	s.entitySet = singleton
	return s, nil
}

func (cv *conversion) processNavigationPropertyBinding(e *xmltree.Element, s scope) (scope, error) {
	if s.entitySet == nil {
		return s, cv.outside(e, "an EntitySet or Singleton")
	}
	bindings := getOrCreateStringMap(s.entitySet, "$NavigationPropertyBinding")
	bindings[e.AttrValue("Path")] = resolveTargetPath(e.AttrValue("Target"), s, cv.aliases)
	return s, nil
}

// processImport handles ActionImport and FunctionImport; what is "Action" or
// "Function".
func (cv *conversion) processImport(what string, e *xmltree.Element, s scope) (scope, error) {
	if s.container == nil {
		return s, cv.outside(e, "an EntityContainer")
	}
	imp := Object{"$kind": what + "Import"}
	if target, ok := e.Attr(what); ok {
		imp["$"+what] = alias.Resolve(target, cv.aliases)
	}
	copyAttributes(e, imp,
		attrSpec{"EntitySet", func(value string, present bool) (any, bool) {
			return resolveTargetPath(value, s, cv.aliases), present
		}},
		attrSpec{"IncludeInServiceDocument", setIfFalse},
	)
	s.container[e.AttrValue("Name")] = imp
	return s, nil
}

// resolveTargetPath resolves aliases in path and makes a path of the form
// "<container>/<rest>" relative to the current container.
func resolveTargetPath(path string, s scope, aliases alias.Table) string {
	if path == "" {
		return path
	}
	path = alias.ResolveInPath(path, aliases)
	if strings.Count(path, "/") == 1 {
		if first, rest, _ := strings.Cut(path, "/"); first == s.containerName {
			return rest
		}
	}
	return path
}
