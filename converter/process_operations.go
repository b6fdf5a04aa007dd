package converter

import "github.com/erraggy/edmxconv/xmltree"

// processActionOrFunction appends a new overload to the list stored under the
// qualified name.
func (cv *conversion) processActionOrFunction(e *xmltree.Element, s scope) (scope, error) {
	if s.schema == nil {
		return s, cv.outside(e, "a Schema")
	}
	name := s.qualifiedName(e.AttrValue("Name"))
	overload := Object{
		"$kind":      e.Local,
		"$Parameter": []Object{},
	}
	copyAttributes(e, overload,
		attrSpec{"IsBound", setIfTrue},
		attrSpec{"EntitySetPath", setValue},
		attrSpec{"IsComposable", setIfTrue},
	)
	overloads, _ := cv.result[name].([]Object)
	cv.result[name] = append(overloads, overload)
	s.actionOrFunction = overload
	return s, nil
}

func (cv *conversion) processParameter(e *xmltree.Element, s scope) (scope, error) {
	if s.actionOrFunction == nil {
		return s, cv.outside(e, "an Action or Function")
	}
	param := Object{}
	setTypedCollection(e, param, cv.aliases)
	copyAttributes(e, param,
		attrSpec{"Name", setValue},
		attrSpec{"Nullable", setIfFalse},
	)
	copyAttributes(e, param, facetAttributes...)
	params, _ := s.actionOrFunction["$Parameter"].([]Object)
	s.actionOrFunction["$Parameter"] = append(params, param)
	return s, nil
}

func (cv *conversion) processReturnType(e *xmltree.Element, s scope) (scope, error) {
	if s.actionOrFunction == nil {
		return s, cv.outside(e, "an Action or Function")
	}
	ret := Object{}
	setTypedCollection(e, ret, cv.aliases)
	copyAttributes(e, ret, attrSpec{"Nullable", setIfFalse})
	copyAttributes(e, ret, facetAttributes...)
	s.actionOrFunction["$ReturnType"] = ret
	return s, nil
}
