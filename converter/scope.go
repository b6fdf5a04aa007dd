package converter

// scope holds the innermost enclosing constructs seen on the way down to an
// element. A processor returns a modified copy for the element's subtree, so
// siblings never observe each other's scope.
type scope struct {
	// namespace of the enclosing Schema
	namespace string
	// schema is the output object of the enclosing Schema
	schema Object
	// typ is the enclosing EntityType or ComplexType
	typ Object
	// container is the enclosing EntityContainer and containerName its qualified name
	container     Object
	containerName string
	// entitySet is the enclosing EntitySet or Singleton
	entitySet Object
	// enumType is the enclosing EnumType; enumCounter is the next implicit member value
	enumType    Object
	enumCounter *int64
	// navigationProperty is the enclosing NavigationProperty
	navigationProperty Object
	// actionOrFunction is the enclosing Action or Function overload
	actionOrFunction Object
	// reference is the enclosing Reference
	reference Object
	// annotationTarget is the bucket opened by the enclosing Annotations element
	annotationTarget Object
	// annotationsQualifier is the Qualifier of the enclosing Annotations element
	annotationsQualifier string
	// annotationKey is the key of the enclosing Annotation, e.g. "@Core.Description#short"
	annotationKey string
}

// qualifiedName returns the name qualified with the current namespace.
func (s scope) qualifiedName(name string) string {
	return s.namespace + "." + name
}
