package converter

// Object is a JSON object in the converted metadata.
type Object = map[string]any

// getOrCreateObject returns the object stored at key, creating an empty one when
// there is none.
func getOrCreateObject(parent Object, key string) Object {
	if o, ok := parent[key].(Object); ok {
		return o
	}
	o := Object{}
	parent[key] = o
	return o
}

// getOrCreateStringMap is the map[string]string counterpart of getOrCreateObject,
// used for $ReferentialConstraint and $NavigationPropertyBinding.
func getOrCreateStringMap(parent Object, key string) map[string]string {
	if m, ok := parent[key].(map[string]string); ok {
		return m
	}
	m := map[string]string{}
	parent[key] = m
	return m
}
