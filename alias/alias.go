// Package alias resolves CSDL alias-qualified names to namespace-qualified names.
//
// A CSDL document may declare a short alias for a namespace, either on a
// Schema element or on an edmx:Include inside a Reference:
//
//	<edmx:Include Namespace="com.sap.vocabularies.Common.v1" Alias="Common"/>
//
// Names such as "Common.Label" then stand for "com.sap.vocabularies.Common.v1.Label".
// A name is considered alias-shaped only when it contains exactly one dot; names with
// zero or several dots are returned unchanged. Because a namespace always contains at
// least one dot or is itself not an alias, resolution is idempotent.
package alias

import "strings"

// Table maps an alias to the namespace it stands for.
type Table map[string]string

// Add records alias as a short name for namespace. An empty alias is ignored.
func (t Table) Add(alias, namespace string) {
	if alias == "" {
		return
	}
	t[alias] = namespace
}

// Clone returns a copy of the table.
func (t Table) Clone() Table {
	c := make(Table, len(t))
	for k, v := range t {
		c[k] = v
	}
	return c
}

// Resolve replaces the alias in a qualified name like "Alias.Name" by its namespace.
// Names without exactly one dot, or whose prefix is not a known alias, are returned
// unchanged.
func Resolve(name string, aliases Table) string {
	dot := strings.IndexByte(name, '.')
	if dot < 0 || strings.IndexByte(name[dot+1:], '.') >= 0 {
		return name
	}
	if namespace := aliases[name[:dot]]; namespace != "" {
		return namespace + "." + name[dot+1:]
	}
	return name
}

// ResolveInPath resolves every alias in a path such as
// "Alias.Container/Set/Nav@Alias.Term". Each slash-separated segment and the term
// following "@" are resolved independently.
func ResolveInPath(path string, aliases Table) string {
	if !strings.Contains(path, ".") {
		return path
	}

	var term string
	if at := strings.IndexByte(path, '@'); at >= 0 {
		term = "@" + Resolve(path[at+1:], aliases)
		path = path[:at]
	}

	segments := strings.Split(path, "/")
	for i, segment := range segments {
		segments[i] = Resolve(segment, aliases)
	}
	return strings.Join(segments, "/") + term
}
