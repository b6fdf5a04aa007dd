package mcpserver

import (
	"context"
	"path/filepath"
	"sort"
	"strings"

	"github.com/erraggy/edmxconv/converter"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

type walkMetadataInput struct {
	Metadata  metadataInput `json:"metadata"            jsonschema:"The EDMX metadata document to walk"`
	Kind      string        `json:"kind,omitempty"      jsonschema:"Filter by kind (Schema\\, EntityType\\, ComplexType\\, EnumType\\, TypeDefinition\\, Term\\, Action\\, Function\\, EntityContainer)"`
	Name      string        `json:"name,omitempty"      jsonschema:"Filter by qualified name (exact match\\, or glob with * and ? for pattern matching\\, e.g. *.Worker or tea_busi.*)"`
	Namespace string        `json:"namespace,omitempty" jsonschema:"Only show elements of this schema namespace"`
	Detail    bool          `json:"detail,omitempty"    jsonschema:"Return the full converted objects. WARNING: produces large output without filters on big documents."`
	GroupBy   string        `json:"group_by,omitempty"  jsonschema:"Group results and return counts instead of individual items. Values: kind\\, namespace"`
	Limit     int           `json:"limit,omitempty"     jsonschema:"Maximum results (default 100)"`
	Offset    int           `json:"offset,omitempty"    jsonschema:"Skip the first N results (for pagination)"`
}

// modelElement is a top-level member of a converted document.
type modelElement struct {
	name      string
	kind      string
	namespace string
	value     any
}

type elementSummary struct {
	Name        string `json:"name"`
	Kind        string `json:"kind"`
	Namespace   string `json:"namespace,omitempty"`
	MemberCount int    `json:"member_count"`
}

type elementDetail struct {
	Name      string `json:"name"`
	Kind      string `json:"kind"`
	Namespace string `json:"namespace,omitempty"`
	Value     any    `json:"value"`
}

type walkMetadataOutput struct {
	Total     int              `json:"total"`
	Matched   int              `json:"matched"`
	Returned  int              `json:"returned"`
	Summaries []elementSummary `json:"summaries,omitempty"`
	Elements  []elementDetail  `json:"elements,omitempty"`
	Groups    []groupCount     `json:"groups,omitempty"`
}

func handleWalkMetadata(_ context.Context, _ *mcp.CallToolRequest, input walkMetadataInput) (*mcp.CallToolResult, any, error) {
	if err := validateGroupBy(input.GroupBy, input.Detail, []string{"kind", "namespace"}); err != nil {
		return errResult(err), nil, nil
	}
	if err := validateGlobPattern(input.Name); err != nil {
		return errResult(err), nil, nil
	}

	result, err := input.Metadata.resolve()
	if err != nil {
		return errResult(err), nil, nil
	}

	all := collectElements(result.Metadata)
	filtered := filterElements(all, input)

	if input.GroupBy != "" {
		groups := groupAndSort(filtered, func(el modelElement) []string {
			switch strings.ToLower(input.GroupBy) {
			case "kind":
				return []string{el.kind}
			case "namespace":
				return []string{el.namespace}
			default:
				return nil
			}
		})
		paged := paginate(groups, input.Offset, input.Limit)
		return nil, walkMetadataOutput{
			Total:    len(all),
			Matched:  len(filtered),
			Returned: len(paged),
			Groups:   paged,
		}, nil
	}

	limit := input.Limit
	if input.Detail {
		limit = detailLimit(limit)
	}
	returned := paginate(filtered, input.Offset, limit)

	output := walkMetadataOutput{
		Total:    len(all),
		Matched:  len(filtered),
		Returned: len(returned),
	}

	if input.Detail {
		output.Elements = makeSlice[elementDetail](len(returned))
		for _, el := range returned {
			output.Elements = append(output.Elements, elementDetail{
				Name:      el.name,
				Kind:      el.kind,
				Namespace: el.namespace,
				Value:     el.value,
			})
		}
	} else {
		output.Summaries = makeSlice[elementSummary](len(returned))
		for _, el := range returned {
			output.Summaries = append(output.Summaries, elementSummary{
				Name:        el.name,
				Kind:        el.kind,
				Namespace:   el.namespace,
				MemberCount: memberCount(el.value),
			})
		}
	}

	return nil, output, nil
}

// collectElements lists the schemas and schema children of a converted
// document, sorted by name. Document-level keys such as $Version are skipped.
func collectElements(doc converter.Object) []modelElement {
	var namespaces []string
	for name, v := range doc {
		if o, ok := v.(converter.Object); ok && o["$kind"] == "Schema" {
			namespaces = append(namespaces, name)
		}
	}
	// Longest namespace first so nested namespaces win.
	sort.Slice(namespaces, func(i, j int) bool { return len(namespaces[i]) > len(namespaces[j]) })

	elements := make([]modelElement, 0, len(doc))
	for name, v := range doc {
		if strings.HasPrefix(name, "$") {
			continue
		}
		kind := elementKind(v)
		if kind == "" {
			continue
		}
		el := modelElement{name: name, kind: kind, value: v}
		if kind == "Schema" {
			el.namespace = name
		} else {
			for _, ns := range namespaces {
				if strings.HasPrefix(name, ns+".") {
					el.namespace = ns
					break
				}
			}
		}
		elements = append(elements, el)
	}
	sort.Slice(elements, func(i, j int) bool { return elements[i].name < elements[j].name })
	return elements
}

// elementKind returns $kind of an object, or of the first overload of an
// Action or Function.
func elementKind(v any) string {
	switch t := v.(type) {
	case converter.Object:
		kind, _ := t["$kind"].(string)
		return kind
	case []converter.Object:
		if len(t) > 0 {
			kind, _ := t[0]["$kind"].(string)
			return kind
		}
	}
	return ""
}

// memberCount counts the named members of an object (keys not starting with
// $ or @) or the overloads of an operation.
func memberCount(v any) int {
	switch t := v.(type) {
	case converter.Object:
		n := 0
		for k := range t {
			if !strings.HasPrefix(k, "$") && !strings.HasPrefix(k, "@") {
				n++
			}
		}
		return n
	case []converter.Object:
		return len(t)
	}
	return 0
}

func filterElements(elements []modelElement, input walkMetadataInput) []modelElement {
	var filtered []modelElement
	for _, el := range elements {
		if input.Kind != "" && !strings.EqualFold(el.kind, input.Kind) {
			continue
		}
		if input.Namespace != "" && el.namespace != input.Namespace {
			continue
		}
		if input.Name != "" && !matchGlobName(el.name, input.Name) {
			continue
		}
		filtered = append(filtered, el)
	}
	return filtered
}

// matchGlobName matches a name case-insensitively, as a glob when the pattern
// contains * or ?.
func matchGlobName(name, pattern string) bool {
	if strings.ContainsAny(pattern, "*?") {
		matched, err := filepath.Match(strings.ToLower(pattern), strings.ToLower(name))
		return err == nil && matched
	}
	return strings.EqualFold(name, pattern)
}
