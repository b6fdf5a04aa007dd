package mcpserver

import (
	"context"

	"github.com/erraggy/edmxconv/alias"
	"github.com/erraggy/edmxconv/internal/maputil"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

type resolveAliasInput struct {
	Metadata metadataInput `json:"metadata"        jsonschema:"The EDMX metadata document whose aliases are used"`
	Names    []string      `json:"names,omitempty" jsonschema:"Names or paths to resolve\\, e.g. Common.Label or self.Container/Set@Core.Description. If omitted the alias table is returned."`
}

type aliasEntry struct {
	Alias     string `json:"alias"`
	Namespace string `json:"namespace"`
}

type resolvedName struct {
	Name     string `json:"name"`
	Resolved string `json:"resolved"`
	Changed  bool   `json:"changed"`
}

type resolveAliasOutput struct {
	AliasCount int            `json:"alias_count"`
	Aliases    []aliasEntry   `json:"aliases,omitempty"`
	Resolved   []resolvedName `json:"resolved,omitempty"`
}

func handleResolveAlias(_ context.Context, _ *mcp.CallToolRequest, input resolveAliasInput) (*mcp.CallToolResult, resolveAliasOutput, error) {
	result, err := input.Metadata.resolve()
	if err != nil {
		return errResult(err), resolveAliasOutput{}, nil
	}

	output := resolveAliasOutput{AliasCount: len(result.Aliases)}

	if len(input.Names) == 0 {
		output.Aliases = makeSlice[aliasEntry](len(result.Aliases))
		for _, a := range maputil.SortedKeys(result.Aliases) {
			output.Aliases = append(output.Aliases, aliasEntry{Alias: a, Namespace: result.Aliases[a]})
		}
		return nil, output, nil
	}

	output.Resolved = make([]resolvedName, 0, len(input.Names))
	for _, name := range input.Names {
		resolved := alias.ResolveInPath(name, result.Aliases)
		output.Resolved = append(output.Resolved, resolvedName{
			Name:     name,
			Resolved: resolved,
			Changed:  resolved != name,
		})
	}
	return nil, output, nil
}
