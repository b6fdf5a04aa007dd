// Package mcpserver implements an MCP (Model Context Protocol) server
// that exposes edmxconv capabilities as MCP tools over stdio.
package mcpserver

import (
	"context"
	"fmt"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	"github.com/erraggy/edmxconv"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

const serverInstructions = `edmxconv MCP server: converts OData CSDL XML metadata (EDMX) to the CSDL JSON representation, resolves aliases, and lists the model elements of a document.

Configuration: All defaults are configurable via EDMXCONV_* environment variables set in your MCP client config. The Go MCP SDK does not support initializationOptions; use env vars instead.

Key settings:
- EDMXCONV_CACHE_ENABLED (default: true): disable conversion caching entirely
- EDMXCONV_CACHE_FILE_TTL (default: 15m): cache TTL for local metadata files
- EDMXCONV_CACHE_CONTENT_TTL (default: 15m): cache TTL for inline metadata content
- EDMXCONV_FORMAT (default: json): default output format for convert_metadata (json or yaml)
- EDMXCONV_INCLUDE_INFO (default: true): include info-level issues by default
- EDMXCONV_STRICT (default: false): fail conversions with warnings by default
- EDMXCONV_WALK_LIMIT (default: 100): default result limit for walk_metadata
- EDMXCONV_WALK_DETAIL_LIMIT (default: 25): default limit in detail mode
- EDMXCONV_MAX_INLINE_SIZE (default: 10MiB): maximum size of inline content

Caching: Converted documents are cached per session. File entries use path+mtime as key (auto-invalidated on change). Inline content is keyed by its SHA-256 hash. A background sweeper removes expired entries every 60s.`

// Run starts the MCP server over stdio and blocks until the client disconnects
// or the context is cancelled.
func Run(ctx context.Context) error {
	if cfg.CacheEnabled {
		metadataCache.startSweeper(ctx, cfg.CacheSweepInterval)
	}

	server := mcp.NewServer(
		&mcp.Implementation{Name: "edmxconv", Version: edmxconv.Version()},
		&mcp.ServerOptions{
			Instructions: serverInstructions,
		},
	)
	registerAllTools(server)
	return server.Run(ctx, &mcp.StdioTransport{})
}

func registerAllTools(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "convert_metadata",
		Description: "Convert an OData CSDL XML metadata document (edmx:Edmx) to its CSDL JSON representation. Returns the converted document (json or yaml) together with conversion issues. Use output to write to a file instead of returning inline. Use strict=true to fail when any warning is reported. Defaults are configurable via EDMXCONV_FORMAT, EDMXCONV_INCLUDE_INFO and EDMXCONV_STRICT.",
	}, handleConvertMetadata)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "resolve_alias",
		Description: "Resolve alias-qualified names (e.g. Common.Label or self.Container/Set@Core.Description) against the aliases declared in a metadata document. Without names, returns the document's alias table.",
	}, handleResolveAlias)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "walk_metadata",
		Description: "Walk and query the model elements of a converted metadata document: schemas, entity types, complex types, enum types, type definitions, terms, actions, functions and entity containers. Filter by kind or by namespace-qualified name (exact match, or glob with * and ?). Returns summaries (name, kind, member count) by default or the full converted objects with detail=true. Use group_by=kind or group_by=namespace to get distribution counts instead of individual items. Default limit is configurable via EDMXCONV_WALK_LIMIT (default 100, 25 in detail mode).",
	}, handleWalkMetadata)
}

// paginate applies offset/limit pagination to a slice, returning the
// requested page. A non-positive limit defaults to cfg.WalkLimit.
func paginate[T any](items []T, offset, limit int) []T {
	if limit <= 0 {
		limit = cfg.WalkLimit
	}
	if limit > cfg.MaxLimit {
		limit = cfg.MaxLimit
	}
	if offset < 0 || offset >= len(items) {
		return nil
	}
	end := offset + limit
	if end < offset || end > len(items) { // overflow or beyond slice
		end = len(items)
	}
	return items[offset:end]
}

// detailLimit returns a lower default limit for detail mode output.
// When the user hasn't specified an explicit limit (limit <= 0),
// detail mode defaults to cfg.WalkDetailLimit to keep output manageable.
func detailLimit(limit int) int {
	if limit <= 0 {
		return cfg.WalkDetailLimit
	}
	return limit
}

// makeSlice returns nil when n is 0 (preserving omitempty JSON semantics),
// otherwise returns make([]T, 0, n) for pre-allocated appending.
func makeSlice[T any](n int) []T {
	if n == 0 {
		return nil
	}
	return make([]T, 0, n)
}

// sanitizeError strips absolute filesystem paths from error messages
// to prevent leaking internal directory structure to MCP clients.
var pathPattern = regexp.MustCompile(`(?:/(?:home|tmp|var|Users|etc|opt|usr|private|root|mnt|srv|run|snap|nix)[a-zA-Z0-9._/-]*)`)

func sanitizeError(err error) string {
	if err == nil {
		return ""
	}
	return pathPattern.ReplaceAllString(err.Error(), "<path>")
}

// errResult creates an MCP error result from an error.
func errResult(err error) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		IsError: true,
		Content: []mcp.Content{&mcp.TextContent{Text: sanitizeError(err)}},
	}
}

// groupCount represents a single group in group_by results.
type groupCount struct {
	Key   string `json:"key"`
	Count int    `json:"count"`
}

// groupAndSort groups items by key, sorts by count descending (ties
// broken alphabetically by key), and returns the sorted groups.
func groupAndSort[T any](items []T, keyFn func(T) []string) []groupCount {
	counts := make(map[string]int)
	for _, item := range items {
		for _, key := range keyFn(item) {
			counts[key]++
		}
	}
	groups := make([]groupCount, 0, len(counts))
	for key, count := range counts {
		groups = append(groups, groupCount{Key: key, Count: count})
	}
	sort.Slice(groups, func(i, j int) bool {
		if groups[i].Count != groups[j].Count {
			return groups[i].Count > groups[j].Count
		}
		return groups[i].Key < groups[j].Key
	})
	return groups
}

// validateGroupBy checks that group_by is a valid value and is not combined with detail.
func validateGroupBy(groupBy string, detail bool, allowed []string) error {
	if groupBy == "" {
		return nil
	}
	if detail {
		return fmt.Errorf("cannot use both group_by and detail")
	}
	for _, a := range allowed {
		if strings.EqualFold(groupBy, a) {
			return nil
		}
	}
	return fmt.Errorf("invalid group_by value %q; valid values: %s", groupBy, strings.Join(allowed, ", "))
}

// validateGlobPattern checks whether a glob pattern is syntactically valid.
// Call this once before a filter loop so matchGlobName never
// encounter an invalid pattern at match time.
func validateGlobPattern(pattern string) error {
	if pattern == "" || !strings.ContainsAny(pattern, "*?[") {
		return nil
	}
	if _, err := filepath.Match(pattern, ""); err != nil {
		return fmt.Errorf("invalid glob pattern %q: %w", pattern, err)
	}
	return nil
}
