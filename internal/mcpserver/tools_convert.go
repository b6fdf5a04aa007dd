package mcpserver

import (
	"context"
	"fmt"
	"os"

	"github.com/erraggy/edmxconv/converter"
	"github.com/erraggy/edmxconv/internal/fileutil"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

type convertMetadataInput struct {
	Metadata    metadataInput `json:"metadata"               jsonschema:"The EDMX metadata document to convert"`
	Format      string        `json:"format,omitempty"       jsonschema:"Output format: json or yaml (default from EDMXCONV_FORMAT\\, json)"`
	Strict      *bool         `json:"strict,omitempty"       jsonschema:"Fail the conversion when any warning is reported"`
	IncludeInfo *bool         `json:"include_info,omitempty" jsonschema:"Include info-level issues such as skipped elements"`
	Output      string        `json:"output,omitempty"       jsonschema:"File path to write the converted document. If omitted the document is returned inline."`
}

type convertIssue struct {
	Severity string `json:"severity"`
	Path     string `json:"path"`
	Message  string `json:"message"`
	Value    string `json:"value,omitempty"`
}

type convertMetadataOutput struct {
	Version      string         `json:"version,omitempty"`
	Format       string         `json:"format"`
	AliasCount   int            `json:"alias_count"`
	InfoCount    int            `json:"info_count"`
	WarningCount int            `json:"warning_count"`
	Issues       []convertIssue `json:"issues,omitempty"`
	WrittenTo    string         `json:"written_to,omitempty"`
	Document     string         `json:"document,omitempty"`
}

func handleConvertMetadata(_ context.Context, _ *mcp.CallToolRequest, input convertMetadataInput) (*mcp.CallToolResult, convertMetadataOutput, error) {
	format := input.Format
	if format == "" {
		format = cfg.Format
	}
	if format != converter.FormatJSON && format != converter.FormatYAML {
		return errResult(fmt.Errorf("invalid format %q; valid formats: %s, %s", format, converter.FormatJSON, converter.FormatYAML)), convertMetadataOutput{}, nil
	}

	strict := cfg.Strict
	if input.Strict != nil {
		strict = *input.Strict
	}
	includeInfo := cfg.IncludeInfo
	if input.IncludeInfo != nil {
		includeInfo = *input.IncludeInfo
	}

	result, err := input.Metadata.resolve()
	if err != nil {
		return errResult(err), convertMetadataOutput{}, nil
	}

	if strict && result.WarningCount > 0 {
		return errResult(fmt.Errorf("conversion failed in strict mode: %d warning(s)", result.WarningCount)), convertMetadataOutput{}, nil
	}

	output := convertMetadataOutput{
		Version:      result.Version,
		Format:       format,
		AliasCount:   len(result.Aliases),
		WarningCount: result.WarningCount,
	}
	if includeInfo {
		output.InfoCount = result.InfoCount
	}

	// The cached result always carries info issues; filter on the way out.
	output.Issues = makeSlice[convertIssue](len(result.Issues))
	for _, issue := range result.Issues {
		if !includeInfo && issue.Severity == converter.SeverityInfo {
			continue
		}
		output.Issues = append(output.Issues, convertIssue{
			Severity: issue.Severity.String(),
			Path:     issue.Path,
			Message:  issue.Message,
			Value:    issue.Value,
		})
	}

	data, err := result.Marshal(format)
	if err != nil {
		return errResult(err), convertMetadataOutput{}, nil
	}

	if input.Output != "" {
		if err := os.WriteFile(input.Output, data, fileutil.ReadableByAll); err != nil {
			return errResult(fmt.Errorf("failed to write output file: %w", err)), convertMetadataOutput{}, nil
		}
		output.WrittenTo = input.Output
	} else {
		output.Document = string(data)
	}

	return nil, output, nil
}
