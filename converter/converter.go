package converter

import (
	"fmt"

	"github.com/erraggy/edmxconv/alias"
	"github.com/erraggy/edmxconv/edmxerrors"
	"github.com/erraggy/edmxconv/internal/issues"
	"github.com/erraggy/edmxconv/internal/severity"
	"github.com/erraggy/edmxconv/xmltree"
)

// Severity indicates the severity level of a conversion issue
type Severity = severity.Severity

const (
	// SeverityInfo indicates informational messages, such as skipped elements
	SeverityInfo = severity.SeverityInfo
	// SeverityWarning indicates literals that could not be represented natively
	SeverityWarning = severity.SeverityWarning
)

// ConversionIssue represents a single conversion issue
type ConversionIssue = issues.Issue

// ConversionResult contains the results of converting a metadata document
type ConversionResult struct {
	// Metadata is the converted JSON metadata
	Metadata Object
	// Aliases maps each alias declared in the document to its namespace
	Aliases alias.Table
	// Version is the Version attribute of the edmx:Edmx element, if any
	Version string
	// SourcePath is the path of the converted document, when known
	SourcePath string
	// Issues contains all conversion issues
	Issues []ConversionIssue
	// InfoCount is the total number of info messages
	InfoCount int
	// WarningCount is the total number of warnings
	WarningCount int
}

// HasWarnings returns true if there are any warnings
func (r *ConversionResult) HasWarnings() bool {
	return r.WarningCount > 0
}

// Converter converts CSDL XML metadata into its JSON representation
type Converter struct {
	// StrictMode causes conversion to fail when warnings were recorded
	StrictMode bool
	// IncludeInfo determines whether to include informational messages
	IncludeInfo bool
	// Logger receives debug output; nil disables logging
	Logger xmltree.Logger
}

// New creates a new Converter instance with default settings
func New() *Converter {
	return &Converter{
		StrictMode:  false,
		IncludeInfo: true,
	}
}

// Convert is a convenience function that converts the element tree of an
// edmx:Edmx document with default settings. It's equivalent to creating a
// Converter with New() and calling Convert().
//
// Example:
//
//	root, err := xmltree.ParseString(metadataXML)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	result, err := converter.Convert(root)
func Convert(root *xmltree.Element) (*ConversionResult, error) {
	return New().Convert(root)
}

// ConvertElement converts the element tree of an edmx:Edmx document and returns
// only the JSON metadata.
func ConvertElement(root *xmltree.Element) (Object, error) {
	result, err := New().Convert(root)
	if err != nil {
		return nil, err
	}
	return result.Metadata, nil
}

// Convert converts the element tree of an edmx:Edmx document. The aliases of
// the whole document are collected first, so alias references may precede the
// declaring Schema or Include.
func (c *Converter) Convert(root *xmltree.Element) (*ConversionResult, error) {
	if root == nil {
		return nil, &edmxerrors.ConversionError{Message: "no root element"}
	}
	if root.Local != "Edmx" {
		return nil, &edmxerrors.ConversionError{
			Path:    root.Local,
			Element: root.Local,
			Message: fmt.Sprintf("root element must be Edmx, got %s", root.Local),
		}
	}

	log := c.Logger
	if log == nil {
		log = xmltree.NopLogger{}
	}

	aliases, err := collectAliases(root, log)
	if err != nil {
		return nil, err
	}
	cv, err := build(root, aliases, log)
	if err != nil {
		return nil, err
	}

	result := newResult(cv)
	c.updateCounts(result)

	log.Debug("converted metadata",
		"version", result.Version,
		"aliases", len(aliases),
		"warnings", result.WarningCount,
	)

	// In strict mode, fail on any warnings
	if c.StrictMode && result.WarningCount > 0 {
		return result, &edmxerrors.ConversionError{
			Element: root.Local,
			Message: fmt.Sprintf("conversion failed in strict mode: %d warning(s)", result.WarningCount),
		}
	}

	// Filter info messages if not included
	if !c.IncludeInfo {
		filtered := make([]ConversionIssue, 0, len(result.Issues))
		for _, issue := range result.Issues {
			if issue.Severity != SeverityInfo {
				filtered = append(filtered, issue)
			}
		}
		result.Issues = filtered
		result.InfoCount = 0
	}

	return result, nil
}

// collectAliases runs the alias pass over the document.
func collectAliases(root *xmltree.Element, log xmltree.Logger) (alias.Table, error) {
	cv := newConversion(passAliases, alias.Table{}, log)
	defer cv.release()

	log.Debug("collecting aliases")
	if err := cv.run(root, aliasConfig); err != nil {
		return nil, err
	}
	return cv.aliases, nil
}

// build runs the full pass over the document with the aliases of the whole
// document.
func build(root *xmltree.Element, aliases alias.Table, log xmltree.Logger) (*conversion, error) {
	cv := newConversion(passFull, aliases, log)
	defer cv.release()

	log.Debug("converting metadata")
	if err := cv.run(root, fullConfig); err != nil {
		return nil, err
	}
	return cv, nil
}

// newResult collects the output of a finished full pass. The alias table is
// copied so that callers holding a result, such as a cache shared between
// requests, cannot change the table the conversion resolved names with.
func newResult(cv *conversion) *ConversionResult {
	result := &ConversionResult{
		Metadata: cv.result,
		Aliases:  cv.aliases.Clone(),
		Issues:   cv.issues,
	}
	if v, ok := cv.result["$Version"].(string); ok {
		result.Version = v
	}
	if result.Issues == nil {
		result.Issues = make([]ConversionIssue, 0)
	}
	return result
}

// updateCounts updates the issue counts in the result
func (c *Converter) updateCounts(result *ConversionResult) {
	result.InfoCount = 0
	result.WarningCount = 0

	for _, issue := range result.Issues {
		switch issue.Severity {
		case SeverityInfo:
			result.InfoCount++
		case SeverityWarning:
			result.WarningCount++
		}
	}
}
