// Package issues provides the issue type recorded during metadata conversion.
package issues

import (
	"fmt"

	"github.com/erraggy/edmxconv/internal/severity"
)

// Issue represents a single notice recorded while converting a document.
type Issue struct {
	// Path is the slash-separated element path (e.g., "Edmx/DataServices/Schema[ns]/EnumType[Color]")
	Path string
	// Element is the local name of the element the issue relates to
	Element string
	// Message is a human-readable description of the issue
	Message string
	// Severity indicates the severity level of the issue
	Severity severity.Severity
	// Value is the literal that triggered the issue (optional)
	Value string
}

// String returns a formatted string representation of the issue.
// Uses "⚠" for warnings and "ℹ" for informational messages.
func (i Issue) String() string {
	var symbol string
	switch i.Severity {
	case severity.SeverityWarning:
		symbol = "⚠"
	case severity.SeverityInfo:
		symbol = "ℹ"
	default:
		symbol = "?"
	}

	result := fmt.Sprintf("%s %s: %s", symbol, i.Path, i.Message)
	if i.Value != "" {
		result += fmt.Sprintf(" (value %q)", i.Value)
	}
	return result
}
