// Package severity provides severity level constants for issues recorded by
// the converter.
//
// The conversion itself never fails on questionable input; instead it records:
//   - SeverityInfo: informational notices, e.g. an unrecognized element that was skipped
//   - SeverityWarning: lossy or degraded output, e.g. an integer literal beyond the
//     safe range that was kept as a boxed string
//
// The severity levels are ordered from least to most severe: Info < Warning.
package severity

// Severity indicates the severity level of an issue recorded during conversion.
type Severity int

const (
	// SeverityInfo indicates informational messages about processing choices.
	SeverityInfo Severity = iota

	// SeverityWarning indicates output that was degraded to stay representable.
	SeverityWarning
)

// String returns the string representation of the severity level.
func (s Severity) String() string {
	switch s {
	case SeverityInfo:
		return "info"
	case SeverityWarning:
		return "warning"
	default:
		return "unknown"
	}
}
