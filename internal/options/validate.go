// Package options provides shared utilities for option validation across packages.
package options

import (
	"strings"

	"github.com/erraggy/edmxconv/edmxerrors"
)

// Source is one of the mutually exclusive input options of an operation.
type Source struct {
	// Option is the name of the option function, e.g. "WithFilePath".
	Option string
	// Set reports whether the option was applied.
	Set bool
}

// ValidateSingleInputSource ensures exactly one of sources is set and returns
// the name of that option. The *edmxerrors.ConfigError it returns otherwise
// names either all candidate options or the ones that were set together.
func ValidateSingleInputSource(prefix string, sources ...Source) (string, error) {
	var all, set []string
	for _, s := range sources {
		all = append(all, s.Option)
		if s.Set {
			set = append(set, s.Option)
		}
	}

	switch len(set) {
	case 1:
		return set[0], nil
	case 0:
		return "", &edmxerrors.ConfigError{
			Option:  "input",
			Message: prefix + ": must specify an input source (use " + joinOr(all) + ")",
		}
	default:
		return "", &edmxerrors.ConfigError{
			Option:  "input",
			Value:   strings.Join(set, ", "),
			Message: prefix + ": must specify exactly one input source",
		}
	}
}

// joinOr renders names as "a, b, or c".
func joinOr(names []string) string {
	switch len(names) {
	case 0:
		return ""
	case 1:
		return names[0]
	case 2:
		return names[0] + " or " + names[1]
	}
	return strings.Join(names[:len(names)-1], ", ") + ", or " + names[len(names)-1]
}
