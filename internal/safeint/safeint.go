// Package safeint decides whether a decimal literal is an integer that survives a
// round trip through an IEEE 754 double without losing precision.
//
// CSDL integer literals may come from Edm.Int64 values. Consumers of the converted
// metadata usually decode JSON numbers into float64, so only values in
// [-(2^53-1), 2^53-1] are emitted as native numbers.
package safeint

import "strconv"

// Max is the largest integer n such that n and n+1 are both exactly representable
// as a float64.
const Max = 1<<53 - 1

// Min is the negation of Max.
const Min = -Max

// IsSafe reports whether n lies within [Min, Max].
func IsSafe(n int64) bool {
	return n >= Min && n <= Max
}

// Parse parses s as a base-10 integer and reports whether it is safe.
// Only an optional sign followed by ASCII digits is accepted; anything else,
// including values that overflow int64, reports false.
func Parse(s string) (int64, bool) {
	if !isDecimal(s) {
		return 0, false
	}
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil || !IsSafe(n) {
		return 0, false
	}
	return n, true
}

func isDecimal(s string) bool {
	if s != "" && (s[0] == '+' || s[0] == '-') {
		s = s[1:]
	}
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
