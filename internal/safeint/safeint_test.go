package safeint

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		want   int64
		wantOK bool
	}{
		{"zero", "0", 0, true},
		{"small", "42", 42, true},
		{"negative", "-7", -7, true},
		{"explicit plus", "+3", 3, true},
		{"max safe", "9007199254740991", Max, true},
		{"min safe", "-9007199254740991", Min, true},
		{"above max", "9007199254740992", 0, false},
		{"far above max", "9007199254740993", 0, false},
		{"int64 overflow", "99999999999999999999", 0, false},
		{"empty", "", 0, false},
		{"sign only", "-", 0, false},
		{"decimal point", "4.2", 0, false},
		{"exponent", "1e3", 0, false},
		{"whitespace", " 1", 0, false},
		{"word", "max", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Parse(tt.input)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestIsSafe(t *testing.T) {
	assert.True(t, IsSafe(0))
	assert.True(t, IsSafe(Max))
	assert.True(t, IsSafe(Min))
	assert.False(t, IsSafe(Max+1))
	assert.False(t, IsSafe(Min-1))
}
