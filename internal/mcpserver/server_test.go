package mcpserver

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPaginate(t *testing.T) {
	names := []string{"a", "b", "c", "d", "e"}

	tests := []struct {
		name   string
		items  []string
		offset int
		limit  int
		want   []string
	}{
		{"default limit returns everything", names, 0, 0, names},
		{"negative limit uses default", names, 0, -3, names},
		{"first page", names, 0, 2, []string{"a", "b"}},
		{"middle page", names, 2, 2, []string{"c", "d"}},
		{"last partial page", names, 4, 2, []string{"e"}},
		{"limit beyond remaining", names, 3, 10, []string{"d", "e"}},
		{"offset past end", names, 5, 2, nil},
		{"negative offset", names, -1, 2, nil},
		{"nil input", nil, 0, 2, nil},
		{"empty input", []string{}, 0, 2, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, paginate(tt.items, tt.offset, tt.limit))
		})
	}
}

func TestPaginate_Caps(t *testing.T) {
	items := make([]int, 1500)
	for i := range items {
		items[i] = i
	}

	assert.Len(t, paginate(items, 0, 0), cfg.WalkLimit, "default limit")
	assert.Len(t, paginate(items, 0, 1500), cfg.MaxLimit, "limit capped at MaxLimit")
	assert.Equal(t, []int{1498, 1499}, paginate(items, 1498, math.MaxInt), "offset+limit overflow")
}

func TestDetailLimit(t *testing.T) {
	assert.Equal(t, cfg.WalkDetailLimit, detailLimit(0))
	assert.Equal(t, cfg.WalkDetailLimit, detailLimit(-5))
	assert.Equal(t, 1, detailLimit(1))
	assert.Equal(t, 300, detailLimit(300))
}

func TestMakeSlice(t *testing.T) {
	assert.Nil(t, makeSlice[int](0))

	s := makeSlice[string](4)
	require.NotNil(t, s)
	assert.Empty(t, s)
	assert.Equal(t, 4, cap(s))
}

func TestSanitizeError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"nil", nil, ""},
		{
			"absolute path",
			fmt.Errorf("open /home/dev/service/metadata.xml: no such file or directory"),
			"open <path>: no such file or directory",
		},
		{
			"several paths",
			fmt.Errorf("cannot write /tmp/out.json after reading /var/data/in.xml"),
			"cannot write <path> after reading <path>",
		},
		{
			"element paths are kept",
			fmt.Errorf("conversion error at Edmx/DataServices/Schema[n]/Parameter: Parameter element outside of an Action or Function"),
			"conversion error at Edmx/DataServices/Schema[n]/Parameter: Parameter element outside of an Action or Function",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, sanitizeError(tt.err))
		})
	}
}

func TestErrResult(t *testing.T) {
	result := errResult(fmt.Errorf("reading /root/secret.xml failed"))
	assert.True(t, result.IsError)
	require.Len(t, result.Content, 1)
}

func TestGroupAndSort(t *testing.T) {
	kinds := []string{"Term", "EntityType", "Action", "EntityType", "Action", "EntityType"}
	groups := groupAndSort(kinds, func(k string) []string { return []string{k} })
	assert.Equal(t, []groupCount{
		{Key: "EntityType", Count: 3},
		{Key: "Action", Count: 2},
		{Key: "Term", Count: 1},
	}, groups)

	assert.Empty(t, groupAndSort([]string{"x"}, func(string) []string { return nil }))
}

func TestValidateGroupBy(t *testing.T) {
	allowed := []string{"kind", "namespace"}

	assert.NoError(t, validateGroupBy("", true, allowed))
	assert.NoError(t, validateGroupBy("KIND", false, allowed))

	err := validateGroupBy("kind", true, allowed)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "cannot use both")

	err = validateGroupBy("type", false, allowed)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "kind, namespace")
}

func TestValidateGlobPattern(t *testing.T) {
	assert.NoError(t, validateGlobPattern(""))
	assert.NoError(t, validateGlobPattern("tea_busi.Worker"))
	assert.NoError(t, validateGlobPattern("tea_busi.*"))
	assert.Error(t, validateGlobPattern("tea_[busi"))
}

func TestMatchGlobName(t *testing.T) {
	assert.True(t, matchGlobName("tea_busi.Worker", "TEA_BUSI.worker"))
	assert.True(t, matchGlobName("tea_busi.Worker", "*.Work?r"))
	assert.False(t, matchGlobName("tea_busi.Worker", "*.Team"))
	assert.False(t, matchGlobName("tea_busi.Worker", "tea_busi"))
}
