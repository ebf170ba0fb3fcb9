package valueobject

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oksasatya/go-ddd-resource-api/internal/domain/shared"
)

func TestInsertStringSetScope(t *testing.T) {
	testcases := []struct {
		name  string
		value any
		want  []string
		kind  shared.ErrorKind
	}{
		{name: "trim then dedup keeps first seen order", value: []string{"b ", "a", "b", " a"}, want: []string{"b", "a"}},
		{name: "decoded json array", value: []any{"read", " write", "read"}, want: []string{"read", "write"}},
		{name: "single", value: []string{"user"}, want: []string{"user"}},
		{name: "blank elements dropped", value: []string{" ", "admin", ""}, want: []string{"admin"}},
		{name: "empty array", value: []string{}, kind: shared.KindRequiredValueMissing},
		{name: "only blanks", value: []string{"  ", ""}, kind: shared.KindRequiredValueMissing},
		{name: "not an array", value: "not-an-array", kind: shared.KindInvalidFormat},
		{name: "nil", value: nil, kind: shared.KindInvalidFormat},
		{name: "mixed element types", value: []any{"a", 1}, kind: shared.KindInvalidFormat},
	}

	for _, tc := range testcases {
		t.Run(tc.name, func(t *testing.T) {
			scope, err := InsertStringSetScope(tc.value)
			if tc.kind != "" {
				require.Error(t, err)
				assert.True(t, shared.IsKind(err, tc.kind), "got %v", err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, scope.Value())
		})
	}
}

func TestStringSetScope_Immutable(t *testing.T) {
	input := []string{"a", "b"}
	scope, err := InsertStringSetScope(input)
	require.NoError(t, err)

	input[0] = "changed"
	out := scope.Value()
	out[1] = "changed"

	assert.Equal(t, []string{"a", "b"}, scope.Value())
	assert.True(t, scope.Contains("a"))
	assert.False(t, scope.Contains("changed"))
}

func TestStringSetScope_Equals(t *testing.T) {
	a, err := InsertStringSetScope([]string{"a", "b"})
	require.NoError(t, err)
	b, err := InsertStringSetScope([]string{" a", "b", "a"})
	require.NoError(t, err)
	c, err := InsertStringSetScope([]string{"b", "a"})
	require.NoError(t, err)

	assert.True(t, a.Equals(b))
	assert.False(t, a.Equals(c))
}
