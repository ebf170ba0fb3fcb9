package shared

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type nestedProps struct {
	Items []string
	Meta  map[string]any
}

func TestValueObject_Equals(t *testing.T) {
	testcases := []struct {
		name string
		a, b nestedProps
		want bool
	}{
		{
			name: "identical nested arrays",
			a:    nestedProps{Items: []string{"a", "b"}, Meta: map[string]any{"x": []any{1, 2}}},
			b:    nestedProps{Items: []string{"a", "b"}, Meta: map[string]any{"x": []any{1, 2}}},
			want: true,
		},
		{
			name: "map insertion order does not matter",
			a:    nestedProps{Meta: map[string]any{"a": 1, "b": 2}},
			b:    nestedProps{Meta: map[string]any{"b": 2, "a": 1}},
			want: true,
		},
		{
			name: "slice order matters",
			a:    nestedProps{Items: []string{"a", "b"}},
			b:    nestedProps{Items: []string{"b", "a"}},
			want: false,
		},
		{
			name: "differing nested value",
			a:    nestedProps{Meta: map[string]any{"x": []any{1, 2}}},
			b:    nestedProps{Meta: map[string]any{"x": []any{1, 3}}},
			want: false,
		},
		{
			name: "numeric type is not coerced",
			a:    nestedProps{Meta: map[string]any{"n": 1}},
			b:    nestedProps{Meta: map[string]any{"n": 1.0}},
			want: false,
		},
		{
			name: "nil slice differs from empty slice",
			a:    nestedProps{Items: nil},
			b:    nestedProps{Items: []string{}},
			want: false,
		},
	}

	for _, tc := range testcases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, NewValueObject(tc.a).Equals(NewValueObject(tc.b)))
		})
	}
}
