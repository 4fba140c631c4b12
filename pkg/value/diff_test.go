package value

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
)

func TestCompareDicts(t *testing.T) {
	tests := []struct {
		name   string
		d1, d2 map[string]any
		want   map[string]any
	}{
		{
			name: "equal dicts produce empty diff",
			d1:   map[string]any{"a": int64(1), "b": "x"},
			d2:   map[string]any{"a": int64(1), "b": "x"},
			want: map[string]any{},
		},
		{
			name: "changed value maps to left side",
			d1:   map[string]any{"a": int64(1)},
			d2:   map[string]any{"a": int64(2)},
			want: map[string]any{"a": int64(1)},
		},
		{
			name: "key only in left",
			d1:   map[string]any{"a": int64(1), "b": int64(2)},
			d2:   map[string]any{"a": int64(1)},
			want: map[string]any{"b": int64(2)},
		},
		{
			name: "key only in right maps to null",
			d1:   map[string]any{"a": int64(1)},
			d2:   map[string]any{"a": int64(1), "b": int64(2)},
			want: map[string]any{"b": nil},
		},
		{
			name: "nested dicts recurse",
			d1: map[string]any{
				"name": map[string]any{"first": "Alice", "last": "Ames"},
			},
			d2: map[string]any{
				"name": map[string]any{"first": "Alicia", "last": "Ames"},
			},
			want: map[string]any{
				"name": map[string]any{"first": "Alice"},
			},
		},
		{
			name: "numeric kinds compare by value",
			d1:   map[string]any{"n": int64(1), "f": float64(2)},
			d2:   map[string]any{"n": float64(1), "f": uint64(2)},
			want: map[string]any{},
		},
		{
			name: "dict replaced by scalar",
			d1:   map[string]any{"a": map[string]any{"x": int64(1)}},
			d2:   map[string]any{"a": "gone"},
			want: map[string]any{"a": map[string]any{"x": int64(1)}},
		},
		{
			name: "arrays compare element-wise",
			d1:   map[string]any{"tags": []any{"a", "b"}},
			d2:   map[string]any{"tags": []any{"a", "c"}},
			want: map[string]any{"tags": []any{"a", "b"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CompareDicts(tt.d1, tt.d2)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("diff mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestCompareDictsDoesNotMutate(t *testing.T) {
	d1 := map[string]any{"a": map[string]any{"x": int64(1)}}
	d2 := map[string]any{"a": map[string]any{"x": int64(2)}, "b": "new"}

	_ = CompareDicts(d1, d2)

	assert.Equal(t, map[string]any{"a": map[string]any{"x": int64(1)}}, d1)
	assert.Equal(t, map[string]any{"a": map[string]any{"x": int64(2)}, "b": "new"}, d2)
}

func TestCompareDictsEmptyMeansEqual(t *testing.T) {
	d1 := map[string]any{"n": int64(3), "inner": map[string]any{"a": []any{int64(1)}}}
	d2 := map[string]any{"n": uint64(3), "inner": map[string]any{"a": []any{float64(1)}}}

	assert.Empty(t, CompareDicts(d1, d2))
	assert.True(t, Equal(d1, d2))
}
