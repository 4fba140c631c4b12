package value

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToJSON(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want string
	}{
		{"null", nil, `null`},
		{"bool", true, `true`},
		{"int", 42, `42`},
		{"float", 1.5, `1.5`},
		{"string", "hi", `"hi"`},
		{"blob base64", []byte("hi"), `"aGk="`},
		{"array", []any{1, "x", nil}, `[1,"x",null]`},
		{"dict", map[string]any{"a": 1}, `{"a":1}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ToJSON(tt.in)
			require.NoError(t, err)
			assert.JSONEq(t, tt.want, string(got))
		})
	}
}

func TestToJSONUnsupported(t *testing.T) {
	_, err := ToJSON(map[string]any{"ch": make(chan int)})
	assert.Error(t, err)
}

func TestFromJSON(t *testing.T) {
	v, err := FromJSON([]byte(`{"n": 42, "f": 4.5, "big": 18446744073709551615, "s": "x", "a": [1, null]}`))
	require.NoError(t, err)

	dict, ok := v.(map[string]any)
	require.True(t, ok)

	// Integer literals stay integers instead of collapsing to float64.
	assert.Equal(t, int64(42), dict["n"])
	assert.Equal(t, float64(4.5), dict["f"])
	assert.Equal(t, "x", dict["s"])
	assert.Equal(t, []any{int64(1), nil}, dict["a"])
	// Too big for int64, falls back to float.
	assert.Equal(t, KindFloat, KindOf(dict["big"]))
}

func TestFromJSONErrors(t *testing.T) {
	_, err := FromJSON([]byte(`{`))
	assert.Error(t, err)

	_, err = FromJSON([]byte(`1 2`))
	assert.Error(t, err, "trailing data must be rejected")
}

func TestDictFromJSON(t *testing.T) {
	dict, err := DictFromJSON([]byte(`{"a": 1}`))
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"a": int64(1)}, dict)

	_, err = DictFromJSON([]byte(`[1]`))
	assert.Error(t, err)
}

func TestJSONRoundTrip(t *testing.T) {
	original := map[string]any{
		"name":  map[string]any{"first": "Alice"},
		"count": 3,
		"score": 1.25,
		"tags":  []any{"a", "b"},
		"ok":    true,
		"gone":  nil,
	}

	data, err := ToJSON(original)
	require.NoError(t, err)

	back, err := FromJSON(data)
	require.NoError(t, err)

	assert.True(t, Equal(original, back), "round-tripped value must compare equal")
}
