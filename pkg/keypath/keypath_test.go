package keypath

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name string
		path string
		want Path
	}{
		{
			name: "single property",
			path: "name",
			want: Path{{Property: "name"}},
		},
		{
			name: "nested properties",
			path: "name.first",
			want: Path{{Property: "name"}, {Property: "first"}},
		},
		{
			name: "array index",
			path: "contacts[1]",
			want: Path{{Property: "contacts"}, {Index: 1, IsIndex: true}},
		},
		{
			name: "index then property",
			path: "contacts[1].address.city",
			want: Path{
				{Property: "contacts"},
				{Index: 1, IsIndex: true},
				{Property: "address"},
				{Property: "city"},
			},
		},
		{
			name: "consecutive indexes",
			path: "grid[2][0]",
			want: Path{
				{Property: "grid"},
				{Index: 2, IsIndex: true},
				{Index: 0, IsIndex: true},
			},
		},
		{
			name: "root marker",
			path: "$.name.first",
			want: Path{{Property: "name"}, {Property: "first"}},
		},
		{
			name: "root marker with index",
			path: "$[0].name",
			want: Path{{Index: 0, IsIndex: true}, {Property: "name"}},
		},
		{
			name: "escaped dot",
			path: `files.a\.txt`,
			want: Path{{Property: "files"}, {Property: "a.txt"}},
		},
		{
			name: "escaped bracket",
			path: `weird\[0]`,
			want: Path{{Property: "weird[0]"}},
		},
		{
			name: "escaped backslash and dollar",
			path: `\\\$`,
			want: Path{{Property: `\$`}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.path)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		path string
	}{
		{"empty path", ""},
		{"lone root marker", "$"},
		{"root marker then junk", "$x"},
		{"trailing dot", "name."},
		{"leading dot", ".name"},
		{"empty segment", "a..b"},
		{"unterminated index", "a[1"},
		{"non-integer index", "a[x]"},
		{"negative index", "a[-1]"},
		{"junk after index", "a[1]b"},
		{"trailing backslash", `a\`},
		{"invalid escape", `a\b`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.path)
			assert.Error(t, err)
		})
	}
}

func TestEval(t *testing.T) {
	doc := map[string]any{
		"name": map[string]any{"first": "Alice", "last": "Ames"},
		"contacts": []any{
			map[string]any{"city": "Oslo"},
			map[string]any{"city": "Bergen"},
		},
	}

	tests := []struct {
		path   string
		want   any
		wantOK bool
	}{
		{"name.first", "Alice", true},
		{"contacts[1].city", "Bergen", true},
		{"$.name.last", "Ames", true},
		{"name.middle", nil, false},
		{"contacts[5].city", nil, false},
		{"name.first.x", nil, false},
		{"contacts.city", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			p, err := Parse(tt.path)
			require.NoError(t, err)

			got, ok := p.Eval(doc)
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestStringRoundTrip(t *testing.T) {
	paths := []string{
		"name.first",
		"contacts[1].address.city",
		"grid[2][0]",
		`files.a\.txt`,
		`weird\[0]`,
		"$[3].x",
	}

	for _, s := range paths {
		t.Run(s, func(t *testing.T) {
			p, err := Parse(s)
			require.NoError(t, err)

			again, err := Parse(p.String())
			require.NoError(t, err, "rendered path %q must parse", p.String())
			assert.Equal(t, p, again)
		})
	}
}
