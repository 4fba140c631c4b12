// Package keypath parses and evaluates key paths addressing values inside
// semi-structured documents, e.g. "name.first" or "contacts[1].address.city".
package keypath

import (
	"fmt"
	"strconv"
	"strings"
)

// Segment is a single step in a key path: either a dictionary property or an
// array index. IsIndex selects which field is meaningful.
type Segment struct {
	Property string
	Index    int
	IsIndex  bool
}

// Path is a parsed key path, ordered from the document root inward.
type Path []Segment

// Parse parses a key path string.
//
// Grammar: an optional leading "$." (or "$[") marks the document root;
// property segments are separated by "."; array indices are written "[n]"
// with n a non-negative decimal integer. A backslash escapes a literal
// '.', '[', '$' or '\' inside a property name.
func Parse(s string) (Path, error) {
	if s == "" {
		return nil, fmt.Errorf("keypath: empty path")
	}

	i := 0
	// Optional root marker.
	if s[0] == '$' {
		i++
		if i >= len(s) {
			return nil, fmt.Errorf("keypath %q: nothing after root marker", s)
		}
		switch s[i] {
		case '.':
			i++
			if i >= len(s) {
				return nil, fmt.Errorf("keypath %q: trailing dot", s)
			}
		case '[':
			// Index follows immediately, handled below.
		default:
			return nil, fmt.Errorf("keypath %q: expected '.' or '[' after root marker", s)
		}
	}

	var path Path
	for i < len(s) {
		switch s[i] {
		case '[':
			end := strings.IndexByte(s[i:], ']')
			if end < 0 {
				return nil, fmt.Errorf("keypath %q: unterminated index", s)
			}
			raw := s[i+1 : i+end]
			idx, err := strconv.Atoi(raw)
			if err != nil || idx < 0 {
				return nil, fmt.Errorf("keypath %q: invalid array index %q", s, raw)
			}
			path = append(path, Segment{Index: idx, IsIndex: true})
			i += end + 1
			// After an index: another index, a dot, or the end.
			if i < len(s) {
				switch s[i] {
				case '[':
				case '.':
					i++
					if i >= len(s) {
						return nil, fmt.Errorf("keypath %q: trailing dot", s)
					}
				default:
					return nil, fmt.Errorf("keypath %q: expected '.' or '[' after index", s)
				}
			}
		case '.':
			return nil, fmt.Errorf("keypath %q: empty path segment", s)
		default:
			prop, next, err := parseProperty(s, i)
			if err != nil {
				return nil, err
			}
			path = append(path, Segment{Property: prop})
			i = next
		}
	}
	return path, nil
}

// parseProperty scans a property segment starting at i, handling escapes.
// It returns the unescaped property and the position of the character after
// the segment (past a terminating dot, at a '[', or at end of string).
func parseProperty(s string, i int) (string, int, error) {
	var b strings.Builder
	for i < len(s) {
		c := s[i]
		switch c {
		case '\\':
			i++
			if i >= len(s) {
				return "", 0, fmt.Errorf("keypath %q: trailing backslash", s)
			}
			switch s[i] {
			case '.', '[', '$', '\\':
				b.WriteByte(s[i])
				i++
			default:
				return "", 0, fmt.Errorf("keypath %q: invalid escape %q", s, `\`+string(s[i]))
			}
		case '.':
			i++
			if i >= len(s) {
				return "", 0, fmt.Errorf("keypath %q: trailing dot", s)
			}
			return b.String(), i, nil
		case '[':
			return b.String(), i, nil
		default:
			b.WriteByte(c)
			i++
		}
	}
	return b.String(), i, nil
}

// Eval resolves the path against a value tree of dicts (map[string]any) and
// arrays ([]any). The boolean reports whether the full path resolved.
func (p Path) Eval(root any) (any, bool) {
	cur := root
	for _, seg := range p {
		if seg.IsIndex {
			arr, ok := cur.([]any)
			if !ok || seg.Index >= len(arr) {
				return nil, false
			}
			cur = arr[seg.Index]
		} else {
			dict, ok := cur.(map[string]any)
			if !ok {
				return nil, false
			}
			v, ok := dict[seg.Property]
			if !ok {
				return nil, false
			}
			cur = v
		}
	}
	return cur, true
}

// String re-renders the path with any required escaping. Parse(p.String())
// yields p back.
func (p Path) String() string {
	var b strings.Builder
	for i, seg := range p {
		if seg.IsIndex {
			if i == 0 {
				b.WriteByte('$')
			}
			fmt.Fprintf(&b, "[%d]", seg.Index)
			continue
		}
		if i > 0 {
			b.WriteByte('.')
		}
		b.WriteString(escapeProperty(seg.Property))
	}
	return b.String()
}

func escapeProperty(prop string) string {
	if !strings.ContainsAny(prop, `.[$\`) {
		return prop
	}
	var b strings.Builder
	for j := 0; j < len(prop); j++ {
		switch prop[j] {
		case '.', '[', '$', '\\':
			b.WriteByte('\\')
		}
		b.WriteByte(prop[j])
	}
	return b.String()
}
