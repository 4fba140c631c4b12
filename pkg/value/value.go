package value

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"reflect"
)

// Kind identifies the canonical kind of a value.
type Kind int

const (
	KindNull Kind = iota
	KindBool
	KindInt
	KindUint
	KindFloat
	KindString
	KindBlob
	KindArray
	KindDict
	KindInvalid
)

func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBool:
		return "bool"
	case KindInt:
		return "int"
	case KindUint:
		return "uint"
	case KindFloat:
		return "float"
	case KindString:
		return "string"
	case KindBlob:
		return "blob"
	case KindArray:
		return "array"
	case KindDict:
		return "dict"
	default:
		return "invalid"
	}
}

// KindOf reports the kind of an already-normalized value. Values that are
// not in canonical form report KindInvalid.
func KindOf(v any) Kind {
	switch v.(type) {
	case nil:
		return KindNull
	case bool:
		return KindBool
	case int64:
		return KindInt
	case uint64:
		return KindUint
	case float64:
		return KindFloat
	case string:
		return KindString
	case []byte:
		return KindBlob
	case []any:
		return KindArray
	case map[string]any:
		return KindDict
	default:
		return KindInvalid
	}
}

// Normalize converts an arbitrary Go value into the canonical value-model
// kinds, recursing into arrays and dictionaries. Signed integers become
// int64; unsigned integers become int64 when they fit and uint64 otherwise.
// Containers are rebuilt rather than rewritten in place, and normalizing an
// already-normalized value yields an equal value.
func Normalize(v any) (any, error) {
	switch t := v.(type) {
	case nil:
		return nil, nil
	case bool, int64, float64, string:
		return t, nil
	case uint64:
		if t <= math.MaxInt64 {
			return int64(t), nil
		}
		return t, nil
	case int:
		return int64(t), nil
	case int8:
		return int64(t), nil
	case int16:
		return int64(t), nil
	case int32:
		return int64(t), nil
	case uint:
		return Normalize(uint64(t))
	case uint8:
		return int64(t), nil
	case uint16:
		return int64(t), nil
	case uint32:
		return int64(t), nil
	case float32:
		return float64(t), nil
	case []byte:
		return t, nil
	case json.Number:
		return normalizeNumber(t)
	case []any:
		return normalizeArray(t)
	case map[string]any:
		return normalizeDict(t)
	}
	return normalizeReflect(v)
}

func normalizeNumber(n json.Number) (any, error) {
	if !bytes.ContainsAny([]byte(n.String()), ".eE") {
		if i, err := n.Int64(); err == nil {
			return i, nil
		}
	}
	f, err := n.Float64()
	if err != nil {
		return nil, fmt.Errorf("value: invalid number %q: %w", n.String(), err)
	}
	return f, nil
}

// normalizeArray and normalizeDict build fresh containers so that callers'
// data is never rewritten behind their back (Equal and CompareDicts rely on
// this).
func normalizeArray(arr []any) ([]any, error) {
	out := make([]any, len(arr))
	for i, elem := range arr {
		norm, err := Normalize(elem)
		if err != nil {
			return nil, err
		}
		out[i] = norm
	}
	return out, nil
}

func normalizeDict(dict map[string]any) (map[string]any, error) {
	out := make(map[string]any, len(dict))
	for k, elem := range dict {
		norm, err := Normalize(elem)
		if err != nil {
			return nil, err
		}
		out[k] = norm
	}
	return out, nil
}

// normalizeReflect handles concrete slice and string-keyed map types
// (e.g. []string, map[string]int) that arrive from caller code rather than
// from JSON decoding.
func normalizeReflect(v any) (any, error) {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		out := make([]any, rv.Len())
		for i := 0; i < rv.Len(); i++ {
			norm, err := Normalize(rv.Index(i).Interface())
			if err != nil {
				return nil, err
			}
			out[i] = norm
		}
		return out, nil
	case reflect.Map:
		if rv.Type().Key().Kind() != reflect.String {
			return nil, fmt.Errorf("value: unsupported map key type %s", rv.Type().Key())
		}
		out := make(map[string]any, rv.Len())
		iter := rv.MapRange()
		for iter.Next() {
			norm, err := Normalize(iter.Value().Interface())
			if err != nil {
				return nil, err
			}
			out[iter.Key().String()] = norm
		}
		return out, nil
	case reflect.Ptr, reflect.Interface:
		if rv.IsNil() {
			return nil, nil
		}
		return Normalize(rv.Elem().Interface())
	}
	return nil, fmt.Errorf("value: unsupported type %T", v)
}

// Equal reports deep equality of two values under value-model semantics:
// numeric kinds compare by value, blobs compare byte-wise, arrays and dicts
// compare element-wise. Both values are normalized before comparison.
func Equal(a, b any) bool {
	na, err := Normalize(a)
	if err != nil {
		return false
	}
	nb, err := Normalize(b)
	if err != nil {
		return false
	}
	return equalNorm(na, nb)
}

func equalNorm(a, b any) bool {
	if eq, numeric := numericEqual(a, b); numeric {
		return eq
	}
	switch ta := a.(type) {
	case nil:
		return b == nil
	case bool:
		tb, ok := b.(bool)
		return ok && ta == tb
	case string:
		tb, ok := b.(string)
		return ok && ta == tb
	case []byte:
		tb, ok := b.([]byte)
		return ok && bytes.Equal(ta, tb)
	case []any:
		tb, ok := b.([]any)
		if !ok || len(ta) != len(tb) {
			return false
		}
		for i := range ta {
			if !equalNorm(ta[i], tb[i]) {
				return false
			}
		}
		return true
	case map[string]any:
		tb, ok := b.(map[string]any)
		if !ok || len(ta) != len(tb) {
			return false
		}
		for k, va := range ta {
			vb, ok := tb[k]
			if !ok || !equalNorm(va, vb) {
				return false
			}
		}
		return true
	}
	return false
}

// numericEqual compares two values if both are numeric. The second result
// reports whether the comparison applied.
func numericEqual(a, b any) (bool, bool) {
	fa, ia, ua, ka := numericParts(a)
	fb, ib, ub, kb := numericParts(b)
	if ka == KindInvalid || kb == KindInvalid {
		return false, false
	}
	switch {
	case ka == KindFloat || kb == KindFloat:
		return fa == fb, true
	case ka == KindUint && kb == KindUint:
		return ua == ub, true
	case ka == KindUint:
		return ib >= 0 && ua == uint64(ib), true
	case kb == KindUint:
		return ia >= 0 && uint64(ia) == ub, true
	default:
		return ia == ib, true
	}
}

func numericParts(v any) (float64, int64, uint64, Kind) {
	switch t := v.(type) {
	case int64:
		return float64(t), t, 0, KindInt
	case uint64:
		return float64(t), 0, t, KindUint
	case float64:
		return t, 0, 0, KindFloat
	}
	return 0, 0, 0, KindInvalid
}
