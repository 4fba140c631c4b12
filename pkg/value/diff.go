package value

// CompareDicts produces a dictionary of the differences between two
// dictionaries without mutating either. For each key whose value differs,
// the result maps the key to d1's value; when both sides hold a dictionary
// the comparison recurses and the result holds the nested difference dict.
// Keys present only in d2 map to nil. An empty result means the two
// dictionaries compare equal under Equal semantics.
func CompareDicts(d1, d2 map[string]any) map[string]any {
	diff := make(map[string]any)
	for k, v1 := range d1 {
		v2, ok := d2[k]
		if !ok {
			diff[k] = v1
			continue
		}
		if sub1, ok1 := v1.(map[string]any); ok1 {
			if sub2, ok2 := v2.(map[string]any); ok2 {
				if sub := CompareDicts(sub1, sub2); len(sub) > 0 {
					diff[k] = sub
				}
				continue
			}
		}
		if !Equal(v1, v2) {
			diff[k] = v1
		}
	}
	for k := range d2 {
		if _, ok := d1[k]; !ok {
			diff[k] = nil
		}
	}
	return diff
}
