package value

import (
	"fmt"
	"sort"

	"github.com/eddadb/edda/pkg/keypath"
)

// UpdateProperties applies an ordered list of update sets to a dictionary,
// in place. Each set maps key paths to new values; sets apply in list order,
// so a later set observes the effects of earlier ones. Within one set, paths
// apply in lexical order to keep the operation deterministic.
//
// Missing intermediate containers are created: a property segment creates a
// dictionary, an index segment creates an array padded with nulls up to the
// written index. A scalar standing in the way of a deeper path is replaced
// by the container the path requires.
func UpdateProperties(dict map[string]any, updates []map[string]any) error {
	if dict == nil {
		return fmt.Errorf("value: update on nil dict")
	}
	for _, set := range updates {
		paths := make([]string, 0, len(set))
		for p := range set {
			paths = append(paths, p)
		}
		sort.Strings(paths)
		for _, p := range paths {
			path, err := keypath.Parse(p)
			if err != nil {
				return err
			}
			if path[0].IsIndex {
				return fmt.Errorf("keypath %q: document root is a dict, not an array", p)
			}
			norm, err := Normalize(set[p])
			if err != nil {
				return fmt.Errorf("keypath %q: %w", p, err)
			}
			if _, err := setIn(dict, path, norm); err != nil {
				return fmt.Errorf("keypath %q: %w", p, err)
			}
		}
	}
	return nil
}

// setIn writes v at path inside container, creating or replacing containers
// as needed, and returns the (possibly new) container.
func setIn(container any, path keypath.Path, v any) (any, error) {
	seg, rest := path[0], path[1:]

	if seg.IsIndex {
		arr, _ := container.([]any)
		for len(arr) <= seg.Index {
			arr = append(arr, nil)
		}
		if len(rest) == 0 {
			arr[seg.Index] = v
			return arr, nil
		}
		child, err := setIn(arr[seg.Index], rest, v)
		if err != nil {
			return nil, err
		}
		arr[seg.Index] = child
		return arr, nil
	}

	dict, ok := container.(map[string]any)
	if !ok {
		dict = make(map[string]any)
	}
	if len(rest) == 0 {
		dict[seg.Property] = v
		return dict, nil
	}
	child, err := setIn(dict[seg.Property], rest, v)
	if err != nil {
		return nil, err
	}
	dict[seg.Property] = child
	return dict, nil
}

// RemoveProperties deletes the values at the given key paths from a
// dictionary, in place. Paths that do not resolve are ignored; removing an
// array element splices it out. A malformed path is an error.
func RemoveProperties(dict map[string]any, keyPaths []string) error {
	if dict == nil {
		return fmt.Errorf("value: remove on nil dict")
	}
	for _, p := range keyPaths {
		path, err := keypath.Parse(p)
		if err != nil {
			return err
		}
		if path[0].IsIndex {
			// Root is a dict; an index path cannot resolve.
			continue
		}
		if _, err := removeIn(dict, path); err != nil {
			return fmt.Errorf("keypath %q: %w", p, err)
		}
	}
	return nil
}

// removeIn deletes the value at path inside container if the path resolves,
// and returns the (possibly new) container.
func removeIn(container any, path keypath.Path) (any, error) {
	seg, rest := path[0], path[1:]

	if seg.IsIndex {
		arr, ok := container.([]any)
		if !ok || seg.Index >= len(arr) {
			return container, nil
		}
		if len(rest) == 0 {
			return append(arr[:seg.Index], arr[seg.Index+1:]...), nil
		}
		child, err := removeIn(arr[seg.Index], rest)
		if err != nil {
			return nil, err
		}
		arr[seg.Index] = child
		return arr, nil
	}

	dict, ok := container.(map[string]any)
	if !ok {
		return container, nil
	}
	if len(rest) == 0 {
		delete(dict, seg.Property)
		return dict, nil
	}
	child, ok := dict[seg.Property]
	if !ok {
		return dict, nil
	}
	newChild, err := removeIn(child, rest)
	if err != nil {
		return nil, err
	}
	dict[seg.Property] = newChild
	return dict, nil
}
