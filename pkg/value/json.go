package value

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// ToJSON converts a value to its JSON text representation. The value is
// normalized first, so any Go value accepted by Normalize is accepted here.
// Blobs encode as base64 strings per the standard JSON convention.
func ToJSON(v any) ([]byte, error) {
	norm, err := Normalize(v)
	if err != nil {
		return nil, err
	}
	data, err := json.Marshal(norm)
	if err != nil {
		return nil, fmt.Errorf("value: encode json: %w", err)
	}
	return data, nil
}

// FromJSON parses JSON text into a normalized value. Integer literals decode
// to int64 rather than float64 so that round-trips preserve integer kinds.
func FromJSON(data []byte) (any, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var raw any
	if err := dec.Decode(&raw); err != nil {
		return nil, fmt.Errorf("value: decode json: %w", err)
	}
	// Reject trailing garbage after the first value.
	if dec.More() {
		return nil, fmt.Errorf("value: decode json: trailing data after value")
	}
	return Normalize(raw)
}

// DictFromJSON parses JSON text that must contain a dictionary at the top
// level.
func DictFromJSON(data []byte) (map[string]any, error) {
	v, err := FromJSON(data)
	if err != nil {
		return nil, err
	}
	dict, ok := v.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("value: expected a JSON object, got %s", KindOf(v))
	}
	return dict, nil
}
