// Package jsonutil keeps JSON round-trips short at call sites and uniform in
// how they report failures.
package jsonutil

import (
	"encoding/json"
	"fmt"
)

// ToJSON serializes v into compact JSON.
func ToJSON(v any) ([]byte, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("unable to serialize %T to JSON: %w", v, err)
	}
	return data, nil
}

// FromJSON deserializes data into a fresh value of type T.
func FromJSON[T any](data []byte) (T, error) {
	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		return v, fmt.Errorf("unable to deserialize %T from JSON: %w", v, err)
	}
	return v, nil
}
