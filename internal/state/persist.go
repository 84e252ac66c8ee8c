package state

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/mmynk/leuth/internal/models"
)

// Partialize encodes only the top-level fields of st that differ from
// defaults, compared by their canonical JSON encoding. friendRequests is
// included whenever it is non-empty. A state equal to defaults encodes as {}.
func Partialize(st, defaults *models.AppState) ([]byte, error) {
	current, err := topLevelFields(st)
	if err != nil {
		return nil, err
	}
	base, err := topLevelFields(defaults)
	if err != nil {
		return nil, err
	}

	overrides := make(map[string]json.RawMessage)
	for key, value := range current {
		if key == "friendRequests" {
			if len(st.FriendRequests) > 0 {
				overrides[key] = value
			}
			continue
		}
		if !bytes.Equal(value, base[key]) {
			overrides[key] = value
		}
	}

	return json.Marshal(overrides)
}

func topLevelFields(st *models.AppState) (map[string]json.RawMessage, error) {
	data, err := json.Marshal(st)
	if err != nil {
		return nil, err
	}
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return nil, err
	}
	return fields, nil
}

// Merge deep-merges a persisted payload onto a copy of defaults and decodes
// the result. Objects merge key by key; arrays and scalars from the payload
// replace the default; a null never clears an object.
func Merge(defaults *models.AppState, payload []byte) (*models.AppState, error) {
	base, err := decodeGeneric(mustMarshal(defaults))
	if err != nil {
		return nil, fmt.Errorf("failed to decode defaults: %w", err)
	}

	if len(bytes.TrimSpace(payload)) == 0 {
		return defaults.Clone(), nil
	}
	overrides, err := decodeGeneric(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to decode payload: %w", err)
	}
	if _, ok := overrides.(map[string]any); !ok {
		return nil, fmt.Errorf("payload is not a JSON object")
	}

	merged, err := json.Marshal(deepMerge(base, overrides))
	if err != nil {
		return nil, err
	}

	var st models.AppState
	if err := json.Unmarshal(merged, &st); err != nil {
		return nil, fmt.Errorf("failed to decode merged state: %w", err)
	}
	return st.Clone(), nil
}

func deepMerge(target, source any) any {
	dst, ok := target.(map[string]any)
	if !ok {
		return source
	}
	if source == nil {
		return target
	}
	src, ok := source.(map[string]any)
	if !ok {
		return source
	}

	out := make(map[string]any, len(dst)+len(src))
	for k, v := range dst {
		out[k] = v
	}
	for k, v := range src {
		out[k] = deepMerge(dst[k], v)
	}
	return out
}

func decodeGeneric(data []byte) (any, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, err
	}
	return v, nil
}

func mustMarshal(st *models.AppState) []byte {
	data, err := json.Marshal(st)
	if err != nil {
		// AppState holds only strings, numbers, slices and maps.
		panic(fmt.Sprintf("state: cannot encode AppState: %v", err))
	}
	return data
}
