//go:build unit || e2e

package testutil

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

// Edit mutates a decoded JSON object.
type Edit func(map[string]any)

// JSONMap round-trips v through JSON and applies edits to the resulting
// object, for request bodies a typed DTO cannot express.
func JSONMap(t *testing.T, v any, edits ...Edit) map[string]any {
	t.Helper()

	raw, err := json.Marshal(v)
	require.NoError(t, err)
	var m map[string]any
	require.NoError(t, json.Unmarshal(raw, &m))
	for _, edit := range edits {
		edit(m)
	}
	return m
}

func Without(keys ...string) Edit {
	return func(m map[string]any) {
		for _, k := range keys {
			delete(m, k)
		}
	}
}

func Set(key string, value any) Edit {
	return func(m map[string]any) {
		m[key] = value
	}
}
