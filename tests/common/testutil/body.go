//go:build unit || e2e

package testutil

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

// Edit changes one JSON field of a request body.
type Edit func(body map[string]any)

// Set replaces key; a nil value removes it so required-field checks can be hit.
func Set(key string, value any) Edit {
	return func(body map[string]any) {
		if value == nil {
			delete(body, key)
			return
		}
		body[key] = value
	}
}

// JSONBody renders v as the generic map gin would decode, then applies edits.
// It lets tests send values the typed DTO cannot hold.
func JSONBody(t *testing.T, v any, edits ...Edit) map[string]any {
	t.Helper()
	raw, err := json.Marshal(v)
	require.NoError(t, err)

	body := map[string]any{}
	require.NoError(t, json.Unmarshal(raw, &body))
	for _, edit := range edits {
		edit(body)
	}
	return body
}
