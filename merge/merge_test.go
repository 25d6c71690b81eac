package merge

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecursive(t *testing.T) {
	tests := []struct {
		name     string
		target   map[string]interface{}
		sources  []map[string]interface{}
		expected map[string]interface{}
	}{
		{
			name: "Simple field update",
			target: map[string]interface{}{
				"threshold": 0.7,
				"severity":  "warning",
			},
			sources: []map[string]interface{}{
				{"threshold": 0.8},
			},
			expected: map[string]interface{}{
				"threshold": 0.8,
				"severity":  "warning",
			},
		},
		{
			name: "Disjoint keys union",
			target: map[string]interface{}{
				"a": 1,
			},
			sources: []map[string]interface{}{
				{"b": 2},
			},
			expected: map[string]interface{}{
				"a": 1,
				"b": 2,
			},
		},
		{
			name: "Nested object merge",
			target: map[string]interface{}{
				"rule": map[string]interface{}{
					"threshold": 0.7,
					"labels": map[string]interface{}{
						"team": "platform",
						"env":  "prod",
					},
				},
			},
			sources: []map[string]interface{}{
				{
					"rule": map[string]interface{}{
						"labels": map[string]interface{}{
							"team": "backend",
						},
					},
				},
			},
			expected: map[string]interface{}{
				"rule": map[string]interface{}{
					"threshold": 0.7,
					"labels": map[string]interface{}{
						"team": "backend",
						"env":  "prod",
					},
				},
			},
		},
		{
			name: "Array replacement",
			target: map[string]interface{}{
				"items": []interface{}{1, 2, 3},
			},
			sources: []map[string]interface{}{
				{"items": []interface{}{4, 5}},
			},
			expected: map[string]interface{}{
				"items": []interface{}{4, 5},
			},
		},
		{
			name: "Scalar into map slot is a no-op",
			target: map[string]interface{}{
				"cfg": map[string]interface{}{"keep": true},
			},
			sources: []map[string]interface{}{
				{"cfg": "flattened"},
			},
			expected: map[string]interface{}{
				"cfg": map[string]interface{}{"keep": true},
			},
		},
		{
			name: "Multiple sources apply in order",
			target: map[string]interface{}{
				"a": 1,
			},
			sources: []map[string]interface{}{
				{"a": 2, "b": "first"},
				{"b": "second", "c": true},
			},
			expected: map[string]interface{}{
				"a": 2,
				"b": "second",
				"c": true,
			},
		},
		{
			name:   "Empty target",
			target: map[string]interface{}{},
			sources: []map[string]interface{}{
				{"new": "value"},
			},
			expected: map[string]interface{}{
				"new": "value",
			},
		},
		{
			name: "Empty source",
			target: map[string]interface{}{
				"existing": "value",
			},
			sources: []map[string]interface{}{
				{},
			},
			expected: map[string]interface{}{
				"existing": "value",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := Recursive(tt.target, tt.sources...)
			require.NoError(t, err)

			// Compare as JSON to handle deep equality
			expectedJSON, _ := json.Marshal(tt.expected)
			resultJSON, _ := json.Marshal(result)

			assert.JSONEq(t, string(expectedJSON), string(resultJSON))
		})
	}
}

func TestRecursiveRequiresSource(t *testing.T) {
	_, err := Recursive(map[string]interface{}{"a": 1})
	assert.ErrorIs(t, err, ErrNoSources)
}

func TestRecursiveMutatesTarget(t *testing.T) {
	target := map[string]interface{}{
		"nested": map[string]interface{}{"a": 1},
	}
	result, err := Recursive(target, map[string]interface{}{
		"nested": map[string]interface{}{"b": 2},
	})
	require.NoError(t, err)

	// Same map header back, nested map mutated in place
	assert.Equal(t, map[string]interface{}{"a": 1, "b": 2}, target["nested"])
	result["marker"] = true
	assert.Equal(t, true, target["marker"])
}
