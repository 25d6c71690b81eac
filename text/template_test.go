package text

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSubstitute(t *testing.T) {
	tests := []struct {
		name     string
		in       string
		params   map[string]interface{}
		expected string
	}{
		{
			name:     "simple substitution",
			in:       "Hi {name}",
			params:   map[string]interface{}{"name": "Amy"},
			expected: "Hi Amy",
		},
		{
			name:     "missing key falls back to identifier",
			in:       "Hi {name}",
			params:   map[string]interface{}{},
			expected: "Hi name",
		},
		{
			name:     "falsy value falls back to identifier",
			in:       "Hi {name}",
			params:   map[string]interface{}{"name": ""},
			expected: "Hi name",
		},
		{
			name:     "nil params leaves tokens intact",
			in:       "Hi {name}",
			params:   nil,
			expected: "Hi {name}",
		},
		{
			name:     "multiple tokens",
			in:       "{greeting} {name}, you have {count} alerts",
			params:   map[string]interface{}{"greeting": "Hello", "name": "Amy", "count": 3},
			expected: "Hello Amy, you have 3 alerts",
		},
		{
			name:     "repeated token",
			in:       "{x} and {x}",
			params:   map[string]interface{}{"x": "y"},
			expected: "y and y",
		},
		{
			name:     "no tokens",
			in:       "plain text",
			params:   map[string]interface{}{"name": "Amy"},
			expected: "plain text",
		},
		{
			name:     "non-identifier braces untouched",
			in:       "keep {a b} as-is",
			params:   map[string]interface{}{"a": 1},
			expected: "keep {a b} as-is",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Substitute(tt.in, tt.params))
		})
	}
}
