package text

import (
	"regexp"

	"github.com/spf13/cast"

	"apputil/coerce"
)

var placeholderPattern = regexp.MustCompile(`\{(\w+)\}`)

// Substitute replaces each {identifier} token in s with the matching params
// entry. A token whose entry is missing or falsy falls back to the bare
// identifier name, braces removed. Nil params returns s unchanged, tokens
// included; an empty non-nil map still applies the fallback.
func Substitute(s string, params map[string]any) string {
	if params == nil {
		return s
	}
	return placeholderPattern.ReplaceAllStringFunc(s, func(token string) string {
		name := token[1 : len(token)-1]
		if v, ok := params[name]; ok && coerce.Truthy(v) {
			return cast.ToString(v)
		}
		return name
	})
}
