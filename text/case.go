// Package text provides case, slug, placeholder, and substring transforms
// for free-form strings.
package text

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/ettle/strcase"
)

// UpperFirst uppercases only the first rune, leaving the rest untouched.
func UpperFirst(s string) string {
	if s == "" {
		return s
	}
	r, size := utf8.DecodeRuneInString(s)
	return string(unicode.ToUpper(r)) + s[size:]
}

// LowerFirst lowercases only the first rune, leaving the rest untouched.
func LowerFirst(s string) string {
	if s == "" {
		return s
	}
	r, size := utf8.DecodeRuneInString(s)
	return string(unicode.ToLower(r)) + s[size:]
}

// PascalCase converts a string to PascalCase. Word boundaries follow the
// shared tokenizer: case transitions, digits, and non-alphanumeric
// separators.
func PascalCase(s string) string {
	return strcase.ToPascal(s)
}

// DotCase snake-cases the input and then replaces only the first underscore
// with a dot, so multi-word strings keep their remaining underscores:
// "foo bar baz" becomes "foo.bar_baz".
func DotCase(s string) string {
	return strings.Replace(strcase.ToSnake(s), "_", ".", 1)
}
