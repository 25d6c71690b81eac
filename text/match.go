package text

import (
	"strings"

	"apputil/coerce"
)

// MatchesSubject reports whether input matches subject: exact equality of
// the string forms, or a case-insensitive substring hit for non-empty
// input. An empty input against a different subject does not match.
func MatchesSubject(subject, input any) bool {
	s := coerce.ToString(subject)
	in := coerce.ToString(input)
	if s == in {
		return true
	}
	if in == "" {
		return false
	}
	return strings.Contains(strings.ToLower(s), strings.ToLower(in))
}
