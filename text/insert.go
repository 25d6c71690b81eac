package text

import "strings"

// InsertAt splices target into s at position. Positions are not validated:
// beyond the end of s the target is simply appended, and negative positions
// prepend.
func InsertAt(s, target string, position int) string {
	if position < 0 {
		position = 0
	}
	if position > len(s) {
		position = len(s)
	}
	return s[:position] + target + s[position:]
}

// EnsureStartsWith returns s unchanged when target already occurs at the
// given position (default 0), otherwise inserts target there.
func EnsureStartsWith(s, target string, position ...int) string {
	pos := 0
	if len(position) > 0 {
		pos = position[0]
	}
	if at := clamp(pos, len(s)); strings.HasPrefix(s[at:], target) {
		return s
	}
	return InsertAt(s, target, pos)
}

// EnsureEndsWith returns s unchanged when target already ends at the given
// position (default the end of s), otherwise inserts target there.
func EnsureEndsWith(s, target string, position ...int) string {
	pos := len(s)
	if len(position) > 0 {
		pos = position[0]
	}
	if at := clamp(pos, len(s)); strings.HasSuffix(s[:at], target) {
		return s
	}
	return InsertAt(s, target, pos)
}

func clamp(pos, max int) int {
	if pos < 0 {
		return 0
	}
	if pos > max {
		return max
	}
	return pos
}
