// Package units converts time values between clock strings and seconds, and
// byte counts into human-readable sizes.
package units

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseClock converts an "h:m:s" string into seconds. Missing or
// unparseable components count as zero, and component ranges are not
// validated: "0:90:00" is ninety minutes. Components past the third are
// ignored.
func ParseClock(hms string) int {
	parts := strings.Split(hms, ":")
	h := component(parts, 0)
	m := component(parts, 1)
	s := component(parts, 2)
	return h*3600 + m*60 + s
}

func component(parts []string, i int) int {
	if i >= len(parts) {
		return 0
	}
	n, err := strconv.Atoi(strings.TrimSpace(parts[i]))
	if err != nil {
		return 0
	}
	return n
}

// FormatClock renders seconds as "HH:MM:SS" with zero-padded components.
// Hours are unbounded, not wrapped to 24.
func FormatClock(sec int) string {
	return fmt.Sprintf("%02d:%02d:%02d", sec/3600, sec%3600/60, sec%60)
}

// FormatClockMillis renders a millisecond count as "HH:MM:SS", discarding
// the sub-second remainder.
func FormatClockMillis(ms int64) string {
	return FormatClock(int(ms / 1000))
}
