package units

import (
	"fmt"
	"math"
)

const (
	kb = 1 << 10
	mb = 1 << 20
	gb = 1 << 30
	tb = 1 << 40
)

// HumanBytes renders a byte count in the largest fitting unit of the 1024
// ladder, formatted to two decimal places. Counts below 1024 are reported
// as a whole number of bytes, pluralized when greater than one. The input
// is floored and its sign discarded.
func HumanBytes(b float64) string {
	v := math.Floor(math.Abs(b))
	switch {
	case v < kb:
		unit := "byte"
		if v > 1 {
			unit = "bytes"
		}
		return fmt.Sprintf("%d %s", int64(v), unit)
	case v < mb:
		return fmt.Sprintf("%.2f KB", v/kb)
	case v < gb:
		return fmt.Sprintf("%.2f MB", v/mb)
	case v < tb:
		return fmt.Sprintf("%.2f GB", v/gb)
	default:
		return fmt.Sprintf("%.2f TB", v/tb)
	}
}

// HumanByteRate renders a byte count as a per-second rate.
func HumanByteRate(b float64) string {
	return HumanBytes(b) + "/s"
}
