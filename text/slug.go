package text

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// ErrSlugBounds indicates Slugify was given a min/max combination outside
// the documented branches.
var ErrSlugBounds = errors.New("text: invalid slug length bounds")

// Slugify lowercases s, strips diacritics, and joins the alphanumeric runs
// that satisfy the length bounds with hyphens. A nil bound is an omitted
// bound; a pointer to zero is an explicit, falsy bound and does not select
// any branch:
//
//	min nil, max nil     runs of length >= 1
//	min n, max m (n,m>0) runs of length in [n, m]
//	min n (n>0)          runs of length >= n
//	min nil, max m (m>0) runs of length up to m
//
// Any other combination returns ErrSlugBounds. An empty input returns ""
// before the bounds are inspected.
func Slugify(s string, min, max *int) (string, error) {
	if s == "" {
		return "", nil
	}
	s = stripDiacritics(strings.ToLower(s))

	var pattern string
	switch {
	case min == nil && max == nil:
		pattern = "[a-z0-9]+"
	case positive(min) && positive(max):
		pattern = fmt.Sprintf("[a-z0-9]{%d,%d}", *min, *max)
	case positive(min):
		pattern = fmt.Sprintf("[a-z0-9]{%d,}", *min)
	case min == nil && positive(max):
		pattern = fmt.Sprintf("[a-z0-9]{1,%d}", *max)
	default:
		return "", fmt.Errorf("%w: min=%s max=%s", ErrSlugBounds, boundString(min), boundString(max))
	}

	re, err := regexp.Compile(pattern)
	if err != nil {
		return "", fmt.Errorf("%w: min=%s max=%s", ErrSlugBounds, boundString(min), boundString(max))
	}
	return strings.Join(re.FindAllString(s, -1), "-"), nil
}

func positive(p *int) bool {
	return p != nil && *p > 0
}

func boundString(p *int) string {
	if p == nil {
		return "nil"
	}
	return fmt.Sprint(*p)
}

// stripDiacritics removes combining marks after canonical decomposition,
// turning "Héllo" into "Hello".
func stripDiacritics(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return out
}
