// Package merge deep-merges JSON-like parameter maps.
package merge

import "errors"

// ErrNoSources indicates Recursive was called without any source maps.
var ErrNoSources = errors.New("merge: at least one source is required")

// Recursive merges the sources into target, in argument order, and returns
// target. The merge mutates target in place; it does not clone.
//
// For each source key: when the target slot already holds a map, the source
// value is merged into it recursively; otherwise the source value replaces
// the slot wholesale. Arrays are never merged element-wise — a non-map
// target slot is always replaced. Merging a non-map source value into a map
// slot leaves the slot untouched (a scalar has no keys to apply).
//
// No cycle detection is performed: a source that reaches target through
// nested containers recurses without bound. Serializing concurrent use of
// the same target is the caller's responsibility.
func Recursive(target map[string]any, sources ...map[string]any) (map[string]any, error) {
	if len(sources) == 0 {
		return nil, ErrNoSources
	}
	for _, src := range sources {
		mergeInto(target, src)
	}
	return target, nil
}

func mergeInto(target, src map[string]any) {
	for k, v := range src {
		if existing, ok := target[k].(map[string]any); ok {
			if vm, ok := v.(map[string]any); ok {
				mergeInto(existing, vm)
			}
			continue
		}
		target[k] = v
	}
}
