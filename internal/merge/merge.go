// Package merge combines preset defaults with user supplied configuration.
package merge

import "slices"

// Merge deep merges overrides on top of defaults and returns a new map.
//
// Nested maps are merged key by key and sequences are concatenated with the
// defaults first. Any other value in overrides replaces the default, except a
// nil value which leaves the default in place. Neither input is modified.
func Merge(defaults, overrides map[string]any) map[string]any {
	merged := make(map[string]any, len(defaults)+len(overrides))
	for key, value := range defaults {
		merged[key] = clone(value)
	}

	for key, value := range overrides {
		if value == nil {
			continue
		}

		existing, ok := merged[key]
		if !ok || existing == nil {
			merged[key] = clone(value)
			continue
		}

		switch current := existing.(type) {
		case map[string]any:
			if next, ok := value.(map[string]any); ok {
				merged[key] = Merge(current, next)
				continue
			}
		case []any:
			if next, ok := value.([]any); ok {
				merged[key] = append(current, clone(next).([]any)...)
				continue
			}
		}

		merged[key] = clone(value)
	}

	return merged
}

func clone(value any) any {
	switch v := value.(type) {
	case map[string]any:
		out := make(map[string]any, len(v))
		for key, item := range v {
			out[key] = clone(item)
		}
		return out
	case []any:
		out := slices.Clone(v)
		for i, item := range out {
			out[i] = clone(item)
		}
		return out
	default:
		return value
	}
}
