package linter

import (
	"fmt"
	"maps"
	"math"
	"slices"
	"strconv"
)

// asObject returns v as an object, or nil/false when v is absent or of a
// different shape. Checks use it to skip malformed sections instead of
// erroring on them.
func asObject(v any) (map[string]any, bool) {
	m, ok := v.(map[string]any)
	return m, ok
}

// sortedKeys returns the keys of m in sorted order. Go maps do not preserve
// document key order, so sorted iteration is what keeps finding order
// deterministic across runs.
func sortedKeys(m map[string]any) []string {
	return slices.Sorted(maps.Keys(m))
}

// truthy reports whether a decoded value counts as "present" for the
// completeness checks: nil, empty strings, false, zero numbers, and empty
// containers all count as absent.
func truthy(v any) bool {
	switch val := v.(type) {
	case nil:
		return false
	case bool:
		return val
	case string:
		return val != ""
	case float64:
		return val != 0
	case int:
		return val != 0
	case int64:
		return val != 0
	case []any:
		return len(val) > 0
	case map[string]any:
		return len(val) > 0
	default:
		return true
	}
}

// stringify renders a scalar document value for use in a message. Strings
// pass through unquoted; other scalars render in their natural form.
func stringify(v any) string {
	switch val := v.(type) {
	case string:
		return val
	case float64:
		// Integral floats keep one decimal place, so a numeric 3.0 in the
		// document renders as "3.0" and satisfies the version prefix check.
		if val == math.Trunc(val) && !math.IsInf(val, 0) {
			return strconv.FormatFloat(val, 'f', 1, 64)
		}
		return strconv.FormatFloat(val, 'g', -1, 64)
	case int:
		return strconv.Itoa(val)
	case int64:
		return strconv.FormatInt(val, 10)
	case bool:
		return strconv.FormatBool(val)
	case nil:
		return "null"
	default:
		return fmt.Sprintf("%v", val)
	}
}
