package naming

import (
	"strings"
	"unicode"
)

// IsPathParameter reports whether a path segment is a template parameter
// placeholder such as "{petId}".
func IsPathParameter(segment string) bool {
	return strings.HasPrefix(segment, "{")
}

// HasCamelHump reports whether a path segment uses camelCase, detected as a
// lowercase letter immediately followed by an uppercase letter.
// Parameter placeholders and empty segments never match.
func HasCamelHump(segment string) bool {
	if segment == "" || IsPathParameter(segment) {
		return false
	}
	runes := []rune(segment)
	for i := 0; i < len(runes)-1; i++ {
		if unicode.IsLower(runes[i]) && unicode.IsUpper(runes[i+1]) {
			return true
		}
	}
	return false
}

// HasSnakeSeparator reports whether a path segment uses snake_case, detected
// as the presence of an underscore. Parameter placeholders and empty
// segments never match.
func HasSnakeSeparator(segment string) bool {
	if segment == "" || IsPathParameter(segment) {
		return false
	}
	return strings.Contains(segment, "_")
}

// PathSegments splits a path template on "/" and returns the segments worth
// classifying: empty segments and parameter placeholders are dropped.
// Example: "/users/{userId}/user_tags" -> ["users", "user_tags"]
func PathSegments(path string) []string {
	var segments []string
	for _, seg := range strings.Split(path, "/") {
		if seg == "" || IsPathParameter(seg) {
			continue
		}
		segments = append(segments, seg)
	}
	return segments
}
