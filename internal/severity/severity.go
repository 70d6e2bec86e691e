// Package severity provides the severity levels for findings reported by the
// linter package.
//
// Two levels exist:
//   - SeverityError: structural defects that make the document invalid
//   - SeverityWarning: style or completeness issues that do not make the
//     document invalid
package severity

import "fmt"

// Severity indicates the severity level of a finding.
type Severity int

const (
	// SeverityError indicates a structural defect that makes the document invalid.
	SeverityError Severity = iota

	// SeverityWarning indicates a style or completeness issue that should be
	// addressed but does not make the document invalid.
	SeverityWarning
)

// String returns the string representation of the severity level.
func (s Severity) String() string {
	switch s {
	case SeverityError:
		return "error"
	case SeverityWarning:
		return "warning"
	default:
		return "unknown"
	}
}

// MarshalText implements encoding.TextMarshaler so findings serialize the
// severity as its lowercase string in both JSON and YAML output.
func (s Severity) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *Severity) UnmarshalText(text []byte) error {
	switch string(text) {
	case "error":
		*s = SeverityError
	case "warning":
		*s = SeverityWarning
	default:
		return fmt.Errorf("unknown severity %q", string(text))
	}
	return nil
}

// MarshalYAML implements yaml.Marshaler for go.yaml.in/yaml/v4, which does
// not consult encoding.TextMarshaler on its own.
func (s Severity) MarshalYAML() (any, error) {
	return s.String(), nil
}
