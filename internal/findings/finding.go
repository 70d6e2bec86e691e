// Package findings provides the immutable finding record emitted by the
// linter's checks.
package findings

import (
	"fmt"
	"strings"

	"github.com/BennettPhil/skill-openapi-validator/internal/severity"
)

// Finding represents a single issue found while linting a document.
// Checks construct findings and never mutate them afterward; the only
// allowed transform is warning promotion in strict mode.
type Finding struct {
	// Severity is the severity level of the finding
	Severity severity.Severity `json:"severity" yaml:"severity"`
	// Path is the dotted JSON path to the offending node (e.g., "paths./pets.get.responses.200")
	Path string `json:"path" yaml:"path"`
	// Message is a human-readable description of the issue
	Message string `json:"message" yaml:"message"`
}

// New constructs a finding. No validation of field values is performed;
// checks are trusted to supply well-formed values.
func New(sev severity.Severity, path, message string) Finding {
	return Finding{Severity: sev, Path: path, Message: message}
}

// String returns the single-line text representation of the finding,
// formatted as "[ERROR|WARNING] <path>: <message>".
func (f Finding) String() string {
	return fmt.Sprintf("[%s] %s: %s", strings.ToUpper(f.Severity.String()), f.Path, f.Message)
}

// PromoteWarnings reclassifies every warning in fs as an error, in place,
// preserving paths, messages, and relative ordering. Errors are unaffected.
func PromoteWarnings(fs []Finding) {
	for i := range fs {
		if fs[i].Severity == severity.SeverityWarning {
			fs[i].Severity = severity.SeverityError
		}
	}
}

// Count returns the number of error and warning findings in fs.
func Count(fs []Finding) (errors, warnings int) {
	for _, f := range fs {
		switch f.Severity {
		case severity.SeverityError:
			errors++
		case severity.SeverityWarning:
			warnings++
		}
	}
	return errors, warnings
}
