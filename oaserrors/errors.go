package oaserrors

import (
	"errors"
	"fmt"
)

// Sentinel errors for use with errors.Is().
// These allow quick checks without type assertions.
var (
	// ErrNotFound indicates the spec file does not exist.
	ErrNotFound = errors.New("file not found")

	// ErrUnreadable indicates the spec file exists but could not be read.
	ErrUnreadable = errors.New("file unreadable")

	// ErrParse indicates the raw text is not well-formed JSON or YAML.
	ErrParse = errors.New("parse error")

	// ErrNotObject indicates the decoded document root is not an object.
	ErrNotObject = errors.New("document root is not an object")

	// ErrConfig indicates an invalid configuration.
	ErrConfig = errors.New("configuration error")
)

// LoadError represents a failure to read the spec source.
type LoadError struct {
	// Path is the file path that failed to load
	Path string
	// NotFound is true when the file does not exist, false when it exists
	// but could not be read
	NotFound bool
	// Cause is the underlying error, if any
	Cause error
}

// Error returns a human-readable error message.
func (e *LoadError) Error() string {
	if e.NotFound {
		return fmt.Sprintf("file not found: %s", e.Path)
	}
	msg := fmt.Sprintf("cannot read file: %s", e.Path)
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause for error chaining.
func (e *LoadError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type.
func (e *LoadError) Is(target error) bool {
	if e.NotFound {
		return target == ErrNotFound
	}
	return target == ErrUnreadable
}

// ParseError represents a failure to decode the raw spec text.
type ParseError struct {
	// Path is the file path or source identifier
	Path string
	// Line is the line number where the error occurred (0 if unknown)
	Line int
	// Column is the column number where the error occurred (0 if unknown)
	Column int
	// Message describes the parsing failure
	Message string
	// Cause is the underlying decoder error, if any
	Cause error
}

// Error returns a human-readable error message.
func (e *ParseError) Error() string {
	msg := "invalid document"
	if e.Path != "" {
		msg += " in " + e.Path
	}
	if e.Line > 0 {
		msg += fmt.Sprintf(" at line %d", e.Line)
		if e.Column > 0 {
			msg += fmt.Sprintf(", column %d", e.Column)
		}
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause for error chaining.
func (e *ParseError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type.
func (e *ParseError) Is(target error) bool {
	return target == ErrParse
}

// DocumentError represents a structurally unusable document, such as a spec
// whose decoded root is an array or scalar instead of an object.
type DocumentError struct {
	// Path is the file path or source identifier
	Path string
	// Message describes why the document is unusable
	Message string
}

// Error returns a human-readable error message.
func (e *DocumentError) Error() string {
	msg := e.Message
	if msg == "" {
		msg = "document is not usable"
	}
	if e.Path != "" {
		msg += " (" + e.Path + ")"
	}
	return msg
}

// Is reports whether target matches this error type.
func (e *DocumentError) Is(target error) bool {
	return target == ErrNotObject
}

// ConfigError represents an invalid configuration or input option.
type ConfigError struct {
	// Option is the option or flag that was invalid
	Option string
	// Message describes the configuration problem
	Message string
}

// Error returns a human-readable error message.
func (e *ConfigError) Error() string {
	if e.Option != "" {
		return fmt.Sprintf("invalid %s: %s", e.Option, e.Message)
	}
	return e.Message
}

// Is reports whether target matches this error type.
func (e *ConfigError) Is(target error) bool {
	return target == ErrConfig
}

// IsIngestion reports whether err belongs to the ingestion failure tier:
// missing or unreadable files, malformed documents, non-object roots, and
// invalid configuration. Ingestion failures terminate a run with exit code 2
// before the lint engine executes.
func IsIngestion(err error) bool {
	return errors.Is(err, ErrNotFound) ||
		errors.Is(err, ErrUnreadable) ||
		errors.Is(err, ErrParse) ||
		errors.Is(err, ErrNotObject) ||
		errors.Is(err, ErrConfig)
}
