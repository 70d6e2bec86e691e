// Package naming provides path-segment case heuristics for the linter.
//
// This internal package classifies URL path segments as camelCase or
// snake_case and splits path templates into the segments worth classifying
// (parameter placeholders and empty segments are skipped). It backs the
// linter's path-naming consistency check.
//
// As an internal package, these functions are not part of the public API
// and may change without notice.
package naming
