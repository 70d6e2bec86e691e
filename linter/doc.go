// Package linter evaluates the ordered rule set against a decoded OpenAPI
// document and reports findings.
//
// The engine is a pure function of its input: it receives an already-decoded
// document tree, runs each check in a fixed order, and returns an ordered
// sequence of findings. It performs no I/O of its own, never mutates the
// document, and is safe to invoke concurrently on distinct documents.
// Linting the same document twice yields list-equal results.
//
// # Rules
//
// Errors (structural defects):
//   - Missing or unsupported 'openapi' version (3.0.x and 3.1.x accepted)
//   - Missing 'info' object or empty 'info.title'
//   - Missing 'paths'
//   - Path item keys that are not HTTP methods (reserved keys excluded)
//
// Warnings (style and completeness):
//   - Missing 'info.description'
//   - Operations missing both 'summary' and 'description'
//   - Responses missing 'description'
//   - Paths mixing camelCase and snake_case segment naming
//   - Component schemas defined but never referenced by any $ref
//
// Checks tolerate wrong-typed or absent sections by treating them as absent,
// so one malformed section never prevents other checks from running.
//
// # Severity Levels
//
//   - SeverityError: defects that make the document invalid
//   - SeverityWarning: style or completeness issues (optional)
//
// Warnings can be suppressed by setting IncludeWarnings to false. Strict
// mode reclassifies every warning as an error after all checks have run,
// preserving order.
//
// # Determinism
//
// Identical input always yields identical findings in identical order. The
// check sequence is fixed, and within each check map keys are iterated in
// sorted order.
package linter
