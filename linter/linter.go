package linter

import (
	"slices"
	"time"

	"github.com/BennettPhil/skill-openapi-validator/internal/findings"
	"github.com/BennettPhil/skill-openapi-validator/internal/severity"
	"github.com/BennettPhil/skill-openapi-validator/loader"
)

// Severity indicates the severity level of a finding
type Severity = severity.Severity

const (
	// SeverityError indicates a structural defect that makes the document invalid
	SeverityError = severity.SeverityError
	// SeverityWarning indicates a style or completeness issue
	SeverityWarning = severity.SeverityWarning
)

// Finding represents a single issue found while linting
type Finding = findings.Finding

// Result contains the results of linting an OpenAPI document
type Result struct {
	// Valid is true if no errors were found (warnings are allowed)
	Valid bool `json:"valid" yaml:"valid"`
	// Findings contains all findings in evaluation order
	Findings []Finding `json:"findings" yaml:"findings"`
	// ErrorCount is the total number of error findings
	ErrorCount int `json:"error_count" yaml:"error_count"`
	// WarningCount is the total number of warning findings
	WarningCount int `json:"warning_count" yaml:"warning_count"`
	// SourcePath is the source path of the linted document (empty when
	// linting an in-memory document)
	SourcePath string `json:"source_path,omitempty" yaml:"source_path,omitempty"`
	// SourceFormat is the format of the source (JSON or YAML)
	SourceFormat loader.SourceFormat `json:"-" yaml:"-"`
	// SourceSize is the size of the source data in bytes
	SourceSize int64 `json:"-" yaml:"-"`
	// LoadTime is the time taken to load the source data
	LoadTime time.Duration `json:"-" yaml:"-"`
}

// Linter evaluates the rule set against OpenAPI documents.
type Linter struct {
	// IncludeWarnings determines whether warning findings are reported.
	// Strict promotion happens before this filter, so strict mode reports
	// everything even when warnings are suppressed.
	IncludeWarnings bool
	// StrictMode reclassifies every warning as an error after all checks run
	StrictMode bool
}

// New creates a Linter with default settings.
func New() *Linter {
	return &Linter{IncludeWarnings: true}
}

// Lint loads the document at path and evaluates the rule set against it.
// Loading failures are returned as oaserrors types and produce no Result.
func (l *Linter) Lint(path string) (*Result, error) {
	loaded, err := loader.Load(path)
	if err != nil {
		return nil, err
	}
	return l.LintLoaded(*loaded), nil
}

// LintLoaded evaluates the rule set against an already-loaded document,
// carrying the load metadata into the result.
func (l *Linter) LintLoaded(loaded loader.LoadResult) *Result {
	result := &Result{
		SourcePath:   loaded.SourcePath,
		SourceFormat: loaded.SourceFormat,
		SourceSize:   loaded.SourceSize,
		LoadTime:     loaded.LoadTime,
	}
	l.runChecks(loaded.Document, result)
	l.finalize(result)
	return result
}

// LintDocument evaluates the rule set against an in-memory document tree.
func (l *Linter) LintDocument(doc loader.Document) *Result {
	result := &Result{}
	l.runChecks(doc, result)
	l.finalize(result)
	return result
}

// runChecks runs every check in the fixed evaluation order. The order is
// part of the output contract: error checks first, then warning checks, each
// appending findings in document-key-sorted order. No check depends on
// another's output; checkUnusedSchemas builds its own reference index.
func (l *Linter) runChecks(doc loader.Document, result *Result) {
	l.checkVersion(doc, result)
	l.checkInfo(doc, result)
	l.checkPaths(doc, result)
	l.checkMethods(doc, result)
	l.checkInfoDescription(doc, result)
	l.checkOperations(doc, result)
	l.checkPathNaming(doc, result)
	l.checkUnusedSchemas(doc, result)
}

// finalize applies strict promotion and warning suppression, then derives
// the counts. Promotion runs first so --strict --no-warnings still reports
// every finding (as errors).
func (l *Linter) finalize(result *Result) {
	if l.StrictMode {
		findings.PromoteWarnings(result.Findings)
	}
	if !l.IncludeWarnings {
		result.Findings = slices.DeleteFunc(result.Findings, func(f Finding) bool {
			return f.Severity == SeverityWarning
		})
	}
	result.ErrorCount, result.WarningCount = findings.Count(result.Findings)
	result.Valid = result.ErrorCount == 0
}

// addError appends an error finding to the result.
func (l *Linter) addError(result *Result, path, message string) {
	result.Findings = append(result.Findings, findings.New(SeverityError, path, message))
}

// addWarning appends a warning finding to the result.
func (l *Linter) addWarning(result *Result, path, message string) {
	result.Findings = append(result.Findings, findings.New(SeverityWarning, path, message))
}
