// Package oasvalidator provides static linting for OpenAPI 3.x documents.
//
// oasvalidator inspects an already-parsed OpenAPI document and reports
// structural defects (errors) and style or completeness issues (warnings) as
// an ordered sequence of findings. It never performs network calls and never
// mutates the document it inspects.
//
// # Overview
//
// The module consists of two primary packages:
//
//   - loader: Read and decode an OpenAPI document from a file, stdin, or reader
//   - linter: Evaluate the ordered rule set against a decoded document
//
// Supported document versions are OAS 3.0.x and OAS 3.1.x:
//   - OAS 3.0.x: https://spec.openapis.org/oas/v3.0.0.html
//   - OAS 3.1.x: https://spec.openapis.org/oas/v3.1.0.html
//
// # Quick Start
//
// Lint a specification file:
//
//	import "github.com/BennettPhil/skill-openapi-validator/linter"
//
//	result, err := linter.LintWithOptions(linter.WithFilePath("openapi.json"))
//	if err != nil {
//		log.Fatal(err)
//	}
//	for _, f := range result.Findings {
//		fmt.Println(f.String())
//	}
//
// The same engine is available on the command line:
//
//	oasvalidator openapi.json --strict --format=json
//
// Ingestion failures (missing file, malformed JSON/YAML, non-object root) are
// returned as structured errors from the loader and never appear as findings;
// see the oaserrors package for the error taxonomy.
package oasvalidator
