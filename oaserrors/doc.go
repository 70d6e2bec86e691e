// Package oaserrors provides structured error types for the validator.
//
// These error types enable programmatic error handling via errors.Is() and
// errors.As(), allowing callers to distinguish between the categories of
// ingestion failures that stop a lint run before the engine executes:
//
//   - LoadError: the spec file is missing or unreadable
//   - ParseError: the raw text is not well-formed JSON or YAML
//   - DocumentError: the decoded root is not a JSON object
//   - ConfigError: invalid configuration or input options
//
// Ingestion failures are disjoint from lint findings. A finding is data
// returned by the engine; an ingestion failure means the engine never ran.
//
// # Usage with errors.Is
//
//	result, err := loader.Load("api.json")
//	if err != nil {
//	    switch {
//	    case errors.Is(err, oaserrors.ErrNotFound):
//	        // missing file
//	    case errors.Is(err, oaserrors.ErrParse):
//	        // malformed document; errors.As with *ParseError for line/column
//	    }
//	}
package oaserrors
