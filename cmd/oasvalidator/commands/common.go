// Package commands provides CLI command handlers for oasvalidator.
package commands

import (
	"encoding/json"
	"fmt"

	"go.yaml.in/yaml/v4"
)

// Output format constants
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// Exit codes form the CLI contract: ingestion failures and bad usage stop
// the run before the engine executes; findings only ever escalate the code.
const (
	// ExitOK means no error findings remained after any strict promotion.
	ExitOK = 0
	// ExitFindings means at least one error-severity finding remained.
	ExitFindings = 1
	// ExitUsage means bad usage or an ingestion failure (missing file,
	// unreadable file, malformed document, non-object root).
	ExitUsage = 2
)

// ValidateOutputFormat validates an output format and returns an error if invalid.
func ValidateOutputFormat(format string) error {
	if format != FormatText && format != FormatJSON && format != FormatYAML {
		return fmt.Errorf("invalid format '%s'. Valid formats: %s, %s, %s", format, FormatText, FormatJSON, FormatYAML)
	}
	return nil
}

// MarshalStructured marshals data in the specified structured format
// (json or yaml).
func MarshalStructured(data any, format string) ([]byte, error) {
	var bytes []byte
	var err error

	switch format {
	case FormatJSON:
		bytes, err = json.MarshalIndent(data, "", "  ")
	case FormatYAML:
		bytes, err = yaml.Marshal(data)
	default:
		return nil, fmt.Errorf("invalid format for structured output: %s", format)
	}

	if err != nil {
		return nil, fmt.Errorf("marshaling to %s: %w", format, err)
	}
	return bytes, nil
}
