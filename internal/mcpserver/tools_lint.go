package mcpserver

import (
	"context"

	"github.com/BennettPhil/skill-openapi-validator/linter"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

type lintInput struct {
	Spec       specInput `json:"spec"                  jsonschema:"The OpenAPI document to lint"`
	Strict     bool      `json:"strict,omitempty"      jsonschema:"Promote every warning to an error"`
	NoWarnings bool      `json:"no_warnings,omitempty" jsonschema:"Report errors only"`
}

type lintFinding struct {
	Severity string `json:"severity"`
	Path     string `json:"path"`
	Message  string `json:"message"`
}

type lintOutput struct {
	Valid        bool          `json:"valid"`
	ErrorCount   int           `json:"error_count"`
	WarningCount int           `json:"warning_count"`
	Findings     []lintFinding `json:"findings"`
}

func handleLint(_ context.Context, _ *mcp.CallToolRequest, input lintInput) (*mcp.CallToolResult, lintOutput, error) {
	loaded, err := input.Spec.resolve()
	if err != nil {
		return errResult(err), lintOutput{}, nil
	}

	result, err := linter.LintWithOptions(
		linter.WithLoaded(*loaded),
		linter.WithStrictMode(input.Strict),
		linter.WithIncludeWarnings(!input.NoWarnings),
	)
	if err != nil {
		return errResult(err), lintOutput{}, nil
	}

	output := lintOutput{
		Valid:        result.Valid,
		ErrorCount:   result.ErrorCount,
		WarningCount: result.WarningCount,
		Findings:     make([]lintFinding, 0, len(result.Findings)),
	}
	for _, f := range result.Findings {
		output.Findings = append(output.Findings, lintFinding{
			Severity: f.Severity.String(),
			Path:     f.Path,
			Message:  f.Message,
		})
	}
	return nil, output, nil
}
