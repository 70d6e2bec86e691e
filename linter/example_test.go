package linter_test

import (
	"fmt"

	"github.com/BennettPhil/skill-openapi-validator/linter"
	"github.com/BennettPhil/skill-openapi-validator/loader"
)

func ExampleLinter_LintDocument() {
	doc := loader.Document{
		"openapi": "3.0.0",
		"info":    map[string]any{"title": "Petstore"},
		"paths": map[string]any{
			"/pets": map[string]any{
				"get": map[string]any{
					"responses": map[string]any{
						"200": map[string]any{"description": "A list of pets"},
					},
				},
			},
		},
	}

	result := linter.New().LintDocument(doc)

	fmt.Printf("valid=%v errors=%d warnings=%d\n", result.Valid, result.ErrorCount, result.WarningCount)
	for _, f := range result.Findings {
		fmt.Println(f.String())
	}
	// Output:
	// valid=true errors=0 warnings=2
	// [WARNING] info.description: Missing 'info.description'
	// [WARNING] paths./pets.get: Operation is missing both 'summary' and 'description'
}

func ExampleLintWithOptions() {
	doc := loader.Document{
		"info":  map[string]any{"title": "Petstore"},
		"paths": map[string]any{},
	}

	result, err := linter.LintWithOptions(
		linter.WithDocument(doc),
		linter.WithIncludeWarnings(false),
	)
	if err != nil {
		fmt.Println("lint failed:", err)
		return
	}

	for _, f := range result.Findings {
		fmt.Println(f.String())
	}
	// Output:
	// [ERROR] openapi: Missing required 'openapi' version field
}
