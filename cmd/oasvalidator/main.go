package main

import (
	"fmt"
	"os"

	oasvalidator "github.com/BennettPhil/skill-openapi-validator"
	"github.com/BennettPhil/skill-openapi-validator/cmd/oasvalidator/commands"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

// run dispatches to the subcommands. A first argument that is not a known
// command is treated as a spec path, so `oasvalidator openapi.json --strict`
// works without naming the lint command.
func run(args []string) int {
	if len(args) == 0 {
		printUsage()
		return commands.ExitUsage
	}

	switch args[0] {
	case "version", "-v", "--version":
		fmt.Printf("oasvalidator v%s\n", oasvalidator.Version())
		return commands.ExitOK
	case "help", "-h", "--help":
		printUsage()
		return commands.ExitOK
	case "lint":
		return runLint(args[1:])
	case "mcp":
		// Server failures are usage/environment problems, never findings.
		if err := commands.HandleMCP(args[1:]); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return commands.ExitUsage
		}
		return commands.ExitOK
	default:
		return runLint(args)
	}
}

func runLint(args []string) int {
	code, err := commands.HandleLint(args)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	}
	return code
}

func printUsage() {
	fmt.Println("oasvalidator - static linter for OpenAPI 3.x documents")
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Println("  oasvalidator <file|-> [flags]")
	fmt.Println("  oasvalidator <command> [arguments]")
	fmt.Println()
	fmt.Println("Commands:")
	fmt.Println("  lint       Lint an OpenAPI document (the default command)")
	fmt.Println("  mcp        Serve the linter as an MCP tool over stdio")
	fmt.Println("  version    Show version information")
	fmt.Println("  help       Show this help message")
	fmt.Println()
	fmt.Println("Lint flags:")
	fmt.Println("  --strict           Promote every warning to an error")
	fmt.Println("  --format=FORMAT    Output format: text (default), json, or yaml")
	fmt.Println("  --no-warnings      Suppress warning findings")
	fmt.Println("  -q, --quiet        No text output, exit code only")
	fmt.Println()
	fmt.Println("Exit codes: 0 clean, 1 errors found, 2 usage or ingestion failure")
	fmt.Println()
	fmt.Println("Use 'oasvalidator lint -h' for detailed lint flags and examples.")
}
