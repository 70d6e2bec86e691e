package commands

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/BennettPhil/skill-openapi-validator/internal/cliutil"
	"github.com/BennettPhil/skill-openapi-validator/linter"
	"github.com/BennettPhil/skill-openapi-validator/loader"
)

// LintFlags contains flags for the lint command
type LintFlags struct {
	Strict     bool
	NoWarnings bool
	Quiet      bool
	Verbose    bool
	Format     string
}

// SetupLintFlags creates and configures a FlagSet for the lint command.
// Returns the FlagSet and a LintFlags struct with bound flag variables.
func SetupLintFlags() (*flag.FlagSet, *LintFlags) {
	fs := flag.NewFlagSet("lint", flag.ContinueOnError)
	flags := &LintFlags{}

	fs.BoolVar(&flags.Strict, "strict", false, "promote every warning to an error")
	fs.BoolVar(&flags.NoWarnings, "no-warnings", false, "suppress warning findings (only show errors)")
	fs.BoolVar(&flags.Quiet, "q", false, "quiet mode: no text output, exit code only")
	fs.BoolVar(&flags.Quiet, "quiet", false, "quiet mode: no text output, exit code only")
	fs.BoolVar(&flags.Verbose, "verbose", false, "log loader diagnostics to stderr")
	fs.StringVar(&flags.Format, "format", FormatText, "output format: text, json, or yaml")

	fs.Usage = func() {
		cliutil.Writef(fs.Output(), "Usage: oasvalidator lint [flags] <file|->\n\n")
		cliutil.Writef(fs.Output(), "Lint an OpenAPI 3.x document (JSON or YAML) and report findings.\n\n")
		cliutil.Writef(fs.Output(), "Flags:\n")
		fs.PrintDefaults()
		cliutil.Writef(fs.Output(), "\nOutput Formats:\n")
		cliutil.Writef(fs.Output(), "  text (default)  One [ERROR|WARNING] line per finding plus a summary\n")
		cliutil.Writef(fs.Output(), "  json            {findings: [...], summary: {errors, warnings}}\n")
		cliutil.Writef(fs.Output(), "  yaml            Same shape as json, rendered as YAML\n")
		cliutil.Writef(fs.Output(), "\nExamples:\n")
		cliutil.Writef(fs.Output(), "  oasvalidator openapi.json\n")
		cliutil.Writef(fs.Output(), "  oasvalidator lint --strict openapi.json\n")
		cliutil.Writef(fs.Output(), "  oasvalidator openapi.json --format=json | jq '.summary'\n")
		cliutil.Writef(fs.Output(), "  cat openapi.yaml | oasvalidator lint -q -\n")
		cliutil.Writef(fs.Output(), "\nExit Codes:\n")
		cliutil.Writef(fs.Output(), "  0    No errors (after any --strict promotion)\n")
		cliutil.Writef(fs.Output(), "  1    At least one error-severity finding\n")
		cliutil.Writef(fs.Output(), "  2    Bad usage, missing/unreadable file, malformed document, or non-object root\n")
	}

	return fs, flags
}

// lintReport is the structured output form: the ordered findings plus a
// counted summary.
type lintReport struct {
	Findings []linter.Finding `json:"findings" yaml:"findings"`
	Summary  lintSummary      `json:"summary" yaml:"summary"`
}

type lintSummary struct {
	Errors   int `json:"errors" yaml:"errors"`
	Warnings int `json:"warnings" yaml:"warnings"`
}

// HandleLint executes the lint command and returns the process exit code
// along with any error worth reporting to stderr.
func HandleLint(args []string) (int, error) {
	return runLint(args, os.Stdout)
}

// runLint is HandleLint with an injectable output writer.
func runLint(args []string, stdout io.Writer) (int, error) {
	fs, flags := SetupLintFlags()

	if err := fs.Parse(reorderArgs(args)); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return ExitOK, nil
		}
		return ExitUsage, err
	}

	if fs.NArg() != 1 {
		fs.Usage()
		return ExitUsage, fmt.Errorf("lint command requires exactly one file path or '-' for stdin")
	}
	specPath := fs.Arg(0)

	// Validate the format flag before touching the filesystem
	if err := ValidateOutputFormat(flags.Format); err != nil {
		return ExitUsage, err
	}

	opts := []linter.Option{
		linter.WithFilePath(specPath),
		linter.WithStrictMode(flags.Strict),
		linter.WithIncludeWarnings(!flags.NoWarnings),
	}
	if flags.Verbose {
		handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})
		opts = append(opts, linter.WithLogger(loader.NewSlogAdapter(slog.New(handler))))
	}

	// Ingestion failures (file, decode, root guard) arrive here as
	// oaserrors values; they are fatal and never become findings.
	result, err := linter.LintWithOptions(opts...)
	if err != nil {
		return ExitUsage, err
	}

	switch flags.Format {
	case FormatJSON, FormatYAML:
		report := lintReport{
			// Non-nil so an empty result renders as "findings": []
			Findings: append(make([]linter.Finding, 0, len(result.Findings)), result.Findings...),
			Summary: lintSummary{
				Errors:   result.ErrorCount,
				Warnings: result.WarningCount,
			},
		}
		out, err := MarshalStructured(report, flags.Format)
		if err != nil {
			return ExitUsage, err
		}
		cliutil.Writef(stdout, "%s\n", out)
	default:
		if !flags.Quiet {
			renderText(stdout, result)
		}
	}

	if result.ErrorCount > 0 {
		return ExitFindings, nil
	}
	return ExitOK, nil
}

// renderText writes the human-readable form: one line per finding, or
// "No issues found." for a clean document, followed by the summary.
func renderText(w io.Writer, result *linter.Result) {
	if len(result.Findings) == 0 {
		cliutil.Writeln(w, "No issues found.")
		return
	}
	for _, f := range result.Findings {
		cliutil.Writeln(w, f.String())
	}
	cliutil.Writef(w, "\nSummary: %d error(s), %d warning(s)\n", result.ErrorCount, result.WarningCount)
}

// reorderArgs moves flags ahead of positional arguments so the spec path may
// appear before or after the flags ("lint api.json --strict" works). The
// stdlib flag package stops parsing at the first non-flag argument, so this
// keeps both orders valid. "--format" is the only flag that consumes a
// separate value; "-" alone is the stdin positional, and everything after
// "--" is positional.
func reorderArgs(args []string) []string {
	var flagArgs, positional []string
	for i := 0; i < len(args); i++ {
		arg := args[i]
		if arg == "--" {
			positional = append(positional, args[i+1:]...)
			break
		}
		if strings.HasPrefix(arg, "-") && arg != "-" {
			flagArgs = append(flagArgs, arg)
			name := strings.TrimLeft(arg, "-")
			if name == "format" && i+1 < len(args) {
				i++
				flagArgs = append(flagArgs, args[i])
			}
			continue
		}
		positional = append(positional, arg)
	}
	return append(flagArgs, positional...)
}
