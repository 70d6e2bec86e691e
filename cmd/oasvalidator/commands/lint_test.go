package commands

import (
	"bytes"
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.yaml.in/yaml/v4"
)

func fixture(name string) string {
	return filepath.Join("..", "..", "..", "testdata", name)
}

func TestRunLintCleanDocument(t *testing.T) {
	var buf bytes.Buffer
	code, err := runLint([]string{fixture("petstore.json")}, &buf)

	require.NoError(t, err)
	assert.Equal(t, ExitOK, code)
	assert.Equal(t, "No issues found.\n", buf.String())
}

func TestRunLintWarningsOnly(t *testing.T) {
	var buf bytes.Buffer
	code, err := runLint([]string{fixture("incomplete.json")}, &buf)

	require.NoError(t, err)
	assert.Equal(t, ExitOK, code, "warnings alone never fail the run")

	want := "[WARNING] info.description: Missing 'info.description'\n" +
		"[WARNING] paths./x.get: Operation is missing both 'summary' and 'description'\n" +
		"\nSummary: 0 error(s), 2 warning(s)\n"
	assert.Equal(t, want, buf.String())
}

func TestRunLintStrict(t *testing.T) {
	var buf bytes.Buffer
	code, err := runLint([]string{"--strict", fixture("incomplete.json")}, &buf)

	require.NoError(t, err)
	assert.Equal(t, ExitFindings, code, "promoted warnings fail the run")
	assert.Contains(t, buf.String(), "[ERROR] info.description:")
	assert.Contains(t, buf.String(), "Summary: 2 error(s), 0 warning(s)")
}

func TestRunLintNoWarnings(t *testing.T) {
	var buf bytes.Buffer
	code, err := runLint([]string{"--no-warnings", fixture("incomplete.json")}, &buf)

	require.NoError(t, err)
	assert.Equal(t, ExitOK, code)
	assert.Equal(t, "No issues found.\n", buf.String())
}

func TestRunLintQuiet(t *testing.T) {
	var buf bytes.Buffer
	code, err := runLint([]string{"-q", fixture("incomplete.json")}, &buf)

	require.NoError(t, err)
	assert.Equal(t, ExitOK, code)
	assert.Empty(t, buf.String(), "quiet mode writes nothing")
}

func TestRunLintJSONOutput(t *testing.T) {
	var buf bytes.Buffer
	code, err := runLint([]string{"--format=json", fixture("incomplete.json")}, &buf)

	require.NoError(t, err)
	assert.Equal(t, ExitOK, code)

	var report lintReport
	require.NoError(t, json.Unmarshal(buf.Bytes(), &report))
	assert.Equal(t, 0, report.Summary.Errors)
	assert.Equal(t, 2, report.Summary.Warnings)
	require.Len(t, report.Findings, 2)
	assert.Equal(t, "info.description", report.Findings[0].Path)
}

func TestRunLintJSONEmptyFindingsArray(t *testing.T) {
	var buf bytes.Buffer
	code, err := runLint([]string{"--format=json", fixture("petstore.json")}, &buf)

	require.NoError(t, err)
	assert.Equal(t, ExitOK, code)
	assert.Contains(t, buf.String(), `"findings": []`, "empty findings must render as [] not null")
}

func TestRunLintYAMLOutput(t *testing.T) {
	var buf bytes.Buffer
	code, err := runLint([]string{"--format=yaml", fixture("incomplete.json")}, &buf)

	require.NoError(t, err)
	assert.Equal(t, ExitOK, code)

	var report struct {
		Findings []struct {
			Severity string `yaml:"severity"`
			Path     string `yaml:"path"`
			Message  string `yaml:"message"`
		} `yaml:"findings"`
		Summary lintSummary `yaml:"summary"`
	}
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &report))
	assert.Equal(t, 2, report.Summary.Warnings)
	require.Len(t, report.Findings, 2)
	assert.Equal(t, "warning", report.Findings[0].Severity)
}

func TestRunLintUsageErrors(t *testing.T) {
	t.Run("no arguments", func(t *testing.T) {
		var buf bytes.Buffer
		code, err := runLint(nil, &buf)
		assert.Equal(t, ExitUsage, code)
		assert.Error(t, err)
	})

	t.Run("two file arguments", func(t *testing.T) {
		var buf bytes.Buffer
		code, err := runLint([]string{"a.json", "b.json"}, &buf)
		assert.Equal(t, ExitUsage, code)
		assert.Error(t, err)
	})

	t.Run("invalid format", func(t *testing.T) {
		var buf bytes.Buffer
		code, err := runLint([]string{"--format=xml", fixture("petstore.json")}, &buf)
		assert.Equal(t, ExitUsage, code)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid format 'xml'")
	})

	t.Run("missing file", func(t *testing.T) {
		var buf bytes.Buffer
		code, err := runLint([]string{fixture("nope.json")}, &buf)
		assert.Equal(t, ExitUsage, code)
		assert.Error(t, err)
	})

	t.Run("malformed document", func(t *testing.T) {
		var buf bytes.Buffer
		code, err := runLint([]string{fixture("malformed.json")}, &buf)
		assert.Equal(t, ExitUsage, code)
		assert.Error(t, err)
	})

	t.Run("non-object root", func(t *testing.T) {
		var buf bytes.Buffer
		code, err := runLint([]string{fixture("array-root.json")}, &buf)
		assert.Equal(t, ExitUsage, code)
		assert.Error(t, err)
	})
}

func TestRunLintFlagAfterPath(t *testing.T) {
	var buf bytes.Buffer
	code, err := runLint([]string{fixture("incomplete.json"), "--strict"}, &buf)

	require.NoError(t, err)
	assert.Equal(t, ExitFindings, code, "flags after the path must still apply")
}

func TestReorderArgs(t *testing.T) {
	tests := []struct {
		name string
		in   []string
		want []string
	}{
		{
			"flags already first",
			[]string{"--strict", "a.json"},
			[]string{"--strict", "a.json"},
		},
		{
			"flag after path",
			[]string{"a.json", "--strict"},
			[]string{"--strict", "a.json"},
		},
		{
			"format with separate value",
			[]string{"a.json", "--format", "json"},
			[]string{"--format", "json", "a.json"},
		},
		{
			"format with equals untouched",
			[]string{"a.json", "--format=json"},
			[]string{"--format=json", "a.json"},
		},
		{
			"bare dash is positional",
			[]string{"-", "--strict"},
			[]string{"--strict", "-"},
		},
		{
			"double dash terminates flags",
			[]string{"--strict", "--", "--weird-name.json"},
			[]string{"--strict", "--weird-name.json"},
		},
		{
			"empty input",
			nil,
			nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, reorderArgs(tt.in))
		})
	}
}
