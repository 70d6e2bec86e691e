package linter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckMethods(t *testing.T) {
	t.Run("invalid method reported with original casing", func(t *testing.T) {
		result := New().LintDocument(mustDoc(t, `{
			"openapi": "3.0.0", "info": {"title": "T"},
			"paths": {"/x": {"foo": {}}}
		}`))

		found := findingsAt(result, "paths./x.foo")
		require.Len(t, found, 1)
		assert.Equal(t, SeverityError, found[0].Severity)
		assert.Equal(t, "Invalid HTTP method: 'foo'", found[0].Message)
	})

	t.Run("uppercase method accepted", func(t *testing.T) {
		result := New().LintDocument(mustDoc(t, `{
			"openapi": "3.0.0", "info": {"title": "T", "description": "d"},
			"paths": {"/x": {"GET": {"summary": "s", "responses": {}}}}
		}`))
		assert.Zero(t, result.ErrorCount)
	})

	t.Run("mixed-case invalid method preserves spelling", func(t *testing.T) {
		result := New().LintDocument(mustDoc(t, `{
			"openapi": "3.0.0", "info": {"title": "T"},
			"paths": {"/x": {"GeTt": {}}}
		}`))
		found := findingsAt(result, "paths./x.GeTt")
		require.Len(t, found, 1)
		assert.Equal(t, "Invalid HTTP method: 'GeTt'", found[0].Message)
	})

	t.Run("reserved keys are exempt", func(t *testing.T) {
		result := New().LintDocument(mustDoc(t, `{
			"openapi": "3.0.0", "info": {"title": "T", "description": "d"},
			"paths": {"/x": {
				"parameters": [],
				"summary": "s",
				"description": "d",
				"servers": [],
				"$ref": "#/components/pathItems/x"
			}}
		}`))
		assert.Zero(t, result.ErrorCount, "no reserved key may be flagged: %v", result.Findings)
	})

	t.Run("all eight methods accepted", func(t *testing.T) {
		result := New().LintDocument(mustDoc(t, `{
			"openapi": "3.0.0", "info": {"title": "T", "description": "d"},
			"paths": {"/x": {
				"get": {"summary": "s"}, "put": {"summary": "s"},
				"post": {"summary": "s"}, "delete": {"summary": "s"},
				"options": {"summary": "s"}, "head": {"summary": "s"},
				"patch": {"summary": "s"}, "trace": {"summary": "s"}
			}}
		}`))
		assert.Zero(t, result.ErrorCount)
	})

	t.Run("wrong-typed path item skipped", func(t *testing.T) {
		result := New().LintDocument(mustDoc(t, `{
			"openapi": "3.0.0", "info": {"title": "T", "description": "d"},
			"paths": {"/x": "not an object"}
		}`))
		assert.Zero(t, result.ErrorCount)
	})

	t.Run("findings ordered by path then method key", func(t *testing.T) {
		result := New().LintDocument(mustDoc(t, `{
			"openapi": "3.0.0", "info": {"title": "T", "description": "d"},
			"paths": {"/b": {"zzz": {}}, "/a": {"aaa": {}, "mmm": {}}}
		}`))

		var paths []string
		for _, f := range result.Findings {
			if f.Severity == SeverityError {
				paths = append(paths, f.Path)
			}
		}
		assert.Equal(t, []string{"paths./a.aaa", "paths./a.mmm", "paths./b.zzz"}, paths)
	})
}
