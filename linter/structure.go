// This file implements the structural-presence checks: the required
// top-level 'openapi', 'info', and 'paths' members.

package linter

import (
	"fmt"
	"strings"

	"github.com/BennettPhil/skill-openapi-validator/loader"
)

// checkVersion verifies the 'openapi' version field is present and declares
// a supported version (3.0.x or 3.1.x).
func (l *Linter) checkVersion(doc loader.Document, result *Result) {
	raw, ok := doc["openapi"]
	if !ok {
		l.addError(result, "openapi", "Missing required 'openapi' version field")
		return
	}

	version := stringify(raw)
	if !strings.HasPrefix(version, "3.0") && !strings.HasPrefix(version, "3.1") {
		l.addError(result, "openapi",
			fmt.Sprintf("Unsupported OpenAPI version: %s (expected 3.0.x or 3.1.x)", version))
	}
}

// checkInfo verifies the 'info' object exists and carries a non-empty title.
// A present but wrong-typed 'info' counts as missing.
func (l *Linter) checkInfo(doc loader.Document, result *Result) {
	info, ok := asObject(doc["info"])
	if !ok {
		l.addError(result, "info", "Missing required 'info' object")
		return
	}

	if title, present := info["title"]; !present || !truthy(title) {
		l.addError(result, "info.title", "Missing required 'info.title' field")
	}
}

// checkPaths verifies the 'paths' member is present. Presence only; the
// method and operation checks tolerate a wrong-typed 'paths' on their own.
func (l *Linter) checkPaths(doc loader.Document, result *Result) {
	if _, ok := doc["paths"]; !ok {
		l.addError(result, "paths", "Missing required 'paths' object")
	}
}
