// This file implements the path-naming consistency check.

package linter

import (
	"github.com/BennettPhil/skill-openapi-validator/internal/naming"
	"github.com/BennettPhil/skill-openapi-validator/loader"
)

// checkPathNaming classifies each path as camelCase or snake_case from its
// non-parameter segments and warns once, at 'paths', when both styles are in
// use. camelCase detection takes priority per path: the segment scan stops at
// the first camel hump, so a segment containing both a hump and an
// underscore counts only as camelCase.
func (l *Linter) checkPathNaming(doc loader.Document, result *Result) {
	paths, ok := asObject(doc["paths"])
	if !ok {
		return
	}

	var hasCamel, hasSnake bool
	for _, pathKey := range sortedKeys(paths) {
		for _, segment := range naming.PathSegments(pathKey) {
			if naming.HasCamelHump(segment) {
				hasCamel = true
				break
			}
			if naming.HasSnakeSeparator(segment) {
				hasSnake = true
				break
			}
		}
	}

	if hasCamel && hasSnake {
		l.addWarning(result, "paths", "Inconsistent path naming: mix of camelCase and snake_case detected")
	}
}
