// This file implements the descriptive-completeness checks: info
// description, operation summaries, and response descriptions.

package linter

import (
	"fmt"

	"github.com/BennettPhil/skill-openapi-validator/loader"
)

// checkInfoDescription warns when the info object lacks a non-empty
// description. Skipped entirely when 'info' is absent or wrong-typed; the
// structural check already reported that.
func (l *Linter) checkInfoDescription(doc loader.Document, result *Result) {
	info, ok := asObject(doc["info"])
	if !ok {
		return
	}
	if desc, present := info["description"]; !present || !truthy(desc) {
		l.addWarning(result, "info.description", "Missing 'info.description'")
	}
}

// checkOperations warns on operations missing both a summary and a
// description, and on response objects missing a description. Wrong-shaped
// path items, operations, and responses containers are skipped rather than
// reported, so partially-invalid documents still get the remaining checks.
func (l *Linter) checkOperations(doc loader.Document, result *Result) {
	paths, ok := asObject(doc["paths"])
	if !ok {
		return
	}

	for _, pathKey := range sortedKeys(paths) {
		pathItem, ok := asObject(paths[pathKey])
		if !ok {
			continue
		}
		for _, methodKey := range sortedKeys(pathItem) {
			if !isHTTPMethod(methodKey) {
				continue
			}
			op, ok := asObject(pathItem[methodKey])
			if !ok {
				continue
			}
			opPath := fmt.Sprintf("paths.%s.%s", pathKey, methodKey)

			if !truthy(op["summary"]) && !truthy(op["description"]) {
				l.addWarning(result, opPath, "Operation is missing both 'summary' and 'description'")
			}

			responses, ok := asObject(op["responses"])
			if !ok {
				continue
			}
			for _, statusCode := range sortedKeys(responses) {
				response, ok := asObject(responses[statusCode])
				if ok && !truthy(response["description"]) {
					l.addWarning(result,
						fmt.Sprintf("%s.responses.%s", opPath, statusCode),
						"Response is missing 'description'")
				}
			}
		}
	}
}
