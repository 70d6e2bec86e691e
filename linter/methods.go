// This file implements the HTTP-method validity check for path item keys.

package linter

import (
	"fmt"
	"strings"

	"github.com/BennettPhil/skill-openapi-validator/loader"
)

// validHTTPMethods is the set of recognized HTTP methods, matched against
// the lowercase form of the path item key.
var validHTTPMethods = map[string]struct{}{
	"get":     {},
	"put":     {},
	"post":    {},
	"delete":  {},
	"options": {},
	"head":    {},
	"patch":   {},
	"trace":   {},
}

// reservedPathItemKeys are the path item members that are not operations and
// are therefore exempt from the method check. Matched exactly, per the OAS
// fixed-field spelling.
var reservedPathItemKeys = map[string]struct{}{
	"parameters":  {},
	"summary":     {},
	"description": {},
	"servers":     {},
	"$ref":        {},
}

// isHTTPMethod reports whether key names an HTTP method, case-insensitively.
func isHTTPMethod(key string) bool {
	_, ok := validHTTPMethods[strings.ToLower(key)]
	return ok
}

// checkMethods reports path item keys that are neither reserved fixed fields
// nor recognized HTTP methods. The original key spelling is preserved in the
// finding; only validity is judged case-insensitively.
func (l *Linter) checkMethods(doc loader.Document, result *Result) {
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
			if _, reserved := reservedPathItemKeys[methodKey]; reserved {
				continue
			}
			if !isHTTPMethod(methodKey) {
				l.addError(result,
					fmt.Sprintf("paths.%s.%s", pathKey, methodKey),
					fmt.Sprintf("Invalid HTTP method: '%s'", methodKey))
			}
		}
	}
}
