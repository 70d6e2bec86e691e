// This file implements the reference index and the unused-schema check.

package linter

import (
	"fmt"

	"github.com/BennettPhil/skill-openapi-validator/loader"
)

// collectRefs recursively gathers every $ref target string in the tree into
// refs. Objects and arrays are descended into; a $ref value itself is a
// string and is only recorded, never descended.
func collectRefs(node any, refs map[string]struct{}) {
	switch n := node.(type) {
	case map[string]any:
		if ref, ok := n["$ref"].(string); ok {
			refs[ref] = struct{}{}
		}
		for _, value := range n {
			collectRefs(value, refs)
		}
	case []any:
		for _, item := range n {
			collectRefs(item, refs)
		}
	}
}

// checkUnusedSchemas warns for every schema under components.schemas whose
// canonical reference "#/components/schemas/<name>" appears nowhere in the
// document. The reference index is built once, from the whole document, so
// a $ref anywhere (including inside another schema) counts as a use.
func (l *Linter) checkUnusedSchemas(doc loader.Document, result *Result) {
	components, ok := asObject(doc["components"])
	if !ok {
		return
	}
	schemas, ok := asObject(components["schemas"])
	if !ok || len(schemas) == 0 {
		return
	}

	refs := make(map[string]struct{})
	collectRefs(doc, refs)

	for _, name := range sortedKeys(schemas) {
		canonical := "#/components/schemas/" + name
		if _, used := refs[canonical]; !used {
			l.addWarning(result,
				"components.schemas."+name,
				fmt.Sprintf("Schema '%s' is defined but never referenced", name))
		}
	}
}
