package mcpserver

import (
	"strings"

	"github.com/BennettPhil/skill-openapi-validator/loader"
	"github.com/BennettPhil/skill-openapi-validator/oaserrors"
)

// specInput represents the two ways a spec can be provided to the lint tool.
// Exactly one of File or Content must be set.
type specInput struct {
	File    string `json:"file,omitempty"    jsonschema:"Path to an OpenAPI document on disk"`
	Content string `json:"content,omitempty" jsonschema:"Inline OpenAPI document content (JSON or YAML)"`
}

// resolve loads the spec from whichever source is set.
func (s specInput) resolve() (*loader.LoadResult, error) {
	switch {
	case s.File != "" && s.Content != "":
		return nil, &oaserrors.ConfigError{Option: "spec", Message: "provide either file or content, not both"}
	case s.File != "":
		return loader.Load(s.File)
	case s.Content != "":
		return loader.LoadReader(strings.NewReader(s.Content), "inline")
	default:
		return nil, &oaserrors.ConfigError{Option: "spec", Message: "provide file or content"}
	}
}
