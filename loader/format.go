package loader

import (
	"bytes"
	"path/filepath"
)

// SourceFormat identifies the wire format of the spec source.
type SourceFormat int

const (
	// SourceFormatUnknown means the format could not be determined yet.
	SourceFormatUnknown SourceFormat = iota
	// SourceFormatJSON means the source is JSON.
	SourceFormatJSON
	// SourceFormatYAML means the source is YAML.
	SourceFormatYAML
)

// String returns the lowercase name of the format.
func (f SourceFormat) String() string {
	switch f {
	case SourceFormatJSON:
		return "json"
	case SourceFormatYAML:
		return "yaml"
	default:
		return "unknown"
	}
}

// detectFormatFromPath detects the source format from a file path
func detectFormatFromPath(path string) SourceFormat {
	switch filepath.Ext(path) {
	case ".json":
		return SourceFormatJSON
	case ".yaml", ".yml":
		return SourceFormatYAML
	default:
		return SourceFormatUnknown
	}
}

// detectFormatFromContent attempts to detect the format from the content bytes
// JSON documents start with '{' or '[', while YAML does not
func detectFormatFromContent(data []byte) SourceFormat {
	trimmed := bytes.TrimLeft(data, " \t\n\r")
	if len(trimmed) == 0 {
		return SourceFormatUnknown
	}
	if trimmed[0] == '{' || trimmed[0] == '[' {
		return SourceFormatJSON
	}
	return SourceFormatYAML
}
