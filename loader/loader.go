package loader

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"time"

	"github.com/BennettPhil/skill-openapi-validator/oaserrors"
	"go.yaml.in/yaml/v4"
)

// Document is the untyped tree form of a decoded OpenAPI document.
// The root is always an object; nested values are maps, slices, strings,
// numbers, booleans, and nils as produced by the decoder.
type Document = map[string]any

// StdinPath is the special file path used to indicate reading from stdin.
const StdinPath = "-"

// LoadResult contains a decoded document together with source metadata.
type LoadResult struct {
	// Document is the decoded document tree
	Document Document
	// SourcePath is the file path the document was loaded from ("stdin" for stdin)
	SourcePath string
	// SourceFormat is the detected format of the source (JSON or YAML)
	SourceFormat SourceFormat
	// SourceSize is the size of the raw source in bytes
	SourceSize int64
	// LoadTime is the time taken to read and decode the source
	LoadTime time.Duration
}

// Loader reads and decodes OpenAPI documents.
type Loader struct {
	// Logger receives diagnostic output. Defaults to NopLogger.
	Logger Logger
}

// New creates a Loader with default settings.
func New() *Loader {
	return &Loader{Logger: NopLogger{}}
}

// Load reads and decodes the document at path. The path "-" reads stdin.
// Failures are reported as oaserrors types: a missing file matches
// oaserrors.ErrNotFound, an unreadable file matches oaserrors.ErrUnreadable,
// malformed content matches oaserrors.ErrParse, and a decoded root that is
// not an object matches oaserrors.ErrNotObject.
func (l *Loader) Load(path string) (*LoadResult, error) {
	if path == StdinPath {
		return l.LoadReader(os.Stdin, "stdin")
	}

	start := time.Now()
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, &oaserrors.LoadError{Path: path, NotFound: true, Cause: err}
		}
		return nil, &oaserrors.LoadError{Path: path, Cause: err}
	}
	l.Logger.Debug("read spec source", "path", path, "bytes", len(data))

	result, err := l.decode(data, path, detectFormatFromPath(path))
	if err != nil {
		return nil, err
	}
	result.LoadTime = time.Since(start)
	return result, nil
}

// LoadReader reads and decodes a document from r. The sourcePath is used
// only for error messages and result metadata; format detection falls back
// to content sniffing when the path has no recognizable extension.
func (l *Loader) LoadReader(r io.Reader, sourcePath string) (*LoadResult, error) {
	start := time.Now()
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, &oaserrors.LoadError{Path: sourcePath, Cause: err}
	}

	result, err := l.decode(data, sourcePath, detectFormatFromPath(sourcePath))
	if err != nil {
		return nil, err
	}
	result.LoadTime = time.Since(start)
	return result, nil
}

// Load reads and decodes the document at path using a default Loader.
func Load(path string) (*LoadResult, error) {
	return New().Load(path)
}

// LoadReader reads and decodes a document from r using a default Loader.
func LoadReader(r io.Reader, sourcePath string) (*LoadResult, error) {
	return New().LoadReader(r, sourcePath)
}

// decode parses raw bytes into a Document and enforces the object-root guard.
func (l *Loader) decode(data []byte, sourcePath string, format SourceFormat) (*LoadResult, error) {
	if format == SourceFormatUnknown {
		format = detectFormatFromContent(data)
	}

	var root any
	switch format {
	case SourceFormatYAML:
		if err := yaml.Unmarshal(data, &root); err != nil {
			return nil, &oaserrors.ParseError{
				Path:    sourcePath,
				Message: "invalid YAML",
				Cause:   err,
			}
		}
	default:
		// JSON, and the fallback for empty or undetectable content: the
		// json decoder produces the position information the error needs.
		format = SourceFormatJSON
		if err := json.Unmarshal(data, &root); err != nil {
			perr := &oaserrors.ParseError{
				Path:    sourcePath,
				Message: "invalid JSON",
				Cause:   err,
			}
			var syntaxErr *json.SyntaxError
			if errors.As(err, &syntaxErr) {
				perr.Line, perr.Column = lineAndColumn(data, syntaxErr.Offset)
			}
			var typeErr *json.UnmarshalTypeError
			if errors.As(err, &typeErr) {
				perr.Line, perr.Column = lineAndColumn(data, typeErr.Offset)
			}
			return nil, perr
		}
	}

	doc, ok := root.(map[string]any)
	if !ok {
		return nil, &oaserrors.DocumentError{
			Path:    sourcePath,
			Message: fmt.Sprintf("OpenAPI document root must be an object, got %s", jsonTypeName(root)),
		}
	}

	l.Logger.Debug("decoded spec", "path", sourcePath, "format", format.String())
	return &LoadResult{
		Document:     doc,
		SourcePath:   sourcePath,
		SourceFormat: format,
		SourceSize:   int64(len(data)),
	}, nil
}

// lineAndColumn converts a byte offset into 1-based line and column numbers.
func lineAndColumn(data []byte, offset int64) (line, column int) {
	if offset < 0 || offset > int64(len(data)) {
		return 0, 0
	}
	line, column = 1, 1
	for _, b := range data[:offset] {
		if b == '\n' {
			line++
			column = 1
		} else {
			column++
		}
	}
	return line, column
}

// jsonTypeName names a decoded value the way a spec author would see it.
func jsonTypeName(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case bool:
		return "boolean"
	case string:
		return "string"
	case float64, int, int64:
		return "number"
	case []any:
		return "array"
	case map[string]any:
		return "object"
	default:
		return fmt.Sprintf("%T", v)
	}
}
