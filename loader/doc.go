// Package loader reads and decodes OpenAPI documents for linting.
//
// The loader is boundary plumbing: it reads raw bytes from a file, stdin, or
// an io.Reader, detects the source format (JSON or YAML), decodes the bytes
// into an untyped document tree, and enforces that the root is an object.
// Every failure is reported as a structured error from the oaserrors package
// so callers can distinguish missing files, unreadable files, malformed
// documents, and non-object roots.
//
// The decoded Document is a plain map[string]any tree. The loader performs
// no validation beyond the root type guard; all rule evaluation lives in the
// linter package.
//
//	result, err := loader.Load("openapi.json")
//	if err != nil {
//		// errors.Is(err, oaserrors.ErrNotFound), oaserrors.ErrParse, ...
//	}
//	fmt.Println(result.SourceFormat, result.SourceSize)
package loader
