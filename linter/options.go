package linter

import (
	"github.com/BennettPhil/skill-openapi-validator/internal/options"
	"github.com/BennettPhil/skill-openapi-validator/loader"
)

// Option is a function that configures a lint operation
type Option func(*lintConfig) error

// lintConfig holds configuration for a lint operation
type lintConfig struct {
	// Input source (exactly one must be set)
	filePath *string
	loaded   *loader.LoadResult
	document loader.Document

	// Configuration options
	includeWarnings bool
	strictMode      bool
	logger          loader.Logger
}

// applyOptions applies option functions and validates configuration
func applyOptions(opts ...Option) (*lintConfig, error) {
	cfg := &lintConfig{
		includeWarnings: true,
		strictMode:      false,
		logger:          loader.NopLogger{},
	}

	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, err
		}
	}

	if err := options.ValidateSingleInputSource(
		"must specify an input source (use WithFilePath, WithLoaded, or WithDocument)",
		"must specify exactly one input source",
		cfg.filePath != nil, cfg.loaded != nil, cfg.document != nil,
	); err != nil {
		return nil, err
	}

	return cfg, nil
}

// WithFilePath specifies a file path as the input source ("-" reads stdin)
func WithFilePath(path string) Option {
	return func(cfg *lintConfig) error {
		cfg.filePath = &path
		return nil
	}
}

// WithLoaded specifies an already-loaded LoadResult as the input source
func WithLoaded(loaded loader.LoadResult) Option {
	return func(cfg *lintConfig) error {
		cfg.loaded = &loaded
		return nil
	}
}

// WithDocument specifies an in-memory document tree as the input source
func WithDocument(doc loader.Document) Option {
	return func(cfg *lintConfig) error {
		cfg.document = doc
		return nil
	}
}

// WithStrictMode enables or disables promotion of warnings to errors
// Default: false
func WithStrictMode(enabled bool) Option {
	return func(cfg *lintConfig) error {
		cfg.strictMode = enabled
		return nil
	}
}

// WithIncludeWarnings enables or disables warning findings
// Default: true
func WithIncludeWarnings(enabled bool) Option {
	return func(cfg *lintConfig) error {
		cfg.includeWarnings = enabled
		return nil
	}
}

// WithLogger sets the logger used while loading the input source.
// Default: loader.NopLogger
func WithLogger(logger loader.Logger) Option {
	return func(cfg *lintConfig) error {
		cfg.logger = logger
		return nil
	}
}

// LintWithOptions loads (if needed) and lints a document using functional
// options. Exactly one input source option must be provided.
func LintWithOptions(opts ...Option) (*Result, error) {
	cfg, err := applyOptions(opts...)
	if err != nil {
		return nil, err
	}

	l := &Linter{
		IncludeWarnings: cfg.includeWarnings,
		StrictMode:      cfg.strictMode,
	}

	switch {
	case cfg.filePath != nil:
		ldr := loader.New()
		ldr.Logger = cfg.logger
		loaded, err := ldr.Load(*cfg.filePath)
		if err != nil {
			return nil, err
		}
		return l.LintLoaded(*loaded), nil
	case cfg.loaded != nil:
		return l.LintLoaded(*cfg.loaded), nil
	default:
		return l.LintDocument(cfg.document), nil
	}
}
