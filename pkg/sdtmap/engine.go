package sdtmap

import (
	"go.uber.org/zap"

	"github.com/beevik/etree"
)

// Engine provides the main API for working with content controls.
// Use New() to create a new engine instance.
type Engine struct {
	config *Config
	log    *zap.Logger
}

// New creates a new engine with default configuration.
func New() *Engine {
	return NewWithConfig(DefaultConfig())
}

// NewWithConfig creates a new engine with custom configuration.
// A nil config falls back to the defaults.
func NewWithConfig(config *Config) *Engine {
	if config == nil {
		config = DefaultConfig()
	}
	return &Engine{
		config: config,
		log:    config.logger(),
	}
}

// Option represents a configuration option for the engine.
type Option func(*Engine)

// WithLogger returns an option that sets the engine's logger.
func WithLogger(log *zap.Logger) Option {
	return func(e *Engine) {
		if log != nil {
			e.log = log
		}
	}
}

// WithMaxTreeDepth returns an option that sets the nesting-depth ceiling.
func WithMaxTreeDepth(depth int) Option {
	return func(e *Engine) {
		e.config.MaxTreeDepth = depth
	}
}

// WithMaxSectionRows returns an option that sets the repeating-row ceiling.
func WithMaxSectionRows(rows int) Option {
	return func(e *Engine) {
		e.config.MaxSectionRows = rows
	}
}

// NewWithOptions creates a new engine with the specified options.
func NewWithOptions(opts ...Option) *Engine {
	engine := New()
	for _, opt := range opts {
		opt(engine)
	}
	return engine
}

// Config returns the engine's configuration.
func (e *Engine) Config() *Config {
	return e.config
}

// GetContentControls enumerates the content controls in a document and
// returns them indexed by tag. When two controls share a tag, the one
// encountered later in document order wins; the index therefore holds one
// record per distinct tag string, not per element. A document whose main
// part carries no control marker at all short-circuits to an empty index
// without parsing the tree.
//
// The input bytes are never mutated. Fails with CorruptPackageError,
// MalformedDocumentError or DepthExceededError.
func (e *Engine) GetContentControls(document []byte) (map[string]ContentControl, error) {
	pkg, err := OpenPackage(document)
	if err != nil {
		return nil, err
	}
	if !pkg.HasContentControls() {
		return map[string]ContentControl{}, nil
	}

	doc, err := e.parseMain(pkg)
	if err != nil {
		return nil, err
	}

	controls := scanControls(doc.Root())
	e.log.Debug("scanned content controls", zap.Int("count", len(controls)))
	return indexControls(controls), nil
}

// MapContentControls applies a substitution plan to a document and returns
// the rewritten document bytes. Tags in simple are replaced in place; tags
// in repeating have their subtree cloned once per row, each clone filled
// from its own row. Plan keys matching no control are silently ignored.
// Every part other than the main document part is carried over
// byte-identical.
//
// The input bytes are never mutated. Fails with CorruptPackageError,
// MalformedDocumentError, DepthExceededError, MappingError or
// PackagingError.
func (e *Engine) MapContentControls(document []byte, simple map[string]string, repeating map[string][]map[string]string) ([]byte, error) {
	doc, pkg, err := e.parse(document)
	if err != nil {
		return nil, err
	}

	plan := SubstitutionPlan{Simple: simple, Repeating: repeating}
	if err := applyPlan(doc.Root(), plan, e.config, e.log); err != nil {
		return nil, err
	}

	rendered, err := renderDocumentPart(doc)
	if err != nil {
		return nil, err
	}

	return pkg.Rebuild(map[string][]byte{MainDocumentPart: rendered})
}

// RemoveContentControls strips every content control from a document while
// retaining the controlled content: each w:sdt wrapper and its properties
// are removed and the children of w:sdtContent take the wrapper's place,
// nested controls included. A document without any control marker is
// repackaged with every part unchanged.
//
// The input bytes are never mutated. Fails with CorruptPackageError,
// MalformedDocumentError, DepthExceededError or PackagingError.
func (e *Engine) RemoveContentControls(document []byte) ([]byte, error) {
	pkg, err := OpenPackage(document)
	if err != nil {
		return nil, err
	}
	if !pkg.HasContentControls() {
		return pkg.Rebuild(nil)
	}

	doc, err := e.parseMain(pkg)
	if err != nil {
		return nil, err
	}

	removed := removeControls(doc.Root())
	e.log.Debug("removed content controls", zap.Int("count", removed))

	rendered, err := renderDocumentPart(doc)
	if err != nil {
		return nil, err
	}

	return pkg.Rebuild(map[string][]byte{MainDocumentPart: rendered})
}

// parse runs the front half of the mapping pipeline: open the container,
// parse the main part, enforce the depth ceiling.
func (e *Engine) parse(document []byte) (*etree.Document, *Package, error) {
	pkg, err := OpenPackage(document)
	if err != nil {
		return nil, nil, err
	}
	tree, err := e.parseMain(pkg)
	if err != nil {
		return nil, nil, err
	}
	return tree, pkg, nil
}

// parseMain parses the main document part of an opened container and runs
// the depth guard over the resulting tree.
func (e *Engine) parseMain(pkg *Package) (*etree.Document, error) {
	main, _ := pkg.Part(MainDocumentPart)
	tree, err := parseDocumentPart(main)
	if err != nil {
		return nil, err
	}
	if err := checkDepth(tree.Root(), e.config.MaxTreeDepth); err != nil {
		return nil, err
	}
	return tree, nil
}

// DefaultEngine is the global default engine instance. Its ceilings come
// from the environment (SDTMAP_MAX_TREE_DEPTH, SDTMAP_MAX_SECTION_ROWS).
var DefaultEngine = NewWithConfig(ConfigFromEnvironment())

// GetContentControls enumerates content controls using the default engine.
func GetContentControls(document []byte) (map[string]ContentControl, error) {
	return DefaultEngine.GetContentControls(document)
}

// MapContentControls applies a substitution plan using the default engine.
func MapContentControls(document []byte, simple map[string]string, repeating map[string][]map[string]string) ([]byte, error) {
	return DefaultEngine.MapContentControls(document, simple, repeating)
}

// RemoveContentControls strips content controls using the default engine.
func RemoveContentControls(document []byte) ([]byte, error) {
	return DefaultEngine.RemoveContentControls(document)
}
