package tools

import (
	"github.com/empiricalrun/flashimpact/internal/types"
)

// Extractor recovers named blocks and their line spans from one version of
// a source file's text. When two blocks in the same file share a name, the
// later one wins; both implementations preserve that behavior so they stay
// interchangeable.
type Extractor interface {
	// Extract returns a mapping from block name to line span. The file
	// path is only used to pick a grammar where that matters; the content
	// is the authoritative input.
	Extract(filePath, content string, kind types.BlockKind) map[string]types.LineSpan
	// Name identifies the extractor for config selection.
	Name() string
}

// Registry manages the available extractors, keyed by name.
type Registry struct {
	extractors map[string]Extractor
}

func NewRegistry() *Registry {
	registry := &Registry{
		extractors: make(map[string]Extractor),
	}

	// The lexical scan extractor is always available.
	registry.Register(NewScanExtractor())

	return registry
}

func (r *Registry) Register(extractor Extractor) {
	r.extractors[extractor.Name()] = extractor
}

// Get returns the extractor registered under the given name, or nil.
func (r *Registry) Get(name string) Extractor {
	return r.extractors[name]
}
