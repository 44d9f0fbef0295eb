package textpath

import (
	"fmt"
	"maps"
	"slices"

	"github.com/gogpu/textpath/internal/layoutcache"
	"github.com/gogpu/textpath/text"
)

// CacheStats reports layout cache usage.
type CacheStats = layoutcache.Stats

// Engine lays out named documents into glyph path strings.
//
// An Engine is immutable after construction apart from its layout cache
// and is safe for concurrent use.
type Engine struct {
	layouter *text.Layouter
	docs     map[string]*text.Document
	cache    *layoutcache.Cache
}

// New loads the fonts of cfg and builds an Engine for its documents.
// Extra options are applied after the ones derived from cfg.
func New(cfg Config, opts ...text.LayoutOption) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	specs, err := cfg.fontSpecs()
	if err != nil {
		return nil, err
	}
	reg, err := text.NewRegistry(cfg.GlobalFallback, specs...)
	if err != nil {
		return nil, err
	}

	docs := make(map[string]*text.Document, len(cfg.Documents))
	for _, dc := range cfg.Documents {
		docs[dc.Name] = dc.document()
	}

	e := &Engine{
		layouter: text.NewLayouter(reg, append(cfg.layoutOptions(), opts...)...),
		docs:     docs,
		cache:    layoutcache.New(cfg.cacheSize()),
	}
	Logger().Info("engine ready",
		"fonts", reg.Len(),
		"documents", len(docs),
		"cache", cfg.cacheSize())
	return e, nil
}

// NewWithRegistry builds an Engine from an existing registry and documents.
// The documents map is copied; cacheSize 0 disables the layout cache.
func NewWithRegistry(reg *text.Registry, docs map[string]*text.Document, cacheSize int, opts ...text.LayoutOption) *Engine {
	own := make(map[string]*text.Document, len(docs))
	for name, d := range docs {
		if d == nil {
			continue
		}
		c := *d
		c.ParagraphFonts = slices.Clone(d.ParagraphFonts)
		own[name] = &c
	}
	return &Engine{
		layouter: text.NewLayouter(reg, opts...),
		docs:     own,
		cache:    layoutcache.New(cacheSize),
	}
}

// Paths lays out the named document in the box (x, y, w, h) at the given
// font size and returns one path string per placed glyph.
//
// The returned slice belongs to the caller.
func (e *Engine) Paths(x, y, w, h int, size float64, name string) ([]string, error) {
	doc, ok := e.docs[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownDocument, name)
	}

	in := text.InputTransform{X: x, Y: y, W: w, H: h, Size: size}
	key := layoutcache.Key{Document: name, In: in}
	if paths, ok := e.cache.Get(key); ok {
		Logger().Debug("layout cache hit", "document", name)
		return slices.Clone(paths), nil
	}

	paths := e.layouter.Layout(in, doc)
	e.cache.Put(key, slices.Clone(paths))
	return paths, nil
}

// Layout lays out an ad-hoc document. It bypasses the cache.
func (e *Engine) Layout(in text.InputTransform, doc *text.Document) []string {
	return e.layouter.Layout(in, doc)
}

// LayoutDetailed is like Paths but returns the full layout result.
// It bypasses the cache.
func (e *Engine) LayoutDetailed(in text.InputTransform, name string) (*text.Result, error) {
	doc, ok := e.docs[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownDocument, name)
	}
	return e.layouter.LayoutDetailed(in, doc), nil
}

// Document returns a copy of the named document.
func (e *Engine) Document(name string) (text.Document, bool) {
	d, ok := e.docs[name]
	if !ok {
		return text.Document{}, false
	}
	c := *d
	c.ParagraphFonts = slices.Clone(d.ParagraphFonts)
	return c, true
}

// Documents returns the document names, sorted.
func (e *Engine) Documents() []string {
	return slices.Sorted(maps.Keys(e.docs))
}

// Registry returns the font registry.
func (e *Engine) Registry() *text.Registry {
	return e.layouter.Registry()
}

// CacheStats returns layout cache statistics.
func (e *Engine) CacheStats() CacheStats {
	return e.cache.Stats()
}

// PurgeCache drops every cached layout. Statistics are kept.
func (e *Engine) PurgeCache() {
	e.cache.Purge()
	Logger().Debug("layout cache purged")
}
