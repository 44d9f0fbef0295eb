package text

import (
	"sync"

	"github.com/go-text/typesetting/font"
	ot "github.com/go-text/typesetting/font/opentype"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
)

// OutlineProvider extracts glyph outlines in font units and drives a sink
// with them. face is the face used for shaping (variations applied).
type OutlineProvider interface {
	Outline(f *Font, face *font.Face, gid GlyphID, sink OutlineSink) error
}

// GoTextOutlines reads outlines through go-text/typesetting.
// It honours variable font axes and is the default provider.
type GoTextOutlines struct{}

// Outline implements OutlineProvider. Glyphs without a vector outline
// (bitmap or SVG glyphs) produce no commands.
func (GoTextOutlines) Outline(_ *Font, face *font.Face, gid GlyphID, sink OutlineSink) error {
	data, ok := face.GlyphData(font.GID(gid)).(font.GlyphOutline)
	if !ok {
		return nil
	}
	open := false
	for _, s := range data.Segments {
		switch s.Op {
		case ot.SegmentOpMoveTo:
			if open {
				sink.Close()
			}
			sink.MoveTo(s.Args[0].X, s.Args[0].Y)
			open = true
		case ot.SegmentOpLineTo:
			sink.LineTo(s.Args[0].X, s.Args[0].Y)
		case ot.SegmentOpQuadTo:
			sink.QuadTo(s.Args[0].X, s.Args[0].Y, s.Args[1].X, s.Args[1].Y)
		case ot.SegmentOpCubeTo:
			sink.CubeTo(s.Args[0].X, s.Args[0].Y, s.Args[1].X, s.Args[1].Y, s.Args[2].X, s.Args[2].Y)
		}
	}
	if open {
		sink.Close()
	}
	return nil
}

// SfntOutlines reads outlines with golang.org/x/image/font/sfnt.
// It only supports static fonts. Parsed fonts are cached per registered
// Font; SfntOutlines is safe for concurrent use.
type SfntOutlines struct {
	mu    sync.RWMutex
	cache map[*Font]*sfnt.Font

	buffers sync.Pool
}

// NewSfntOutlines creates an sfnt-backed outline provider.
func NewSfntOutlines() *SfntOutlines {
	return &SfntOutlines{
		cache: make(map[*Font]*sfnt.Font),
		buffers: sync.Pool{
			New: func() any { return &sfnt.Buffer{} },
		},
	}
}

// Outline implements OutlineProvider.
func (p *SfntOutlines) Outline(f *Font, _ *font.Face, gid GlyphID, sink OutlineSink) error {
	if f.Kind() == FontVariable {
		return ErrUnsupportedFontType
	}
	sf, err := p.getOrParse(f)
	if err != nil {
		return err
	}

	buf := p.buffers.Get().(*sfnt.Buffer)
	defer p.buffers.Put(buf)

	// One pixel per font unit keeps the coordinates in font units.
	ppem := fixed.I(f.UnitsPerEm())
	segments, err := sf.LoadGlyph(buf, sfnt.GlyphIndex(gid), ppem, nil)
	if err != nil {
		return &FontError{ID: f.ID(), Reason: "failed to load glyph", Err: err}
	}

	// sfnt is Y-down; sinks expect font units Y-up.
	open := false
	for _, seg := range segments {
		switch seg.Op {
		case sfnt.SegmentOpMoveTo:
			if open {
				sink.Close()
			}
			x, y := unfix(seg.Args[0])
			sink.MoveTo(x, y)
			open = true
		case sfnt.SegmentOpLineTo:
			x, y := unfix(seg.Args[0])
			sink.LineTo(x, y)
		case sfnt.SegmentOpQuadTo:
			cx, cy := unfix(seg.Args[0])
			x, y := unfix(seg.Args[1])
			sink.QuadTo(cx, cy, x, y)
		case sfnt.SegmentOpCubeTo:
			c1x, c1y := unfix(seg.Args[0])
			c2x, c2y := unfix(seg.Args[1])
			x, y := unfix(seg.Args[2])
			sink.CubeTo(c1x, c1y, c2x, c2y, x, y)
		}
	}
	if open {
		sink.Close()
	}
	return nil
}

// getOrParse returns the cached sfnt.Font for f, parsing it on first use.
func (p *SfntOutlines) getOrParse(f *Font) (*sfnt.Font, error) {
	p.mu.RLock()
	if sf, ok := p.cache[f]; ok {
		p.mu.RUnlock()
		return sf, nil
	}
	p.mu.RUnlock()

	p.mu.Lock()
	defer p.mu.Unlock()

	// Double-check after acquiring write lock.
	if sf, ok := p.cache[f]; ok {
		return sf, nil
	}
	sf, err := sfnt.Parse(f.Data())
	if err != nil {
		return nil, &FontError{ID: f.ID(), Reason: "sfnt parse failed", Err: err}
	}
	p.cache[f] = sf
	return sf, nil
}

// unfix converts a Y-down 26.6 point to Y-up float coordinates.
func unfix(p fixed.Point26_6) (x, y float32) {
	return float32(p.X) / 64, -float32(p.Y) / 64
}
