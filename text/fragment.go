package text

import "github.com/go-text/typesetting/font"

// Glyph is a shaped glyph with its outline already in screen space,
// relative to the origin of its fragment.
type Glyph struct {
	ID GlyphID
	// Advance is the screen-space horizontal advance.
	Advance float64
	Path    *GlyphPath
}

// Fragment is a shaped, unbreakable run produced from one line-break
// segment. Fragments are never split across lines.
type Fragment struct {
	Glyphs []*Glyph
	// Length is the sum of the glyph advances.
	Length float64
	// Start and End are the byte range of the segment in the paragraph text.
	Start, End int
}

// PlaceAt positions the fragment's origin at p. Glyph geometry is not
// recomputed; only the placement offset changes.
func (f *Fragment) PlaceAt(p Point) {
	for _, g := range f.Glyphs {
		g.Path.PlaceAt(p)
	}
}

// FragmentBuilder shapes paragraph text into fragments.
type FragmentBuilder struct {
	Breaker  LineBreaker
	Shaper   Shaper
	Outlines OutlineProvider
}

// Build splits text at line-break opportunities and shapes every non-empty
// segment with the whole paragraph as context. size is the font size in
// pixels per em. Coordinates of each fragment are relative to its own
// origin on the baseline.
func (b *FragmentBuilder) Build(text string, dir Direction, f *Font, size float64) []*Fragment {
	if text == "" || f == nil {
		return nil
	}

	face := f.Face()
	runes := []rune(text)
	offsets := runeByteOffsets(text, len(runes))
	toScreen := FontToScreen(size, f.UnitsPerEm())

	fragments := make([]*Fragment, 0, 8)
	for start, end := range segments(b.Breaker, text) {
		// An empty segment shows up where a break is allowed before the
		// first character; it carries no glyphs.
		if start == end {
			continue
		}
		shaped := b.Shaper.Shape(ShapeRequest{
			Text:      runes,
			RunStart:  byteToRuneIndex(offsets, start),
			RunEnd:    byteToRuneIndex(offsets, end),
			Direction: dir,
			Font:      f,
			Face:      face,
		})
		if len(shaped) == 0 {
			continue
		}
		frag := b.fragment(shaped, f, face, toScreen)
		frag.Start, frag.End = start, end
		fragments = append(fragments, frag)
	}
	return fragments
}

// fragment maps shaped glyphs to screen space and extracts their outlines.
// Each glyph's outline goes through
//
//	translate(baseline) * fontToScreen * translate(offset)
//
// and the running baseline advances by the transformed advance.
func (b *FragmentBuilder) fragment(shaped []ShapedGlyph, f *Font, face *font.Face, toScreen Matrix) *Fragment {
	frag := &Fragment{Glyphs: make([]*Glyph, 0, len(shaped))}
	var baseline Point

	for _, sg := range shaped {
		advance := toScreen.TransformVector(Pt(sg.XAdvance, sg.YAdvance))
		m := Translate(baseline.X, baseline.Y).
			Multiply(toScreen).
			Multiply(Translate(sg.XOffset, sg.YOffset))

		path := NewGlyphPath(m)
		if err := b.Outlines.Outline(f, face, sg.ID, path); err != nil {
			Logger().Warn("glyph outline unavailable",
				"font", f.ID(), "glyph", sg.ID, "err", err)
			path = NewGlyphPath(m)
		}

		frag.Glyphs = append(frag.Glyphs, &Glyph{
			ID:      sg.ID,
			Advance: advance.X,
			Path:    path,
		})
		frag.Length += advance.X
		baseline = baseline.Add(advance)
	}
	return frag
}
