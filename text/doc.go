// Package text lays out multi-paragraph, bidirectional, multi-font text
// inside a rectangular box and emits one vector path string per glyph.
//
// The pipeline runs in this order:
//
//   - Registry: parsed fonts by id, with a per-document and a global fallback
//   - BidiClassifier: splits the document into paragraphs with a base direction
//   - LineBreaker: finds break opportunities, yielding unbreakable segments
//   - Shaper: shapes each segment with the whole paragraph as context
//   - OutlineProvider: extracts glyph outlines into GlyphPath values
//   - WrapFragments: packs fragments greedily into lines
//   - Layouter: anchors lines by direction and alignment and places glyphs
//
// # Example usage
//
//	reg, err := text.NewRegistry("regular",
//	    text.FontSpec{ID: "regular", Data: goregular.TTF},
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	l := text.NewLayouter(reg)
//	paths := l.Layout(text.InputTransform{X: 0, Y: 0, W: 600, H: 100, Size: 16},
//	    &text.Document{Text: "Hello World"})
//
// # Path syntax
//
// Each string is a sequence of commands, every command followed by one
// space:
//
//	M{x} {y}  L{x} {y}  Q{cx} {cy},{x} {y}  C{c1x} {c1y},{c2x} {c2y},{x} {y}  Z
//
// Coordinates are in output space with the Y axis pointing down.
//
// Glyph geometry is computed once per layout. Placing a fragment on a line
// only moves an offset; the path string is rebuilt from stored commands.
package text
