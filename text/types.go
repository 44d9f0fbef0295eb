package text

import "strings"

// unknownStr is the string returned for unknown enum values.
const unknownStr = "Unknown"

// Direction specifies the resolved writing direction of a paragraph.
// Only horizontal directions are laid out.
type Direction int

const (
	// DirectionLTR is left-to-right text (English, French, etc.)
	DirectionLTR Direction = iota
	// DirectionRTL is right-to-left text (Arabic, Hebrew)
	DirectionRTL
)

// String returns the string representation of the direction.
func (d Direction) String() string {
	switch d {
	case DirectionLTR:
		return "LTR"
	case DirectionRTL:
		return "RTL"
	default:
		return unknownStr
	}
}

// IsRTL reports whether d is right-to-left.
func (d Direction) IsRTL() bool {
	return d == DirectionRTL
}

// Alignment selects where lines (horizontally) or the block of lines
// (vertically) are anchored inside the box.
type Alignment int

const (
	// AlignNormal anchors at the start edge: the left edge for LTR lines,
	// the right edge for RTL lines, the top edge vertically.
	AlignNormal Alignment = iota
	// AlignReverse anchors at the opposite edge.
	AlignReverse
	// AlignCenter centres within the usable area.
	AlignCenter
)

// String returns the string representation of the alignment.
func (a Alignment) String() string {
	switch a {
	case AlignNormal:
		return "Normal"
	case AlignReverse:
		return "Reverse"
	case AlignCenter:
		return "Center"
	default:
		return unknownStr
	}
}

// ParseAlignment converts a configuration value ("normal", "reverse",
// "center"; case-insensitive, empty means normal) to an Alignment.
func ParseAlignment(s string) (Alignment, bool) {
	switch strings.ToLower(s) {
	case "", "normal":
		return AlignNormal, true
	case "reverse":
		return AlignReverse, true
	case "center", "centre":
		return AlignCenter, true
	default:
		return AlignNormal, false
	}
}

// FontID identifies a registered font.
type FontID = string

// GlyphID is a glyph index inside a font.
type GlyphID uint32

// InputTransform describes where and how large the text is laid out.
// X, Y, W, H are the box in output coordinates; Size is the font size
// in pixels per em.
type InputTransform struct {
	X, Y, W, H int
	Size       float64
}

// Left returns the left edge of the box.
func (in InputTransform) Left() float64 { return float64(in.X) }

// Right returns the right edge of the box.
func (in InputTransform) Right() float64 { return float64(in.X + in.W) }

// Top returns the top edge of the box.
func (in InputTransform) Top() float64 { return float64(in.Y) }

// Bottom returns the bottom edge of the box.
func (in InputTransform) Bottom() float64 { return float64(in.Y + in.H) }

// Document is the caller's description of the text to lay out.
// Paragraph i of Text (as split by the bidi classifier) uses
// ParagraphFonts[i]; a missing or unknown entry falls back to
// FallbackFont and then to the registry's global fallback.
type Document struct {
	Text                string
	ParagraphFonts      []FontID
	FallbackFont        FontID
	HorizontalAlignment Alignment
	VerticalAlignment   Alignment
}

// paragraphFont returns the font requested for paragraph i, or "" if none.
func (d *Document) paragraphFont(i int) FontID {
	if i < 0 || i >= len(d.ParagraphFonts) {
		return ""
	}
	return d.ParagraphFonts[i]
}
