package text

// Line is a contiguous range of a paragraph's fragments.
type Line struct {
	// Start and End index the paragraph's fragments, end-exclusive.
	Start, End int
	// Length is the sum of the fragment lengths on the line.
	Length float64
	// HasNext is set when a following line continues the paragraph.
	HasNext bool
}

// Len returns the number of fragments on the line.
func (l Line) Len() int {
	return l.End - l.Start
}

// IsEmpty reports whether the line holds no fragments.
func (l Line) IsEmpty() bool {
	return l.End <= l.Start
}

// MaxLineLength returns the usable line length of a box of width w with
// padding on both sides, clamped at zero.
func MaxLineLength(w, padding float64) float64 {
	return max(0, w-2*padding)
}

// WrapFragments packs fragments greedily into lines of at most maxLength.
//
// A fragment that overflows the current line moves to a new line, unless it
// is the first fragment of the line, in which case it stays: fragments are
// never split and no line is left empty ahead of content. A paragraph
// without fragments yields one empty placeholder line.
func WrapFragments(fragments []*Fragment, maxLength float64) []Line {
	lines := make([]Line, 0, 4)
	current := Line{}

	for i, frag := range fragments {
		if current.Length+frag.Length <= maxLength || i == current.Start {
			current.Length += frag.Length
			current.End = i + 1
			continue
		}
		current.HasNext = true
		lines = append(lines, current)
		current = Line{Start: i, End: i + 1, Length: frag.Length}
	}
	return append(lines, current)
}
