package text

import (
	"unicode/utf8"

	"golang.org/x/text/unicode/bidi"
)

// BidiParagraph is one paragraph found by a BidiClassifier.
// Start and End are byte offsets, end-exclusive; the range includes the
// trailing paragraph separator, if any.
type BidiParagraph struct {
	Start     int
	End       int
	Direction Direction
}

// BidiClassifier splits text into bidi paragraphs and resolves the base
// direction of each (UAX #9).
type BidiClassifier interface {
	Paragraphs(text string) []BidiParagraph
}

// UnicodeBidi implements BidiClassifier with the Unicode bidi class data
// of golang.org/x/text/unicode/bidi.
//
// Paragraphs end after each paragraph separator (class B; CR LF counts as
// one). The direction follows rules P2 and P3: the first strong character
// outside isolates decides, and Default applies when there is none.
type UnicodeBidi struct {
	Default Direction
}

// Paragraphs implements BidiClassifier.
func (c UnicodeBidi) Paragraphs(text string) []BidiParagraph {
	if text == "" {
		return nil
	}
	paras := make([]BidiParagraph, 0, 4)
	start := 0
	for i := 0; i < len(text); {
		r, size := utf8.DecodeRuneInString(text[i:])
		if !isParagraphSeparator(r) {
			i += size
			continue
		}
		end := i + size
		if r == '\r' && end < len(text) && text[end] == '\n' {
			end++
		}
		paras = append(paras, c.paragraph(text, start, end))
		start = end
		i = end
	}
	if start < len(text) {
		paras = append(paras, c.paragraph(text, start, len(text)))
	}
	return paras
}

func (c UnicodeBidi) paragraph(text string, start, end int) BidiParagraph {
	dir, ok := firstStrongDirection(text[start:end])
	if !ok {
		dir = c.Default
	}
	return BidiParagraph{Start: start, End: end, Direction: dir}
}

// isParagraphSeparator reports whether r has bidi class B.
func isParagraphSeparator(r rune) bool {
	props, _ := bidi.LookupRune(r)
	return props.Class() == bidi.B
}

// firstStrongDirection applies rules P2 and P3 to one paragraph.
// Characters between an isolate initiator and its matching PDI are skipped.
func firstStrongDirection(s string) (Direction, bool) {
	isolates := 0
	for _, r := range s {
		props, _ := bidi.LookupRune(r)
		switch props.Class() {
		case bidi.LRI, bidi.RLI, bidi.FSI:
			isolates++
		case bidi.PDI:
			if isolates > 0 {
				isolates--
			}
		case bidi.L:
			if isolates == 0 {
				return DirectionLTR, true
			}
		case bidi.R, bidi.AL:
			if isolates == 0 {
				return DirectionRTL, true
			}
		case bidi.B:
			return DirectionLTR, false
		}
	}
	return DirectionLTR, false
}

// trimParagraphSeparator removes one trailing paragraph separator
// (CR LF counts as one).
func trimParagraphSeparator(s string) string {
	if s == "" {
		return s
	}
	if len(s) >= 2 && s[len(s)-2:] == "\r\n" {
		return s[:len(s)-2]
	}
	r, size := utf8.DecodeLastRuneInString(s)
	if isParagraphSeparator(r) {
		return s[:len(s)-size]
	}
	return s
}

// Paragraph is a resolved bidi paragraph ready for shaping.
type Paragraph struct {
	// Text is the displayed text, without the paragraph separator.
	Text string
	// Start and End locate the paragraph in the document, separator
	// included.
	Start, End int
	Direction  Direction
	Font       *Font
}

// ResolveParagraphs splits doc into bidi paragraphs and resolves each
// paragraph's font through the registry's fallback chain.
func ResolveParagraphs(doc *Document, reg *Registry, classifier BidiClassifier) []Paragraph {
	if doc == nil || doc.Text == "" {
		return nil
	}
	bps := classifier.Paragraphs(doc.Text)
	paras := make([]Paragraph, 0, len(bps))
	for i, bp := range bps {
		paras = append(paras, Paragraph{
			Text:      trimParagraphSeparator(doc.Text[bp.Start:bp.End]),
			Start:     bp.Start,
			End:       bp.End,
			Direction: bp.Direction,
			Font:      reg.Resolve(doc.paragraphFont(i), doc.FallbackFont),
		})
	}
	return paras
}
