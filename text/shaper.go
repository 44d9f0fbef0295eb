package text

import (
	"sync"

	"github.com/go-text/typesetting/di"
	"github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/harfbuzz"
	"github.com/go-text/typesetting/language"
)

// ShapeRequest asks a Shaper to shape Text[RunStart:RunEnd].
// The runes before RunStart and after RunEnd are context only: they
// influence contextual forms at the run boundaries but produce no glyphs.
type ShapeRequest struct {
	Text             []rune
	RunStart, RunEnd int
	Direction        Direction
	Font             *Font
	Face             *font.Face
}

// ShapedGlyph is one glyph produced by a Shaper, in font units with the
// Y axis pointing up.
type ShapedGlyph struct {
	ID                 GlyphID
	XAdvance, YAdvance float64
	XOffset, YOffset   float64
	// Cluster is the rune index in ShapeRequest.Text the glyph came from.
	Cluster int
}

// Shaper converts a run of text into positioned glyphs (OpenType shaping).
// Glyphs are returned in visual order.
type Shaper interface {
	Shape(req ShapeRequest) []ShapedGlyph
}

// HarfbuzzShaper shapes with go-text/typesetting's HarfBuzz port.
//
// Clusters are kept at character level: combining marks get their own
// cluster instead of being merged into their base (harfbuzz.MonotoneCharacters).
// Positions are returned unscaled, in font units; the font-to-screen
// mapping is left to the caller.
//
// HarfbuzzShaper is safe for concurrent use. HarfBuzz buffers are mutable,
// so they are pooled.
type HarfbuzzShaper struct {
	pool sync.Pool
	lang language.Language
}

// hbState is one pooled shaping buffer and the HarfBuzz font built for
// the face it last shaped with.
type hbState struct {
	buf  *harfbuzz.Buffer
	face *font.Face
	font *harfbuzz.Font
}

// NewHarfbuzzShaper creates a shaper tagging runs with the given BCP 47
// language ("" means English).
func NewHarfbuzzShaper(lang string) *HarfbuzzShaper {
	if lang == "" {
		lang = "en"
	}
	return &HarfbuzzShaper{
		pool: sync.Pool{
			New: func() any {
				return &hbState{buf: harfbuzz.NewBuffer()}
			},
		},
		lang: language.NewLanguage(lang),
	}
}

// acquire takes a cleared buffer from the pool. Clear also resets the
// cluster level, so it is set again on every use.
func (s *HarfbuzzShaper) acquire() *hbState {
	st := s.pool.Get().(*hbState)
	st.buf.Clear()
	st.buf.ClusterLevel = harfbuzz.MonotoneCharacters
	return st
}

// Shape implements Shaper.
func (s *HarfbuzzShaper) Shape(req ShapeRequest) []ShapedGlyph {
	if req.RunStart >= req.RunEnd || req.Face == nil || req.Font == nil {
		return nil
	}
	start := max(req.RunStart, 0)
	end := min(req.RunEnd, len(req.Text))
	if start >= end {
		return nil
	}

	st := s.acquire()
	defer s.pool.Put(st)

	if st.face != req.Face {
		st.face = req.Face
		st.font = harfbuzz.NewFont(req.Face)
	}

	buf := st.buf
	buf.AddRunes(req.Text, start, end-start)
	buf.Props.Direction = mapDirection(req.Direction).Harfbuzz()
	buf.Props.Script = detectScript(req.Text[start:end])
	buf.Props.Language = s.lang
	buf.Shape(st.font, nil)

	return convertGlyphs(buf.Info, buf.Pos)
}

// mapDirection converts a Direction to go-text's di.Direction.
func mapDirection(d Direction) di.Direction {
	if d == DirectionRTL {
		return di.DirectionRTL
	}
	return di.DirectionLTR
}

// detectScript returns the script of the first rune that has one.
// Line-break segments rarely mix scripts, and common characters such as
// spaces and punctuation are skipped.
func detectScript(runes []rune) language.Script {
	for _, r := range runes {
		sc := language.LookupScript(r)
		if sc != language.Common && sc != language.Inherited && sc != language.Unknown {
			return sc
		}
	}
	return language.Latin
}

// convertGlyphs converts HarfBuzz output for horizontal text.
func convertGlyphs(info []harfbuzz.GlyphInfo, pos []harfbuzz.GlyphPosition) []ShapedGlyph {
	if len(info) == 0 {
		return nil
	}
	result := make([]ShapedGlyph, len(info))
	for i := range info {
		result[i] = ShapedGlyph{
			ID:       GlyphID(info[i].Glyph),
			XAdvance: float64(pos[i].XAdvance),
			XOffset:  float64(pos[i].XOffset),
			YOffset:  float64(pos[i].YOffset),
			Cluster:  info[i].Cluster,
		}
	}
	return result
}
