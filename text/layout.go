package text

// Layouter lays out documents into glyph path strings.
//
// A Layouter only reads its registry and collaborators, so one value may
// serve concurrent Layout calls as long as its collaborators are safe for
// concurrent use (the defaults are).
type Layouter struct {
	registry   *Registry
	config     LayoutConfig
	classifier BidiClassifier
	builder    FragmentBuilder
}

// NewLayouter creates a Layouter over reg with default collaborators:
// UnicodeBidi, UAX14Breaker, a HarfbuzzShaper and GoTextOutlines.
func NewLayouter(reg *Registry, opts ...LayoutOption) *Layouter {
	l := &Layouter{
		registry:   reg,
		config:     DefaultLayoutConfig(),
		classifier: UnicodeBidi{},
		builder: FragmentBuilder{
			Breaker:  UAX14Breaker{},
			Shaper:   NewHarfbuzzShaper(""),
			Outlines: GoTextOutlines{},
		},
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Config returns the layout configuration in use.
func (l *Layouter) Config() LayoutConfig {
	return l.config
}

// Registry returns the font registry.
func (l *Layouter) Registry() *Registry {
	return l.registry
}

// LinePlacement records where a line ended up.
type LinePlacement struct {
	// Baseline is the Y coordinate of the line's baseline.
	Baseline float64
	// StartX is the anchor the walk started from; EndX is where it stopped.
	// For RTL lines EndX < StartX.
	StartX, EndX float64
}

// ParagraphLayout is the layout of one paragraph.
type ParagraphLayout struct {
	Paragraph
	Fragments  []*Fragment
	Lines      []Line
	Placements []LinePlacement
}

// Result is the full outcome of a layout call.
type Result struct {
	Paragraphs []ParagraphLayout
	// Paths holds one path string per glyph, in paragraph, line, fragment
	// and glyph order.
	Paths      []string
	LineHeight float64
	// MaxLineLength is the usable width lines were wrapped to.
	MaxLineLength float64
}

// LineCount returns the total number of lines across all paragraphs.
func (r *Result) LineCount() int {
	n := 0
	for i := range r.Paragraphs {
		n += len(r.Paragraphs[i].Lines)
	}
	return n
}

// Layout lays out doc in the box described by in and returns the glyph
// path strings. It never fails; an empty document yields no paths.
func (l *Layouter) Layout(in InputTransform, doc *Document) []string {
	return l.LayoutDetailed(in, doc).Paths
}

// LayoutDetailed is Layout returning paragraphs, fragments and lines as
// well as the paths.
func (l *Layouter) LayoutDetailed(in InputTransform, doc *Document) *Result {
	res := &Result{
		LineHeight:    l.config.LineHeightRatio * in.Size,
		MaxLineLength: MaxLineLength(float64(in.W), l.config.Padding),
	}
	if doc == nil {
		return res
	}

	paras := ResolveParagraphs(doc, l.registry, l.classifier)
	res.Paragraphs = make([]ParagraphLayout, 0, len(paras))
	for _, p := range paras {
		frags := l.builder.Build(p.Text, p.Direction, p.Font, in.Size)
		res.Paragraphs = append(res.Paragraphs, ParagraphLayout{
			Paragraph: p,
			Fragments: frags,
			Lines:     WrapFragments(frags, res.MaxLineLength),
		})
	}

	y := l.firstBaseline(in, res.LineCount(), res.LineHeight, doc.VerticalAlignment)
	for i := range res.Paragraphs {
		pl := &res.Paragraphs[i]
		pl.Placements = make([]LinePlacement, 0, len(pl.Lines))
		for _, line := range pl.Lines {
			startX := l.lineAnchor(in, line, pl.Direction, doc.HorizontalAlignment, res.MaxLineLength)
			var endX float64
			res.Paths, endX = l.placeLine(res.Paths, pl.Fragments[line.Start:line.End], startX, y, pl.Direction)
			pl.Placements = append(pl.Placements, LinePlacement{Baseline: y, StartX: startX, EndX: endX})
			y += res.LineHeight
		}
	}

	Logger().Debug("layout done",
		"paragraphs", len(res.Paragraphs),
		"lines", res.LineCount(),
		"paths", len(res.Paths))
	return res
}

// firstBaseline returns the baseline of the first line for a block of n
// lines.
func (l *Layouter) firstBaseline(in InputTransform, n int, lineHeight float64, align Alignment) float64 {
	block := float64(n) * lineHeight
	var top float64
	switch align {
	case AlignReverse:
		top = in.Bottom() - l.config.Padding - block
	case AlignCenter:
		top = in.Top() + (float64(in.H)-block)/2
	default:
		top = in.Top() + l.config.Padding
	}
	return top + lineHeight
}

// lineAnchor returns the X the fragment walk starts from. LTR lines grow
// rightwards from it, RTL lines leftwards.
func (l *Layouter) lineAnchor(in InputTransform, line Line, dir Direction, align Alignment, maxLen float64) float64 {
	pad := l.config.Padding
	slack := maxLen - line.Length
	if dir == DirectionRTL {
		switch align {
		case AlignReverse:
			return in.Left() + pad + line.Length
		case AlignCenter:
			return in.Right() - pad - slack/2
		default:
			return in.Right() - pad
		}
	}
	switch align {
	case AlignReverse:
		return in.Right() - pad - line.Length
	case AlignCenter:
		return in.Left() + pad + slack/2
	default:
		return in.Left() + pad
	}
}

// placeLine translates the line's fragments onto the baseline y starting
// at x, appends their glyph paths and returns the final running X.
func (l *Layouter) placeLine(paths []string, frags []*Fragment, x, y float64, dir Direction) ([]string, float64) {
	rtl := dir == DirectionRTL
	for _, frag := range frags {
		if rtl {
			x -= frag.Length
		}
		frag.PlaceAt(Pt(x, y))
		for _, g := range frag.Glyphs {
			if g.Path.IsEmpty() && !l.config.KeepEmptyGlyphs {
				continue
			}
			paths = append(paths, g.Path.Path())
		}
		if !rtl {
			x += frag.Length
		}
	}
	return paths, x
}
