package text

// Default layout constants.
const (
	// DefaultPadding is the gap kept between the box edges and the text.
	DefaultPadding = 12.0

	// DefaultLineHeightRatio is the line height as a multiple of the font size.
	DefaultLineHeightRatio = 1.25
)

// LayoutConfig holds the tunable constants of the layout.
type LayoutConfig struct {
	// Padding is applied on every side of the box.
	Padding float64

	// LineHeightRatio multiplies the font size to give the line height.
	LineHeightRatio float64

	// KeepEmptyGlyphs emits an empty path string for glyphs without an
	// outline (spaces) instead of skipping them.
	KeepEmptyGlyphs bool
}

// DefaultLayoutConfig returns the default layout configuration.
func DefaultLayoutConfig() LayoutConfig {
	return LayoutConfig{
		Padding:         DefaultPadding,
		LineHeightRatio: DefaultLineHeightRatio,
	}
}

// LayoutOption configures a Layouter.
type LayoutOption func(*Layouter)

// WithConfig replaces the whole layout configuration.
func WithConfig(c LayoutConfig) LayoutOption {
	return func(l *Layouter) {
		l.config = c
	}
}

// WithPadding sets the box padding. Negative values are treated as zero.
func WithPadding(p float64) LayoutOption {
	return func(l *Layouter) {
		l.config.Padding = max(0, p)
	}
}

// WithLineHeightRatio sets the line height as a multiple of the font size.
// Non-positive values keep the default.
func WithLineHeightRatio(r float64) LayoutOption {
	return func(l *Layouter) {
		if r > 0 {
			l.config.LineHeightRatio = r
		}
	}
}

// WithEmptyGlyphs controls whether outline-less glyphs produce empty
// path strings.
func WithEmptyGlyphs(keep bool) LayoutOption {
	return func(l *Layouter) {
		l.config.KeepEmptyGlyphs = keep
	}
}

// WithBidiClassifier sets the paragraph/direction classifier.
func WithBidiClassifier(c BidiClassifier) LayoutOption {
	return func(l *Layouter) {
		if c != nil {
			l.classifier = c
		}
	}
}

// WithLineBreaker sets the line-break opportunity finder.
func WithLineBreaker(b LineBreaker) LayoutOption {
	return func(l *Layouter) {
		if b != nil {
			l.builder.Breaker = b
		}
	}
}

// WithShaper sets the text shaper.
func WithShaper(s Shaper) LayoutOption {
	return func(l *Layouter) {
		if s != nil {
			l.builder.Shaper = s
		}
	}
}

// WithOutlineProvider sets the glyph outline provider.
func WithOutlineProvider(p OutlineProvider) LayoutOption {
	return func(l *Layouter) {
		if p != nil {
			l.builder.Outlines = p
		}
	}
}
