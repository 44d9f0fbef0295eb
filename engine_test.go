package textpath

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/gogpu/textpath/text"
)

func testEngine(t *testing.T, docs ...DocumentConfig) *Engine {
	t.Helper()
	cfg := DefaultConfig()
	cfg.Fonts = append(cfg.Fonts, FontConfig{ID: "serif", Src: "builtin:lmroman"})
	cfg.Documents = docs
	eng, err := New(cfg)
	require.NoError(t, err)
	return eng
}

func TestEnginePaths(t *testing.T) {
	eng := testEngine(t, DocumentConfig{Name: "hello", Text: "Hello World"})

	paths, err := eng.Paths(0, 0, 600, 100, 16, "hello")
	require.NoError(t, err)
	require.Len(t, paths, 10)
	for _, p := range paths {
		assert.True(t, strings.HasPrefix(p, "M"), p)
		assert.True(t, strings.HasSuffix(p, "Z "), p)
	}

	assert.Equal(t, []string{"hello"}, eng.Documents())
	assert.Equal(t, []string{"regular", "serif"}, eng.Registry().IDs())
}

func TestEngineUnknownDocument(t *testing.T) {
	eng := testEngine(t)

	_, err := eng.Paths(0, 0, 100, 100, 16, "missing")
	assert.ErrorIs(t, err, ErrUnknownDocument)

	_, err = eng.LayoutDetailed(text.InputTransform{W: 100, H: 100, Size: 16}, "missing")
	assert.ErrorIs(t, err, ErrUnknownDocument)

	_, ok := eng.Document("missing")
	assert.False(t, ok)
}

func TestEngineCache(t *testing.T) {
	eng := testEngine(t, DocumentConfig{Name: "hello", Text: "Hello"})

	first, err := eng.Paths(0, 0, 300, 100, 16, "hello")
	require.NoError(t, err)
	want := append([]string(nil), first...)
	first[0] = "clobbered"

	second, err := eng.Paths(0, 0, 300, 100, 16, "hello")
	require.NoError(t, err)
	assert.Equal(t, want, second, "cached paths must not alias returned slices")

	_, err = eng.Paths(5, 0, 300, 100, 16, "hello")
	require.NoError(t, err)

	s := eng.CacheStats()
	assert.Equal(t, DefaultCacheSize, s.Capacity)
	assert.Equal(t, 2, s.Len)
	assert.Equal(t, uint64(1), s.Hits)
	assert.Equal(t, uint64(2), s.Misses)
}

func TestEngineParagraphFonts(t *testing.T) {
	eng := testEngine(t, DocumentConfig{
		Name:  "mixed",
		Text:  "o\no",
		Fonts: []string{"serif", "regular"},
	})

	paths, err := eng.Paths(0, 0, 300, 200, 32, "mixed")
	require.NoError(t, err)
	require.Len(t, paths, 2)

	// Latin Modern is a CFF font with cubic outlines, Go Regular is
	// TrueType with quadratic ones.
	assert.Contains(t, paths[0], "C")
	assert.NotContains(t, paths[0], "Q")
	assert.Contains(t, paths[1], "Q")
	assert.NotContains(t, paths[1], "C")
}

func TestEngineLayoutDetailed(t *testing.T) {
	eng := testEngine(t, DocumentConfig{Name: "two", Text: "a\nb", VAlign: "reverse"})

	res, err := eng.LayoutDetailed(text.InputTransform{W: 200, H: 100, Size: 20}, "two")
	require.NoError(t, err)
	assert.Equal(t, 2, res.LineCount())
	assert.Len(t, res.Paths, 2)
	assert.Equal(t, 0, eng.CacheStats().Len)
}

func TestEngineDocumentCopy(t *testing.T) {
	eng := testEngine(t, DocumentConfig{Name: "d", Text: "x", Fonts: []string{"serif"}, HAlign: "center"})

	doc, ok := eng.Document("d")
	require.True(t, ok)
	assert.Equal(t, text.AlignCenter, doc.HorizontalAlignment)
	doc.ParagraphFonts[0] = "regular"

	again, _ := eng.Document("d")
	assert.Equal(t, []string{"serif"}, again.ParagraphFonts)
}

func TestEngineOptionsOverrideConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Documents = []DocumentConfig{{Name: "d", Text: "x"}}
	eng, err := New(cfg, text.WithPadding(0))
	require.NoError(t, err)

	res, err := eng.LayoutDetailed(text.InputTransform{W: 200, H: 100, Size: 20}, "d")
	require.NoError(t, err)
	assert.Equal(t, 0.0, res.Paragraphs[0].Placements[0].StartX)
}

func TestNewErrors(t *testing.T) {
	cfg := DefaultConfig()
	cfg.GlobalFallback = ""
	_, err := New(cfg)
	assert.ErrorIs(t, err, ErrInvalidConfig)

	cfg = DefaultConfig()
	cfg.Fonts[0].Src = "builtin:comic"
	_, err = New(cfg)
	assert.ErrorIs(t, err, ErrUnknownBuiltin)

	var fe *text.FontError
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, "regular", fe.ID)
}

func TestNewWithRegistry(t *testing.T) {
	reg, err := text.NewRegistry("go", text.FontSpec{ID: "go", Data: goregular.TTF})
	require.NoError(t, err)

	src := &text.Document{Text: "ab", ParagraphFonts: []string{"go"}}
	eng := NewWithRegistry(reg, map[string]*text.Document{"d": src, "nil": nil}, 0)
	assert.Equal(t, []string{"d"}, eng.Documents())

	src.Text = "changed"
	paths, err := eng.Paths(0, 0, 200, 100, 16, "d")
	require.NoError(t, err)
	assert.Len(t, paths, 2)

	assert.Len(t, eng.Layout(text.InputTransform{W: 200, H: 100, Size: 16}, &text.Document{Text: "abc"}), 3)
	assert.Equal(t, 0, eng.CacheStats().Len)
}

func TestEnginePurgeCache(t *testing.T) {
	eng := testEngine(t, DocumentConfig{Name: "hello", Text: "Hello"})

	_, err := eng.Paths(0, 0, 300, 100, 16, "hello")
	require.NoError(t, err)
	require.Equal(t, 1, eng.CacheStats().Len)

	eng.PurgeCache()
	assert.Equal(t, 0, eng.CacheStats().Len)

	_, err = eng.Paths(0, 0, 300, 100, 16, "hello")
	require.NoError(t, err)
	s := eng.CacheStats()
	assert.Equal(t, uint64(0), s.Hits)
	assert.Equal(t, uint64(2), s.Misses)
}
