package text

import "testing"

func TestUnicodeBidiParagraphs(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []BidiParagraph
	}{
		{"empty", "", nil},
		{"single LTR", "Hello", []BidiParagraph{{0, 5, DirectionLTR}}},
		{"single RTL", "שלום", []BidiParagraph{{0, 8, DirectionRTL}}},
		{"arabic", "مرحبا", []BidiParagraph{{0, 10, DirectionRTL}}},
		{"two paragraphs", "ab\ncd", []BidiParagraph{
			{0, 3, DirectionLTR},
			{3, 5, DirectionLTR},
		}},
		{"trailing newline", "ab\n", []BidiParagraph{{0, 3, DirectionLTR}}},
		{"crlf", "ab\r\ncd", []BidiParagraph{
			{0, 4, DirectionLTR},
			{4, 6, DirectionLTR},
		}},
		{"empty middle", "a\n\nb", []BidiParagraph{
			{0, 2, DirectionLTR},
			{2, 3, DirectionLTR},
			{3, 4, DirectionLTR},
		}},
		{"mixed", "abc\nשלום", []BidiParagraph{
			{0, 4, DirectionLTR},
			{4, 12, DirectionRTL},
		}},
		{"neutral first", "123 שלום", []BidiParagraph{{0, 12, DirectionRTL}}},
		{"no strong", "123 !", []BidiParagraph{{0, 5, DirectionLTR}}},
		{"isolate skipped", "\u2067abc\u2069 שלום", []BidiParagraph{{0, 18, DirectionRTL}}},
	}

	var c UnicodeBidi
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := c.Paragraphs(tt.text)
			if len(got) != len(tt.want) {
				t.Fatalf("Paragraphs(%q) = %+v, want %+v", tt.text, got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("paragraph %d = %+v, want %+v", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestUnicodeBidiDefault(t *testing.T) {
	c := UnicodeBidi{Default: DirectionRTL}
	got := c.Paragraphs("42")
	if len(got) != 1 || got[0].Direction != DirectionRTL {
		t.Errorf("Paragraphs(\"42\") = %+v, want one RTL paragraph", got)
	}
}

func TestTrimParagraphSeparator(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"", ""},
		{"abc", "abc"},
		{"abc\n", "abc"},
		{"abc\r\n", "abc"},
		{"abc\n\n", "abc\n"},
		{"abc\u2029", "abc"},
		{"abc ", "abc "},
		{"\n", ""},
	}
	for _, tt := range tests {
		if got := trimParagraphSeparator(tt.in); got != tt.want {
			t.Errorf("trimParagraphSeparator(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestResolveParagraphs(t *testing.T) {
	reg := testRegistry(t)

	doc := &Document{
		Text:           "one\nשתיים\nthree\n",
		ParagraphFonts: []FontID{"bold", "missing"},
		FallbackFont:   "mono",
	}
	paras := ResolveParagraphs(doc, reg, UnicodeBidi{})
	if len(paras) != 3 {
		t.Fatalf("got %d paragraphs, want 3", len(paras))
	}

	want := []struct {
		text string
		dir  Direction
		font FontID
	}{
		{"one", DirectionLTR, "bold"},
		{"שתיים", DirectionRTL, "mono"},
		{"three", DirectionLTR, "mono"},
	}
	for i, w := range want {
		p := paras[i]
		if p.Text != w.text {
			t.Errorf("paragraph %d Text = %q, want %q", i, p.Text, w.text)
		}
		if p.Direction != w.dir {
			t.Errorf("paragraph %d Direction = %v, want %v", i, p.Direction, w.dir)
		}
		if p.Font.ID() != w.font {
			t.Errorf("paragraph %d Font = %q, want %q", i, p.Font.ID(), w.font)
		}
	}
	if paras[2].End != len(doc.Text) {
		t.Errorf("last paragraph End = %d, want %d", paras[2].End, len(doc.Text))
	}
}

func TestResolveParagraphsEmpty(t *testing.T) {
	reg := testRegistry(t)
	if got := ResolveParagraphs(&Document{}, reg, UnicodeBidi{}); got != nil {
		t.Errorf("ResolveParagraphs(empty) = %v, want nil", got)
	}
	if got := ResolveParagraphs(nil, reg, UnicodeBidi{}); got != nil {
		t.Errorf("ResolveParagraphs(nil) = %v, want nil", got)
	}
}

func TestDirectionString(t *testing.T) {
	if DirectionLTR.String() != "LTR" || DirectionRTL.String() != "RTL" || Direction(5).String() != unknownStr {
		t.Error("unexpected Direction.String output")
	}
	if DirectionLTR.IsRTL() || !DirectionRTL.IsRTL() {
		t.Error("unexpected Direction.IsRTL output")
	}
}
