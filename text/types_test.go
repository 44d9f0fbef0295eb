package text

import "testing"

func TestAlignmentString(t *testing.T) {
	tests := []struct {
		a    Alignment
		want string
	}{
		{AlignNormal, "Normal"},
		{AlignReverse, "Reverse"},
		{AlignCenter, "Center"},
		{Alignment(7), unknownStr},
	}
	for _, tt := range tests {
		if got := tt.a.String(); got != tt.want {
			t.Errorf("Alignment(%d).String() = %q, want %q", tt.a, got, tt.want)
		}
	}
}

func TestParseAlignment(t *testing.T) {
	tests := []struct {
		in   string
		want Alignment
		ok   bool
	}{
		{"", AlignNormal, true},
		{"normal", AlignNormal, true},
		{"Reverse", AlignReverse, true},
		{"CENTER", AlignCenter, true},
		{"centre", AlignCenter, true},
		{"justify", AlignNormal, false},
	}
	for _, tt := range tests {
		got, ok := ParseAlignment(tt.in)
		if got != tt.want || ok != tt.ok {
			t.Errorf("ParseAlignment(%q) = %v, %v; want %v, %v", tt.in, got, ok, tt.want, tt.ok)
		}
	}
}

func TestInputTransformEdges(t *testing.T) {
	in := InputTransform{X: 10, Y: 20, W: 300, H: 40}
	if in.Left() != 10 || in.Right() != 310 || in.Top() != 20 || in.Bottom() != 60 {
		t.Errorf("edges = %v %v %v %v", in.Left(), in.Right(), in.Top(), in.Bottom())
	}
}

func TestDocumentParagraphFont(t *testing.T) {
	d := &Document{ParagraphFonts: []FontID{"a", "b"}}
	tests := []struct {
		i    int
		want FontID
	}{
		{-1, ""},
		{0, "a"},
		{1, "b"},
		{2, ""},
	}
	for _, tt := range tests {
		if got := d.paragraphFont(tt.i); got != tt.want {
			t.Errorf("paragraphFont(%d) = %q, want %q", tt.i, got, tt.want)
		}
	}
}
