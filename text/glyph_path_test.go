package text

import "testing"

func TestPathOpString(t *testing.T) {
	tests := []struct {
		op   PathOp
		want string
	}{
		{CmdMoveTo, "MoveTo"},
		{CmdLineTo, "LineTo"},
		{CmdQuadTo, "QuadTo"},
		{CmdCubeTo, "CubeTo"},
		{CmdClose, "Close"},
		{PathOp(99), unknownStr},
	}

	for _, tt := range tests {
		if got := tt.op.String(); got != tt.want {
			t.Errorf("PathOp(%d).String() = %q, want %q", tt.op, got, tt.want)
		}
	}
}

func TestGlyphPathSyntax(t *testing.T) {
	p := NewGlyphPath(Identity())
	p.MoveTo(1, 2)
	p.LineTo(3, 4)
	p.QuadTo(5, 6, 7, 8)
	p.CubeTo(9, 10, 11, 12, 13, 14)
	p.Close()

	want := "M1 2 L3 4 Q5 6,7 8 C9 10,11 12,13 14 Z "
	if got := p.Path(); got != want {
		t.Errorf("Path() = %q, want %q", got, want)
	}
}

func TestGlyphPathEmpty(t *testing.T) {
	p := NewGlyphPath(Identity())
	if !p.IsEmpty() {
		t.Error("IsEmpty() = false, want true")
	}
	if got := p.Path(); got != "" {
		t.Errorf("Path() = %q, want empty", got)
	}
}

func TestGlyphPathTransform(t *testing.T) {
	// Font units Y-up, 1000 upem at 10px, then shifted to (5, 20).
	m := Translate(5, 20).Multiply(FontToScreen(10, 1000))
	p := NewGlyphPath(m)
	p.MoveTo(100, 500)
	p.LineTo(0, 0)

	want := "M6 15 L5 20 "
	if got := p.Path(); got != want {
		t.Errorf("Path() = %q, want %q", got, want)
	}
}

func TestGlyphPathNegativeZero(t *testing.T) {
	p := NewGlyphPath(Scale(1, -1))
	p.MoveTo(0, 0)
	p.LineTo(-1.5, 0)

	want := "M0 0 L-1.5 0 "
	if got := p.Path(); got != want {
		t.Errorf("Path() = %q, want %q", got, want)
	}
}

// TestGlyphPathTranslateRoundTrip moves a glyph by v and back by -v and
// checks that the path string is unchanged.
func TestGlyphPathTranslateRoundTrip(t *testing.T) {
	p := NewGlyphPath(Identity())
	p.MoveTo(0.5, 1)
	p.QuadTo(2, 3, 4, 5)
	p.Close()

	before := p.Path()
	vectors := []Point{{10, 20}, {-3.25, 0}, {0, -7.5}, {1e6, -1e6}}
	for _, v := range vectors {
		p.Translate(v.X, v.Y)
		if v != (Point{}) && p.Path() == before {
			t.Errorf("Translate(%v) did not change the path", v)
		}
		p.Translate(-v.X, -v.Y)
		if got := p.Path(); got != before {
			t.Errorf("Translate(%v) then back: Path() = %q, want %q", v, got, before)
		}
	}
}

func TestGlyphPathTranslateCumulative(t *testing.T) {
	p := NewGlyphPath(Identity())
	p.MoveTo(1, 1)

	p.Translate(2, 3)
	p.Translate(4, 5)
	if got, want := p.Offset(), Pt(6, 8); got != want {
		t.Errorf("Offset() = %v, want %v", got, want)
	}
	if got, want := p.Path(), "M7 9 "; got != want {
		t.Errorf("Path() = %q, want %q", got, want)
	}
}

// TestGlyphPathPlaceAtKeepsGeometry checks that placement changes only the
// offset and never the stored commands.
func TestGlyphPathPlaceAtKeepsGeometry(t *testing.T) {
	p := NewGlyphPath(Scale(2, 2))
	p.MoveTo(1, 1)
	p.LineTo(2, 1)

	cmds := append([]PathCmd(nil), p.Commands()...)
	p.PlaceAt(Pt(100, 50))
	p.PlaceAt(Pt(-3, 4))

	for i, c := range p.Commands() {
		if c != cmds[i] {
			t.Errorf("command %d changed: %+v, want %+v", i, c, cmds[i])
		}
	}
	if got, want := p.Path(), "M-1 6 L1 6 "; got != want {
		t.Errorf("Path() = %q, want %q", got, want)
	}
}

func TestGlyphPathCloseHasNoPoints(t *testing.T) {
	p := NewGlyphPath(Identity())
	p.MoveTo(1, 2)
	p.Close()
	p.PlaceAt(Pt(10, 10))

	if got, want := p.Path(), "M11 12 Z "; got != want {
		t.Errorf("Path() = %q, want %q", got, want)
	}
}
