package text

import (
	"strconv"
	"strings"
)

// OutlineSink receives the drawing commands of a glyph outline.
// Coordinates are in font units (Y-up). Outline providers drive a sink;
// GlyphPath is the sink used by the shaping pipeline.
type OutlineSink interface {
	MoveTo(x, y float32)
	LineTo(x, y float32)
	QuadTo(cx, cy, x, y float32)
	CubeTo(c1x, c1y, c2x, c2y, x, y float32)
	Close()
}

// PathOp is the type of a recorded path command.
type PathOp uint8

const (
	// CmdMoveTo starts a new contour.
	CmdMoveTo PathOp = iota
	// CmdLineTo draws a straight line.
	CmdLineTo
	// CmdQuadTo draws a quadratic bezier curve.
	CmdQuadTo
	// CmdCubeTo draws a cubic bezier curve.
	CmdCubeTo
	// CmdClose closes the current contour.
	CmdClose
)

// String returns a string representation of the operation.
func (op PathOp) String() string {
	switch op {
	case CmdMoveTo:
		return "MoveTo"
	case CmdLineTo:
		return "LineTo"
	case CmdQuadTo:
		return "QuadTo"
	case CmdCubeTo:
		return "CubeTo"
	case CmdClose:
		return "Close"
	default:
		return unknownStr
	}
}

// PathCmd is one recorded drawing command.
// Points holds, in order: the target (MoveTo, LineTo), control and target
// (QuadTo), or two controls and target (CubeTo). Close uses no points.
type PathCmd struct {
	Op     PathOp
	Points [3]Point
}

// pointCount returns how many entries of Points are meaningful.
func (c PathCmd) pointCount() int {
	switch c.Op {
	case CmdMoveTo, CmdLineTo:
		return 1
	case CmdQuadTo:
		return 2
	case CmdCubeTo:
		return 3
	default:
		return 0
	}
}

// GlyphPath accumulates the outline of one glyph.
//
// While the outline is extracted, every incoming coordinate goes through
// Transform and is stored in fragment-local screen space. Afterwards the
// geometry is frozen: placing the glyph only changes Offset, and the path
// string is rebuilt lazily from the stored commands.
type GlyphPath struct {
	// Transform maps font units to fragment-local screen space.
	Transform Matrix

	cmds   []PathCmd
	offset Point

	// path caches the rendered string; valid is false after placement changes.
	path  string
	valid bool
}

// NewGlyphPath creates an empty path with the given outline transform.
func NewGlyphPath(m Matrix) *GlyphPath {
	return &GlyphPath{Transform: m}
}

func (g *GlyphPath) push(op PathOp, pts ...Point) {
	cmd := PathCmd{Op: op}
	for i, p := range pts {
		cmd.Points[i] = g.Transform.TransformPoint(p)
	}
	g.cmds = append(g.cmds, cmd)
	g.valid = false
}

// MoveTo implements OutlineSink.
func (g *GlyphPath) MoveTo(x, y float32) {
	g.push(CmdMoveTo, fpt(x, y))
}

// LineTo implements OutlineSink.
func (g *GlyphPath) LineTo(x, y float32) {
	g.push(CmdLineTo, fpt(x, y))
}

// QuadTo implements OutlineSink.
func (g *GlyphPath) QuadTo(cx, cy, x, y float32) {
	g.push(CmdQuadTo, fpt(cx, cy), fpt(x, y))
}

// CubeTo implements OutlineSink.
func (g *GlyphPath) CubeTo(c1x, c1y, c2x, c2y, x, y float32) {
	g.push(CmdCubeTo, fpt(c1x, c1y), fpt(c2x, c2y), fpt(x, y))
}

// Close implements OutlineSink.
func (g *GlyphPath) Close() {
	g.push(CmdClose)
}

func fpt(x, y float32) Point {
	return Point{X: float64(x), Y: float64(y)}
}

// Commands returns the recorded commands in fragment-local coordinates.
// The slice must not be modified.
func (g *GlyphPath) Commands() []PathCmd {
	return g.cmds
}

// IsEmpty reports whether the outline has no drawing commands.
func (g *GlyphPath) IsEmpty() bool {
	return len(g.cmds) == 0
}

// Offset returns the current placement offset.
func (g *GlyphPath) Offset() Point {
	return g.offset
}

// Translate moves the glyph by (dx, dy) relative to its current placement.
// The stored outline is left untouched, so translating by v and then by -v
// restores the original coordinates.
func (g *GlyphPath) Translate(dx, dy float64) {
	g.offset = g.offset.Add(Pt(dx, dy))
	g.valid = false
}

// PlaceAt sets the placement offset absolutely.
func (g *GlyphPath) PlaceAt(p Point) {
	if p == g.offset && g.valid {
		return
	}
	g.offset = p
	g.valid = false
}

// Path returns the path string of the placed glyph.
func (g *GlyphPath) Path() string {
	if g.valid {
		return g.path
	}
	var sb strings.Builder
	sb.Grow(len(g.cmds) * 24)
	for _, c := range g.cmds {
		writeCmd(&sb, c, g.offset)
	}
	g.path = sb.String()
	g.valid = true
	return g.path
}

// writeCmd renders one command shifted by off.
//
//	M{x} {y} , L{x} {y} , Q{cx} {cy},{x} {y} , C{c1x} {c1y},{c2x} {c2y},{x} {y} , Z
func writeCmd(sb *strings.Builder, c PathCmd, off Point) {
	switch c.Op {
	case CmdMoveTo:
		sb.WriteByte('M')
	case CmdLineTo:
		sb.WriteByte('L')
	case CmdQuadTo:
		sb.WriteByte('Q')
	case CmdCubeTo:
		sb.WriteByte('C')
	case CmdClose:
		sb.WriteByte('Z')
	}
	for i := range c.pointCount() {
		if i > 0 {
			sb.WriteByte(',')
		}
		writePoint(sb, c.Points[i].Add(off))
	}
	sb.WriteByte(' ')
}

// writePoint writes "x y" without a trailing separator.
func writePoint(sb *strings.Builder, p Point) {
	sb.WriteString(formatCoord(p.X))
	sb.WriteByte(' ')
	sb.WriteString(formatCoord(p.Y))
}

// formatCoord prints the shortest representation that round-trips.
func formatCoord(v float64) string {
	if v == 0 {
		// Avoid "-0".
		return "0"
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}
