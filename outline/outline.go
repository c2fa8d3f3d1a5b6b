// Package outline turns font glyphs into Bézier contours and flattens them
// with the geom toolkit.
//
// Two feeds are supported: golang.org/x/image/font/sfnt (FromSFNT, Font) and
// github.com/go-text/typesetting (FromFace). Both produce the same Glyph in
// pixel units with the baseline at y = 0 and y increasing downwards, the
// convention of image rasterizers.
package outline

import (
	"errors"

	"github.com/gogpu/geom"
)

// ErrNoOutline is returned for runes the font does not map, and for glyphs
// stored as bitmaps or color layers rather than vector outlines.
var ErrNoOutline = errors.New("outline: glyph has no vector outline")

// Kind is the degree of a Segment.
type Kind uint8

// Segment kinds.
const (
	KindLine Kind = iota
	KindQuad
	KindCubic
)

func (k Kind) String() string {
	switch k {
	case KindLine:
		return "Line"
	case KindQuad:
		return "Quad"
	case KindCubic:
		return "Cubic"
	default:
		return "Unknown"
	}
}

// Segment is one piece of a contour. Only the first Kind+2 points of P are
// meaningful.
type Segment struct {
	Kind Kind
	P    [4]geom.Vec2
}

// LineSegment returns a straight segment.
func LineSegment(p0, p1 geom.Vec2) Segment {
	return Segment{Kind: KindLine, P: [4]geom.Vec2{p0, p1}}
}

// QuadSegment returns a quadratic segment.
func QuadSegment(p0, p1, p2 geom.Vec2) Segment {
	return Segment{Kind: KindQuad, P: [4]geom.Vec2{p0, p1, p2}}
}

// CubicSegment returns a cubic segment.
func CubicSegment(p0, p1, p2, p3 geom.Vec2) Segment {
	return Segment{Kind: KindCubic, P: [4]geom.Vec2{p0, p1, p2, p3}}
}

// Start returns the first point.
func (s Segment) Start() geom.Vec2 { return s.P[0] }

// End returns the last point.
func (s Segment) End() geom.Vec2 { return s.P[s.Kind+1] }

// Quad returns the segment as a quadratic. It is only valid for KindQuad.
func (s Segment) Quad() geom.QuadBez { return geom.NewQuadBez(s.P[0], s.P[1], s.P[2]) }

// Cubic returns the segment as a cubic, raising lines and quadratics.
func (s Segment) Cubic() geom.CubicBez {
	switch s.Kind {
	case KindLine:
		a, b := s.P[0], s.P[1]
		return geom.NewCubicBez(a, a.Lerp(b, 1.0/3), a.Lerp(b, 2.0/3), b)
	case KindQuad:
		return s.Quad().Raise()
	default:
		return geom.NewCubicBez(s.P[0], s.P[1], s.P[2], s.P[3])
	}
}

// Eval evaluates the segment at t.
func (s Segment) Eval(t float64) geom.Vec2 {
	switch s.Kind {
	case KindLine:
		return geom.Line{P0: s.P[0], P1: s.P[1]}.Eval(t)
	case KindQuad:
		return s.Quad().Eval(t)
	default:
		return s.Cubic().Eval(t)
	}
}

// Flatten writes a polyline approximation of s into out and returns the
// number of points written. It follows geom.CubicBez.Flatten: the start
// point comes first and the output is truncated when out is full.
func (s Segment) Flatten(tolerance float64, out []geom.Vec2) int {
	switch s.Kind {
	case KindLine:
		if len(out) == 0 {
			return 0
		}
		out[0] = s.P[0]
		if len(out) == 1 {
			return 1
		}
		out[1] = s.P[1]
		return 2
	case KindQuad:
		return s.Quad().Flatten(tolerance, out)
	default:
		return s.Cubic().Flatten(tolerance, out)
	}
}

// AppendFlatten appends the flattened segment, start point included, to dst.
func (s Segment) AppendFlatten(dst []geom.Vec2, tolerance float64) []geom.Vec2 {
	switch s.Kind {
	case KindLine:
		return append(dst, s.P[0], s.P[1])
	case KindQuad:
		return s.Quad().AppendFlatten(dst, tolerance)
	default:
		return s.Cubic().AppendFlatten(dst, tolerance)
	}
}

// Bounds returns a box containing the segment's control points, and
// therefore the segment.
func (s Segment) Bounds() geom.Rect {
	return geom.RectFromPoints(s.P[:s.Kind+2])
}

// Transform applies the 2D affine transform m to every control point.
func (s Segment) Transform(m geom.Mat3) Segment {
	for i := range int(s.Kind) + 2 {
		s.P[i] = m.MulVec(s.P[i].Vec3(1)).XY()
	}
	return s
}

// Contour is a closed sequence of connected segments: each segment starts
// where the previous one ends and the last ends at the first's start.
type Contour []Segment

// Flatten writes the contour as one polyline into out and returns the
// number of points written. Shared endpoints between segments are written
// once, so a closed contour ends on its start point.
func (c Contour) Flatten(tolerance float64, out []geom.Vec2) int {
	if len(c) == 0 || len(out) == 0 {
		return 0
	}
	out[0] = c[0].Start()
	n := 1
	for i, s := range c {
		if n == len(out) {
			geom.Logger().Debug("outline: contour truncated",
				"segments", len(c), "flattened", i, "capacity", len(out))
			return n
		}
		// out[n-1] already holds s.Start(); the segment rewrites it.
		n += s.Flatten(tolerance, out[n-1:]) - 1
	}
	return n
}

// AppendFlatten appends the contour as one polyline to dst.
func (c Contour) AppendFlatten(dst []geom.Vec2, tolerance float64) []geom.Vec2 {
	for i, s := range c {
		start := len(dst)
		dst = s.AppendFlatten(dst, tolerance)
		if i > 0 {
			// Drop the duplicated joint.
			dst = append(dst[:start], dst[start+1:]...)
		}
	}
	return dst
}

// Glyph is the outline of one rune scaled to pixels.
//
// Glyphs returned by Font are shared through its cache and must be treated
// as read-only; Transform returns a copy.
type Glyph struct {
	Rune     rune
	Advance  float64
	Contours []Contour
}

// Segments returns the total number of segments.
func (g Glyph) Segments() int {
	n := 0
	for _, c := range g.Contours {
		n += len(c)
	}
	return n
}

// Bounds returns the union of the contours' control-point boxes. An empty
// glyph returns the zero Rect.
func (g Glyph) Bounds() geom.Rect {
	var r geom.Rect
	first := true
	for _, c := range g.Contours {
		for _, s := range c {
			if first {
				r, first = s.Bounds(), false
				continue
			}
			r = r.Union(s.Bounds())
		}
	}
	return r
}

// Transform returns a copy of g with m applied to every contour.
func (g Glyph) Transform(m geom.Mat3) Glyph {
	out := Glyph{Rune: g.Rune, Advance: g.Advance, Contours: make([]Contour, len(g.Contours))}
	for i, c := range g.Contours {
		nc := make(Contour, len(c))
		for j, s := range c {
			nc[j] = s.Transform(m)
		}
		out.Contours[i] = nc
	}
	return out
}

// Translate returns a copy of g moved by d.
func (g Glyph) Translate(d geom.Vec2) Glyph {
	return g.Transform(geom.NewMat3(
		1, 0, d.X,
		0, 1, d.Y,
		0, 0, 1,
	))
}

// Flatten writes every contour into out, one polyline after another, and
// appends the end index of each polyline to ends. It returns the number of
// points written and the extended ends. When out fills up the remaining
// contours are dropped.
func (g Glyph) Flatten(tolerance float64, out []geom.Vec2, ends []int) (int, []int) {
	n := 0
	for i, c := range g.Contours {
		if n == len(out) {
			geom.Logger().Debug("outline: glyph truncated",
				"rune", string(g.Rune), "contours", len(g.Contours), "flattened", i)
			break
		}
		n += c.Flatten(tolerance, out[n:])
		ends = append(ends, n)
	}
	return n, ends
}

// AppendFlatten appends every contour to dst and their end indices to ends.
func (g Glyph) AppendFlatten(dst []geom.Vec2, ends []int, tolerance float64) ([]geom.Vec2, []int) {
	for _, c := range g.Contours {
		dst = c.AppendFlatten(dst, tolerance)
		ends = append(ends, len(dst))
	}
	return dst, ends
}

// builder accumulates contours from move/line/quad/cube commands and closes
// each contour with a line back to its start when needed.
type builder struct {
	contours []Contour
	cur      Contour
	start    geom.Vec2
	pen      geom.Vec2
}

func (b *builder) moveTo(p geom.Vec2) {
	b.close()
	b.start, b.pen = p, p
}

func (b *builder) lineTo(p geom.Vec2) {
	b.cur = append(b.cur, LineSegment(b.pen, p))
	b.pen = p
}

func (b *builder) quadTo(c, p geom.Vec2) {
	b.cur = append(b.cur, QuadSegment(b.pen, c, p))
	b.pen = p
}

func (b *builder) cubeTo(c1, c2, p geom.Vec2) {
	b.cur = append(b.cur, CubicSegment(b.pen, c1, c2, p))
	b.pen = p
}

func (b *builder) close() {
	if len(b.cur) == 0 {
		return
	}
	if b.pen != b.start {
		b.lineTo(b.start)
	}
	b.contours = append(b.contours, b.cur)
	b.cur = nil
	b.pen = b.start
}

func (b *builder) finish() []Contour {
	b.close()
	return b.contours
}
