package geom

import "math"

// Curve types for 2D geometry. Every evaluation goes through repeated
// linear interpolation (de Casteljau), so parameters outside [0, 1]
// extrapolate the curve instead of being clamped.

// Rect represents an axis-aligned rectangle.
type Rect struct {
	Min, Max Vec2
}

// NewRect creates a rectangle from two corners, normalized so Min <= Max.
func NewRect(p1, p2 Vec2) Rect {
	return Rect{
		Min: Vec2{X: math.Min(p1.X, p2.X), Y: math.Min(p1.Y, p2.Y)},
		Max: Vec2{X: math.Max(p1.X, p2.X), Y: math.Max(p1.Y, p2.Y)},
	}
}

// RectFromPoints returns the smallest rectangle containing all points.
// It returns the zero Rect for an empty slice.
func RectFromPoints(pts []Vec2) Rect {
	if len(pts) == 0 {
		return Rect{}
	}
	r := Rect{Min: pts[0], Max: pts[0]}
	for _, p := range pts[1:] {
		r = r.Union(Rect{Min: p, Max: p})
	}
	return r
}

// Width returns the width of the rectangle.
func (r Rect) Width() float64 {
	return r.Max.X - r.Min.X
}

// Height returns the height of the rectangle.
func (r Rect) Height() float64 {
	return r.Max.Y - r.Min.Y
}

// Union returns the smallest rectangle containing both r and other.
func (r Rect) Union(other Rect) Rect {
	return Rect{
		Min: Vec2{X: math.Min(r.Min.X, other.Min.X), Y: math.Min(r.Min.Y, other.Min.Y)},
		Max: Vec2{X: math.Max(r.Max.X, other.Max.X), Y: math.Max(r.Max.Y, other.Max.Y)},
	}
}

// Contains returns true if the point is inside the rectangle.
func (r Rect) Contains(p Vec2) bool {
	return p.X >= r.Min.X && p.X <= r.Max.X && p.Y >= r.Min.Y && p.Y <= r.Max.Y
}

// -------------------------------------------------------------------
// Line
// -------------------------------------------------------------------

// Line represents a line segment from P0 to P1 (a degree-1 Bézier curve).
type Line struct {
	P0, P1 Vec2
}

// Eval evaluates the line at parameter t.
func (l Line) Eval(t float64) Vec2 {
	return l.P0.Lerp(l.P1, t)
}

// Length returns the length of the segment.
func (l Line) Length() float64 {
	return l.P0.Distance(l.P1)
}

// Reversed returns the line with endpoints swapped.
func (l Line) Reversed() Line {
	return Line{P0: l.P1, P1: l.P0}
}

// -------------------------------------------------------------------
// QuadBez - Quadratic Bézier Curve
// -------------------------------------------------------------------

// QuadBez is a quadratic Bézier curve. P0 and P2 are the endpoints and P1
// is the control point, which the curve does not generally pass through.
type QuadBez struct {
	P0, P1, P2 Vec2
}

// NewQuadBez creates a new quadratic Bézier curve.
func NewQuadBez(p0, p1, p2 Vec2) QuadBez {
	return QuadBez{P0: p0, P1: p1, P2: p2}
}

// DeCasteljau returns the construction at t: the two first-round points
// q0 = lerp(P0, P1) and q1 = lerp(P1, P2), and the curve point lerp(q0, q1).
func (q QuadBez) DeCasteljau(t float64) (q0, q1, p Vec2) {
	q0 = q.P0.Lerp(q.P1, t)
	q1 = q.P1.Lerp(q.P2, t)
	return q0, q1, q0.Lerp(q1, t)
}

// Eval evaluates the curve at t.
func (q QuadBez) Eval(t float64) Vec2 {
	_, _, p := q.DeCasteljau(t)
	return p
}

// Start returns the starting point of the curve.
func (q QuadBez) Start() Vec2 {
	return q.P0
}

// End returns the ending point of the curve.
func (q QuadBez) End() Vec2 {
	return q.P2
}

// Deriv returns the derivative curve, a line from 2(P1-P0) to 2(P2-P1).
func (q QuadBez) Deriv() Line {
	return Line{
		P0: q.P1.Sub(q.P0).Mul(2),
		P1: q.P2.Sub(q.P1).Mul(2),
	}
}

// Tangent returns the first derivative at t.
func (q QuadBez) Tangent(t float64) Vec2 {
	return q.Deriv().Eval(t)
}

// Split divides the curve at t. The left curve covers [0, t] and the right
// curve [t, 1]; both share the point Eval(t).
func (q QuadBez) Split(t float64) (QuadBez, QuadBez) {
	q0, q1, p := q.DeCasteljau(t)
	return QuadBez{P0: q.P0, P1: q0, P2: p},
		QuadBez{P0: p, P1: q1, P2: q.P2}
}

// Subdivide splits the curve at t=0.5.
func (q QuadBez) Subdivide() (QuadBez, QuadBez) {
	return q.Split(0.5)
}

// Raise elevates the quadratic to the cubic tracing the identical curve:
// C1 = P0 + 2/3(P1-P0) and C2 = P2 + 2/3(P1-P2).
func (q QuadBez) Raise() CubicBez {
	return CubicBez{
		P0: q.P0,
		P1: q.P0.Add(q.P1.Sub(q.P0).Mul(2.0 / 3.0)),
		P2: q.P2.Add(q.P1.Sub(q.P2).Mul(2.0 / 3.0)),
		P3: q.P2,
	}
}

// ArcLength approximates the length by summing the chords between segs+1
// evenly spaced samples. segs < 1 is treated as 1.
func (q QuadBez) ArcLength(segs int) float64 {
	return chordLength(q.Eval, segs)
}

// Flatness returns how far the control point lies from the chord P0-P2.
func (q QuadBez) Flatness() float64 {
	return distanceToSegment(q.P1, q.P0, q.P2)
}

// IsFlat reports whether Flatness is within tolerance.
func (q QuadBez) IsFlat(tolerance float64) bool {
	return q.Flatness() <= tolerance
}

// BoundingBox returns the bounding box of the control polygon, which
// contains the curve for t in [0, 1].
func (q QuadBez) BoundingBox() Rect {
	return RectFromPoints([]Vec2{q.P0, q.P1, q.P2})
}

// Reversed returns the same curve traversed from P2 to P0.
func (q QuadBez) Reversed() QuadBez {
	return QuadBez{P0: q.P2, P1: q.P1, P2: q.P0}
}

// Flatten writes a polyline approximation into out and returns the number
// of points written. See flattenInto for the contract.
func (q QuadBez) Flatten(tolerance float64, out []Vec2) int {
	return flattenInto(q, tolerance, out)
}

// AppendFlatten appends the polyline approximation to dst.
func (q QuadBez) AppendFlatten(dst []Vec2, tolerance float64) []Vec2 {
	return appendFlatten(q, tolerance, dst)
}

// -------------------------------------------------------------------
// CubicBez - Cubic Bézier Curve
// -------------------------------------------------------------------

// CubicBez is a cubic Bézier curve with endpoints P0, P3 and control points
// P1, P2.
type CubicBez struct {
	P0, P1, P2, P3 Vec2
}

// NewCubicBez creates a new cubic Bézier curve.
func NewCubicBez(p0, p1, p2, p3 Vec2) CubicBez {
	return CubicBez{P0: p0, P1: p1, P2: p2, P3: p3}
}

// DeCasteljau returns the full construction at t: three first-round points,
// two second-round points and the curve point.
func (c CubicBez) DeCasteljau(t float64) (first [3]Vec2, second [2]Vec2, p Vec2) {
	first[0] = c.P0.Lerp(c.P1, t)
	first[1] = c.P1.Lerp(c.P2, t)
	first[2] = c.P2.Lerp(c.P3, t)
	second[0] = first[0].Lerp(first[1], t)
	second[1] = first[1].Lerp(first[2], t)
	return first, second, second[0].Lerp(second[1], t)
}

// Eval evaluates the curve at t.
func (c CubicBez) Eval(t float64) Vec2 {
	_, _, p := c.DeCasteljau(t)
	return p
}

// Start returns the starting point of the curve.
func (c CubicBez) Start() Vec2 {
	return c.P0
}

// End returns the ending point of the curve.
func (c CubicBez) End() Vec2 {
	return c.P3
}

// Deriv returns the derivative curve, a quadratic over 3× the differences of
// consecutive control points.
func (c CubicBez) Deriv() QuadBez {
	return QuadBez{
		P0: c.P1.Sub(c.P0).Mul(3),
		P1: c.P2.Sub(c.P1).Mul(3),
		P2: c.P3.Sub(c.P2).Mul(3),
	}
}

// Tangent returns the first derivative at t.
func (c CubicBez) Tangent(t float64) Vec2 {
	return c.Deriv().Eval(t)
}

// Normal returns the unit normal (tangent rotated counter-clockwise) at t.
func (c CubicBez) Normal(t float64) Vec2 {
	return c.Tangent(t).Perp().Normalize()
}

// Split divides the curve at t into [0, t] and [t, 1], reusing the
// intermediate de Casteljau points as the new control points.
func (c CubicBez) Split(t float64) (CubicBez, CubicBez) {
	first, second, p := c.DeCasteljau(t)
	return CubicBez{P0: c.P0, P1: first[0], P2: second[0], P3: p},
		CubicBez{P0: p, P1: second[1], P2: first[2], P3: c.P3}
}

// Subdivide splits the curve at t=0.5.
func (c CubicBez) Subdivide() (CubicBez, CubicBez) {
	return c.Split(0.5)
}

// ArcLength approximates the length by summing the chords between segs+1
// evenly spaced samples. segs < 1 is treated as 1.
func (c CubicBez) ArcLength(segs int) float64 {
	return chordLength(c.Eval, segs)
}

// Flatness returns the larger distance of P1 and P2 from the chord P0-P3.
func (c CubicBez) Flatness() float64 {
	return math.Max(distanceToSegment(c.P1, c.P0, c.P3), distanceToSegment(c.P2, c.P0, c.P3))
}

// IsFlat reports whether Flatness is within tolerance.
func (c CubicBez) IsFlat(tolerance float64) bool {
	return c.Flatness() <= tolerance
}

// BoundingBox returns the bounding box of the control polygon.
func (c CubicBez) BoundingBox() Rect {
	return RectFromPoints([]Vec2{c.P0, c.P1, c.P2, c.P3})
}

// Reversed returns the same curve traversed from P3 to P0.
func (c CubicBez) Reversed() CubicBez {
	return CubicBez{P0: c.P3, P1: c.P2, P2: c.P1, P3: c.P0}
}

// Flatten writes a polyline approximation into out and returns the number
// of points written.
func (c CubicBez) Flatten(tolerance float64, out []Vec2) int {
	return flattenInto(c, tolerance, out)
}

// AppendFlatten appends the polyline approximation to dst.
func (c CubicBez) AppendFlatten(dst []Vec2, tolerance float64) []Vec2 {
	return appendFlatten(c, tolerance, dst)
}

// distanceToSegment returns the distance from p to the segment ab, or to a
// itself when a and b coincide.
func distanceToSegment(p, a, b Vec2) float64 {
	ab := b.Sub(a)
	l2 := ab.LengthSq()
	if l2 < Epsilon*Epsilon {
		return p.Distance(a)
	}
	t := Clamp(p.Sub(a).Dot(ab)/l2, 0, 1)
	return p.Distance(a.Add(ab.Mul(t)))
}

// chordLength sums segment lengths of eval sampled at segs+1 parameters.
func chordLength[P interface{ Distance(P) float64 }](eval func(float64) P, segs int) float64 {
	if segs < 1 {
		segs = 1
	}
	var total float64
	prev := eval(0)
	for i := 1; i <= segs; i++ {
		p := eval(float64(i) / float64(segs))
		total += prev.Distance(p)
		prev = p
	}
	return total
}
