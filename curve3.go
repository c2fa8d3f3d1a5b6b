package geom

import "math"

// QuadBez3 is a quadratic Bézier curve in 3D space.
type QuadBez3 struct {
	P0, P1, P2 Vec3
}

// NewQuadBez3 creates a new 3D quadratic Bézier curve.
func NewQuadBez3(p0, p1, p2 Vec3) QuadBez3 {
	return QuadBez3{P0: p0, P1: p1, P2: p2}
}

// DeCasteljau returns the two first-round points and the curve point at t.
func (q QuadBez3) DeCasteljau(t float64) (q0, q1, p Vec3) {
	q0 = q.P0.Lerp(q.P1, t)
	q1 = q.P1.Lerp(q.P2, t)
	return q0, q1, q0.Lerp(q1, t)
}

// Eval evaluates the curve at t.
func (q QuadBez3) Eval(t float64) Vec3 {
	_, _, p := q.DeCasteljau(t)
	return p
}

// Start returns P0.
func (q QuadBez3) Start() Vec3 { return q.P0 }

// End returns P2.
func (q QuadBez3) End() Vec3 { return q.P2 }

// Tangent returns the first derivative at t.
func (q QuadBez3) Tangent(t float64) Vec3 {
	d0 := q.P1.Sub(q.P0).Mul(2)
	d1 := q.P2.Sub(q.P1).Mul(2)
	return d0.Lerp(d1, t)
}

// Split divides the curve at t; the halves share Eval(t).
func (q QuadBez3) Split(t float64) (QuadBez3, QuadBez3) {
	q0, q1, p := q.DeCasteljau(t)
	return QuadBez3{P0: q.P0, P1: q0, P2: p},
		QuadBez3{P0: p, P1: q1, P2: q.P2}
}

// Subdivide splits the curve at t=0.5.
func (q QuadBez3) Subdivide() (QuadBez3, QuadBez3) {
	return q.Split(0.5)
}

// Raise returns the equivalent cubic.
func (q QuadBez3) Raise() CubicBez3 {
	return CubicBez3{
		P0: q.P0,
		P1: q.P0.Add(q.P1.Sub(q.P0).Mul(2.0 / 3.0)),
		P2: q.P2.Add(q.P1.Sub(q.P2).Mul(2.0 / 3.0)),
		P3: q.P2,
	}
}

// ArcLength approximates the length with segs chords.
func (q QuadBez3) ArcLength(segs int) float64 {
	return chordLength(q.Eval, segs)
}

// Flatness returns the distance of P1 from the chord P0-P2.
func (q QuadBez3) Flatness() float64 {
	return distanceToSegment3(q.P1, q.P0, q.P2)
}

// Flatten writes at most len(out) polyline points and returns the count.
func (q QuadBez3) Flatten(tolerance float64, out []Vec3) int {
	return flattenInto(q, tolerance, out)
}

// AppendFlatten appends the polyline approximation to dst.
func (q QuadBez3) AppendFlatten(dst []Vec3, tolerance float64) []Vec3 {
	return appendFlatten(q, tolerance, dst)
}

// CubicBez3 is a cubic Bézier curve in 3D space, such as a camera path.
type CubicBez3 struct {
	P0, P1, P2, P3 Vec3
}

// NewCubicBez3 creates a new 3D cubic Bézier curve.
func NewCubicBez3(p0, p1, p2, p3 Vec3) CubicBez3 {
	return CubicBez3{P0: p0, P1: p1, P2: p2, P3: p3}
}

// DeCasteljau returns the full construction at t.
func (c CubicBez3) DeCasteljau(t float64) (first [3]Vec3, second [2]Vec3, p Vec3) {
	first[0] = c.P0.Lerp(c.P1, t)
	first[1] = c.P1.Lerp(c.P2, t)
	first[2] = c.P2.Lerp(c.P3, t)
	second[0] = first[0].Lerp(first[1], t)
	second[1] = first[1].Lerp(first[2], t)
	return first, second, second[0].Lerp(second[1], t)
}

// Eval evaluates the curve at t.
func (c CubicBez3) Eval(t float64) Vec3 {
	_, _, p := c.DeCasteljau(t)
	return p
}

// Start returns P0.
func (c CubicBez3) Start() Vec3 { return c.P0 }

// End returns P3.
func (c CubicBez3) End() Vec3 { return c.P3 }

// Tangent returns the first derivative at t, evaluated as the quadratic
// over 3× the control point differences.
func (c CubicBez3) Tangent(t float64) Vec3 {
	d := QuadBez3{
		P0: c.P1.Sub(c.P0).Mul(3),
		P1: c.P2.Sub(c.P1).Mul(3),
		P2: c.P3.Sub(c.P2).Mul(3),
	}
	return d.Eval(t)
}

// Split divides the curve at t; the halves share Eval(t).
func (c CubicBez3) Split(t float64) (CubicBez3, CubicBez3) {
	first, second, p := c.DeCasteljau(t)
	return CubicBez3{P0: c.P0, P1: first[0], P2: second[0], P3: p},
		CubicBez3{P0: p, P1: second[1], P2: first[2], P3: c.P3}
}

// Subdivide splits the curve at t=0.5.
func (c CubicBez3) Subdivide() (CubicBez3, CubicBez3) {
	return c.Split(0.5)
}

// ArcLength approximates the length with segs chords.
func (c CubicBez3) ArcLength(segs int) float64 {
	return chordLength(c.Eval, segs)
}

// Flatness returns the larger distance of P1 and P2 from the chord P0-P3.
func (c CubicBez3) Flatness() float64 {
	return math.Max(distanceToSegment3(c.P1, c.P0, c.P3), distanceToSegment3(c.P2, c.P0, c.P3))
}

// Flatten writes at most len(out) polyline points and returns the count.
func (c CubicBez3) Flatten(tolerance float64, out []Vec3) int {
	return flattenInto(c, tolerance, out)
}

// AppendFlatten appends the polyline approximation to dst.
func (c CubicBez3) AppendFlatten(dst []Vec3, tolerance float64) []Vec3 {
	return appendFlatten(c, tolerance, dst)
}

func distanceToSegment3(p, a, b Vec3) float64 {
	ab := b.Sub(a)
	l2 := ab.LengthSq()
	if l2 < Epsilon*Epsilon {
		return p.Distance(a)
	}
	t := Clamp(p.Sub(a).Dot(ab)/l2, 0, 1)
	return p.Distance(a.Add(ab.Mul(t)))
}
