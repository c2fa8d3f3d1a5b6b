package geom

import "math"

// solveQuadratic returns the real roots of a*x^2 + b*x + c = 0 in ascending
// order. A vanishing a degrades to the linear equation; 0 = 0 yields the
// single root 0.
func solveQuadratic(a, b, c float64) (roots [2]float64, n int) {
	sc0, sc1 := c/a, b/a
	if !isFinite(sc0) || !isFinite(sc1) {
		root := -c / b
		switch {
		case isFinite(root):
			roots[0] = root
			return roots, 1
		case b == 0 && c == 0:
			return roots, 1
		}
		return roots, 0
	}

	disc := sc1*sc1 - 4*sc0
	var r1 float64
	switch {
	case !isFinite(disc):
		r1 = -sc1
	case disc < 0:
		return roots, 0
	case disc == 0:
		roots[0] = -0.5 * sc1
		return roots, 1
	default:
		// Citardauq form avoids cancellation.
		r1 = -0.5 * (sc1 + math.Copysign(math.Sqrt(disc), sc1))
	}
	r2 := sc0 / r1
	if !isFinite(r2) {
		roots[0] = r1
		return roots, 1
	}
	roots[0], roots[1] = min(r1, r2), max(r1, r2)
	return roots, 2
}

// appendUnitRoots appends the roots that lie in (0, 1) to dst.
func appendUnitRoots(dst []float64, roots [2]float64, n int) []float64 {
	for _, r := range roots[:n] {
		if r > 0 && r < 1 {
			dst = append(dst, r)
		}
	}
	return dst
}

func isFinite(x float64) bool {
	return !math.IsInf(x, 0) && !math.IsNaN(x)
}

// Extrema returns the parameters in (0, 1) where the curve's x or y
// derivative vanishes, in ascending order per axis (x roots first).
func (q QuadBez) Extrema() []float64 {
	var ts []float64
	// B'(t)/2 = (P1-P0) + t*(P0-2P1+P2)
	d0, d1 := q.P1.Sub(q.P0), q.P0.Sub(q.P1.Mul(2)).Add(q.P2)
	if d1.X != 0 {
		if t := -d0.X / d1.X; t > 0 && t < 1 {
			ts = append(ts, t)
		}
	}
	if d1.Y != 0 {
		if t := -d0.Y / d1.Y; t > 0 && t < 1 {
			ts = append(ts, t)
		}
	}
	return ts
}

// Bounds returns the tight bounding box of the curve over [0, 1].
func (q QuadBez) Bounds() Rect {
	r := NewRect(q.P0, q.P2)
	for _, t := range q.Extrema() {
		p := q.Eval(t)
		r = r.Union(Rect{Min: p, Max: p})
	}
	return r
}

// Extrema returns the parameters in (0, 1) where the curve's x or y
// derivative vanishes, x roots first.
func (c CubicBez) Extrema() []float64 {
	// B'(t)/3 = a*t^2 + b*t + k with
	// a = -P0+3P1-3P2+P3, b = 2(P0-2P1+P2), k = P1-P0.
	a := c.P3.Sub(c.P0).Add(c.P1.Sub(c.P2).Mul(3))
	b := c.P0.Sub(c.P1.Mul(2)).Add(c.P2).Mul(2)
	k := c.P1.Sub(c.P0)

	rx, nx := solveQuadratic(a.X, b.X, k.X)
	ry, ny := solveQuadratic(a.Y, b.Y, k.Y)
	return appendUnitRoots(appendUnitRoots(nil, rx, nx), ry, ny)
}

// Bounds returns the tight bounding box of the curve over [0, 1].
func (c CubicBez) Bounds() Rect {
	r := NewRect(c.P0, c.P3)
	for _, t := range c.Extrema() {
		p := c.Eval(t)
		r = r.Union(Rect{Min: p, Max: p})
	}
	return r
}
