package geom

import (
	"math"
	"testing"
)

// scenarioCubic is the arch used by the split and flattening checks.
var scenarioCubic = NewCubicBez(V2(0, 0), V2(1, 3), V2(3, 3), V2(4, 0))

func TestQuadBez_DeCasteljau(t *testing.T) {
	q := NewQuadBez(V2(0, 0), V2(2, 4), V2(4, 0))
	q0, q1, p := q.DeCasteljau(0.5)
	diff(t, V2(1, 2), q0)
	diff(t, V2(3, 2), q1)
	diff(t, V2(2, 2), p)
	diff(t, p, q.Eval(0.5))
}

func TestQuadBez_Eval(t *testing.T) {
	q := NewQuadBez(V2(0, 0), V2(2, 4), V2(4, 0))
	tests := []struct {
		name string
		t    float64
		want Vec2
	}{
		{"start", 0, V2(0, 0)},
		{"end", 1, V2(4, 0)},
		{"quarter", 0.25, V2(1, 1.5)},
		{"extrapolate", 2, V2(8, -16)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			diff(t, tt.want, q.Eval(tt.t), approx)
		})
	}
}

func TestQuadBez_Tangent(t *testing.T) {
	q := NewQuadBez(V2(0, 0), V2(2, 4), V2(4, 0))
	diff(t, V2(4, 8), q.Tangent(0))
	diff(t, V2(4, 0), q.Tangent(0.5))
	diff(t, V2(4, -8), q.Tangent(1))
	diff(t, Line{P0: V2(4, 8), P1: V2(4, -8)}, q.Deriv())
}

func TestQuadBez_Raise(t *testing.T) {
	q := NewQuadBez(V2(0, 0), V2(3, 6), V2(6, 0))
	c := q.Raise()
	diff(t, V2(2, 4), c.P1, approx)
	diff(t, V2(4, 4), c.P2, approx)
	for i := range 11 {
		tt := float64(i) / 10
		diff(t, q.Eval(tt), c.Eval(tt), approx)
		diff(t, q.Tangent(tt), c.Tangent(tt), approx)
	}
}

func TestCubicBez_Split(t *testing.T) {
	left, right := scenarioCubic.Split(0.5)
	diff(t, NewCubicBez(V2(0, 0), V2(0.5, 1.5), V2(1.25, 2.25), V2(2, 2.25)), left)
	diff(t, NewCubicBez(V2(2, 2.25), V2(2.75, 2.25), V2(3.5, 1.5), V2(4, 0)), right)
}

func TestSplit_SharesPoint(t *testing.T) {
	r := newRand()
	randPt := func() Vec2 { return V2(r.Float64()*100, r.Float64()*100) }
	for range 100 {
		c := NewCubicBez(randPt(), randPt(), randPt(), randPt())
		q := NewQuadBez(randPt(), randPt(), randPt())
		tt := r.Float64()

		cl, cr := c.Split(tt)
		diff(t, c.Eval(tt), cl.Eval(1), approx)
		diff(t, c.Eval(tt), cr.Eval(0), approx)
		// Each half traces its share of the original.
		diff(t, c.Eval(tt/2), cl.Eval(0.5), cmpApprox(1e-9))
		diff(t, c.Eval(tt+(1-tt)/2), cr.Eval(0.5), cmpApprox(1e-9))

		ql, qr := q.Split(tt)
		diff(t, q.Eval(tt), ql.Eval(1), approx)
		diff(t, q.Eval(tt), qr.Eval(0), approx)
	}
}

func TestCubicBez_Tangent(t *testing.T) {
	c := scenarioCubic
	diff(t, V2(3, 9), c.Tangent(0))
	diff(t, V2(3, -9), c.Tangent(1))
	diff(t, V2(4.5, 0), c.Tangent(0.5), approx)

	// Compare against a central difference.
	const h = 1e-6
	for _, tt := range []float64{0.1, 0.3, 0.7} {
		fd := c.Eval(tt + h).Sub(c.Eval(tt - h)).Div(2 * h)
		diff(t, fd, c.Tangent(tt), cmpApprox(1e-5))
	}
	diff(t, V2(0, 1), c.Normal(0.5), approx)
}

func TestArcLength(t *testing.T) {
	line := NewCubicBez(V2(0, 0), V2(1, 1), V2(2, 2), V2(3, 3))
	if got := line.ArcLength(4); math.Abs(got-3*math.Sqrt2) > testEpsilon {
		t.Errorf("straight cubic ArcLength = %v, want %v", got, 3*math.Sqrt2)
	}
	if got := scenarioCubic.ArcLength(0); got != 4 {
		t.Errorf("ArcLength(0) = %v, want chord 4", got)
	}

	// Chord sums grow toward the true length as segments are added.
	prev := 0.0
	for _, segs := range []int{1, 2, 4, 8, 16, 64, 256} {
		got := scenarioCubic.ArcLength(segs)
		if got < prev {
			t.Fatalf("ArcLength(%d) = %v, less than coarser %v", segs, got, prev)
		}
		prev = got
	}
	if d := scenarioCubic.ArcLength(4096) - prev; d > 1e-4 {
		t.Errorf("ArcLength not converged: 256 vs 4096 differ by %v", d)
	}
}

func TestFlatness(t *testing.T) {
	tests := []struct {
		name string
		c    CubicBez
		want float64
	}{
		{"straight", NewCubicBez(V2(0, 0), V2(1, 0), V2(2, 0), V2(3, 0)), 0},
		{"arch", scenarioCubic, 3},
		{"closed", NewCubicBez(V2(0, 0), V2(3, 4), V2(0, 0), V2(0, 0)), 5},
		{"overshoot", NewCubicBez(V2(0, 0), V2(10, 0), V2(-10, 0), V2(1, 0)), 10},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.c.Flatness(); math.Abs(got-tt.want) > testEpsilon {
				t.Errorf("Flatness() = %v, want %v", got, tt.want)
			}
		})
	}
	if !NewQuadBez(V2(0, 0), V2(1, 0.05), V2(2, 0)).IsFlat(0.1) {
		t.Error("nearly straight quad should be flat at 0.1")
	}
	if NewQuadBez(V2(0, 0), V2(1, 1), V2(2, 0)).IsFlat(0.1) {
		t.Error("bent quad should not be flat at 0.1")
	}
}

func TestBoundingBoxAndReverse(t *testing.T) {
	bb := scenarioCubic.BoundingBox()
	diff(t, Rect{Min: V2(0, 0), Max: V2(4, 3)}, bb)
	for i := range 11 {
		if p := scenarioCubic.Eval(float64(i) / 10); !bb.Contains(p) {
			t.Errorf("bounding box %v does not contain %v", bb, p)
		}
	}
	rev := scenarioCubic.Reversed()
	diff(t, scenarioCubic.Eval(0.3), rev.Eval(0.7), approx)

	q := NewQuadBez(V2(0, 0), V2(2, 4), V2(4, 0))
	diff(t, q.Eval(0.2), q.Reversed().Eval(0.8), approx)
	if w, h := bb.Width(), bb.Height(); w != 4 || h != 3 {
		t.Errorf("size = %vx%v, want 4x3", w, h)
	}
}

func TestCubicBez3(t *testing.T) {
	c := NewCubicBez3(V3(0, 0, 0), V3(1, 3, 1), V3(3, 3, 2), V3(4, 0, 3))
	left, right := c.Split(0.5)
	diff(t, c.Eval(0.5), left.End(), approx)
	diff(t, c.Eval(0.5), right.Start(), approx)
	diff(t, V3(2, 2.25, 1.5), c.Eval(0.5), approx)

	// Lying in the z=0 plane it matches the 2D curve.
	flat := NewCubicBez3(V3(0, 0, 0), V3(1, 3, 0), V3(3, 3, 0), V3(4, 0, 0))
	if got, want := flat.Flatness(), scenarioCubic.Flatness(); math.Abs(got-want) > testEpsilon {
		t.Errorf("Flatness() = %v, want %v", got, want)
	}
	if got, want := flat.ArcLength(64), scenarioCubic.ArcLength(64); math.Abs(got-want) > testEpsilon {
		t.Errorf("ArcLength() = %v, want %v", got, want)
	}
	diff(t, scenarioCubic.Tangent(0.3).Vec3(0), flat.Tangent(0.3), approx)
}

func TestQuadBez3_Raise(t *testing.T) {
	q := NewQuadBez3(V3(0, 0, 0), V3(1, 2, 3), V3(4, 0, -1))
	c := q.Raise()
	for i := range 5 {
		tt := float64(i) / 4
		diff(t, q.Eval(tt), c.Eval(tt), approx)
	}
	_, _, p := q.DeCasteljau(0.5)
	diff(t, p, q.Eval(0.5))
	diff(t, V3(2, 4, 6), q.Tangent(0))
}
