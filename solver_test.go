package geom

import (
	"math"
	"testing"
)

func TestSolveQuadratic(t *testing.T) {
	tests := []struct {
		name    string
		a, b, c float64
		want    []float64
	}{
		{"two roots", 1, -3, 2, []float64{1, 2}},
		{"double root", 1, -2, 1, []float64{1}},
		{"no real roots", 1, 0, 1, nil},
		{"linear", 0, 2, -1, []float64{0.5}},
		{"degenerate", 0, 0, 0, []float64{0}},
		{"inconsistent", 0, 0, 1, nil},
		{"cancellation", 1, -1e8, 1, []float64{1e-8, 1e8}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			roots, n := solveQuadratic(tt.a, tt.b, tt.c)
			if n != len(tt.want) {
				t.Fatalf("n = %d (%v), want %v", n, roots[:n], tt.want)
			}
			for i, w := range tt.want {
				if math.Abs(roots[i]-w) > 1e-12*math.Max(1, math.Abs(w)) {
					t.Errorf("root %d = %v, want %v", i, roots[i], w)
				}
			}
		})
	}
}

func TestQuadBez_Bounds(t *testing.T) {
	q := NewQuadBez(V2(0, 0), V2(50, 100), V2(100, 0))
	ts := q.Extrema()
	if len(ts) != 1 || ts[0] != 0.5 {
		t.Fatalf("Extrema = %v, want [0.5]", ts)
	}
	want := Rect{Min: V2(0, 0), Max: V2(100, 50)}
	if got := q.Bounds(); got != want {
		t.Errorf("Bounds = %+v, want %+v", got, want)
	}
	// The tight box is inside the control-polygon box.
	if !q.BoundingBox().Contains(q.Bounds().Max) {
		t.Error("tight bounds escape the control polygon box")
	}
}

func TestCubicBez_Bounds(t *testing.T) {
	c := NewCubicBez(V2(0, 0), V2(0, 100), V2(100, 100), V2(100, 0))
	got := c.Bounds()
	want := Rect{Min: V2(0, 0), Max: V2(100, 75)}
	if d := math.Abs(got.Max.Y - want.Max.Y); d > 1e-12 || got.Min != want.Min || got.Max.X != want.Max.X {
		t.Errorf("Bounds = %+v, want %+v", got, want)
	}

	// Every sampled point lies inside the tight box, and the box touches
	// the sampled extremes.
	r := newRand()
	for range 50 {
		c := NewCubicBez(randVec2(r), randVec2(r), randVec2(r), randVec2(r))
		b := c.Bounds()
		grown := Rect{Min: b.Min.Sub(V2(1e-9, 1e-9)), Max: b.Max.Add(V2(1e-9, 1e-9))}
		var samples Rect
		for i := range 1001 {
			p := c.Eval(float64(i) / 1000)
			if !grown.Contains(p) {
				t.Fatalf("%+v: point %v outside bounds %+v", c, p, b)
			}
			if i == 0 {
				samples = Rect{Min: p, Max: p}
			} else {
				samples = samples.Union(Rect{Min: p, Max: p})
			}
		}
		if samples.Width() < b.Width()-1e-3 || samples.Height() < b.Height()-1e-3 {
			t.Errorf("%+v: bounds %+v looser than samples %+v", c, b, samples)
		}
	}
}
