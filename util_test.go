package geom

import (
	"math/rand/v2"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

const testEpsilon = 1e-9

// approx compares floats (and structs or arrays of floats) within
// testEpsilon.
var approx = cmpopts.EquateApprox(0, testEpsilon)

// cmpApprox compares floats within an absolute margin.
func cmpApprox(margin float64) cmp.Option {
	return cmpopts.EquateApprox(0, margin)
}

func diff(t *testing.T, want, got any, opts ...cmp.Option) {
	t.Helper()
	if d := cmp.Diff(want, got, opts...); d != "" {
		t.Errorf("mismatch (-want +got):\n%s", d)
	}
}

// newRand returns a deterministic source so failures are reproducible.
func newRand() *rand.Rand {
	return rand.New(rand.NewPCG(0x9e3779b97f4a7c15, 42))
}

func randVec2(r *rand.Rand) Vec2 {
	return V2(r.Float64()*200-100, r.Float64()*200-100)
}

func randVec3(r *rand.Rand) Vec3 {
	return V3(r.Float64()*2-1, r.Float64()*2-1, r.Float64()*2-1)
}

func randUnitQuat(r *rand.Rand) Quat {
	for {
		q := Quat{W: r.Float64()*2 - 1, X: r.Float64()*2 - 1, Y: r.Float64()*2 - 1, Z: r.Float64()*2 - 1}
		if q.Length() > 0.1 {
			return q.Normalize()
		}
	}
}

// randAffine returns a well-conditioned translate * rotate * scale matrix.
func randAffine(r *rand.Rand) Mat4 {
	s := V3(0.5+r.Float64(), 0.5+r.Float64(), 0.5+r.Float64())
	return Mat4Translate(randVec3(r).Mul(10)).
		Mul(randUnitQuat(r).Mat4()).
		Mul(Mat4Scale(s))
}
