package geom

import (
	"math"
	"testing"
)

func TestPerspective_Depth(t *testing.T) {
	const near, far = 0.5, 50.0
	p := Perspective(Radians(60), 16.0/9.0, near, far)

	tests := []struct {
		name  string
		z     float64
		depth float64
	}{
		{"near plane", -near, 0},
		{"far plane", -far, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clip := p.MulVec(V4(0, 0, tt.z, 1))
			if math.Abs(clip.W-(-tt.z)) > testEpsilon {
				t.Errorf("clip.W = %v, want %v", clip.W, -tt.z)
			}
			ndc := PerspectiveDivide(clip)
			if math.Abs(ndc.Z-tt.depth) > testEpsilon {
				t.Errorf("depth = %v, want %v", ndc.Z, tt.depth)
			}
		})
	}

	// Depth grows monotonically between the planes.
	prev := -1.0
	for z := -near; z >= -far; z -= 0.5 {
		d := PerspectiveDivide(p.MulVec(V4(0, 0, z, 1))).Z
		if d <= prev {
			t.Fatalf("depth at z=%v is %v, not greater than %v", z, d, prev)
		}
		prev = d
	}
}

func TestPerspective_FrustumEdges(t *testing.T) {
	const fovY, aspect, near, far = math.Pi / 2, 2.0, 1.0, 10.0
	p := Perspective(fovY, aspect, near, far)
	hh := near * math.Tan(fovY/2)
	hw := hh * aspect

	ndc := PerspectiveDivide(p.MulVec(V4(hw, hh, -near, 1)))
	diff(t, V3(1, 1, 0), ndc, approx)

	// Scaled along the view ray the point stays on the frustum edge.
	ndc = PerspectiveDivide(p.MulVec(V4(-hw*5, -hh*5, -near*5, 1)))
	if math.Abs(ndc.X+1) > testEpsilon || math.Abs(ndc.Y+1) > testEpsilon {
		t.Errorf("edge point maps to %v, want x=-1 y=-1", ndc)
	}
}

func TestPerspective_EqualsSymmetricPlanes(t *testing.T) {
	const fovY, aspect, near, far = 1.0, 1.25, 0.1, 100.0
	hh := near * math.Tan(fovY/2)
	hw := hh * aspect
	diff(t, PerspectiveFromPlanes(-hw, hw, -hh, hh, near, far), Perspective(fovY, aspect, near, far))
}

func TestPerspectiveFromPlanes_OffCenter(t *testing.T) {
	p := PerspectiveFromPlanes(0, 2, -1, 3, 1, 10)
	diff(t, V3(-1, -1, 0), PerspectiveDivide(p.MulVec(V4(0, -1, -1, 1))), approx)
	diff(t, V3(1, 1, 0), PerspectiveDivide(p.MulVec(V4(2, 3, -1, 1))), approx)
}

func TestOrthographic(t *testing.T) {
	o := Orthographic(-4, 4, -2, 2, 1, 11)

	tests := []struct {
		name string
		in   Vec3
		want Vec3
	}{
		{"near corner", V3(-4, -2, -1), V3(-1, -1, 0)},
		{"far corner", V3(4, 2, -11), V3(1, 1, 1)},
		{"center", V3(0, 0, -6), V3(0, 0, 0.5)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clip := o.MulVec(tt.in.Vec4(1))
			if clip.W != 1 {
				t.Errorf("clip.W = %v, want 1", clip.W)
			}
			diff(t, tt.want, PerspectiveDivide(clip), approx)
		})
	}
}

func TestPerspectiveDivide(t *testing.T) {
	diff(t, V3(1, 2, 3), PerspectiveDivide(V4(1, 2, 3, 1)))
	diff(t, V3(0.5, 1, 1.5), PerspectiveDivide(V4(1, 2, 3, 2)))
	diff(t, V3(-1, -2, -3), PerspectiveDivide(V4(1, 2, 3, -1)))
	if got := PerspectiveDivide(V4(1, 0, 0, 0)); !math.IsInf(got.X, 1) {
		t.Errorf("divide by w=0 = %v, want +Inf x", got)
	}
}

func TestLookAt(t *testing.T) {
	eye, target := V3(3, 4, 5), V3(1, 1, 1)
	v := LookAt(eye, target, UnitY)

	diff(t, V3(0, 0, 0), v.MulPoint(eye), approx)
	// The target lies straight ahead on -Z.
	dist := target.Distance(eye)
	diff(t, V3(0, 0, -dist), v.MulPoint(target), approx)

	// The rotation part is orthonormal with determinant 1.
	r := v.Mat3()
	diff(t, Identity3(), r.Mul(r.Transpose()), approx)
	if det := r.Determinant(); math.Abs(det-1) > testEpsilon {
		t.Errorf("det = %v, want 1", det)
	}

	// World up stays in the upper half of the view.
	if up := v.MulDir(UnitY); up.Y <= 0 {
		t.Errorf("world up maps to %v, want positive y", up)
	}
}

func TestLookAt_AxisAligned(t *testing.T) {
	v := LookAt(V3(0, 0, 5), V3(0, 0, 0), UnitY)
	diff(t, Mat4Translate(V3(0, 0, -5)), v, approx)

	// Looking down +X from the origin: world +X becomes view -Z.
	v = LookAt(V3(0, 0, 0), V3(1, 0, 0), UnitY)
	diff(t, V3(0, 0, -1), v.MulDir(UnitX), approx)
	diff(t, V3(1, 0, 0), v.MulDir(UnitZ), approx)
}

func TestLookAt_IsInverseOfCameraTransform(t *testing.T) {
	eye := V3(-2, 7, 3)
	v := LookAt(eye, V3(0.5, 0, -1), V3(0, 1, 0))
	world, err := v.Inverse()
	if err != nil {
		t.Fatal(err)
	}
	diff(t, eye, world.Translation(), approx)
}

func TestViewport(t *testing.T) {
	diff(t, V3(0, 0, 0.25), Viewport(V3(-1, 1, 0.25), 800, 600))
	diff(t, V3(800, 600, 1), Viewport(V3(1, -1, 1), 800, 600))
	diff(t, V3(400, 300, 0), Viewport(V3(0, 0, 0), 800, 600))
}

func TestModelViewProjection(t *testing.T) {
	model := Mat4Translate(V3(0, 0, -2)).Mul(Mat4RotateY(math.Pi / 4))
	view := LookAt(V3(0, 0, 3), V3(0, 0, 0), UnitY)
	proj := Perspective(Radians(45), 1, 1, 100)
	mvp := proj.Mul(view).Mul(model)

	// The model origin sits on the view axis, so it projects to the center.
	ndc := PerspectiveDivide(mvp.MulVec(V4(0, 0, 0, 1)))
	if math.Abs(ndc.X) > testEpsilon || math.Abs(ndc.Y) > testEpsilon {
		t.Errorf("origin projects to %v, want center", ndc)
	}
	if ndc.Z <= 0 || ndc.Z >= 1 {
		t.Errorf("depth = %v, want inside (0, 1)", ndc.Z)
	}
}
