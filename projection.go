package geom

import "math"

// View and projection matrices use a right-handed view space where the
// camera looks down -Z, and a clip space whose normalized depth runs from 0
// at the near plane to 1 at the far plane.

// LookAt returns the view matrix of a camera at eye looking at target.
//
// The camera basis is forward f = normalize(target - eye),
// right s = normalize(f × up) and true up u = s × f. The view matrix is the
// inverse of the camera's world transform: the basis as rows (with -f so the
// camera looks down -Z) combined with the translation -eye expressed in
// camera space.
//
// up must not be parallel to target - eye. In that case f × up is zero, the
// guarded Normalize yields a zero right vector and the matrix is singular;
// choosing a valid up is the caller's responsibility.
func LookAt(eye, target, up Vec3) Mat4 {
	f := target.Sub(eye).Normalize()
	s := f.Cross(up).Normalize()
	u := s.Cross(f)
	return NewMat4(
		s.X, s.Y, s.Z, -s.Dot(eye),
		u.X, u.Y, u.Z, -u.Dot(eye),
		-f.X, -f.Y, -f.Z, f.Dot(eye),
		0, 0, 0, 1,
	)
}

// Perspective returns a symmetric perspective projection from a vertical
// field of view (radians) and a width/height aspect ratio.
//
// It is exactly PerspectiveFromPlanes(-hw, hw, -hh, hh, near, far) with
// hh = near*tan(fovY/2) and hw = hh*aspect.
func Perspective(fovY, aspect, near, far float64) Mat4 {
	hh := near * math.Tan(fovY/2)
	hw := hh * aspect
	return PerspectiveFromPlanes(-hw, hw, -hh, hh, near, far)
}

// PerspectiveFromPlanes returns a general (possibly asymmetric) perspective
// projection. left, right, bottom and top are the extents of the frustum at
// the near plane. A view-space point on z = -near maps to depth 0, one on
// z = -far to depth 1, and the clip w is -z.
func PerspectiveFromPlanes(left, right, bottom, top, near, far float64) Mat4 {
	rl := right - left
	tb := top - bottom
	fn := far - near
	return NewMat4(
		2*near/rl, 0, (right+left)/rl, 0,
		0, 2*near/tb, (top+bottom)/tb, 0,
		0, 0, -far/fn, -far*near/fn,
		0, 0, -1, 0,
	)
}

// Orthographic returns a parallel projection of the box
// [left, right] × [bottom, top] × [-near, -far] onto clip space.
// w is always 1; near maps to depth 0 and far to depth 1.
func Orthographic(left, right, bottom, top, near, far float64) Mat4 {
	rl := right - left
	tb := top - bottom
	fn := far - near
	return NewMat4(
		2/rl, 0, 0, -(right+left)/rl,
		0, 2/tb, 0, -(top+bottom)/tb,
		0, 0, -1/fn, -near/fn,
		0, 0, 0, 1,
	)
}

// PerspectiveDivide converts a clip-space coordinate to normalized device
// coordinates by dividing x, y and z by w. For orthographic output (w = 1)
// it returns x, y, z unchanged. w = 0 (a point on the camera plane) yields
// infinities.
func PerspectiveDivide(clip Vec4) Vec3 {
	if clip.W == 1 {
		return clip.XYZ()
	}
	return Vec3{X: clip.X / clip.W, Y: clip.Y / clip.W, Z: clip.Z / clip.W}
}

// Viewport maps normalized device coordinates to window pixels with the
// origin at the top-left and y increasing downwards. Depth passes through.
func Viewport(ndc Vec3, width, height float64) Vec3 {
	return Vec3{
		X: (ndc.X + 1) * 0.5 * width,
		Y: (1 - ndc.Y) * 0.5 * height,
		Z: ndc.Z,
	}
}
