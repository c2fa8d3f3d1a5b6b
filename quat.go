package geom

import "math"

// Quat is a quaternion W + Xi + Yj + Zk.
//
// A quaternion used as a rotation must have unit length. q and q.Negate()
// describe the same rotation (double cover); use SameRotation to compare
// rotations rather than ==.
type Quat struct {
	W, X, Y, Z float64
}

// slerpLinearThreshold is the cosine above which Slerp falls back to Nlerp
// because sin(theta) is too small to divide by.
const slerpLinearThreshold = 0.9995

// QuatIdentity returns the identity rotation (1, 0, 0, 0).
func QuatIdentity() Quat {
	return Quat{W: 1}
}

// QuatFromAxisAngle returns the rotation of angle radians around axis.
// The axis is normalized first; a zero axis yields the identity.
func QuatFromAxisAngle(axis Vec3, angle float64) Quat {
	n := axis.Normalize()
	if n.IsZero() {
		return QuatIdentity()
	}
	sin, cos := math.Sincos(angle / 2)
	return Quat{W: cos, X: n.X * sin, Y: n.Y * sin, Z: n.Z * sin}
}

// QuatFromEuler composes Ry(yaw) * Rx(pitch) * Rz(roll): roll is applied
// first, then pitch, then yaw.
func QuatFromEuler(yaw, pitch, roll float64) Quat {
	sy, cy := math.Sincos(yaw / 2)
	sp, cp := math.Sincos(pitch / 2)
	sr, cr := math.Sincos(roll / 2)
	qy := Quat{W: cy, Y: sy}
	qx := Quat{W: cp, X: sp}
	qz := Quat{W: cr, Z: sr}
	return qy.Mul(qx).Mul(qz)
}

// QuatFromMat3 extracts the rotation from an orthonormal matrix using
// Shepperd's method. The sign of the result is arbitrary: q or -q may be
// returned for the same rotation.
func QuatFromMat3(m Mat3) Quat {
	m00, m01, m02 := m.At(0, 0), m.At(0, 1), m.At(0, 2)
	m10, m11, m12 := m.At(1, 0), m.At(1, 1), m.At(1, 2)
	m20, m21, m22 := m.At(2, 0), m.At(2, 1), m.At(2, 2)

	var q Quat
	switch trace := m00 + m11 + m22; {
	case trace > 0:
		s := math.Sqrt(trace+1) * 2
		q = Quat{W: 0.25 * s, X: (m21 - m12) / s, Y: (m02 - m20) / s, Z: (m10 - m01) / s}
	case m00 > m11 && m00 > m22:
		s := math.Sqrt(1+m00-m11-m22) * 2
		q = Quat{W: (m21 - m12) / s, X: 0.25 * s, Y: (m01 + m10) / s, Z: (m02 + m20) / s}
	case m11 > m22:
		s := math.Sqrt(1+m11-m00-m22) * 2
		q = Quat{W: (m02 - m20) / s, X: (m01 + m10) / s, Y: 0.25 * s, Z: (m12 + m21) / s}
	default:
		s := math.Sqrt(1+m22-m00-m11) * 2
		q = Quat{W: (m10 - m01) / s, X: (m02 + m20) / s, Y: (m12 + m21) / s, Z: 0.25 * s}
	}
	return q.Normalize()
}

// QuatFromMat4 extracts the rotation from the upper-left block of m.
// Translation is ignored; scale must be uniform 1 for a meaningful result.
func QuatFromMat4(m Mat4) Quat {
	return QuatFromMat3(m.Mat3())
}

// Vec returns the vector part (X, Y, Z).
func (q Quat) Vec() Vec3 {
	return Vec3{X: q.X, Y: q.Y, Z: q.Z}
}

// Dot returns the 4D dot product of q and p.
func (q Quat) Dot(p Quat) float64 {
	return q.W*p.W + q.X*p.X + q.Y*p.Y + q.Z*p.Z
}

// Length returns the norm of q.
func (q Quat) Length() float64 {
	return math.Sqrt(q.Dot(q))
}

// Normalize returns q scaled to unit length. A zero quaternion has no
// direction and normalizes to the identity.
func (q Quat) Normalize() Quat {
	l := q.Length()
	if l < Epsilon {
		return QuatIdentity()
	}
	return Quat{W: q.W / l, X: q.X / l, Y: q.Y / l, Z: q.Z / l}
}

// Conjugate negates the vector part.
func (q Quat) Conjugate() Quat {
	return Quat{W: q.W, X: -q.X, Y: -q.Y, Z: -q.Z}
}

// Inverse returns the multiplicative inverse conj(q) / |q|².
// For unit quaternions this equals Conjugate. The zero quaternion has no
// inverse; the identity is returned.
func (q Quat) Inverse() Quat {
	n := q.Dot(q)
	if n < Epsilon*Epsilon {
		return QuatIdentity()
	}
	return Quat{W: q.W / n, X: -q.X / n, Y: -q.Y / n, Z: -q.Z / n}
}

// Negate returns -q, which represents the same rotation as q.
func (q Quat) Negate() Quat {
	return Quat{W: -q.W, X: -q.X, Y: -q.Y, Z: -q.Z}
}

// Mul returns the Hamilton product q * p. As a rotation it applies p first,
// then q, matching Mat4.Mul.
func (q Quat) Mul(p Quat) Quat {
	return Quat{
		W: q.W*p.W - q.X*p.X - q.Y*p.Y - q.Z*p.Z,
		X: q.W*p.X + q.X*p.W + q.Y*p.Z - q.Z*p.Y,
		Y: q.W*p.Y - q.X*p.Z + q.Y*p.W + q.Z*p.X,
		Z: q.W*p.Z + q.X*p.Y - q.Y*p.X + q.Z*p.W,
	}
}

// Rotate rotates v by the unit quaternion q. The result is identical for
// q and q.Negate().
func (q Quat) Rotate(v Vec3) Vec3 {
	u := q.Vec()
	t := u.Cross(v).Mul(2)
	return v.Add(t.Mul(q.W)).Add(u.Cross(t))
}

// AxisAngle returns the rotation axis and angle in [0, 2π). For a rotation
// too small to define an axis, it returns UnitX and the (near-zero) angle.
func (q Quat) AxisAngle() (axis Vec3, angle float64) {
	q = q.Normalize()
	v := q.Vec()
	s := v.Length()
	angle = 2 * math.Atan2(s, q.W)
	if angle >= 2*math.Pi {
		angle -= 2 * math.Pi
	}
	if s < Epsilon {
		return UnitX, angle
	}
	return v.Div(s), angle
}

// Euler decomposes q into the yaw, pitch and roll accepted by
// QuatFromEuler. Pitch is in [-π/2, π/2].
//
// Near pitch = ±π/2 yaw and roll rotate around the same axis (gimbal lock);
// there roll is reported as 0 and the combined rotation is folded into yaw.
func (q Quat) Euler() (yaw, pitch, roll float64) {
	m := q.Mat3()
	sp := -m.At(1, 2)
	if math.Abs(sp) >= 1-1e-9 {
		pitch = math.Copysign(math.Pi/2, sp)
		yaw = math.Atan2(-m.At(2, 0), m.At(0, 0))
		return yaw, pitch, 0
	}
	pitch = math.Asin(sp)
	yaw = math.Atan2(m.At(0, 2), m.At(2, 2))
	roll = math.Atan2(m.At(1, 0), m.At(1, 1))
	return yaw, pitch, roll
}

// Mat3 returns the rotation matrix of q. q is normalized first.
func (q Quat) Mat3() Mat3 {
	q = q.Normalize()
	w, x, y, z := q.W, q.X, q.Y, q.Z
	xx, yy, zz := x*x, y*y, z*z
	xy, xz, yz := x*y, x*z, y*z
	wx, wy, wz := w*x, w*y, w*z
	return NewMat3(
		1-2*(yy+zz), 2*(xy-wz), 2*(xz+wy),
		2*(xy+wz), 1-2*(xx+zz), 2*(yz-wx),
		2*(xz-wy), 2*(yz+wx), 1-2*(xx+yy),
	)
}

// Mat4 returns the rotation matrix of q embedded in a 4x4 transform.
func (q Quat) Mat4() Mat4 {
	return Mat4FromMat3(q.Mat3())
}

// Approx reports whether q and p are component-wise within epsilon.
// It does not account for double cover; see SameRotation.
func (q Quat) Approx(p Quat, epsilon float64) bool {
	return math.Abs(q.W-p.W) < epsilon &&
		math.Abs(q.X-p.X) < epsilon &&
		math.Abs(q.Y-p.Y) < epsilon &&
		math.Abs(q.Z-p.Z) < epsilon
}

// SameRotation reports whether q and p describe the same rotation,
// treating q and -q as equal.
func (q Quat) SameRotation(p Quat, epsilon float64) bool {
	return q.Approx(p, epsilon) || q.Approx(p.Negate(), epsilon)
}

// shortest returns b or -b, whichever lies in the same hemisphere as a,
// along with their (non-negative) dot product.
func shortest(a, b Quat) (Quat, float64) {
	d := a.Dot(b)
	if d < 0 {
		return b.Negate(), -d
	}
	return b, d
}

// Nlerp linearly interpolates the components of a and b and renormalizes.
// b is negated first when needed so the path takes the shorter arc.
func Nlerp(a, b Quat, t float64) Quat {
	b, _ = shortest(a, b)
	return Quat{
		W: Lerp(a.W, b.W, t),
		X: Lerp(a.X, b.X, t),
		Y: Lerp(a.Y, b.Y, t),
		Z: Lerp(a.Z, b.Z, t),
	}.Normalize()
}

// Slerp interpolates along the shortest great arc between the unit
// quaternions a and b at constant angular velocity. Slerp(a, b, 0) is a;
// Slerp(a, b, 1) is b, or -b when the inputs lie in opposite hemispheres.
func Slerp(a, b Quat, t float64) Quat {
	b, d := shortest(a, b)
	if d > slerpLinearThreshold {
		return Nlerp(a, b, t)
	}
	theta := math.Acos(d)
	sinTheta := math.Sin(theta)
	wa := math.Sin((1-t)*theta) / sinTheta
	wb := math.Sin(t*theta) / sinTheta
	return Quat{
		W: wa*a.W + wb*b.W,
		X: wa*a.X + wb*b.X,
		Y: wa*a.Y + wb*b.Y,
		Z: wa*a.Z + wb*b.Z,
	}
}
