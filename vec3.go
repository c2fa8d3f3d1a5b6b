package geom

import "math"

// Vec3 is a 3-component vector.
type Vec3 struct {
	X, Y, Z float64
}

// V3 is a convenience function to create a Vec3.
func V3(x, y, z float64) Vec3 {
	return Vec3{X: x, Y: y, Z: z}
}

// Standard basis vectors.
var (
	UnitX = Vec3{X: 1}
	UnitY = Vec3{Y: 1}
	UnitZ = Vec3{Z: 1}
)

// Add returns v + w.
func (v Vec3) Add(w Vec3) Vec3 {
	return Vec3{X: v.X + w.X, Y: v.Y + w.Y, Z: v.Z + w.Z}
}

// Sub returns v - w.
func (v Vec3) Sub(w Vec3) Vec3 {
	return Vec3{X: v.X - w.X, Y: v.Y - w.Y, Z: v.Z - w.Z}
}

// Mul returns v scaled by s.
func (v Vec3) Mul(s float64) Vec3 {
	return Vec3{X: v.X * s, Y: v.Y * s, Z: v.Z * s}
}

// Div returns v divided by s.
func (v Vec3) Div(s float64) Vec3 {
	return Vec3{X: v.X / s, Y: v.Y / s, Z: v.Z / s}
}

// Neg returns -v.
func (v Vec3) Neg() Vec3 {
	return Vec3{X: -v.X, Y: -v.Y, Z: -v.Z}
}

// Dot returns the dot product of v and w.
func (v Vec3) Dot(w Vec3) float64 {
	return v.X*w.X + v.Y*w.Y + v.Z*w.Z
}

// Cross returns the right-handed cross product v × w, so that
// UnitX.Cross(UnitY) == UnitZ.
func (v Vec3) Cross(w Vec3) Vec3 {
	return Vec3{
		X: v.Y*w.Z - v.Z*w.Y,
		Y: v.Z*w.X - v.X*w.Z,
		Z: v.X*w.Y - v.Y*w.X,
	}
}

// Length returns the magnitude of v.
func (v Vec3) Length() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z)
}

// LengthSq returns the squared magnitude of v.
func (v Vec3) LengthSq() float64 {
	return v.X*v.X + v.Y*v.Y + v.Z*v.Z
}

// Distance returns the distance between two points.
func (v Vec3) Distance(w Vec3) float64 {
	return v.Sub(w).Length()
}

// Normalize returns a unit vector in the direction of v,
// or the zero vector if v is shorter than Epsilon.
func (v Vec3) Normalize() Vec3 {
	length := v.Length()
	if length < Epsilon {
		return Vec3{}
	}
	return Vec3{X: v.X / length, Y: v.Y / length, Z: v.Z / length}
}

// Lerp linearly interpolates from v to w.
func (v Vec3) Lerp(w Vec3, t float64) Vec3 {
	return Vec3{
		X: v.X + (w.X-v.X)*t,
		Y: v.Y + (w.Y-v.Y)*t,
		Z: v.Z + (w.Z-v.Z)*t,
	}
}

// RotateAxisAngle rotates v by angle radians around axis using Rodrigues'
// formula. The axis is normalized first; a zero axis leaves v unchanged.
// The result matches QuatFromAxisAngle(axis, angle).Rotate(v).
func (v Vec3) RotateAxisAngle(axis Vec3, angle float64) Vec3 {
	k := axis.Normalize()
	if k.IsZero() {
		return v
	}
	sin, cos := math.Sincos(angle)
	return v.Mul(cos).
		Add(k.Cross(v).Mul(sin)).
		Add(k.Mul(k.Dot(v) * (1 - cos)))
}

// IsZero reports whether all components are zero.
func (v Vec3) IsZero() bool {
	return v.X == 0 && v.Y == 0 && v.Z == 0
}

// Approx reports whether v and w are component-wise within epsilon.
func (v Vec3) Approx(w Vec3, epsilon float64) bool {
	return math.Abs(v.X-w.X) < epsilon &&
		math.Abs(v.Y-w.Y) < epsilon &&
		math.Abs(v.Z-w.Z) < epsilon
}

// XY drops the z component.
func (v Vec3) XY() Vec2 {
	return Vec2{X: v.X, Y: v.Y}
}

// Vec4 extends v with the given w component: 1 for points, 0 for directions.
func (v Vec3) Vec4(w float64) Vec4 {
	return Vec4{X: v.X, Y: v.Y, Z: v.Z, W: w}
}

// BilerpVec3 is the component-wise Bilerp of four Vec3 corners.
func BilerpVec3(c00, c10, c01, c11 Vec3, tx, ty float64) Vec3 {
	return c00.Lerp(c10, tx).Lerp(c01.Lerp(c11, tx), ty)
}

// TrilerpVec3 is the component-wise Trilerp of eight Vec3 corners.
func TrilerpVec3(c000, c100, c010, c110, c001, c101, c011, c111 Vec3, tx, ty, tz float64) Vec3 {
	return Vec3{
		X: Trilerp(c000.X, c100.X, c010.X, c110.X, c001.X, c101.X, c011.X, c111.X, tx, ty, tz),
		Y: Trilerp(c000.Y, c100.Y, c010.Y, c110.Y, c001.Y, c101.Y, c011.Y, c111.Y, tx, ty, tz),
		Z: Trilerp(c000.Z, c100.Z, c010.Z, c110.Z, c001.Z, c101.Z, c011.Z, c111.Z, tx, ty, tz),
	}
}
