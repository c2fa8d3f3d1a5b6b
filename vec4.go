package geom

import "math"

// Vec4 is a 4-component vector, typically a homogeneous coordinate.
type Vec4 struct {
	X, Y, Z, W float64
}

// V4 is a convenience function to create a Vec4.
func V4(x, y, z, w float64) Vec4 {
	return Vec4{X: x, Y: y, Z: z, W: w}
}

// Add returns v + u.
func (v Vec4) Add(u Vec4) Vec4 {
	return Vec4{X: v.X + u.X, Y: v.Y + u.Y, Z: v.Z + u.Z, W: v.W + u.W}
}

// Sub returns v - u.
func (v Vec4) Sub(u Vec4) Vec4 {
	return Vec4{X: v.X - u.X, Y: v.Y - u.Y, Z: v.Z - u.Z, W: v.W - u.W}
}

// Mul returns v scaled by s.
func (v Vec4) Mul(s float64) Vec4 {
	return Vec4{X: v.X * s, Y: v.Y * s, Z: v.Z * s, W: v.W * s}
}

// Div returns v divided by s.
func (v Vec4) Div(s float64) Vec4 {
	return Vec4{X: v.X / s, Y: v.Y / s, Z: v.Z / s, W: v.W / s}
}

// Neg returns -v.
func (v Vec4) Neg() Vec4 {
	return Vec4{X: -v.X, Y: -v.Y, Z: -v.Z, W: -v.W}
}

// Dot returns the 4D dot product.
func (v Vec4) Dot(u Vec4) float64 {
	return v.X*u.X + v.Y*u.Y + v.Z*u.Z + v.W*u.W
}

// Length returns the magnitude of v.
func (v Vec4) Length() float64 {
	return math.Sqrt(v.Dot(v))
}

// LengthSq returns the squared magnitude of v.
func (v Vec4) LengthSq() float64 {
	return v.Dot(v)
}

// Normalize returns v scaled to unit length,
// or the zero vector if v is shorter than Epsilon.
func (v Vec4) Normalize() Vec4 {
	length := v.Length()
	if length < Epsilon {
		return Vec4{}
	}
	return v.Div(length)
}

// Lerp linearly interpolates from v to u.
func (v Vec4) Lerp(u Vec4, t float64) Vec4 {
	return Vec4{
		X: v.X + (u.X-v.X)*t,
		Y: v.Y + (u.Y-v.Y)*t,
		Z: v.Z + (u.Z-v.Z)*t,
		W: v.W + (u.W-v.W)*t,
	}
}

// Approx reports whether v and u are component-wise within epsilon.
func (v Vec4) Approx(u Vec4, epsilon float64) bool {
	return math.Abs(v.X-u.X) < epsilon &&
		math.Abs(v.Y-u.Y) < epsilon &&
		math.Abs(v.Z-u.Z) < epsilon &&
		math.Abs(v.W-u.W) < epsilon
}

// XYZ drops the w component without dividing.
func (v Vec4) XYZ() Vec3 {
	return Vec3{X: v.X, Y: v.Y, Z: v.Z}
}

// BilerpVec4 is the component-wise Bilerp of four Vec4 corners.
func BilerpVec4(c00, c10, c01, c11 Vec4, tx, ty float64) Vec4 {
	return c00.Lerp(c10, tx).Lerp(c01.Lerp(c11, tx), ty)
}

// TrilerpVec4 is the component-wise Trilerp of eight Vec4 corners.
func TrilerpVec4(c000, c100, c010, c110, c001, c101, c011, c111 Vec4, tx, ty, tz float64) Vec4 {
	front := BilerpVec4(c000, c100, c010, c110, tx, ty)
	back := BilerpVec4(c001, c101, c011, c111, tx, ty)
	switch tz {
	case 0:
		return front
	case 1:
		return back
	}
	return front.Lerp(back, tz)
}
