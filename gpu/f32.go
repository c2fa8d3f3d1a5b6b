package gpu

import (
	"golang.org/x/image/math/f32"

	"github.com/gogpu/geom"
)

// The x/image/math/f32 matrix types are row-major: Mat4 element [4*r+c] is
// row r, column c. geom stores columns contiguously, so every conversion
// below transposes.

// ToF32Mat4 narrows m to an f32.Mat4.
func ToF32Mat4(m geom.Mat4) f32.Mat4 {
	var out f32.Mat4
	for row := range 4 {
		for col := range 4 {
			out[4*row+col] = float32(m.At(row, col))
		}
	}
	return out
}

// FromF32Mat4 widens an f32.Mat4 into geom's column-major layout.
func FromF32Mat4(m f32.Mat4) geom.Mat4 {
	var out geom.Mat4
	for row := range 4 {
		for col := range 4 {
			out[col*4+row] = float64(m[4*row+col])
		}
	}
	return out
}

// ToF32Mat3 narrows m to an f32.Mat3.
func ToF32Mat3(m geom.Mat3) f32.Mat3 {
	var out f32.Mat3
	for row := range 3 {
		for col := range 3 {
			out[3*row+col] = float32(m.At(row, col))
		}
	}
	return out
}

// ToF32Aff3 returns the 2D affine part of m, which must map the z=1 plane
// to itself: the top two rows of a homogeneous 2D transform.
func ToF32Aff3(m geom.Mat3) f32.Aff3 {
	return f32.Aff3{
		float32(m.At(0, 0)), float32(m.At(0, 1)), float32(m.At(0, 2)),
		float32(m.At(1, 0)), float32(m.At(1, 1)), float32(m.At(1, 2)),
	}
}

// ToF32Vec4 narrows v to an f32.Vec4.
func ToF32Vec4(v geom.Vec4) f32.Vec4 {
	return f32.Vec4{float32(v.X), float32(v.Y), float32(v.Z), float32(v.W)}
}

// ToF32Vec3 narrows v to an f32.Vec3.
func ToF32Vec3(v geom.Vec3) f32.Vec3 {
	return f32.Vec3{float32(v.X), float32(v.Y), float32(v.Z)}
}
