package geom

import (
	"errors"
	"fmt"
	"math"
)

// ErrSingularMatrix is returned by Inverse when the determinant is too close
// to zero for the adjugate / determinant formula to be stable.
var ErrSingularMatrix = errors.New("geom: matrix is singular")

// SingularEpsilon is the determinant magnitude below which a matrix is
// treated as singular.
const SingularEpsilon = 1e-12

// Mat4 is a 4x4 matrix stored column-major: m[i] belongs to column i/4 and
// row i%4. Columns 0..2 are the transformed X, Y and Z axes and column 3 is
// the translation.
//
// The 16 values are laid out exactly as the rendering pipeline's uniform
// buffers expect them; see package gpu for the float32 packing.
type Mat4 [16]float64

// NewMat4 builds a matrix from sixteen values given row by row and stores
// them column-major.
func NewMat4(
	m00, m01, m02, m03,
	m10, m11, m12, m13,
	m20, m21, m22, m23,
	m30, m31, m32, m33 float64,
) Mat4 {
	return Mat4{
		m00, m10, m20, m30,
		m01, m11, m21, m31,
		m02, m12, m22, m32,
		m03, m13, m23, m33,
	}
}

// Mat4FromCols builds a matrix from its four columns.
func Mat4FromCols(c0, c1, c2, c3 Vec4) Mat4 {
	return Mat4{
		c0.X, c0.Y, c0.Z, c0.W,
		c1.X, c1.Y, c1.Z, c1.W,
		c2.X, c2.Y, c2.Z, c2.W,
		c3.X, c3.Y, c3.Z, c3.W,
	}
}

// Identity4 returns the 4x4 identity matrix.
func Identity4() Mat4 {
	return Mat4{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

// Mat4Translate creates a translation matrix.
func Mat4Translate(t Vec3) Mat4 {
	return NewMat4(
		1, 0, 0, t.X,
		0, 1, 0, t.Y,
		0, 0, 1, t.Z,
		0, 0, 0, 1,
	)
}

// Mat4Scale creates a scaling matrix.
func Mat4Scale(s Vec3) Mat4 {
	return NewMat4(
		s.X, 0, 0, 0,
		0, s.Y, 0, 0,
		0, 0, s.Z, 0,
		0, 0, 0, 1,
	)
}

// Mat4RotateX creates a rotation of angle radians around the X axis.
func Mat4RotateX(angle float64) Mat4 {
	sin, cos := math.Sincos(angle)
	return NewMat4(
		1, 0, 0, 0,
		0, cos, -sin, 0,
		0, sin, cos, 0,
		0, 0, 0, 1,
	)
}

// Mat4RotateY creates a rotation of angle radians around the Y axis.
func Mat4RotateY(angle float64) Mat4 {
	sin, cos := math.Sincos(angle)
	return NewMat4(
		cos, 0, sin, 0,
		0, 1, 0, 0,
		-sin, 0, cos, 0,
		0, 0, 0, 1,
	)
}

// Mat4RotateZ creates a rotation of angle radians around the Z axis.
func Mat4RotateZ(angle float64) Mat4 {
	sin, cos := math.Sincos(angle)
	return NewMat4(
		cos, -sin, 0, 0,
		sin, cos, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	)
}

// Mat4RotateAxis creates a rotation of angle radians around axis.
func Mat4RotateAxis(axis Vec3, angle float64) Mat4 {
	return Mat4FromMat3(Mat3RotateAxis(axis, angle))
}

// Mat4FromMat3 embeds a 3x3 linear map in the upper-left block of a 4x4
// matrix. The translation column is zero and the last row is (0, 0, 0, 1).
func Mat4FromMat3(r Mat3) Mat4 {
	return Mat4{
		r[0], r[1], r[2], 0,
		r[3], r[4], r[5], 0,
		r[6], r[7], r[8], 0,
		0, 0, 0, 1,
	}
}

// Mat3 returns the upper-left 3x3 block.
func (m Mat4) Mat3() Mat3 {
	return Mat3{
		m[0], m[1], m[2],
		m[4], m[5], m[6],
		m[8], m[9], m[10],
	}
}

// At returns the element at the given row and column.
func (m Mat4) At(row, col int) float64 {
	return m[col*4+row]
}

// Col returns column i.
func (m Mat4) Col(i int) Vec4 {
	return Vec4{X: m[i*4], Y: m[i*4+1], Z: m[i*4+2], W: m[i*4+3]}
}

// Row returns row i.
func (m Mat4) Row(i int) Vec4 {
	return Vec4{X: m[i], Y: m[4+i], Z: m[8+i], W: m[12+i]}
}

// Mul returns m * n: the transform that applies n first, then m.
// (m*n)*v equals m*(n*v). Multiplication is not commutative.
func (m Mat4) Mul(n Mat4) Mat4 {
	var r Mat4
	for col := range 4 {
		for row := range 4 {
			var sum float64
			for k := range 4 {
				sum += m[k*4+row] * n[col*4+k]
			}
			r[col*4+row] = sum
		}
	}
	return r
}

// MulVec returns m * v. Component i is the dot product of row i with v,
// which is the same as summing v's components times m's columns.
func (m Mat4) MulVec(v Vec4) Vec4 {
	return Vec4{
		X: m[0]*v.X + m[4]*v.Y + m[8]*v.Z + m[12]*v.W,
		Y: m[1]*v.X + m[5]*v.Y + m[9]*v.Z + m[13]*v.W,
		Z: m[2]*v.X + m[6]*v.Y + m[10]*v.Z + m[14]*v.W,
		W: m[3]*v.X + m[7]*v.Y + m[11]*v.Z + m[15]*v.W,
	}
}

// MulPoint transforms p as a point (w=1). No perspective divide is applied.
func (m Mat4) MulPoint(p Vec3) Vec3 {
	return m.MulVec(p.Vec4(1)).XYZ()
}

// MulDir transforms d as a direction (w=0); translation has no effect.
func (m Mat4) MulDir(d Vec3) Vec3 {
	return m.MulVec(d.Vec4(0)).XYZ()
}

// Transpose swaps rows and columns.
func (m Mat4) Transpose() Mat4 {
	var r Mat4
	for col := range 4 {
		for row := range 4 {
			r[row*4+col] = m[col*4+row]
		}
	}
	return r
}

// minor returns the determinant of the 3x3 matrix left after deleting the
// given row and column.
func (m Mat4) minor(row, col int) float64 {
	var rows, cols [3]int
	for i, r := 0, 0; i < 4; i++ {
		if i != row {
			rows[r] = i
			r++
		}
	}
	for i, c := 0, 0; i < 4; i++ {
		if i != col {
			cols[c] = i
			c++
		}
	}
	a := func(r, c int) float64 { return m.At(rows[r], cols[c]) }
	return a(0, 0)*(a(1, 1)*a(2, 2)-a(1, 2)*a(2, 1)) -
		a(0, 1)*(a(1, 0)*a(2, 2)-a(1, 2)*a(2, 0)) +
		a(0, 2)*(a(1, 0)*a(2, 1)-a(1, 1)*a(2, 0))
}

// cofactor returns the signed minor for the given row and column.
func (m Mat4) cofactor(row, col int) float64 {
	c := m.minor(row, col)
	if (row+col)%2 == 1 {
		return -c
	}
	return c
}

// Determinant returns the determinant by cofactor expansion along the
// first row.
func (m Mat4) Determinant() float64 {
	var det float64
	for col := range 4 {
		if a := m.At(0, col); a != 0 {
			det += a * m.cofactor(0, col)
		}
	}
	return det
}

// Adjugate returns the transpose of the cofactor matrix.
func (m Mat4) Adjugate() Mat4 {
	var adj Mat4
	for row := range 4 {
		for col := range 4 {
			// adj(col,row) = cofactor(row,col), stored column-major.
			adj[row*4+col] = m.cofactor(row, col)
		}
	}
	return adj
}

// Inverse returns the inverse computed as adjugate / determinant.
// It returns an error wrapping ErrSingularMatrix, and the zero matrix, when
// the determinant is within SingularEpsilon of zero.
//
// For pure rotations the inverse equals the transpose; callers that know
// they hold a rotation can use Transpose directly.
func (m Mat4) Inverse() (Mat4, error) {
	adj := m.Adjugate()
	// Expansion along row 0 reusing the adjugate: adj(col,0) = cofactor(0,col).
	det := m[0]*adj[0] + m[4]*adj[1] + m[8]*adj[2] + m[12]*adj[3]
	if math.Abs(det) < SingularEpsilon {
		Logger().Debug("geom: singular 4x4 inversion", "det", det)
		return Mat4{}, fmt.Errorf("geom: 4x4 determinant %g: %w", det, ErrSingularMatrix)
	}
	inv := 1 / det
	for i := range adj {
		adj[i] *= inv
	}
	return adj, nil
}

// IsIdentity reports whether m is exactly the identity matrix.
func (m Mat4) IsIdentity() bool {
	return m == Identity4()
}

// IsAffine reports whether the last row is (0, 0, 0, 1).
func (m Mat4) IsAffine() bool {
	return m[3] == 0 && m[7] == 0 && m[11] == 0 && m[15] == 1
}

// Translation returns the translation column.
func (m Mat4) Translation() Vec3 {
	return Vec3{X: m[12], Y: m[13], Z: m[14]}
}

// Approx reports whether every element of m is within epsilon of n.
func (m Mat4) Approx(n Mat4, epsilon float64) bool {
	for i := range m {
		if math.Abs(m[i]-n[i]) >= epsilon {
			return false
		}
	}
	return true
}
