package geom

import (
	"fmt"
	"math"
)

// Mat3 is a 3x3 matrix stored column-major: m[i] belongs to column i/3 and
// row i%3. Columns 0, 1 and 2 are the images of the X, Y and Z axes.
//
// The storage order matches the GPU uniform layout; use NewMat3 to build a
// matrix from values written in conventional row-major reading order.
type Mat3 [9]float64

// NewMat3 builds a matrix from nine values given row by row, as they would
// be written on paper, and stores them column-major.
func NewMat3(
	m00, m01, m02,
	m10, m11, m12,
	m20, m21, m22 float64,
) Mat3 {
	return Mat3{
		m00, m10, m20,
		m01, m11, m21,
		m02, m12, m22,
	}
}

// Mat3FromCols builds a matrix from its three columns.
func Mat3FromCols(c0, c1, c2 Vec3) Mat3 {
	return Mat3{
		c0.X, c0.Y, c0.Z,
		c1.X, c1.Y, c1.Z,
		c2.X, c2.Y, c2.Z,
	}
}

// Identity3 returns the 3x3 identity matrix.
func Identity3() Mat3 {
	return Mat3{1, 0, 0, 0, 1, 0, 0, 0, 1}
}

// Mat3Scale returns a scale matrix with the components of s on the diagonal.
func Mat3Scale(s Vec3) Mat3 {
	return Mat3{s.X, 0, 0, 0, s.Y, 0, 0, 0, s.Z}
}

// Mat3RotateAxis returns the rotation of angle radians around axis.
// The axis is normalized first.
func Mat3RotateAxis(axis Vec3, angle float64) Mat3 {
	k := axis.Normalize()
	sin, cos := math.Sincos(angle)
	ic := 1 - cos
	x, y, z := k.X, k.Y, k.Z
	return NewMat3(
		cos+ic*x*x, ic*x*y-sin*z, ic*x*z+sin*y,
		ic*x*y+sin*z, cos+ic*y*y, ic*y*z-sin*x,
		ic*x*z-sin*y, ic*y*z+sin*x, cos+ic*z*z,
	)
}

// At returns the element at the given row and column.
func (m Mat3) At(row, col int) float64 {
	return m[col*3+row]
}

// Col returns column i.
func (m Mat3) Col(i int) Vec3 {
	return Vec3{X: m[i*3], Y: m[i*3+1], Z: m[i*3+2]}
}

// Row returns row i.
func (m Mat3) Row(i int) Vec3 {
	return Vec3{X: m[i], Y: m[3+i], Z: m[6+i]}
}

// Mul returns m * n: the transform that applies n first, then m.
func (m Mat3) Mul(n Mat3) Mat3 {
	var r Mat3
	for col := range 3 {
		for row := range 3 {
			var sum float64
			for k := range 3 {
				sum += m[k*3+row] * n[col*3+k]
			}
			r[col*3+row] = sum
		}
	}
	return r
}

// MulVec returns m * v. Component i is the dot product of row i with v.
func (m Mat3) MulVec(v Vec3) Vec3 {
	return Vec3{
		X: m[0]*v.X + m[3]*v.Y + m[6]*v.Z,
		Y: m[1]*v.X + m[4]*v.Y + m[7]*v.Z,
		Z: m[2]*v.X + m[5]*v.Y + m[8]*v.Z,
	}
}

// Transpose swaps rows and columns.
func (m Mat3) Transpose() Mat3 {
	return Mat3{
		m[0], m[3], m[6],
		m[1], m[4], m[7],
		m[2], m[5], m[8],
	}
}

// Determinant returns the determinant using the three-term cofactor
// expansion along the first row.
func (m Mat3) Determinant() float64 {
	return m[0]*(m[4]*m[8]-m[7]*m[5]) -
		m[3]*(m[1]*m[8]-m[7]*m[2]) +
		m[6]*(m[1]*m[5]-m[4]*m[2])
}

// Adjugate returns the transpose of the cofactor matrix. Its columns are
// row1×row2, row2×row0 and row0×row1, so m.Mul(m.Adjugate()) is
// det(m) times the identity.
func (m Mat3) Adjugate() Mat3 {
	r0, r1, r2 := m.Row(0), m.Row(1), m.Row(2)
	return Mat3FromCols(r1.Cross(r2), r2.Cross(r0), r0.Cross(r1))
}

// Inverse returns the inverse computed as adjugate / determinant.
// It returns an error wrapping ErrSingularMatrix, and the zero matrix, when
// the determinant is within SingularEpsilon of zero.
func (m Mat3) Inverse() (Mat3, error) {
	det := m.Determinant()
	if math.Abs(det) < SingularEpsilon {
		Logger().Debug("geom: singular 3x3 inversion", "det", det)
		return Mat3{}, fmt.Errorf("geom: 3x3 determinant %g: %w", det, ErrSingularMatrix)
	}
	adj := m.Adjugate()
	inv := 1 / det
	for i := range adj {
		adj[i] *= inv
	}
	return adj, nil
}

// IsIdentity reports whether m is exactly the identity matrix.
func (m Mat3) IsIdentity() bool {
	return m == Identity3()
}

// Approx reports whether every element of m is within epsilon of n.
func (m Mat3) Approx(n Mat3, epsilon float64) bool {
	for i := range m {
		if math.Abs(m[i]-n[i]) >= epsilon {
			return false
		}
	}
	return true
}

// NormalMatrix returns the operator that transforms surface normals under
// the linear part of m: the adjugate transpose of the upper-left 3x3 block.
// Its rows are row1×row2, row2×row0 and row0×row1 of that block.
//
// It differs from the inverse transpose only by the factor 1/det, which a
// later normalize cancels, so it stays usable for singular matrices.
func NormalMatrix(m Mat4) Mat3 {
	return m.Mat3().Adjugate().Transpose()
}
