// Package geom provides the transform and curve math behind the GoGPU
// rendering stack.
//
// # Overview
//
// geom is a small, allocation-free library of value types: Vec2, Vec3 and
// Vec4 vectors, column-major Mat3 and Mat4 matrices, unit quaternions, camera
// and projection matrices, and a Bézier toolkit that evaluates, splits and
// flattens quadratic and cubic curves in 2D and 3D.
//
// # Quick Start
//
//	import "github.com/gogpu/geom"
//
//	view := geom.LookAt(geom.V3(0, 2, 5), geom.V3(0, 0, 0), geom.UnitY)
//	proj := geom.Perspective(geom.Radians(60), 16.0/9.0, 0.1, 100)
//	clip := proj.Mul(view).MulVec(geom.V4(1, 1, 0, 1))
//	ndc := geom.PerspectiveDivide(clip)
//
//	c := geom.NewCubicBez(geom.V2(0, 0), geom.V2(1, 3), geom.V2(3, 3), geom.V2(4, 0))
//	buf := make([]geom.Vec2, 64)
//	n := c.Flatten(0.01, buf)
//	polyline := buf[:n]
//
// # Conventions
//
//   - Angles are radians.
//   - Matrices are column-major; Mat4 element i sits in column i/4, row i%4.
//     NewMat3 and NewMat4 take their arguments row by row.
//   - m.Mul(n) applies n first, then m.
//   - View space is right-handed with the camera looking down -Z.
//   - Clip-space depth runs from 0 (near) to 1 (far).
//   - All types are plain values; operations never mutate their receiver.
//
// # Errors
//
// Only matrix inversion can fail. Mat3.Inverse and Mat4.Inverse return an
// error wrapping ErrSingularMatrix; test for it with errors.Is.
//
// # Logging
//
// geom is silent by default. Install a slog.Logger with SetLogger to see
// debug records for singular inversions and truncated flattening.
//
// # Subpackages
//
//   - gpu: float32 uniform packing, vertex layouts and shader compilation
//   - camera: an orbit camera driven by pointer and scroll events
//   - outline: glyph outlines from TrueType fonts as Bézier contours
//   - raster: CPU coverage preview of flattened contours
package geom

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0-alpha.1"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 1

	// VersionPatch is the patch version
	VersionPatch = 0

	// VersionPrerelease is the prerelease identifier
	VersionPrerelease = "alpha.1"
)
