package geom

import "math"

// Angle conversion factors. All angle-accepting functions in geom take
// radians.
const (
	DegToRad = math.Pi / 180
	RadToDeg = 180 / math.Pi
)

// Epsilon is the default tolerance used by the Approx helpers and the
// zero-length guard in Normalize.
const Epsilon = 1e-9

// Radians converts degrees to radians.
func Radians(deg float64) float64 { return deg * DegToRad }

// Degrees converts radians to degrees.
func Degrees(rad float64) float64 { return rad * RadToDeg }

// Lerp linearly interpolates between a and b.
// t is not restricted to [0, 1]; values outside extrapolate.
func Lerp(a, b, t float64) float64 {
	return a + t*(b-a)
}

// Clamp limits x to the range [lo, hi].
// The caller must ensure lo <= hi; otherwise the result is whichever bound
// is tested first.
func Clamp(x, lo, hi float64) float64 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}

// Log2 returns the base-2 logarithm of x.
// It is undefined for non-positive input: 0 yields -Inf and negative values
// yield NaN, exactly as math.Log2 does.
func Log2(x float64) float64 {
	return math.Log2(x)
}

// Bilerp bilinearly interpolates the four corners of a unit square.
// cXY names the corner at (X, Y); tx blends along x, then ty along y.
func Bilerp(c00, c10, c01, c11, tx, ty float64) float64 {
	bottom := Lerp(c00, c10, tx)
	top := Lerp(c01, c11, tx)
	return Lerp(bottom, top, ty)
}

// Trilerp trilinearly interpolates the eight corners of a unit cube.
// cXYZ names the corner at (X, Y, Z). The z=0 face is blended with Bilerp,
// then the z=1 face, then the two results along tz. At tz=0 or tz=1 the
// result is exactly the corresponding face's Bilerp.
func Trilerp(c000, c100, c010, c110, c001, c101, c011, c111, tx, ty, tz float64) float64 {
	front := Bilerp(c000, c100, c010, c110, tx, ty)
	back := Bilerp(c001, c101, c011, c111, tx, ty)
	switch tz {
	case 0:
		return front
	case 1:
		return back
	}
	return Lerp(front, back, tz)
}

// ApproxEqual reports whether a and b differ by less than eps.
func ApproxEqual(a, b, eps float64) bool {
	return math.Abs(a-b) < eps
}
