package geom

// MaxFlattenDepth bounds the recursive subdivision in Flatten. A curve is
// split at most this many times along any branch, so a single curve emits
// at most 1<<MaxFlattenDepth segments regardless of tolerance.
const MaxFlattenDepth = 16

// flattenable is implemented by the Bézier types of every dimension.
type flattenable[C, P any] interface {
	Start() P
	End() P
	Flatness() float64
	Subdivide() (C, C)
}

// walkFlatten subdivides c at t=0.5 until each piece is within tolerance of
// its chord (or MaxFlattenDepth is reached) and calls emit with the end point
// of every accepted piece, in order. Walking stops as soon as emit returns
// false. It reports whether the depth limit cut any branch short.
func walkFlatten[C flattenable[C, P], P any](c C, tolerance float64, emit func(P) bool) (limited bool) {
	stopped := false
	var rec func(c C, depth int)
	rec = func(c C, depth int) {
		if stopped {
			return
		}
		if c.Flatness() <= tolerance {
			stopped = !emit(c.End())
			return
		}
		if depth >= MaxFlattenDepth {
			limited = true
			stopped = !emit(c.End())
			return
		}
		left, right := c.Subdivide()
		rec(left, depth+1)
		rec(right, depth+1)
	}
	rec(c, 0)
	return limited
}

// flattenInto implements the bounded-buffer flattening contract shared by
// all curve types: the start point followed by the end of every accepted
// sub-curve is written to out, never more than len(out) points, and the
// number of points actually written is returned. When out is too small the
// polyline is truncated (it stops early along the curve) rather than
// overflowing.
func flattenInto[C flattenable[C, P], P any](c C, tolerance float64, out []P) int {
	if len(out) == 0 {
		return 0
	}
	out[0] = c.Start()
	n := 1
	truncated := false
	limited := walkFlatten(c, tolerance, func(p P) bool {
		if n == len(out) {
			truncated = true
			return false
		}
		out[n] = p
		n++
		return true
	})
	if truncated {
		Logger().Debug("geom: flatten truncated", "written", n, "capacity", len(out), "tolerance", tolerance)
	}
	if limited {
		Logger().Debug("geom: flatten hit depth limit", "depth", MaxFlattenDepth, "tolerance", tolerance)
	}
	return n
}

// appendFlatten is the growable variant of flattenInto.
func appendFlatten[C flattenable[C, P], P any](c C, tolerance float64, dst []P) []P {
	dst = append(dst, c.Start())
	limited := walkFlatten(c, tolerance, func(p P) bool {
		dst = append(dst, p)
		return true
	})
	if limited {
		Logger().Debug("geom: flatten hit depth limit", "depth", MaxFlattenDepth, "tolerance", tolerance)
	}
	return dst
}

// PolylineLength returns the total length of a 2D polyline.
func PolylineLength(pts []Vec2) float64 {
	var total float64
	for i := 1; i < len(pts); i++ {
		total += pts[i-1].Distance(pts[i])
	}
	return total
}
