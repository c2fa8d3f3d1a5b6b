// Package raster previews flattened geometry as anti-aliased coverage masks.
//
// Polylines come from the geom flatteners (or outline.Glyph.Flatten) and are
// filled with golang.org/x/image/vector. Pixel centers sit at half-integer
// coordinates and y increases downwards.
package raster

import (
	"fmt"
	"image"
	"image/png"
	"os"

	"golang.org/x/image/vector"

	"github.com/gogpu/geom"
	"github.com/gogpu/geom/outline"
)

// Fill rasterizes closed polylines into dst, combining with its existing
// coverage. pts holds the polylines back to back and ends the index one past
// the last point of each; this is the layout produced by
// outline.Glyph.Flatten. Polylines with fewer than three points are skipped.
func Fill(dst *image.Alpha, pts []geom.Vec2, ends []int) {
	b := dst.Bounds()
	z := vector.NewRasterizer(b.Dx(), b.Dy())
	ox, oy := float32(b.Min.X), float32(b.Min.Y)

	start := 0
	for _, end := range ends {
		poly := pts[start:end]
		start = end
		if len(poly) < 3 {
			continue
		}
		z.MoveTo(float32(poly[0].X)-ox, float32(poly[0].Y)-oy)
		for _, p := range poly[1:] {
			z.LineTo(float32(p.X)-ox, float32(p.Y)-oy)
		}
		z.ClosePath()
	}
	z.Draw(dst, b, image.Opaque, image.Point{})
}

// FillCurve fills the region enclosed by a cubic and its chord.
func FillCurve(dst *image.Alpha, c geom.CubicBez, tolerance float64) {
	pts := c.AppendFlatten(nil, tolerance)
	Fill(dst, pts, []int{len(pts)})
}

// Glyphs flattens glyphs at tolerance and renders them into a new mask
// sized to their ink bounds plus margin pixels on every side. It returns
// the mask and the number of polyline points rasterized.
func Glyphs(glyphs []outline.Glyph, tolerance float64, margin int) (*image.Alpha, int) {
	var (
		pts   []geom.Vec2
		ends  []int
		box   geom.Rect
		first = true
	)
	for _, g := range glyphs {
		if len(g.Contours) == 0 {
			continue
		}
		if first {
			box, first = g.Bounds(), false
		} else {
			box = box.Union(g.Bounds())
		}
		pts, ends = g.AppendFlatten(pts, ends, tolerance)
	}

	w := int(box.Width()+0.999) + 2*margin
	h := int(box.Height()+0.999) + 2*margin
	dst := image.NewAlpha(image.Rect(0, 0, max(w, 1), max(h, 1)))
	if len(pts) == 0 {
		return dst, 0
	}

	shift := geom.V2(float64(margin), float64(margin)).Sub(box.Min)
	for i := range pts {
		pts[i] = pts[i].Add(shift)
	}
	Fill(dst, pts, ends)
	geom.Logger().Debug("raster: glyphs", "glyphs", len(glyphs), "points", len(pts), "size", dst.Bounds().Size())
	return dst, len(pts)
}

// Coverage returns the mean alpha of img in [0, 1].
func Coverage(img *image.Alpha) float64 {
	b := img.Bounds()
	if b.Empty() {
		return 0
	}
	var sum uint64
	for y := b.Min.Y; y < b.Max.Y; y++ {
		row := img.Pix[img.PixOffset(b.Min.X, y):img.PixOffset(b.Max.X, y)]
		for _, a := range row {
			sum += uint64(a)
		}
	}
	return float64(sum) / (255 * float64(b.Dx()*b.Dy()))
}

// SavePNG writes img to path as PNG.
func SavePNG(path string, img image.Image) error {
	f, err := os.Create(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return fmt.Errorf("raster: %w", err)
	}
	if err := png.Encode(f, img); err != nil {
		_ = f.Close()
		return fmt.Errorf("raster: encode %s: %w", path, err)
	}
	return f.Close()
}
