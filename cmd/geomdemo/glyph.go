package main

import (
	"errors"
	"slices"

	"golang.org/x/text/message"

	"github.com/gogpu/geom"
	"github.com/gogpu/geom/internal/scene"
	"github.com/gogpu/geom/outline"
	"github.com/gogpu/geom/raster"
)

func runGlyph(p *message.Printer, s *scene.Scene, opts options) error {
	if opts.text == "" {
		return errors.New("empty -text")
	}
	path := opts.output
	if path == "" {
		path = "glyph.png"
	}
	tol := slices.Min(s.Tolerances)

	font, err := outline.GoRegular()
	if err != nil {
		return err
	}
	glyphs, err := font.Layout(opts.text, opts.size)
	if err != nil {
		return err
	}

	// The bounded path: every glyph through one fixed buffer.
	buf := make([]geom.Vec2, s.Capacity)
	var ends []int
	for _, g := range glyphs {
		var n int
		n, ends = g.Flatten(tol, buf, ends[:0])
		p.Printf("%q contours %d segments %d points %d\n", g.Rune, len(g.Contours), g.Segments(), n)
	}

	img, points := raster.Glyphs(glyphs, tol, 4)
	if err := raster.SavePNG(path, img); err != nil {
		return err
	}
	stats := font.CacheStats()
	p.Printf("%s: %dx%d, %d points, coverage %.1f%%, glyph cache %d hits / %d misses\n",
		path, img.Bounds().Dx(), img.Bounds().Dy(), points, 100*raster.Coverage(img), stats.Hits, stats.Misses)
	return nil
}
