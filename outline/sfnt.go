package outline

import (
	"errors"
	"fmt"
	"math"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"

	"github.com/gogpu/geom"
	"github.com/gogpu/geom/internal/cache"
)

// DefaultCacheSize is the number of glyphs a Font keeps converted.
const DefaultCacheSize = 256

// FromSFNT loads the outline of r at ppem pixels per em. buf may be nil.
//
// A rune that maps to a glyph without contours, such as a space, yields a
// Glyph with no contours and a nil error.
func FromSFNT(f *sfnt.Font, buf *sfnt.Buffer, r rune, ppem float64) (Glyph, error) {
	if buf == nil {
		buf = &sfnt.Buffer{}
	}
	idx, err := f.GlyphIndex(buf, r)
	if err != nil {
		return Glyph{}, fmt.Errorf("outline: glyph index for %q: %w", r, err)
	}
	if idx == 0 {
		return Glyph{}, fmt.Errorf("%w: %q is not mapped", ErrNoOutline, r)
	}

	size := fixed.Int26_6(math.Round(ppem * 64))
	advance, err := f.GlyphAdvance(buf, idx, size, font.HintingNone)
	if err != nil {
		return Glyph{}, fmt.Errorf("outline: advance for %q: %w", r, err)
	}
	segs, err := f.LoadGlyph(buf, idx, size, nil)
	if errors.Is(err, sfnt.ErrColoredGlyph) {
		return Glyph{}, fmt.Errorf("%w: %q is a colored glyph", ErrNoOutline, r)
	}
	if err != nil {
		return Glyph{}, fmt.Errorf("outline: load %q: %w", r, err)
	}

	var b builder
	for _, s := range segs {
		switch s.Op {
		case sfnt.SegmentOpMoveTo:
			b.moveTo(fromFixed(s.Args[0]))
		case sfnt.SegmentOpLineTo:
			b.lineTo(fromFixed(s.Args[0]))
		case sfnt.SegmentOpQuadTo:
			b.quadTo(fromFixed(s.Args[0]), fromFixed(s.Args[1]))
		case sfnt.SegmentOpCubeTo:
			b.cubeTo(fromFixed(s.Args[0]), fromFixed(s.Args[1]), fromFixed(s.Args[2]))
		}
	}
	return Glyph{
		Rune:     r,
		Advance:  float64(advance) / 64,
		Contours: b.finish(),
	}, nil
}

func fromFixed(p fixed.Point26_6) geom.Vec2 {
	return geom.V2(float64(p.X)/64, float64(p.Y)/64)
}

// Font is an sfnt font with a cache of converted glyph outlines.
// It is safe for concurrent use.
type Font struct {
	sf     *sfnt.Font
	glyphs *cache.Cache[glyphKey, Glyph]
}

type glyphKey struct {
	r    rune
	ppem fixed.Int26_6
}

// ParseFont parses a TrueType or OpenType font.
func ParseFont(data []byte) (*Font, error) {
	sf, err := sfnt.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("outline: parse font: %w", err)
	}
	return &Font{sf: sf, glyphs: cache.New[glyphKey, Glyph](DefaultCacheSize)}, nil
}

// GoRegular returns the Go Regular font.
func GoRegular() (*Font, error) {
	return ParseFont(goregular.TTF)
}

// Glyph returns the outline of r at ppem pixels per em. Results, including
// empty glyphs, are cached; errors are not.
func (f *Font) Glyph(r rune, ppem float64) (Glyph, error) {
	key := glyphKey{r: r, ppem: fixed.Int26_6(math.Round(ppem * 64))}
	return f.glyphs.GetOrCreate(key, func() (Glyph, error) {
		// sfnt.Buffer is not safe for concurrent use; each load gets its own.
		return FromSFNT(f.sf, nil, r, ppem)
	})
}

// Layout returns the glyphs of s placed left to right on a baseline at
// y = 0, each advanced by the previous glyph's width. Kerning is ignored.
func (f *Font) Layout(s string, ppem float64) ([]Glyph, error) {
	var (
		out []Glyph
		x   float64
	)
	for _, r := range s {
		g, err := f.Glyph(r, ppem)
		if err != nil {
			return nil, err
		}
		out = append(out, g.Translate(geom.V2(x, 0)))
		x += g.Advance
	}
	return out, nil
}

// CacheStats reports the glyph cache counters.
func (f *Font) CacheStats() cache.Stats {
	return f.glyphs.Stats()
}
