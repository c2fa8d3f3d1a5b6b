package outline

import (
	"bytes"
	"fmt"

	"github.com/go-text/typesetting/font"
	ot "github.com/go-text/typesetting/font/opentype"

	"github.com/gogpu/geom"
)

// ParseFace parses a single-font TrueType or OpenType file with
// go-text/typesetting.
func ParseFace(data []byte) (*font.Face, error) {
	face, err := font.ParseTTF(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("outline: parse face: %w", err)
	}
	return face, nil
}

// FromFace loads the outline of r at ppem pixels per em from a go-text
// face. Font units are scaled by ppem/upem and the y axis is flipped so
// the result matches FromSFNT.
func FromFace(face *font.Face, r rune, ppem float64) (Glyph, error) {
	gid, ok := face.NominalGlyph(r)
	if !ok {
		return Glyph{}, fmt.Errorf("%w: %q is not mapped", ErrNoOutline, r)
	}
	data, ok := face.GlyphData(gid).(font.GlyphOutline)
	if !ok {
		return Glyph{}, fmt.Errorf("%w: %q is not an outline glyph", ErrNoOutline, r)
	}

	scale := ppem / float64(face.Upem())
	pt := func(p ot.SegmentPoint) geom.Vec2 {
		return geom.V2(float64(p.X)*scale, -float64(p.Y)*scale)
	}

	var b builder
	for _, s := range data.Segments {
		switch s.Op {
		case ot.SegmentOpMoveTo:
			b.moveTo(pt(s.Args[0]))
		case ot.SegmentOpLineTo:
			b.lineTo(pt(s.Args[0]))
		case ot.SegmentOpQuadTo:
			b.quadTo(pt(s.Args[0]), pt(s.Args[1]))
		case ot.SegmentOpCubeTo:
			b.cubeTo(pt(s.Args[0]), pt(s.Args[1]), pt(s.Args[2]))
		}
	}
	return Glyph{
		Rune:     r,
		Advance:  float64(face.HorizontalAdvance(gid)) * scale,
		Contours: b.finish(),
	}, nil
}
