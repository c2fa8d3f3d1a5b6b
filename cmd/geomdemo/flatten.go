package main

import (
	"golang.org/x/text/message"

	"github.com/gogpu/geom"
	"github.com/gogpu/geom/internal/scene"
)

// arcSegments is the chord count used for reference arc lengths.
const arcSegments = 4096

func runFlatten(p *message.Printer, s *scene.Scene) error {
	buf := make([]geom.Vec2, s.Capacity)
	p.Printf("%-12s %10s %10s %12s %12s\n", "curve", "tolerance", "segments", "length", "error")
	for i, cv := range s.Curves {
		c := s.Cubic(i)
		arc := c.ArcLength(arcSegments)
		for _, tol := range s.Tolerances {
			n := c.Flatten(tol, buf)
			poly := geom.PolylineLength(buf[:n])
			p.Printf("%-12s %10g %10d %12.4f %12.2e\n", cv.Name, tol, n-1, poly, arc-poly)
			if n == len(buf) {
				p.Printf("%-12s %10s capacity of %d points reached, output truncated\n", "", "", len(buf))
			}
		}
	}
	return nil
}
