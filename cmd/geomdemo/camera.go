package main

import (
	"math"

	"golang.org/x/text/message"

	"github.com/gogpu/geom"
	"github.com/gogpu/geom/camera"
	"github.com/gogpu/geom/gpu"
	"github.com/gogpu/geom/internal/scene"
)

// Viewport height used when projecting; the width follows the aspect ratio.
const screenHeight = 1080

func runCamera(p *message.Printer, s *scene.Scene) error {
	view, proj := s.View(), s.Projection()
	vp := proj.Mul(view)
	printMat4(p, "view", view)
	printMat4(p, "projection", proj)
	printMat4(p, "view-projection", vp)

	width := math.Round(screenHeight * s.Camera.Aspect)
	tol := s.Tolerances[0]
	for i, cv := range s.Curves {
		pts := s.Cubic(i).AppendFlatten(nil, tol)
		p.Printf("%s (%d points at tolerance %g):\n", cv.Name, len(pts), tol)
		for _, pt := range pts {
			clip := vp.MulVec(pt.Vec3(0).Vec4(1))
			if clip.W <= 0 {
				p.Printf("  %v behind the camera\n", pt)
				continue
			}
			scr := geom.Viewport(geom.PerspectiveDivide(clip), width, screenHeight)
			p.Printf("  (%7.2f, %7.2f) -> (%8.2f, %8.2f) depth %.5f\n", pt.X, pt.Y, scr.X, scr.Y, scr.Z)
		}
	}

	// The same camera as an orbit, turned in 45 degree steps.
	eye, target := s.Eye(), s.Target()
	orbit := camera.NewOrbit(target, eye.Distance(target))
	orbit.SetAspect(width, screenHeight)
	orbit.SetClip(geom.Radians(s.Camera.FovDegrees), s.Camera.Near, s.Camera.Far)
	p.Printf("orbit around %v:\n", target)
	for step := range 8 {
		center := orbit.Project(target, width, screenHeight)
		p.Printf("  yaw %3d eye %v target at (%.1f, %.1f)\n", step*45, orbit.Eye(), center.X, center.Y)
		orbit.Rotate(math.Pi/4, 0)
	}

	u := gpu.CameraUniforms{Model: geom.Identity4(), View: view, Projection: proj}
	words, err := gpu.CompileTransformShader()
	if err != nil {
		return err
	}
	p.Printf("uniform block %d bytes, transform shader %d SPIR-V words\n", len(u.Bytes()), len(words))
	return nil
}

func printMat4(p *message.Printer, name string, m geom.Mat4) {
	p.Printf("%s:\n", name)
	for r := range 4 {
		row := m.Row(r)
		p.Printf("  [% 10.5f % 10.5f % 10.5f % 10.5f]\n", row.X, row.Y, row.Z, row.W)
	}
}
