// Package scene loads the YAML file that drives cmd/geomdemo: a camera, a
// set of Bézier curves and the tolerances to flatten them at.
package scene

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/gogpu/geom"
)

// ErrInvalid is wrapped by every validation error.
var ErrInvalid = errors.New("scene: invalid")

// Defaults applied to zero fields.
const (
	DefaultFovDegrees = 60
	DefaultNear       = 0.1
	DefaultFar        = 100
	DefaultAspect     = 16.0 / 9
	DefaultCapacity   = 4096
)

// DefaultTolerances are used when a scene lists none.
var DefaultTolerances = []float64{1, 0.1, 0.01}

// Scene is the decoded file.
type Scene struct {
	Camera     Camera    `yaml:"camera"`
	Curves     []Curve   `yaml:"curves"`
	Tolerances []float64 `yaml:"tolerances,omitempty"`
	// Capacity is the flatten buffer size in points.
	Capacity int `yaml:"capacity,omitempty"`
}

// Camera describes a look-at camera with a perspective projection.
type Camera struct {
	Eye        []float64 `yaml:"eye,flow"`
	Target     []float64 `yaml:"target,flow"`
	Up         []float64 `yaml:"up,flow"`
	FovDegrees float64   `yaml:"fov,omitempty"`
	Near       float64   `yaml:"near,omitempty"`
	Far        float64   `yaml:"far,omitempty"`
	Aspect     float64   `yaml:"aspect,omitempty"`
}

// Curve is a named 2D Bézier curve: three points make a quadratic and four
// a cubic.
type Curve struct {
	Name   string      `yaml:"name"`
	Points [][]float64 `yaml:"points,flow"`
}

// Default returns the built-in scene.
func Default() *Scene {
	s := &Scene{
		Camera: Camera{
			Eye:    []float64{0, 50, 250},
			Target: []float64{50, 50, 0},
			Up:     []float64{0, 1, 0},
		},
		Curves: []Curve{
			{Name: "arch", Points: [][]float64{{0, 0}, {0, 100}, {100, 100}, {100, 0}}},
			{Name: "parabola", Points: [][]float64{{0, 0}, {50, 100}, {100, 0}}},
			{Name: "s-curve", Points: [][]float64{{0, 0}, {100, 0}, {0, 100}, {100, 100}}},
		},
	}
	s.normalize()
	return s
}

func (s *Scene) normalize() {
	c := &s.Camera
	if c.Target == nil {
		c.Target = []float64{0, 0, 0}
	}
	if c.Up == nil {
		c.Up = []float64{0, 1, 0}
	}
	if c.FovDegrees == 0 {
		c.FovDegrees = DefaultFovDegrees
	}
	if c.Near == 0 {
		c.Near = DefaultNear
	}
	if c.Far == 0 {
		c.Far = DefaultFar
	}
	if c.Aspect == 0 {
		c.Aspect = DefaultAspect
	}
	if len(s.Tolerances) == 0 {
		s.Tolerances = append([]float64(nil), DefaultTolerances...)
	}
	if s.Capacity == 0 {
		s.Capacity = DefaultCapacity
	}
}

// Load reads and validates a scene file.
func Load(path string) (*Scene, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	s, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

// Parse decodes, normalizes and validates a scene. Unknown keys are errors.
func Parse(data []byte) (*Scene, error) {
	var s Scene
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&s); err != nil {
		return nil, fmt.Errorf("parse scene: %w", err)
	}
	s.normalize()
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// Validate checks the scene after defaults are applied.
func (s *Scene) Validate() error {
	c := s.Camera
	for _, v := range []struct {
		name string
		val  []float64
	}{{"eye", c.Eye}, {"target", c.Target}, {"up", c.Up}} {
		if len(v.val) != 3 {
			return fmt.Errorf("%w: camera %s needs 3 coordinates, got %d", ErrInvalid, v.name, len(v.val))
		}
	}
	if c.FovDegrees <= 0 || c.FovDegrees >= 180 {
		return fmt.Errorf("%w: camera fov %g outside (0, 180)", ErrInvalid, c.FovDegrees)
	}
	if c.Near <= 0 || c.Far <= c.Near {
		return fmt.Errorf("%w: camera planes need 0 < near < far, got %g, %g", ErrInvalid, c.Near, c.Far)
	}
	if c.Aspect <= 0 {
		return fmt.Errorf("%w: camera aspect %g", ErrInvalid, c.Aspect)
	}
	forward := s.Target().Sub(s.Eye())
	if forward.IsZero() || forward.Cross(s.Up()).IsZero() {
		return fmt.Errorf("%w: camera up is parallel to the view direction", ErrInvalid)
	}

	if len(s.Curves) == 0 {
		return fmt.Errorf("%w: no curves", ErrInvalid)
	}
	for i, cv := range s.Curves {
		if n := len(cv.Points); n != 3 && n != 4 {
			return fmt.Errorf("%w: curve %d (%s) has %d points, want 3 or 4", ErrInvalid, i, cv.Name, n)
		}
		for j, p := range cv.Points {
			if len(p) != 2 {
				return fmt.Errorf("%w: curve %d (%s) point %d has %d coordinates", ErrInvalid, i, cv.Name, j, len(p))
			}
		}
	}
	for _, tol := range s.Tolerances {
		if !(tol > 0) {
			return fmt.Errorf("%w: tolerance %g must be positive", ErrInvalid, tol)
		}
	}
	if s.Capacity < 2 {
		return fmt.Errorf("%w: capacity %d below 2", ErrInvalid, s.Capacity)
	}
	return nil
}

// Eye returns the camera position.
func (s *Scene) Eye() geom.Vec3 { return vec3(s.Camera.Eye) }

// Target returns the point the camera looks at.
func (s *Scene) Target() geom.Vec3 { return vec3(s.Camera.Target) }

// Up returns the camera up hint.
func (s *Scene) Up() geom.Vec3 { return vec3(s.Camera.Up) }

// View returns the camera's view matrix.
func (s *Scene) View() geom.Mat4 {
	return geom.LookAt(s.Eye(), s.Target(), s.Up())
}

// Projection returns the camera's perspective projection.
func (s *Scene) Projection() geom.Mat4 {
	c := s.Camera
	return geom.Perspective(geom.Radians(c.FovDegrees), c.Aspect, c.Near, c.Far)
}

// Cubic returns curve i as a cubic, raising quadratics.
func (s *Scene) Cubic(i int) geom.CubicBez {
	p := s.Curves[i].Points
	if len(p) == 3 {
		return geom.NewQuadBez(vec2(p[0]), vec2(p[1]), vec2(p[2])).Raise()
	}
	return geom.NewCubicBez(vec2(p[0]), vec2(p[1]), vec2(p[2]), vec2(p[3]))
}

// Write encodes s to path with two-space indentation.
func (s *Scene) Write(path string) error {
	f, err := os.Create(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()

	enc := yaml.NewEncoder(f)
	enc.SetIndent(2)
	if err := enc.Encode(s); err != nil {
		return fmt.Errorf("encode %s: %w", path, err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("close %s: %w", path, err)
	}
	return nil
}

func vec2(p []float64) geom.Vec2 { return geom.V2(p[0], p[1]) }
func vec3(p []float64) geom.Vec3 { return geom.V3(p[0], p[1], p[2]) }
