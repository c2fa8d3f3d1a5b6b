package scene

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/gogpu/geom"
)

const minimal = `
camera:
  eye: [0, 0, 5]
curves:
  - name: arch
    points: [[0, 0], [0, 100], [100, 100], [100, 0]]
  - name: bowl
    points: [[0, 0], [50, 100], [100, 0]]
`

func TestParse_Defaults(t *testing.T) {
	s, err := Parse([]byte(minimal))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	want := Camera{
		Eye:        []float64{0, 0, 5},
		Target:     []float64{0, 0, 0},
		Up:         []float64{0, 1, 0},
		FovDegrees: DefaultFovDegrees,
		Near:       DefaultNear,
		Far:        DefaultFar,
		Aspect:     DefaultAspect,
	}
	if d := cmp.Diff(want, s.Camera); d != "" {
		t.Errorf("camera (-want +got):\n%s", d)
	}
	if d := cmp.Diff(DefaultTolerances, s.Tolerances); d != "" {
		t.Errorf("tolerances:\n%s", d)
	}
	if s.Capacity != DefaultCapacity {
		t.Errorf("Capacity = %d", s.Capacity)
	}

	// The quadratic is raised without changing its shape.
	q := geom.NewQuadBez(geom.V2(0, 0), geom.V2(50, 100), geom.V2(100, 0))
	c := s.Cubic(1)
	if d := cmp.Diff(q.Eval(0.3), c.Eval(0.3), cmpopts.EquateApprox(0, 1e-12)); d != "" {
		t.Errorf("raised quadratic:\n%s", d)
	}
	if got := s.View().MulPoint(geom.Vec3{}); got.Z != -5 {
		t.Errorf("target depth in view space = %v, want -5", got.Z)
	}
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		invalid bool
	}{
		{"unknown key", minimal + "colour: red\n", false},
		{"bad yaml", "camera: [", false},
		{"short eye", strings.Replace(minimal, "[0, 0, 5]", "[0, 5]", 1), true},
		{"no curves", "camera:\n  eye: [0, 0, 5]\n", true},
		{"two points", strings.Replace(minimal, "[[0, 0], [50, 100], [100, 0]]", "[[0, 0], [1, 1]]", 1), true},
		{"3d point", strings.Replace(minimal, "[50, 100]", "[50, 100, 1]", 1), true},
		{"negative tolerance", minimal + "tolerances: [0.1, -1]\n", true},
		{"planes", strings.Replace(minimal, "eye: [0, 0, 5]\n", "eye: [0, 0, 5]\n  near: 10\n  far: 1\n", 1), true},
		{"up parallel", strings.Replace(minimal, "[0, 0, 5]", "[0, 5, 0]", 1), true},
		{"eye on target", strings.Replace(minimal, "[0, 0, 5]", "[0, 0, 0]", 1), true},
		{"fov", strings.Replace(minimal, "eye: [0, 0, 5]\n", "eye: [0, 0, 5]\n  fov: 180\n", 1), true},
		{"capacity", minimal + "capacity: 1\n", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.yaml))
			if err == nil {
				t.Fatal("Parse succeeded")
			}
			if got := errors.Is(err, ErrInvalid); got != tt.invalid {
				t.Errorf("errors.Is(ErrInvalid) = %v for %v", got, err)
			}
		})
	}
}

func TestDefaultIsValid(t *testing.T) {
	s := Default()
	if err := s.Validate(); err != nil {
		t.Fatalf("Default: %v", err)
	}
	for i := range s.Curves {
		_ = s.Cubic(i)
	}
}

func TestWriteLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scene.yaml")
	want := Default()
	if err := want.Write(path); err != nil {
		t.Fatalf("Write: %v", err)
	}
	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if d := cmp.Diff(want, got); d != "" {
		t.Errorf("round trip (-want +got):\n%s", d)
	}

	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("Load(missing) = %v, want ErrNotExist", err)
	}
}
