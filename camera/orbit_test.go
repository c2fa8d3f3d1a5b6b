package camera

import (
	"math"
	"sync"
	"testing"

	"github.com/gogpu/gpucontext"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/gogpu/geom"
)

const eps = 1e-9

var approx = cmpopts.EquateApprox(0, eps)

// fakeWindow records the callbacks registered by Attach so tests can emit
// events synchronously.
type fakeWindow struct {
	pointer []func(gpucontext.PointerEvent)
	scroll  []func(gpucontext.ScrollEvent)
}

func (w *fakeWindow) OnPointer(fn func(gpucontext.PointerEvent))    { w.pointer = append(w.pointer, fn) }
func (w *fakeWindow) OnScrollEvent(fn func(gpucontext.ScrollEvent)) { w.scroll = append(w.scroll, fn) }

func (w *fakeWindow) emitPointer(ev gpucontext.PointerEvent) {
	for _, fn := range w.pointer {
		fn(ev)
	}
}

func (w *fakeWindow) emitScroll(ev gpucontext.ScrollEvent) {
	for _, fn := range w.scroll {
		fn(ev)
	}
}

func (w *fakeWindow) drag(buttons gpucontext.Buttons, fromX, fromY, toX, toY float64) {
	w.emitPointer(gpucontext.PointerEvent{Type: gpucontext.PointerDown, X: fromX, Y: fromY, Buttons: buttons})
	w.emitPointer(gpucontext.PointerEvent{Type: gpucontext.PointerMove, X: toX, Y: toY, Buttons: buttons})
	w.emitPointer(gpucontext.PointerEvent{Type: gpucontext.PointerUp, X: toX, Y: toY})
}

func newAttached(t *testing.T) (*Orbit, *fakeWindow) {
	t.Helper()
	o := NewOrbit(geom.Vec3{}, 5)
	w := &fakeWindow{}
	o.Attach(w, w)
	if len(w.pointer) != 1 || len(w.scroll) != 1 {
		t.Fatalf("Attach registered %d pointer and %d scroll handlers", len(w.pointer), len(w.scroll))
	}
	return o, w
}

func TestOrbit_Initial(t *testing.T) {
	o := NewOrbit(geom.V3(1, 2, 3), 5)
	if d := cmp.Diff(geom.V3(1, 2, 8), o.Eye(), approx); d != "" {
		t.Errorf("Eye:\n%s", d)
	}
	// The target sits straight ahead at the orbit distance.
	got := o.View().MulPoint(geom.V3(1, 2, 3))
	if d := cmp.Diff(geom.V3(0, 0, -5), got, approx); d != "" {
		t.Errorf("target in view space:\n%s", d)
	}
}

func TestOrbit_DragRotates(t *testing.T) {
	o, w := newAttached(t)
	w.drag(gpucontext.ButtonsLeft, 200, 200, 100, 200)

	yaw, pitch := o.Angles()
	if math.Abs(yaw-0.5) > eps || pitch != 0 {
		t.Fatalf("angles = (%v, %v), want (0.5, 0)", yaw, pitch)
	}
	want := geom.V3(5*math.Sin(0.5), 0, 5*math.Cos(0.5))
	if d := cmp.Diff(want, o.Eye(), approx); d != "" {
		t.Errorf("Eye:\n%s", d)
	}
	if got := o.Eye().Length(); math.Abs(got-5) > eps {
		t.Errorf("|eye| = %v, want 5", got)
	}
}

func TestOrbit_DragIgnoresOtherButtons(t *testing.T) {
	o, w := newAttached(t)
	w.drag(gpucontext.ButtonsRight, 0, 0, 300, 300)
	w.emitPointer(gpucontext.PointerEvent{Type: gpucontext.PointerMove, X: 50, Y: 50})

	if yaw, pitch := o.Angles(); yaw != 0 || pitch != 0 {
		t.Errorf("angles = (%v, %v), want unchanged", yaw, pitch)
	}
}

func TestOrbit_LockedCursorDeltas(t *testing.T) {
	o, w := newAttached(t)
	w.emitPointer(gpucontext.PointerEvent{Type: gpucontext.PointerDown, Buttons: gpucontext.ButtonsLeft})
	w.emitPointer(gpucontext.PointerEvent{Type: gpucontext.PointerMove, DeltaY: -20, Buttons: gpucontext.ButtonsLeft})

	if _, pitch := o.Angles(); math.Abs(pitch-0.1) > eps {
		t.Errorf("pitch = %v, want 0.1", pitch)
	}
}

func TestOrbit_PitchClamped(t *testing.T) {
	o, w := newAttached(t)
	w.drag(gpucontext.ButtonsLeft, 0, 0, 0, 10000)

	_, pitch := o.Angles()
	if pitch != -MaxPitch {
		t.Fatalf("pitch = %v, want %v", pitch, -MaxPitch)
	}
	// Looking down from above: the eye is high and the view stays regular.
	if eye := o.Eye(); eye.Y <= 4.9 {
		t.Errorf("eye = %v, want near the +Y pole", eye)
	}
	if _, err := o.View().Inverse(); err != nil {
		t.Errorf("view is singular near the pole: %v", err)
	}
	got := o.View().MulPoint(geom.Vec3{})
	if d := cmp.Diff(geom.V3(0, 0, -5), got, cmpopts.EquateApprox(0, 1e-6)); d != "" {
		t.Errorf("target in view space:\n%s", d)
	}
}

func TestOrbit_Scroll(t *testing.T) {
	tests := []struct {
		name string
		ev   gpucontext.ScrollEvent
		want float64
	}{
		{"pixels out", gpucontext.ScrollEvent{DeltaY: 100}, 5 * math.Exp(0.1)},
		{"pixels in", gpucontext.ScrollEvent{DeltaY: -100}, 5 * math.Exp(-0.1)},
		{"lines", gpucontext.ScrollEvent{DeltaY: 1, DeltaMode: gpucontext.ScrollDeltaLine}, 5 * math.Exp(0.016)},
		{"clamped far", gpucontext.ScrollEvent{DeltaY: 10, DeltaMode: gpucontext.ScrollDeltaPage}, DefaultFar / 2},
		{"clamped near", gpucontext.ScrollEvent{DeltaY: -10, DeltaMode: gpucontext.ScrollDeltaPage}, DefaultNear * 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o, w := newAttached(t)
			w.emitScroll(tt.ev)
			if got := o.Distance(); math.Abs(got-tt.want) > eps {
				t.Errorf("Distance = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestOrbit_Project(t *testing.T) {
	o := NewOrbit(geom.Vec3{}, 5)
	o.SetAspect(800, 600)

	center := o.Project(geom.Vec3{}, 800, 600)
	if math.Abs(center.X-400) > 1e-9 || math.Abs(center.Y-300) > 1e-9 {
		t.Errorf("target projects to %v, want viewport center", center)
	}
	if center.Z <= 0 || center.Z >= 1 {
		t.Errorf("depth = %v, want inside (0, 1)", center.Z)
	}
	// +Y in world space is up on screen, so its pixel row is smaller.
	if up := o.Project(geom.UnitY, 800, 600); up.Y >= center.Y {
		t.Errorf("+Y projects to row %v, want above %v", up.Y, center.Y)
	}

	want := o.Projection().Mul(o.View())
	if d := cmp.Diff(want, o.ViewProjection(), approx); d != "" {
		t.Errorf("ViewProjection:\n%s", d)
	}
}

func TestOrbit_SetAspectIgnoresEmpty(t *testing.T) {
	o := NewOrbit(geom.Vec3{}, 5)
	before := o.Projection()
	o.SetAspect(0, 600)
	if d := cmp.Diff(before, o.Projection()); d != "" {
		t.Errorf("Projection changed:\n%s", d)
	}
}

func TestOrbit_AttachNil(t *testing.T) {
	o := NewOrbit(geom.Vec3{}, 5)
	o.Attach(nil, gpucontext.NullScrollEventSource{})
	o.Attach(gpucontext.NullPointerEventSource{}, nil)
}

func TestOrbit_Concurrent(t *testing.T) {
	o, w := newAttached(t)
	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		for i := range 200 {
			w.drag(gpucontext.ButtonsLeft, 0, 0, float64(i%7), float64(i%5))
			w.emitScroll(gpucontext.ScrollEvent{DeltaY: float64(i%3 - 1)})
		}
	}()
	go func() {
		defer wg.Done()
		for range 200 {
			_ = o.ViewProjection()
			_ = o.Eye()
		}
	}()
	wg.Wait()
}
