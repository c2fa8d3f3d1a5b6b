// Package camera provides an orbit camera for previewing geometry.
//
// Orbit keeps its orientation as a yaw/pitch pair composed into a quaternion,
// so the view matrix never degenerates when the camera passes over a pole.
// It is driven by gpucontext pointer and scroll events: dragging with the
// left button orbits and scrolling zooms.
//
//	cam := camera.NewOrbit(geom.Vec3{}, 5)
//	cam.Attach(window, window)
//	u := gpu.CameraUniforms{Model: model, View: cam.View(), Projection: cam.Projection()}
package camera

import (
	"math"
	"sync"

	"github.com/gogpu/gpucontext"

	"github.com/gogpu/geom"
)

// Defaults used by NewOrbit.
const (
	DefaultFovY        = math.Pi / 3
	DefaultNear        = 0.1
	DefaultFar         = 100
	DefaultSensitivity = 0.005 // radians per logical pixel
	DefaultZoomRate    = 0.001 // log-distance per scrolled pixel

	// MaxPitch keeps the eye just short of the poles.
	MaxPitch = math.Pi/2 - 0.01

	// Pixel equivalents of line and page scroll deltas.
	linePixels = 16
	pagePixels = 400
)

// Orbit is a camera that circles a target point.
//
// Orbit is safe for concurrent use: event callbacks may run on the window
// thread while the render loop reads matrices.
type Orbit struct {
	mu sync.Mutex

	target   geom.Vec3
	distance float64
	yaw      float64
	pitch    float64

	fovY   float64
	aspect float64
	near   float64
	far    float64

	minDistance float64
	maxDistance float64
	sensitivity float64
	zoomRate    float64

	dragging bool
	dragID   int
	lastX    float64
	lastY    float64
}

// NewOrbit returns a camera at distance from target on the +Z axis, looking
// down -Z with a square aspect ratio.
func NewOrbit(target geom.Vec3, distance float64) *Orbit {
	return &Orbit{
		target:      target,
		distance:    distance,
		fovY:        DefaultFovY,
		aspect:      1,
		near:        DefaultNear,
		far:         DefaultFar,
		minDistance: DefaultNear * 2,
		maxDistance: DefaultFar / 2,
		sensitivity: DefaultSensitivity,
		zoomRate:    DefaultZoomRate,
	}
}

// Attach subscribes the camera to pointer and scroll events. Either source
// may be nil.
func (o *Orbit) Attach(pointer gpucontext.PointerEventSource, scroll gpucontext.ScrollEventSource) {
	if pointer != nil {
		pointer.OnPointer(o.HandlePointer)
	}
	if scroll != nil {
		scroll.OnScrollEvent(o.HandleScroll)
	}
	geom.Logger().Debug("camera: orbit attached", "pointer", pointer != nil, "scroll", scroll != nil)
}

// HandlePointer applies a pointer event. A left-button drag rotates the
// camera: horizontal motion changes yaw, vertical motion changes pitch.
func (o *Orbit) HandlePointer(ev gpucontext.PointerEvent) {
	o.mu.Lock()
	defer o.mu.Unlock()

	switch ev.Type {
	case gpucontext.PointerDown:
		if !ev.Buttons.HasLeft() || o.dragging {
			return
		}
		o.dragging = true
		o.dragID = ev.PointerID
		o.lastX, o.lastY = ev.X, ev.Y

	case gpucontext.PointerMove:
		if !o.dragging || ev.PointerID != o.dragID {
			return
		}
		dx, dy := ev.DeltaX, ev.DeltaY
		if dx == 0 && dy == 0 {
			dx, dy = ev.X-o.lastX, ev.Y-o.lastY
		}
		o.lastX, o.lastY = ev.X, ev.Y
		o.rotate(-dx*o.sensitivity, -dy*o.sensitivity)

	case gpucontext.PointerUp, gpucontext.PointerCancel:
		if ev.PointerID == o.dragID {
			o.dragging = false
		}
	}
}

// HandleScroll applies a scroll event. Scrolling down (positive DeltaY)
// moves the eye away from the target.
func (o *Orbit) HandleScroll(ev gpucontext.ScrollEvent) {
	dy := ev.DeltaY
	switch ev.DeltaMode {
	case gpucontext.ScrollDeltaLine:
		dy *= linePixels
	case gpucontext.ScrollDeltaPage:
		dy *= pagePixels
	}

	o.mu.Lock()
	defer o.mu.Unlock()
	o.distance = geom.Clamp(o.distance*math.Exp(dy*o.zoomRate), o.minDistance, o.maxDistance)
}

// Rotate adds to the camera's yaw and pitch, in radians. Pitch is clamped to
// [-MaxPitch, MaxPitch].
func (o *Orbit) Rotate(dyaw, dpitch float64) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.rotate(dyaw, dpitch)
}

func (o *Orbit) rotate(dyaw, dpitch float64) {
	o.yaw = math.Remainder(o.yaw+dyaw, 2*math.Pi)
	o.pitch = geom.Clamp(o.pitch+dpitch, -MaxPitch, MaxPitch)
}

// SetAspect sets the width/height ratio used by Projection, typically on
// window resize. Non-positive sizes are ignored.
func (o *Orbit) SetAspect(width, height float64) {
	if width <= 0 || height <= 0 {
		return
	}
	o.mu.Lock()
	o.aspect = width / height
	o.mu.Unlock()
}

// SetClip sets the vertical field of view (radians) and clip planes.
func (o *Orbit) SetClip(fovY, near, far float64) {
	o.mu.Lock()
	o.fovY, o.near, o.far = fovY, near, far
	o.mu.Unlock()
}

// SetDistanceLimits bounds the zoom range.
func (o *Orbit) SetDistanceLimits(lo, hi float64) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.minDistance, o.maxDistance = lo, hi
	o.distance = geom.Clamp(o.distance, lo, hi)
}

// SetSensitivity sets the drag rotation in radians per pixel.
func (o *Orbit) SetSensitivity(radPerPixel float64) {
	o.mu.Lock()
	o.sensitivity = radPerPixel
	o.mu.Unlock()
}

// Orientation returns the camera rotation Ry(yaw) * Rx(pitch).
func (o *Orbit) Orientation() geom.Quat {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.orientation()
}

func (o *Orbit) orientation() geom.Quat {
	return geom.QuatFromEuler(o.yaw, o.pitch, 0)
}

// Angles returns the current yaw and pitch in radians.
func (o *Orbit) Angles() (yaw, pitch float64) {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.yaw, o.pitch
}

// Distance returns the distance from the eye to the target.
func (o *Orbit) Distance() float64 {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.distance
}

// Eye returns the camera position in world space.
func (o *Orbit) Eye() geom.Vec3 {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.eye(o.orientation())
}

func (o *Orbit) eye(q geom.Quat) geom.Vec3 {
	return o.target.Add(q.Rotate(geom.V3(0, 0, o.distance)))
}

// View returns the world-to-view matrix. The up vector is the rotated +Y
// axis, which is never parallel to the view direction.
func (o *Orbit) View() geom.Mat4 {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.view()
}

func (o *Orbit) view() geom.Mat4 {
	q := o.orientation()
	return geom.LookAt(o.eye(q), o.target, q.Rotate(geom.UnitY))
}

// Projection returns the perspective projection with depth in [0, 1].
func (o *Orbit) Projection() geom.Mat4 {
	o.mu.Lock()
	defer o.mu.Unlock()
	return geom.Perspective(o.fovY, o.aspect, o.near, o.far)
}

// ViewProjection returns Projection * View.
func (o *Orbit) ViewProjection() geom.Mat4 {
	o.mu.Lock()
	defer o.mu.Unlock()
	return geom.Perspective(o.fovY, o.aspect, o.near, o.far).Mul(o.view())
}

// Project maps a world-space point to viewport pixels (y down) and depth.
func (o *Orbit) Project(p geom.Vec3, width, height float64) geom.Vec3 {
	clip := o.ViewProjection().MulVec(p.Vec4(1))
	return geom.Viewport(geom.PerspectiveDivide(clip), width, height)
}
