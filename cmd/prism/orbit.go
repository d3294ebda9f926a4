package main

import (
	"math"

	"github.com/charmbracelet/harmonica"

	"github.com/taigrr/prism/pkg/math3d"
	"github.com/taigrr/prism/pkg/scene"
)

// Axis tracks one orbit angle and its angular velocity. Velocity decays
// toward zero through a spring so a flick coasts to a stop.
type Axis struct {
	Position float64
	Velocity float64
	spring   harmonica.Spring
	accel    float64 // Spring velocity while easing Velocity toward 0
}

// NewAxis creates an axis updated fps times per second.
func NewAxis(fps int) Axis {
	return Axis{
		// Frequency 4, critically damped
		spring: harmonica.NewSpring(harmonica.FPS(fps), 4.0, 1.0),
	}
}

// Update advances the angle by one frame.
func (a *Axis) Update() {
	a.Position += a.Velocity
	a.Velocity, a.accel = a.spring.Update(a.Velocity, a.accel, 0)
}

// Moving reports whether the axis still has noticeable velocity.
func (a *Axis) Moving() bool {
	return math.Abs(a.Velocity) > 1e-4
}

const (
	maxPitch = math.Pi/2 - 0.05
	minZoom  = 0.2
	maxZoom  = 5.0
)

// Orbit moves a camera around a fixed target on a sphere, starting from the
// scene's own view.
type Orbit struct {
	Yaw, Pitch Axis
	Zoom       float64 // Radius multiplier

	zoomTarget float64
	zoomVel    float64
	zoomSpring harmonica.Spring

	target math3d.Tuple
	radius float64
	yaw0   float64
	pitch0 float64
	mirror bool
	fps    int
}

// NewOrbit derives the orbit center from view: the point on the line of
// sight closest to the world origin, at least one unit ahead of the eye.
func NewOrbit(view scene.View, fps int) *Orbit {
	inv, err := view.Transform.Inverse()
	if err != nil {
		inv = math3d.Identity()
	}

	eye := inv.MulTuple(math3d.Origin())
	forward := inv.MulTuple(math3d.Vector(0, 0, -1)).Normalize()
	dist := max(-math3d.Vector(eye.X, eye.Y, eye.Z).Dot(forward), 1)

	o := &Orbit{
		target: eye.Add(forward.Scale(dist)),
		radius: dist,
		mirror: view.Transform.Determinant() < 0,
		fps:    fps,
	}
	offset := eye.Sub(o.target)
	o.yaw0 = math.Atan2(offset.X, offset.Z)
	o.pitch0 = math.Asin(math.Max(-1, math.Min(1, offset.Y/dist)))
	o.Reset()
	return o
}

// Reset returns to the starting view and stops all motion.
func (o *Orbit) Reset() {
	o.Yaw = NewAxis(o.fps)
	o.Pitch = NewAxis(o.fps)
	o.Zoom = 1
	o.zoomTarget = 1
	o.zoomVel = 0
	o.zoomSpring = harmonica.NewSpring(harmonica.FPS(o.fps), 6.0, 1.0)
}

// Impulse adds angular velocity in radians per frame.
func (o *Orbit) Impulse(pitch, yaw float64) {
	o.Pitch.Velocity += pitch
	o.Yaw.Velocity += yaw
}

// ZoomBy scales the target distance by f.
func (o *Orbit) ZoomBy(f float64) {
	o.zoomTarget = math.Max(minZoom, math.Min(maxZoom, o.zoomTarget*f))
}

// Update advances the orbit by one frame.
func (o *Orbit) Update() {
	o.Yaw.Update()
	o.Pitch.Update()

	// Pitch rests at the poles instead of winding past them
	lo, hi := -maxPitch-o.pitch0, maxPitch-o.pitch0
	if p := o.Pitch.Position; p < lo || p > hi {
		o.Pitch.Position = math.Max(lo, math.Min(hi, p))
		o.Pitch.Velocity, o.Pitch.accel = 0, 0
	}

	o.Zoom, o.zoomVel = o.zoomSpring.Update(o.Zoom, o.zoomVel, o.zoomTarget)
}

// Moving reports whether another frame would change the view.
func (o *Orbit) Moving() bool {
	return o.Yaw.Moving() || o.Pitch.Moving() || math.Abs(o.Zoom-o.zoomTarget) > 1e-3
}

// Eye returns the current camera position.
func (o *Orbit) Eye() math3d.Tuple {
	pitch := math.Max(-maxPitch, math.Min(maxPitch, o.pitch0+o.Pitch.Position))
	yaw := o.yaw0 + o.Yaw.Position
	r := o.radius * o.Zoom

	return o.target.Add(math3d.Vector(
		r*math.Cos(pitch)*math.Sin(yaw),
		r*math.Sin(pitch),
		r*math.Cos(pitch)*math.Cos(yaw),
	))
}

// ViewTransform returns the camera transform for the current orbit.
func (o *Orbit) ViewTransform() math3d.Mat4 {
	m := math3d.ViewTransform(o.Eye(), o.target, math3d.Up())
	if o.mirror {
		return math3d.Scaling(-1, 1, 1).Mul(m)
	}
	return m
}
