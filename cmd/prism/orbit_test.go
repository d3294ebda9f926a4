package main

import (
	"math"
	"testing"

	"github.com/taigrr/prism/pkg/math3d"
	"github.com/taigrr/prism/pkg/scene"
)

func TestAxisDecays(t *testing.T) {
	a := NewAxis(60)
	a.Velocity = 0.1

	for range 600 {
		a.Update()
	}
	if a.Moving() {
		t.Errorf("velocity = %v after 10s, want near 0", a.Velocity)
	}
	if a.Position <= 0.1 {
		t.Errorf("position = %v, want the axis to have coasted forward", a.Position)
	}
}

func TestOrbitStartsAtSceneView(t *testing.T) {
	tests := []struct {
		name string
		view scene.View
	}{
		{"default view", scene.DefaultView()},
		{"straight ahead", scene.View{
			Transform: math3d.ViewTransform(math3d.Point(0, 0, -5), math3d.Origin(), math3d.Up()),
			FOV:       math.Pi / 2,
		}},
		{"mirrored", scene.View{
			Transform: math3d.Scaling(-1, 1, 1).Mul(math3d.Translation(0, 0, -5)),
			FOV:       math.Pi / 3,
		}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			o := NewOrbit(tc.view, 30)
			if got := o.ViewTransform(); !got.Equal(tc.view.Transform) {
				t.Errorf("ViewTransform() = %v, want %v", got, tc.view.Transform)
			}
			if o.Moving() {
				t.Error("a fresh orbit should be at rest")
			}
		})
	}
}

func TestOrbitKeepsDistance(t *testing.T) {
	o := NewOrbit(scene.View{
		Transform: math3d.ViewTransform(math3d.Point(0, 0, -5), math3d.Origin(), math3d.Up()),
		FOV:       math.Pi / 2,
	}, 30)

	o.Impulse(0.05, 0.1)
	for range 10 {
		o.Update()
	}
	if !o.Moving() {
		t.Fatal("orbit should still be moving after an impulse")
	}

	eye := o.Eye()
	if d := math3d.Vector(eye.X, eye.Y, eye.Z).Magnitude(); !math3d.ApproxEqual(d, 5) {
		t.Errorf("distance from target = %v, want 5", d)
	}
	if eye.Equal(math3d.Point(0, 0, -5)) {
		t.Error("eye should have moved")
	}

	o.Reset()
	if !o.Eye().Equal(math3d.Point(0, 0, -5)) {
		t.Errorf("after Reset eye = %v", o.Eye())
	}
}

func TestOrbitZoom(t *testing.T) {
	o := NewOrbit(scene.View{
		Transform: math3d.ViewTransform(math3d.Point(0, 0, -5), math3d.Origin(), math3d.Up()),
		FOV:       math.Pi / 2,
	}, 30)

	o.ZoomBy(0.5)
	for range 300 {
		o.Update()
	}
	if math.Abs(o.Zoom-0.5) > 1e-2 {
		t.Errorf("zoom = %v, want 0.5", o.Zoom)
	}

	for range 50 {
		o.ZoomBy(0.5)
	}
	if o.zoomTarget != minZoom {
		t.Errorf("zoom target = %v, want clamped to %v", o.zoomTarget, minZoom)
	}
}

func TestOrbitPitchIsClamped(t *testing.T) {
	o := NewOrbit(scene.DefaultView(), 30)
	o.Pitch.Position = 10

	eye := o.Eye()
	m := o.ViewTransform()
	if !m.IsInvertible() {
		t.Fatalf("view from %v should stay invertible", eye)
	}
}

func TestOrbitPitchStopsAtPole(t *testing.T) {
	o := NewOrbit(scene.View{
		Transform: math3d.ViewTransform(math3d.Point(0, 0, -5), math3d.Origin(), math3d.Up()),
		FOV:       math.Pi / 2,
	}, 30)

	o.Impulse(0.5, 0)
	for range 20 {
		o.Update()
	}
	if !math3d.ApproxEqual(o.Pitch.Position, maxPitch) {
		t.Errorf("pitch = %v, want held at %v", o.Pitch.Position, maxPitch)
	}
	if o.Moving() {
		t.Error("orbit should come to rest at the pole")
	}

	top := o.Eye()
	o.Impulse(-0.1, 0)
	o.Update()
	if eye := o.Eye(); eye.Y >= top.Y {
		t.Errorf("eye y = %v after reversing, want below %v", eye.Y, top.Y)
	}
}
