package scene

import (
	"errors"
	"fmt"
	"math"
	"slices"
	"sync"

	"github.com/taigrr/prism/pkg/geometry"
	"github.com/taigrr/prism/pkg/math3d"
	"github.com/taigrr/prism/pkg/shading"
)

var (
	// ErrUnknownScene is returned by Lookup for names nobody registered.
	ErrUnknownScene = errors.New("unknown scene")
	// ErrNoShapes is returned when an imported document holds nothing to trace.
	ErrNoShapes = errors.New("scene has no shapes")
)

// View is where the camera sits: a view transform plus a field of view in
// radians. FOV spans the wider canvas side unless Vertical is set, in which
// case it spans the canvas height the way glTF's yfov does.
type View struct {
	Transform math3d.Mat4
	FOV       float64
	Vertical  bool
}

// CameraFOV returns the field of view across the wider side of an
// hsize by vsize canvas.
func (v View) CameraFOV(hsize, vsize int) float64 {
	if !v.Vertical || hsize <= vsize || vsize <= 0 {
		return v.FOV
	}
	aspect := float64(hsize) / float64(vsize)
	return 2 * math.Atan(math.Tan(v.FOV/2)*aspect)
}

// DefaultView looks at the origin from slightly above and five units back.
func DefaultView() View {
	return View{
		Transform: math3d.ViewTransform(math3d.Point(0, 1.5, -5), math3d.Point(0, 1, 0), math3d.Up()),
		FOV:       math.Pi / 3,
	}
}

// Scene is a named world together with the view it is meant to be seen from.
type Scene struct {
	Name        string
	Description string
	World       *World
	View        View
}

// Builder constructs a fresh scene. Builders are called once per Lookup so
// callers may mutate the result.
type Builder func() (*Scene, error)

type entry struct {
	description string
	build       Builder
}

var (
	registryMu sync.RWMutex
	registry   = map[string]entry{}
)

// Register adds a named scene builder, replacing any earlier one.
func Register(name, description string, build Builder) {
	registryMu.Lock()
	defer registryMu.Unlock()
	registry[name] = entry{description: description, build: build}
}

// Lookup builds the scene registered under name.
func Lookup(name string) (*Scene, error) {
	registryMu.RLock()
	e, ok := registry[name]
	registryMu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownScene, name)
	}

	s, err := e.build()
	if err != nil {
		return nil, fmt.Errorf("build scene %q: %w", name, err)
	}
	s.Name = name
	s.Description = e.description
	return s, nil
}

// Names lists registered scenes in sorted order.
func Names() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Describe returns the one-line description of a registered scene.
func Describe(name string) string {
	registryMu.RLock()
	defer registryMu.RUnlock()
	return registry[name].description
}

func init() {
	Register("default", "two concentric spheres lit from the upper left", defaultScene)
	Register("red-sphere", "a single red unit sphere straight ahead", redSphereScene)
	Register("three-spheres", "three spheres resting on a floor plane", threeSpheresScene)
	Register("patterns", "striped, ringed and checkered surfaces", patternsScene)
}

func defaultScene() (*Scene, error) {
	return &Scene{
		World: DefaultWorld(),
		View: View{
			Transform: math3d.ViewTransform(math3d.Point(0, 0, -5), math3d.Origin(), math3d.Up()),
			FOV:       math.Pi / 2,
		},
	}, nil
}

func redSphereScene() (*Scene, error) {
	w := NewWorld()
	s := geometry.NewSphere()
	s.Name = "red"
	s.Material.Color = math3d.RGB(1, 0, 0)
	if _, err := w.Add(s); err != nil {
		return nil, err
	}
	w.SetLight(shading.NewPointLight(math3d.Point(-10, 10, -10), math3d.White()))

	return &Scene{
		World: w,
		View: View{
			Transform: math3d.ViewTransform(math3d.Point(0, 0, -5), math3d.Origin(), math3d.Up()),
			FOV:       math.Pi / 2,
		},
	}, nil
}

// placed builds a shape, names it and applies m.
func placed(kind geometry.Kind, name string, m math3d.Mat4) (geometry.Shape, error) {
	s := geometry.NewShape(kind)
	s.Name = name
	if err := s.SetTransform(m); err != nil {
		return s, fmt.Errorf("place %s: %w", name, err)
	}
	return s, nil
}

func threeSpheresScene() (*Scene, error) {
	w := NewWorld()

	floor := geometry.NewPlane()
	floor.Name = "floor"
	floor.Material.Color = math3d.RGB(1, 0.9, 0.9)
	floor.Material.Specular = 0

	middle, err := placed(geometry.KindSphere, "middle", math3d.Translation(-0.5, 1, 0.5))
	if err != nil {
		return nil, err
	}
	middle.Material.Color = math3d.RGB(0.1, 1, 0.5)
	middle.Material.Diffuse = 0.7
	middle.Material.Specular = 0.3

	right, err := placed(geometry.KindSphere, "right",
		math3d.Scaling(0.5, 0.5, 0.5).Translate(1.5, 0.5, -0.5))
	if err != nil {
		return nil, err
	}
	right.Material.Color = math3d.RGB(0.5, 1, 0.1)
	right.Material.Diffuse = 0.7
	right.Material.Specular = 0.3

	left, err := placed(geometry.KindSphere, "left",
		math3d.Scaling(0.33, 0.33, 0.33).Translate(-1.5, 0.33, -0.75))
	if err != nil {
		return nil, err
	}
	left.Material.Color = math3d.RGB(1, 0.8, 0.1)
	left.Material.Diffuse = 0.7
	left.Material.Specular = 0.3

	for _, s := range []geometry.Shape{floor, middle, right, left} {
		if _, err := w.Add(s); err != nil {
			return nil, err
		}
	}
	w.SetLight(shading.NewPointLight(math3d.Point(-10, 10, -10), math3d.White()))

	return &Scene{World: w, View: DefaultView()}, nil
}

func patternsScene() (*Scene, error) {
	w := NewWorld()

	floor := geometry.NewPlane()
	floor.Name = "floor"
	floor.Material.Specular = 0
	floor.Material.Pattern = shading.NewPattern(shading.PatternChecker,
		math3d.RGB(0.9, 0.9, 0.9), math3d.RGB(0.2, 0.2, 0.25))
	// Keep hits on y=0 from straddling a checker boundary
	if err := floor.Material.Pattern.SetTransform(math3d.Translation(0, 0.01, 0)); err != nil {
		return nil, err
	}

	wall, err := placed(geometry.KindPlane, "wall",
		math3d.RotationX(math.Pi/2).Translate(0, 0, 5))
	if err != nil {
		return nil, err
	}
	wall.Material.Specular = 0
	wall.Material.Pattern = shading.NewPattern(shading.PatternStripe,
		math3d.RGB(0.6, 0.3, 0.3), math3d.RGB(0.9, 0.8, 0.7))
	if err := wall.Material.Pattern.SetTransform(math3d.RotationY(math.Pi / 4).Scale(0.5, 0.5, 0.5)); err != nil {
		return nil, err
	}

	ringed, err := placed(geometry.KindSphere, "ringed", math3d.Translation(-0.6, 1, 0.5))
	if err != nil {
		return nil, err
	}
	ringed.Material.Pattern = shading.NewPattern(shading.PatternRing,
		math3d.RGB(0.2, 0.4, 1), math3d.RGB(1, 1, 1))
	if err := ringed.Material.Pattern.SetTransform(math3d.Scaling(0.2, 0.2, 0.2).RotateX(math.Pi / 3)); err != nil {
		return nil, err
	}

	graded, err := placed(geometry.KindSphere, "graded",
		math3d.Scaling(0.6, 0.6, 0.6).Translate(1.3, 0.6, -0.4))
	if err != nil {
		return nil, err
	}
	graded.Material.Pattern = shading.NewPattern(shading.PatternGradient,
		math3d.RGB(1, 0.2, 0.1), math3d.RGB(0.1, 0.2, 1))
	if err := graded.Material.Pattern.SetTransform(math3d.Scaling(2, 2, 2).Translate(-1, 0, 0)); err != nil {
		return nil, err
	}

	for _, s := range []geometry.Shape{floor, wall, ringed, graded} {
		if _, err := w.Add(s); err != nil {
			return nil, err
		}
	}
	w.SetLight(shading.NewPointLight(math3d.Point(-8, 10, -10), math3d.White()))

	return &Scene{World: w, View: DefaultView()}, nil
}
