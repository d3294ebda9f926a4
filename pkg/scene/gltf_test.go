package scene

import (
	"errors"
	"math"
	"path/filepath"
	"testing"

	"github.com/qmuntal/gltf"

	"github.com/taigrr/prism/pkg/geometry"
	"github.com/taigrr/prism/pkg/math3d"
)

// node returns a glTF node with identity TRS.
func node(name string) *gltf.Node {
	return &gltf.Node{
		Name:     name,
		Rotation: [4]float64{0, 0, 0, 1},
		Scale:    [3]float64{1, 1, 1},
	}
}

func testDocument() *gltf.Document {
	ball := node("ball")
	ball.Mesh = gltf.Index(0)
	ball.Translation = [3]float64{0, 1, 0}

	group := node("group")
	group.Scale = [3]float64{2, 2, 2}
	group.Children = []int{2}

	child := node("child")
	child.Mesh = gltf.Index(0)
	child.Translation = [3]float64{1, 0, 0}
	child.Extras = map[string]any{"shadow": false}

	ground := node("ground")
	ground.Mesh = gltf.Index(1)

	lamp := node("lamp")
	lamp.Translation = [3]float64{-10, 10, -10}
	lamp.Extras = map[string]any{"light": []any{1.0, 0.5, 0.5}}

	cam := node("cam")
	cam.Camera = gltf.Index(0)
	cam.Translation = [3]float64{0, 0, 5}

	decor := node("decor")
	decor.Mesh = gltf.Index(2)

	return &gltf.Document{
		Asset:  gltf.Asset{Version: "2.0"},
		Scene:  gltf.Index(0),
		Scenes: []*gltf.Scene{{Nodes: []int{0, 1, 3, 4, 5, 6}}},
		Nodes:  []*gltf.Node{ball, group, child, ground, lamp, cam, decor},
		Meshes: []*gltf.Mesh{
			{Name: "Sphere", Primitives: []*gltf.Primitive{{Material: gltf.Index(0)}}},
			{Name: "ground", Extras: map[string]any{"shape": "plane"}},
			{Name: "Cube"},
		},
		Materials: []*gltf.Material{{
			Name: "red",
			PBRMetallicRoughness: &gltf.PBRMetallicRoughness{
				BaseColorFactor: &[4]float64{1, 0, 0, 1},
				MetallicFactor:  gltf.Float(0),
				RoughnessFactor: gltf.Float(0.5),
			},
		}},
		Cameras: []*gltf.Camera{{
			Perspective: &gltf.Perspective{Yfov: math.Pi / 3, Znear: 0.1},
		}},
	}
}

func TestGLTFLoaderCreation(t *testing.T) {
	loader := NewGLTFLoader()
	if loader == nil {
		t.Fatal("NewGLTFLoader returned nil")
	}
	if loader.DefaultLight == nil {
		t.Error("DefaultLight should be set")
	}
	if loader.DefaultView.FOV != DefaultView().FOV {
		t.Errorf("DefaultView = %+v", loader.DefaultView)
	}
}

func TestGLTFConvert(t *testing.T) {
	s, err := NewGLTFLoader().Convert(testDocument(), "test")
	if err != nil {
		t.Fatalf("Convert: %v", err)
	}
	if s.Name != "test" {
		t.Errorf("Name = %q", s.Name)
	}

	w := s.World
	if len(w.Shapes) != 3 {
		t.Fatalf("got %d shapes, want 3 (cube mesh ignored)", len(w.Shapes))
	}

	t.Run("shapes", func(t *testing.T) {
		ball, child, ground := w.Shape(0), w.Shape(1), w.Shape(2)

		if ball.Kind != geometry.KindSphere || ball.Name != "ball" {
			t.Errorf("ball = %s %q", ball.Kind, ball.Name)
		}
		if !ball.Transform().Equal(math3d.Translation(0, 1, 0)) {
			t.Errorf("ball transform = %v", ball.Transform())
		}
		if ball.NoShadow {
			t.Error("ball should cast shadows")
		}

		if child.Kind != geometry.KindSphere || !child.NoShadow {
			t.Errorf("child = %s NoShadow=%v", child.Kind, child.NoShadow)
		}
		want := math3d.Scaling(2, 2, 2).Mul(math3d.Translation(1, 0, 0))
		if !child.Transform().Equal(want) {
			t.Errorf("child transform = %v, want %v", child.Transform(), want)
		}

		if ground.Kind != geometry.KindPlane {
			t.Errorf("ground kind = %s", ground.Kind)
		}
	})

	t.Run("materials", func(t *testing.T) {
		m := w.Shape(0).Material
		if !m.Color.Equal(math3d.RGB(1, 0, 0)) {
			t.Errorf("color = %v", m.Color)
		}
		if !math3d.ApproxEqual(m.Specular, 0.2) {
			t.Errorf("specular = %v, want 0.2", m.Specular)
		}
		if !math3d.ApproxEqual(m.Shininess, 82.5) {
			t.Errorf("shininess = %v, want 82.5", m.Shininess)
		}
		if err := m.Validate(); err != nil {
			t.Errorf("Validate: %v", err)
		}
	})

	t.Run("light", func(t *testing.T) {
		if w.Light == nil {
			t.Fatal("expected a light")
		}
		if !w.Light.Position.Equal(math3d.Point(-10, 10, -10)) {
			t.Errorf("position = %v", w.Light.Position)
		}
		if !w.Light.Intensity.Equal(math3d.RGB(1, 0.5, 0.5)) {
			t.Errorf("intensity = %v", w.Light.Intensity)
		}
	})

	t.Run("view", func(t *testing.T) {
		want := math3d.Scaling(-1, 1, 1).Mul(math3d.Translation(0, 0, -5))
		if !s.View.Transform.Equal(want) {
			t.Errorf("view = %v, want %v", s.View.Transform, want)
		}
		if !math3d.ApproxEqual(s.View.FOV, math.Pi/3) || !s.View.Vertical {
			t.Errorf("FOV = %v vertical=%v, want yfov π/3", s.View.FOV, s.View.Vertical)
		}
	})

	t.Run("child hit", func(t *testing.T) {
		// The child sphere sits at x=2 with radius 2
		r := geometry.NewRay(math3d.Point(2, 10, 0), math3d.Vector(0, -1, 0))
		hit, ok := w.Intersect(r).Hit()
		if !ok || hit.Object != 1 || !math3d.ApproxEqual(hit.T, 8) {
			t.Errorf("hit = %+v, %v", hit, ok)
		}
	})
}

func TestGLTFConvertDefaults(t *testing.T) {
	doc := testDocument()
	doc.Scenes[0].Nodes = []int{0}

	loader := NewGLTFLoader()
	s, err := loader.Convert(doc, "bare")
	if err != nil {
		t.Fatalf("Convert: %v", err)
	}
	if s.World.Light == nil || !s.World.Light.Position.Equal(loader.DefaultLight.Position) {
		t.Errorf("light = %+v, want loader default", s.World.Light)
	}
	if !s.View.Transform.Equal(loader.DefaultView.Transform) {
		t.Errorf("view = %v, want loader default", s.View.Transform)
	}

	loader.DefaultLight = nil
	s, err = loader.Convert(doc, "dark")
	if err != nil {
		t.Fatalf("Convert: %v", err)
	}
	if s.World.Light != nil {
		t.Errorf("light = %+v, want none", s.World.Light)
	}
}

func TestGLTFConvertMatrixNode(t *testing.T) {
	n := node("ball")
	n.Mesh = gltf.Index(0)
	n.Matrix = [16]float64(math3d.Translation(3, 0, 0).Mul(math3d.Scaling(2, 2, 2)))

	doc := &gltf.Document{
		Nodes:  []*gltf.Node{n},
		Meshes: []*gltf.Mesh{{Name: "sphere"}},
	}

	// No scenes: every parentless node is a root
	s, err := NewGLTFLoader().Convert(doc, "matrix")
	if err != nil {
		t.Fatalf("Convert: %v", err)
	}
	want := math3d.Translation(3, 0, 0).Mul(math3d.Scaling(2, 2, 2))
	if got := s.World.Shape(0).Transform(); !got.Equal(want) {
		t.Errorf("transform = %v, want %v", got, want)
	}
}

func TestGLTFConvertErrors(t *testing.T) {
	t.Run("no shapes", func(t *testing.T) {
		doc := testDocument()
		doc.Scenes[0].Nodes = []int{4, 5, 6}
		if _, err := NewGLTFLoader().Convert(doc, "empty"); !errors.Is(err, ErrNoShapes) {
			t.Errorf("Convert = %v, want ErrNoShapes", err)
		}
	})

	t.Run("singular node", func(t *testing.T) {
		doc := testDocument()
		doc.Nodes[0].Scale = [3]float64{1, 0, 1}
		if _, err := NewGLTFLoader().Convert(doc, "flat"); !errors.Is(err, math3d.ErrSingular) {
			t.Errorf("Convert = %v, want ErrSingular", err)
		}
	})

	t.Run("bad child index", func(t *testing.T) {
		doc := testDocument()
		doc.Nodes[1].Children = []int{42}
		if _, err := NewGLTFLoader().Convert(doc, "broken"); err == nil {
			t.Error("expected error for out of range child")
		}
	})

	t.Run("cycle", func(t *testing.T) {
		doc := testDocument()
		doc.Nodes[2].Children = []int{1}
		if _, err := NewGLTFLoader().Convert(doc, "loop"); err == nil {
			t.Error("expected error for cyclic hierarchy")
		}
	})
}

func TestLoadGLTFInvalidPath(t *testing.T) {
	if _, err := LoadGLTF("/nonexistent/path.glb"); err == nil {
		t.Error("expected error for nonexistent file")
	}
}

func TestLoadGLTFRoundTrip(t *testing.T) {
	ball := node("ball")
	ball.Mesh = gltf.Index(0)
	ball.Translation = [3]float64{0, 0, 1}

	lamp := node("lamp")
	lamp.Translation = [3]float64{0, 5, -5}
	lamp.Extras = map[string]any{"light": []any{0.5, 0.5, 0.5}}

	doc := &gltf.Document{
		Asset:  gltf.Asset{Version: "2.0"},
		Scene:  gltf.Index(0),
		Scenes: []*gltf.Scene{{Nodes: []int{0, 1}}},
		Nodes:  []*gltf.Node{ball, lamp},
		Meshes: []*gltf.Mesh{{Name: "sphere"}},
	}

	path := filepath.Join(t.TempDir(), "ball.gltf")
	if err := gltf.Save(doc, path); err != nil {
		t.Fatalf("Save: %v", err)
	}

	s, err := LoadGLTF(path)
	if err != nil {
		t.Fatalf("LoadGLTF: %v", err)
	}
	if s.Name != "ball" {
		t.Errorf("Name = %q, want ball", s.Name)
	}
	if len(s.World.Shapes) != 1 || !s.World.Shape(0).Transform().Equal(math3d.Translation(0, 0, 1)) {
		t.Fatalf("shapes = %+v", s.World.Shapes)
	}
	if s.World.Light == nil || !s.World.Light.Intensity.Equal(math3d.RGB(0.5, 0.5, 0.5)) {
		t.Errorf("light = %+v", s.World.Light)
	}
	if !s.World.Light.Position.Equal(math3d.Point(0, 5, -5)) {
		t.Errorf("light position = %v", s.World.Light.Position)
	}
}
