package scene

import (
	"fmt"
	"math"
	"path/filepath"
	"strings"

	"github.com/qmuntal/gltf"

	"github.com/taigrr/prism/pkg/geometry"
	"github.com/taigrr/prism/pkg/math3d"
	"github.com/taigrr/prism/pkg/shading"
)

// GLTFLoader turns a glTF document into a Scene. Only nodes that name a
// primitive (through the mesh name or extras.shape) are imported; vertex
// data is ignored.
type GLTFLoader struct {
	// Options
	DefaultLight *shading.PointLight // Used when no node carries extras.light
	DefaultView  View                // Used when the document has no camera
}

// NewGLTFLoader creates a loader that falls back to a white light at
// (-10, 10, -10) and DefaultView.
func NewGLTFLoader() *GLTFLoader {
	light := shading.NewPointLight(math3d.Point(-10, 10, -10), math3d.White())
	return &GLTFLoader{
		DefaultLight: &light,
		DefaultView:  DefaultView(),
	}
}

// LoadGLTF loads a .gltf or .glb file with the default loader.
func LoadGLTF(path string) (*Scene, error) {
	return NewGLTFLoader().Load(path)
}

// Load opens path and converts the document.
func (l *GLTFLoader) Load(path string) (*Scene, error) {
	doc, err := gltf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open gltf: %w", err)
	}

	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	return l.Convert(doc, name)
}

// gltfState accumulates what the node walk finds.
type gltfState struct {
	world  *World
	light  *shading.PointLight
	view   *View
	seen   map[int]bool
	loader *GLTFLoader
}

// Convert walks the document's default scene and builds a Scene.
func (l *GLTFLoader) Convert(doc *gltf.Document, name string) (*Scene, error) {
	st := &gltfState{
		world:  NewWorld(),
		seen:   make(map[int]bool),
		loader: l,
	}

	for _, idx := range rootNodes(doc) {
		if err := st.walk(doc, idx, math3d.Identity()); err != nil {
			return nil, err
		}
	}

	if len(st.world.Shapes) == 0 {
		return nil, fmt.Errorf("convert %q: %w", name, ErrNoShapes)
	}

	switch {
	case st.light != nil:
		st.world.SetLight(*st.light)
	case l.DefaultLight != nil:
		st.world.SetLight(*l.DefaultLight)
	}

	view := l.DefaultView
	if st.view != nil {
		view = *st.view
	}

	return &Scene{
		Name:  name,
		World: st.world,
		View:  view,
	}, nil
}

// rootNodes returns the nodes of the document's active scene, falling back
// to the first scene and then to every node no other node claims as a child.
func rootNodes(doc *gltf.Document) []int {
	if doc.Scene != nil && *doc.Scene < len(doc.Scenes) {
		return doc.Scenes[*doc.Scene].Nodes
	}
	if len(doc.Scenes) > 0 {
		return doc.Scenes[0].Nodes
	}

	child := make(map[int]bool)
	for _, n := range doc.Nodes {
		for _, c := range n.Children {
			child[c] = true
		}
	}
	var roots []int
	for i := range doc.Nodes {
		if !child[i] {
			roots = append(roots, i)
		}
	}
	return roots
}

func (st *gltfState) walk(doc *gltf.Document, idx int, parent math3d.Mat4) error {
	if idx < 0 || idx >= len(doc.Nodes) {
		return fmt.Errorf("node index %d out of range", idx)
	}
	// Guard against cyclic child lists in malformed files
	if st.seen[idx] {
		return fmt.Errorf("node %d visited twice", idx)
	}
	st.seen[idx] = true

	node := doc.Nodes[idx]
	world := parent.Mul(nodeMatrix(node))
	extras := extrasMap(node.Extras)

	if kind, ok := nodeKind(doc, node, extras); ok {
		if err := st.addShape(doc, node, kind, world, extras); err != nil {
			return fmt.Errorf("node %d %q: %w", idx, node.Name, err)
		}
	}

	if intensity, ok := lightIntensity(extras); ok && st.light == nil {
		light := shading.NewPointLight(world.MulTuple(math3d.Origin()), intensity)
		st.light = &light
	}

	if node.Camera != nil && st.view == nil {
		view, err := cameraView(doc, *node.Camera, world)
		if err != nil {
			return fmt.Errorf("node %d %q: %w", idx, node.Name, err)
		}
		if view != nil {
			st.view = view
		}
	}

	for _, c := range node.Children {
		if err := st.walk(doc, c, world); err != nil {
			return err
		}
	}
	return nil
}

func (st *gltfState) addShape(doc *gltf.Document, node *gltf.Node, kind geometry.Kind, world math3d.Mat4, extras map[string]any) error {
	s := geometry.NewShape(kind)
	s.Name = node.Name
	if err := s.SetTransform(world); err != nil {
		return err
	}
	if shadow, ok := extras["shadow"].(bool); ok {
		s.NoShadow = !shadow
	}
	if m := nodeMaterial(doc, node); m != nil {
		s.Material = convertMaterial(m)
	}
	_, err := st.world.Add(s)
	return err
}

// nodeMatrix returns the node's local transform. An explicit matrix wins over
// TRS; glTF stores matrices column-major, matching Mat4.
func nodeMatrix(n *gltf.Node) math3d.Mat4 {
	if m := math3d.Mat4(n.MatrixOrDefault()); m != math3d.Identity() {
		return m
	}

	t, r, s := n.TranslationOrDefault(), n.RotationOrDefault(), n.ScaleOrDefault()

	return math3d.Translation(t[0], t[1], t[2]).
		Mul(math3d.Rotation(r[0], r[1], r[2], r[3])).
		Mul(math3d.Scaling(s[0], s[1], s[2]))
}

// nodeKind decides whether a node is a primitive: extras.shape on the node,
// then on its mesh, then the mesh name.
func nodeKind(doc *gltf.Document, node *gltf.Node, extras map[string]any) (geometry.Kind, bool) {
	if name, ok := extras["shape"].(string); ok {
		if k, err := geometry.ParseKind(strings.ToLower(name)); err == nil {
			return k, true
		}
	}
	if node.Mesh == nil || *node.Mesh >= len(doc.Meshes) {
		return 0, false
	}

	mesh := doc.Meshes[*node.Mesh]
	if name, ok := extrasMap(mesh.Extras)["shape"].(string); ok {
		if k, err := geometry.ParseKind(strings.ToLower(name)); err == nil {
			return k, true
		}
	}

	name := strings.ToLower(mesh.Name)
	switch {
	case strings.Contains(name, "sphere"):
		return geometry.KindSphere, true
	case strings.Contains(name, "plane"):
		return geometry.KindPlane, true
	}
	return 0, false
}

func nodeMaterial(doc *gltf.Document, node *gltf.Node) *gltf.Material {
	if node.Mesh == nil || *node.Mesh >= len(doc.Meshes) {
		return nil
	}
	for _, prim := range doc.Meshes[*node.Mesh].Primitives {
		if prim.Material != nil && *prim.Material < len(doc.Materials) {
			return doc.Materials[*prim.Material]
		}
	}
	return nil
}

// convertMaterial maps metallic-roughness parameters onto Phong: base color
// becomes the surface color, metallic drives the specular weight and
// roughness widens the highlight.
func convertMaterial(gm *gltf.Material) shading.Material {
	m := shading.DefaultMaterial()
	pbr := gm.PBRMetallicRoughness
	if pbr == nil {
		return m
	}

	base := pbr.BaseColorFactorOrDefault()
	m.Color = math3d.RGB(base[0], base[1], base[2])

	metallic := clamp01(pbr.MetallicFactorOrDefault())
	roughness := clamp01(pbr.RoughnessFactorOrDefault())
	m.Specular = 0.2 + 0.7*metallic
	smooth := 1 - roughness
	m.Shininess = 10 + 290*smooth*smooth
	return m
}

func cameraView(doc *gltf.Document, idx int, world math3d.Mat4) (*View, error) {
	if idx < 0 || idx >= len(doc.Cameras) {
		return nil, fmt.Errorf("camera index %d out of range", idx)
	}
	cam := doc.Cameras[idx]
	if cam.Perspective == nil {
		return nil, nil
	}

	inv, err := world.Inverse()
	if err != nil {
		return nil, fmt.Errorf("camera transform: %w", err)
	}

	fov := cam.Perspective.Yfov
	if fov <= 0 || fov >= math.Pi {
		fov = math.Pi / 3
	}
	// glTF is right-handed while camera space here is left-handed
	return &View{Transform: math3d.Scaling(-1, 1, 1).Mul(inv), FOV: fov, Vertical: true}, nil
}

// lightIntensity reads extras.light as an [r, g, b] intensity.
func lightIntensity(extras map[string]any) (math3d.Color, bool) {
	switch v := extras["light"].(type) {
	case []any:
		if len(v) < 3 {
			return math3d.Color{}, false
		}
		var rgb [3]float64
		for i := range rgb {
			f, ok := v[i].(float64)
			if !ok {
				return math3d.Color{}, false
			}
			rgb[i] = f
		}
		return math3d.RGB(rgb[0], rgb[1], rgb[2]), true
	case []float64:
		if len(v) < 3 {
			return math3d.Color{}, false
		}
		return math3d.RGB(v[0], v[1], v[2]), true
	}
	return math3d.Color{}, false
}

func extrasMap(extras any) map[string]any {
	m, _ := extras.(map[string]any)
	return m
}

func clamp01(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}
