package main

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/taigrr/prism/pkg/render"
	"github.com/taigrr/prism/pkg/scene"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := newRootCmd(log.New(io.Discard))
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.ExecuteContext(context.Background())
	return out.String(), err
}

func TestScenesCommand(t *testing.T) {
	out, err := execute(t, "scenes")
	if err != nil {
		t.Fatalf("scenes: %v", err)
	}
	for _, name := range scene.Names() {
		if !strings.Contains(out, name) {
			t.Errorf("output missing %q:\n%s", name, out)
		}
	}
}

func TestRenderCommand(t *testing.T) {
	dir := t.TempDir()

	t.Run("ppm", func(t *testing.T) {
		path := filepath.Join(dir, "red.ppm")
		if _, err := execute(t, "render", "red-sphere", "--width", "20", "--height", "10", "--out", path); err != nil {
			t.Fatalf("render: %v", err)
		}
		data, err := os.ReadFile(path)
		if err != nil {
			t.Fatal(err)
		}
		if !strings.HasPrefix(string(data), "P3\n20 10\n255\n") {
			t.Errorf("unexpected header: %q", string(data[:min(len(data), 16)]))
		}
	})

	t.Run("png with workers", func(t *testing.T) {
		path := filepath.Join(dir, "default.png")
		if _, err := execute(t, "render", "--width", "16", "--height", "8", "-j", "2", "--fov", "1.2", "-o", path); err != nil {
			t.Fatalf("render: %v", err)
		}
		if _, err := os.Stat(path); err != nil {
			t.Errorf("output not written: %v", err)
		}
	})

	t.Run("unknown scene", func(t *testing.T) {
		_, err := execute(t, "render", "nope", "--out", filepath.Join(dir, "nope.png"))
		if !errors.Is(err, scene.ErrUnknownScene) {
			t.Errorf("err = %v, want ErrUnknownScene", err)
		}
	})

	t.Run("unknown format", func(t *testing.T) {
		_, err := execute(t, "render", "red-sphere", "--width", "4", "--height", "2", "--out", filepath.Join(dir, "out.gif"))
		if !errors.Is(err, render.ErrUnknownFormat) {
			t.Errorf("err = %v, want ErrUnknownFormat", err)
		}
	})

	t.Run("bad size", func(t *testing.T) {
		_, err := execute(t, "render", "--width", "0", "--out", filepath.Join(dir, "zero.png"))
		if !errors.Is(err, render.ErrInvalidCamera) {
			t.Errorf("err = %v, want ErrInvalidCamera", err)
		}
	})

	t.Run("scene name with gltf", func(t *testing.T) {
		if _, err := execute(t, "render", "default", "--gltf", "scene.glb"); err == nil {
			t.Error("expected error when both a scene name and --gltf are given")
		}
	})
}
