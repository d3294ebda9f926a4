// prism - Phong ray tracer
// Render builtin or glTF scenes to PPM/PNG files, or orbit them live in the
// terminal.
//
// Usage:
//
//	prism render [scene] --width 800 --height 400 --out scene.png
//	prism view [scene]
//	prism scenes
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/fang"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/taigrr/prism/pkg/scene"
)

const defaultScene = "three-spheres"

func main() {
	os.Exit(run())
}

func run() int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "prism",
	})

	if err := fang.Execute(ctx, newRootCmd(logger)); err != nil {
		return 1
	}
	return 0
}

func newRootCmd(logger *log.Logger) *cobra.Command {
	var debug bool

	root := &cobra.Command{
		Use:   "prism",
		Short: "A Phong ray tracer for image files and the terminal",
		PersistentPreRun: func(*cobra.Command, []string) {
			if debug {
				logger.SetLevel(log.DebugLevel)
			}
		},
		SilenceUsage: true,
	}
	root.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")

	root.AddCommand(
		newRenderCmd(logger),
		newViewCmd(logger),
		newScenesCmd(),
	)
	return root
}

// sceneFlags selects a scene by builtin name or glTF file.
type sceneFlags struct {
	gltf string
}

func (f *sceneFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.gltf, "gltf", "", "load the scene from a .gltf or .glb file")
}

func (f *sceneFlags) load(args []string) (*scene.Scene, error) {
	if f.gltf != "" {
		if len(args) > 0 {
			return nil, fmt.Errorf("scene name %q given together with --gltf", args[0])
		}
		return scene.LoadGLTF(f.gltf)
	}

	name := defaultScene
	if len(args) > 0 {
		name = args[0]
	}
	return scene.Lookup(name)
}

func newScenesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "scenes",
		Short: "List builtin scenes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()
			for _, name := range scene.Names() {
				if _, err := fmt.Fprintf(out, "%-14s %s\n", name, scene.Describe(name)); err != nil {
					return err
				}
			}
			return nil
		},
	}
}
