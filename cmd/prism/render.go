package main

import (
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/taigrr/prism/pkg/render"
)

type renderFlags struct {
	sceneFlags
	width   int
	height  int
	fov     float64
	out     string
	workers int
}

func newRenderCmd(logger *log.Logger) *cobra.Command {
	var f renderFlags

	cmd := &cobra.Command{
		Use:   "render [scene]",
		Short: "Render a scene to a .ppm or .png file",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(cmd, args, &f, logger)
		},
	}

	f.register(cmd)
	cmd.Flags().IntVarP(&f.width, "width", "W", 400, "image width in pixels")
	cmd.Flags().IntVarP(&f.height, "height", "H", 200, "image height in pixels")
	cmd.Flags().Float64Var(&f.fov, "fov", 0, "field of view in radians (0 uses the scene's)")
	cmd.Flags().StringVarP(&f.out, "out", "o", "render.png", "output file; the extension picks the format")
	cmd.Flags().IntVarP(&f.workers, "workers", "j", 0, "rows traced in parallel (0 uses all CPUs)")
	return cmd
}

func runRender(cmd *cobra.Command, args []string, f *renderFlags, logger *log.Logger) error {
	sc, err := f.load(args)
	if err != nil {
		return err
	}

	fov := sc.View.CameraFOV(f.width, f.height)
	if f.fov != 0 {
		fov = f.fov
	}
	cam, err := render.NewCamera(f.width, f.height, fov)
	if err != nil {
		return err
	}
	if err := cam.SetTransform(sc.View.Transform); err != nil {
		return err
	}

	logger.Info("rendering", "scene", sc.Name, "shapes", len(sc.World.Shapes), "size", fmt.Sprintf("%dx%d", f.width, f.height))
	if sc.World.Light == nil {
		logger.Warn("scene has no light; the image will be black", "scene", sc.Name)
	}

	step := max(f.height/10, 1)
	start := time.Now()
	canvas, err := render.RenderContext(cmd.Context(), cam, sc.World,
		render.WithWorkers(f.workers),
		render.WithProgress(func(done, total int) {
			if done%step == 0 || done == total {
				logger.Debug("progress", "rows", done, "total", total)
			}
		}),
	)
	if err != nil {
		return fmt.Errorf("render %s: %w", sc.Name, err)
	}

	if err := canvas.Save(f.out); err != nil {
		return err
	}
	logger.Info("wrote image", "path", f.out, "elapsed", time.Since(start).Round(time.Millisecond))
	return nil
}
