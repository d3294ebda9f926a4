package main

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	uv "github.com/charmbracelet/ultraviolet"
	"github.com/spf13/cobra"

	"github.com/taigrr/prism/pkg/render"
	"github.com/taigrr/prism/pkg/scene"
)

type viewFlags struct {
	sceneFlags
	fps     int
	workers int
}

func newViewCmd(logger *log.Logger) *cobra.Command {
	var f viewFlags

	cmd := &cobra.Command{
		Use:   "view [scene]",
		Short: "Orbit a scene in the terminal",
		Long: `Orbit a scene in the terminal.

Controls:
  W/S or Up/Down     - Orbit up/down
  A/D or Left/Right  - Orbit left/right
  +/-                - Zoom in/out
  R                  - Reset view
  Esc, Q or Ctrl+C   - Quit`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sc, err := f.load(args)
			if err != nil {
				return err
			}
			logger.Debug("starting viewer", "scene", sc.Name, "fps", f.fps)
			return runView(cmd.Context(), sc, f)
		},
	}

	f.register(cmd)
	cmd.Flags().IntVar(&f.fps, "fps", 30, "target frames per second")
	cmd.Flags().IntVarP(&f.workers, "workers", "j", 0, "rows traced in parallel (0 uses all CPUs)")
	return cmd
}

// orbitStep is the angular impulse of one key press in radians per frame.
const orbitStep = 0.02

func runView(ctx context.Context, sc *scene.Scene, f viewFlags) error {
	if f.fps < 1 {
		return fmt.Errorf("fps must be positive, got %d", f.fps)
	}

	term := uv.DefaultTerminal()

	width, height, err := term.GetSize()
	if err != nil {
		return fmt.Errorf("get terminal size: %w", err)
	}

	if err := term.Start(); err != nil {
		return fmt.Errorf("start terminal: %w", err)
	}

	term.EnterAltScreen()
	term.HideCursor()
	term.Resize(width, height)

	defer func() {
		term.ExitAltScreen()
		term.ShowCursor()
		term.Shutdown(context.Background()) //nolint:errcheck
	}()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	// Events are handed to the frame loop so all view state stays on one goroutine
	events := make(chan any)
	go func() {
		for ev := range term.Events() {
			select {
			case events <- ev:
			case <-ctx.Done():
				return
			}
		}
	}()

	termRenderer := render.NewTerminalRenderer(term, width, height)
	orbit := NewOrbit(sc.View, f.fps)

	ticker := time.NewTicker(time.Second / time.Duration(f.fps))
	defer ticker.Stop()

	dirty := true
	for {
		select {
		case <-ctx.Done():
			return nil

		case ev := <-events:
			switch ev := ev.(type) {
			case uv.WindowSizeEvent:
				width, height = ev.Width, ev.Height
				term.Erase()
				term.Resize(width, height)
				termRenderer = render.NewTerminalRenderer(term, width, height)
				dirty = true

			case uv.KeyPressEvent:
				switch {
				case ev.MatchString("escape", "ctrl+c", "q"):
					return nil
				case ev.MatchString("w", "up"):
					orbit.Impulse(orbitStep, 0)
				case ev.MatchString("s", "down"):
					orbit.Impulse(-orbitStep, 0)
				case ev.MatchString("a", "left"):
					orbit.Impulse(0, -orbitStep)
				case ev.MatchString("d", "right"):
					orbit.Impulse(0, orbitStep)
				case ev.MatchString("+", "="):
					orbit.ZoomBy(0.9)
				case ev.MatchString("-", "_"):
					orbit.ZoomBy(1.1)
				case ev.MatchString("r"):
					orbit.Reset()
					dirty = true
				}
			}

		case <-ticker.C:
			orbit.Update()
			if !dirty && !orbit.Moving() {
				continue
			}
			dirty = false

			err := drawFrame(ctx, termRenderer, sc, orbit, f.workers)
			if errors.Is(err, context.Canceled) {
				return nil
			}
			if err != nil {
				return err
			}
		}
	}
}

// drawFrame traces the scene at terminal resolution and displays it.
func drawFrame(ctx context.Context, tr *render.TerminalRenderer, sc *scene.Scene, orbit *Orbit, workers int) error {
	w, h := tr.CanvasSize()
	if w < 1 || h < 1 {
		return nil
	}

	cam, err := render.NewCamera(w, h, sc.View.CameraFOV(w, h))
	if err != nil {
		return err
	}
	if err := cam.SetTransform(orbit.ViewTransform()); err != nil {
		return err
	}

	canvas, err := render.RenderContext(ctx, cam, sc.World, render.WithWorkers(workers))
	if err != nil {
		return err
	}

	tr.Render(canvas)
	if err := tr.Flush(); err != nil {
		return fmt.Errorf("flush: %w", err)
	}
	return nil
}
