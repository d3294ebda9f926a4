package render

import (
	"context"
	"runtime"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/taigrr/prism/pkg/scene"
)

// ProgressFunc is called after each finished row with the number of rows done
// and the total. Calls are serialized.
type ProgressFunc func(done, total int)

type options struct {
	workers  int
	progress ProgressFunc
}

// Option configures RenderContext.
type Option func(*options)

// WithWorkers limits how many rows are traced at once. Values below one mean
// runtime.GOMAXPROCS(0).
func WithWorkers(n int) Option {
	return func(o *options) {
		o.workers = n
	}
}

// WithProgress registers a row progress callback.
func WithProgress(fn ProgressFunc) Option {
	return func(o *options) {
		o.progress = fn
	}
}

// Render traces every pixel of cam through w using all CPUs.
func Render(cam *Camera, w *scene.World) *Canvas {
	// Without a cancelable context RenderContext cannot fail
	canvas, _ := RenderContext(context.Background(), cam, w)
	return canvas
}

// RenderContext traces every pixel of cam through w. Rows are traced in
// parallel; each worker writes only its own row so the canvas needs no lock.
// The world must not be mutated while rendering. When ctx is canceled no new
// rows are started and ctx's error is returned.
func RenderContext(ctx context.Context, cam *Camera, w *scene.World, opts ...Option) (*Canvas, error) {
	o := options{}
	for _, opt := range opts {
		opt(&o)
	}
	if o.workers < 1 {
		o.workers = runtime.GOMAXPROCS(0)
	}

	canvas := NewCanvas(cam.HSize, cam.VSize)

	var (
		mu   sync.Mutex
		done int
	)
	report := func() {
		if o.progress == nil {
			return
		}
		mu.Lock()
		defer mu.Unlock()
		done++
		o.progress(done, cam.VSize)
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(o.workers)

	for y := range cam.VSize {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			row := canvas.pixels[y*canvas.width : (y+1)*canvas.width]
			for x := range row {
				row[x] = w.ColorAt(cam.RayForPixel(x, y))
			}
			report()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return canvas, nil
}
