// Package render turns a scene.World into pixels: a Camera generates one ray
// per pixel, the render loop shades them into a Canvas, and the Canvas is
// written out as PPM or PNG or drawn to the terminal.
package render

import (
	"fmt"
	"image"
	"image/png"
	"os"

	"github.com/taigrr/prism/pkg/math3d"
)

// Canvas is a grid of linear colors with the origin at the top left.
// Components are stored unclamped; clamping happens on output.
type Canvas struct {
	width  int
	height int
	pixels []math3d.Color // Row-major pixel data
}

// NewCanvas creates a black canvas.
func NewCanvas(width, height int) *Canvas {
	width, height = max(width, 0), max(height, 0)
	return &Canvas{
		width:  width,
		height: height,
		pixels: make([]math3d.Color, width*height),
	}
}

// Width returns the canvas width in pixels.
func (c *Canvas) Width() int { return c.width }

// Height returns the canvas height in pixels.
func (c *Canvas) Height() int { return c.height }

// Fill sets every pixel to col.
func (c *Canvas) Fill(col math3d.Color) {
	for i := range c.pixels {
		c.pixels[i] = col
	}
}

// WritePixel sets the pixel at (x, y). Out of range writes are ignored.
func (c *Canvas) WritePixel(x, y int, col math3d.Color) {
	if x < 0 || x >= c.width || y < 0 || y >= c.height {
		return
	}
	c.pixels[y*c.width+x] = col
}

// PixelAt returns the color at (x, y), or black when out of range.
func (c *Canvas) PixelAt(x, y int) math3d.Color {
	if x < 0 || x >= c.width || y < 0 || y >= c.height {
		return math3d.Black()
	}
	return c.pixels[y*c.width+x]
}

// ToImage converts the canvas to an 8-bit image, clamping each component.
func (c *Canvas) ToImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, c.width, c.height))
	for y := range c.height {
		for x := range c.width {
			img.SetRGBA(x, y, c.pixels[y*c.width+x].RGBA())
		}
	}
	return img
}

// SavePNG saves the canvas as a PNG file.
func (c *Canvas) SavePNG(path string) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create png: %w", err)
	}
	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = cerr
		}
	}()
	return png.Encode(f, c.ToImage())
}
