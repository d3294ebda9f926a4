package math3d

import (
	"fmt"
	"image/color"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// Color is a linear RGB color. Components are nominally in [0, 1] but are not
// clamped until the color leaves the renderer.
type Color struct {
	R, G, B float64
}

// RGB creates a new Color.
func RGB(r, g, b float64) Color {
	return Color{r, g, b}
}

// Black returns (0, 0, 0).
func Black() Color {
	return Color{}
}

// White returns (1, 1, 1).
func White() Color {
	return Color{1, 1, 1}
}

// ParseHex parses a "#rrggbb" string.
func ParseHex(s string) (Color, error) {
	c, err := colorful.Hex(s)
	if err != nil {
		return Color{}, fmt.Errorf("parse color %q: %w", s, err)
	}
	return Color{c.R, c.G, c.B}, nil
}

// Add returns a + b.
//
//nolint:st1016 // a+b naming convention is clearer for color operations
func (a Color) Add(b Color) Color {
	return Color{a.R + b.R, a.G + b.G, a.B + b.B}
}

// Sub returns a - b.
//
//nolint:st1016 // a-b naming convention is clearer for color operations
func (a Color) Sub(b Color) Color {
	return Color{a.R - b.R, a.G - b.G, a.B - b.B}
}

// Scale multiplies every component by s.
func (c Color) Scale(s float64) Color {
	return Color{c.R * s, c.G * s, c.B * s}
}

// Mul returns the component-wise (Hadamard) product.
//
//nolint:st1016 // a*b naming convention is clearer for color operations
func (a Color) Mul(b Color) Color {
	return Color{a.R * b.R, a.G * b.G, a.B * b.B}
}

// Equal reports whether every component is within Epsilon.
//
//nolint:st1016 // a,b naming convention is clearer for comparisons
func (a Color) Equal(b Color) bool {
	return ApproxEqual(a.R, b.R) && ApproxEqual(a.G, b.G) && ApproxEqual(a.B, b.B)
}

// IsBlack reports whether the color is black within Epsilon.
func (c Color) IsBlack() bool {
	return c.Equal(Black())
}

// Clamped returns the color with each component clamped to [0, 1].
func (c Color) Clamped() Color {
	cc := colorful.Color{R: c.R, G: c.G, B: c.B}.Clamped()
	return Color{cc.R, cc.G, cc.B}
}

// RGBA converts to an opaque 8-bit color, clamping out-of-range components.
func (c Color) RGBA() color.RGBA {
	r, g, b := colorful.Color{R: c.R, G: c.G, B: c.B}.Clamped().RGB255()
	return color.RGBA{r, g, b, 255}
}

// Hex returns the clamped color as "#rrggbb".
func (c Color) Hex() string {
	return colorful.Color{R: c.R, G: c.G, B: c.B}.Clamped().Hex()
}
