package render

import (
	"image"
	"image/color"

	uv "github.com/charmbracelet/ultraviolet"
)

// Draw converts the canvas to terminal cells and draws them on the screen.
// Each terminal row shows two canvas rows using an upper half block with the
// top pixel as foreground and the bottom pixel as background, so the canvas
// height should be twice the area height.
func (c *Canvas) Draw(scr uv.Screen, area uv.Rectangle) {
	for row := area.Min.Y; row < area.Max.Y; row++ {
		topY := (row - area.Min.Y) * 2
		botY := topY + 1

		for col := area.Min.X; col < area.Max.X && col-area.Min.X < c.width; col++ {
			x := col - area.Min.X
			cell := &uv.Cell{
				Content: "▀",
				Width:   1,
				Style: uv.Style{
					Fg: c.cellColor(x, topY),
					Bg: c.cellColor(x, botY),
				},
			}
			scr.SetCell(col, row, cell)
		}
	}
}

// cellColor returns nil past the bottom edge so odd-height canvases leave the
// terminal background showing.
func (c *Canvas) cellColor(x, y int) color.Color {
	if y >= c.height {
		return nil
	}
	return c.PixelAt(x, y).RGBA()
}

// TerminalRenderer draws canvases onto a full-screen terminal.
type TerminalRenderer struct {
	term *uv.Terminal
	cols int
	rows int
}

// NewTerminalRenderer creates a renderer for a terminal of cols x rows cells.
func NewTerminalRenderer(term *uv.Terminal, cols, rows int) *TerminalRenderer {
	return &TerminalRenderer{term: term, cols: cols, rows: rows}
}

// CanvasSize returns the canvas dimensions that fill the terminal.
func (r *TerminalRenderer) CanvasSize() (width, height int) {
	return r.cols, r.rows * 2
}

// Render draws c onto the terminal buffer. Call Flush to display it.
func (r *TerminalRenderer) Render(c *Canvas) {
	c.Draw(r.term, uv.Rectangle(image.Rect(0, 0, r.cols, r.rows)))
}

// Flush writes pending cells to the terminal.
func (r *TerminalRenderer) Flush() error {
	return r.term.Display()
}
