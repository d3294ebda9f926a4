package render

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// ErrUnknownFormat is returned by Save for extensions other than .ppm and .png.
var ErrUnknownFormat = errors.New("unknown image format")

// ppmLineLimit is the longest line a plain PPM reader must accept.
const ppmLineLimit = 70

// WritePPM writes the canvas as a plain (P3) PPM with a maximum value of 255.
// Each canvas row starts on a new line and no line exceeds 70 characters.
func (c *Canvas) WritePPM(w io.Writer) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "P3\n%d %d\n255\n", c.width, c.height)

	var num [3]byte
	for y := range c.height {
		lineLen := 0
		for x := range c.width {
			rgba := c.pixels[y*c.width+x].RGBA()
			for _, v := range [3]uint8{rgba.R, rgba.G, rgba.B} {
				s := strconv.AppendUint(num[:0], uint64(v), 10)
				switch {
				case lineLen == 0:
				case lineLen+1+len(s) > ppmLineLimit:
					bw.WriteByte('\n')
					lineLen = 0
				default:
					bw.WriteByte(' ')
					lineLen++
				}
				bw.Write(s)
				lineLen += len(s)
			}
		}
		bw.WriteByte('\n')
	}
	return bw.Flush()
}

// SavePPM saves the canvas as a plain PPM file.
func (c *Canvas) SavePPM(path string) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create ppm: %w", err)
	}
	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = cerr
		}
	}()
	return c.WritePPM(f)
}

// Save writes the canvas to path, picking the format from the extension.
func (c *Canvas) Save(path string) error {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".ppm":
		return c.SavePPM(path)
	case ".png":
		return c.SavePNG(path)
	default:
		return fmt.Errorf("save %s: %w %q", path, ErrUnknownFormat, ext)
	}
}
