package render

import (
	"errors"
	"fmt"
	"math"

	"github.com/taigrr/prism/pkg/geometry"
	"github.com/taigrr/prism/pkg/math3d"
)

// ErrInvalidCamera is returned for non-positive canvas sizes or a field of
// view outside (0, π).
var ErrInvalidCamera = errors.New("invalid camera")

// Camera maps canvas pixels to world-space rays. The eye sits at the origin
// of camera space looking down -z at a view plane one unit away.
type Camera struct {
	HSize int     // Canvas width in pixels
	VSize int     // Canvas height in pixels
	FOV   float64 // Field of view across the larger canvas dimension, radians

	halfWidth  float64
	halfHeight float64
	pixelSize  float64

	transform math3d.Mat4
	inverse   math3d.Mat4
}

// NewCamera creates a camera with the identity view transform.
func NewCamera(hsize, vsize int, fov float64) (*Camera, error) {
	if hsize <= 0 || vsize <= 0 {
		return nil, fmt.Errorf("%w: size %dx%d", ErrInvalidCamera, hsize, vsize)
	}
	if !(fov > 0 && fov < math.Pi) {
		return nil, fmt.Errorf("%w: field of view %v", ErrInvalidCamera, fov)
	}

	c := &Camera{
		HSize:     hsize,
		VSize:     vsize,
		FOV:       fov,
		transform: math3d.Identity(),
		inverse:   math3d.Identity(),
	}

	halfView := math.Tan(fov / 2)
	aspect := float64(hsize) / float64(vsize)
	if aspect >= 1 {
		c.halfWidth = halfView
		c.halfHeight = halfView / aspect
	} else {
		c.halfWidth = halfView * aspect
		c.halfHeight = halfView
	}
	c.pixelSize = c.halfWidth * 2 / float64(hsize)
	return c, nil
}

// PixelSize returns the world-space width of one pixel on the view plane.
func (c *Camera) PixelSize() float64 {
	return c.pixelSize
}

// SetTransform sets the view transform, usually from math3d.ViewTransform.
func (c *Camera) SetTransform(m math3d.Mat4) error {
	inv, err := m.Inverse()
	if err != nil {
		return fmt.Errorf("set camera transform: %w", err)
	}
	c.transform = m
	c.inverse = inv
	return nil
}

// Transform returns the view transform.
func (c *Camera) Transform() math3d.Mat4 {
	return c.transform
}

// RayForPixel returns the world-space ray through the center of pixel
// (px, py), with (0, 0) at the top left of the canvas.
func (c *Camera) RayForPixel(px, py int) geometry.Ray {
	xOffset := (float64(px) + 0.5) * c.pixelSize
	yOffset := (float64(py) + 0.5) * c.pixelSize

	// Camera looks toward -z, so +x is to the left
	worldX := c.halfWidth - xOffset
	worldY := c.halfHeight - yOffset

	pixel := c.inverse.MulTuple(math3d.Point(worldX, worldY, -1))
	origin := c.inverse.MulTuple(math3d.Origin())
	return geometry.NewRay(origin, pixel.Sub(origin).Normalize())
}
