package geometry

import (
	"fmt"

	"github.com/taigrr/prism/pkg/math3d"
)

// Transform caches a shape's object-to-world matrix together with the
// inverse (world-to-object) and inverse transpose (for normals).
type Transform struct {
	Matrix           math3d.Mat4
	Inverse          math3d.Mat4
	InverseTranspose math3d.Mat4
}

// IdentityTransform returns the transform that leaves a shape in canonical
// position.
func IdentityTransform() Transform {
	return Transform{
		Matrix:           math3d.Identity(),
		Inverse:          math3d.Identity(),
		InverseTranspose: math3d.Identity(),
	}
}

// NewTransform precomputes the inverse matrices. A singular matrix is a scene
// construction error.
func NewTransform(m math3d.Mat4) (Transform, error) {
	inv, err := m.Inverse()
	if err != nil {
		return Transform{}, fmt.Errorf("new transform: %w", err)
	}
	return Transform{
		Matrix:           m,
		Inverse:          inv,
		InverseTranspose: inv.Transpose(),
	}, nil
}
