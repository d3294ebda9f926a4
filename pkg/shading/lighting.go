package shading

import (
	"math"

	"github.com/taigrr/prism/pkg/math3d"
)

// Surface holds the geometry needed to shade one point.
type Surface struct {
	Point       math3d.Tuple // World-space hit point
	ObjectPoint math3d.Tuple // Same point in the shape's local space, for patterns
	Eye         math3d.Tuple // Unit vector toward the viewer
	Normal      math3d.Tuple // Unit surface normal facing the viewer
}

// Lighting evaluates the Phong model for a single light:
//
//	ambient + (diffuse + specular) * shadowFactor
//
// Diffuse and specular vanish when the light is behind the surface or the
// reflection points away from the eye.
func Lighting(m Material, light PointLight, s Surface, inShadow bool) math3d.Color {
	effective := m.ColorAt(s.ObjectPoint).Mul(light.Intensity)
	ambient := effective.Scale(m.Ambient)

	if inShadow {
		return ambient
	}

	lightv := light.Position.Sub(s.Point).Normalize()
	lightDotNormal := lightv.Dot(s.Normal)
	if lightDotNormal <= 0 {
		return ambient
	}

	diffuse := effective.Scale(m.Diffuse * lightDotNormal)

	reflectv := lightv.Negate().Reflect(s.Normal)
	reflectDotEye := reflectv.Dot(s.Eye)
	if reflectDotEye <= 0 {
		return ambient.Add(diffuse)
	}

	factor := math.Pow(reflectDotEye, m.Shininess)
	specular := light.Intensity.Scale(m.Specular * factor)

	return ambient.Add(diffuse).Add(specular)
}
