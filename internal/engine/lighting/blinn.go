// Package lighting computes the per-instance vectors used by two-sided
// Blinn-Phong shading.
package lighting

import "github.com/Faultbox/distortion/pkg/math"

var (
	// DefaultLight is the world-space light position of the demos.
	DefaultLight = math.Vec3{X: 0.5, Y: 0.25, Z: 1.0}
	// DefaultEye is the world-space eye direction used for the half-vector.
	DefaultEye = math.Vec3{X: 0, Y: 0, Z: 1}
)

// ObjectSpace brings the normalized light and eye directions into the object space
// of model using the transpose of its upper 3x3, and returns the light vector and
// the Blinn half-vector. The transpose stands in for the inverse, which holds for
// rotations and uniform scales only.
func ObjectSpace(model math.Mat4, light, eye math.Vec3) (lhat, hhat math.Vec3) {
	m := model.Upper3x3().Transpose()
	lhat = m.MulVec3(light.Normalize())
	e := m.MulVec3(eye.Normalize())
	hhat = lhat.Add(e).Normalize()
	return lhat, hhat
}

// Material holds the static shading parameters of the lit program.
type Material struct {
	Front    [4]float32
	Back     [4]float32
	Specular [3]float32
	Line     [4]float32
}

// DefaultMaterial returns the blue/olive two-sided material of the demos.
func DefaultMaterial() Material {
	return Material{
		Front:    [4]float32{0, 0, 1, 1},
		Back:     [4]float32{0.5, 0.5, 0, 1},
		Specular: [3]float32{0.4, 0.4, 0.4},
		Line:     [4]float32{0, 0, 0, 1},
	}
}
