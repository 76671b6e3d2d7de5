package scene

import (
	"github.com/chewxy/math32"

	"github.com/Faultbox/distortion/internal/engine/lighting"
	"github.com/Faultbox/distortion/pkg/math"
)

// InstanceCount is the number of cylinders drawn per instanced frame: one central
// cylinder, four satellites and two ornaments.
const InstanceCount = 7

// ModelMatrices returns the model matrix of every instance at angle theta.
func ModelMatrices(theta float32) [InstanceCount]math.Mat4 {
	var m [InstanceCount]math.Mat4

	m[0] = math.RotateY(theta)

	satellite := math.Translate(0, 0, 0.6).
		Mul(math.UniformScale(0.25)).
		Mul(math.RotateX(math32.Pi / 2))
	m[1] = math.RotateY(theta).Mul(satellite)
	m[2] = math.RotateY(theta + math32.Pi/2).Mul(satellite)
	m[3] = math.RotateY(theta - math32.Pi/2).Mul(satellite)
	m[4] = math.RotateY(theta + math32.Pi).Mul(satellite)

	m[5] = ornament(theta, 1.25)
	m[6] = ornament(theta, -1.25)

	return m
}

func ornament(theta, y float32) math.Mat4 {
	return math.UniformScale(0.5).
		Mul(math.Translate(0, y, 0)).
		Mul(math.RotateY(-theta))
}

// Instance is the per-instance output of the pipeline.
type Instance struct {
	Model math.Mat4
	MVP   math.Mat4
	Lhat  math.Vec3 // object-space light direction
	Hhat  math.Vec3 // object-space half-vector
}

// InstanceBatch is everything the renderer needs for one instanced draw.
type InstanceBatch struct {
	Instances []Instance
	Material  lighting.Material
}

// Len returns the number of instances.
func (b *InstanceBatch) Len() int {
	return len(b.Instances)
}

// MVPs returns the MVP matrices packed for a mat4 array uniform.
func (b *InstanceBatch) MVPs() []float32 {
	out := make([]float32, 0, 16*len(b.Instances))
	for i := range b.Instances {
		out = append(out, b.Instances[i].MVP[:]...)
	}
	return out
}

// Lhats returns the light vectors packed for a vec3 array uniform.
func (b *InstanceBatch) Lhats() []float32 {
	out := make([]float32, 0, 3*len(b.Instances))
	for _, inst := range b.Instances {
		out = append(out, inst.Lhat.X, inst.Lhat.Y, inst.Lhat.Z)
	}
	return out
}

// Hhats returns the half-vectors packed for a vec3 array uniform.
func (b *InstanceBatch) Hhats() []float32 {
	out := make([]float32, 0, 3*len(b.Instances))
	for _, inst := range b.Instances {
		out = append(out, inst.Hhat.X, inst.Hhat.Y, inst.Hhat.Z)
	}
	return out
}

// buildBatch runs the transform and lighting steps over models.
func buildBatch(cam *Camera, models []math.Mat4, light, eye math.Vec3) InstanceBatch {
	batch := InstanceBatch{
		Instances: make([]Instance, len(models)),
		Material:  lighting.DefaultMaterial(),
	}
	for i, model := range models {
		mv := cam.View.Mul(model)
		lhat, hhat := lighting.ObjectSpace(model, light, eye)
		batch.Instances[i] = Instance{
			Model: model,
			MVP:   cam.Projection.Mul(mv),
			Lhat:  lhat,
			Hhat:  hhat,
		}
	}
	return batch
}
