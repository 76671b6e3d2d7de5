package scene

import (
	"github.com/Faultbox/distortion/internal/engine/lighting"
	"github.com/Faultbox/distortion/pkg/math"
)

// DefaultRadiansPerSecond is the spin rate of every demo.
const DefaultRadiansPerSecond = 0.5

// State is the whole mutable state of a running demo. It replaces the globals of
// a typical GL sample and is passed explicitly to update and render code.
type State struct {
	Variant          Variant
	Theta            float32
	RadiansPerSecond float32
	Camera           Camera
	Warp             *Warp
	Light            math.Vec3
	Eye              math.Vec3
}

// NewState creates the state of variant v for a viewport of the given size.
func NewState(v Variant, width, height int) *State {
	return &State{
		Variant:          v,
		RadiansPerSecond: DefaultRadiansPerSecond,
		Camera:           NewCamera(v.Eye, width, height),
		Warp:             NewWarp(),
		Light:            lighting.DefaultLight,
		Eye:              lighting.DefaultEye,
	}
}

// Update advances the animation by the elapsed wall-clock seconds. Negative
// values are treated as zero. Theta is never reduced modulo 2π.
func (s *State) Update(seconds float64) {
	if seconds < 0 {
		seconds = 0
	}
	s.Theta += float32(seconds) * s.RadiansPerSecond
	s.Warp.Update(s.Theta, seconds)
}

// Resize updates the camera for a new viewport.
func (s *State) Resize(width, height int) {
	s.Camera.Resize(width, height)
}

// Frame computes the instance batch for the current angle. Non-instanced
// variants get the central cylinder only.
func (s *State) Frame() InstanceBatch {
	models := ModelMatrices(s.Theta)
	n := InstanceCount
	if !s.Variant.Instanced {
		n = 1
	}
	return buildBatch(&s.Camera, models[:n], s.Light, s.Eye)
}
