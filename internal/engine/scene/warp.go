package scene

import (
	stdmath "math"

	"github.com/charmbracelet/harmonica"
)

// WarpMode selects where the barrel power target comes from.
type WarpMode int

const (
	// WarpAnimated derives the power from the animation angle.
	WarpAnimated WarpMode = iota
	// WarpManual lets the user step the target; the power follows on a spring.
	WarpManual
)

// Barrel power limits and key step for manual mode.
const (
	MinBarrelPower  = 0.5
	MaxBarrelPower  = 3.0
	BarrelPowerStep = 0.1
)

// Spring parameters: critically damped, settles in well under a second.
const (
	warpFrequency = 6.0
	warpDamping   = 1.0
)

// Warp drives the barrel distortion exponent.
type Warp struct {
	Mode     WarpMode
	Target   float64
	Power    float64
	velocity float64
}

// NewWarp returns an animated warp at its value for theta = 0.
func NewWarp() *Warp {
	p := AnimatedBarrelPower(0)
	return &Warp{Mode: WarpAnimated, Target: p, Power: p}
}

// AnimatedBarrelPower oscillates between 1 and 2 at four times the animation rate.
func AnimatedBarrelPower(theta float32) float64 {
	return 2.0 - 0.5*(stdmath.Sin(float64(theta)*4.0)+1.0)
}

// Update advances the warp by dt seconds at animation angle theta.
func (w *Warp) Update(theta float32, dt float64) {
	if w.Mode == WarpAnimated {
		w.Target = AnimatedBarrelPower(theta)
		w.Power = w.Target
		w.velocity = 0
		return
	}
	if dt <= 0 {
		return
	}
	spring := harmonica.NewSpring(dt, warpFrequency, warpDamping)
	w.Power, w.velocity = spring.Update(w.Power, w.velocity, w.Target)
}

// Adjust moves the manual target by steps increments, switching to manual mode.
func (w *Warp) Adjust(steps int) {
	w.Mode = WarpManual
	w.Target = clamp(w.Target+float64(steps)*BarrelPowerStep, MinBarrelPower, MaxBarrelPower)
}

// ToggleMode flips between animated and manual mode.
func (w *Warp) ToggleMode() {
	if w.Mode == WarpAnimated {
		w.Mode = WarpManual
		return
	}
	w.Mode = WarpAnimated
}

// String describes the mode for logging.
func (m WarpMode) String() string {
	if m == WarpManual {
		return "manual"
	}
	return "animated"
}

func clamp(v, lo, hi float64) float64 {
	return stdmath.Max(lo, stdmath.Min(hi, v))
}
