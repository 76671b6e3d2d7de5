package app

import (
	"time"

	"github.com/Faultbox/distortion/internal/config"
	"github.com/Faultbox/distortion/internal/engine/scene"
	"github.com/Faultbox/distortion/pkg/tessellate"
)

// meshes holds the CPU-side geometry of a variant. grid is nil when the
// variant does not composite through the warped grid.
type meshes struct {
	cylinder *tessellate.Mesh
	grid     *tessellate.Mesh
}

func buildMeshes(v scene.Variant) (meshes, error) {
	var m meshes
	var err error

	m.cylinder, err = tessellate.Build(v.Cylinder, v.CylinderRes)
	if err != nil {
		return meshes{}, err
	}
	if v.HasGrid() {
		m.grid, err = tessellate.Build(tessellate.KindGrid, v.GridRes)
		if err != nil {
			return meshes{}, err
		}
	}
	return m, nil
}

// windowSize returns the configured size, falling back to the variant's own
// dimensions for unset fields.
func windowSize(g config.GraphicsConfig, v scene.Variant) (int, int) {
	width, height := g.Width, g.Height
	if width <= 0 {
		width = v.Width
	}
	if height <= 0 {
		height = v.Height
	}
	return width, height
}

// frameClock measures the wall-clock time between frames. Time never runs
// backwards for the animation.
type frameClock struct {
	last time.Time
}

func newFrameClock(now time.Time) *frameClock {
	return &frameClock{last: now}
}

// tick returns the seconds elapsed since the previous tick, at least zero.
func (c *frameClock) tick(now time.Time) float64 {
	dt := now.Sub(c.last).Seconds()
	c.last = now
	if dt < 0 {
		return 0
	}
	return dt
}
