package scene

import (
	"github.com/chewxy/math32"

	"github.com/Faultbox/distortion/pkg/math"
)

// Projection parameters shared by every demo.
const (
	FieldOfView float32 = 16 * 2 * math32.Pi / 180
	ZNear       float32 = 0.1
	ZFar        float32 = 300
)

// Camera is a fixed perspective camera looking at the origin.
type Camera struct {
	Eye        math.Vec3
	Projection math.Mat4
	View       math.Mat4
}

// NewCamera creates a camera at eye looking at the origin with +Y up, for a
// viewport of the given size.
func NewCamera(eye math.Vec3, width, height int) Camera {
	c := Camera{
		Eye:  eye,
		View: math.LookAt(eye, math.Vec3{}, math.Vec3{Y: 1}),
	}
	c.Resize(width, height)
	return c
}

// Resize recomputes the projections for a new viewport size.
func (c *Camera) Resize(width, height int) {
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}
	aspect := float32(width) / float32(height)
	c.Projection = math.Perspective(FieldOfView, aspect, ZNear, ZFar)
}

// ViewProjection returns Projection * View.
func (c *Camera) ViewProjection() math.Mat4 {
	return c.Projection.Mul(c.View)
}
