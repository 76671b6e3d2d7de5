package tessellate

import (
	"github.com/chewxy/math32"

	"github.com/Faultbox/distortion/pkg/math"
)

// CylinderHeight is the height of the unit cylinder; its radius is 0.5.
const CylinderHeight = 1.0

// EvaluateCylinder maps (s, t) in [0,1]² to the surface of a cylinder centered at
// the origin. s runs along the Y axis, t around it.
func EvaluateCylinder(s, t float32) math.Vec3 {
	angle := t * 2 * math32.Pi
	return math.Vec3{
		X: 0.5 * math32.Cos(angle),
		Y: CylinderHeight * (s - 0.5),
		Z: 0.5 * math32.Sin(angle),
	}
}

// EvaluateWarpedGrid maps (s, t) in [0,1]² to a point of the [-1,1]² plane and a
// texture coordinate pulled towards the center by squaring the polar radius. Only
// the texture coordinate is warped.
func EvaluateWarpedGrid(s, t float32) (math.Vec3, math.Vec2) {
	p := math.Vec2{X: s*2 - 1, Y: t*2 - 1}

	var theta float32
	if p.X != 0 || p.Y != 0 {
		theta = p.Angle()
	}
	radius := p.Length()
	radius *= radius

	uv := math.Vec2{
		X: 0.5 * (1 + radius*math32.Cos(theta)),
		Y: 0.5 * (1 + radius*math32.Sin(theta)),
	}
	return math.Vec3{X: p.X, Y: p.Y}, uv
}
