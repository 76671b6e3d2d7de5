package scene

import (
	"testing"

	"github.com/chewxy/math32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Faultbox/distortion/pkg/math"
	"github.com/Faultbox/distortion/pkg/tessellate"
)

func newTestState(t *testing.T, name string) *State {
	t.Helper()
	v, err := LookupVariant(name)
	require.NoError(t, err)
	return NewState(v, v.Width, v.Height)
}

func assertMatEqual(t *testing.T, want, got math.Mat4, delta float64) {
	t.Helper()
	for i := range want {
		assert.InDelta(t, want[i], got[i], delta, "element %d", i)
	}
}

func TestFrameAtZero(t *testing.T) {
	s := newTestState(t, BetterGrid)
	batch := s.Frame()

	require.Equal(t, InstanceCount, batch.Len())
	assertMatEqual(t, math.Identity(), batch.Instances[0].Model, 1e-6)
	assertMatEqual(t, s.Camera.ViewProjection(), batch.Instances[0].MVP, 1e-6)
}

func TestRotationAtPi(t *testing.T) {
	models := ModelMatrices(math32.Pi)
	p := models[0].TransformPoint(math.Vec3{X: 1})

	assert.InDelta(t, -1, p.X, 1e-5)
	assert.InDelta(t, 0, p.Y, 1e-5)
	assert.InDelta(t, 0, p.Z, 1e-5)
}

func TestHalfVectorUnitLength(t *testing.T) {
	s := newTestState(t, Original)
	for step := 0; step < 200; step++ {
		s.Update(0.037)
		batch := s.Frame()
		for i, inst := range batch.Instances {
			assert.InDelta(t, 1, inst.Hhat.Length(), 1e-5, "theta %v instance %d", s.Theta, i)
		}
	}
}

func TestSatellitePlacement(t *testing.T) {
	models := ModelMatrices(0)

	// Satellite 1 sits 0.6 in front of the center, lying on its side.
	center := models[1].TransformPoint(math.Vec3{})
	assert.InDelta(t, 0.6, center.Z, 1e-5)

	top := models[1].TransformPoint(math.Vec3{Y: 0.5})
	assert.InDelta(t, 0.6+0.125, top.Z, 1e-5)

	// Satellite 4 is on the opposite side.
	opposite := models[4].TransformPoint(math.Vec3{})
	assert.InDelta(t, -0.6, opposite.Z, 1e-5)
}

func TestOrnamentPlacement(t *testing.T) {
	models := ModelMatrices(0.3)

	// Scale applies after translate, so the ornaments end up at y = ±0.625.
	upper := models[5].TransformPoint(math.Vec3{})
	lower := models[6].TransformPoint(math.Vec3{})
	assert.InDelta(t, 0.625, upper.Y, 1e-5)
	assert.InDelta(t, -0.625, lower.Y, 1e-5)
}

func TestUpdate(t *testing.T) {
	s := newTestState(t, Gridless)

	s.Update(2)
	assert.InDelta(t, 1.0, s.Theta, 1e-6)

	s.Update(-5)
	assert.InDelta(t, 1.0, s.Theta, 1e-6, "negative elapsed time is clamped")

	// Theta keeps accumulating past 2π.
	for i := 0; i < 40; i++ {
		s.Update(1)
	}
	assert.Greater(t, s.Theta, float32(2*math32.Pi))
}

func TestSingleInstanceVariant(t *testing.T) {
	s := newTestState(t, Cylinders)
	batch := s.Frame()

	assert.Equal(t, 1, batch.Len())
	assert.Len(t, batch.MVPs(), 16)
	assert.Len(t, batch.Lhats(), 3)
	assert.Len(t, batch.Hhats(), 3)
}

func TestPackedUniforms(t *testing.T) {
	s := newTestState(t, Original)
	s.Update(1.3)
	batch := s.Frame()

	mvps := batch.MVPs()
	require.Len(t, mvps, 16*InstanceCount)
	assert.Equal(t, batch.Instances[3].MVP[5], mvps[3*16+5])

	hhats := batch.Hhats()
	require.Len(t, hhats, 3*InstanceCount)
	assert.Equal(t, batch.Instances[6].Hhat.Z, hhats[6*3+2])
}

func TestMaterial(t *testing.T) {
	batch := newTestState(t, Original).Frame()

	assert.Equal(t, [4]float32{0, 0, 1, 1}, batch.Material.Front)
	assert.Equal(t, [4]float32{0.5, 0.5, 0, 1}, batch.Material.Back)
}

func TestLookupVariant(t *testing.T) {
	for _, name := range VariantNames() {
		v, err := LookupVariant(name)
		require.NoError(t, err)
		assert.Equal(t, name, v.Name)
	}

	v, err := LookupVariant(" BetterGrid ")
	require.NoError(t, err)
	assert.True(t, v.HasGrid())
	assert.True(t, v.Offscreen())

	_, err = LookupVariant("fisheye")
	assert.Error(t, err)
}

func TestWithResolution(t *testing.T) {
	v, err := LookupVariant(BetterGrid)
	require.NoError(t, err)

	v = v.WithResolution(tessellate.Resolution{}, tessellate.Resolution{Rows: 10})
	assert.Equal(t, 8, v.CylinderRes.Rows)
	assert.Equal(t, 10, v.GridRes.Rows)
	assert.Equal(t, 36, v.GridRes.Cols)
}

func TestCameraResize(t *testing.T) {
	c := NewCamera(math.Vec3{Z: 4}, 800, 400)
	wide := c.Projection[0]

	c.Resize(400, 400)
	assert.Greater(t, c.Projection[0], wide)

	// Degenerate sizes do not divide by zero.
	c.Resize(0, 0)
	assert.False(t, math32.IsInf(c.Projection[0], 0))
}
