package tessellate

import (
	"testing"

	"github.com/chewxy/math32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Faultbox/distortion/pkg/math"
)

func TestGridCounts(t *testing.T) {
	for rows := 1; rows <= 6; rows++ {
		for cols := 1; cols <= 6; cols++ {
			m, err := Grid(rows, cols)
			require.NoError(t, err)

			assert.Equal(t, (rows+1)*(cols+1), m.VertexCount(), "vertices %dx%d", rows, cols)
			assert.Equal(t, 6*rows*cols, m.FillIndexCount(), "fill %dx%d", rows, cols)
			assert.Equal(t, 2*(rows*(cols+1)+cols*(rows+1)), m.LineIndexCount(), "lines %dx%d", rows, cols)
		}
	}
}

func TestCylinderCounts(t *testing.T) {
	for stacks := 1; stacks <= 6; stacks++ {
		for slices := 1; slices <= 6; slices++ {
			m, err := Cylinder(stacks, slices, SeamDuplicated)
			require.NoError(t, err)

			assert.Equal(t, (slices+1)*(stacks+1), m.VertexCount())
			assert.Equal(t, (slices+1)*stacks*6, m.FillIndexCount())
			assert.Equal(t, 2*((stacks+1)*slices+stacks*slices), m.LineIndexCount())
			assert.Equal(t, m.FillIndexCount(), m.FillDrawCount)
		}
	}
}

func TestWrappedCylinderIndexRange(t *testing.T) {
	for stacks := 1; stacks <= 6; stacks++ {
		for slices := 1; slices <= 6; slices++ {
			m, err := Cylinder(stacks, slices, SeamWrapped)
			require.NoError(t, err)

			count := stacks * slices
			assert.Equal(t, count, m.VertexCount())
			for _, idx := range m.Fill {
				assert.Less(t, int(idx), count)
			}
			for _, idx := range m.Lines {
				assert.Less(t, int(idx), count)
			}
			assert.Equal(t, (stacks-1)*slices*6, m.FillDrawCount)
		}
	}
}

func TestGridScenario(t *testing.T) {
	m, err := Grid(20, 36)
	require.NoError(t, err)

	assert.Equal(t, 777, m.VertexCount())
	assert.Equal(t, 4320, m.FillIndexCount())
	assert.Equal(t, 2992, m.LineIndexCount())
}

func TestCylinderScenario(t *testing.T) {
	m, err := Cylinder(8, 24, SeamDuplicated)
	require.NoError(t, err)

	assert.Equal(t, 225, m.VertexCount())
	assert.Equal(t, 1200, m.FillIndexCount())
	assert.Equal(t, 816, m.LineIndexCount())
}

func TestIdempotent(t *testing.T) {
	res := Resolution{Rows: 8, Cols: 24}
	for _, kind := range Kinds() {
		t.Run(kind.String(), func(t *testing.T) {
			a := MustBuild(kind, res)
			b := MustBuild(kind, res)
			assert.Equal(t, a.Vertices, b.Vertices)
			assert.Equal(t, a.Fill, b.Fill)
			assert.Equal(t, a.Lines, b.Lines)
		})
	}
}

func TestWarpedGridCenter(t *testing.T) {
	pos, uv := EvaluateWarpedGrid(0.5, 0.5)

	assert.Equal(t, math.Vec3{}, pos)
	assert.Equal(t, float32(0.5), uv.X)
	assert.Equal(t, float32(0.5), uv.Y)
	assert.False(t, math32.IsNaN(uv.X) || math32.IsNaN(uv.Y))
}

func TestWarpedGridCorners(t *testing.T) {
	// Squaring the radius pushes the corners (r = √2) outside the texture.
	pos, uv := EvaluateWarpedGrid(1, 1)
	assert.Equal(t, math.Vec3{X: 1, Y: 1}, pos)
	assert.InDelta(t, 0.5*(1+2*math32.Cos(math32.Pi/4)), uv.X, 1e-5)

	// Edge midpoints (r = 1) land on the texture border.
	_, uv = EvaluateWarpedGrid(1, 0.5)
	assert.InDelta(t, 1.0, uv.X, 1e-5)
	assert.InDelta(t, 0.5, uv.Y, 1e-5)
}

func TestEvaluateCylinder(t *testing.T) {
	tests := []struct {
		s, t float32
		want math.Vec3
	}{
		{0, 0, math.Vec3{X: 0.5, Y: -0.5}},
		{1, 0.25, math.Vec3{Y: 0.5, Z: 0.5}},
		{0.5, 0.5, math.Vec3{X: -0.5}},
	}

	for _, tt := range tests {
		got := EvaluateCylinder(tt.s, tt.t)
		assert.InDelta(t, tt.want.X, got.X, 1e-5)
		assert.InDelta(t, tt.want.Y, got.Y, 1e-5)
		assert.InDelta(t, tt.want.Z, got.Z, 1e-5)
	}
}

func TestSeamDuplicated(t *testing.T) {
	m, err := Cylinder(4, 12, SeamDuplicated)
	require.NoError(t, err)

	vps := 13
	for j := 0; j <= 4; j++ {
		first := m.Vertices[j*vps].Position
		last := m.Vertices[j*vps+12].Position
		assert.InDelta(t, 0, first.Sub(last).Length(), 1e-5, "stack %d", j)
	}
}

// TestCylinderWinding checks that every non-degenerate triangle faces outwards
// when its vertices are taken counter-clockwise.
func TestCylinderWinding(t *testing.T) {
	for _, policy := range []SeamPolicy{SeamDuplicated, SeamWrapped} {
		t.Run(policy.String(), func(t *testing.T) {
			m, err := Cylinder(8, 24, policy)
			require.NoError(t, err)

			for k := 0; k < m.FillDrawCount; k += 3 {
				a := m.Vertices[m.Fill[k]].Position
				b := m.Vertices[m.Fill[k+1]].Position
				c := m.Vertices[m.Fill[k+2]].Position

				n := b.Sub(a).Cross(c.Sub(a))
				if n.Length() < 1e-6 {
					continue
				}
				centroid := a.Add(b).Add(c).Scale(1.0 / 3)
				outward := math.Vec3{X: centroid.X, Z: centroid.Z}
				assert.Greater(t, n.Dot(outward), float32(0), "triangle %d", k/3)
			}
		})
	}
}

func TestGridWinding(t *testing.T) {
	m, err := Grid(4, 6)
	require.NoError(t, err)

	for k := 0; k < len(m.Fill); k += 3 {
		a := m.Vertices[m.Fill[k]].Position
		b := m.Vertices[m.Fill[k+1]].Position
		c := m.Vertices[m.Fill[k+2]].Position
		n := b.Sub(a).Cross(c.Sub(a))
		assert.Greater(t, n.Z, float32(0), "triangle %d", k/3)
	}
}

func TestLineOrder(t *testing.T) {
	m, err := Grid(2, 3)
	require.NoError(t, err)

	// Horizontal segments come first and join neighbouring rows of a column.
	assert.Equal(t, []uint16{0, 1, 1, 2, 3, 4}, m.Lines[:6])
	// Vertical segments follow and join neighbouring columns.
	horizontal := 2 * 2 * (3 + 1)
	assert.Equal(t, []uint16{0, 3, 1, 4}, m.Lines[horizontal:horizontal+4])
}

func TestFillTieBreak(t *testing.T) {
	m, err := Cylinder(1, 4, SeamDuplicated)
	require.NoError(t, err)

	vps := uint16(5)
	assert.Equal(t, []uint16{vps, 1, 0, 1 + vps, 1, vps}, m.Fill[:6])
}

func TestInvalidResolution(t *testing.T) {
	tests := []struct {
		name string
		kind MeshKind
		res  Resolution
	}{
		{"zero rows", KindGrid, Resolution{Rows: 0, Cols: 4}},
		{"negative cols", KindCylinder, Resolution{Rows: 4, Cols: -1}},
		{"too many vertices", KindGrid, Resolution{Rows: 300, Cols: 300}},
		{"wrapped zero", KindWrappedCylinder, Resolution{Rows: 0, Cols: 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Build(tt.kind, tt.res)
			require.Error(t, err)
			assert.True(t, IsConsistencyError(err))
		})
	}
}

func TestMustBuildPanics(t *testing.T) {
	assert.Panics(t, func() {
		MustBuild(KindGrid, Resolution{})
	})
}

func TestExpectedCountsMatchBuild(t *testing.T) {
	res := Resolution{Rows: 5, Cols: 7}
	for _, kind := range Kinds() {
		want, err := ExpectedCounts(kind, res)
		require.NoError(t, err)
		assert.Equal(t, want, MustBuild(kind, res).Counts(), kind.String())
	}
}

func TestParseKind(t *testing.T) {
	for _, kind := range Kinds() {
		got, err := ParseKind(kind.String())
		require.NoError(t, err)
		assert.Equal(t, kind, got)
	}
	_, err := ParseKind("torus")
	assert.Error(t, err)
}

func TestInterleaved(t *testing.T) {
	grid, err := Grid(1, 1)
	require.NoError(t, err)
	assert.Equal(t, 20, grid.Stride())
	assert.Len(t, grid.Interleaved(), 4*5)

	cyl, err := Cylinder(1, 3, SeamDuplicated)
	require.NoError(t, err)
	assert.Equal(t, 12, cyl.Stride())
	assert.Len(t, cyl.Interleaved(), cyl.VertexCount()*3)
}

func TestFitQuad(t *testing.T) {
	t.Run("same aspect flipped", func(t *testing.T) {
		q := FitQuad(800, -600, 800, 600)
		assert.Equal(t, float32(-1), q[0])
		assert.Equal(t, float32(0), q[3], "flipped v of bottom-left")
		assert.Equal(t, float32(1), q[11], "flipped v of top-left")
	})

	t.Run("wider source", func(t *testing.T) {
		q := FitQuad(1600, 600, 800, 600)
		assert.InDelta(t, -0.5, q[1], 1e-6)
		assert.InDelta(t, 0.5, q[9], 1e-6)
		assert.Equal(t, float32(-1), q[0])
	})

	t.Run("taller source", func(t *testing.T) {
		q := FitQuad(400, 600, 800, 600)
		assert.InDelta(t, -0.5, q[0], 1e-6)
		assert.InDelta(t, 0.5, q[4], 1e-6)
		assert.Equal(t, float32(-1), q[1])
	})
}
