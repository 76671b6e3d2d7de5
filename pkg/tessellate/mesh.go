// Package tessellate generates vertex and index buffers for parametric surfaces
// sampled on a regular (s, t) grid: a unit cylinder and a polar-warped grid.
//
// Every mesh carries two index buffers over the same vertices: a triangle list for
// filled rendering and a line list for wireframe overlays. Generation is a pure
// function of the resolution; counts are checked against their closed-form values.
package tessellate

import (
	"github.com/Faultbox/distortion/pkg/math"
)

// MaxVertices is the largest vertex count addressable by 16-bit indices.
const MaxVertices = 1 << 16

// Vertex is a single sample of a surface.
type Vertex struct {
	Position math.Vec3
	TexCoord math.Vec2
}

// Counts holds the element counts of a mesh.
type Counts struct {
	Vertices int
	Fill     int
	Lines    int
}

// Mesh is the CPU-side result of tessellation. The renderer takes ownership of the
// slices once, at upload time.
type Mesh struct {
	Name         string
	Vertices     []Vertex
	Fill         []uint16 // triangle list, 3 per triangle
	Lines        []uint16 // line list, 2 per segment
	HasTexCoords bool

	// FillDrawCount is how many fill indices should be drawn. It is smaller than
	// len(Fill) only for the wrapped cylinder, whose last band closes top to bottom.
	FillDrawCount int
}

// VertexCount returns the number of vertices.
func (m *Mesh) VertexCount() int { return len(m.Vertices) }

// FillIndexCount returns the number of triangle indices.
func (m *Mesh) FillIndexCount() int { return len(m.Fill) }

// LineIndexCount returns the number of line indices.
func (m *Mesh) LineIndexCount() int { return len(m.Lines) }

// Counts returns the element counts actually held by the mesh.
func (m *Mesh) Counts() Counts {
	return Counts{
		Vertices: len(m.Vertices),
		Fill:     len(m.Fill),
		Lines:    len(m.Lines),
	}
}

// Stride returns the interleaved vertex size in bytes.
func (m *Mesh) Stride() int {
	if m.HasTexCoords {
		return 5 * 4
	}
	return 3 * 4
}

// Interleaved returns the vertex data as a flat float slice: position, followed by
// the texture coordinate when the mesh has one.
func (m *Mesh) Interleaved() []float32 {
	n := 3
	if m.HasTexCoords {
		n = 5
	}
	out := make([]float32, 0, len(m.Vertices)*n)
	for _, v := range m.Vertices {
		out = append(out, v.Position.X, v.Position.Y, v.Position.Z)
		if m.HasTexCoords {
			out = append(out, v.TexCoord.X, v.TexCoord.Y)
		}
	}
	return out
}

// check compares what was generated against the analytic counts.
func (m *Mesh) check(want Counts) error {
	got := m.Counts()
	switch {
	case got.Vertices != want.Vertices:
		return &ConsistencyError{Mesh: m.Name, What: "vertices", Got: got.Vertices, Want: want.Vertices}
	case got.Fill != want.Fill:
		return &ConsistencyError{Mesh: m.Name, What: "fill indices", Got: got.Fill, Want: want.Fill}
	case got.Lines != want.Lines:
		return &ConsistencyError{Mesh: m.Name, What: "line indices", Got: got.Lines, Want: want.Lines}
	}
	return nil
}
