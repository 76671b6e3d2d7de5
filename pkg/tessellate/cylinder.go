package tessellate

import "fmt"

// SeamPolicy selects how a cylinder closes along t=0/t=1.
type SeamPolicy int

const (
	// SeamDuplicated samples t=1 as an explicit copy of t=0, so no index wraps.
	SeamDuplicated SeamPolicy = iota
	// SeamWrapped samples each ring once and closes it with modulo indexing.
	SeamWrapped
)

// String returns the policy name.
func (p SeamPolicy) String() string {
	switch p {
	case SeamDuplicated:
		return "duplicated"
	case SeamWrapped:
		return "wrapped"
	default:
		return fmt.Sprintf("SeamPolicy(%d)", int(p))
	}
}

// CylinderCounts returns the closed-form counts of a duplicated-seam cylinder.
func CylinderCounts(stacks, slices int) Counts {
	circles := (stacks + 1) * slices
	longitudinal := stacks * slices
	return Counts{
		Vertices: (slices + 1) * (stacks + 1),
		Fill:     (slices + 1) * stacks * 6,
		Lines:    2 * (circles + longitudinal),
	}
}

// WrappedCylinderCounts returns the closed-form counts of a wrapped-seam cylinder.
func WrappedCylinderCounts(stacks, slices int) Counts {
	circles := stacks * slices
	longitudinal := (stacks - 1) * slices
	return Counts{
		Vertices: stacks * slices,
		Fill:     stacks * slices * 6,
		Lines:    2 * (circles + longitudinal),
	}
}

// Cylinder tessellates the unit cylinder with the given number of stacks (along Y)
// and slices (around Y).
func Cylinder(stacks, slices int, policy SeamPolicy) (*Mesh, error) {
	switch policy {
	case SeamDuplicated:
		return duplicatedCylinder(stacks, slices)
	case SeamWrapped:
		return wrappedCylinder(stacks, slices)
	default:
		return nil, fmt.Errorf("unknown seam policy: %v", policy)
	}
}

func duplicatedCylinder(stacks, slices int) (*Mesh, error) {
	want := CylinderCounts(stacks, slices)
	if err := validate(KindCylinder.String(), stacks, slices, want.Vertices); err != nil {
		return nil, err
	}

	m := &Mesh{
		Name:     KindCylinder.String(),
		Vertices: make([]Vertex, 0, want.Vertices),
		Fill:     make([]uint16, 0, want.Fill),
		Lines:    make([]uint16, 0, want.Lines),
	}

	for j := 0; j <= stacks; j++ {
		s := float32(j) / float32(stacks)
		for i := 0; i <= slices; i++ {
			t := float32(i) / float32(slices)
			m.Vertices = append(m.Vertices, Vertex{Position: EvaluateCylinder(s, t)})
		}
	}

	// Two triangles per cell sharing the bottom-left to top-right diagonal.
	vps := slices + 1 // vertices per stack
	n := 0
	for j := 0; j < stacks; j++ {
		for i := 0; i < vps; i++ {
			next := (i + 1) % vps
			m.Fill = append(m.Fill,
				uint16(n+i+vps), uint16(n+next), uint16(n+i),
				uint16(n+next+vps), uint16(n+next), uint16(n+i+vps),
			)
		}
		n += vps
	}

	// Circles
	n = 0
	for j := 0; j <= stacks; j++ {
		for i := 0; i < slices; i++ {
			m.Lines = append(m.Lines, uint16(n+i), uint16(n+i+1))
		}
		n += vps
	}

	// Longitudinal
	n = 0
	for j := 0; j < stacks; j++ {
		for i := 0; i < slices; i++ {
			m.Lines = append(m.Lines, uint16(n+i), uint16(n+i+vps))
		}
		n += vps
	}

	m.FillDrawCount = len(m.Fill)
	if err := m.check(want); err != nil {
		return nil, err
	}
	return m, nil
}

func wrappedCylinder(stacks, slices int) (*Mesh, error) {
	want := WrappedCylinderCounts(stacks, slices)
	if err := validate(KindWrappedCylinder.String(), stacks, slices, want.Vertices); err != nil {
		return nil, err
	}

	m := &Mesh{
		Name:     KindWrappedCylinder.String(),
		Vertices: make([]Vertex, 0, want.Vertices),
		Fill:     make([]uint16, 0, want.Fill),
		Lines:    make([]uint16, 0, want.Lines),
	}

	// Rings span the full height; a single ring sits at the bottom.
	var ds float32
	if stacks > 1 {
		ds = 1 / float32(stacks-1)
	}
	for j := 0; j < stacks; j++ {
		s := float32(j) * ds
		for i := 0; i < slices; i++ {
			t := float32(i) / float32(slices)
			m.Vertices = append(m.Vertices, Vertex{Position: EvaluateCylinder(s, t)})
		}
	}

	count := want.Vertices
	n := 0
	for j := 0; j < stacks; j++ {
		for i := 0; i < slices; i++ {
			next := (i + 1) % slices
			m.Fill = append(m.Fill,
				uint16((n+i+slices)%count), uint16((n+next)%count), uint16((n+i)%count),
				uint16((n+next+slices)%count), uint16((n+next)%count), uint16((n+i+slices)%count),
			)
		}
		n += slices
	}

	// Circles, closed by index.
	n = 0
	for j := 0; j < stacks; j++ {
		for i := 0; i < slices; i++ {
			m.Lines = append(m.Lines, uint16(n+i), uint16(n+(i+1)%slices))
		}
		n += slices
	}

	// Longitudinal
	n = 0
	for j := 0; j < stacks-1; j++ {
		for i := 0; i < slices; i++ {
			m.Lines = append(m.Lines, uint16(n+i), uint16(n+i+slices))
		}
		n += slices
	}

	m.FillDrawCount = (stacks - 1) * slices * 6
	if err := m.check(want); err != nil {
		return nil, err
	}
	return m, nil
}
