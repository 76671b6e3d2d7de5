package tessellate

// GridCounts returns the closed-form counts of a rows x cols grid.
func GridCounts(rows, cols int) Counts {
	horizontal := rows * (cols + 1)
	vertical := cols * (rows + 1)
	return Counts{
		Vertices: (rows + 1) * (cols + 1),
		Fill:     6 * rows * cols,
		Lines:    2 * (horizontal + vertical),
	}
}

// Grid tessellates the [-1,1]² plane with polar-warped texture coordinates.
// Vertices are stored column by column, rows+1 per column.
func Grid(rows, cols int) (*Mesh, error) {
	want := GridCounts(rows, cols)
	if err := validate(KindGrid.String(), rows, cols, want.Vertices); err != nil {
		return nil, err
	}

	m := &Mesh{
		Name:         KindGrid.String(),
		Vertices:     make([]Vertex, 0, want.Vertices),
		Fill:         make([]uint16, 0, want.Fill),
		Lines:        make([]uint16, 0, want.Lines),
		HasTexCoords: true,
	}

	for j := 0; j <= cols; j++ {
		s := float32(j) / float32(cols)
		for i := 0; i <= rows; i++ {
			t := float32(i) / float32(rows)
			pos, uv := EvaluateWarpedGrid(s, t)
			m.Vertices = append(m.Vertices, Vertex{Position: pos, TexCoord: uv})
		}
	}

	vps := rows + 1 // vertices per column
	n := 0
	for j := 0; j < cols; j++ {
		for i := 0; i < rows; i++ {
			m.Fill = append(m.Fill,
				uint16(n+i+vps), uint16(n+i+1), uint16(n+i),
				uint16(n+i+1+vps), uint16(n+i+1), uint16(n+i+vps),
			)
		}
		n += vps
	}

	// Horizontal
	n = 0
	for j := 0; j <= cols; j++ {
		for i := 0; i < rows; i++ {
			m.Lines = append(m.Lines, uint16(n+i), uint16(n+i+1))
		}
		n += vps
	}

	// Vertical
	n = 0
	for j := 0; j < cols; j++ {
		for i := 0; i <= rows; i++ {
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
