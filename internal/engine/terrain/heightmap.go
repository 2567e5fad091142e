package terrain

// Heightmap provides terrain height lookup on a generated grid.
type Heightmap struct {
	Heights []float32 // Row-major, Rows x Columns
	Columns int
	Rows    int
	OriginX float32 // World X of column 0
	OriginZ float32 // World Z of row 0
	Step    float32 // Distance between neighboring vertices
}

// BuildHeightmap snapshots the vertex heights of a grid mesh.
func BuildHeightmap(m *Mesh) *Heightmap {
	heights := make([]float32, len(m.Vertices))
	for i := range m.Vertices {
		heights[i] = m.Vertices[i].Position.Y()
	}

	var step float32
	if m.Columns > 1 {
		step = m.Vertices[1].Position.X() - m.Vertices[0].Position.X()
	}

	hm := &Heightmap{
		Heights: heights,
		Columns: m.Columns,
		Rows:    m.Rows,
		Step:    step,
	}
	if len(m.Vertices) > 0 {
		hm.OriginX = m.Vertices[0].Position.X()
		hm.OriginZ = m.Vertices[0].Position.Z()
	}
	return hm
}

// At returns the height of grid vertex (col, row), clamped to the grid.
func (h *Heightmap) At(col, row int) float32 {
	col = clampi(col, 0, h.Columns-1)
	row = clampi(row, 0, h.Rows-1)
	return h.Heights[row*h.Columns+col]
}

// HeightAt returns the interpolated terrain height at a world position.
// Positions outside the grid are clamped to its edge.
func (h *Heightmap) HeightAt(worldX, worldZ float32) float32 {
	if len(h.Heights) == 0 {
		return 0
	}
	if h.Step == 0 {
		return h.Heights[0]
	}

	fx := clampf((worldX-h.OriginX)/h.Step, 0, float32(h.Columns-1))
	fz := clampf((worldZ-h.OriginZ)/h.Step, 0, float32(h.Rows-1))

	col := int(fx)
	row := int(fz)
	if col >= h.Columns-1 {
		col = h.Columns - 2
	}
	if row >= h.Rows-1 {
		row = h.Rows - 2
	}

	fracX := clampf(fx-float32(col), 0, 1)
	fracZ := clampf(fz-float32(row), 0, 1)

	// Lerp along X on both rows, then along Z
	near := h.At(col, row)*(1-fracX) + h.At(col+1, row)*fracX
	far := h.At(col, row+1)*(1-fracX) + h.At(col+1, row+1)*fracX
	return near*(1-fracZ) + far*fracZ
}

func clampf(v, min, max float32) float32 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

func clampi(v, min, max int) int {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
