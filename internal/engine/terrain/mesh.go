package terrain

import "github.com/go-gl/mathgl/mgl32"

// BuildPlane creates a flat square grid centered on the origin at y = 0.
// Each side has subdivisions+2 vertices spanning size world units. Every cell is
// split into two triangles wound so their faces point up (+Y).
func BuildPlane(size float32, subdivisions int) *Mesh {
	n := subdivisions + 2
	step := size / float32(n-1)
	half := size / 2

	vertices := make([]Vertex, 0, n*n)
	for row := 0; row < n; row++ {
		z := -half + float32(row)*step
		for col := 0; col < n; col++ {
			x := -half + float32(col)*step
			vertices = append(vertices, Vertex{
				Position: mgl32.Vec3{x, 0, z},
				Normal:   mgl32.Vec3{0, 1, 0},
				Color:    mgl32.Vec4{1, 1, 1, 1},
				Biome:    BiomeLand,
			})
		}
	}

	indices := make([]uint32, 0, (n-1)*(n-1)*6)
	for row := 0; row < n-1; row++ {
		for col := 0; col < n-1; col++ {
			i := uint32(row*n + col)
			next := i + uint32(n) // same column, next row
			indices = append(indices,
				i, next, i+1,
				i+1, next, next+1,
			)
		}
	}

	m := &Mesh{
		Vertices: vertices,
		Indices:  indices,
		Columns:  n,
		Rows:     n,
	}
	m.RecomputeBounds()
	return m
}
