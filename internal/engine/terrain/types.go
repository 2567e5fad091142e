// Package terrain builds the planar terrain grid, raises it with coherent noise,
// classifies biomes and computes lighting normals.
package terrain

import "github.com/go-gl/mathgl/mgl32"

// Vertex represents a terrain mesh vertex with all attributes.
type Vertex struct {
	Position mgl32.Vec3
	Normal   mgl32.Vec3
	Color    mgl32.Vec4
	Biome    Biome
}

// Mesh holds the terrain grid. Vertices are row-major: Rows along Z, Columns along X.
type Mesh struct {
	Vertices []Vertex
	Indices  []uint32
	Columns  int
	Rows     int
	Bounds   Bounds
}

// Bounds holds the axis-aligned bounding box of the terrain.
type Bounds struct {
	Min mgl32.Vec3
	Max mgl32.Vec3
}

// Index returns the vertex index of grid cell corner (col, row).
func (m *Mesh) Index(col, row int) int {
	return row*m.Columns + col
}

// TriangleCount returns the number of triangles in the index buffer.
func (m *Mesh) TriangleCount() int {
	return len(m.Indices) / 3
}

// RecomputeBounds refreshes Bounds from the current vertex positions.
func (m *Mesh) RecomputeBounds() {
	b := Bounds{
		Min: mgl32.Vec3{1e10, 1e10, 1e10},
		Max: mgl32.Vec3{-1e10, -1e10, -1e10},
	}
	for i := range m.Vertices {
		updateBounds(&b, m.Vertices[i].Position)
	}
	m.Bounds = b
}

func updateBounds(b *Bounds, p mgl32.Vec3) {
	for i := 0; i < 3; i++ {
		if p[i] < b.Min[i] {
			b.Min[i] = p[i]
		}
		if p[i] > b.Max[i] {
			b.Max[i] = p[i]
		}
	}
}
