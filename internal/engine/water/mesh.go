package water

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/midgard-terrain/internal/engine/terrain"
)

// Vertex is a flat-shaded water vertex.
type Vertex struct {
	Position mgl32.Vec3
	Normal   mgl32.Vec3
}

// Mesh holds the water surface ready for upload. Every triangle owns its three
// vertices, so Indices is simply 0..len(Vertices)-1.
type Mesh struct {
	Vertices []Vertex
	Indices  []uint32
	Dropped  int // Triangles skipped because an index had no point
}

// BuildMesh splits shared vertices and assigns each triangle its face normal.
func BuildMesh(s *Set) *Mesh {
	m := &Mesh{
		Vertices: make([]Vertex, 0, len(s.Indices)),
		Indices:  make([]uint32, 0, len(s.Indices)),
	}

	n := uint32(len(s.Points))
	for t := 0; t+2 < len(s.Indices); t += 3 {
		ia, ib, ic := s.Indices[t], s.Indices[t+1], s.Indices[t+2]
		if ia >= n || ib >= n || ic >= n {
			m.Dropped++
			continue
		}

		a, b, c := s.Points[ia], s.Points[ib], s.Points[ic]
		normal := terrain.FaceNormal(a, b, c)

		base := uint32(len(m.Vertices))
		m.Vertices = append(m.Vertices,
			Vertex{Position: a, Normal: normal},
			Vertex{Position: b, Normal: normal},
			Vertex{Position: c, Normal: normal},
		)
		m.Indices = append(m.Indices, base, base+1, base+2)
	}
	return m
}

// TriangleCount returns the number of triangles kept in the mesh.
func (m *Mesh) TriangleCount() int {
	return len(m.Indices) / 3
}
