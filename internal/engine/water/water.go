// Package water derives the water surface from a generated terrain grid.
//
// Extraction runs after terrain.Generator.Apply and only reads the finished
// vertex array. The result is a Set of points and triangle indices, which
// BuildMesh turns into a flat-shaded mesh with unshared vertices.
package water

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/midgard-terrain/internal/engine/terrain"
)

// Set is the raw water geometry: points plus triangle index triples.
type Set struct {
	Points  []mgl32.Vec3
	Indices []uint32
}

// TriangleCount returns the number of index triples.
func (s *Set) TriangleCount() int {
	return len(s.Indices) / 3
}

// IsWater reports whether a vertex is at or below the water threshold.
func IsWater(v *terrain.Vertex, waterLevel, terrainHeight float32) bool {
	return terrain.NormalizedHeight(v, terrainHeight) <= waterLevel
}

// ExtractLegacy scans vertices in row-major order and collects every water
// vertex. A counter k starts at 0 and advances by 3 for each source vertex,
// water or not; each water vertex adds the triangle {k, k+2, k+1}.
//
// The indices are synthetic. They do not follow grid adjacency and can point
// past the end of Points, which BuildMesh reports as dropped triangles.
func ExtractLegacy(vertices []terrain.Vertex, waterLevel, terrainHeight float32) *Set {
	s := &Set{}
	var k uint32
	for i := range vertices {
		v := &vertices[i]
		if IsWater(v, waterLevel, terrainHeight) {
			s.Points = append(s.Points, v.Position)
			s.Indices = append(s.Indices, k, k+2, k+1)
		}
		k += 3
	}
	return s
}

// ExtractGrid collects the same points as ExtractLegacy, but builds triangles
// from the terrain's own triangulation: a terrain triangle is kept when all
// three corners are water, and its indices are remapped into Points.
func ExtractGrid(m *terrain.Mesh, waterLevel, terrainHeight float32) *Set {
	s := &Set{}
	remap := make([]int32, len(m.Vertices))
	for i := range m.Vertices {
		v := &m.Vertices[i]
		if !IsWater(v, waterLevel, terrainHeight) {
			remap[i] = -1
			continue
		}
		remap[i] = int32(len(s.Points))
		s.Points = append(s.Points, v.Position)
	}

	for t := 0; t+2 < len(m.Indices); t += 3 {
		a, b, c := remap[m.Indices[t]], remap[m.Indices[t+1]], remap[m.Indices[t+2]]
		if a < 0 || b < 0 || c < 0 {
			continue
		}
		s.Indices = append(s.Indices, uint32(a), uint32(b), uint32(c))
	}
	return s
}

// BuildPlane creates a single quad at height y covering bounds, extended by
// padding on every side. Both triangles face up.
func BuildPlane(bounds terrain.Bounds, y, padding float32) *Set {
	minX, maxX := bounds.Min.X()-padding, bounds.Max.X()+padding
	minZ, maxZ := bounds.Min.Z()-padding, bounds.Max.Z()+padding

	return &Set{
		Points: []mgl32.Vec3{
			{minX, y, minZ},
			{maxX, y, minZ},
			{maxX, y, maxZ},
			{minX, y, maxZ},
		},
		Indices: []uint32{0, 3, 1, 1, 3, 2},
	}
}
