package terrain

import "github.com/go-gl/mathgl/mgl32"

var up = mgl32.Vec3{0, 1, 0}

// ComputeNormals sets smooth vertex normals from the triangle list.
// Each face contributes its unnormalized cross product, so larger triangles
// weigh more. Vertices with no usable faces point up.
func ComputeNormals(m *Mesh) {
	for i := range m.Vertices {
		m.Vertices[i].Normal = mgl32.Vec3{}
	}

	for t := 0; t+2 < len(m.Indices); t += 3 {
		ia, ib, ic := m.Indices[t], m.Indices[t+1], m.Indices[t+2]
		a := m.Vertices[ia].Position
		b := m.Vertices[ib].Position
		c := m.Vertices[ic].Position

		face := b.Sub(a).Cross(c.Sub(a))
		m.Vertices[ia].Normal = m.Vertices[ia].Normal.Add(face)
		m.Vertices[ib].Normal = m.Vertices[ib].Normal.Add(face)
		m.Vertices[ic].Normal = m.Vertices[ic].Normal.Add(face)
	}

	for i := range m.Vertices {
		m.Vertices[i].Normal = Normalize(m.Vertices[i].Normal)
	}
}

// FaceNormal returns the unit normal of triangle (a, b, c).
func FaceNormal(a, b, c mgl32.Vec3) mgl32.Vec3 {
	return Normalize(b.Sub(a).Cross(c.Sub(a)))
}

// Normalize returns a unit vector, or +Y for near-zero input.
func Normalize(v mgl32.Vec3) mgl32.Vec3 {
	l := v.Len()
	if l < 1e-6 {
		return up
	}
	return mgl32.Vec3{v[0] / l, v[1] / l, v[2] / l}
}
