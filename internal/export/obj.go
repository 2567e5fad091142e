// Package export writes generated meshes to interchange formats for inspection
// in external tools.
package export

import (
	"bufio"
	"fmt"
	"io"

	"github.com/Faultbox/midgard-terrain/internal/engine/terrain"
	"github.com/Faultbox/midgard-terrain/internal/engine/water"
)

// WriteTerrainOBJ writes the terrain as a Wavefront OBJ object. Vertex colors
// use the common "v x y z r g b" extension.
func WriteTerrainOBJ(w io.Writer, name string, m *terrain.Mesh) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "# %d vertices, %d triangles\n", len(m.Vertices), m.TriangleCount())
	fmt.Fprintf(bw, "o %s\n", name)

	for i := range m.Vertices {
		v := &m.Vertices[i]
		fmt.Fprintf(bw, "v %g %g %g %g %g %g\n",
			v.Position.X(), v.Position.Y(), v.Position.Z(),
			v.Color.X(), v.Color.Y(), v.Color.Z())
	}
	for i := range m.Vertices {
		n := m.Vertices[i].Normal
		fmt.Fprintf(bw, "vn %g %g %g\n", n.X(), n.Y(), n.Z())
	}
	writeFaces(bw, m.Indices)

	return bw.Flush()
}

// WriteWaterOBJ writes the flat-shaded water mesh as a Wavefront OBJ object.
func WriteWaterOBJ(w io.Writer, name string, m *water.Mesh) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "# %d vertices, %d triangles, %d dropped\n", len(m.Vertices), m.TriangleCount(), m.Dropped)
	fmt.Fprintf(bw, "o %s\n", name)

	for i := range m.Vertices {
		p := m.Vertices[i].Position
		fmt.Fprintf(bw, "v %g %g %g\n", p.X(), p.Y(), p.Z())
	}
	for i := range m.Vertices {
		n := m.Vertices[i].Normal
		fmt.Fprintf(bw, "vn %g %g %g\n", n.X(), n.Y(), n.Z())
	}
	writeFaces(bw, m.Indices)

	return bw.Flush()
}

// writeFaces emits one "f" line per triangle. OBJ indices are 1-based and the
// normal index matches the position index.
func writeFaces(w io.Writer, indices []uint32) {
	for t := 0; t+2 < len(indices); t += 3 {
		a, b, c := indices[t]+1, indices[t+1]+1, indices[t+2]+1
		fmt.Fprintf(w, "f %d//%d %d//%d %d//%d\n", a, a, b, b, c, c)
	}
}
