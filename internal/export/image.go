package export

import (
	"image"
	"image/color"
	"image/png"
	"io"

	"github.com/Faultbox/midgard-terrain/internal/engine/terrain"
)

// HeightmapImage renders vertex heights as grayscale, one pixel per vertex.
// The lowest vertex is black and the highest white; a flat grid is mid gray.
func HeightmapImage(m *terrain.Mesh) *image.Gray {
	img := image.NewGray(image.Rect(0, 0, m.Columns, m.Rows))
	lo, hi := m.Bounds.Min.Y(), m.Bounds.Max.Y()
	span := hi - lo

	for row := 0; row < m.Rows; row++ {
		for col := 0; col < m.Columns; col++ {
			y := m.Vertices[m.Index(col, row)].Position.Y()
			var v uint8 = 128
			if span > 0 {
				v = uint8((y - lo) / span * 255)
			}
			img.SetGray(col, row, color.Gray{Y: v})
		}
	}
	return img
}

// BiomeImage renders the biome color of each vertex.
func BiomeImage(m *terrain.Mesh) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, m.Columns, m.Rows))
	for row := 0; row < m.Rows; row++ {
		for col := 0; col < m.Columns; col++ {
			c := terrain.BiomeColor(m.Vertices[m.Index(col, row)].Biome)
			img.SetRGBA(col, row, color.RGBA{
				R: uint8(c.X() * 255),
				G: uint8(c.Y() * 255),
				B: uint8(c.Z() * 255),
				A: uint8(c.W() * 255),
			})
		}
	}
	return img
}

// WriteHeightmapPNG encodes HeightmapImage as PNG.
func WriteHeightmapPNG(w io.Writer, m *terrain.Mesh) error {
	return png.Encode(w, HeightmapImage(m))
}

// WriteBiomePNG encodes BiomeImage as PNG.
func WriteBiomePNG(w io.Writer, m *terrain.Mesh) error {
	return png.Encode(w, BiomeImage(m))
}
