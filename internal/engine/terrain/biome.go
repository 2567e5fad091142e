package terrain

import "github.com/go-gl/mathgl/mgl32"

// Biome is the elevation band of a terrain vertex.
type Biome uint8

// Biome bands, lowest first.
const (
	BiomeWater Biome = iota
	BiomeLand
	BiomeSand
)

// SandThreshold is the normalized height above which a vertex is Sand.
const SandThreshold = 0.3

// Biomes lists every band in ascending order.
var Biomes = []Biome{BiomeWater, BiomeLand, BiomeSand}

var biomeColors = [...]mgl32.Vec4{
	BiomeWater: {0.12, 0.35, 0.78, 1},
	BiomeLand:  {0.24, 0.56, 0.20, 1},
	BiomeSand:  {0.86, 0.79, 0.55, 1},
}

func (b Biome) String() string {
	switch b {
	case BiomeWater:
		return "water"
	case BiomeLand:
		return "land"
	case BiomeSand:
		return "sand"
	default:
		return "unknown"
	}
}

// ClassifyBiome maps a normalized height to its band.
// Heights above SandThreshold are Sand, heights at or below waterLevel are Water,
// everything else is Land. A value exactly at a threshold goes to the lower band,
// and Sand wins when waterLevel is above SandThreshold.
func ClassifyBiome(normalized, waterLevel float32) Biome {
	switch {
	case normalized > SandThreshold:
		return BiomeSand
	case normalized <= waterLevel:
		return BiomeWater
	default:
		return BiomeLand
	}
}

// BiomeColor returns the vertex color for a band.
func BiomeColor(b Biome) mgl32.Vec4 {
	if int(b) < len(biomeColors) {
		return biomeColors[b]
	}
	return mgl32.Vec4{1, 0, 1, 1}
}

// NormalizedHeight returns the vertex elevation as a fraction of terrainHeight.
func NormalizedHeight(v *Vertex, terrainHeight float32) float32 {
	return v.Position.Y() / terrainHeight
}
