package terrain

import (
	"errors"
	"fmt"

	"github.com/Faultbox/midgard-terrain/internal/engine/noise"
)

// ErrInvalidParams is wrapped by every generator parameter error.
var ErrInvalidParams = errors.New("invalid terrain params")

// Params holds the height and biome settings of a Generator.
type Params struct {
	TerrainHeight float32 // Vertical scale applied to noise
	WaterLevel    float32 // Fraction of TerrainHeight, in [-1, 1]
	Zoom          float64 // Horizontal divisor for noise sampling
}

// Validate rejects parameters that make the output geometrically meaningless.
func (p Params) Validate() error {
	var errs []error
	if p.Zoom <= 0 {
		errs = append(errs, fmt.Errorf("%w: zoom must be > 0, got %g", ErrInvalidParams, p.Zoom))
	}
	if p.TerrainHeight <= 0 {
		errs = append(errs, fmt.Errorf("%w: terrain height must be > 0, got %g", ErrInvalidParams, p.TerrainHeight))
	}
	if p.WaterLevel < -1 || p.WaterLevel > 1 {
		errs = append(errs, fmt.Errorf("%w: water level must be within [-1, 1], got %g", ErrInvalidParams, p.WaterLevel))
	}
	return errors.Join(errs...)
}

// Generator raises a planar grid with noise and colors it by biome.
type Generator struct {
	params Params
	field  noise.Field
}

// NewGenerator creates a generator sampling the given noise field.
func NewGenerator(p Params, field noise.Field) (*Generator, error) {
	if field == nil {
		return nil, fmt.Errorf("%w: nil noise field", ErrInvalidParams)
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return &Generator{params: p, field: field}, nil
}

// Params returns the generator settings.
func (g *Generator) Params() Params {
	return g.params
}

// Height returns the terrain elevation at world position (x, z).
func (g *Generator) Height(x, z float32) float32 {
	n := g.field.Noise2D(float64(x)/g.params.Zoom, float64(z)/g.params.Zoom)
	return float32(n) * g.params.TerrainHeight
}

// Apply replaces every vertex height with the noise elevation, assigns biome
// and color, then recomputes normals and bounds. The mesh is modified in place.
func (g *Generator) Apply(m *Mesh) {
	for i := range m.Vertices {
		v := &m.Vertices[i]
		v.Position[1] = g.Height(v.Position.X(), v.Position.Z())
		v.Biome = ClassifyBiome(NormalizedHeight(v, g.params.TerrainHeight), g.params.WaterLevel)
		v.Color = BiomeColor(v.Biome)
	}
	ComputeNormals(m)
	m.RecomputeBounds()
}
