// Package world assembles the startup terrain: noise field, height and biome
// pass, water extraction and the derived meshes.
package world

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/Faultbox/midgard-terrain/internal/config"
	"github.com/Faultbox/midgard-terrain/internal/engine/noise"
	"github.com/Faultbox/midgard-terrain/internal/engine/terrain"
	"github.com/Faultbox/midgard-terrain/internal/engine/water"
)

// World is the generated scene handed to the renderer. It is built once and
// not modified afterwards.
type World struct {
	Params   config.TerrainConfig `json:"params"`
	Terrain  *terrain.Mesh        `json:"terrain"`
	WaterSet *water.Set           `json:"water_set"`
	Water    *water.Mesh          `json:"water"`
	Stats    Stats                `json:"stats"`

	heightmap *terrain.Heightmap
}

// Stats summarizes a generated world.
type Stats struct {
	Vertices       int                   `json:"vertices"`
	Triangles      int                   `json:"triangles"`
	Biomes         map[terrain.Biome]int `json:"biomes"`
	WaterPoints    int                   `json:"water_points"`
	WaterTriangles int                   `json:"water_triangles"`
	Dropped        int                   `json:"dropped"`
	MinHeight      float32               `json:"min_height"`
	MaxHeight      float32               `json:"max_height"`
	Elapsed        time.Duration         `json:"elapsed"`
}

// Build validates cfg and generates the world with the configured noise backend.
func Build(cfg *config.Config, log *zap.Logger) (*World, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	field, err := noise.New(cfg.Noise.Kind, noise.Params{
		Seed:        cfg.Terrain.Seed,
		Octaves:     cfg.Terrain.Octaves,
		Persistence: cfg.Noise.Persistence,
		Lacunarity:  cfg.Noise.Lacunarity,
	})
	if err != nil {
		return nil, fmt.Errorf("creating noise field: %w", err)
	}

	return BuildWithField(cfg, field, log)
}

// BuildWithField generates the world from an explicit noise field. The noise
// settings in cfg are ignored.
func BuildWithField(cfg *config.Config, field noise.Field, log *zap.Logger) (*World, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if log == nil {
		log = zap.NewNop()
	}
	start := time.Now()
	tc := cfg.Terrain

	gen, err := terrain.NewGenerator(terrain.Params{
		TerrainHeight: tc.TerrainHeight,
		WaterLevel:    tc.WaterLevel,
		Zoom:          tc.Zoom,
	}, field)
	if err != nil {
		return nil, err
	}

	mesh := terrain.BuildPlane(tc.GridSize, tc.Subdivisions)
	log.Debug("plane built",
		zap.Int("columns", mesh.Columns),
		zap.Int("rows", mesh.Rows),
		zap.Float32("size", tc.GridSize))

	gen.Apply(mesh)

	var set *water.Set
	switch cfg.Water.Mode {
	case config.WaterGrid:
		set = water.ExtractGrid(mesh, tc.WaterLevel, tc.TerrainHeight)
	case config.WaterPlane:
		set = water.BuildPlane(mesh.Bounds, tc.WaterLevel*tc.TerrainHeight, cfg.Water.Padding)
	default:
		set = water.ExtractLegacy(mesh.Vertices, tc.WaterLevel, tc.TerrainHeight)
	}
	waterMesh := water.BuildMesh(set)

	w := &World{
		Params:   tc,
		Terrain:  mesh,
		WaterSet: set,
		Water:    waterMesh,
	}
	w.Stats = computeStats(w)
	w.Stats.Elapsed = time.Since(start)

	if waterMesh.Dropped > 0 {
		log.Debug("water triangles without points skipped",
			zap.String("mode", cfg.Water.Mode),
			zap.Int("dropped", waterMesh.Dropped))
	}
	log.Info("terrain generated",
		zap.Int64("seed", tc.Seed),
		zap.String("noise", cfg.Noise.Kind),
		zap.Int("vertices", w.Stats.Vertices),
		zap.Int("water", w.Stats.Biomes[terrain.BiomeWater]),
		zap.Int("land", w.Stats.Biomes[terrain.BiomeLand]),
		zap.Int("sand", w.Stats.Biomes[terrain.BiomeSand]),
		zap.Int("water_triangles", w.Stats.WaterTriangles),
		zap.Duration("elapsed", w.Stats.Elapsed))

	return w, nil
}

// Heightmap returns a height lookup over the terrain grid, built on first use.
func (w *World) Heightmap() *terrain.Heightmap {
	if w.heightmap == nil {
		w.heightmap = terrain.BuildHeightmap(w.Terrain)
	}
	return w.heightmap
}

// Probe describes the terrain at a world position.
type Probe struct {
	X, Z       float32
	Height     float32
	Normalized float32
	Biome      terrain.Biome
}

// ProbeAt samples the interpolated height at (x, z) and classifies it.
func (w *World) ProbeAt(x, z float32) Probe {
	h := w.Heightmap().HeightAt(x, z)
	n := h / w.Params.TerrainHeight
	return Probe{
		X:          x,
		Z:          z,
		Height:     h,
		Normalized: n,
		Biome:      terrain.ClassifyBiome(n, w.Params.WaterLevel),
	}
}

func computeStats(w *World) Stats {
	s := Stats{
		Vertices:       len(w.Terrain.Vertices),
		Triangles:      w.Terrain.TriangleCount(),
		Biomes:         make(map[terrain.Biome]int, len(terrain.Biomes)),
		WaterPoints:    len(w.WaterSet.Points),
		WaterTriangles: w.Water.TriangleCount(),
		Dropped:        w.Water.Dropped,
		MinHeight:      w.Terrain.Bounds.Min.Y(),
		MaxHeight:      w.Terrain.Bounds.Max.Y(),
	}
	for _, b := range terrain.Biomes {
		s.Biomes[b] = 0
	}
	for i := range w.Terrain.Vertices {
		s.Biomes[w.Terrain.Vertices[i].Biome]++
	}
	return s
}
