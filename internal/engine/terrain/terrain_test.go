package terrain

import (
	"errors"
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/midgard-terrain/internal/engine/noise"
)

const eps = 1e-4

func near(a, b float32) bool {
	return math.Abs(float64(a-b)) < eps
}

func TestBuildPlane(t *testing.T) {
	m := BuildPlane(30, 2)

	if m.Columns != 4 || m.Rows != 4 {
		t.Fatalf("expected 4x4 grid, got %dx%d", m.Columns, m.Rows)
	}
	if len(m.Vertices) != 16 {
		t.Fatalf("expected 16 vertices, got %d", len(m.Vertices))
	}
	if got := m.TriangleCount(); got != 18 {
		t.Errorf("expected 18 triangles, got %d", got)
	}

	first := m.Vertices[0].Position
	last := m.Vertices[15].Position
	if first != (mgl32.Vec3{-15, 0, -15}) {
		t.Errorf("first vertex = %v, want [-15 0 -15]", first)
	}
	if last != (mgl32.Vec3{15, 0, 15}) {
		t.Errorf("last vertex = %v, want [15 0 15]", last)
	}

	// Row-major: index 1 steps along X, index Columns steps along Z
	if got := m.Vertices[1].Position.X() - first.X(); !near(got, 10) {
		t.Errorf("column step = %g, want 10", got)
	}
	if got := m.Vertices[m.Index(0, 1)].Position.Z() - first.Z(); !near(got, 10) {
		t.Errorf("row step = %g, want 10", got)
	}

	if m.Bounds.Min != (mgl32.Vec3{-15, 0, -15}) || m.Bounds.Max != (mgl32.Vec3{15, 0, 15}) {
		t.Errorf("unexpected bounds %+v", m.Bounds)
	}
}

func TestBuildPlaneFacesUp(t *testing.T) {
	m := BuildPlane(10, 3)
	for i := 0; i < len(m.Indices); i += 3 {
		a := m.Vertices[m.Indices[i]].Position
		b := m.Vertices[m.Indices[i+1]].Position
		c := m.Vertices[m.Indices[i+2]].Position
		n := FaceNormal(a, b, c)
		if !near(n.Y(), 1) {
			t.Fatalf("triangle %d faces %v, want +Y", i/3, n)
		}
	}
}

func TestBuildPlaneNoSubdivisions(t *testing.T) {
	m := BuildPlane(2, 0)
	if len(m.Vertices) != 4 {
		t.Errorf("expected 4 vertices, got %d", len(m.Vertices))
	}
	if m.TriangleCount() != 2 {
		t.Errorf("expected 2 triangles, got %d", m.TriangleCount())
	}
}

func TestClassifyBiome(t *testing.T) {
	const water = -0.3
	tests := []struct {
		name       string
		normalized float32
		want       Biome
	}{
		{"deep", -1, BiomeWater},
		{"below water", -0.5, BiomeWater},
		{"at water level", water, BiomeWater},
		{"just above water", -0.2999, BiomeLand},
		{"zero", 0, BiomeLand},
		{"at sand threshold", SandThreshold, BiomeLand},
		{"just above sand", 0.3001, BiomeSand},
		{"peak", 1, BiomeSand},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ClassifyBiome(tt.normalized, water); got != tt.want {
				t.Errorf("ClassifyBiome(%g) = %v, want %v", tt.normalized, got, tt.want)
			}
		})
	}
}

func TestClassifyBiomePartition(t *testing.T) {
	// Every height lands in exactly one band, and bands are ordered
	prev := BiomeWater
	for i := -1000; i <= 1000; i++ {
		h := float32(i) / 1000
		b := ClassifyBiome(h, -0.3)
		if b < prev {
			t.Fatalf("band decreased at %g: %v after %v", h, b, prev)
		}
		prev = b
	}
	if prev != BiomeSand {
		t.Errorf("expected highest band to be sand, got %v", prev)
	}
}

func TestClassifyBiomeHighWater(t *testing.T) {
	// Sand takes priority when the water level is above the sand threshold
	if got := ClassifyBiome(0.5, 0.8); got != BiomeSand {
		t.Errorf("expected sand, got %v", got)
	}
	if got := ClassifyBiome(0.2, 0.8); got != BiomeWater {
		t.Errorf("expected water, got %v", got)
	}
}

func TestBiomeColorDistinct(t *testing.T) {
	seen := make(map[mgl32.Vec4]Biome)
	for _, b := range Biomes {
		c := BiomeColor(b)
		if other, ok := seen[c]; ok {
			t.Errorf("%v and %v share color %v", b, other, c)
		}
		seen[c] = b
		if c.W() != 1 {
			t.Errorf("%v color should be opaque, got alpha %g", b, c.W())
		}
	}
}

func TestBiomeString(t *testing.T) {
	if BiomeWater.String() != "water" || BiomeLand.String() != "land" || BiomeSand.String() != "sand" {
		t.Error("unexpected biome names")
	}
	if Biome(9).String() != "unknown" {
		t.Errorf("expected unknown, got %s", Biome(9))
	}
}

func TestNewGeneratorErrors(t *testing.T) {
	valid := Params{TerrainHeight: 10, WaterLevel: -0.3, Zoom: 40}

	tests := []struct {
		name  string
		p     Params
		field noise.Field
	}{
		{"nil field", valid, nil},
		{"zero zoom", Params{TerrainHeight: 10, WaterLevel: -0.3, Zoom: 0}, noise.Constant(0)},
		{"negative zoom", Params{TerrainHeight: 10, WaterLevel: -0.3, Zoom: -1}, noise.Constant(0)},
		{"zero height", Params{TerrainHeight: 0, WaterLevel: -0.3, Zoom: 1}, noise.Constant(0)},
		{"water too low", Params{TerrainHeight: 10, WaterLevel: -1.5, Zoom: 1}, noise.Constant(0)},
		{"water too high", Params{TerrainHeight: 10, WaterLevel: 1.1, Zoom: 1}, noise.Constant(0)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewGenerator(tt.p, tt.field)
			if !errors.Is(err, ErrInvalidParams) {
				t.Errorf("expected ErrInvalidParams, got %v", err)
			}
		})
	}
}

func TestApplyFlatNoiseIsAllLand(t *testing.T) {
	m := BuildPlane(30, 2)
	g, err := NewGenerator(Params{TerrainHeight: 10, WaterLevel: -0.3, Zoom: 1}, noise.Constant(0))
	if err != nil {
		t.Fatalf("NewGenerator failed: %v", err)
	}
	g.Apply(m)

	if len(m.Vertices) != 16 {
		t.Fatalf("expected 4x4 grid, got %d vertices", len(m.Vertices))
	}
	for i, v := range m.Vertices {
		if v.Position.Y() != 0 {
			t.Errorf("vertex %d height = %g, want 0", i, v.Position.Y())
		}
		if v.Biome != BiomeLand {
			t.Errorf("vertex %d biome = %v, want land", i, v.Biome)
		}
		if v.Color != BiomeColor(BiomeLand) {
			t.Errorf("vertex %d color = %v, want land color", i, v.Color)
		}
		if !near(v.Normal.Y(), 1) {
			t.Errorf("vertex %d normal = %v, want +Y", i, v.Normal)
		}
	}
}

func TestApplySingleWaterVertex(t *testing.T) {
	m := &Mesh{
		Vertices: []Vertex{{Position: mgl32.Vec3{3, 0, 4}}},
		Columns:  1,
		Rows:     1,
	}
	g, _ := NewGenerator(Params{TerrainHeight: 10, WaterLevel: -0.3, Zoom: 1}, noise.Constant(-0.5))
	g.Apply(m)

	v := m.Vertices[0]
	if v.Position.Y() != -5 {
		t.Errorf("height = %g, want -5", v.Position.Y())
	}
	if got := NormalizedHeight(&v, 10); got != -0.5 {
		t.Errorf("normalized height = %g, want -0.5", got)
	}
	if v.Biome != BiomeWater {
		t.Errorf("biome = %v, want water", v.Biome)
	}
	if v.Normal != (mgl32.Vec3{0, 1, 0}) {
		t.Errorf("isolated vertex normal = %v, want +Y", v.Normal)
	}
}

func TestApplyMatchesNoise(t *testing.T) {
	field := noise.NewPerlin(noise.Params{Seed: 3, Octaves: 4, Persistence: 2, Lacunarity: 2})
	p := Params{TerrainHeight: 12, WaterLevel: -0.2, Zoom: 7}

	m := BuildPlane(50, 20)
	g, _ := NewGenerator(p, field)
	g.Apply(m)

	for i, v := range m.Vertices {
		want := float32(field.Noise2D(float64(v.Position.X())/p.Zoom, float64(v.Position.Z())/p.Zoom)) * p.TerrainHeight
		if v.Position.Y() != want {
			t.Fatalf("vertex %d height = %g, want %g", i, v.Position.Y(), want)
		}
		n := NormalizedHeight(&v, p.TerrainHeight)
		if n < -1 || n > 1 {
			t.Fatalf("vertex %d normalized height %g out of range", i, n)
		}
		if v.Biome != ClassifyBiome(n, p.WaterLevel) {
			t.Fatalf("vertex %d biome %v does not match height %g", i, v.Biome, n)
		}
		if l := v.Normal.Len(); !near(l, 1) {
			t.Fatalf("vertex %d normal length %g, want 1", i, l)
		}
	}

	if m.Bounds.Min.Y() > m.Bounds.Max.Y() {
		t.Errorf("bounds not recomputed: %+v", m.Bounds)
	}
}

func TestApplyDeterministic(t *testing.T) {
	build := func() *Mesh {
		field := noise.NewSimplex(noise.Params{Seed: 11, Octaves: 5, Persistence: 2, Lacunarity: 2})
		g, _ := NewGenerator(Params{TerrainHeight: 10, WaterLevel: -0.3, Zoom: 9}, field)
		m := BuildPlane(40, 15)
		g.Apply(m)
		return m
	}

	a, b := build(), build()
	for i := range a.Vertices {
		if a.Vertices[i] != b.Vertices[i] {
			t.Fatalf("vertex %d differs between runs: %+v vs %+v", i, a.Vertices[i], b.Vertices[i])
		}
	}
}

func TestComputeNormalsSlope(t *testing.T) {
	// y = x gives a constant 45 degree slope facing -X
	m := BuildPlane(4, 3)
	g, _ := NewGenerator(Params{TerrainHeight: 1, WaterLevel: -1, Zoom: 1}, noise.Func(func(x, _ float64) float64 {
		return x
	}))
	g.Apply(m)

	want := mgl32.Vec3{-1, 1, 0}.Normalize()
	for i, v := range m.Vertices {
		if !v.Normal.ApproxEqualThreshold(want, eps) {
			t.Errorf("vertex %d normal = %v, want %v", i, v.Normal, want)
		}
	}
}

func TestNormalizeDegenerate(t *testing.T) {
	if got := Normalize(mgl32.Vec3{}); got != (mgl32.Vec3{0, 1, 0}) {
		t.Errorf("Normalize(zero) = %v, want +Y", got)
	}
	if got := Normalize(mgl32.Vec3{0, 0, 5}); got != (mgl32.Vec3{0, 0, 1}) {
		t.Errorf("Normalize = %v, want [0 0 1]", got)
	}
}

func TestHeightmapInterpolation(t *testing.T) {
	// Linear field: interpolation is exact everywhere on the grid
	m := BuildPlane(10, 9)
	g, _ := NewGenerator(Params{TerrainHeight: 1, WaterLevel: -1, Zoom: 1}, noise.Func(func(x, z float64) float64 {
		return 0.05*x + 0.02*z
	}))
	g.Apply(m)

	hm := BuildHeightmap(m)
	if hm.Columns != 11 || hm.Rows != 11 {
		t.Fatalf("expected 11x11 heightmap, got %dx%d", hm.Columns, hm.Rows)
	}
	if !near(hm.Step, 1) {
		t.Errorf("step = %g, want 1", hm.Step)
	}

	tests := []struct{ x, z float32 }{
		{0, 0}, {0.5, 0.5}, {-3.25, 2.75}, {4.9, -4.9}, {5, 5},
	}
	for _, tt := range tests {
		want := 0.05*tt.x + 0.02*tt.z
		if got := hm.HeightAt(tt.x, tt.z); !near(got, want) {
			t.Errorf("HeightAt(%g, %g) = %g, want %g", tt.x, tt.z, got, want)
		}
	}

	// Outside the grid clamps to the nearest edge
	if got, want := hm.HeightAt(100, 0), hm.HeightAt(5, 0); !near(got, want) {
		t.Errorf("HeightAt outside = %g, want edge %g", got, want)
	}
	if got, want := hm.HeightAt(-100, -100), hm.At(0, 0); !near(got, want) {
		t.Errorf("HeightAt corner = %g, want %g", got, want)
	}
}

func TestHeightmapEmpty(t *testing.T) {
	hm := &Heightmap{}
	if got := hm.HeightAt(1, 1); got != 0 {
		t.Errorf("HeightAt on empty heightmap = %g, want 0", got)
	}
}
