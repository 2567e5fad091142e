// Package config handles terrain generator configuration loading and management.
package config

// Noise backends.
const (
	NoisePerlin  = "perlin"
	NoiseSimplex = "simplex"
)

// Water mesh extraction modes.
const (
	WaterLegacy = "legacy" // sequential synthetic triangles, one per water vertex
	WaterGrid   = "grid"   // grid cells whose corners are all under water
	WaterPlane  = "plane"  // single flat quad at water height
)

// Config holds all generator settings.
type Config struct {
	Terrain TerrainConfig `yaml:"terrain"`
	Noise   NoiseConfig   `yaml:"noise"`
	Water   WaterConfig   `yaml:"water"`
	Cache   CacheConfig   `yaml:"cache"`
	Export  ExportConfig  `yaml:"export"`
	Logging LoggingConfig `yaml:"logging"`
}

// TerrainConfig holds the startup parameters of the height and biome pass.
type TerrainConfig struct {
	GridSize      float32 `yaml:"grid_size"`      // Side length of the square plane in world units
	Subdivisions  int     `yaml:"subdivisions"`   // Interior cuts per side
	TerrainHeight float32 `yaml:"terrain_height"` // Vertical scale applied to noise
	WaterLevel    float32 `yaml:"water_level"`    // Fraction of TerrainHeight, in [-1, 1]
	Zoom          float64 `yaml:"zoom"`           // Horizontal divisor for noise sampling
	Seed          int64   `yaml:"seed"`
	Octaves       int     `yaml:"octaves"`
}

// NoiseConfig selects and tunes the coherent noise backend.
type NoiseConfig struct {
	Kind        string  `yaml:"kind"`
	Persistence float64 `yaml:"persistence"` // Amplitude divisor per octave
	Lacunarity  float64 `yaml:"lacunarity"`  // Frequency multiplier per octave
}

// WaterConfig controls how the water surface is derived.
type WaterConfig struct {
	Mode    string  `yaml:"mode"`
	Padding float32 `yaml:"padding"` // Only used by plane mode
}

// CacheConfig holds the generated world cache location.
type CacheConfig struct {
	Path string `yaml:"path"` // Empty disables caching
}

// ExportConfig holds output settings for the CLI.
type ExportConfig struct {
	Dir string `yaml:"dir"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Terrain: TerrainConfig{
			GridSize:      100,
			Subdivisions:  200,
			TerrainHeight: 10,
			WaterLevel:    -0.3,
			Zoom:          40,
			Seed:          1,
			Octaves:       4,
		},
		Noise: NoiseConfig{
			Kind:        NoisePerlin,
			Persistence: 2.0,
			Lacunarity:  2.0,
		},
		Water: WaterConfig{
			Mode:    WaterLegacy,
			Padding: 0,
		},
		Cache: CacheConfig{
			Path: "",
		},
		Export: ExportConfig{
			Dir: ".",
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}

// VerticesPerSide returns the number of grid vertices along one edge.
func (t TerrainConfig) VerticesPerSide() int {
	return t.Subdivisions + 2
}
