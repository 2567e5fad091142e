package config

import (
	"flag"
	"strconv"
)

var (
	flagConfig       = flag.String("config", "", "Path to config file")
	flagDebug        = flag.Bool("debug", false, "Enable debug logging")
	flagSeed         = flag.Int64("seed", 0, "Noise seed (0 keeps the configured value)")
	flagOctaves      = flag.Int("octaves", 0, "Noise octave count")
	flagZoom         = flag.Float64("zoom", 0, "Horizontal noise divisor")
	flagHeight       = flag.Float64("height", 0, "Terrain height scale")
	flagSize         = flag.Float64("size", 0, "Grid side length in world units")
	flagSubdivisions = flag.Int("subdivisions", -1, "Grid subdivisions per side")
	flagNoise        = flag.String("noise", "", "Noise backend (perlin, simplex)")
	flagWaterMode    = flag.String("water-mode", "", "Water mesh mode (legacy, grid, plane)")
	flagCache        = flag.String("cache", "", "Path to the world cache database")

	// Water level may legitimately be 0, so it tracks whether it was set.
	flagWaterLevel optionalFloat
)

func init() {
	flag.Var(&flagWaterLevel, "water-level", "Water threshold as a fraction of terrain height")
}

// optionalFloat is a float flag that remembers whether it was given.
type optionalFloat struct {
	value float64
	set   bool
}

func (f *optionalFloat) String() string {
	if !f.set {
		return ""
	}
	return strconv.FormatFloat(f.value, 'g', -1, 64)
}

func (f *optionalFloat) Set(s string) error {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return err
	}
	f.value = v
	f.set = true
	return nil
}

// ParseFlags parses command-line flags. Call this early in main().
func ParseFlags() {
	flag.Parse()
}

// ParseFlagsFrom parses flags from args, used by subcommands.
func ParseFlagsFrom(args []string) error {
	return flag.CommandLine.Parse(args)
}

// Args returns the non-flag arguments left after parsing.
func Args() []string {
	return flag.Args()
}

// ConfigPath returns the explicit config path if provided via --config flag.
func ConfigPath() string {
	return *flagConfig
}

// applyFlags applies CLI flag overrides to the config.
func applyFlags(cfg *Config) {
	if *flagDebug {
		cfg.Logging.Level = "debug"
	}
	if *flagSeed != 0 {
		cfg.Terrain.Seed = *flagSeed
	}
	if *flagOctaves != 0 {
		cfg.Terrain.Octaves = *flagOctaves
	}
	if *flagZoom != 0 {
		cfg.Terrain.Zoom = *flagZoom
	}
	if flagWaterLevel.set {
		cfg.Terrain.WaterLevel = float32(flagWaterLevel.value)
	}
	if *flagHeight != 0 {
		cfg.Terrain.TerrainHeight = float32(*flagHeight)
	}
	if *flagSize != 0 {
		cfg.Terrain.GridSize = float32(*flagSize)
	}
	if *flagSubdivisions >= 0 {
		cfg.Terrain.Subdivisions = *flagSubdivisions
	}
	if *flagNoise != "" {
		cfg.Noise.Kind = *flagNoise
	}
	if *flagWaterMode != "" {
		cfg.Water.Mode = *flagWaterMode
	}
	if *flagCache != "" {
		cfg.Cache.Path = *flagCache
	}
}
