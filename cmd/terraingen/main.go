// terraingen generates noise terrain with biome coloring and a water surface,
// and exports the result for inspection.
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"

	"go.uber.org/zap"

	"github.com/Faultbox/midgard-terrain/internal/cache"
	"github.com/Faultbox/midgard-terrain/internal/config"
	"github.com/Faultbox/midgard-terrain/internal/export"
	"github.com/Faultbox/midgard-terrain/internal/game/world"
	"github.com/Faultbox/midgard-terrain/internal/logger"
)

var flagOut = flag.String("out", "", "Output directory for generated files")

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]
	if command == "help" || command == "-h" || command == "--help" {
		printUsage()
		return
	}

	if err := config.ParseFlagsFrom(os.Args[2:]); err != nil {
		os.Exit(2)
	}
	args := config.Args()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Sugar.Debugf("Config: %+v", cfg)

	switch command {
	case "generate", "gen":
		err = cmdGenerate(cfg)
	case "info":
		err = cmdInfo(cfg)
	case "probe":
		err = cmdProbe(cfg, args)
	case "config":
		err = cmdConfig(cfg, args)
	case "cache":
		err = cmdCache(cfg)
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		printUsage()
		os.Exit(1)
	}

	if err != nil {
		logger.Error("command failed", zap.String("command", command), zap.Error(err))
		logger.Sync()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`terraingen - noise terrain and water mesh generator

Usage:
  terraingen <command> [flags] [args]

Commands:
  generate            Generate terrain and write OBJ meshes and PNG maps
  info                Print terrain statistics
  probe <x> <z>       Print interpolated height and biome at a world position
  config [save PATH]  Print the effective config, or save it as YAML
  cache               List cached worlds

Flags:
  -config PATH        Config file (default ./terrain.yaml)
  -seed N             Noise seed
  -octaves N          Noise octave count
  -zoom F             Horizontal noise divisor
  -water-level F      Water threshold as a fraction of terrain height
  -height F           Terrain height scale
  -size F             Grid side length
  -subdivisions N     Grid subdivisions per side
  -noise KIND         perlin or simplex
  -water-mode MODE    legacy, grid or plane
  -cache PATH         World cache database
  -out DIR            Output directory
  -debug              Debug logging

Examples:
  terraingen generate -seed 7 -out ./build
  terraingen info -noise simplex -water-mode grid
  terraingen probe 12.5 -30`)
}

// loadWorld builds the world, going through the cache when one is configured.
func loadWorld(cfg *config.Config) (*world.World, error) {
	log := logger.Named("world")
	if cfg.Cache.Path == "" {
		return world.Build(cfg, log)
	}

	store, err := cache.Open(cfg.Cache.Path)
	if err != nil {
		return nil, err
	}
	defer store.Close()

	key, err := cache.Fingerprint(cfg.Terrain, cfg.Noise, cfg.Water)
	if err != nil {
		return nil, err
	}

	var cached world.World
	err = store.Load(key, &cached)
	switch {
	case err == nil:
		log.Info("terrain loaded from cache", zap.String("key", key[:12]))
		return &cached, nil
	case !errors.Is(err, cache.ErrNotFound):
		log.Warn("cache read failed, regenerating", zap.Error(err))
	}

	w, err := world.Build(cfg, log)
	if err != nil {
		return nil, err
	}
	if err := store.Save(key, w); err != nil {
		log.Warn("cache write failed", zap.Error(err))
	}
	return w, nil
}

func cmdGenerate(cfg *config.Config) error {
	w, err := loadWorld(cfg)
	if err != nil {
		return err
	}

	dir := cfg.Export.Dir
	if *flagOut != "" {
		dir = *flagOut
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}

	outputs := []struct {
		name  string
		write func(f *os.File) error
	}{
		{"terrain.obj", func(f *os.File) error { return export.WriteTerrainOBJ(f, "terrain", w.Terrain) }},
		{"water.obj", func(f *os.File) error { return export.WriteWaterOBJ(f, "water", w.Water) }},
		{"heightmap.png", func(f *os.File) error { return export.WriteHeightmapPNG(f, w.Terrain) }},
		{"biomes.png", func(f *os.File) error { return export.WriteBiomePNG(f, w.Terrain) }},
	}

	for _, out := range outputs {
		path := filepath.Join(dir, out.name)
		if err := writeFile(path, out.write); err != nil {
			return err
		}
		logger.Info("wrote output", zap.String("path", path))
	}
	return nil
}

func writeFile(path string, write func(f *os.File) error) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := write(f); err != nil {
		f.Close()
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return f.Close()
}

func cmdInfo(cfg *config.Config) error {
	w, err := loadWorld(cfg)
	if err != nil {
		return err
	}

	s := w.Stats
	fmt.Printf("Grid:      %d x %d (%g units)\n", w.Terrain.Columns, w.Terrain.Rows, w.Params.GridSize)
	fmt.Printf("Vertices:  %d\n", s.Vertices)
	fmt.Printf("Triangles: %d\n", s.Triangles)
	fmt.Printf("Height:    %.3f .. %.3f\n", s.MinHeight, s.MaxHeight)
	fmt.Println()
	fmt.Println("Biomes:")

	type biomeStat struct {
		name  string
		count int
	}
	var stats []biomeStat
	for b, n := range s.Biomes {
		stats = append(stats, biomeStat{b.String(), n})
	}
	sort.Slice(stats, func(i, j int) bool {
		return stats[i].count > stats[j].count
	})
	for _, st := range stats {
		pct := 0.0
		if s.Vertices > 0 {
			pct = float64(st.count) * 100 / float64(s.Vertices)
		}
		fmt.Printf("  %-6s %8d  %5.1f%%\n", st.name, st.count, pct)
	}

	fmt.Println()
	fmt.Printf("Water (%s):\n", cfg.Water.Mode)
	fmt.Printf("  points    %d\n", s.WaterPoints)
	fmt.Printf("  triangles %d\n", s.WaterTriangles)
	if s.Dropped > 0 {
		fmt.Printf("  dropped   %d\n", s.Dropped)
	}
	return nil
}

func cmdProbe(cfg *config.Config, args []string) error {
	if len(args) < 2 {
		return errors.New("usage: terraingen probe <x> <z>")
	}
	x, err := strconv.ParseFloat(args[0], 32)
	if err != nil {
		return fmt.Errorf("parsing x: %w", err)
	}
	z, err := strconv.ParseFloat(args[1], 32)
	if err != nil {
		return fmt.Errorf("parsing z: %w", err)
	}

	w, err := loadWorld(cfg)
	if err != nil {
		return err
	}

	p := w.ProbeAt(float32(x), float32(z))
	fmt.Printf("Position:   (%g, %g)\n", p.X, p.Z)
	fmt.Printf("Height:     %.4f\n", p.Height)
	fmt.Printf("Normalized: %.4f\n", p.Normalized)
	fmt.Printf("Biome:      %s\n", p.Biome)
	return nil
}

func cmdConfig(cfg *config.Config, args []string) error {
	if len(args) == 0 {
		return cfg.Encode(os.Stdout)
	}
	if args[0] != "save" {
		return fmt.Errorf("unknown config action %q", args[0])
	}
	if len(args) > 1 {
		return cfg.SaveTo(args[1])
	}
	return cfg.Save()
}

func cmdCache(cfg *config.Config) error {
	if cfg.Cache.Path == "" {
		return errors.New("no cache configured (set cache.path or -cache)")
	}

	store, err := cache.Open(cfg.Cache.Path)
	if err != nil {
		return err
	}
	defer store.Close()

	keys, err := store.Keys()
	if err != nil {
		return err
	}
	for _, k := range keys {
		meta, err := store.Metadata(k)
		if err != nil {
			return err
		}
		fmt.Printf("%s  %s  %8d bytes (%d raw)\n", k[:12], meta.Created.Format("2006-01-02 15:04:05"), meta.StoredSize, meta.RawSize)
	}
	fmt.Fprintf(os.Stderr, "\n(%d cached worlds)\n", len(keys))
	return nil
}
