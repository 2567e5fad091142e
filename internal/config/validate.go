package config

import (
	"errors"
	"fmt"
)

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("invalid config")

// Validate rejects parameters that make the generated geometry meaningless.
// All violations are reported in a single joined error.
func (c *Config) Validate() error {
	var errs []error
	errs = append(errs, c.Terrain.Validate()...)

	switch c.Noise.Kind {
	case NoisePerlin, NoiseSimplex:
	default:
		errs = append(errs, invalid("noise.kind %q is not one of %q, %q", c.Noise.Kind, NoisePerlin, NoiseSimplex))
	}
	if c.Noise.Persistence <= 0 {
		errs = append(errs, invalid("noise.persistence must be > 0, got %g", c.Noise.Persistence))
	}
	if c.Noise.Lacunarity <= 0 {
		errs = append(errs, invalid("noise.lacunarity must be > 0, got %g", c.Noise.Lacunarity))
	}

	switch c.Water.Mode {
	case WaterLegacy, WaterGrid, WaterPlane:
	default:
		errs = append(errs, invalid("water.mode %q is not one of %q, %q, %q", c.Water.Mode, WaterLegacy, WaterGrid, WaterPlane))
	}
	if c.Water.Padding < 0 {
		errs = append(errs, invalid("water.padding must be >= 0, got %g", c.Water.Padding))
	}

	return errors.Join(errs...)
}

// Validate checks the terrain parameters and returns one error per violation.
func (t TerrainConfig) Validate() []error {
	var errs []error
	if t.Zoom <= 0 {
		errs = append(errs, invalid("terrain.zoom must be > 0, got %g", t.Zoom))
	}
	if t.Octaves <= 0 {
		errs = append(errs, invalid("terrain.octaves must be > 0, got %d", t.Octaves))
	}
	if t.WaterLevel < -1 || t.WaterLevel > 1 {
		errs = append(errs, invalid("terrain.water_level must be within [-1, 1], got %g", t.WaterLevel))
	}
	if t.TerrainHeight <= 0 {
		errs = append(errs, invalid("terrain.terrain_height must be > 0, got %g", t.TerrainHeight))
	}
	if t.GridSize <= 0 {
		errs = append(errs, invalid("terrain.grid_size must be > 0, got %g", t.GridSize))
	}
	if t.Subdivisions < 0 {
		errs = append(errs, invalid("terrain.subdivisions must be >= 0, got %d", t.Subdivisions))
	}
	return errs
}

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidConfig, fmt.Sprintf(format, args...))
}
