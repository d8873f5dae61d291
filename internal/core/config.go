package core

import (
	"flag"
	"fmt"
	"strconv"
)

// Config holds the startup parameters shared by the demo entrypoints. All
// values are fixed once the tick loop starts; an invalid value is fatal at
// startup.
type Config struct {
	Size            int     // grid side length (width == height)
	TPS             int     // simulation ticks per second
	Seed            int64   // seed for the initial grid
	LiveProbability float64 // chance a cell starts alive
	TileSize        int     // square tile side for the parallel step kernel
	Scale           int     // window pixels per cell
	Static          bool    // render the seeded grid, never tick
}

// DefaultConfig returns the animated-variant defaults.
func DefaultConfig() *Config {
	return &Config{
		Size:            64,
		TPS:             15,
		Seed:            42,
		LiveProbability: 0.4,
		TileSize:        8,
		Scale:           8,
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.Size, "size", c.Size, "grid side length")
	fs.IntVar(&c.TPS, "tps", c.TPS, "simulation ticks per second")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for the initial grid")
	fs.Float64Var(&c.LiveProbability, "p", c.LiveProbability, "probability a cell starts alive")
	fs.IntVar(&c.TileSize, "tile", c.TileSize, "square tile side for parallel stepping")
	fs.IntVar(&c.Scale, "scale", c.Scale, "window pixels per cell")
	fs.BoolVar(&c.Static, "static", c.Static, "render the seeded grid without ever ticking")
}

// ApplyVariantDefaults adjusts defaults that depend on the chosen variant:
// the static variant uses the smaller reference grid unless -size was given
// explicitly.
func (c *Config) ApplyVariantDefaults(fs *flag.FlagSet) {
	if !c.Static {
		return
	}
	sized := false
	fs.Visit(func(f *flag.Flag) {
		if f.Name == "size" {
			sized = true
		}
	})
	if !sized {
		c.Size = 32
	}
}

// Validate reports the first invalid parameter.
func (c *Config) Validate() error {
	if c.Size < 3 {
		return fmt.Errorf("grid side must be at least 3, got %d", c.Size)
	}
	if c.TPS <= 0 {
		return fmt.Errorf("tps must be positive, got %d", c.TPS)
	}
	if c.LiveProbability < 0 || c.LiveProbability > 1 {
		return fmt.Errorf("live probability must be in [0, 1], got %g", c.LiveProbability)
	}
	if c.TileSize <= 0 {
		return fmt.Errorf("tile size must be positive, got %d", c.TileSize)
	}
	if c.Scale <= 0 {
		return fmt.Errorf("scale must be positive, got %d", c.Scale)
	}
	return nil
}

// SimOptions renders the configuration as the string map consumed by the
// simulation registry.
func (c *Config) SimOptions() map[string]string {
	return map[string]string{
		"size": strconv.Itoa(c.Size),
		"tile": strconv.Itoa(c.TileSize),
		"p":    strconv.FormatFloat(c.LiveProbability, 'f', -1, 64),
	}
}
