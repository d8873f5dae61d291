package sim

import (
	"strconv"

	"gpulife/internal/core"
)

// Life runs Conway's Game of Life over a ping-pong store. It satisfies the
// core.Sim registry contract so entrypoints can construct it by name.
type Life struct {
	grid  core.Grid
	store *Store
	step  uint64
	tile  int
	p     float64
}

// New returns a Life simulation for the given grid.
func New(g core.Grid, tile int, liveProbability float64) *Life {
	return &Life{grid: g, store: NewStore(g), tile: tile, p: liveProbability}
}

// Name returns the simulation identifier.
func (l *Life) Name() string { return "life" }

// Size returns the grid dimensions.
func (l *Life) Size() core.Size { return core.Size{W: l.grid.W, H: l.grid.H} }

// Cells exposes the authoritative buffer for the current step.
func (l *Life) Cells() []uint8 { return l.store.Current(l.step) }

// Store exposes the underlying buffer pair.
func (l *Life) Store() *Store { return l.store }

// StepCount returns the number of generations computed since the last Reset.
func (l *Life) StepCount() uint64 { return l.step }

// Reset reseeds the board from the provided seed and restarts the counter.
func (l *Life) Reset(seed int64) {
	l.step = 0
	l.store.Init(core.NewRNG(seed), l.p)
}

// Step advances the simulation by one generation. The kernel reads the
// current buffer and writes the next one; incrementing the counter afterwards
// is what swaps the roles.
func (l *Life) Step() {
	Step(l.grid, l.store.Current(l.step), l.store.Next(l.step), l.tile)
	l.step++
}

// fromMap parses the string map form used by the registry. Unknown keys are
// ignored and invalid values keep their defaults.
func fromMap(cfg map[string]string) (side, tile int, p float64) {
	def := core.DefaultConfig()
	side, tile, p = def.Size, def.TileSize, def.LiveProbability
	if cfg == nil {
		return side, tile, p
	}
	if v, ok := cfg["size"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			side = parsed
		}
	}
	if v, ok := cfg["tile"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			tile = parsed
		}
	}
	if v, ok := cfg["p"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 && parsed <= 1 {
			p = parsed
		}
	}
	return side, tile, p
}

func init() {
	core.Register("life", func(cfg map[string]string) core.Sim {
		side, tile, p := fromMap(cfg)
		return New(core.NewGrid(side, side), tile, p)
	})
}
