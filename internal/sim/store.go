package sim

import "gpulife/internal/core"

// Store owns the ping-pong pair of cell state buffers for the lifetime of the
// process. At any step exactly one buffer is the authoritative input and the
// other is the step's output; the roles derive from step parity alone, so a
// swap is a pure index flip with no copying. Only Init and the step kernel
// ever write to a buffer.
type Store struct {
	grid core.Grid
	bufs [2][]uint8
}

// NewStore allocates both buffers for the given grid. The buffers are never
// reallocated afterwards.
func NewStore(g core.Grid) *Store {
	n := g.Cells()
	return &Store{grid: g, bufs: [2][]uint8{make([]uint8, n), make([]uint8, n)}}
}

// Grid returns the grid the buffers are shaped for.
func (s *Store) Grid() core.Grid { return s.grid }

// Init seeds buffer A with independent Bernoulli draws, 1 with probability p,
// and zeroes buffer B. It runs before the first step; step 0 then reads A.
func (s *Store) Init(rng *core.RNG, p float64) {
	core.FillBernoulli(rng.Source(), s.bufs[0], p)
	for i := range s.bufs[1] {
		s.bufs[1][i] = 0
	}
}

// Current returns the authoritative input buffer for the given step.
func (s *Store) Current(step uint64) []uint8 { return s.bufs[step%2] }

// Next returns the output buffer for the given step.
func (s *Store) Next(step uint64) []uint8 { return s.bufs[(step+1)%2] }
