package core

// Grid describes the fixed dimensions of a cell grid and the mapping between
// linear cell indices and (x, y) coordinates. The grid is a torus: Wrap is
// the only supported topology.
type Grid struct {
	W, H int
}

// NewGrid returns a grid with the given dimensions.
func NewGrid(w, h int) Grid {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	return Grid{W: w, H: h}
}

// Cells returns the total cell count.
func (g Grid) Cells() int { return g.W * g.H }

// Index returns the linear index for in-bounds coordinates (x, y).
func (g Grid) Index(x, y int) int { return y*g.W + x }

// Coords returns the (x, y) coordinates for linear index i.
func (g Grid) Coords(i int) (int, int) { return i % g.W, i / g.W }

// Wrap applies toroidal wrapping to the provided coordinates. The double
// modulo is floored modulo, so negative inputs wrap to the opposite edge
// instead of underflowing.
func (g Grid) Wrap(x, y int) (int, int) {
	x = (x%g.W + g.W) % g.W
	y = (y%g.H + g.H) % g.H
	return x, y
}

// WrapIndex returns the linear index of the wrapped coordinates.
func (g Grid) WrapIndex(x, y int) int {
	x, y = g.Wrap(x, y)
	return y*g.W + x
}
