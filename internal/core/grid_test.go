package core

import "testing"

func TestIndexCoordsBijection(t *testing.T) {
	g := NewGrid(7, 5)
	for i := 0; i < g.Cells(); i++ {
		x, y := g.Coords(i)
		if x < 0 || x >= g.W || y < 0 || y >= g.H {
			t.Fatalf("Coords(%d) = (%d,%d) out of bounds", i, x, y)
		}
		if got := g.Index(x, y); got != i {
			t.Fatalf("Index(Coords(%d)) = %d", i, got)
		}
	}
	for y := 0; y < g.H; y++ {
		for x := 0; x < g.W; x++ {
			gx, gy := g.Coords(g.Index(x, y))
			if gx != x || gy != y {
				t.Fatalf("Coords(Index(%d,%d)) = (%d,%d)", x, y, gx, gy)
			}
		}
	}
}

func TestWrapEdges(t *testing.T) {
	g := NewGrid(6, 4)
	for y := 0; y < g.H; y++ {
		if g.WrapIndex(-1, y) != g.WrapIndex(g.W-1, y) {
			t.Fatalf("x = -1 must wrap to the right edge at y=%d", y)
		}
		if g.WrapIndex(g.W, y) != g.WrapIndex(0, y) {
			t.Fatalf("x = W must wrap to the left edge at y=%d", y)
		}
	}
	for x := 0; x < g.W; x++ {
		if g.WrapIndex(x, -1) != g.WrapIndex(x, g.H-1) {
			t.Fatalf("y = -1 must wrap to the bottom edge at x=%d", x)
		}
		if g.WrapIndex(x, g.H) != g.WrapIndex(x, 0) {
			t.Fatalf("y = H must wrap to the top edge at x=%d", x)
		}
	}
}

func TestWrapFarNegatives(t *testing.T) {
	g := NewGrid(5, 5)
	// Floored modulo, not truncating remainder: -6 mod 5 is 4.
	if x, y := g.Wrap(-6, -11); x != 4 || y != 4 {
		t.Fatalf("Wrap(-6,-11) = (%d,%d), want (4,4)", x, y)
	}
	if x, y := g.Wrap(12, 7); x != 2 || y != 2 {
		t.Fatalf("Wrap(12,7) = (%d,%d), want (2,2)", x, y)
	}
}
