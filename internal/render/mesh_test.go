package render

import (
	"math"
	"testing"

	"gpulife/internal/core"
)

const eps = 1e-4

func approx(a, b float32) bool {
	return math.Abs(float64(a-b)) < eps
}

func TestDeadCellCollapsesToPoint(t *testing.T) {
	g := core.NewGrid(4, 4)
	m := NewMesh(g)
	cells := make([]uint8, g.Cells())
	m.Update(cells, 64, 64)

	for i := 0; i < g.Cells(); i++ {
		first := m.Vertices[i*VerticesPerCell]
		for v := 1; v < VerticesPerCell; v++ {
			got := m.Vertices[i*VerticesPerCell+v]
			if !approx(got.DstX, first.DstX) || !approx(got.DstY, first.DstY) {
				t.Fatalf("dead cell %d has non-degenerate quad", i)
			}
		}
		// The degenerate point sits at the tile origin, inside the tile.
		x, _ := g.Coords(i)
		tileLeft := float32(x) * 16
		tileRight := tileLeft + 16
		if first.DstX < tileLeft || first.DstX > tileRight {
			t.Fatalf("dead cell %d collapsed outside its tile column: %f", i, first.DstX)
		}
	}
}

func TestLiveCellQuadSpansTile(t *testing.T) {
	g := core.NewGrid(4, 4)
	m := NewMesh(g)
	cells := make([]uint8, g.Cells())
	idx := g.Index(1, 2)
	cells[idx] = 1
	m.Update(cells, 64, 64)

	minX, minY := float32(math.Inf(1)), float32(math.Inf(1))
	maxX, maxY := float32(math.Inf(-1)), float32(math.Inf(-1))
	for v := 0; v < VerticesPerCell; v++ {
		vert := m.Vertices[idx*VerticesPerCell+v]
		minX = min(minX, vert.DstX)
		maxX = max(maxX, vert.DstX)
		minY = min(minY, vert.DstY)
		maxY = max(maxY, vert.DstY)
	}
	// An alive quad is the [-0.8, 0.8] square, 80% of the 16px tile.
	if !approx(maxX-minX, 12.8) || !approx(maxY-minY, 12.8) {
		t.Fatalf("live quad size %.2fx%.2f, want 12.80x12.80", maxX-minX, maxY-minY)
	}
	// Centered in the tile for column 1: [16, 32] has center 24.
	if !approx((minX+maxX)/2, 24) {
		t.Fatalf("live quad x-center %.2f, want 24", (minX+maxX)/2)
	}
}

func TestColorGradient(t *testing.T) {
	g := core.NewGrid(4, 4)
	m := NewMesh(g)
	cells := make([]uint8, g.Cells())
	m.Update(cells, 64, 64)

	check := func(x, y int, r, gr, b float32) {
		t.Helper()
		v := m.Vertices[g.Index(x, y)*VerticesPerCell]
		if !approx(v.ColorR, r) || !approx(v.ColorG, gr) || !approx(v.ColorB, b) || !approx(v.ColorA, 1) {
			t.Fatalf("cell (%d,%d) color (%f,%f,%f,%f), want (%f,%f,%f,1)", x, y, v.ColorR, v.ColorG, v.ColorB, v.ColorA, r, gr, b)
		}
	}
	check(0, 0, 0, 0, 1)
	check(3, 0, 0.75, 0, 0.25)
	check(0, 3, 0, 0.75, 1)
	check(2, 1, 0.5, 0.25, 0.5)
}

func TestColorIndependentOfState(t *testing.T) {
	g := core.NewGrid(4, 4)
	m := NewMesh(g)
	cells := make([]uint8, g.Cells())
	m.Update(cells, 64, 64)
	dead := m.Vertices[0]

	cells[0] = 1
	m.Update(cells, 64, 64)
	alive := m.Vertices[0]
	if dead.ColorR != alive.ColorR || dead.ColorG != alive.ColorG || dead.ColorB != alive.ColorB {
		t.Fatal("cell color must not depend on state")
	}
}

func TestMeshVertexCount(t *testing.T) {
	g := core.NewGrid(6, 3)
	m := NewMesh(g)
	if len(m.Vertices) != g.Cells()*VerticesPerCell {
		t.Fatalf("vertex count %d, want %d", len(m.Vertices), g.Cells()*VerticesPerCell)
	}
}
