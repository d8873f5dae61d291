package render

import "gpulife/internal/core"

// VerticesPerCell is the number of vertices in one instance quad: two
// triangles sharing no vertex data.
const VerticesPerCell = 6

// quad is the shared local geometry for every instance. It spans [-0.8, 0.8]
// so live cells leave a visible gutter inside their tile. Never mutated.
var quad = [VerticesPerCell * 2]float32{
	-0.8, -0.8,
	0.8, -0.8,
	0.8, 0.8,

	-0.8, -0.8,
	0.8, 0.8,
	-0.8, 0.8,
}

// Vertex is one screen-space corner of a cell quad with its gradient color.
type Vertex struct {
	DstX, DstY                     float32
	ColorR, ColorG, ColorB, ColorA float32
}

// Mesh holds the expanded per-instance geometry for one frame. It is plain
// data so the expansion stays testable without a display.
type Mesh struct {
	grid     core.Grid
	Vertices []Vertex
}

// NewMesh allocates vertex storage for every cell of the grid.
func NewMesh(g core.Grid) *Mesh {
	return &Mesh{grid: g, Vertices: make([]Vertex, g.Cells()*VerticesPerCell)}
}

// Grid returns the grid the mesh is shaped for.
func (m *Mesh) Grid() core.Grid { return m.grid }

// Update rebuilds the vertices from the current cell states. Each instance
// decodes its index into a cell coordinate exactly like Grid.Coords, scales
// the shared quad by the cell state and offsets it into the cell's tile on a
// [-1, 1] canvas before mapping to the vpW by vpH pixel viewport. A dead
// cell's quad collapses to a degenerate point at the tile origin, which is
// what hides it. The color is a pure function of the cell coordinate:
// (x/W, y/H, 1-x/W, 1) for alive and dead alike.
func (m *Mesh) Update(cells []uint8, vpW, vpH float32) {
	w := float32(m.grid.W)
	h := float32(m.grid.H)
	for i := range cells {
		x, y := m.grid.Coords(i)
		state := float32(cells[i])
		fx, fy := float32(x), float32(y)
		offX := fx / w * 2
		offY := fy / h * 2
		r := fx / w
		g := fy / h
		b := 1 - r
		for v := 0; v < VerticesPerCell; v++ {
			lx := quad[v*2] * state
			ly := quad[v*2+1] * state
			ndcX := (lx+1)/w - 1 + offX
			ndcY := (ly+1)/h - 1 + offY
			out := &m.Vertices[i*VerticesPerCell+v]
			out.DstX = (ndcX + 1) / 2 * vpW
			out.DstY = (1 - (ndcY+1)/2) * vpH
			out.ColorR = r
			out.ColorG = g
			out.ColorB = b
			out.ColorA = 1
		}
	}
}
