//go:build ebiten

package render

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

// maxChunkCells keeps each DrawTriangles call under the uint16 index ceiling.
const maxChunkCells = 10000

// Painter draws a cell mesh with a single white source texel.
type Painter struct {
	white   *ebiten.Image
	indices []uint16
	verts   []ebiten.Vertex
}

// NewPainter allocates the shared white texture and the identity index
// buffer. The 3x3 image with a 1x1 center sub-image avoids bleeding from
// texture filtering at quad edges.
func NewPainter() *Painter {
	base := ebiten.NewImage(3, 3)
	base.Fill(color.White)
	white := base.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)

	indices := make([]uint16, maxChunkCells*VerticesPerCell)
	for i := range indices {
		indices[i] = uint16(i)
	}
	return &Painter{white: white, indices: indices}
}

// Draw renders the mesh onto dst.
func (p *Painter) Draw(dst *ebiten.Image, m *Mesh) {
	if cap(p.verts) < len(m.Vertices) {
		p.verts = make([]ebiten.Vertex, len(m.Vertices))
	}
	verts := p.verts[:len(m.Vertices)]
	for i, v := range m.Vertices {
		verts[i] = ebiten.Vertex{
			DstX:   v.DstX,
			DstY:   v.DstY,
			SrcX:   1,
			SrcY:   1,
			ColorR: v.ColorR,
			ColorG: v.ColorG,
			ColorB: v.ColorB,
			ColorA: v.ColorA,
		}
	}

	op := &ebiten.DrawTrianglesOptions{}
	chunk := maxChunkCells * VerticesPerCell
	for off := 0; off < len(verts); off += chunk {
		end := min(off+chunk, len(verts))
		dst.DrawTriangles(verts[off:end], p.indices[:end-off], p.white, op)
	}
}
