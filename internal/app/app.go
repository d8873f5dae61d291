//go:build ebiten

package app

import (
	"fmt"
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"gpulife/internal/core"
	"gpulife/internal/render"
)

// clearColor matches the wgpu variant's render pass clear.
var clearColor = color.RGBA{R: 0, G: 0, B: 102, A: 255}

// Game adapts a simulation to the ebiten.Game interface and acts as the frame
// driver: each update encodes one simulation step, each draw presents the
// buffer that step just produced. The step counter is the only buffer-role
// synchronization in the shader path.
type Game struct {
	cfg  *core.Config
	sim  core.Sim
	grid core.Grid

	mesh    *render.Mesh
	painter *render.Painter

	gpuStep bool
	states  [2]*ebiten.Image
	stepSh  *ebiten.Shader
	showSh  *ebiten.Shader
	pix     []byte
	step    uint64

	paused   bool
	tickOnce bool
	seed     int64
}

// New constructs the driver for the provided simulation. With gpuStep the
// grid advances on the GPU via the step shader over a ping-pong image pair;
// otherwise the simulation steps on the CPU and the instance mesh renders it.
// Shader compilation failures are returned for the caller to treat as fatal.
func New(s core.Sim, cfg *core.Config, gpuStep bool) (*Game, error) {
	size := s.Size()
	grid := core.NewGrid(size.W, size.H)
	g := &Game{
		cfg:     cfg,
		sim:     s,
		grid:    grid,
		mesh:    render.NewMesh(grid),
		painter: render.NewPainter(),
		gpuStep: gpuStep,
		seed:    cfg.Seed,
	}
	if gpuStep {
		var err error
		if g.stepSh, err = render.NewStepShader(); err != nil {
			return nil, fmt.Errorf("compiling step shader: %w", err)
		}
		if g.showSh, err = render.NewDisplayShader(); err != nil {
			return nil, fmt.Errorf("compiling display shader: %w", err)
		}
		g.states[0] = ebiten.NewImage(grid.W, grid.H)
		g.states[1] = ebiten.NewImage(grid.W, grid.H)
		g.pix = make([]byte, grid.Cells()*4)
		g.uploadState()
	}
	return g, nil
}

// Reset reinitializes the simulation state with the provided seed.
func (g *Game) Reset(seed int64) {
	g.seed = seed
	g.sim.Reset(seed)
	g.step = 0
	g.tickOnce = false
	if g.gpuStep {
		g.states[1].Clear()
		g.uploadState()
	}
}

// uploadState copies the CPU-seeded cells into the current state image.
func (g *Game) uploadState() {
	render.FillStateRGBA(g.pix, g.sim.Cells())
	g.states[g.step%2].WritePixels(g.pix)
}

// Update handles per-frame input and advances the simulation.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.tickOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.Reset(g.seed)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.Reset(time.Now().UnixNano())
	}

	if g.cfg.Static {
		return nil
	}
	if g.paused && !g.tickOnce {
		return nil
	}
	g.tickOnce = false

	if g.gpuStep {
		g.shaderStep()
	} else {
		g.sim.Step()
	}
	return nil
}

// shaderStep advances the grid one generation on the GPU: the current state
// image feeds the step shader writing the other image, then the parity
// counter flips the roles. The counter advances only after the dispatch is
// issued, so the draw that follows reads the freshly written image.
func (g *Game) shaderStep() {
	src := g.states[g.step%2]
	dst := g.states[(g.step+1)%2]
	op := &ebiten.DrawRectShaderOptions{}
	op.Images[0] = src
	op.Blend = ebiten.BlendCopy
	dst.DrawRectShader(g.grid.W, g.grid.H, g.stepSh, op)
	g.step++
}

// Draw renders the current simulation state.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(clearColor)
	if g.gpuStep {
		op := &ebiten.DrawRectShaderOptions{}
		op.Images[0] = g.states[g.step%2]
		op.GeoM.Scale(float64(g.cfg.Scale), float64(g.cfg.Scale))
		screen.DrawRectShader(g.grid.W, g.grid.H, g.showSh, op)
		return
	}
	b := screen.Bounds()
	g.mesh.Update(g.sim.Cells(), float32(b.Dx()), float32(b.Dy()))
	g.painter.Draw(screen, g.mesh)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.grid.W * g.cfg.Scale, g.grid.H * g.cfg.Scale
}
