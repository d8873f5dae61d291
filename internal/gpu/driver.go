//go:build wgpu

package gpu

import (
	_ "embed"
	"fmt"

	"github.com/cogentcore/webgpu/wgpu"

	"gpulife/internal/core"
	"gpulife/internal/sim"
)

//go:embed shaders/step.wgsl
var stepWGSL string

//go:embed shaders/draw.wgsl
var drawWGSL string

// workgroupSize must match @workgroup_size in step.wgsl.
const workgroupSize = 8

// quadVertices is the shared unit quad: two triangles spanning [-0.8, 0.8]
// in local space, instanced once per cell. Never mutated after upload.
var quadVertices = []float32{
	-0.8, -0.8,
	0.8, -0.8,
	0.8, 0.8,

	-0.8, -0.8,
	0.8, 0.8,
	-0.8, 0.8,
}

// clearColor is illustrative only; nothing depends on it.
var clearColor = wgpu.Color{R: 0, G: 0, B: 0.4, A: 1}

// Driver owns the GPU resources for the simulation and render passes and
// encodes one tick at a time. Buffer roles derive from step parity: bind
// group i reads state buffer i and writes the other. The counter advances
// only after the tick's compute pass is encoded, so the render pass that
// follows reads the freshly written buffer, and never before both passes of
// the previous tick were encoded.
type Driver struct {
	ctx  *Context
	grid core.Grid
	step uint64

	vertexBuf  *wgpu.Buffer
	uniformBuf *wgpu.Buffer
	stateBufs  [2]*wgpu.Buffer
	bindGroups [2]*wgpu.BindGroup

	computePipeline *wgpu.ComputePipeline
	renderPipeline  *wgpu.RenderPipeline
}

// NewDriver uploads the seeded store into the ping-pong storage buffers and
// builds both pipelines. All resources are created once; any failure is fatal
// at startup.
func NewDriver(ctx *Context, store *sim.Store) (*Driver, error) {
	g := store.Grid()
	d := &Driver{ctx: ctx, grid: g}
	device := ctx.Device

	stepModule, err := device.CreateShaderModule(&wgpu.ShaderModuleDescriptor{
		Label:          "life step",
		WGSLDescriptor: &wgpu.ShaderModuleWGSLDescriptor{Code: stepWGSL},
	})
	if err != nil {
		return nil, fmt.Errorf("compiling step shader: %w", err)
	}
	defer stepModule.Release()

	drawModule, err := device.CreateShaderModule(&wgpu.ShaderModuleDescriptor{
		Label:          "cell draw",
		WGSLDescriptor: &wgpu.ShaderModuleWGSLDescriptor{Code: drawWGSL},
	})
	if err != nil {
		return nil, fmt.Errorf("compiling draw shader: %w", err)
	}
	defer drawModule.Release()

	d.vertexBuf, err = device.CreateBufferInit(&wgpu.BufferInitDescriptor{
		Label:    "cell quad",
		Contents: wgpu.ToBytes(quadVertices),
		Usage:    wgpu.BufferUsageVertex,
	})
	if err != nil {
		d.Release()
		return nil, fmt.Errorf("creating vertex buffer: %w", err)
	}

	dims := []float32{float32(g.W), float32(g.H)}
	d.uniformBuf, err = device.CreateBufferInit(&wgpu.BufferInitDescriptor{
		Label:    "grid dimensions",
		Contents: wgpu.ToBytes(dims),
		Usage:    wgpu.BufferUsageUniform,
	})
	if err != nil {
		d.Release()
		return nil, fmt.Errorf("creating uniform buffer: %w", err)
	}

	// Storage words are u32, the smallest addressable unit in a storage
	// buffer. Only buffer A carries the seed; B starts blank.
	seeded := make([]uint32, g.Cells())
	for i, c := range store.Current(0) {
		seeded[i] = uint32(c)
	}
	contents := [2][]uint32{seeded, make([]uint32, g.Cells())}
	for i := range d.stateBufs {
		d.stateBufs[i], err = device.CreateBufferInit(&wgpu.BufferInitDescriptor{
			Label:    fmt.Sprintf("cell state %c", 'A'+i),
			Contents: wgpu.ToBytes(contents[i]),
			Usage:    wgpu.BufferUsageStorage,
		})
		if err != nil {
			d.Release()
			return nil, fmt.Errorf("creating state buffer %d: %w", i, err)
		}
	}

	layout, err := device.CreateBindGroupLayout(&wgpu.BindGroupLayoutDescriptor{
		Label: "cell bind group layout",
		Entries: []wgpu.BindGroupLayoutEntry{
			{
				Binding:    0,
				Visibility: wgpu.ShaderStageVertex | wgpu.ShaderStageFragment | wgpu.ShaderStageCompute,
				Buffer:     wgpu.BufferBindingLayout{Type: wgpu.BufferBindingTypeUniform},
			},
			{
				Binding:    1,
				Visibility: wgpu.ShaderStageVertex | wgpu.ShaderStageCompute,
				Buffer:     wgpu.BufferBindingLayout{Type: wgpu.BufferBindingTypeReadOnlyStorage},
			},
			{
				Binding:    2,
				Visibility: wgpu.ShaderStageCompute,
				Buffer:     wgpu.BufferBindingLayout{Type: wgpu.BufferBindingTypeStorage},
			},
		},
	})
	if err != nil {
		d.Release()
		return nil, fmt.Errorf("creating bind group layout: %w", err)
	}
	defer layout.Release()

	pipelineLayout, err := device.CreatePipelineLayout(&wgpu.PipelineLayoutDescriptor{
		Label:            "cell pipeline layout",
		BindGroupLayouts: []*wgpu.BindGroupLayout{layout},
	})
	if err != nil {
		d.Release()
		return nil, fmt.Errorf("creating pipeline layout: %w", err)
	}
	defer pipelineLayout.Release()

	d.computePipeline, err = device.CreateComputePipeline(&wgpu.ComputePipelineDescriptor{
		Label:  "life step pipeline",
		Layout: pipelineLayout,
		Compute: wgpu.ProgrammableStageDescriptor{
			Module:     stepModule,
			EntryPoint: "stepMain",
		},
	})
	if err != nil {
		d.Release()
		return nil, fmt.Errorf("creating compute pipeline: %w", err)
	}

	d.renderPipeline, err = device.CreateRenderPipeline(&wgpu.RenderPipelineDescriptor{
		Label:  "cell render pipeline",
		Layout: pipelineLayout,
		Vertex: wgpu.VertexState{
			Module:     drawModule,
			EntryPoint: "vertexMain",
			Buffers: []wgpu.VertexBufferLayout{{
				ArrayStride: 8,
				StepMode:    wgpu.VertexStepModeVertex,
				Attributes: []wgpu.VertexAttribute{{
					Format:         wgpu.VertexFormatFloat32x2,
					Offset:         0,
					ShaderLocation: 0,
				}},
			}},
		},
		Primitive: wgpu.PrimitiveState{
			Topology: wgpu.PrimitiveTopologyTriangleList,
		},
		Multisample: wgpu.MultisampleState{
			Count: 1,
			Mask:  0xFFFFFFFF,
		},
		Fragment: &wgpu.FragmentState{
			Module:     drawModule,
			EntryPoint: "fragmentMain",
			Targets: []wgpu.ColorTargetState{{
				Format:    ctx.Config.Format,
				Blend:     &wgpu.BlendStateReplace,
				WriteMask: wgpu.ColorWriteMaskAll,
			}},
		},
	})
	if err != nil {
		d.Release()
		return nil, fmt.Errorf("creating render pipeline: %w", err)
	}

	for i := range d.bindGroups {
		d.bindGroups[i], err = device.CreateBindGroup(&wgpu.BindGroupDescriptor{
			Label:  fmt.Sprintf("cell bind group %d", i),
			Layout: layout,
			Entries: []wgpu.BindGroupEntry{
				{Binding: 0, Buffer: d.uniformBuf, Size: wgpu.WholeSize},
				{Binding: 1, Buffer: d.stateBufs[i], Size: wgpu.WholeSize},
				{Binding: 2, Buffer: d.stateBufs[(i+1)%2], Size: wgpu.WholeSize},
			},
		})
		if err != nil {
			d.Release()
			return nil, fmt.Errorf("creating bind group %d: %w", i, err)
		}
	}

	return d, nil
}

// Step returns the number of generations computed so far.
func (d *Driver) Step() uint64 { return d.step }

// Tick encodes one simulation dispatch and the render pass that observes it,
// in that order, on the same in-order queue.
func (d *Driver) Tick() error {
	encoder, err := d.ctx.Device.CreateCommandEncoder(nil)
	if err != nil {
		return fmt.Errorf("creating command encoder: %w", err)
	}
	defer encoder.Release()

	pass := encoder.BeginComputePass(nil)
	pass.SetPipeline(d.computePipeline)
	pass.SetBindGroup(0, d.bindGroups[d.step%2], nil)
	groupsX := uint32((d.grid.W + workgroupSize - 1) / workgroupSize)
	groupsY := uint32((d.grid.H + workgroupSize - 1) / workgroupSize)
	pass.DispatchWorkgroups(groupsX, groupsY, 1)
	pass.End()

	d.step++

	return d.render(encoder)
}

// Frame encodes and submits a render-only frame of the current buffer.
func (d *Driver) Frame() error {
	encoder, err := d.ctx.Device.CreateCommandEncoder(nil)
	if err != nil {
		return fmt.Errorf("creating command encoder: %w", err)
	}
	defer encoder.Release()
	return d.render(encoder)
}

// render encodes the instanced draw of the current buffer onto the surface,
// submits everything encoded so far and presents.
func (d *Driver) render(encoder *wgpu.CommandEncoder) error {
	texture, err := d.ctx.Surface.GetCurrentTexture()
	if err != nil {
		return fmt.Errorf("acquiring surface texture: %w", err)
	}
	view, err := texture.CreateView(nil)
	if err != nil {
		return fmt.Errorf("creating surface view: %w", err)
	}
	defer view.Release()

	pass := encoder.BeginRenderPass(&wgpu.RenderPassDescriptor{
		Label: "cell render pass",
		ColorAttachments: []wgpu.RenderPassColorAttachment{{
			View:       view,
			LoadOp:     wgpu.LoadOpClear,
			StoreOp:    wgpu.StoreOpStore,
			ClearValue: clearColor,
		}},
	})
	pass.SetPipeline(d.renderPipeline)
	pass.SetVertexBuffer(0, d.vertexBuf, 0, wgpu.WholeSize)
	pass.SetBindGroup(0, d.bindGroups[d.step%2], nil)
	pass.Draw(uint32(len(quadVertices)/2), uint32(d.grid.Cells()), 0, 0)
	pass.End()

	cmd, err := encoder.Finish(nil)
	if err != nil {
		return fmt.Errorf("finishing command encoder: %w", err)
	}
	defer cmd.Release()

	d.ctx.Queue.Submit(cmd)
	d.ctx.Surface.Present()
	return nil
}

// Release frees every owned GPU resource.
func (d *Driver) Release() {
	for _, bg := range d.bindGroups {
		if bg != nil {
			bg.Release()
		}
	}
	if d.computePipeline != nil {
		d.computePipeline.Release()
	}
	if d.renderPipeline != nil {
		d.renderPipeline.Release()
	}
	for _, buf := range d.stateBufs {
		if buf != nil {
			buf.Release()
		}
	}
	if d.uniformBuf != nil {
		d.uniformBuf.Release()
	}
	if d.vertexBuf != nil {
		d.vertexBuf.Release()
	}
}
