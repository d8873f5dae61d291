// Package gpu runs the simulation and render passes on a WebGPU device: a
// compute dispatch advances the ping-pong cell state buffers and an instanced
// draw presents the buffer the dispatch just wrote. The implementation
// requires the wgpu build tag; without it this package is documentation only.
package gpu
