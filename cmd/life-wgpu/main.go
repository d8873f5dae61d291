//go:build wgpu

package main

import (
	"flag"
	"log"
	"runtime"

	"github.com/go-gl/glfw/v3.3/glfw"

	"gpulife/internal/core"
	"gpulife/internal/gpu"
	"gpulife/internal/sim"
)

func init() {
	// glfw event handling must run on the main OS thread.
	runtime.LockOSThread()
}

func main() {
	cfg := core.DefaultConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()
	cfg.ApplyVariantDefaults(flag.CommandLine)
	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	if err := glfw.Init(); err != nil {
		log.Fatalf("initializing glfw: %v", err)
	}
	defer glfw.Terminate()

	glfw.WindowHint(glfw.ClientAPI, glfw.NoAPI)
	glfw.WindowHint(glfw.Resizable, glfw.False)
	window, err := glfw.CreateWindow(cfg.Size*cfg.Scale, cfg.Size*cfg.Scale, "gpulife", nil, nil)
	if err != nil {
		log.Fatalf("creating window: %v", err)
	}
	defer window.Destroy()

	ctx, err := gpu.NewContext(window)
	if err != nil {
		log.Fatalf("acquiring GPU device: %v", err)
	}
	defer ctx.Release()

	grid := core.NewGrid(cfg.Size, cfg.Size)
	store := sim.NewStore(grid)
	store.Init(core.NewRNG(cfg.Seed), cfg.LiveProbability)

	driver, err := gpu.NewDriver(ctx, store)
	if err != nil {
		log.Fatalf("creating pipelines: %v", err)
	}
	defer driver.Release()

	ticker := core.NewFixedStep(cfg.TPS)
	for !window.ShouldClose() {
		glfw.PollEvents()
		if window.GetKey(glfw.KeyEscape) == glfw.Press || window.GetKey(glfw.KeyQ) == glfw.Press {
			window.SetShouldClose(true)
		}

		if !cfg.Static && ticker.ShouldStep() {
			err = driver.Tick()
		} else {
			err = driver.Frame()
		}
		if err != nil {
			log.Fatalf("frame failed: %v", err)
		}
	}
}
