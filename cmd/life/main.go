//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"gpulife/internal/app"
	"gpulife/internal/core"
	_ "gpulife/internal/sim"
)

func main() {
	cfg := core.DefaultConfig()
	cfg.Bind(flag.CommandLine)
	gpuStep := flag.Bool("gpu", false, "advance the grid with the step shader instead of the CPU kernel")
	flag.Parse()
	cfg.ApplyVariantDefaults(flag.CommandLine)
	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	factory, ok := core.Lookup("life")
	if !ok {
		log.Fatal("life simulation not registered")
	}
	sim := factory(cfg.SimOptions())
	sim.Reset(cfg.Seed)

	game, err := app.New(sim, cfg, *gpuStep)
	if err != nil {
		log.Fatalf("initializing renderer: %v", err)
	}

	ebiten.SetWindowTitle("gpulife")
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(cfg.Size*cfg.Scale, cfg.Size*cfg.Scale)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
