//go:build !wgpu

package main

import (
	"fmt"
	"os"
)

func main() {
	fmt.Fprintln(os.Stderr, "The WebGPU build of gpulife requires the wgpu build tag.")
	fmt.Fprintln(os.Stderr, "Re-run with `go run -tags wgpu ./cmd/life-wgpu`.")
	os.Exit(2)
}
