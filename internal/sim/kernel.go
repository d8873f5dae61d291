package sim

import (
	"golang.org/x/sync/errgroup"

	"gpulife/internal/core"
)

// DefaultTileSize is the square tile side used to partition the grid for
// parallel stepping. It matches the GPU workgroup size.
const DefaultTileSize = 8

// Rule applies the survival/birth rule for a cell with the given neighbor
// sum. A sum of 2 keeps the current value, a sum of 3 is a birth, anything
// else dies. The sum==2 branch copies the current state rather than forcing
// alive: a dead cell with two live neighbors stays dead.
func Rule(current uint8, neighbors int) uint8 {
	switch neighbors {
	case 2:
		return current
	case 3:
		return 1
	default:
		return 0
	}
}

// NeighborSum counts the live cells in the wrapped Moore neighborhood of
// (x, y), diagonals included.
func NeighborSum(g core.Grid, cells []uint8, x, y int) int {
	sum := 0
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			sum += int(cells[g.WrapIndex(x+dx, y+dy)])
		}
	}
	return sum
}

// Step computes one generation from cur into nxt. The grid is partitioned
// into square tiles stepped concurrently; every cell is visited exactly once
// regardless of tile size, and no tile reads anything written during the same
// step, so the partitioning affects scheduling only.
func Step(g core.Grid, cur, nxt []uint8, tile int) {
	if tile <= 0 {
		tile = DefaultTileSize
	}
	var eg errgroup.Group
	for ty := 0; ty < g.H; ty += tile {
		for tx := 0; tx < g.W; tx += tile {
			tx, ty := tx, ty
			eg.Go(func() error {
				yEnd := min(ty+tile, g.H)
				xEnd := min(tx+tile, g.W)
				for y := ty; y < yEnd; y++ {
					for x := tx; x < xEnd; x++ {
						i := g.Index(x, y)
						nxt[i] = Rule(cur[i], NeighborSum(g, cur, x, y))
					}
				}
				return nil
			})
		}
	}
	_ = eg.Wait()
}
