// SPDX-License-Identifier: MIT

package gridgraph_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/sala/attrtable"
	"github.com/katalvlaran/sala/gridgraph"
	"github.com/katalvlaran/sala/pixelref"
)

func randomGrid(n int, seed int64) [][]int {
	r := rand.New(rand.NewSource(seed))
	grid := make([][]int, n)
	for y := range grid {
		grid[y] = make([]int, n)
		for x := range grid[y] {
			if r.Intn(5) > 0 {
				grid[y][x] = 1
			}
		}
	}

	return grid
}

// BenchmarkConnectedComponents measures ConnectedComponents on a random
// 1000×1000 grid with ~80% open cells.
func BenchmarkConnectedComponents(b *testing.B) {
	gg := mustGrid(b, randomGrid(1000, 42), gridgraph.Conn4)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = gg.ConnectedComponents()
	}
}

// BenchmarkStepDepth measures a single-origin walk over a 500×500 grid.
func BenchmarkStepDepth(b *testing.B) {
	grid := randomGrid(500, 7)
	grid[0][0] = 1
	gg := mustGrid(b, grid, gridgraph.Conn8)
	tbl := attrtable.NewOrderedTable[pixelref.Key]()
	origin := []pixelref.PixelRef{{X: 0, Y: 0}}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if err := gg.StepDepth(tbl, origin); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkMeanDepth measures the all-cells analysis on a 40×40 grid.
func BenchmarkMeanDepth(b *testing.B) {
	gg := mustGrid(b, randomGrid(40, 3), gridgraph.Conn8)
	tbl := attrtable.NewOrderedTable[pixelref.Key]()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if err := gg.MeanDepth(tbl); err != nil {
			b.Fatal(err)
		}
	}
}
