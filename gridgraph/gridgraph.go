// SPDX-License-Identifier: MIT
//
// File: gridgraph.go
// Role: Grid construction, coordinate mapping and cell predicates.

package gridgraph

import (
	"fmt"
	"math"

	"github.com/katalvlaran/sala/pixelref"
)

// MaxDimension is the largest width or height a grid may have; every cell
// coordinate must fit a pixel reference.
const MaxDimension = math.MaxInt16 + 1

var (
	offsets4 = [][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}
	offsets8 = [][2]int{{0, -1}, {1, -1}, {1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1}}
)

// NewGridGraph constructs a GridGraph from a non-empty, rectangular 2D slice.
// It deep-copies the input to ensure immutability.
//
// Errors:
//   - ErrEmptyGrid if grid has no rows or no columns.
//   - ErrNonRectangular if any row length differs.
//   - ErrGridTooLarge if a dimension exceeds MaxDimension.
//
// Complexity: O(W×H) time and memory.
func NewGridGraph(values [][]int, opts GridOptions) (*GridGraph, error) {
	if len(values) == 0 || len(values[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(values), len(values[0])
	if w > MaxDimension || h > MaxDimension {
		return nil, fmt.Errorf("%w: %d×%d", ErrGridTooLarge, w, h)
	}
	cells := make([][]int, h)
	for y, row := range values {
		if len(row) != w {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrNonRectangular, y, len(row), w)
		}
		cells[y] = make([]int, w)
		copy(cells[y], row)
	}
	offsets := offsets4
	if opts.Conn == Conn8 {
		offsets = offsets8
	}

	return &GridGraph{
		Width:           w,
		Height:          h,
		CellValues:      cells,
		Conn:            opts.Conn,
		OpenThreshold:   opts.OpenThreshold,
		neighborOffsets: offsets,
	}, nil
}

// InBounds reports whether (x,y) lies within the grid boundaries.
// Complexity: O(1).
func (gg *GridGraph) InBounds(x, y int) bool {
	return x >= 0 && x < gg.Width && y >= 0 && y < gg.Height
}

// IsOpen reports whether (x,y) is inside the grid and open.
func (gg *GridGraph) IsOpen(x, y int) bool {
	return gg.InBounds(x, y) && gg.CellValues[y][x] >= gg.OpenThreshold
}

// NeighborOffsets returns the precomputed (dx,dy) neighbor offsets.
// The slice is shared; callers must not modify it.
func (gg *GridGraph) NeighborOffsets() [][2]int {
	return gg.neighborOffsets
}

// index maps (x,y) to a row-major index: y*Width + x.
func (gg *GridGraph) index(x, y int) int {
	return y*gg.Width + x
}

// Coordinate converts a row-major index back to (x,y).
// Complexity: O(1).
func (gg *GridGraph) Coordinate(idx int) (x, y int) {
	return idx % gg.Width, idx / gg.Width
}

// Key returns the row key of the cell at a row-major index.
func (gg *GridGraph) Key(idx int) pixelref.Key {
	x, y := gg.Coordinate(idx)
	return pixelref.PixelRef{X: int16(x), Y: int16(y)}.Key()
}

// Index returns the row-major index of the cell a key refers to, and
// whether that cell lies inside the grid.
func (gg *GridGraph) Index(key pixelref.Key) (int, bool) {
	p := key.PixelRef()
	x, y := int(p.X), int(p.Y)
	if !gg.InBounds(x, y) {
		return -1, false
	}

	return gg.index(x, y), true
}

// OpenCells returns the row-major indices of all open cells in ascending order.
func (gg *GridGraph) OpenCells() []int {
	var out []int
	for y := 0; y < gg.Height; y++ {
		for x := 0; x < gg.Width; x++ {
			if gg.CellValues[y][x] >= gg.OpenThreshold {
				out = append(out, gg.index(x, y))
			}
		}
	}

	return out
}
