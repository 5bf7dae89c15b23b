// SPDX-License-Identifier: MIT

package gridgraph

import (
	"github.com/katalvlaran/sala/attrtable"
	"github.com/katalvlaran/sala/pixelref"
)

// ComponentColumn is the column Components writes.
const ComponentColumn = "Component"

// ConnectedComponents finds all contiguous regions of open cells according
// to gg.Conn connectivity. Components are numbered in row-major order of
// their first cell; each component lists its cell indices in BFS order.
//
// To convert an index back to (x,y), use Coordinate(idx).
//
// Time:   O(W·H·d), where d = 4 or 8.
// Memory: O(W·H) for visited flags and output.
func (gg *GridGraph) ConnectedComponents() [][]int {
	seen := make([]bool, gg.Width*gg.Height)
	var comps [][]int

	for y := 0; y < gg.Height; y++ {
		for x := 0; x < gg.Width; x++ {
			if !gg.IsOpen(x, y) {
				continue
			}
			i0 := gg.index(x, y)
			if seen[i0] {
				continue
			}
			queue := []int{i0}
			seen[i0] = true
			for qi := 0; qi < len(queue); qi++ {
				ux, uy := gg.Coordinate(queue[qi])
				for _, d := range gg.neighborOffsets {
					vx, vy := ux+d[0], uy+d[1]
					if !gg.IsOpen(vx, vy) {
						continue
					}
					vi := gg.index(vx, vy)
					if !seen[vi] {
						seen[vi] = true
						queue = append(queue, vi)
					}
				}
			}
			comps = append(comps, queue)
		}
	}

	return comps
}

// Components writes the component number of every open cell into the
// locked "Component" column, creating it on first use. Existing cell values
// of that column are overwritten, other columns are left alone. The column
// aggregate is recomputed from the written cells.
// It returns the number of components.
func (gg *GridGraph) Components(t *attrtable.Table[pixelref.Key]) (int, error) {
	comps := gg.ConnectedComponents()
	gg.EnsureRows(t)
	col := t.GetOrInsertLockedColumn(ComponentColumn, "")
	for n, comp := range comps {
		for _, idx := range comp {
			row, err := t.Row(gg.Key(idx))
			if err != nil {
				return 0, err
			}
			if err = row.SetValueAt(col, float32(n)); err != nil {
				return 0, err
			}
		}
	}
	if err := t.RecomputeStats(col); err != nil {
		return 0, err
	}

	return len(comps), nil
}

// EnsureRows adds a row for every open cell that has none yet and returns
// the number of rows added.
func (gg *GridGraph) EnsureRows(t *attrtable.Table[pixelref.Key]) int {
	added := 0
	for _, idx := range gg.OpenCells() {
		key := gg.Key(idx)
		if t.HasRow(key) {
			continue
		}
		if _, err := t.AddRow(key); err == nil {
			added++
		}
	}

	return added
}
