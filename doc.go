// SPDX-License-Identifier: MIT

// Package sala is an in-memory attribute store for spatial network
// analysis: a key-ordered table of float32 rows with named columns and
// running column aggregates, plus the grid analyses that fill it.
//
// The work is organized under these subpackages:
//
//	attrtable/   Table, Column, Row handles, cursors and parallel ColumnWriters
//	attrview/    value-sorted View and Handle over one display column
//	pixelref/    PixelRef grid coordinates and their serialised row Key
//	layers/      named layers, visibility and the visible column aggregates
//	gridgraph/   grid of open/blocked cells; components, step and mean depth
//	cmd/sala     command that runs an analysis and prints the table as CSV
//
// Quick example:
//
//	tbl := attrtable.NewOrderedTable[pixelref.Key]()
//	gg, _ := gridgraph.NewGridGraph(grid, gridgraph.DefaultGridOptions())
//	_ = gg.StepDepth(tbl, []pixelref.PixelRef{{X: 0, Y: 0}})
//
//	view := attrview.NewView(tbl)
//	_ = view.SetDisplayColumn(0)
//	for _, item := range view.Index() {
//		fmt.Println(item.Key, item.Value)
//	}
//
// None of the types are safe for concurrent mutation. Row-parallel writes go
// through one attrtable.ColumnWriter per worker and column, flushed after
// the workers finish.
package sala
