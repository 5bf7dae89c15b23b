// SPDX-License-Identifier: MIT
//
// File: depth.go
// Role: Depth analyses that write their results into an attribute table.
//
// Concurrency:
//   - StepDepth runs on the calling goroutine.
//   - MeanDepth splits the open cells into one contiguous chunk per worker.
//     Each worker writes only the rows of its chunk, through its own
//     ColumnWriters; the writers are flushed after the pool barrier.

package gridgraph

import (
	"context"
	"fmt"

	"github.com/sourcegraph/conc/pool"

	"github.com/katalvlaran/sala/attrtable"
	"github.com/katalvlaran/sala/pixelref"
)

// Columns written by the depth analyses.
const (
	StepDepthColumn  = "Step Depth"
	NodeCountColumn  = "Node Count"
	TotalDepthColumn = "Total Depth"
	MeanDepthColumn  = "Mean Depth"
)

// StepDepth writes the step depth from the nearest origin to every
// reachable open cell into the locked "Step Depth" column. The column is
// created or reset first, so unreachable cells (and cells beyond the radius)
// hold attrtable.Sentinel. The column aggregate is recomputed at the end.
//
// Errors:
//   - ErrNoOrigins if origins is empty.
//   - ErrOriginOutOfBounds, ErrOriginBlocked for an unusable origin.
//   - ErrOptionViolation for invalid options.
//   - the context error if the context is done.
//
// Origins and options are validated before the table is touched.
func (gg *GridGraph) StepDepth(t *attrtable.Table[pixelref.Key], origins []pixelref.PixelRef, opts ...Option) error {
	o, err := buildOptions(opts)
	if err != nil {
		return err
	}
	if len(origins) == 0 {
		return ErrNoOrigins
	}
	sources := make([]int, 0, len(origins))
	for _, p := range origins {
		x, y := int(p.X), int(p.Y)
		if !gg.InBounds(x, y) {
			return fmt.Errorf("%w: %s", ErrOriginOutOfBounds, p)
		}
		if !gg.IsOpen(x, y) {
			return fmt.Errorf("%w: %s", ErrOriginBlocked, p)
		}
		sources = append(sources, gg.index(x, y))
	}
	if err = o.Ctx.Err(); err != nil {
		return err
	}

	gg.EnsureRows(t)
	col := t.InsertOrResetLockedColumn(StepDepthColumn, "")
	gg.newWalker().walk(sources, o.Radius, func(idx, depth int) {
		if err != nil {
			return
		}
		var row attrtable.Row[pixelref.Key]
		if row, err = t.Row(gg.Key(idx)); err == nil {
			err = row.SetValueAt(col, float32(depth))
		}
	})
	if err != nil {
		return err
	}

	return t.RecomputeStats(col)
}

// depthWriters are the ColumnWriters of one MeanDepth worker.
type depthWriters struct {
	count, total, mean *attrtable.ColumnWriter[pixelref.Key]
}

func newDepthWriters(t *attrtable.Table[pixelref.Key], count, total, mean int) (*depthWriters, error) {
	var (
		w   depthWriters
		err error
	)
	if w.count, err = t.ColumnWriter(count); err != nil {
		return nil, err
	}
	if w.total, err = t.ColumnWriter(total); err != nil {
		return nil, err
	}
	if w.mean, err = t.ColumnWriter(mean); err != nil {
		return nil, err
	}

	return &w, nil
}

// MeanDepth walks from every open cell and writes, for that cell, the
// number of cells reached including itself ("Node Count"), the sum of their
// step depths ("Total Depth") and the total divided by the other cells
// reached ("Mean Depth"). Cells that reach no other cell keep the Sentinel
// mean depth. The three columns are created or reset and locked first, and
// their aggregates are recomputed once all writers are flushed.
//
// The work is spread over Options.Workers goroutines. The resulting cells
// and column aggregates do not depend on the worker count.
//
// Errors:
//   - ErrOptionViolation for invalid options.
//   - the context error if the context is done before all cells are walked;
//     values already written are kept and their aggregates are recomputed.
func (gg *GridGraph) MeanDepth(t *attrtable.Table[pixelref.Key], opts ...Option) error {
	o, err := buildOptions(opts)
	if err != nil {
		return err
	}
	if err = o.Ctx.Err(); err != nil {
		return err
	}

	gg.EnsureRows(t)
	countCol := t.InsertOrResetLockedColumn(NodeCountColumn, "")
	totalCol := t.InsertOrResetLockedColumn(TotalDepthColumn, "")
	meanCol := t.InsertOrResetLockedColumn(MeanDepthColumn, "")

	cells := gg.OpenCells()
	workers := min(o.Workers, max(len(cells), 1))
	chunk := (len(cells) + workers - 1) / workers

	writers := make([]*depthWriters, workers)
	for i := range writers {
		if writers[i], err = newDepthWriters(t, countCol, totalCol, meanCol); err != nil {
			return err
		}
	}

	p := pool.New().WithMaxGoroutines(workers).WithContext(o.Ctx).WithCancelOnError()
	for i, w := range writers {
		lo := min(i*chunk, len(cells))
		hi := min(lo+chunk, len(cells))
		part := cells[lo:hi]
		p.Go(func(ctx context.Context) error {
			return gg.meanDepthChunk(ctx, part, o.Radius, w)
		})
	}
	waitErr := p.Wait()

	flush := make([]*attrtable.ColumnWriter[pixelref.Key], 0, 3*len(writers))
	for _, w := range writers {
		flush = append(flush, w.count, w.total, w.mean)
	}
	flushErr := attrtable.FlushAll(flush...)
	var statsErr error
	for _, col := range []int{countCol, totalCol, meanCol} {
		if err = t.RecomputeStats(col); err != nil && statsErr == nil {
			statsErr = err
		}
	}
	if waitErr != nil {
		return waitErr
	}
	if flushErr != nil {
		return flushErr
	}

	return statsErr
}

func (gg *GridGraph) meanDepthChunk(ctx context.Context, cells []int, radius int, w *depthWriters) error {
	wk := gg.newWalker()
	src := make([]int, 1)
	for _, idx := range cells {
		if err := ctx.Err(); err != nil {
			return err
		}
		src[0] = idx
		count, total := 0, 0
		wk.walk(src, radius, func(_, depth int) {
			count++
			total += depth
		})

		key := gg.Key(idx)
		if err := w.count.SetValue(key, float32(count)); err != nil {
			return err
		}
		if err := w.total.SetValue(key, float32(total)); err != nil {
			return err
		}
		if count > 1 {
			if err := w.mean.SetValue(key, float32(total)/float32(count-1)); err != nil {
				return err
			}
		}
	}

	return nil
}
