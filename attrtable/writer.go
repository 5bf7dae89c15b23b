// SPDX-License-Identifier: MIT
//
// File: writer.go
// Role: Row-parallel column writes with deferred aggregate merging.
//
// Usage:
//
//	writers := make([]*ColumnWriter[K], workers)  // one per worker
//	... each worker: w.SetValue(key, v) on the rows it owns ...
//	... barrier (all workers done) ...
//	for _, w := range writers { w.Flush() }       // single goroutine

package attrtable

import "fmt"

// ColumnWriter writes one column's cells and buffers the matching aggregate
// updates in a worker-local Accumulator instead of touching the shared
// ColumnStats.
//
// Several ColumnWriters for the same column may be used from different
// goroutines at the same time provided that no two of them write the same
// row and that no schema or row-set mutation happens concurrently. Flush
// must be called from a single goroutine after all writers are done.
type ColumnWriter[K any] struct {
	t     *Table[K]
	index int
	col   *Column
	acc   Accumulator
}

// ColumnWriter returns a new writer for the column at index.
// Errors: ErrIndexOutOfRange if index is outside [0, NumColumns()).
func (t *Table[K]) ColumnWriter(index int) (*ColumnWriter[K], error) {
	if err := t.checkColumnIndex(index); err != nil {
		return nil, err
	}

	return &ColumnWriter[K]{t: t, index: index, col: t.columns[index]}, nil
}

// Column returns the positional index the writer targets.
func (w *ColumnWriter[K]) Column() int { return w.index }

// Pending returns the number of writes not yet flushed.
func (w *ColumnWriter[K]) Pending() int { return w.acc.Len() }

// SetValue writes value into the row for key and records the aggregate
// update for the next Flush.
//
// Errors:
//   - ErrNotFound if key is absent.
//   - ErrStaleWriter if the column was removed since the writer was created.
func (w *ColumnWriter[K]) SetValue(key K, value float32) error {
	if err := w.check(); err != nil {
		return err
	}
	e, err := w.t.lookup(key)
	if err != nil {
		return err
	}
	old := e.values[w.index]
	e.values[w.index] = value
	w.acc.Update(float64(value), float64(old))

	return nil
}

// Flush merges the buffered aggregate updates into the column's stats and
// clears the buffer.
//
// Errors: ErrStaleWriter if the column was removed since the writer was
// created; the buffer is discarded in that case.
func (w *ColumnWriter[K]) Flush() error {
	if err := w.check(); err != nil {
		w.acc.Reset()
		return err
	}
	w.col.stats.Merge(&w.acc)
	w.acc.Reset()

	return nil
}

func (w *ColumnWriter[K]) check() error {
	if w.index >= len(w.t.columns) || w.t.columns[w.index] != w.col {
		return fmt.Errorf("%w: column %q no longer at index %d", ErrStaleWriter, w.col.name, w.index)
	}

	return nil
}

// FlushAll flushes writers in order and returns the first error met.
// Every writer is flushed even when an earlier one fails.
func FlushAll[K any](writers ...*ColumnWriter[K]) error {
	var first error
	for _, w := range writers {
		if w == nil {
			continue
		}
		if err := w.Flush(); err != nil && first == nil {
			first = err
		}
	}

	return first
}
