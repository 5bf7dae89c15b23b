// SPDX-License-Identifier: MIT
//
// File: table_columns.go
// Role: Schema mutation and the ColumnManager implementation.
//
// Every schema mutation fans out to all rows in the same call so that the
// row width always matches the column count. Validation happens before any
// mutation, so a rejected call leaves the table untouched.

package attrtable

import (
	"fmt"
	"math"
)

var _ ColumnManager = (*Table[int])(nil)

// NumColumns returns the number of columns.
func (t *Table[K]) NumColumns() int { return len(t.columns) }

// ColumnIndex returns the positional index of the named column.
// Errors: ErrNotFound if no column has that name.
func (t *Table[K]) ColumnIndex(name string) (int, error) {
	index, ok := t.names[name]
	if !ok {
		return -1, fmt.Errorf("%w: column %q", ErrNotFound, name)
	}

	return index, nil
}

// HasColumn reports whether a column with that name exists.
func (t *Table[K]) HasColumn(name string) bool {
	_, ok := t.names[name]
	return ok
}

// Column returns the read-only view of the column at index.
// Errors: ErrIndexOutOfRange if index is outside [0, NumColumns()).
func (t *Table[K]) Column(index int) (ColumnView, error) {
	if err := t.checkColumnIndex(index); err != nil {
		return ColumnView{}, err
	}

	return t.columns[index].View(), nil
}

// MutableColumn returns the column at index for changing its lock and
// hidden flags.
// Errors: ErrIndexOutOfRange if index is outside [0, NumColumns()).
func (t *Table[K]) MutableColumn(index int) (*Column, error) {
	if err := t.checkColumnIndex(index); err != nil {
		return nil, err
	}

	return t.columns[index], nil
}

// ColumnName returns the name of the column at index.
// Errors: ErrIndexOutOfRange if index is outside [0, NumColumns()).
func (t *Table[K]) ColumnName(index int) (string, error) {
	if err := t.checkColumnIndex(index); err != nil {
		return "", err
	}

	return t.columns[index].name, nil
}

// Columns returns read-only views of all columns in positional order.
func (t *Table[K]) Columns() []ColumnView {
	out := make([]ColumnView, len(t.columns))
	for i, c := range t.columns {
		out[i] = c.View()
	}

	return out
}

// InsertOrResetColumn appends a new column named name, or, if it exists,
// resets it: stats back to Sentinel, lock cleared and every row's cell for
// it set to Sentinel. The column keeps its identity, position and formula.
// Returns the column index either way.
//
// Complexity: O(R) (append or reset touches every row).
func (t *Table[K]) InsertOrResetColumn(name, formula string) int {
	index, ok := t.names[name]
	if !ok {
		return t.addColumn(name, formula)
	}
	col := t.columns[index]
	col.stats.Reset()
	col.SetLock(false)
	// Cells are wiped directly; routing the wipe through the aggregate would
	// re-initialise the freshly reset stats with the sentinel.
	t.rows.Ascend(func(e *rowEntry[K]) bool {
		e.values[index] = Sentinel
		return true
	})

	return index
}

// InsertOrResetLockedColumn is InsertOrResetColumn followed by locking the column.
func (t *Table[K]) InsertOrResetLockedColumn(name, formula string) int {
	index := t.InsertOrResetColumn(name, formula)
	t.columns[index].SetLock(true)

	return index
}

// GetOrInsertColumn returns the index of the named column, appending it if
// absent. An existing column is returned unchanged: data, stats and lock are
// left as they are, and formula is ignored.
func (t *Table[K]) GetOrInsertColumn(name, formula string) int {
	if index, ok := t.names[name]; ok {
		return index
	}

	return t.addColumn(name, formula)
}

// GetOrInsertLockedColumn is GetOrInsertColumn followed by locking the
// column. The lock is applied unconditionally, so an existing unlocked
// column becomes locked as a side effect of this call.
func (t *Table[K]) GetOrInsertLockedColumn(name, formula string) int {
	index := t.GetOrInsertColumn(name, formula)
	t.columns[index].SetLock(true)

	return index
}

// RemoveColumn removes the column at index, shifting later columns (and
// their name index entries and row cells) down by one.
//
// Errors: ErrIndexOutOfRange if index is outside [0, NumColumns()).
// Complexity: O(C + R·C).
func (t *Table[K]) RemoveColumn(index int) error {
	if err := t.checkColumnIndex(index); err != nil {
		return err
	}
	delete(t.names, t.columns[index].name)
	for name, i := range t.names {
		if i > index {
			t.names[name] = i - 1
		}
	}
	t.columns = append(t.columns[:index], t.columns[index+1:]...)
	t.rows.Ascend(func(e *rowEntry[K]) bool {
		e.removeColumn(index)
		return true
	})

	return nil
}

// RenameColumn renames a column in place; oldName stops resolving at once.
// Renaming a column to its current name is a no-op.
//
// Errors:
//   - ErrNotFound if oldName is unknown.
//   - ErrAlreadyExists if newName belongs to another column.
func (t *Table[K]) RenameColumn(oldName, newName string) error {
	index, ok := t.names[oldName]
	if !ok {
		return fmt.Errorf("%w: column %q", ErrNotFound, oldName)
	}
	if oldName == newName {
		return nil
	}
	if _, taken := t.names[newName]; taken {
		return fmt.Errorf("%w: column %q", ErrAlreadyExists, newName)
	}
	t.columns[index].setName(newName)
	delete(t.names, oldName)
	t.names[newName] = index

	return nil
}

// RecomputeStats resets the aggregate of the column at index and rebuilds
// it from the current cells of all rows, skipping unset (Sentinel) cells.
// Unlike the incremental path this yields exact extremes. The visible triple
// is left alone.
//
// Errors: ErrIndexOutOfRange if index is outside [0, NumColumns()).
// Complexity: O(R).
func (t *Table[K]) RecomputeStats(index int) error {
	if err := t.checkColumnIndex(index); err != nil {
		return err
	}
	stats := &t.columns[index].stats
	visMin, visMax, visTotal := stats.VisibleMin, stats.VisibleMax, stats.VisibleTotal
	stats.Reset()
	stats.VisibleMin, stats.VisibleMax, stats.VisibleTotal = visMin, visMax, visTotal
	t.rows.Ascend(func(e *rowEntry[K]) bool {
		v := e.values[index]
		if v != Sentinel && !math.IsNaN(float64(v)) {
			stats.Update(float64(v), 0)
		}
		return true
	})

	return nil
}

func (t *Table[K]) checkColumnIndex(index int) error {
	if index < 0 || index >= len(t.columns) {
		return fmt.Errorf("%w: column index %d, table has %d columns", ErrIndexOutOfRange, index, len(t.columns))
	}

	return nil
}

func (t *Table[K]) addColumn(name, formula string) int {
	index := len(t.columns)
	t.columns = append(t.columns, NewColumn(name, formula))
	t.names[name] = index
	t.rows.Ascend(func(e *rowEntry[K]) bool {
		e.addColumn()
		return true
	})

	return index
}
