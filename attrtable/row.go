// SPDX-License-Identifier: MIT
//
// File: row.go
// Role: Row storage and the read-only / mutable row handles.
//
// Storage (rowEntry) owns only its key and a dense value slice. Column
// metadata is always reached through a ColumnManager passed in by the
// handle, never through a reference kept in the row.

package attrtable

import "fmt"

// ColumnManager is the read-only schema query capability a row needs to
// resolve column names and to reach the aggregate of the column it writes.
// Table implements it for its own rows.
type ColumnManager interface {
	// NumColumns returns the number of columns.
	NumColumns() int
	// ColumnIndex resolves a column name; ErrNotFound if unknown.
	ColumnIndex(name string) (int, error)
	// Column returns the column at index; ErrIndexOutOfRange if invalid.
	Column(index int) (ColumnView, error)
	// ColumnName returns the name of the column at index; ErrIndexOutOfRange if invalid.
	ColumnName(index int) (string, error)
}

type rowEntry[K any] struct {
	key    K
	values []float32
}

func newRowEntry[K any](key K, numColumns int) *rowEntry[K] {
	values := make([]float32, numColumns)
	for i := range values {
		values[i] = Sentinel
	}

	return &rowEntry[K]{key: key, values: values}
}

func (e *rowEntry[K]) checkIndex(index int) error {
	if index < 0 || index >= len(e.values) {
		return fmt.Errorf("%w: value index %d, row has %d values", ErrIndexOutOfRange, index, len(e.values))
	}

	return nil
}

func (e *rowEntry[K]) valueAt(index int) (float32, error) {
	if err := e.checkIndex(index); err != nil {
		return Sentinel, err
	}

	return e.values[index], nil
}

// setValueAt resolves, reads the old value, stores the new one and then
// updates the column aggregate, in that order.
func (e *rowEntry[K]) setValueAt(cm ColumnManager, index int, value float32) error {
	if err := e.checkIndex(index); err != nil {
		return err
	}
	col, err := cm.Column(index)
	if err != nil {
		return err
	}
	old := e.values[index]
	e.values[index] = value
	col.UpdateStats(value, old)

	return nil
}

// addColumn appends one Sentinel slot. Table-only.
func (e *rowEntry[K]) addColumn() {
	e.values = append(e.values, Sentinel)
}

// removeColumn deletes one slot, shifting later slots down. Table-only.
func (e *rowEntry[K]) removeColumn(index int) {
	e.values = append(e.values[:index], e.values[index+1:]...)
}

// RowView is a read-only handle on one table row.
//
// A RowView is a small value; copying it is cheap. It stays valid while the
// row belongs to the table. The zero RowView is not usable.
type RowView[K any] struct {
	cm ColumnManager
	e  *rowEntry[K]
}

// Key returns the row key.
func (r RowView[K]) Key() K { return r.e.key }

// NumValues returns the number of cells, equal to the table's column count.
func (r RowView[K]) NumValues() int { return len(r.e.values) }

// Value returns the cell of the named column.
// Errors: ErrNotFound if the column name is unknown.
func (r RowView[K]) Value(column string) (float32, error) {
	index, err := r.cm.ColumnIndex(column)
	if err != nil {
		return Sentinel, err
	}

	return r.e.valueAt(index)
}

// ValueAt returns the cell at a positional column index.
// Errors: ErrIndexOutOfRange if index is outside [0, NumValues()).
func (r RowView[K]) ValueAt(index int) (float32, error) {
	return r.e.valueAt(index)
}

// Values returns a copy of all cells in column order.
func (r RowView[K]) Values() []float32 {
	out := make([]float32, len(r.e.values))
	copy(out, r.e.values)

	return out
}

// Row is a mutable handle on one table row. Writes always update the
// aggregate of the written column.
type Row[K any] struct {
	RowView[K]
}

// SetValue writes the cell of the named column.
// Errors: ErrNotFound if the column name is unknown.
func (r Row[K]) SetValue(column string, value float32) error {
	index, err := r.cm.ColumnIndex(column)
	if err != nil {
		return err
	}

	return r.e.setValueAt(r.cm, index, value)
}

// SetValueAt writes the cell at a positional column index.
// Errors: ErrIndexOutOfRange if index is outside [0, NumValues()).
func (r Row[K]) SetValueAt(index int, value float32) error {
	return r.e.setValueAt(r.cm, index, value)
}

// ReadOnly returns the read-only handle on the same row.
func (r Row[K]) ReadOnly() RowView[K] { return r.RowView }
