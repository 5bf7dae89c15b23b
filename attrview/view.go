// SPDX-License-Identifier: MIT

package attrview

import (
	"fmt"

	"github.com/katalvlaran/sala/attrtable"
)

// NoColumn is the display column value meaning "none selected".
const NoColumn = -1

// View is a read-only sorted index over one column of a table.
type View[K any] struct {
	table   *attrtable.Table[K]
	display int
	index   []Item[K, attrtable.RowView[K]]
}

// NewView returns a view over t with no display column selected.
func NewView[K any](t *attrtable.Table[K]) *View[K] {
	return &View[K]{table: t, display: NoColumn}
}

// Table returns the underlying table.
func (v *View[K]) Table() *attrtable.Table[K] { return v.table }

// SetDisplayColumn selects the display column and rebuilds the index.
// A negative col clears the selection and the index. Any other value
// triggers a full rebuild, even when it equals the current selection.
//
// Errors: attrtable.ErrIndexOutOfRange if col >= NumColumns(); the previous
// selection and index are kept in that case.
// Complexity: O(R log R).
func (v *View[K]) SetDisplayColumn(col int) error {
	if col < 0 {
		v.ClearDisplayColumn()
		return nil
	}
	if err := checkColumn(v.table, col); err != nil {
		return err
	}
	index, err := buildIndex(v.table.ReadCursor(), col)
	if err != nil {
		return err
	}
	v.index, v.display = index, col

	return nil
}

// ClearDisplayColumn drops the selection and the index.
func (v *View[K]) ClearDisplayColumn() {
	v.index, v.display = nil, NoColumn
}

// DisplayColumn returns the selected column and whether one is selected.
func (v *View[K]) DisplayColumn() (int, bool) {
	return v.display, v.display != NoColumn
}

// Index returns the sorted index as of the last rebuild. The slice is owned
// by the view and must not be modified.
func (v *View[K]) Index() []Item[K, attrtable.RowView[K]] { return v.index }

// Between returns the index entries with lo <= Value < hi.
func (v *View[K]) Between(lo, hi float32) []Item[K, attrtable.RowView[K]] {
	return between(v.index, lo, hi)
}

// Handle is a View whose index also exposes mutable row handles.
type Handle[K any] struct {
	View[K]
	mutable []Item[K, attrtable.Row[K]]
}

// NewHandle returns a handle over t with no display column selected.
func NewHandle[K any](t *attrtable.Table[K]) *Handle[K] {
	return &Handle[K]{View: View[K]{table: t, display: NoColumn}}
}

// SetDisplayColumn rebuilds both the read-only and the mutable index; see
// View.SetDisplayColumn.
func (h *Handle[K]) SetDisplayColumn(col int) error {
	if col < 0 {
		h.ClearDisplayColumn()
		return nil
	}
	if err := checkColumn(h.table, col); err != nil {
		return err
	}
	mutable, err := buildIndex(h.table.Cursor(), col)
	if err != nil {
		return err
	}
	if err = h.View.SetDisplayColumn(col); err != nil {
		return err
	}
	h.mutable = mutable

	return nil
}

// ClearDisplayColumn drops the selection and both indices.
func (h *Handle[K]) ClearDisplayColumn() {
	h.View.ClearDisplayColumn()
	h.mutable = nil
}

// Index returns the mutable sorted index as of the last rebuild.
func (h *Handle[K]) Index() []Item[K, attrtable.Row[K]] { return h.mutable }

// ConstIndex returns the read-only sorted index as of the last rebuild.
func (h *Handle[K]) ConstIndex() []Item[K, attrtable.RowView[K]] { return h.View.Index() }

// Between returns the mutable index entries with lo <= Value < hi.
func (h *Handle[K]) Between(lo, hi float32) []Item[K, attrtable.Row[K]] {
	return between(h.mutable, lo, hi)
}

func checkColumn[K any](t *attrtable.Table[K], col int) error {
	if col >= t.NumColumns() {
		return fmt.Errorf("%w: display column %d, table has %d columns",
			attrtable.ErrIndexOutOfRange, col, t.NumColumns())
	}

	return nil
}
