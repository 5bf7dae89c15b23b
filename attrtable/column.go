// SPDX-License-Identifier: MIT
//
// File: column.go
// Role: Column schema metadata and its read-only face.

package attrtable

// Column is the schema metadata of one table column.
//
// Name uniqueness is enforced by the owning Table. Lock and hidden are
// independent flags; neither restricts aggregate updates, which describe
// observed data rather than editability. Renaming is reserved to
// Table.RenameColumn so the table's name index cannot drift.
type Column struct {
	name    string
	formula string
	locked  bool
	hidden  bool
	stats   ColumnStats
}

// NewColumn returns an unlocked, visible column with fresh (Sentinel) stats.
func NewColumn(name, formula string) *Column {
	return &Column{name: name, formula: formula, stats: NewColumnStats()}
}

// Name returns the column name.
func (c *Column) Name() string { return c.name }

// Formula returns the formula string; empty if none was given.
func (c *Column) Formula() string { return c.formula }

// IsLocked reports whether the column is protected from ordinary edit paths.
func (c *Column) IsLocked() bool { return c.locked }

// IsHidden reports whether the column is hidden from display.
func (c *Column) IsHidden() bool { return c.hidden }

// SetLock sets the lock flag. Idempotent.
func (c *Column) SetLock(lock bool) { c.locked = lock }

// SetHidden sets the hidden flag. Idempotent.
func (c *Column) SetHidden(hidden bool) { c.hidden = hidden }

// Stats returns a snapshot of the column aggregate.
func (c *Column) Stats() ColumnStats { return c.stats }

// UpdateStats folds one write of val over old into the column aggregate.
func (c *Column) UpdateStats(val, old float32) {
	c.stats.Update(float64(val), float64(old))
}

func (c *Column) setName(name string) { c.name = name }

// View returns the read-only face of c.
func (c *Column) View() ColumnView { return ColumnView{c: c} }

// ColumnView is a read-only view of a Column.
//
// Configuration (name, formula, lock, hidden) cannot be changed through a
// ColumnView, but its aggregate can: stats are updated on every row write,
// including writes made by holders of read-only column access.
type ColumnView struct {
	c *Column
}

// Name returns the column name.
func (v ColumnView) Name() string { return v.c.name }

// Formula returns the formula string.
func (v ColumnView) Formula() string { return v.c.formula }

// IsLocked reports the lock flag.
func (v ColumnView) IsLocked() bool { return v.c.locked }

// IsHidden reports the hidden flag.
func (v ColumnView) IsHidden() bool { return v.c.hidden }

// Stats returns a snapshot of the column aggregate.
func (v ColumnView) Stats() ColumnStats { return v.c.stats }

// UpdateStats folds one write of val over old into the column aggregate.
func (v ColumnView) UpdateStats(val, old float32) { v.c.UpdateStats(val, old) }

// UpdateVisibleStats folds one visible-row value into the visible triple.
func (v ColumnView) UpdateVisibleStats(val, old float32) {
	v.c.stats.UpdateVisible(float64(val), float64(old))
}

// ResetVisibleStats restores the visible triple to Sentinel.
func (v ColumnView) ResetVisibleStats() { v.c.stats.ResetVisible() }
