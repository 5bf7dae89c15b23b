// SPDX-License-Identifier: MIT
// Package attrtable_test contains shared fixtures for attribute table tests.

package attrtable_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/sala/attrtable"
)

// Column names shared across tests.
const (
	Col1    = "col1"
	Col2    = "col2"
	LCol1   = "lcol1"
	LCol2   = "lcol2"
	ColX    = "colx"
	ColFoo  = "col_foo"
	ColNew  = "newCol"
	Formula = "formula"
)

// delta is the tolerance for float32 cells compared against float64 aggregates.
const delta = 1e-6

// newFourColumnTable builds the col1, col2, lcol1 (locked), lcol2 (locked,
// formula) layout used by most table tests.
func newFourColumnTable(t *testing.T) *attrtable.Table[int] {
	t.Helper()
	tbl := attrtable.NewOrderedTable[int]()
	tbl.InsertOrResetColumn(Col1, "")
	tbl.GetOrInsertColumn(Col2, "")
	tbl.InsertOrResetLockedColumn(LCol1, "")
	tbl.GetOrInsertLockedColumn(LCol2, Formula)
	require.Equal(t, 4, tbl.NumColumns())

	return tbl
}

// mustRow fetches a mutable row or fails the test.
func mustRow(t *testing.T, tbl *attrtable.Table[int], key int) attrtable.Row[int] {
	t.Helper()
	row, err := tbl.Row(key)
	require.NoError(t, err)

	return row
}

// mustValue reads a named cell or fails the test.
func mustValue(t *testing.T, tbl *attrtable.Table[int], key int, column string) float32 {
	t.Helper()
	v, err := mustRow(t, tbl, key).Value(column)
	require.NoError(t, err)

	return v
}

// mustValueAt reads a positional cell or fails the test.
func mustValueAt(t *testing.T, tbl *attrtable.Table[int], key int, index int) float32 {
	t.Helper()
	v, err := mustRow(t, tbl, key).ValueAt(index)
	require.NoError(t, err)

	return v
}

// mustColumn fetches a column view or fails the test.
func mustColumn(t *testing.T, tbl *attrtable.Table[int], index int) attrtable.ColumnView {
	t.Helper()
	col, err := tbl.Column(index)
	require.NoError(t, err)

	return col
}
