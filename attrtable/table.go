// SPDX-License-Identifier: MIT
//
// File: table.go
// Role: Table type, construction options and row lifecycle.
//
// Determinism:
//   - Rows are stored in a B-tree ordered by the table's key order; every
//     traversal visits rows in ascending (or, backwards, descending) key order.
//
// Concurrency:
//   - None internally; see package documentation.

package attrtable

import (
	"cmp"
	"fmt"

	"github.com/google/btree"
)

// DefaultDegree is the B-tree degree used for row storage unless WithDegree
// overrides it.
const DefaultDegree = 32

// TableOption configures a Table before creation.
type TableOption func(*tableConfig)

type tableConfig struct {
	degree  int
	columns []string
}

// WithDegree sets the degree of the row B-tree. Values below 2 are ignored.
func WithDegree(degree int) TableOption {
	return func(c *tableConfig) {
		if degree >= 2 {
			c.degree = degree
		}
	}
}

// WithColumns pre-creates unlocked columns, in order. Repeated names are
// created once.
func WithColumns(names ...string) TableOption {
	return func(c *tableConfig) {
		c.columns = append(c.columns, names...)
	}
}

// Table is the attribute table: an ordered mapping from row key K to a row
// of float32 cells, plus an ordered list of columns.
//
// Invariants:
//   - For every row, NumValues() == NumColumns().
//   - names[columns[i].Name()] == i for every column i.
type Table[K any] struct {
	less    func(a, b K) bool
	rows    *btree.BTreeG[*rowEntry[K]]
	columns []*Column
	names   map[string]int
}

// NewTable creates an empty table whose rows are ordered by less.
// less must define a strict weak ordering; keys a and b are the same row
// when neither less(a, b) nor less(b, a) holds.
func NewTable[K any](less func(a, b K) bool, opts ...TableOption) *Table[K] {
	cfg := tableConfig{degree: DefaultDegree}
	for _, opt := range opts {
		opt(&cfg)
	}
	t := &Table[K]{
		less: less,
		rows: btree.NewG(cfg.degree, func(a, b *rowEntry[K]) bool {
			return less(a.key, b.key)
		}),
		names: make(map[string]int),
	}
	for _, name := range cfg.columns {
		t.GetOrInsertColumn(name, "")
	}

	return t
}

// NewOrderedTable creates an empty table keyed by a naturally ordered type.
func NewOrderedTable[K cmp.Ordered](opts ...TableOption) *Table[K] {
	return NewTable(cmp.Less[K], opts...)
}

func (t *Table[K]) probe(key K) *rowEntry[K] {
	return &rowEntry[K]{key: key}
}

func (t *Table[K]) lookup(key K) (*rowEntry[K], error) {
	e, ok := t.rows.Get(t.probe(key))
	if !ok {
		return nil, fmt.Errorf("%w: row key %v", ErrNotFound, key)
	}

	return e, nil
}

func (t *Table[K]) mutable(e *rowEntry[K]) Row[K] {
	return Row[K]{RowView: t.readOnly(e)}
}

func (t *Table[K]) readOnly(e *rowEntry[K]) RowView[K] {
	return RowView[K]{cm: t, e: e}
}

// AddRow inserts a row for key with every cell set to Sentinel and returns
// a mutable handle on it.
//
// Errors: ErrAlreadyExists if key is already present.
// Complexity: O(log R + C).
func (t *Table[K]) AddRow(key K) (Row[K], error) {
	if t.rows.Has(t.probe(key)) {
		return Row[K]{}, fmt.Errorf("%w: row key %v", ErrAlreadyExists, key)
	}
	e := newRowEntry(key, len(t.columns))
	t.rows.ReplaceOrInsert(e)

	return t.mutable(e), nil
}

// Row returns a mutable handle on the row for key.
// Errors: ErrNotFound if key is absent.
func (t *Table[K]) Row(key K) (Row[K], error) {
	e, err := t.lookup(key)
	if err != nil {
		return Row[K]{}, err
	}

	return t.mutable(e), nil
}

// ReadRow returns a read-only handle on the row for key.
// Errors: ErrNotFound if key is absent.
func (t *Table[K]) ReadRow(key K) (RowView[K], error) {
	e, err := t.lookup(key)
	if err != nil {
		return RowView[K]{}, err
	}

	return t.readOnly(e), nil
}

// HasRow reports whether a row exists for key.
func (t *Table[K]) HasRow(key K) bool {
	return t.rows.Has(t.probe(key))
}

// RemoveRow deletes the row for key. Column aggregates are not adjusted;
// call RecomputeStats when exact figures are needed afterwards.
//
// Errors: ErrNotFound if key is absent (the table is left unchanged).
func (t *Table[K]) RemoveRow(key K) error {
	if _, ok := t.rows.Delete(t.probe(key)); !ok {
		return fmt.Errorf("%w: row key %v", ErrNotFound, key)
	}

	return nil
}

// NumRows returns the number of rows.
func (t *Table[K]) NumRows() int { return t.rows.Len() }

// Less reports whether key a orders before key b in this table.
func (t *Table[K]) Less(a, b K) bool { return t.less(a, b) }
