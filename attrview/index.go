// SPDX-License-Identifier: MIT

package attrview

import (
	"cmp"
	"slices"
	"sort"

	"github.com/katalvlaran/sala/attrtable"
)

// Item is one entry of a display index.
type Item[K, R any] struct {
	// Key is the key of the row.
	Key K
	// Value is the display column value captured at build time.
	Value float32
	// Row is the handle on the row: attrtable.RowView[K] or attrtable.Row[K].
	Row R
}

type valuer interface {
	ValueAt(index int) (float32, error)
}

// buildIndex scans every row through cursor c, reads the value at column
// col and sorts the result by value. The scan is in key order and the sort
// is stable, so equal values stay in ascending key order.
func buildIndex[K any, R valuer](c *attrtable.Cursor[K, R], col int) ([]Item[K, R], error) {
	var items []Item[K, R]
	for ok := c.First(); ok; ok = c.Next() {
		row := c.Row()
		v, err := row.ValueAt(col)
		if err != nil {
			return nil, err
		}
		items = append(items, Item[K, R]{Key: c.Key(), Value: v, Row: row})
	}
	slices.SortStableFunc(items, func(a, b Item[K, R]) int {
		return cmp.Compare(a.Value, b.Value)
	})

	return items, nil
}

// between returns the sub-slice of a sorted index with lo <= Value < hi.
func between[K, R any](items []Item[K, R], lo, hi float32) []Item[K, R] {
	from := sort.Search(len(items), func(i int) bool { return items[i].Value >= lo })
	to := sort.Search(len(items), func(i int) bool { return items[i].Value >= hi })
	if to < from {
		to = from
	}

	return items[from:to]
}
