// SPDX-License-Identifier: MIT
//
// File: cursor.go
// Role: Bidirectional key-ordered traversal over table rows.
//
// A single Cursor type serves both read-only and mutable traversal; the
// handle type it yields is fixed when the cursor is created. Cursors remember
// the current key and re-seek from it on every step, so Next and Prev stay
// well-defined when rows are added or removed between steps. Row values may
// be changed through the yielded handles; schema changes go through the
// table only.

package attrtable

import "iter"

type cursorPos uint8

const (
	posBefore cursorPos = iota // before the first row
	posAt                      // on a row
	posAfter                   // past the last row
)

// Cursor walks the rows of a Table in key order, yielding handles of type R
// (Row[K] or RowView[K]).
type Cursor[K, R any] struct {
	t    *Table[K]
	wrap func(*rowEntry[K]) R
	cur  *rowEntry[K]
	pos  cursorPos
}

// Cursor returns a cursor yielding mutable row handles, positioned on the
// first row (or past the end when the table is empty).
func (t *Table[K]) Cursor() *Cursor[K, Row[K]] {
	c := &Cursor[K, Row[K]]{t: t, wrap: t.mutable}
	c.First()

	return c
}

// ReadCursor returns a cursor yielding read-only row handles, positioned on
// the first row (or past the end when the table is empty).
func (t *Table[K]) ReadCursor() *Cursor[K, RowView[K]] {
	c := &Cursor[K, RowView[K]]{t: t, wrap: t.readOnly}
	c.First()

	return c
}

// Valid reports whether the cursor is positioned on a row.
func (c *Cursor[K, R]) Valid() bool { return c.pos == posAt }

// Key returns the key of the current row. It panics if !Valid().
func (c *Cursor[K, R]) Key() K {
	c.mustBeValid()
	return c.cur.key
}

// Row returns the handle of the current row. It panics if !Valid().
// If the current row was removed from the table after the cursor reached
// it, the handle refers to detached storage.
func (c *Cursor[K, R]) Row() R {
	c.mustBeValid()
	return c.wrap(c.cur)
}

// First moves to the smallest key. Reports Valid().
func (c *Cursor[K, R]) First() bool {
	e, ok := c.t.rows.Min()
	return c.land(e, ok, posAfter)
}

// Last moves to the largest key. Reports Valid().
func (c *Cursor[K, R]) Last() bool {
	e, ok := c.t.rows.Max()
	return c.land(e, ok, posBefore)
}

// Seek moves to the smallest key not less than key. Reports Valid().
func (c *Cursor[K, R]) Seek(key K) bool {
	var next *rowEntry[K]
	c.t.rows.AscendGreaterOrEqual(c.t.probe(key), func(e *rowEntry[K]) bool {
		next = e
		return false
	})

	return c.land(next, next != nil, posAfter)
}

// Next advances to the following key. From before the first row it moves to
// the first row; past the end it stays there. Reports Valid().
func (c *Cursor[K, R]) Next() bool {
	switch c.pos {
	case posBefore:
		return c.First()
	case posAfter:
		return false
	}
	var next *rowEntry[K]
	c.t.rows.AscendGreaterOrEqual(c.cur, func(e *rowEntry[K]) bool {
		if !c.t.less(c.cur.key, e.key) {
			return true // the current key itself
		}
		next = e
		return false
	})

	return c.land(next, next != nil, posAfter)
}

// Prev steps back to the preceding key. Past the end it moves to the last
// row; before the first row it stays there. Reports Valid().
func (c *Cursor[K, R]) Prev() bool {
	switch c.pos {
	case posAfter:
		return c.Last()
	case posBefore:
		return false
	}
	var prev *rowEntry[K]
	c.t.rows.DescendLessOrEqual(c.cur, func(e *rowEntry[K]) bool {
		if !c.t.less(e.key, c.cur.key) {
			return true
		}
		prev = e
		return false
	})

	return c.land(prev, prev != nil, posBefore)
}

func (c *Cursor[K, R]) land(e *rowEntry[K], ok bool, otherwise cursorPos) bool {
	if !ok {
		c.cur, c.pos = nil, otherwise
		return false
	}
	c.cur, c.pos = e, posAt

	return true
}

func (c *Cursor[K, R]) mustBeValid() {
	if c.pos != posAt {
		panic("attrtable: cursor is not positioned on a row")
	}
}

// All yields every (key, mutable row) pair in ascending key order.
// Rows must not be added or removed while ranging.
func (t *Table[K]) All() iter.Seq2[K, Row[K]] {
	return func(yield func(K, Row[K]) bool) {
		t.rows.Ascend(func(e *rowEntry[K]) bool {
			return yield(e.key, t.mutable(e))
		})
	}
}

// ReadAll yields every (key, read-only row) pair in ascending key order.
// Rows must not be added or removed while ranging.
func (t *Table[K]) ReadAll() iter.Seq2[K, RowView[K]] {
	return func(yield func(K, RowView[K]) bool) {
		t.rows.Ascend(func(e *rowEntry[K]) bool {
			return yield(e.key, t.readOnly(e))
		})
	}
}

// Backward yields every (key, mutable row) pair in descending key order.
func (t *Table[K]) Backward() iter.Seq2[K, Row[K]] {
	return func(yield func(K, Row[K]) bool) {
		t.rows.Descend(func(e *rowEntry[K]) bool {
			return yield(e.key, t.mutable(e))
		})
	}
}

// Keys yields every row key in ascending order.
func (t *Table[K]) Keys() iter.Seq[K] {
	return func(yield func(K) bool) {
		t.rows.Ascend(func(e *rowEntry[K]) bool {
			return yield(e.key)
		})
	}
}
