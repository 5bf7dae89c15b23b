// SPDX-License-Identifier: MIT

// Package attrtable is the generic attribute store that analysis results,
// selections and display operations are built on.
//
// What:
//
//   - Table[K] is a column-oriented table keyed by an arbitrary totally
//     ordered row key K. Rows are kept in key order.
//   - Columns can be added, reset, renamed and removed at runtime; every row
//     is resized in the same call so that, at all times,
//     row.NumValues() == table.NumColumns().
//   - Every column carries a ColumnStats aggregate (min, max, total and the
//     "visible" triple) that is updated incrementally on every value write.
//   - Cursor[K, R] walks rows in key order in both directions and yields
//     either read-only (RowView) or mutable (Row) handles.
//
// Ownership:
//
//	The table owns both columns and rows. Stored rows are plain value slices;
//	they never reference the table. Row handles returned by the table pair the
//	storage with the table's ColumnManager and are only valid while the row is
//	part of the table.
//
// Sentinel:
//
//	The value -1 (Sentinel) marks unset cells and uninitialised aggregate
//	fields. Negative running totals do not occur in the analysis domain.
//
// Concurrency:
//
//	A Table is not synchronised. Schema mutations (column add/reset/remove/
//	rename) and row insertion/removal are stop-the-world operations. Row
//	values may be written from several goroutines as long as each goroutine
//	owns its rows and writes through its own ColumnWriter; the buffered
//	aggregate deltas are merged with ColumnWriter.Flush once all workers
//	have finished.
//
// Errors:
//
//   - ErrNotFound: unknown column name or row key.
//   - ErrIndexOutOfRange: bad positional column or value index.
//   - ErrAlreadyExists: duplicate row key, or rename onto an existing column.
//   - ErrStaleWriter: a ColumnWriter used after its column was removed.
//
// Every error returned by this package wraps one of the sentinels above and
// can be matched with errors.Is. Rejected operations leave the table
// unchanged.
package attrtable
