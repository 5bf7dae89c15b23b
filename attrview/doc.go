// SPDX-License-Identifier: MIT

// Package attrview builds sorted display indices over an attribute table.
//
// A View orders the rows of an attrtable.Table by the values of one chosen
// "display column", ascending, with ties broken by ascending row key. The
// index is a snapshot: it is rebuilt in full every time SetDisplayColumn is
// called (also when the same column is selected again) and is never patched
// incrementally. Callers that need fresh ordering after writing to the table
// call SetDisplayColumn again.
//
// A Handle is a View whose index carries mutable row handles, so callers can
// sweep the rows in value order and edit them in place, for example to
// re-bucket values by range. Edits go through attrtable.Row and therefore
// keep the column aggregates current; they do not reorder the index.
//
// Views must not be rebuilt concurrently with schema mutations of the
// underlying table.
package attrview
