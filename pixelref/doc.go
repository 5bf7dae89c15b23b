// SPDX-License-Identifier: MIT

// Package pixelref defines grid cell references and their serialised form,
// the row key used by grid analyses.
//
// A PixelRef is a pair of int16 coordinates. For storage it is serialised
// into a single int32 (X in the high 16 bits, Y in the low 16 bits). Key is a
// distinct named type for that serialised form, so it cannot be mixed up with
// a plain integer index, while still being naturally ordered (cmp.Ordered):
// keys sort by X, then by the unsigned 16-bit pattern of Y.
package pixelref
