// SPDX-License-Identifier: MIT

package pixelref

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Sentinel errors for parsing and conversion.
var (
	// ErrInvalidPoint indicates a point string that is not "x,y".
	ErrInvalidPoint = errors.New("pixelref: invalid point")

	// ErrOutOfRange indicates a coordinate that does not fit in int16.
	ErrOutOfRange = errors.New("pixelref: coordinate out of range")
)

// PixelRef addresses one grid cell.
type PixelRef struct {
	X, Y int16
}

// Key is the serialised form of a PixelRef.
type Key int32

// New returns the PixelRef for (x, y).
// Errors: ErrOutOfRange if either coordinate does not fit in int16.
func New(x, y int) (PixelRef, error) {
	if x < math.MinInt16 || x > math.MaxInt16 || y < math.MinInt16 || y > math.MaxInt16 {
		return PixelRef{}, fmt.Errorf("%w: (%d,%d)", ErrOutOfRange, x, y)
	}

	return PixelRef{X: int16(x), Y: int16(y)}, nil
}

// Key serialises p.
func (p PixelRef) Key() Key {
	return Key(int32(p.X)<<16 | int32(uint16(p.Y)))
}

// String formats p as "x,y".
func (p PixelRef) String() string {
	return strconv.Itoa(int(p.X)) + "," + strconv.Itoa(int(p.Y))
}

// PixelRef deserialises k.
func (k Key) PixelRef() PixelRef {
	return PixelRef{X: int16(int32(k) >> 16), Y: int16(uint16(k))}
}

// String formats the referenced cell as "x,y".
func (k Key) String() string { return k.PixelRef().String() }

// Less orders keys numerically; usable with attrtable.NewTable.
func Less(a, b Key) bool { return a < b }

// Parse reads a point written as "x,y". Coordinates may be fractional; they
// are floored to the containing cell.
//
// Errors: ErrInvalidPoint for malformed input, ErrOutOfRange if a floored
// coordinate does not fit in int16.
func Parse(s string) (PixelRef, error) {
	xs, ys, ok := strings.Cut(strings.TrimSpace(s), ",")
	if !ok || strings.Contains(ys, ",") {
		return PixelRef{}, fmt.Errorf("%w: %q", ErrInvalidPoint, s)
	}
	x, err := strconv.ParseFloat(strings.TrimSpace(xs), 64)
	if err != nil {
		return PixelRef{}, fmt.Errorf("%w: %q", ErrInvalidPoint, s)
	}
	y, err := strconv.ParseFloat(strings.TrimSpace(ys), 64)
	if err != nil {
		return PixelRef{}, fmt.Errorf("%w: %q", ErrInvalidPoint, s)
	}
	fx, fy := math.Floor(x), math.Floor(y)
	if fx < math.MinInt16 || fx > math.MaxInt16 || fy < math.MinInt16 || fy > math.MaxInt16 {
		return PixelRef{}, fmt.Errorf("%w: %q", ErrOutOfRange, s)
	}

	return PixelRef{X: int16(fx), Y: int16(fy)}, nil
}
