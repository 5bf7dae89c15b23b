// SPDX-License-Identifier: MIT

package gridgraph

import "errors"

// Sentinel errors for gridgraph operations.
var (
	// ErrEmptyGrid indicates input grid has no rows or no columns.
	ErrEmptyGrid = errors.New("gridgraph: input grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("gridgraph: all rows must have the same length")
	// ErrGridTooLarge indicates a grid whose coordinates overflow a pixel reference.
	ErrGridTooLarge = errors.New("gridgraph: grid dimension exceeds pixel reference range")
	// ErrOriginOutOfBounds indicates an origin outside the grid.
	ErrOriginOutOfBounds = errors.New("gridgraph: origin outside the grid")
	// ErrOriginBlocked indicates an origin on a blocked cell.
	ErrOriginBlocked = errors.New("gridgraph: origin on a blocked cell")
	// ErrNoOrigins indicates a depth analysis without any origin.
	ErrNoOrigins = errors.New("gridgraph: no origin given")
	// ErrOptionViolation indicates an invalid analysis option.
	ErrOptionViolation = errors.New("gridgraph: invalid option supplied")
)
