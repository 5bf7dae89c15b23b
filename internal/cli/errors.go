// SPDX-License-Identifier: MIT

package cli

import "errors"

// Sentinel errors for command-line handling.
var (
	ErrInvalidPoint   = errors.New("cli: invalid origin point")
	ErrPointsConflict = errors.New("cli: --point cannot be used together with --points-file")
	ErrNoPoints       = errors.New("cli: step-depth needs --point or --points-file")
	ErrNoGrid         = errors.New("cli: --grid is required")
	ErrInvalidGrid    = errors.New("cli: invalid grid")
	ErrInvalidConfig  = errors.New("cli: invalid configuration")
)
