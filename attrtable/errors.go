// SPDX-License-Identifier: MIT

package attrtable

import "errors"

// Sentinel errors for attribute table operations.
var (
	// ErrNotFound indicates an unknown column name or row key.
	ErrNotFound = errors.New("attrtable: not found")

	// ErrIndexOutOfRange indicates a positional column or value index outside the current schema.
	ErrIndexOutOfRange = errors.New("attrtable: index out of range")

	// ErrAlreadyExists indicates a duplicate row key or a rename onto a name already in use.
	ErrAlreadyExists = errors.New("attrtable: already exists")

	// ErrStaleWriter indicates a ColumnWriter whose column has been removed from the table.
	ErrStaleWriter = errors.New("attrtable: column writer is stale")
)
