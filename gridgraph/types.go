// SPDX-License-Identifier: MIT

package gridgraph

// Connectivity selects neighbor connectivity: orthogonal (Conn4) or including diagonals (Conn8).
type Connectivity int

const (
	// Conn4 uses 4-directional connectivity: N, E, S, W.
	Conn4 Connectivity = iota
	// Conn8 uses 8-directional connectivity: N, NE, E, SE, S, SW, W, NW.
	Conn8
)

// String returns "4" or "8".
func (c Connectivity) String() string {
	if c == Conn8 {
		return "8"
	}

	return "4"
}

// GridOptions contains tunable parameters for the grid itself.
type GridOptions struct {
	// OpenThreshold specifies the minimum cell value considered open.
	OpenThreshold int
	// Conn chooses 4- or 8-directional connectivity.
	Conn Connectivity
}

// DefaultGridOptions returns a GridOptions with default settings:
// OpenThreshold=1 (values ≥1 are open), Conn=Conn4.
func DefaultGridOptions() GridOptions {
	return GridOptions{
		OpenThreshold: 1,
		Conn:          Conn4,
	}
}

// GridGraph treats a 2D integer grid as a graph. It is immutable once built,
// so analyses may read it from several goroutines.
// CellValues[y][x] holds the original input value.
type GridGraph struct {
	Width, Height   int
	CellValues      [][]int
	Conn            Connectivity
	OpenThreshold   int
	neighborOffsets [][2]int
}
