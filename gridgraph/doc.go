// SPDX-License-Identifier: MIT

// Package gridgraph treats a 2D grid of cells as a graph and writes the
// results of grid analyses into an attribute table keyed by pixel reference.
//
// What:
//
//   - GridGraph wraps a rectangular [][]int grid with a tunable OpenThreshold.
//   - Cells with value ≥ OpenThreshold are open; the rest are blocked.
//   - Identifies connected components of open cells.
//   - Computes step depth from a set of origin cells (multi-source BFS).
//   - Computes per-cell node count, total depth and mean depth in parallel.
//
// Every analysis claims its own locked columns in the table and adds a row
// for each open cell that does not have one yet.
//
// Complexity:
//
//   - ConnectedComponents, Components: O(W×H×d), Memory: O(W×H)  (d = 4 or 8).
//   - StepDepth: O(W×H×d), Memory: O(W×H).
//   - MeanDepth: O((W×H)²×d / workers), Memory: O(W×H) per worker.
//
// Options:
//
//   - GridOptions.OpenThreshold: minimum value considered open.
//   - GridOptions.Conn: Conn4 (4-neighbors) or Conn8 (8-neighbors).
//   - WithContext, WithWorkers, WithRadius tune the analyses.
//
// Errors:
//
//   - ErrEmptyGrid: input grid has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrGridTooLarge: a dimension does not fit a pixel reference.
//   - ErrOriginOutOfBounds, ErrOriginBlocked: unusable StepDepth origin.
//   - ErrNoOrigins: StepDepth called without origins.
//   - ErrOptionViolation: invalid analysis option.
package gridgraph
