// SPDX-License-Identifier: MIT
//
// File: stats.go
// Role: Per-column running aggregates and the worker-local accumulator that
//       feeds them after a parallel phase.

package attrtable

// Sentinel marks an unset cell value and an uninitialised aggregate field.
const Sentinel = -1.0

// ColumnStats is the running aggregate of one column.
//
// Min, Max and Total are maintained by Update on every value write. Total is
// the sum of all contributions written through Update, never a rescan. Min
// and Max are running extremes: when a value that was the current extreme is
// overwritten with a smaller (or larger) one, the extreme is not recomputed.
// Call Table.RecomputeStats when exact extremes are needed.
//
// The visible triple has the same meaning restricted to the rows a
// visibility collaborator considers visible; it is driven through
// UpdateVisible and ResetVisible only.
type ColumnStats struct {
	Min   float64
	Max   float64
	Total float64

	VisibleMin   float64
	VisibleMax   float64
	VisibleTotal float64
}

// NewColumnStats returns a ColumnStats with all six fields set to Sentinel.
func NewColumnStats() ColumnStats {
	return ColumnStats{
		Min:          Sentinel,
		Max:          Sentinel,
		Total:        Sentinel,
		VisibleMin:   Sentinel,
		VisibleMax:   Sentinel,
		VisibleTotal: Sentinel,
	}
}

// Initialized reports whether Update has seen at least one value since the
// last Reset.
func (s ColumnStats) Initialized() bool {
	return !(s.Min == Sentinel && s.Max == Sentinel && s.Total == Sentinel)
}

// VisibleInitialized is Initialized for the visible triple.
func (s ColumnStats) VisibleInitialized() bool {
	return !(s.VisibleMin == Sentinel && s.VisibleMax == Sentinel && s.VisibleTotal == Sentinel)
}

// Update folds one write into the aggregate.
//
// On an uninitialised aggregate Min, Max and Total all become val and old is
// ignored. Otherwise Min and Max are widened by val and Total becomes
// Total - old + val, so a fresh value is passed with old == 0 and a
// replacement with old == the overwritten value.
//
// Complexity: O(1).
func (s *ColumnStats) Update(val, old float64) {
	s.Min, s.Max, s.Total = fold(s.Min, s.Max, s.Total, s.Initialized(), val, old)
}

// UpdateVisible applies the Update rule to the visible triple only.
func (s *ColumnStats) UpdateVisible(val, old float64) {
	s.VisibleMin, s.VisibleMax, s.VisibleTotal = fold(
		s.VisibleMin, s.VisibleMax, s.VisibleTotal, s.VisibleInitialized(), val, old)
}

// Reset restores all six fields to Sentinel, discarding history.
func (s *ColumnStats) Reset() {
	*s = NewColumnStats()
}

// ResetVisible restores only the visible triple to Sentinel.
func (s *ColumnStats) ResetVisible() {
	s.VisibleMin, s.VisibleMax, s.VisibleTotal = Sentinel, Sentinel, Sentinel
}

// Merge folds a worker-local Accumulator into the aggregate.
//
// Merging accumulators a1, a2, ... in that order yields exactly the aggregate
// produced by replaying the writes of a1, then those of a2, and so on through
// Update. An empty accumulator is a no-op.
func (s *ColumnStats) Merge(a *Accumulator) {
	if a == nil || a.n == 0 {
		return
	}
	if !s.Initialized() {
		// The first buffered write initialises the aggregate and its old value
		// must not be subtracted.
		s.Min, s.Max, s.Total = a.min, a.max, a.delta+a.firstOld
		return
	}
	s.Min = min(s.Min, a.min)
	s.Max = max(s.Max, a.max)
	s.Total += a.delta
}

func fold(lo, hi, total float64, initialized bool, val, old float64) (float64, float64, float64) {
	if !initialized {
		return val, val, val
	}

	return min(lo, val), max(hi, val), total - old + val
}

// Accumulator buffers aggregate updates for one column on one worker.
//
// It is the thread-local half of the parallel write discipline: a worker
// records every (val, old) pair it writes and the owner merges the result
// into the shared ColumnStats with ColumnStats.Merge after the barrier.
// The zero value is ready to use. An Accumulator is not safe for concurrent
// use.
type Accumulator struct {
	n        int
	min, max float64
	delta    float64 // sum of (val - old) over all updates
	firstOld float64 // old value of the first update
}

// Update records one write of val over old.
func (a *Accumulator) Update(val, old float64) {
	if a.n == 0 {
		a.min, a.max, a.firstOld = val, val, old
	} else {
		a.min = min(a.min, val)
		a.max = max(a.max, val)
	}
	a.delta += val - old
	a.n++
}

// Len returns the number of writes recorded since the last Reset.
func (a *Accumulator) Len() int { return a.n }

// Reset discards all recorded writes.
func (a *Accumulator) Reset() { *a = Accumulator{} }
