// SPDX-License-Identifier: MIT

package attrtable_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/sala/attrtable"
)

// TestColumnWriter_FlushMatchesRowWrites compares the buffered path with the
// direct row-write path on the same data.
func TestColumnWriter_FlushMatchesRowWrites(t *testing.T) {
	direct := attrtable.NewOrderedTable[int](attrtable.WithColumns(Col1))
	buffered := attrtable.NewOrderedTable[int](attrtable.WithColumns(Col1))
	for k := 0; k < 6; k++ {
		_, err := direct.AddRow(k)
		require.NoError(t, err)
		_, err = buffered.AddRow(k)
		require.NoError(t, err)
	}

	w, err := buffered.ColumnWriter(0)
	require.NoError(t, err)
	assert.Equal(t, 0, w.Column())
	for k := 0; k < 6; k++ {
		v := float32(k*k) + 0.5
		require.NoError(t, mustRow(t, direct, k).SetValueAt(0, v))
		require.NoError(t, w.SetValue(k, v))
	}
	assert.Equal(t, 6, w.Pending())
	assert.False(t, mustColumn(t, buffered, 0).Stats().Initialized(), "nothing merged before Flush")

	require.NoError(t, w.Flush())
	assert.Zero(t, w.Pending())
	assert.Equal(t, mustColumn(t, direct, 0).Stats(), mustColumn(t, buffered, 0).Stats())
	for k := 0; k < 6; k++ {
		assert.Equal(t, mustValueAt(t, direct, k, 0), mustValueAt(t, buffered, k, 0))
	}
}

// TestColumnWriter_Errors verifies unknown keys, bad indices and staleness.
func TestColumnWriter_Errors(t *testing.T) {
	tbl := attrtable.NewOrderedTable[int](attrtable.WithColumns(Col1, Col2))
	_, err := tbl.AddRow(1)
	require.NoError(t, err)

	_, err = tbl.ColumnWriter(2)
	assert.ErrorIs(t, err, attrtable.ErrIndexOutOfRange)

	w, err := tbl.ColumnWriter(1)
	require.NoError(t, err)
	assert.ErrorIs(t, w.SetValue(5, 1), attrtable.ErrNotFound)
	require.NoError(t, w.SetValue(1, 1))

	require.NoError(t, tbl.RemoveColumn(0))
	assert.ErrorIs(t, w.SetValue(1, 2), attrtable.ErrStaleWriter)
	assert.ErrorIs(t, w.Flush(), attrtable.ErrStaleWriter)
	assert.Zero(t, w.Pending())
	assert.False(t, mustColumn(t, tbl, 0).Stats().Initialized())
}

// TestColumnWriter_ParallelWorkers partitions rows across goroutines, each
// with its own writers, and merges at the barrier.
func TestColumnWriter_ParallelWorkers(t *testing.T) {
	const (
		numRows    = 1000
		numWorkers = 8
	)
	tbl := attrtable.NewOrderedTable[int](attrtable.WithColumns(Col1, Col2))
	for k := 0; k < numRows; k++ {
		_, err := tbl.AddRow(k)
		require.NoError(t, err)
	}

	writers := make([][2]*attrtable.ColumnWriter[int], numWorkers)
	for i := range writers {
		for c := 0; c < 2; c++ {
			w, err := tbl.ColumnWriter(c)
			require.NoError(t, err)
			writers[i][c] = w
		}
	}

	errs := make([]error, numWorkers)
	var wg sync.WaitGroup
	wg.Add(numWorkers)
	for i := 0; i < numWorkers; i++ {
		go func(worker int) {
			defer wg.Done()
			for k := worker; k < numRows; k += numWorkers {
				if err := writers[worker][0].SetValue(k, float32(k)); err != nil {
					errs[worker] = err
					return
				}
				if err := writers[worker][1].SetValue(k, 1); err != nil {
					errs[worker] = err
					return
				}
			}
		}(i)
	}
	wg.Wait()
	for _, err := range errs {
		require.NoError(t, err)
	}

	for _, ws := range writers {
		require.NoError(t, attrtable.FlushAll(ws[0], ws[1]))
	}

	s := mustColumn(t, tbl, 0).Stats()
	assert.Equal(t, 0.0, s.Min)
	assert.Equal(t, float64(numRows-1), s.Max)
	// The first merged write initialises the aggregate; every later write
	// contributes value - (-1) because fresh cells hold the sentinel.
	assert.Equal(t, float64(numRows*(numRows-1)/2+(numRows-1)), s.Total)

	s2 := mustColumn(t, tbl, 1).Stats()
	assert.Equal(t, 1.0, s2.Min)
	assert.Equal(t, 1.0, s2.Max)
	assert.Equal(t, float64(1+2*(numRows-1)), s2.Total)
}
