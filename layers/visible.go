// SPDX-License-Identifier: MIT

package layers

import "github.com/katalvlaran/sala/attrtable"

// RecomputeVisibleStats rebuilds the visible aggregate triple of every
// column of t from the rows that m considers visible. layerOf returns the
// membership key of a row; rows mapped to 0 belong to layer 0 only. Unset
// (Sentinel) cells are skipped. The main triple is not touched.
//
// It returns the number of visible rows.
// Complexity: O(R·C).
func RecomputeVisibleStats[K any](t *attrtable.Table[K], m *Manager, layerOf func(K) Key) int {
	cols := t.Columns()
	for _, c := range cols {
		c.ResetVisibleStats()
	}
	visible := 0
	for key, row := range t.ReadAll() {
		layer := Key(1)
		if layerOf != nil {
			layer |= layerOf(key)
		}
		if !m.IsVisible(layer) {
			continue
		}
		visible++
		for i, c := range cols {
			v, err := row.ValueAt(i)
			if err != nil || v == attrtable.Sentinel {
				continue
			}
			c.UpdateVisibleStats(v, 0)
		}
	}

	return visible
}
