// SPDX-License-Identifier: MIT

package gridgraph

// walker runs breadth-first walks over the open cells of a grid. Its buffers
// are reused between walks; a walker must not be shared between goroutines.
type walker struct {
	gg    *GridGraph
	depth []int32 // -1 = not reached in the current walk
	queue []int
}

func (gg *GridGraph) newWalker() *walker {
	depth := make([]int32, gg.Width*gg.Height)
	for i := range depth {
		depth[i] = -1
	}

	return &walker{gg: gg, depth: depth}
}

// walk visits every open cell reachable from sources, in BFS order, calling
// visit with the cell index and its step depth. Sources must be open.
// With radius > 0 cells deeper than radius are not visited.
func (w *walker) walk(sources []int, radius int, visit func(idx, depth int)) {
	gg := w.gg
	w.queue = w.queue[:0]
	for _, s := range sources {
		if w.depth[s] < 0 {
			w.depth[s] = 0
			w.queue = append(w.queue, s)
		}
	}
	for qi := 0; qi < len(w.queue); qi++ {
		u := w.queue[qi]
		d := int(w.depth[u])
		visit(u, d)
		if radius > 0 && d >= radius {
			continue
		}
		ux, uy := gg.Coordinate(u)
		for _, off := range gg.neighborOffsets {
			vx, vy := ux+off[0], uy+off[1]
			if !gg.IsOpen(vx, vy) {
				continue
			}
			v := gg.index(vx, vy)
			if w.depth[v] >= 0 {
				continue
			}
			w.depth[v] = int32(d + 1)
			w.queue = append(w.queue, v)
		}
	}
	for _, u := range w.queue {
		w.depth[u] = -1
	}
}
