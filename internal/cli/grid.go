// SPDX-License-Identifier: MIT

package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// ReadGrid reads a text grid, one row per line. '.' is an open cell (1),
// '#' a blocked one (0) and a digit is taken as the cell value. Trailing
// blank lines are ignored; a blank line between rows is an error.
func ReadGrid(r io.Reader) ([][]int, error) {
	var (
		grid  [][]int
		blank int
	)
	sc := bufio.NewScanner(r)
	for line := 1; sc.Scan(); line++ {
		text := strings.TrimRight(sc.Text(), " \t\r")
		if text == "" {
			blank = line
			continue
		}
		if blank > 0 && len(grid) > 0 {
			return nil, fmt.Errorf("%w: blank line %d inside the grid", ErrInvalidGrid, blank)
		}
		blank = 0
		row := make([]int, 0, len(text))
		for col, c := range text {
			switch {
			case c == '.':
				row = append(row, 1)
			case c == '#':
				row = append(row, 0)
			case c >= '0' && c <= '9':
				row = append(row, int(c-'0'))
			default:
				return nil, fmt.Errorf("%w: line %d column %d: unexpected %q", ErrInvalidGrid, line, col+1, c)
			}
		}
		grid = append(grid, row)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}

	return grid, nil
}

// ReadGridFile is ReadGrid over the named file.
func ReadGridFile(path string) ([][]int, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return ReadGrid(f)
}
