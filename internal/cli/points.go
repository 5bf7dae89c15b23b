// SPDX-License-Identifier: MIT

package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/katalvlaran/sala/pixelref"
)

// ValidPoint reports whether s holds only digits, dots and commas, with an
// optional minus sign at the start of each coordinate.
func ValidPoint(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		switch {
		case r >= '0' && r <= '9', r == '.', r == ',':
		case r == '-' && (i == 0 || s[i-1] == ','):
		default:
			return false
		}
	}

	return true
}

// ParsePoints parses "x,y" origin points given on the command line.
func ParsePoints(args []string) ([]pixelref.PixelRef, error) {
	out := make([]pixelref.PixelRef, 0, len(args))
	for _, s := range args {
		if !ValidPoint(s) {
			return nil, fmt.Errorf("%w: %q should only contain digits dots and commas", ErrInvalidPoint, s)
		}
		p, err := pixelref.Parse(s)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidPoint, err)
		}
		out = append(out, p)
	}

	return out, nil
}

// ReadPoints reads one point per line, coordinates separated by a tab or a
// comma. Blank lines are skipped and a first line starting with a letter
// (such as "x\ty") is taken as a header.
func ReadPoints(r io.Reader) ([]pixelref.PixelRef, error) {
	var out []pixelref.PixelRef
	sc := bufio.NewScanner(r)
	for line := 1; sc.Scan(); line++ {
		text := strings.TrimSpace(sc.Text())
		if text == "" {
			continue
		}
		if len(out) == 0 && isHeader(text) {
			continue
		}
		s := strings.Join(strings.FieldsFunc(text, func(r rune) bool { return r == '\t' || r == ',' }), ",")
		if !ValidPoint(s) {
			return nil, fmt.Errorf("%w: line %d: %q", ErrInvalidPoint, line, text)
		}
		p, err := pixelref.Parse(s)
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: %w", ErrInvalidPoint, line, err)
		}
		out = append(out, p)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}

	return out, nil
}

// ReadPointsFile is ReadPoints over the named file.
func ReadPointsFile(path string) ([]pixelref.PixelRef, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return ReadPoints(f)
}

func isHeader(line string) bool {
	c := line[0]
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}
