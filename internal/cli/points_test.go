// SPDX-License-Identifier: MIT

package cli_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/sala/internal/cli"
	"github.com/katalvlaran/sala/pixelref"
)

func TestValidPoint(t *testing.T) {
	for s, want := range map[string]bool{
		"1,2":     true,
		"1.5,2.0": true,
		"-1,-2":   true,
		"":        false,
		"1;2":     false,
		"1,2a":    false,
		"1-,2":    false,
		"1 ,2":    false,
		"--1,2":   false,
	} {
		assert.Equal(t, want, cli.ValidPoint(s), "%q", s)
	}
}

func TestParsePoints(t *testing.T) {
	got, err := cli.ParsePoints([]string{"1,2", "3.7,4"})
	require.NoError(t, err)
	assert.Equal(t, []pixelref.PixelRef{{X: 1, Y: 2}, {X: 3, Y: 4}}, got)

	_, err = cli.ParsePoints([]string{"1,2", "1;2"})
	assert.ErrorIs(t, err, cli.ErrInvalidPoint)
	_, err = cli.ParsePoints([]string{"1,2,3"})
	assert.ErrorIs(t, err, cli.ErrInvalidPoint)
	_, err = cli.ParsePoints([]string{"40000,1"})
	assert.ErrorIs(t, err, pixelref.ErrOutOfRange)
}

func TestReadPoints(t *testing.T) {
	in := "x\ty\n1\t2\n\n3,4\n  5\t6  \n"
	got, err := cli.ReadPoints(strings.NewReader(in))
	require.NoError(t, err)
	assert.Equal(t, []pixelref.PixelRef{{X: 1, Y: 2}, {X: 3, Y: 4}, {X: 5, Y: 6}}, got)

	got, err = cli.ReadPoints(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, got)

	_, err = cli.ReadPoints(strings.NewReader("1,2\nx,y\n"))
	assert.ErrorIs(t, err, cli.ErrInvalidPoint, "a header is only allowed first")
	assert.Contains(t, err.Error(), "line 2")
}
