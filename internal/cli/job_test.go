// SPDX-License-Identifier: MIT

package cli_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/sala/internal/cli"
	"github.com/katalvlaran/sala/pixelref"
)

func TestNewJob_Points(t *testing.T) {
	job, err := cli.NewJob(&cli.Options{Grid: "g.txt", Points: []string{"0,0", "2,2"}})
	require.NoError(t, err)
	assert.Equal(t, cli.AnalysisStepDepth, job.Analysis)
	assert.Equal(t, []pixelref.PixelRef{{X: 0, Y: 0}, {X: 2, Y: 2}}, job.Points)

	file := writeFile(t, "points.txt", "x\ty\n1\t1\n")
	job, err = cli.NewJob(&cli.Options{Grid: "g.txt", PointsFile: file})
	require.NoError(t, err)
	assert.Equal(t, []pixelref.PixelRef{{X: 1, Y: 1}}, job.Points)
}

func TestNewJob_ConfigThenFlags(t *testing.T) {
	conf := writeFile(t, "sala.yaml", "analysis: mean-depth\nworkers: 2\nsort: Mean Depth\n")
	job, err := cli.NewJob(&cli.Options{Grid: "g.txt", Config: conf, Workers: 6})
	require.NoError(t, err)

	assert.Equal(t, cli.AnalysisMeanDepth, job.Analysis, "from file")
	assert.Equal(t, 6, job.Workers, "flag wins")
	assert.Equal(t, "Mean Depth", job.Sort)
	assert.Empty(t, job.Points, "mean-depth needs no origin")
}

func TestNewJob_ZeroRadiusFlagOverridesFile(t *testing.T) {
	conf := writeFile(t, "sala.yaml", "analysis: mean-depth\nradius: 3\n")

	job, err := cli.NewJob(&cli.Options{Grid: "g.txt", Config: conf})
	require.NoError(t, err)
	assert.Equal(t, 3, job.Radius, "from file")

	opt, err := cli.Parse([]string{"--grid", "g.txt", "--config", conf, "--radius", "0"})
	require.NoError(t, err)
	job, err = cli.NewJob(opt)
	require.NoError(t, err)
	assert.Equal(t, 0, job.Radius, "flag wins")
}

func TestNewJob_Errors(t *testing.T) {
	tests := []struct {
		name string
		opt  cli.Options
		err  error
	}{
		{"no grid", cli.Options{Points: []string{"0,0"}}, cli.ErrNoGrid},
		{"both point sources", cli.Options{Grid: "g", Points: []string{"0,0"}, PointsFile: "p"}, cli.ErrPointsConflict},
		{"no origin", cli.Options{Grid: "g"}, cli.ErrNoPoints},
		{"bad point", cli.Options{Grid: "g", Points: []string{"a,b"}}, cli.ErrInvalidPoint},
		{"bad workers", cli.Options{Grid: "g", Analysis: "mean-depth", Workers: -1}, cli.ErrInvalidConfig},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := cli.NewJob(&tc.opt)
			assert.ErrorIs(t, err, tc.err)
		})
	}
}
