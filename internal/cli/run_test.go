// SPDX-License-Identifier: MIT

package cli_test

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/sala/attrtable"
	"github.com/katalvlaran/sala/gridgraph"
	"github.com/katalvlaran/sala/internal/cli"
	"github.com/katalvlaran/sala/pixelref"
)

func runJob(t *testing.T, job *cli.Job) string {
	t.Helper()
	var out, logs bytes.Buffer
	require.NoError(t, cli.Run(context.Background(), job, &out, cli.NewLogger(&logs, "debug")))
	assert.Contains(t, logs.String(), "analysis finished")

	return out.String()
}

func TestRun_StepDepth(t *testing.T) {
	job, err := cli.NewJob(&cli.Options{Grid: writeFile(t, "hook.txt", hookGrid), Points: []string{"0,0"}})
	require.NoError(t, err)

	assert.Equal(t, `x,y,Step Depth
0,0,0
0,1,1
0,2,2
1,0,1
1,2,3
2,1,5
2,2,4
`, runJob(t, job))
}

func TestRun_StepDepthSorted(t *testing.T) {
	job, err := cli.NewJob(&cli.Options{
		Grid:   writeFile(t, "hook.txt", hookGrid),
		Points: []string{"0,0"},
		Sort:   gridgraph.StepDepthColumn,
	})
	require.NoError(t, err)

	assert.Equal(t, `x,y,Step Depth
0,0,0
0,1,1
1,0,1
0,2,2
1,2,3
2,2,4
2,1,5
`, runJob(t, job))
}

func TestRun_ComponentsToFile(t *testing.T) {
	output := filepath.Join(t.TempDir(), "out.csv")
	job, err := cli.NewJob(&cli.Options{
		Grid:     writeFile(t, "islands.txt", ".#.\n"),
		Analysis: cli.AnalysisComponents,
		Output:   output,
	})
	require.NoError(t, err)

	var stdout bytes.Buffer
	require.NoError(t, cli.Run(context.Background(), job, &stdout, cli.NewLogger(io.Discard, "info")))
	assert.Empty(t, stdout.String())

	got, err := os.ReadFile(output)
	require.NoError(t, err)
	assert.Equal(t, "x,y,Component\n0,0,0\n2,0,1\n", string(got))
}

func TestRun_OutputWriteFailure(t *testing.T) {
	if _, err := os.Stat("/dev/full"); err != nil {
		t.Skip("/dev/full not available")
	}
	job, err := cli.NewJob(&cli.Options{
		Grid:     writeFile(t, "islands.txt", ".#.\n"),
		Analysis: cli.AnalysisComponents,
		Output:   "/dev/full",
	})
	require.NoError(t, err)

	err = cli.Run(context.Background(), job, io.Discard, cli.NewLogger(io.Discard, "error"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "/dev/full")
}

func TestRun_MeanDepth(t *testing.T) {
	job, err := cli.NewJob(&cli.Options{
		Grid:     writeFile(t, "line.txt", "...\n"),
		Analysis: cli.AnalysisMeanDepth,
		Workers:  2,
	})
	require.NoError(t, err)

	assert.Equal(t, `x,y,Node Count,Total Depth,Mean Depth
0,0,3,3,1.5
1,0,3,2,1
2,0,3,3,1.5
`, runJob(t, job))
}

func TestRun_Errors(t *testing.T) {
	logger := cli.NewLogger(io.Discard, "error")

	job := &cli.Job{Config: cli.DefaultConfig(), Grid: "/no/such/grid.txt"}
	assert.Error(t, cli.Run(context.Background(), job, io.Discard, logger))

	job = &cli.Job{Config: cli.DefaultConfig(), Grid: writeFile(t, "ragged.txt", "...\n..\n")}
	assert.ErrorIs(t, cli.Run(context.Background(), job, io.Discard, logger), gridgraph.ErrNonRectangular)

	job = &cli.Job{
		Config: cli.DefaultConfig(),
		Grid:   writeFile(t, "hook.txt", hookGrid),
		Points: []pixelref.PixelRef{{X: 1, Y: 1}},
	}
	assert.ErrorIs(t, cli.Run(context.Background(), job, io.Discard, logger), gridgraph.ErrOriginBlocked)

	job.Points = []pixelref.PixelRef{{X: 0, Y: 0}}
	job.Sort = "Nope"
	assert.ErrorIs(t, cli.Run(context.Background(), job, io.Discard, logger), attrtable.ErrNotFound)
}

func TestWriteCSV_HiddenColumnsAndUnset(t *testing.T) {
	tbl := attrtable.NewOrderedTable[pixelref.Key](attrtable.WithColumns("a", "secret", "b"))
	row, err := tbl.AddRow(pixelref.PixelRef{X: 1, Y: 2}.Key())
	require.NoError(t, err)
	require.NoError(t, row.SetValue("a", 0.25))
	require.NoError(t, row.SetValue("secret", 9))
	c, err := tbl.MutableColumn(1)
	require.NoError(t, err)
	c.SetHidden(true)

	var out bytes.Buffer
	require.NoError(t, cli.WriteCSV(&out, tbl, ""))
	assert.Equal(t, "x,y,a,b\n1,2,0.25,\n", out.String())
}

func TestNewLogger_Levels(t *testing.T) {
	var buf bytes.Buffer
	log := cli.NewLogger(&buf, "warn")
	log.Info("hidden")
	log.Warn("shown", "k", 1)

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "level=warn")
	assert.Contains(t, buf.String(), "k=1")
}
