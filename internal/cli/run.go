// SPDX-License-Identifier: MIT
//
// File: run.go
// Role: Runs one analysis and prints the resulting attribute table.

package cli

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/katalvlaran/sala/attrtable"
	"github.com/katalvlaran/sala/attrview"
	"github.com/katalvlaran/sala/gridgraph"
	"github.com/katalvlaran/sala/pixelref"
)

// Run executes job and writes the table as CSV to job.Output, or to stdout
// when no output file is set.
func Run(ctx context.Context, job *Job, stdout io.Writer, log *slog.Logger) error {
	values, err := ReadGridFile(job.Grid)
	if err != nil {
		return err
	}
	gg, err := gridgraph.NewGridGraph(values, job.GridOptions())
	if err != nil {
		return fmt.Errorf("%s: %w", job.Grid, err)
	}
	log.Debug("grid loaded", "file", job.Grid, "width", gg.Width, "height", gg.Height, "conn", gg.Conn.String())

	tbl := attrtable.NewOrderedTable[pixelref.Key]()
	start := time.Now()
	if err = analyse(ctx, gg, tbl, job, log); err != nil {
		return err
	}
	log.Info("analysis finished",
		"analysis", job.Analysis,
		"rows", tbl.NumRows(),
		"elapsed", time.Since(start).Round(time.Millisecond))
	for _, c := range tbl.Columns() {
		s := c.Stats()
		log.Debug("column", "name", c.Name(), "min", s.Min, "max", s.Max, "total", s.Total)
	}

	if job.Output == "" {
		return WriteCSV(stdout, tbl, job.Sort)
	}
	f, err := os.Create(job.Output)
	if err != nil {
		return err
	}
	if err = WriteCSV(f, tbl, job.Sort); err != nil {
		_ = f.Close()
		return fmt.Errorf("%s: %w", job.Output, err)
	}
	if err = f.Close(); err != nil {
		return fmt.Errorf("%s: %w", job.Output, err)
	}

	return nil
}

func analyse(ctx context.Context, gg *gridgraph.GridGraph, tbl *attrtable.Table[pixelref.Key], job *Job, log *slog.Logger) error {
	opts := []gridgraph.Option{
		gridgraph.WithContext(ctx),
		gridgraph.WithWorkers(job.Workers),
		gridgraph.WithRadius(job.Radius),
	}
	switch job.Analysis {
	case AnalysisStepDepth:
		log.Info("running step depth", "origins", len(job.Points), "radius", job.Radius)
		return gg.StepDepth(tbl, job.Points, opts...)
	case AnalysisMeanDepth:
		log.Info("running mean depth", "workers", job.Workers, "radius", job.Radius)
		return gg.MeanDepth(tbl, opts...)
	case AnalysisComponents:
		n, err := gg.Components(tbl)
		if err == nil {
			log.Info("components found", "count", n)
		}
		return err
	}

	return fmt.Errorf("%w: unknown analysis %q", ErrInvalidConfig, job.Analysis)
}

// WriteCSV writes a header (x, y and the visible column names) and one line
// per row. With sortColumn set, rows are ordered by that column's value
// (ties by key); otherwise by key. Unset cells are written empty.
//
// Errors: attrtable.ErrNotFound if sortColumn names no column.
func WriteCSV(w io.Writer, tbl *attrtable.Table[pixelref.Key], sortColumn string) error {
	var cols []int
	header := []string{"x", "y"}
	for i, c := range tbl.Columns() {
		if c.IsHidden() {
			continue
		}
		cols = append(cols, i)
		header = append(header, c.Name())
	}

	cw := csv.NewWriter(w)
	if err := cw.Write(header); err != nil {
		return err
	}
	record := make([]string, len(header))
	write := func(key pixelref.Key, row attrtable.RowView[pixelref.Key]) error {
		p := key.PixelRef()
		record[0] = strconv.Itoa(int(p.X))
		record[1] = strconv.Itoa(int(p.Y))
		for j, i := range cols {
			v, err := row.ValueAt(i)
			if err != nil {
				return err
			}
			record[j+2] = formatCell(v)
		}
		return cw.Write(record)
	}

	if sortColumn == "" {
		for key, row := range tbl.ReadAll() {
			if err := write(key, row); err != nil {
				return err
			}
		}
	} else {
		index, err := tbl.ColumnIndex(sortColumn)
		if err != nil {
			return err
		}
		view := attrview.NewView(tbl)
		if err = view.SetDisplayColumn(index); err != nil {
			return err
		}
		for _, item := range view.Index() {
			if err = write(item.Key, item.Row); err != nil {
				return err
			}
		}
	}
	cw.Flush()

	return cw.Error()
}

func formatCell(v float32) string {
	if v == attrtable.Sentinel {
		return ""
	}

	return strconv.FormatFloat(float64(v), 'g', -1, 32)
}
