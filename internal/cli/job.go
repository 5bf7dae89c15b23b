// SPDX-License-Identifier: MIT

package cli

import (
	"github.com/katalvlaran/sala/pixelref"
)

// Job is a fully resolved run: settings after file and flags are merged,
// plus the parsed origin points.
type Job struct {
	Config
	Grid   string
	Output string
	Points []pixelref.PixelRef
}

// NewJob loads the configuration file named by opt, applies the flags over
// it and resolves the origin points.
//
// Errors:
//   - ErrNoGrid if no grid file is given.
//   - ErrPointsConflict if both --point and --points-file are given.
//   - ErrNoPoints if step-depth has no origin.
//   - ErrInvalidPoint, ErrInvalidConfig for malformed input.
func NewJob(opt *Options) (*Job, error) {
	if opt.Grid == "" {
		return nil, ErrNoGrid
	}
	if len(opt.Points) > 0 && opt.PointsFile != "" {
		return nil, ErrPointsConflict
	}
	cfg, err := LoadConfig(opt.Config)
	if err != nil {
		return nil, err
	}
	cfg.Override(opt)
	if err = cfg.Validate(); err != nil {
		return nil, err
	}

	job := &Job{Config: cfg, Grid: opt.Grid, Output: opt.Output}
	switch {
	case opt.PointsFile != "":
		job.Points, err = ReadPointsFile(opt.PointsFile)
	case len(opt.Points) > 0:
		job.Points, err = ParsePoints(opt.Points)
	}
	if err != nil {
		return nil, err
	}
	if job.Analysis == AnalysisStepDepth && len(job.Points) == 0 {
		return nil, ErrNoPoints
	}

	return job, nil
}
