// SPDX-License-Identifier: MIT

package cli

import (
	"fmt"
	"os"
	"runtime"

	"gopkg.in/yaml.v2"

	"github.com/katalvlaran/sala/gridgraph"
)

// Analysis names.
const (
	AnalysisStepDepth  = "step-depth"
	AnalysisMeanDepth  = "mean-depth"
	AnalysisComponents = "components"
)

// Config holds the run settings that may come from a YAML file.
type Config struct {
	Analysis      string `yaml:"analysis"`
	Workers       int    `yaml:"workers"`
	Radius        int    `yaml:"radius"`
	Connectivity  int    `yaml:"connectivity"`
	OpenThreshold int    `yaml:"open_threshold"`
	Sort          string `yaml:"sort"`
	LogLevel      string `yaml:"log_level"`
}

// DefaultConfig returns the settings used when neither a file nor a flag
// says otherwise.
func DefaultConfig() Config {
	return Config{
		Analysis:      AnalysisStepDepth,
		Workers:       runtime.GOMAXPROCS(0),
		Connectivity:  4,
		OpenThreshold: 1,
		LogLevel:      "info",
	}
}

// LoadConfig reads a YAML file over DefaultConfig. Keys missing from the
// file keep their defaults. An empty path returns the defaults.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}
	bs, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err = yaml.UnmarshalStrict(bs, &cfg); err != nil {
		return cfg, fmt.Errorf("%w: %s: %v", ErrInvalidConfig, path, err)
	}

	return cfg, cfg.Validate()
}

// Override replaces settings with the flags that were given.
func (c *Config) Override(opt *Options) {
	if opt.Analysis != "" {
		c.Analysis = opt.Analysis
	}
	if opt.Workers != 0 {
		c.Workers = opt.Workers
	}
	if opt.Radius != nil {
		c.Radius = *opt.Radius
	}
	switch opt.Conn {
	case "4":
		c.Connectivity = 4
	case "8":
		c.Connectivity = 8
	}
	if opt.Sort != "" {
		c.Sort = opt.Sort
	}
	if opt.LogLevel != "" {
		c.LogLevel = opt.LogLevel
	}
}

// Validate checks value ranges and names.
func (c *Config) Validate() error {
	switch c.Analysis {
	case AnalysisStepDepth, AnalysisMeanDepth, AnalysisComponents:
	default:
		return fmt.Errorf("%w: unknown analysis %q", ErrInvalidConfig, c.Analysis)
	}
	if c.Workers < 1 {
		return fmt.Errorf("%w: workers must be positive (%d)", ErrInvalidConfig, c.Workers)
	}
	if c.Radius < 0 {
		return fmt.Errorf("%w: radius cannot be negative (%d)", ErrInvalidConfig, c.Radius)
	}
	if c.Connectivity != 4 && c.Connectivity != 8 {
		return fmt.Errorf("%w: connectivity must be 4 or 8 (%d)", ErrInvalidConfig, c.Connectivity)
	}
	if _, ok := parseLevel(c.LogLevel); !ok {
		return fmt.Errorf("%w: unknown log level %q", ErrInvalidConfig, c.LogLevel)
	}

	return nil
}

// GridOptions returns the grid settings.
func (c *Config) GridOptions() gridgraph.GridOptions {
	opts := gridgraph.GridOptions{OpenThreshold: c.OpenThreshold, Conn: gridgraph.Conn4}
	if c.Connectivity == 8 {
		opts.Conn = gridgraph.Conn8
	}

	return opts
}
