// SPDX-License-Identifier: MIT

package cli

import (
	"github.com/jessevdk/go-flags"
)

// Options defines command line options. Zero values mean "not given" and
// fall back to the configuration file or its defaults. Radius is a pointer
// because 0 is a meaningful value; nil means the flag was not given.
type Options struct {
	Grid       string   `short:"g" long:"grid" description:"grid file ('.' open, '#' blocked, digits are cell values)"`
	Points     []string `short:"p" long:"point" description:"origin point x,y (repeatable)"`
	PointsFile string   `short:"f" long:"points-file" description:"file with one origin point per line"`
	Analysis   string   `short:"a" long:"analysis" description:"analysis to run" choice:"step-depth" choice:"mean-depth" choice:"components"`
	Workers    int      `short:"w" long:"workers" description:"mean-depth worker goroutines"`
	Radius     *int     `short:"r" long:"radius" description:"stop walks at this step depth (0 = no limit)"`
	Conn       string   `long:"conn" description:"cell connectivity" choice:"4" choice:"8"`
	Sort       string   `short:"s" long:"sort" description:"sort output rows by this column"`
	Output     string   `short:"o" long:"output" description:"write CSV here instead of stdout"`
	Config     string   `short:"c" long:"config" description:"YAML configuration file"`
	LogLevel   string   `short:"l" long:"log-level" description:"log level" choice:"debug" choice:"info" choice:"warn" choice:"error"`
}

// Parse returns parsed command-line flags in an Options struct.
// Positional arguments are not accepted.
func Parse(args []string) (*Options, error) {
	opt := &Options{}
	parser := flags.NewParser(opt, flags.Default)
	parser.Name = "sala"
	parser.Usage = "--grid FILE [OPTIONS]"

	rest, err := parser.ParseArgs(args)
	if err != nil {
		return nil, err
	}
	if len(rest) > 0 {
		return nil, &flags.Error{Type: flags.ErrUnknown, Message: "unexpected argument " + rest[0]}
	}

	return opt, nil
}

// IsHelp reports whether err is the result of a --help request.
func IsHelp(err error) bool {
	return flags.WroteHelp(err)
}
