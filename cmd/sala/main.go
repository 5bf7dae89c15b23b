// SPDX-License-Identifier: MIT

// Command sala runs a grid analysis and prints the resulting attribute
// table as CSV.
//
//	sala --grid map.txt -p 3,4
//	sala --grid map.txt --analysis mean-depth --workers 8 --sort "Mean Depth"
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/katalvlaran/sala/internal/cli"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	opt, err := cli.Parse(args)
	if err != nil {
		if cli.IsHelp(err) {
			return 0
		}
		return 2
	}
	job, err := cli.NewJob(opt)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 2
	}
	log := cli.NewLogger(os.Stderr, job.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err = cli.Run(ctx, job, os.Stdout, log); err != nil {
		log.Error("run failed", "err", err)
		return 1
	}

	return 0
}
