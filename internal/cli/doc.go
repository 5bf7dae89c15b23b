// SPDX-License-Identifier: MIT

// Package cli implements the sala command: flag parsing, the optional YAML
// configuration file, input readers for grids and origin points, logging
// setup and the analysis run that prints the attribute table as CSV.
package cli
