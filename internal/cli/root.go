// SPDX-License-Identifier: MIT

// Package cli wires the diagharm command tree: harmonic Hilbert series,
// single characters, and cached batch runs over all shapes of n.
package cli

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/katalvlaran/diagharm/combin"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

// RootOptions holds the global flags shared by all subcommands.
type RootOptions struct {
	Verbose bool
	Config  string
}

// NewRootCommand assembles the diagharm CLI.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:           "diagharm",
		Short:         "Diagonally harmonic polynomial spaces and characters",
		Long:          "Compute graded dimensions and GL_r characters of spaces of diagonally harmonic polynomials, one symmetric-group shape at a time.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output")
	cmd.PersistentFlags().StringVar(&opts.Config, "config", "", "path to TOML config")

	cmd.AddCommand(NewHilbertCommand(opts))
	cmd.AddCommand(NewCharacterCommand(opts))
	cmd.AddCommand(NewBatchCommand(opts))

	return cmd
}

// newLogger builds the console logger; --verbose lowers the level to debug.
func newLogger(opts *RootOptions) zerolog.Logger {
	level := zerolog.InfoLevel
	if opts.Verbose {
		level = zerolog.DebugLevel
	}
	output := zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.RFC3339,
	}

	return zerolog.New(output).With().Timestamp().Str("app", "diagharm").Logger().Level(level)
}

// parseShape reads a comma-separated partition argument, e.g. "3,2,1".
func parseShape(arg string) (combin.Partition, error) {
	elems := strings.Split(arg, ",")
	parts := make([]int, 0, len(elems))
	for _, e := range elems {
		p, err := strconv.Atoi(strings.TrimSpace(e))
		if err != nil {
			return nil, fmt.Errorf("shape %q: %w", arg, err)
		}
		parts = append(parts, p)
	}

	return combin.ParsePartition(parts...)
}

// rowsFor picks the number of variable rows for a shape when the config
// leaves it automatic: n−1 rows for a single-column shape, n−2 otherwise
// (more rows provably add no new harmonics), never fewer than one.
func rowsFor(mu combin.Partition) int {
	n := mu.Size()
	r := n - 2
	if mu.Len() == n {
		r = n - 1
	}
	if r < 1 {
		r = 1
	}

	return r
}
