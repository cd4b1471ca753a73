// SPDX-License-Identifier: MIT

package cli

import (
	"fmt"

	"github.com/katalvlaran/diagharm/diagring"
	"github.com/katalvlaran/diagharm/field"
	"github.com/katalvlaran/diagharm/hilbert"
	"github.com/spf13/cobra"
)

// NewHilbertCommand builds the "hilbert" subcommand: the multigraded
// Hilbert series of the harmonic space of one shape.
func NewHilbertCommand(opts *RootOptions) *cobra.Command {
	var rows int

	cmd := &cobra.Command{
		Use:   "hilbert <shape>",
		Short: "Hilbert series of the harmonic space of a shape",
		Long: `Compute the multigraded Hilbert series of the polarization closure of
the harmonic higher Specht polynomials of a shape.

Example:
  diagharm hilbert 1,1,1
  diagharm hilbert --rows 2 2,1`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runHilbert(opts, args[0], rows, cmd)
		},
	}

	cmd.Flags().IntVar(&rows, "rows", 0, "number of variable rows (0 = automatic)")

	return cmd
}

func runHilbert(opts *RootOptions, shape string, rows int, cmd *cobra.Command) error {
	logger := newLogger(opts)

	mu, err := parseShape(shape)
	if err != nil {
		return err
	}
	if rows == 0 {
		rows = rowsFor(mu)
	}
	logger.Debug().Stringer("shape", mu).Int("rows", rows).Msg("building diagonal ring")

	d, err := diagring.New(field.Rationals(), mu.Size(), rows)
	if err != nil {
		return err
	}
	S, err := d.HarmonicSpaceByShape(mu)
	if err != nil {
		return err
	}
	dims, err := S.Dimensions()
	if err != nil {
		return err
	}
	series, err := hilbert.FromDimensions(dims)
	if err != nil {
		return err
	}
	logger.Info().Stringer("shape", mu).Int("dimension", series.Total()).Msg("harmonic space computed")

	fmt.Fprintln(cmd.OutOrStdout(), series)

	return nil
}
