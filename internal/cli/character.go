// SPDX-License-Identifier: MIT

package cli

import (
	"fmt"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/katalvlaran/diagharm/charcache"
	"github.com/katalvlaran/diagharm/combin"
	"github.com/katalvlaran/diagharm/diagring"
	"github.com/katalvlaran/diagharm/field"
	"github.com/katalvlaran/diagharm/grading"
	"github.com/katalvlaran/diagharm/hilbert"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

// NewCharacterCommand builds the "character" subcommand: the GL_r character
// of the harmonic space of one shape, served from the on-disk cache when
// available.
func NewCharacterCommand(opts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "character <shape>",
		Short: "GL_r character of the harmonic space of a shape",
		Long: `Compute the GL_r character of the polarization closure of the harmonic
higher Specht polynomials of a shape: the multidegree-indexed count of
highest-weight vectors. Results are cached on disk per shape.

Example:
  diagharm character 1,1,1
  diagharm character --config diagharm.toml 3,2`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCharacter(opts, args[0], cmd)
		},
	}

	return cmd
}

func runCharacter(opts *RootOptions, shape string, cmd *cobra.Command) error {
	logger := newLogger(opts)

	cfg, err := LoadConfig(opts.Config)
	if err != nil {
		return err
	}
	mu, err := parseShape(shape)
	if err != nil {
		return err
	}

	char, err := computeCharacter(logger, cfg, mu)
	if err != nil {
		return err
	}
	series, err := hilbert.New(char)
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), series)

	return nil
}

// computeCharacter serves one shape through the cache, tagging the run with
// a fresh ID for log correlation. Cache entries are namespaced by the row
// count, since the character depends on it.
func computeCharacter(logger zerolog.Logger, cfg Config, mu combin.Partition) (map[grading.Degree]int, error) {
	rows := cfg.Rows
	if rows == 0 {
		rows = rowsFor(mu)
	}
	store, err := charcache.Open(filepath.Join(cfg.CacheDir, fmt.Sprintf("r%d", rows)))
	if err != nil {
		return nil, err
	}
	runLog := logger.With().Str("run_id", uuid.NewString()).Stringer("shape", mu).Int("rows", rows).Logger()

	return store.GetOrCompute(mu, func() (map[grading.Degree]int, error) {
		runLog.Info().Msg("cache miss, computing character")
		d, err := diagring.New(field.Rationals(), mu.Size(), rows)
		if err != nil {
			return nil, err
		}
		char, err := d.HarmonicCharacter(mu)
		if err != nil {
			return nil, err
		}
		runLog.Info().Int("weights", len(char)).Msg("character computed")

		return char, nil
	})
}
