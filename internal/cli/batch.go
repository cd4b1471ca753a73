// SPDX-License-Identifier: MIT

package cli

import (
	"fmt"
	"strconv"
	"sync"

	"github.com/katalvlaran/diagharm/combin"
	"github.com/katalvlaran/diagharm/grading"
	"github.com/katalvlaran/diagharm/hilbert"
	"github.com/spf13/cobra"
)

// NewBatchCommand builds the "batch" subcommand: the characters of every
// shape of n, computed concurrently.
func NewBatchCommand(opts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "batch <n>",
		Short: "Characters of all shapes of n",
		Long: `Compute the GL_r characters of the harmonic spaces of every partition
of n. Shapes run concurrently, one closure instance per goroutine, capped
by the configured worker count; finished shapes land in the cache.

Example:
  diagharm batch 4
  diagharm batch --config diagharm.toml 5`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := strconv.Atoi(args[0])
			if err != nil || n < 1 {
				return fmt.Errorf("batch size %q: want a positive integer", args[0])
			}

			return runBatch(opts, n, cmd)
		},
	}

	return cmd
}

// batchResult pairs one shape with its character or failure.
type batchResult struct {
	mu   combin.Partition
	char map[grading.Degree]int
	err  error
}

func runBatch(opts *RootOptions, n int, cmd *cobra.Command) error {
	logger := newLogger(opts)

	cfg, err := LoadConfig(opts.Config)
	if err != nil {
		return err
	}

	shapes := combin.Partitions(n)
	logger.Info().Int("n", n).Int("shapes", len(shapes)).Int("workers", cfg.Workers).Msg("starting batch")

	// One goroutine per shape; the semaphore caps concurrency. Closure
	// instances are never shared across goroutines.
	results := make([]batchResult, len(shapes))
	sem := make(chan struct{}, cfg.Workers)
	var wg sync.WaitGroup
	for i, mu := range shapes {
		wg.Add(1)
		go func(i int, mu combin.Partition) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()

			char, err := computeCharacter(logger, cfg, mu)
			results[i] = batchResult{mu: mu, char: char, err: err}
		}(i, mu)
	}
	wg.Wait()

	var firstErr error
	for _, res := range results {
		if res.err != nil {
			logger.Error().Stringer("shape", res.mu).Err(res.err).Msg("shape failed")
			if firstErr == nil {
				firstErr = res.err
			}

			continue
		}
		series, err := hilbert.New(res.char)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", res.mu, series)
	}

	return firstErr
}
