// SPDX-License-Identifier: MIT

package subspace

import "github.com/katalvlaran/diagharm/vecmat"

// Option configures a Subspace at construction time.
type Option func(*Subspace)

// WithStats makes the closure account its work into stats instead of a
// private counter. Useful to aggregate several closures of one computation,
// or to drive external progress reporting; the core itself never logs.
func WithStats(stats *vecmat.Stats) Option {
	return func(s *Subspace) {
		if stats != nil {
			s.stats = stats
		}
	}
}
