// SPDX-License-Identifier: MIT

// Package ranker provides an append-only indexer from arbitrary comparable
// basis keys to integer column positions.
//
// A Ranker assigns 0, 1, 2, ... to distinct keys in the order they are
// first seen, and never reassigns or compacts: once a key has a rank, that
// rank is stable for the lifetime of the Ranker. This is the coordinate
// backbone of the growable vector matrices in vecmat — the current Len()
// of the ranker is the upper bound on matrix width.
//
// Determinism: the rank of a key depends only on the sequence of distinct
// keys presented, so replaying the same vector stream yields the same
// coordinates.
package ranker
