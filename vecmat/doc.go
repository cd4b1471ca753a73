// SPDX-License-Identifier: MIT

// Package vecmat provides the exact incremental linear algebra underlying
// the subspace-closure engine:
//
//   - Dense    — a growable row-major matrix over an exact field
//   - Matrix   — a row store decomposing ambient vectors into coordinate
//     rows through an append-only ranker ("matrix of vectors")
//   - Echelon  — a Matrix specialization maintaining reduced row-echelon
//     form, supporting incremental linear-independence testing
//   - AnnihilatorBasis — the left kernel of a stacked action-image matrix,
//     reconstructed as ambient-space combinations
//
// Ambient spaces are external collaborators: vecmat only requires a base
// field and a decomposition capability (vector → (key, coefficient) pairs).
// Vectors are never mutated, and coordinates are discovered lazily — the
// matrix widens with zero columns whenever a vector ranks fresh basis keys.
//
// Arithmetic policy: all tests are exact zero/nonzero decisions over the
// ambient's base field. Floating point is deliberately unsupported; the
// correctness of every dimension count downstream depends on exactness.
package vecmat
