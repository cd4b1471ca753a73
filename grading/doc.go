// SPDX-License-Identifier: MIT

// Package grading provides integer multidegrees used as bucket keys by the
// subspace-closure engine.
//
// A Degree is a comparable encoding of an integer tuple (an element of ℤʳ),
// so it can serve directly as a Go map key. No global ordering is assumed —
// the engine needs only equality and a combination function. The three
// combination policies of the diagonal-harmonic computations are provided:
//
//   - Sum             — plain componentwise addition
//   - SumPruneNegative — addition, rejecting any negative component
//     (the pruning signal of the closure engine)
//   - SumSymmetric    — addition with pruning, then sorting the components
//     decreasingly (quotient by the row-permutation action)
package grading
