// SPDX-License-Identifier: MIT

package specht

import "errors"

var (
	// ErrSizeMismatch - the tableau must have exactly one cell per ring
	// variable.
	ErrSizeMismatch = errors.New("specht: tableau size does not match ring")
	// ErrShapeMismatch - P and Q must be standard tableaux of the same
	// shape.
	ErrShapeMismatch = errors.New("specht: tableaux of different shapes")
	// ErrHarmonicRank - the harmonic annihilator came out with dimension
	// other than one; the candidate span does not match the tableau.
	ErrHarmonicRank = errors.New("specht: harmonic space is not one-dimensional")
)
