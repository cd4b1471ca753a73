// SPDX-License-Identifier: MIT
// Package vecmat: sentinel error set.
//
// Every message is prefixed with "vecmat: ..." for consistency and easy
// grepping. Callers match with errors.Is; context may be added at the outer
// boundary via fmt.Errorf("ctx: %w", ErrX).

package vecmat

import "errors"

var (
	// ErrAmbientMismatch indicates a vector that does not belong to the
	// declared ambient space. Raised at decomposition time; fails the
	// enclosing AddVector/Extend call and is never retried.
	ErrAmbientMismatch = errors.New("vecmat: vector not in ambient space")

	// ErrNotEchelon indicates Extend was invoked while the store's matrix is
	// not in echelon form. This is a programmer/internal error: the only way
	// to reach it is to corrupt the store (e.g. by calling AddVector on the
	// embedded row store of an Echelon).
	ErrNotEchelon = errors.New("vecmat: matrix not in echelon form")

	// ErrDimensionMismatch indicates incompatible shapes (Augment with
	// different row counts, Combine with unequal slice lengths, ...).
	ErrDimensionMismatch = errors.New("vecmat: dimension mismatch")

	// ErrOutOfRange indicates a row or column index outside valid bounds.
	ErrOutOfRange = errors.New("vecmat: index out of range")
)
