// SPDX-License-Identifier: MIT
// Package subspace: sentinel error set.

package subspace

import "errors"

var (
	// ErrNilAddDegrees indicates New was called without a degree-combination
	// function; graded closures cannot target operator images without one.
	ErrNilAddDegrees = errors.New("subspace: nil add-degrees function")

	// ErrNilAmbient indicates New was called without an ambient space.
	ErrNilAmbient = errors.New("subspace: nil ambient")

	// ErrGraded is returned by Matrix on a closure with more than one degree
	// bucket; the raw matrix view exists only in the ungraded case.
	ErrGraded = errors.New("subspace: matrix view requires a single bucket")
)
