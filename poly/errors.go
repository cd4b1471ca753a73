// SPDX-License-Identifier: MIT
// Package poly: sentinel error set.

package poly

import "errors"

var (
	// ErrNoVariables indicates NewRing was called without variable names.
	ErrNoVariables = errors.New("poly: ring needs at least one variable")

	// ErrDuplicateVariable indicates repeated variable names.
	ErrDuplicateVariable = errors.New("poly: duplicate variable name")

	// ErrBadExponent indicates a negative exponent or an exponent vector of
	// the wrong length.
	ErrBadExponent = errors.New("poly: invalid exponent vector")
)
