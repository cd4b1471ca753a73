// SPDX-License-Identifier: MIT
// Package field: sentinel error set.

package field

import "errors"

var (
	// ErrNotPrime is returned by Prime when the requested modulus is not a
	// prime number; GF(p) arithmetic is only well defined for prime p.
	ErrNotPrime = errors.New("field: modulus is not prime")

	// ErrModulusTooLarge is returned by Prime when p ≥ 2³¹; products are
	// computed in uint64 and must not overflow.
	ErrModulusTooLarge = errors.New("field: modulus must be < 2^31")
)
