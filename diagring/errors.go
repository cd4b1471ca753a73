// SPDX-License-Identifier: MIT

package diagring

import "errors"

var (
	// ErrInvalidShape - n and r must both be positive.
	ErrInvalidShape = errors.New("diagring: rows and columns must be positive")
	// ErrZeroPolynomial - the zero polynomial carries no multidegree.
	ErrZeroPolynomial = errors.New("diagring: zero polynomial has no multidegree")
	// ErrNotHomogeneous - the polynomial mixes distinct multidegrees.
	ErrNotHomogeneous = errors.New("diagring: polynomial is not multihomogeneous")
	// ErrShapeSize - the partition must be a shape of n cells.
	ErrShapeSize = errors.New("diagring: partition size does not match column count")
)
