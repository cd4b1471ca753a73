// SPDX-License-Identifier: MIT

// Package vecmat: collaborator capabilities consumed by the row stores.
// Ambient spaces (polynomial rings, free modules, group algebras, ...) are
// resolved once at construction time — no per-call type probing.

package vecmat

import (
	"github.com/katalvlaran/diagharm/field"
	"github.com/katalvlaran/diagharm/ranker"
)

// Vector is an opaque element of some ambient space. The core never
// inspects vectors directly; it only passes them to the ambient's
// capabilities and to user-supplied operators.
type Vector any

// Term is one (basis key, coefficient) pair of a decomposed vector.
type Term struct {
	Key   ranker.Key
	Coeff field.Element
}

// Ambient is the capability interface an ambient vector space must provide.
//
// Decompose must be stable: equal vectors decompose into the same key set,
// and keys identify basis elements for the lifetime of the space. Spaces
// whose elements live in a quotient structure are expected to lift them to
// a distinguished representative before decomposing.
type Ambient interface {
	// BaseField returns the exact field all coefficients live in.
	BaseField() field.Field

	// Decompose returns the support of v as (key, coefficient) pairs, in any
	// order, omitting zero coefficients. Returns ErrAmbientMismatch when v
	// does not belong to the space.
	Decompose(v Vector) ([]Term, error)

	// Combine returns the linear combination Σ coeffs[i]·vectors[i].
	// Implementations may assume len(coeffs) == len(vectors) > 0.
	Combine(coeffs []field.Element, vectors []Vector) Vector
}

// Stats counts the work performed by the stores sharing it. One Stats value
// is owned by one computation instance (e.g. a subspace closure); it is
// plain data, not synchronized.
type Stats struct {
	AddVector int // rows appended to plain row stores
	Extend    int // extension attempts on echelon stores
	Dimension int // accepted (independent) vectors across all stores
}
