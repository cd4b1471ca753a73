// SPDX-License-Identifier: MIT

package poly

import (
	"fmt"

	"github.com/katalvlaran/diagharm/field"
	"github.com/katalvlaran/diagharm/vecmat"
)

// Ring satisfies vecmat.Ambient: its polynomials decompose into (monomial,
// coefficient) pairs, with Mono values as stable basis keys.

// BaseField returns the coefficient field.
func (r *Ring) BaseField() field.Field { return r.f }

// Decompose returns the support of v. Polynomials of other rings (or
// foreign types) yield ErrAmbientMismatch.
func (r *Ring) Decompose(v vecmat.Vector) ([]vecmat.Term, error) {
	p, ok := v.(*Poly)
	if !ok || p.ring != r {
		return nil, fmt.Errorf("poly: %w", vecmat.ErrAmbientMismatch)
	}
	terms := make([]vecmat.Term, 0, len(p.coeffs))
	for m, c := range p.coeffs {
		terms = append(terms, vecmat.Term{Key: m, Coeff: c})
	}

	return terms, nil
}

// Combine returns Σ coeffs[i]·vectors[i].
func (r *Ring) Combine(coeffs []field.Element, vectors []vecmat.Vector) vecmat.Vector {
	out := r.Zero()
	for i, c := range coeffs {
		out = out.Add(vectors[i].(*Poly).Scale(c))
	}

	return out
}
