// SPDX-License-Identifier: MIT

// Package poly: polynomials as differential operators. This is the pairing
// ⟨p, q⟩ = p(∂)(q) obtained by substituting each variable of p with the
// corresponding partial derivative, extended bilinearly over terms.

package poly

import "github.com/katalvlaran/diagharm/field"

// derivativeOnBasis differentiates the monomial X^f by the operator X^e(∂).
// Returns the resulting exponent vector and the integer coefficient
// Π fᵢ!/(fᵢ−eᵢ)!, or ok=false when any exponent would go negative.
func (r *Ring) derivativeOnBasis(e, f []int) ([]int, field.Element, bool) {
	g := make([]int, len(f))
	coeff := r.f.One()
	for i := range f {
		g[i] = f[i] - e[i]
		if g[i] < 0 {
			return nil, nil, false
		}
		// Falling factorial fᵢ·(fᵢ−1)···(gᵢ+1).
		for k := f[i]; k > g[i]; k-- {
			coeff = coeff.Mul(r.f.FromInt(int64(k)))
		}
	}

	return g, coeff, true
}

// DiffAction returns p(∂)(q): p applied to q as a differential operator.
// Both polynomials must live in the same ring.
// Complexity: O(|p|·|q|) basis pairings.
func DiffAction(p, q *Poly) *Poly {
	p.sameRing(q)
	out := p.ring.Zero()
	for mp, cp := range p.coeffs {
		ep := mp.Exponents()
		for mq, cq := range q.coeffs {
			g, c, ok := p.ring.derivativeOnBasis(ep, mq.Exponents())
			if !ok {
				continue
			}
			out.setTerm(monoKey(g), cp.Mul(cq).Mul(c))
		}
	}

	return out
}
