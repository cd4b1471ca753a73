// SPDX-License-Identifier: MIT

package poly

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/diagharm/field"
)

// Ring is a multivariate polynomial ring K[x₀,...,x_{n−1}] over an exact
// field. Two Rings are distinct ambient spaces even with identical shape:
// polynomials remember their owner.
type Ring struct {
	f     field.Field
	names []string
}

// NewRing constructs K[names...]. At least one, pairwise distinct, name is
// required.
func NewRing(f field.Field, names ...string) (*Ring, error) {
	if len(names) == 0 {
		return nil, ErrNoVariables
	}
	seen := make(map[string]bool, len(names))
	for _, n := range names {
		if seen[n] {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateVariable, n)
		}
		seen[n] = true
	}
	owned := make([]string, len(names))
	copy(owned, names)

	return &Ring{f: f, names: owned}, nil
}

// NumVars returns the number of variables.
func (r *Ring) NumVars() int { return len(r.names) }

// VarName returns the name of variable i.
func (r *Ring) VarName(i int) string { return r.names[i] }

// String names the ring, e.g. "QQ[x,y,z]".
func (r *Ring) String() string {
	return r.f.String() + "[" + strings.Join(r.names, ",") + "]"
}

// Poly is an immutable sparse polynomial: monomial → nonzero coefficient.
type Poly struct {
	ring   *Ring
	coeffs map[Mono]field.Element
}

// Zero returns the zero polynomial.
func (r *Ring) Zero() *Poly {
	return &Poly{ring: r, coeffs: map[Mono]field.Element{}}
}

// One returns the constant one.
func (r *Ring) One() *Poly { return r.Constant(r.f.One()) }

// Constant embeds a field element.
func (r *Ring) Constant(c field.Element) *Poly {
	p := r.Zero()
	if !c.IsZero() {
		p.coeffs[monoKey(make([]int, len(r.names)))] = c
	}

	return p
}

// Gen returns the i-th variable as a polynomial.
func (r *Ring) Gen(i int) *Poly {
	exps := make([]int, len(r.names))
	exps[i] = 1
	p, _ := r.Monomial(exps, r.f.One())

	return p
}

// Gens returns all variables in order.
func (r *Ring) Gens() []*Poly {
	gens := make([]*Poly, len(r.names))
	for i := range gens {
		gens[i] = r.Gen(i)
	}

	return gens
}

// Monomial returns c·x^exps. The exponent vector must have one nonnegative
// entry per variable.
func (r *Ring) Monomial(exps []int, c field.Element) (*Poly, error) {
	if len(exps) != len(r.names) {
		return nil, fmt.Errorf("%w: got %d exponents for %d variables", ErrBadExponent, len(exps), len(r.names))
	}
	for _, e := range exps {
		if e < 0 {
			return nil, fmt.Errorf("%w: negative exponent", ErrBadExponent)
		}
	}
	p := r.Zero()
	if !c.IsZero() {
		p.coeffs[monoKey(exps)] = c
	}

	return p, nil
}

// Ring returns the owning ring.
func (p *Poly) Ring() *Ring { return p.ring }

// sameRing guards binary operations; mixing rings is a programmer error.
func (p *Poly) sameRing(q *Poly) {
	if p.ring != q.ring {
		panic("poly: mixed rings")
	}
}

// setTerm accumulates c onto the monomial m, dropping the entry when the
// sum collapses to zero. Mutates p; only used on freshly built values.
func (p *Poly) setTerm(m Mono, c field.Element) {
	if old, ok := p.coeffs[m]; ok {
		c = old.Add(c)
	}
	if c.IsZero() {
		delete(p.coeffs, m)
	} else {
		p.coeffs[m] = c
	}
}

// IsZero reports whether p has no terms.
func (p *Poly) IsZero() bool { return len(p.coeffs) == 0 }

// Coeff returns the coefficient of the monomial with exponent vector exps.
func (p *Poly) Coeff(exps []int) field.Element {
	if c, ok := p.coeffs[monoKey(exps)]; ok {
		return c
	}

	return p.ring.f.Zero()
}

// NumTerms returns the size of the support.
func (p *Poly) NumTerms() int { return len(p.coeffs) }

// Add returns p + q.
func (p *Poly) Add(q *Poly) *Poly {
	p.sameRing(q)
	out := p.ring.Zero()
	for m, c := range p.coeffs {
		out.coeffs[m] = c
	}
	for m, c := range q.coeffs {
		out.setTerm(m, c)
	}

	return out
}

// Sub returns p − q.
func (p *Poly) Sub(q *Poly) *Poly { return p.Add(q.Neg()) }

// Neg returns −p.
func (p *Poly) Neg() *Poly {
	out := p.ring.Zero()
	for m, c := range p.coeffs {
		out.coeffs[m] = c.Neg()
	}

	return out
}

// Scale returns c·p.
func (p *Poly) Scale(c field.Element) *Poly {
	out := p.ring.Zero()
	if c.IsZero() {
		return out
	}
	for m, v := range p.coeffs {
		out.coeffs[m] = v.Mul(c)
	}

	return out
}

// Mul returns p·q. Complexity: O(|p|·|q|) term products.
func (p *Poly) Mul(q *Poly) *Poly {
	p.sameRing(q)
	out := p.ring.Zero()
	for m1, c1 := range p.coeffs {
		e1 := m1.Exponents()
		for m2, c2 := range q.coeffs {
			e2 := m2.Exponents()
			sum := make([]int, len(e1))
			for i := range sum {
				sum[i] = e1[i] + e2[i]
			}
			out.setTerm(monoKey(sum), c1.Mul(c2))
		}
	}

	return out
}

// Pow returns pᵏ by repeated multiplication; k must be nonnegative.
func (p *Poly) Pow(k int) *Poly {
	if k < 0 {
		panic("poly: negative power")
	}
	out := p.ring.One()
	for i := 0; i < k; i++ {
		out = out.Mul(p)
	}

	return out
}

// Equal reports exact equality of two polynomials of the same ring.
func (p *Poly) Equal(q *Poly) bool {
	p.sameRing(q)
	if len(p.coeffs) != len(q.coeffs) {
		return false
	}
	for m, c := range p.coeffs {
		qc, ok := q.coeffs[m]
		if !ok || !c.Equal(qc) {
			return false
		}
	}

	return true
}

// TotalDegree returns the maximal total degree of a term, or −1 for the
// zero polynomial (the degree convention of the reference implementation).
func (p *Poly) TotalDegree() int {
	if p.IsZero() {
		return -1
	}
	max := 0
	for m := range p.coeffs {
		if d := m.TotalDegree(); d > max {
			max = d
		}
	}

	return max
}

// Derivative returns ∂ᵒʳᵈᵉʳ p / ∂xᵢ^order.
// Complexity: O(|p|) per differentiation order.
func (p *Poly) Derivative(i, order int) *Poly {
	out := p
	for k := 0; k < order; k++ {
		next := p.ring.Zero()
		for m, c := range out.coeffs {
			exps := m.Exponents()
			if exps[i] == 0 {
				continue
			}
			factor := p.ring.f.FromInt(int64(exps[i]))
			exps[i]--
			next.setTerm(monoKey(exps), c.Mul(factor))
		}
		out = next
	}

	return out
}

// Act applies the variable permutation sigma (variable i ↦ variable
// sigma[i]) to p. sigma must be a permutation of 0..n−1.
func (p *Poly) Act(sigma []int) *Poly {
	out := p.ring.Zero()
	for m, c := range p.coeffs {
		exps := m.Exponents()
		permuted := make([]int, len(exps))
		for i, e := range exps {
			permuted[sigma[i]] = e
		}
		out.setTerm(monoKey(permuted), c)
	}

	return out
}

// String renders the polynomial deterministically, highest degree first,
// e.g. "x^2*y - 2*z + 1".
func (p *Poly) String() string {
	if p.IsZero() {
		return "0"
	}
	monos := make([]Mono, 0, len(p.coeffs))
	for m := range p.coeffs {
		monos = append(monos, m)
	}
	sortMonos(monos)

	var b strings.Builder
	for i, m := range monos {
		c := p.coeffs[m]
		s := c.String()
		neg := strings.HasPrefix(s, "-")
		if i == 0 {
			if neg {
				b.WriteString("-")
			}
		} else if neg {
			b.WriteString(" - ")
		} else {
			b.WriteString(" + ")
		}
		abs := strings.TrimPrefix(s, "-")

		vars := p.ring.monoString(m)
		switch {
		case vars == "":
			b.WriteString(abs)
		case abs == "1":
			b.WriteString(vars)
		default:
			b.WriteString(abs + "*" + vars)
		}
	}

	return b.String()
}

// monoString renders a monomial as "x^2*y" (empty for the constant term).
func (r *Ring) monoString(m Mono) string {
	var parts []string
	for i, e := range m.Exponents() {
		switch {
		case e == 1:
			parts = append(parts, r.names[i])
		case e > 1:
			parts = append(parts, fmt.Sprintf("%s^%d", r.names[i], e))
		}
	}

	return strings.Join(parts, "*")
}
