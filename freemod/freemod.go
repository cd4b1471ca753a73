// SPDX-License-Identifier: MIT

package freemod

import (
	"fmt"
	"sort"
	"strings"

	"github.com/katalvlaran/diagharm/field"
	"github.com/katalvlaran/diagharm/ranker"
	"github.com/katalvlaran/diagharm/vecmat"
)

// Module is a free module over an exact field. Basis keys are arbitrary
// comparable values; the key set is implicit (any key may carry a
// coefficient). Two Modules are distinct ambient spaces even over the same
// field: elements remember their owner.
type Module struct {
	f field.Field
}

// New returns a free module over f.
func New(f field.Field) *Module { return &Module{f: f} }

// Elem is a finite formal linear combination of basis keys. Elements are
// immutable: all operations return fresh values.
type Elem struct {
	m      *Module
	coeffs map[ranker.Key]field.Element // zero coefficients never stored
}

// Zero returns the zero element.
func (m *Module) Zero() *Elem {
	return &Elem{m: m, coeffs: map[ranker.Key]field.Element{}}
}

// Monomial returns the basis element indexed by k.
func (m *Module) Monomial(k ranker.Key) *Elem {
	return m.Term(k, m.f.One())
}

// Term returns c·B[k].
func (m *Module) Term(k ranker.Key, c field.Element) *Elem {
	e := m.Zero()
	if !c.IsZero() {
		e.coeffs[k] = c
	}

	return e
}

// Coeff returns the coefficient of k (zero when absent).
func (e *Elem) Coeff(k ranker.Key) field.Element {
	if c, ok := e.coeffs[k]; ok {
		return c
	}

	return e.m.f.Zero()
}

// IsZero reports whether e is the zero element.
func (e *Elem) IsZero() bool { return len(e.coeffs) == 0 }

// Add returns e + b.
func (e *Elem) Add(b *Elem) *Elem {
	out := e.m.Zero()
	for k, c := range e.coeffs {
		out.coeffs[k] = c
	}
	for k, c := range b.coeffs {
		sum := out.Coeff(k).Add(c)
		if sum.IsZero() {
			delete(out.coeffs, k)
		} else {
			out.coeffs[k] = sum
		}
	}

	return out
}

// Sub returns e − b.
func (e *Elem) Sub(b *Elem) *Elem { return e.Add(b.Scale(e.m.f.One().Neg())) }

// Scale returns c·e.
func (e *Elem) Scale(c field.Element) *Elem {
	out := e.m.Zero()
	if c.IsZero() {
		return out
	}
	for k, v := range e.coeffs {
		out.coeffs[k] = v.Mul(c)
	}

	return out
}

// Equal reports exact equality of two elements of the same module.
func (e *Elem) Equal(b *Elem) bool {
	if len(e.coeffs) != len(b.coeffs) {
		return false
	}
	for k, c := range e.coeffs {
		if !c.Equal(b.Coeff(k)) {
			return false
		}
	}

	return true
}

// String renders "2*B[1] + 3*B[4]" with keys sorted by their formatted
// form, so output is deterministic.
func (e *Elem) String() string {
	if e.IsZero() {
		return "0"
	}
	parts := make([]string, 0, len(e.coeffs))
	for k, c := range e.coeffs {
		parts = append(parts, fmt.Sprintf("%s*B[%v]", c.String(), k))
	}
	sort.Strings(parts)

	return strings.Join(parts, " + ")
}

// --- vecmat.Ambient capability ---

// BaseField returns the module's field.
func (m *Module) BaseField() field.Field { return m.f }

// Decompose returns the support of v as (key, coefficient) terms.
// Vectors of other modules (or foreign types) yield ErrAmbientMismatch.
func (m *Module) Decompose(v vecmat.Vector) ([]vecmat.Term, error) {
	e, ok := v.(*Elem)
	if !ok || e.m != m {
		return nil, fmt.Errorf("freemod: %w", vecmat.ErrAmbientMismatch)
	}
	terms := make([]vecmat.Term, 0, len(e.coeffs))
	for k, c := range e.coeffs {
		terms = append(terms, vecmat.Term{Key: k, Coeff: c})
	}

	return terms, nil
}

// Combine returns Σ coeffs[i]·vectors[i].
func (m *Module) Combine(coeffs []field.Element, vectors []vecmat.Vector) vecmat.Vector {
	out := m.Zero()
	for i, c := range coeffs {
		out = out.Add(vectors[i].(*Elem).Scale(c))
	}

	return out
}
