// SPDX-License-Identifier: MIT

package diagring

import (
	"fmt"

	"github.com/katalvlaran/diagharm/combin"
	"github.com/katalvlaran/diagharm/field"
	"github.com/katalvlaran/diagharm/grading"
	"github.com/katalvlaran/diagharm/poly"
)

// Ring is the diagonal polynomial ring: r rows of n variables over an exact
// field. Variable (i,j) is generator i·n+j of the underlying polynomial
// ring, named "xij".
type Ring struct {
	f   field.Field
	n   int // columns (the Sₙ side)
	r   int // rows (the GLᵣ side)
	P   *poly.Ring
	row *poly.Ring // the first row alone, for Specht constructions
}

// New constructs the ring with r rows of n variables over f.
func New(f field.Field, n, r int) (*Ring, error) {
	if n < 1 || r < 1 {
		return nil, fmt.Errorf("%w: n=%d, r=%d", ErrInvalidShape, n, r)
	}
	names := make([]string, 0, n*r)
	for i := 0; i < r; i++ {
		for j := 0; j < n; j++ {
			names = append(names, fmt.Sprintf("x%d%d", i, j))
		}
	}
	P, err := poly.NewRing(f, names...)
	if err != nil {
		return nil, err
	}
	rowRing, err := poly.NewRing(f, names[:n]...)
	if err != nil {
		return nil, err
	}

	return &Ring{f: f, n: n, r: r, P: P, row: rowRing}, nil
}

// Polynomials returns the underlying n·r variable polynomial ring, the
// ambient space of all subspace computations in this package.
func (d *Ring) Polynomials() *poly.Ring { return d.P }

// NumCols returns n, the number of variables per row.
func (d *Ring) NumCols() int { return d.n }

// NumRows returns r.
func (d *Ring) NumRows() int { return d.r }

// Var returns the variable in row i, column j.
func (d *Ring) Var(i, j int) *poly.Poly { return d.P.Gen(i*d.n + j) }

// String names the ring, e.g. "3 rows of 5 variables over QQ".
func (d *Ring) String() string {
	return fmt.Sprintf("%d rows of %d variables over %s", d.r, d.n, d.f)
}

// Multidegree returns the ℤʳ degree of a multihomogeneous polynomial:
// component i is the total exponent of row i. Zero and inhomogeneous
// polynomials are rejected.
func (d *Ring) Multidegree(p *poly.Poly) (grading.Degree, error) {
	terms, err := d.P.Decompose(p)
	if err != nil {
		return "", err
	}
	if len(terms) == 0 {
		return "", ErrZeroPolynomial
	}

	var deg grading.Degree
	for _, t := range terms {
		exps := t.Key.(poly.Mono).Exponents()
		parts := make([]int, d.r)
		for i := 0; i < d.r; i++ {
			for j := 0; j < d.n; j++ {
				parts[i] += exps[i*d.n+j]
			}
		}
		td := grading.D(parts...)
		if deg == "" {
			deg = td
		} else if deg != td {
			return "", fmt.Errorf("%w: %v vs %v", ErrNotHomogeneous, deg, td)
		}
	}

	return deg, nil
}

// RowPermutation lifts a permutation of the r rows to a permutation of all
// n·r variables: (i,j) ↦ (σ(i),j).
func (d *Ring) RowPermutation(sigma combin.Perm) combin.Perm {
	out := make(combin.Perm, d.n*d.r)
	for i := 0; i < d.r; i++ {
		for j := 0; j < d.n; j++ {
			out[i*d.n+j] = sigma[i]*d.n + j
		}
	}

	return out
}

// ColumnPermutation lifts a permutation of the n columns to a permutation
// of all variables: (i,j) ↦ (i,σ(j)). This is the diagonal Sₙ-action.
func (d *Ring) ColumnPermutation(sigma combin.Perm) combin.Perm {
	out := make(combin.Perm, d.n*d.r)
	for i := 0; i < d.r; i++ {
		for j := 0; j < d.n; j++ {
			out[i*d.n+j] = i*d.n + sigma[j]
		}
	}

	return out
}

// Polarization applies E_{i1→i2,deg} = Σⱼ x_{i2,j}·∂ᵈᵉᵍ/∂x_{i1,j}ᵈᵉᵍ to p.
// It shifts the multidegree by −deg·e_{i1} + e_{i2}.
func (d *Ring) Polarization(p *poly.Poly, i1, i2, deg int) *poly.Poly {
	out := d.P.Zero()
	for j := 0; j < d.n; j++ {
		out = out.Add(d.Var(i2, j).Mul(p.Derivative(i1*d.n+j, deg)))
	}

	return out
}

// embed lifts a polynomial of the first-row ring into the full ring.
func (d *Ring) embed(h *poly.Poly) *poly.Poly {
	terms, err := d.row.Decompose(h)
	if err != nil {
		panic("diagring: embedding a foreign polynomial")
	}
	out := d.P.Zero()
	for _, t := range terms {
		full := make([]int, d.n*d.r)
		copy(full, t.Key.(poly.Mono).Exponents())
		m, _ := d.P.Monomial(full, t.Coeff)
		out = out.Add(m)
	}

	return out
}
