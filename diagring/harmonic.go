// SPDX-License-Identifier: MIT

package diagring

import (
	"fmt"

	"github.com/katalvlaran/diagharm/combin"
	"github.com/katalvlaran/diagharm/grading"
	"github.com/katalvlaran/diagharm/poly"
	"github.com/katalvlaran/diagharm/specht"
	"github.com/katalvlaran/diagharm/subspace"
	"github.com/katalvlaran/diagharm/vecmat"
)

// Side selects which polarization operators participate in a closure.
type Side int

const (
	// Down keeps only the operators from row i1 to row i2 with i1 < i2.
	// Sufficient for closing spaces generated in the first row.
	Down Side = iota
	// All keeps every i1 ≠ i2 pair.
	All
)

// PolarizationOperators returns the polarization operators of differential
// degree 1..n−1, keyed by their multidegree shift −d·e_{i1} + e_{i2}.
func (d *Ring) PolarizationOperators(side Side) subspace.Operators {
	ops := make(subspace.Operators)
	for deg := 1; deg < d.n; deg++ {
		for i1 := 0; i1 < d.r; i1++ {
			for i2 := 0; i2 < d.r; i2++ {
				if i1 == i2 || (side == Down && i1 > i2) {
					continue
				}
				parts := make([]int, d.r)
				parts[i1] = -deg
				parts[i2] = 1
				shift := grading.D(parts...)
				i1c, i2c, degc := i1, i2, deg
				ops[shift] = append(ops[shift], subspace.Lift(func(v vecmat.Vector) vecmat.Vector {
					return d.Polarization(v.(*poly.Poly), i1c, i2c, degc)
				}))
			}
		}
	}

	return ops
}

// HigherSpecht returns the higher Specht polynomial H_{P,Q} in the first
// row of variables, embedded into the full ring. With harmonic set, the
// harmonic representative is returned instead.
func (d *Ring) HigherSpecht(P, Q combin.Tableau, harmonic bool) (*poly.Poly, error) {
	if P.Size() != d.n {
		return nil, fmt.Errorf("%w: %d cells, %d columns", ErrShapeSize, P.Size(), d.n)
	}
	var (
		h   *poly.Poly
		err error
	)
	if harmonic {
		h, err = specht.HigherSpechtHarmonic(d.row, P, Q)
	} else {
		h, err = specht.HigherSpecht(d.row, P, Q)
	}
	if err != nil {
		return nil, err
	}

	return d.embed(h), nil
}

// HarmonicSpaceByShape returns the polarization closure of the harmonic
// higher Specht polynomials of shape mu: one generator per standard tableau,
// seeded at multidegree (cocharge, 0, ..., 0), closed under the downward
// polarization operators with negative-pruning degree addition.
//
// The result is the mu-isotypic contribution to the diagonally harmonic
// polynomials of the ring.
func (d *Ring) HarmonicSpaceByShape(mu combin.Partition) (*subspace.Subspace, error) {
	if mu.Size() != d.n {
		return nil, fmt.Errorf("%w: |%v| = %d, n = %d", ErrShapeSize, mu, mu.Size(), d.n)
	}

	generators := make(subspace.Generators)
	for _, t := range combin.StandardTableaux(mu) {
		h, err := d.HigherSpecht(t, nil, true)
		if err != nil {
			return nil, err
		}
		parts := make([]int, d.r)
		parts[0] = h.TotalDegree()
		deg := grading.D(parts...)
		generators[deg] = append(generators[deg], h)
	}

	return subspace.New(d.P, generators,
		d.PolarizationOperators(Down),
		subspace.Graded(grading.SumPruneNegative))
}

// HarmonicCharacter returns the GLᵣ character of HarmonicSpaceByShape(mu)
// as a multidegree → multiplicity map: for each degree bucket, the number
// of basis combinations annihilated by every lowering polarization
// E_{i1→i2,1} with i1 > i2. Each such highest-weight vector accounts for
// one irreducible GLᵣ summand with that highest weight; buckets without
// highest-weight vectors are omitted.
func (d *Ring) HarmonicCharacter(mu combin.Partition) (map[grading.Degree]int, error) {
	S, err := d.HarmonicSpaceByShape(mu)
	if err != nil {
		return nil, err
	}
	bases, err := S.Bases()
	if err != nil {
		return nil, err
	}

	lowering := make([]vecmat.Actor, 0, d.r*(d.r-1)/2)
	for i1 := 1; i1 < d.r; i1++ {
		for i2 := 0; i2 < i1; i2++ {
			i1c, i2c := i1, i2
			lowering = append(lowering, func(p *poly.Poly) *poly.Poly {
				return d.Polarization(p, i1c, i2c, 1)
			})
		}
	}
	action := func(x, y any) vecmat.Vector {
		return y.(func(*poly.Poly) *poly.Poly)(x.(*poly.Poly))
	}

	char := make(map[grading.Degree]int)
	for deg, basis := range bases {
		B := basis.Basis()
		if len(B) == 0 {
			continue
		}
		ann, err := vecmat.AnnihilatorBasis(d.P, B, lowering, action, vecmat.Right, nil)
		if err != nil {
			return nil, err
		}
		if len(ann) > 0 {
			char[deg.(grading.Degree)] = len(ann)
		}
	}

	return char, nil
}
