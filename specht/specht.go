// SPDX-License-Identifier: MIT

package specht

import (
	"fmt"

	"github.com/katalvlaran/diagharm/combin"
	"github.com/katalvlaran/diagharm/poly"
	"github.com/katalvlaran/diagharm/vecmat"
)

// ApplyYoungIdempotent applies the Young idempotent of t to p: first the sum
// over the row stabilizer of t, then the signed sum over its column
// stabilizer. Cell i of t is associated with variable i−1 of the ring.
func ApplyYoungIdempotent(p *poly.Poly, t combin.Tableau) (*poly.Poly, error) {
	if t.Size() != p.Ring().NumVars() {
		return nil, fmt.Errorf("%w: %d cells, %d variables", ErrSizeMismatch, t.Size(), p.Ring().NumVars())
	}

	sym := p.Ring().Zero()
	for _, s := range t.RowStabilizer() {
		sym = sym.Add(p.Act(s))
	}

	out := p.Ring().Zero()
	for _, s := range t.ColumnStabilizer() {
		q := sym.Act(s)
		if s.Sign() < 0 {
			q = q.Neg()
		}
		out = out.Add(q)
	}

	return out, nil
}

// HigherSpecht returns H_{P,Q}: the monomial placing the index filling of P
// at the cells named by Q, symmetrized by the Young idempotent of Q. A nil
// Q defaults to the initial tableau of the shape of P, which yields the
// classical Specht polynomial.
func HigherSpecht(R *poly.Ring, P, Q combin.Tableau) (*poly.Poly, error) {
	n := P.Size()
	if n != R.NumVars() {
		return nil, fmt.Errorf("%w: %d cells, %d variables", ErrSizeMismatch, n, R.NumVars())
	}
	if Q == nil {
		Q = P.Shape().InitialTableau()
	}
	if P.Shape().String() != Q.Shape().String() {
		return nil, fmt.Errorf("%w: %v vs %v", ErrShapeMismatch, P.Shape(), Q.Shape())
	}

	// Exponent of variable Q(c)−1 is the index filling of P at cell c.
	exps := P.IndexFilling().Entries()
	cells := Q.Entries()
	expvec := make([]int, n)
	for i, d := range exps {
		expvec[cells[i]-1] = d
	}
	m, err := R.Monomial(expvec, R.BaseField().One())
	if err != nil {
		return nil, err
	}

	return ApplyYoungIdempotent(m, Q)
}

// HigherSpechtHarmonic returns the harmonic representative of H_{P,Q}: the
// unique element, up to scalar, of the span of H_{P,Q} together with
// H_{P',Q}·m_ν for every standard P' of lower cocharge (ν running over the
// partitions of the cocharge gap) that is annihilated by all power sums
// p₁,...,pₙ acting as differential operators.
func HigherSpechtHarmonic(R *poly.Ring, P, Q combin.Tableau) (*poly.Poly, error) {
	n := P.Size()
	if Q == nil {
		Q = P.Shape().InitialTableau()
	}
	d := P.Cocharge()

	head, err := HigherSpecht(R, P, Q)
	if err != nil {
		return nil, err
	}
	B := []vecmat.Vector{head}
	for _, P2 := range combin.StandardTableaux(P.Shape()) {
		c := P2.Cocharge()
		if c >= d {
			continue
		}
		base, err := HigherSpecht(R, P2, Q)
		if err != nil {
			return nil, err
		}
		for _, nu := range combin.PartitionsMaxLength(d-c, n) {
			B = append(B, base.Mul(MonomialSymmetric(R, nu)))
		}
	}

	actors := make([]vecmat.Actor, 0, n)
	for k := 1; k <= n; k++ {
		actors = append(actors, PowerSum(R, k))
	}
	action := func(x, y any) vecmat.Vector {
		return poly.DiffAction(x.(*poly.Poly), y.(*poly.Poly))
	}

	ann, err := vecmat.AnnihilatorBasis(R, B, actors, action, vecmat.Left, nil)
	if err != nil {
		return nil, err
	}
	if len(ann) != 1 {
		return nil, fmt.Errorf("%w: got dimension %d", ErrHarmonicRank, len(ann))
	}

	return ann[0].(*poly.Poly), nil
}
