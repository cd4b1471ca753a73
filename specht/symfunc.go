// SPDX-License-Identifier: MIT

package specht

import (
	"sort"

	"github.com/katalvlaran/diagharm/combin"
	"github.com/katalvlaran/diagharm/poly"
)

// PowerSum returns pₖ = Σᵢ xᵢᵏ in R; k must be positive.
func PowerSum(R *poly.Ring, k int) *poly.Poly {
	if k < 1 {
		panic("specht: power sum index must be positive")
	}
	out := R.Zero()
	for i := 0; i < R.NumVars(); i++ {
		out = out.Add(R.Gen(i).Pow(k))
	}

	return out
}

// MonomialSymmetric returns the monomial symmetric polynomial m_ν expanded
// in the variables of R: the sum of all distinct monomials whose exponent
// vector rearranges to ν. Returns the zero polynomial when ν has more parts
// than R has variables.
func MonomialSymmetric(R *poly.Ring, nu combin.Partition) *poly.Poly {
	n := R.NumVars()
	if len(nu) > n {
		return R.Zero()
	}

	// Multiset of exponents: the parts of ν padded with zeros.
	counts := map[int]int{0: n - len(nu)}
	for _, part := range nu {
		counts[part]++
	}
	values := make([]int, 0, len(counts))
	for v := range counts {
		values = append(values, v)
	}
	sort.Sort(sort.Reverse(sort.IntSlice(values)))

	out := R.Zero()
	exps := make([]int, n)
	var rec func(i int)
	rec = func(i int) {
		if i == n {
			m, _ := R.Monomial(exps, R.BaseField().One())
			out = out.Add(m)

			return
		}
		for _, v := range values {
			if counts[v] == 0 {
				continue
			}
			counts[v]--
			exps[i] = v
			rec(i + 1)
			counts[v]++
		}
	}
	rec(0)

	return out
}
