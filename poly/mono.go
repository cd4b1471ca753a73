// SPDX-License-Identifier: MIT

package poly

import (
	"sort"
	"strconv"
	"strings"
)

// Mono is a monomial key: the comma-joined exponent vector of all ring
// variables, zeros included ("2,0,1" = x₀²·x₂ in three variables). Being a
// plain comparable string, it doubles as the stable basis key handed to the
// rankers.
type Mono string

// monoKey encodes an exponent vector.
func monoKey(exps []int) Mono {
	elems := make([]string, len(exps))
	for i, e := range exps {
		elems[i] = strconv.Itoa(e)
	}

	return Mono(strings.Join(elems, ","))
}

// Exponents decodes the exponent vector.
func (m Mono) Exponents() []int {
	elems := strings.Split(string(m), ",")
	exps := make([]int, len(elems))
	for i, e := range elems {
		n, err := strconv.Atoi(e)
		if err != nil {
			panic("poly: malformed monomial " + strconv.Quote(string(m)))
		}
		exps[i] = n
	}

	return exps
}

// TotalDegree is the sum of all exponents.
func (m Mono) TotalDegree() int {
	total := 0
	for _, e := range m.Exponents() {
		total += e
	}

	return total
}

// sortMonos orders monomials by decreasing total degree, then
// lexicographically decreasing exponents — a stable display order.
func sortMonos(monos []Mono) {
	sort.Slice(monos, func(i, j int) bool {
		di, dj := monos[i].TotalDegree(), monos[j].TotalDegree()
		if di != dj {
			return di > dj
		}
		ei, ej := monos[i].Exponents(), monos[j].Exponents()
		for k := range ei {
			if ei[k] != ej[k] {
				return ei[k] > ej[k]
			}
		}

		return false
	})
}
