// SPDX-License-Identifier: MIT

package hilbert

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/katalvlaran/diagharm/grading"
	"github.com/katalvlaran/diagharm/subspace"
)

var (
	// ErrMixedArity - all degrees of one series must have the same number
	// of components.
	ErrMixedArity = errors.New("hilbert: degrees of mixed tuple lengths")
	// ErrBadCount - dimensions are nonnegative.
	ErrBadCount = errors.New("hilbert: negative dimension")
	// ErrForeignDegree - the dimension map holds a degree that is not a
	// grading.Degree.
	ErrForeignDegree = errors.New("hilbert: degree key of foreign type")
)

// Series is a finite degree → coefficient table, rendered as a polynomial
// in q (one grading component) or q0..q_{r−1}.
type Series struct {
	coeffs map[grading.Degree]int
	arity  int
}

// New builds a series from a degree → count map. Zero counts are dropped;
// all degrees must share one tuple length.
func New(dims map[grading.Degree]int) (*Series, error) {
	s := &Series{coeffs: make(map[grading.Degree]int, len(dims)), arity: -1}
	for d, c := range dims {
		if c < 0 {
			return nil, fmt.Errorf("%w: %d at %v", ErrBadCount, c, d)
		}
		if c == 0 {
			continue
		}
		if s.arity == -1 {
			s.arity = d.Len()
		} else if d.Len() != s.arity {
			return nil, fmt.Errorf("%w: %d and %d components", ErrMixedArity, s.arity, d.Len())
		}
		s.coeffs[d] = c
	}

	return s, nil
}

// FromDimensions adapts the map returned by subspace.Dimensions; every key
// must be a grading.Degree.
func FromDimensions(dims map[subspace.Degree]int) (*Series, error) {
	converted := make(map[grading.Degree]int, len(dims))
	for d, c := range dims {
		g, ok := d.(grading.Degree)
		if !ok {
			return nil, fmt.Errorf("%w: %T", ErrForeignDegree, d)
		}
		converted[g] = c
	}

	return New(converted)
}

// Coefficient returns the multiplicity at d (zero when absent).
func (s *Series) Coefficient(d grading.Degree) int { return s.coeffs[d] }

// Total returns the sum of all coefficients, the dimension of the
// underlying space.
func (s *Series) Total() int {
	total := 0
	for _, c := range s.coeffs {
		total += c
	}

	return total
}

// String renders the series, e.g. "q^3 + q^2 + q + 1" or
// "q0^2 + q0*q1 + 2*q1".
func (s *Series) String() string {
	if len(s.coeffs) == 0 {
		return "0"
	}
	degrees := make([]grading.Degree, 0, len(s.coeffs))
	for d := range s.coeffs {
		degrees = append(degrees, d)
	}
	sortDegrees(degrees)

	parts := make([]string, 0, len(degrees))
	for _, d := range degrees {
		parts = append(parts, term(s.coeffs[d], d, s.arity))
	}

	return strings.Join(parts, " + ")
}

// term renders one "c*q0^e0*..." factor, eliding unit coefficients and
// exponents.
func term(c int, d grading.Degree, arity int) string {
	var vars []string
	for i, e := range d.Parts() {
		name := "q"
		if arity > 1 {
			name = fmt.Sprintf("q%d", i)
		}
		switch {
		case e == 1:
			vars = append(vars, name)
		case e > 1:
			vars = append(vars, fmt.Sprintf("%s^%d", name, e))
		}
	}
	body := strings.Join(vars, "*")
	switch {
	case body == "":
		return fmt.Sprintf("%d", c)
	case c == 1:
		return body
	default:
		return fmt.Sprintf("%d*%s", c, body)
	}
}

// sortDegrees orders by total degree descending, then lexicographically
// descending components, mirroring the polynomial display order.
func sortDegrees(degrees []grading.Degree) {
	sort.Slice(degrees, func(i, j int) bool {
		pi, pj := degrees[i].Parts(), degrees[j].Parts()
		ti, tj := 0, 0
		for _, p := range pi {
			ti += p
		}
		for _, p := range pj {
			tj += p
		}
		if ti != tj {
			return ti > tj
		}
		for k := range pi {
			if pi[k] != pj[k] {
				return pi[k] > pj[k]
			}
		}

		return false
	})
}
