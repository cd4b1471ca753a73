// SPDX-License-Identifier: MIT

package grading

import (
	"errors"
	"sort"
	"strconv"
	"strings"
)

var (
	// ErrInvalidDegree signals a pruned degree combination (e.g. a negative
	// component under SumPruneNegative). The closure engine treats it as a
	// local skip decision, never as a failure.
	ErrInvalidDegree = errors.New("grading: invalid degree")

	// ErrLengthMismatch indicates two degrees of different tuple lengths.
	ErrLengthMismatch = errors.New("grading: degree length mismatch")
)

// Degree is a comparable encoding of an integer tuple, e.g. D(3,1) == "3,1".
// The empty Degree is the zero tuple of length 0.
type Degree string

// D builds a Degree from tuple components.
func D(parts ...int) Degree {
	if len(parts) == 0 {
		return ""
	}
	elems := make([]string, len(parts))
	for i, p := range parts {
		elems[i] = strconv.Itoa(p)
	}

	return Degree(strings.Join(elems, ","))
}

// Zero returns the zero tuple of length r.
func Zero(r int) Degree {
	return D(make([]int, r)...)
}

// Parts decodes the tuple components. The encoding is produced only by D,
// so decoding cannot fail on values built through this package.
func (d Degree) Parts() []int {
	if d == "" {
		return nil
	}
	elems := strings.Split(string(d), ",")
	parts := make([]int, len(elems))
	for i, e := range elems {
		n, err := strconv.Atoi(e)
		if err != nil {
			panic("grading: malformed degree " + strconv.Quote(string(d)))
		}
		parts[i] = n
	}

	return parts
}

// Len returns the tuple length.
func (d Degree) Len() int {
	if d == "" {
		return 0
	}

	return strings.Count(string(d), ",") + 1
}

// Sum returns the componentwise sum of two equal-length degrees.
func Sum(d1, d2 Degree) (Degree, error) {
	p1, p2 := d1.Parts(), d2.Parts()
	if len(p1) != len(p2) {
		return "", ErrLengthMismatch
	}
	for i := range p1 {
		p1[i] += p2[i]
	}

	return D(p1...), nil
}

// SumPruneNegative returns the componentwise sum, or ErrInvalidDegree when
// any component of the result is negative. This is the standard pruning
// policy for differential (degree-lowering) operators.
func SumPruneNegative(d1, d2 Degree) (Degree, error) {
	s, err := Sum(d1, d2)
	if err != nil {
		return "", err
	}
	for _, p := range s.Parts() {
		if p < 0 {
			return "", ErrInvalidDegree
		}
	}

	return s, nil
}

// SumSymmetric behaves like SumPruneNegative and then sorts the components
// decreasingly, folding together degrees equivalent under permutation of
// the rows.
func SumSymmetric(d1, d2 Degree) (Degree, error) {
	s, err := SumPruneNegative(d1, d2)
	if err != nil {
		return "", err
	}
	parts := s.Parts()
	sort.Sort(sort.Reverse(sort.IntSlice(parts)))

	return D(parts...), nil
}
