// SPDX-License-Identifier: MIT

package vecmat

import "fmt"

// Echelon is a row store whose matrix is kept in reduced row-echelon form,
// enabling incremental linear-independence testing: each accepted vector
// strictly grows the rank by one.
//
// Invariant: matrix rank == Cardinality() == len(Basis()); every accepted
// vector was independent of all previously accepted ones.
type Echelon struct {
	*Matrix
	basis []Vector
}

// NewEchelon returns an empty echelon store over ambient. stats may be nil.
func NewEchelon(ambient Ambient, stats *Stats) *Echelon {
	return &Echelon{Matrix: NewMatrix(ambient, stats)}
}

// Extend attempts to grow the basis with v.
//
// The candidate matrix (current matrix plus v's coordinate row) is
// re-echelonized; v is accepted iff the trailing row of the reduced result
// is nonzero. On acceptance the reduced matrix is committed and v is
// recorded in the basis; on rejection the store is left untouched.
//
// Precondition: the internal matrix is in echelon form. Violating it is a
// programmer error reported as ErrNotEchelon (it cannot occur unless the
// embedded row store was mutated directly).
//
// Complexity: O(rank²·width) field operations per call.
func (e *Echelon) Extend(v Vector) (bool, error) {
	if !e.isEchelon {
		return false, fmt.Errorf("Echelon.Extend: %w", ErrNotEchelon)
	}
	e.stats.Extend++

	row, err := e.PlainVector(v)
	if err != nil {
		return false, fmt.Errorf("Echelon.Extend: %w", err)
	}
	candidate := e.mat.Clone()
	appendPlain(candidate, row)
	candidate.Echelonize()

	// Dependent vectors reduce to a zero trailing row; discard the candidate.
	if candidate.IsZeroRow(candidate.Rows() - 1) {
		return false, nil
	}
	e.mat = candidate
	e.basis = append(e.basis, v)
	e.stats.Dimension++

	return true, nil
}

// Cardinality returns the current basis size (== matrix rank == row count).
func (e *Echelon) Cardinality() int { return len(e.basis) }

// Basis returns the accepted vectors in acceptance order. The slice is
// live — callers must not mutate it.
func (e *Echelon) Basis() []Vector { return e.basis }
