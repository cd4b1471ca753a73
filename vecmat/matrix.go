// SPDX-License-Identifier: MIT

package vecmat

import (
	"fmt"

	"github.com/katalvlaran/diagharm/field"
	"github.com/katalvlaran/diagharm/ranker"
)

// Matrix is a mutable collection of ambient vectors stored as dense
// coordinate rows ("matrix of vectors"). Coordinates are assigned lazily by
// an append-only ranker: whenever a vector's decomposition meets fresh
// basis keys, the matrix widens with zero columns before the row lands.
//
// Not safe for concurrent use.
type Matrix struct {
	ambient   Ambient
	f         field.Field
	rk        *ranker.Ranker
	mat       *Dense
	isEchelon bool // vacuously true while empty; cleared by AddVector
	stats     *Stats
}

// NewMatrix returns an empty row store over ambient. stats may be nil; pass
// a shared *Stats to account work across several stores of one computation.
func NewMatrix(ambient Ambient, stats *Stats) *Matrix {
	if stats == nil {
		stats = &Stats{}
	}
	f := ambient.BaseField()
	mat, _ := NewDense(f, 0, 0)

	return &Matrix{ambient: ambient, f: f, rk: ranker.New(), mat: mat, isEchelon: true, stats: stats}
}

// Ambient returns the ambient space the store decomposes into.
func (m *Matrix) Ambient() Ambient { return m.ambient }

// Stats returns the work counters shared by this store.
func (m *Matrix) Stats() *Stats { return m.stats }

// Dense exposes the underlying coordinate matrix. The returned value is
// live — callers must treat it as read-only.
func (m *Matrix) Dense() *Dense { return m.mat }

// PlainVector decomposes v into a dense coordinate row padded to the
// ranker's current width. Fresh keys are ranked as a side effect, so the
// returned row may be wider than the current matrix.
//
// Invariant on return: len(row) == ranker.Len() ≥ matrix width.
// Returns ErrAmbientMismatch when v is not an element of the ambient.
func (m *Matrix) PlainVector(v Vector) ([]field.Element, error) {
	terms, err := m.ambient.Decompose(v)
	if err != nil {
		return nil, err
	}
	// Rank every key first: the row must be padded to the post-ranking width.
	cols := make([]int, len(terms))
	for i, t := range terms {
		cols[i] = m.rk.Rank(t.Key)
	}
	row := make([]field.Element, m.rk.Len())
	for j := range row {
		row[j] = m.f.Zero()
	}
	for i, t := range terms {
		row[cols[i]] = t.Coeff
	}

	return row, nil
}

// appendPlain widens mat to the row's width and appends the row. The row is
// as wide as the ranker, which never trails the matrix.
func appendPlain(mat *Dense, row []field.Element) {
	if len(row) > mat.Cols() {
		_ = mat.GrowCols(len(row)) // len(row) ≥ Cols, cannot fail
	}
	_ = mat.AppendRow(row)
}

// AddVector appends v's coordinate row at the bottom of the matrix,
// widening it first if the row ranked new keys. The echelon flag is
// cleared: plain insertion gives no shape guarantee.
func (m *Matrix) AddVector(v Vector) error {
	m.stats.AddVector++
	row, err := m.PlainVector(v)
	if err != nil {
		return fmt.Errorf("Matrix.AddVector: %w", err)
	}
	appendPlain(m.mat, row)
	m.isEchelon = false

	return nil
}
