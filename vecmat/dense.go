// SPDX-License-Identifier: MIT

// Package vecmat: Dense is a growable, row-major matrix over an exact
// field, storing elements in a flat slice. Unlike a fixed-shape matrix it
// supports two append-only growth operations — AppendRow and GrowCols —
// making the on-the-fly column growth of the row stores an explicit step
// rather than resizing hidden inside arithmetic.

package vecmat

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/diagharm/field"
)

// Dense is a row-major r×c matrix of field elements.
// The zero shape 0×0 is valid: row stores start empty and grow.
type Dense struct {
	f    field.Field
	r, c int
	data []field.Element // flat backing storage, length == r*c
}

// NewDense creates an r×c Dense over f, initialized to f.Zero().
// Negative dimensions return ErrOutOfRange; zero dimensions are valid.
// Complexity: O(r·c).
func NewDense(f field.Field, rows, cols int) (*Dense, error) {
	if rows < 0 || cols < 0 {
		return nil, fmt.Errorf("NewDense(%d,%d): %w", rows, cols, ErrOutOfRange)
	}
	data := make([]field.Element, rows*cols)
	for i := range data {
		data[i] = f.Zero()
	}

	return &Dense{f: f, r: rows, c: cols, data: data}, nil
}

// Field returns the base field of the matrix.
func (m *Dense) Field() field.Field { return m.f }

// Rows returns the number of rows. Complexity: O(1).
func (m *Dense) Rows() int { return m.r }

// Cols returns the number of columns. Complexity: O(1).
func (m *Dense) Cols() int { return m.c }

// At retrieves the element at (row, col), or ErrOutOfRange.
func (m *Dense) At(row, col int) (field.Element, error) {
	if row < 0 || row >= m.r || col < 0 || col >= m.c {
		return nil, fmt.Errorf("Dense.At(%d,%d): %w", row, col, ErrOutOfRange)
	}

	return m.data[row*m.c+col], nil
}

// Set assigns v at (row, col), or ErrOutOfRange.
func (m *Dense) Set(row, col int, v field.Element) error {
	if row < 0 || row >= m.r || col < 0 || col >= m.c {
		return fmt.Errorf("Dense.Set(%d,%d): %w", row, col, ErrOutOfRange)
	}
	m.data[row*m.c+col] = v

	return nil
}

// at is the unchecked read used by internal kernels after shape validation.
func (m *Dense) at(row, col int) field.Element { return m.data[row*m.c+col] }

// set is the unchecked write counterpart of at.
func (m *Dense) set(row, col int, v field.Element) { m.data[row*m.c+col] = v }

// Clone returns a deep structural copy. Elements are immutable, so sharing
// them between clones is safe. Complexity: O(r·c).
func (m *Dense) Clone() *Dense {
	data := make([]field.Element, len(m.data))
	copy(data, m.data)

	return &Dense{f: m.f, r: m.r, c: m.c, data: data}
}

// AppendRow appends row at the bottom of the matrix. The row must match the
// current width exactly; widen first via GrowCols. Complexity: O(c).
func (m *Dense) AppendRow(row []field.Element) error {
	if len(row) != m.c {
		return fmt.Errorf("Dense.AppendRow: row width %d != %d: %w", len(row), m.c, ErrDimensionMismatch)
	}
	m.data = append(m.data, row...)
	m.r++

	return nil
}

// GrowCols widens the matrix to cols columns, padding every existing row
// with zeros on the right. Shrinking is not supported (append-only policy).
// Complexity: O(r·cols).
func (m *Dense) GrowCols(cols int) error {
	if cols < m.c {
		return fmt.Errorf("Dense.GrowCols(%d): current width %d: %w", cols, m.c, ErrOutOfRange)
	}
	if cols == m.c {
		return nil
	}
	data := make([]field.Element, m.r*cols)
	for i := 0; i < m.r; i++ {
		copy(data[i*cols:], m.data[i*m.c:(i+1)*m.c])
		for j := m.c; j < cols; j++ {
			data[i*cols+j] = m.f.Zero()
		}
	}
	m.data = data
	m.c = cols

	return nil
}

// Augment concatenates other to the right of m, returning a new matrix.
// Both operands must have the same row count. Complexity: O(r·(c1+c2)).
func (m *Dense) Augment(other *Dense) (*Dense, error) {
	if other.r != m.r {
		return nil, fmt.Errorf("Dense.Augment: %d vs %d rows: %w", m.r, other.r, ErrDimensionMismatch)
	}
	out, _ := NewDense(m.f, m.r, m.c+other.c)
	for i := 0; i < m.r; i++ {
		copy(out.data[i*out.c:], m.data[i*m.c:(i+1)*m.c])
		copy(out.data[i*out.c+m.c:], other.data[i*other.c:(i+1)*other.c])
	}

	return out, nil
}

// Transpose returns a new c×r matrix with rows and columns exchanged.
func (m *Dense) Transpose() *Dense {
	out, _ := NewDense(m.f, m.c, m.r)
	for i := 0; i < m.r; i++ {
		for j := 0; j < m.c; j++ {
			out.set(j, i, m.at(i, j))
		}
	}

	return out
}

// Echelonize reduces the matrix in place to reduced row-echelon form
// (Gauss-Jordan with exact pivoting on the first nonzero entry). After the
// call, all zero rows sit at the bottom and Rank() is the pivot count.
// Complexity: O(r²·c) field operations.
func (m *Dense) Echelonize() {
	pivotRow := 0
	for col := 0; col < m.c && pivotRow < m.r; col++ {
		// Locate the first usable pivot in this column.
		pivot := -1
		for i := pivotRow; i < m.r; i++ {
			if !m.at(i, col).IsZero() {
				pivot = i
				break
			}
		}
		if pivot < 0 {
			continue
		}
		m.swapRows(pivotRow, pivot)

		// Normalize the pivot row to a leading one.
		inv := m.at(pivotRow, col).Inv()
		for j := col; j < m.c; j++ {
			m.set(pivotRow, j, m.at(pivotRow, j).Mul(inv))
		}

		// Eliminate the column everywhere else (reduced form).
		for i := 0; i < m.r; i++ {
			if i == pivotRow {
				continue
			}
			factor := m.at(i, col)
			if factor.IsZero() {
				continue
			}
			for j := col; j < m.c; j++ {
				m.set(i, j, m.at(i, j).Sub(factor.Mul(m.at(pivotRow, j))))
			}
		}
		pivotRow++
	}
}

// swapRows exchanges rows i and j in place.
func (m *Dense) swapRows(i, j int) {
	if i == j {
		return
	}
	for col := 0; col < m.c; col++ {
		m.data[i*m.c+col], m.data[j*m.c+col] = m.data[j*m.c+col], m.data[i*m.c+col]
	}
}

// IsZeroRow reports whether row i is entirely zero.
func (m *Dense) IsZeroRow(i int) bool {
	for j := 0; j < m.c; j++ {
		if !m.at(i, j).IsZero() {
			return false
		}
	}

	return true
}

// Rank returns the rank of the matrix. The receiver is left untouched; the
// elimination runs on a clone. Complexity: O(r²·c).
func (m *Dense) Rank() int {
	e := m.Clone()
	e.Echelonize()
	rank := 0
	for i := 0; i < e.r; i++ {
		if !e.IsZeroRow(i) {
			rank++
		}
	}

	return rank
}

// NullSpace returns a basis of the right kernel {x : m·x = 0}, one slice of
// length Cols() per basis vector. The basis vectors are exact and linearly
// independent; their count is Cols() − Rank().
func (m *Dense) NullSpace() [][]field.Element {
	e := m.Clone()
	e.Echelonize()

	// Pivot column of each nonzero row, in order.
	pivotCols := make([]int, 0, e.r)
	isPivot := make([]bool, e.c)
	for i := 0; i < e.r; i++ {
		for j := 0; j < e.c; j++ {
			if !e.at(i, j).IsZero() {
				pivotCols = append(pivotCols, j)
				isPivot[j] = true
				break
			}
		}
	}

	// One basis vector per free column: x[free] = 1, x[pivot_i] = −e[i][free].
	var basis [][]field.Element
	for free := 0; free < e.c; free++ {
		if isPivot[free] {
			continue
		}
		x := make([]field.Element, e.c)
		for j := range x {
			x[j] = m.f.Zero()
		}
		x[free] = m.f.One()
		for i, pc := range pivotCols {
			x[pc] = e.at(i, free).Neg()
		}
		basis = append(basis, x)
	}

	return basis
}

// LeftKernel returns a basis of the left kernel {x : x·m = 0}, one slice of
// length Rows() per basis vector; count is Rows() − Rank().
func (m *Dense) LeftKernel() [][]field.Element {
	return m.Transpose().NullSpace()
}

// String renders the matrix row by row, mainly for debugging and tests.
func (m *Dense) String() string {
	var b strings.Builder
	for i := 0; i < m.r; i++ {
		b.WriteByte('[')
		for j := 0; j < m.c; j++ {
			if j > 0 {
				b.WriteByte(' ')
			}
			b.WriteString(m.at(i, j).String())
		}
		b.WriteString("]\n")
	}

	return b.String()
}
