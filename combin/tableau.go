// SPDX-License-Identifier: MIT

package combin

import (
	"fmt"
	"strings"
)

// Tableau is a filling of a partition shape, rows top-down.
type Tableau [][]int

// Shape returns the row lengths as a partition.
func (t Tableau) Shape() Partition {
	shape := make(Partition, len(t))
	for i, row := range t {
		shape[i] = len(row)
	}

	return shape
}

// Size returns the number of cells.
func (t Tableau) Size() int { return t.Shape().Size() }

// Entries returns the entries row by row, first row first.
func (t Tableau) Entries() []int {
	out := make([]int, 0, t.Size())
	for _, row := range t {
		out = append(out, row...)
	}

	return out
}

// Conjugate returns the transposed tableau.
func (t Tableau) Conjugate() Tableau {
	if len(t) == 0 {
		return nil
	}
	out := make(Tableau, len(t[0]))
	for j := range out {
		for _, row := range t {
			if len(row) > j {
				out[j] = append(out[j], row[j])
			}
		}
	}

	return out
}

// IsStandard reports whether t contains 1..n, increasing along rows and
// down columns.
func (t Tableau) IsStandard() bool {
	n := t.Size()
	seen := make([]bool, n+1)
	for i, row := range t {
		if i > 0 && len(row) > len(t[i-1]) {
			return false
		}
		for j, e := range row {
			if e < 1 || e > n || seen[e] {
				return false
			}
			seen[e] = true
			if j > 0 && row[j-1] >= e {
				return false
			}
			if i > 0 && t[i-1][j] >= e {
				return false
			}
		}
	}

	return true
}

// StandardTableaux enumerates the standard tableaux of the given shape by
// choosing, for each entry 1..n in turn, the row it lands in.
func StandardTableaux(shape Partition) []Tableau {
	n := shape.Size()
	filled := make([]int, len(shape))
	var out []Tableau
	cur := make(Tableau, len(shape))
	for i := range cur {
		cur[i] = make([]int, 0, shape[i])
	}
	var rec func(entry int)
	rec = func(entry int) {
		if entry > n {
			cp := make(Tableau, len(cur))
			for i, row := range cur {
				cp[i] = append([]int(nil), row...)
			}
			out = append(out, cp)

			return
		}
		for i := range shape {
			// A new cell in row i keeps columns increasing iff the row
			// above is strictly longer so far.
			if filled[i] == shape[i] || (i > 0 && filled[i] == filled[i-1]) {
				continue
			}
			cur[i] = append(cur[i], entry)
			filled[i]++
			rec(entry + 1)
			filled[i]--
			cur[i] = cur[i][:len(cur[i])-1]
		}
	}
	rec(1)

	return out
}

// ReadingWord reads the rows from the last row up, each left to right. For
// a standard tableau this is a permutation of 1..n in one-line notation.
func (t Tableau) ReadingWord() []int {
	out := make([]int, 0, t.Size())
	for i := len(t) - 1; i >= 0; i-- {
		out = append(out, t[i]...)
	}

	return out
}

// Destandardize returns the smallest word on the alphabet 0,1,... whose
// standardization is the permutation s.
func Destandardize(s Perm) []int {
	n := len(s)
	inv := s.Inverse()
	w := make([]int, n)
	c := 0
	for i := 0; i < n; i++ {
		w[inv[i]] = c
		if i+1 < n && inv[i+1] < inv[i] {
			c++
		}
	}

	return w
}

// IndexFilling returns the semistandard tableau of the same shape with
// lowest content whose standardized reading word equals the reading word
// of t (Ariki, Terasoma, Yamada: higher Specht polynomials).
func (t Tableau) IndexFilling() Tableau {
	word := t.ReadingWord()
	s := make(Perm, len(word))
	for i, v := range word {
		s[i] = v - 1
	}
	w := Destandardize(s)

	// Refill the shape in reading order: last row first.
	out := make(Tableau, len(t))
	pos := 0
	for i := len(t) - 1; i >= 0; i-- {
		out[i] = append([]int(nil), w[pos:pos+len(t[i])]...)
		pos += len(t[i])
	}

	return out
}

// Cocharge returns the cocharge statistic of a standard tableau, the sum of
// the entries of its index filling.
func (t Tableau) Cocharge() int {
	total := 0
	for _, row := range t.IndexFilling() {
		for _, e := range row {
			total += e
		}
	}

	return total
}

// RowStabilizer returns the permutations of 0..n−1 preserving each row of t
// setwise. Entries of t are 1-based; the returned letters are 0-based.
func (t Tableau) RowStabilizer() []Perm {
	return permutationsWithin(t.Size(), letterBlocks(t))
}

// ColumnStabilizer returns the permutations of 0..n−1 preserving each
// column of t setwise.
func (t Tableau) ColumnStabilizer() []Perm {
	return permutationsWithin(t.Size(), letterBlocks(t.Conjugate()))
}

// letterBlocks converts the rows of u into 0-based letter blocks.
func letterBlocks(u Tableau) [][]int {
	out := make([][]int, len(u))
	for i, row := range u {
		out[i] = make([]int, len(row))
		for j, e := range row {
			out[i][j] = e - 1
		}
	}

	return out
}

// String renders the tableau as "[[1,2,4],[3,5]]".
func (t Tableau) String() string {
	rows := make([]string, len(t))
	for i, row := range t {
		parts := make([]string, len(row))
		for j, e := range row {
			parts[j] = fmt.Sprintf("%d", e)
		}
		rows[i] = "[" + strings.Join(parts, ",") + "]"
	}

	return "[" + strings.Join(rows, ",") + "]"
}
