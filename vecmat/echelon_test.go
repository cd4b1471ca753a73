// SPDX-License-Identifier: MIT

package vecmat_test

import (
	"testing"

	"github.com/katalvlaran/diagharm/field"
	"github.com/katalvlaran/diagharm/freemod"
	"github.com/katalvlaran/diagharm/vecmat"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestEchelon_AcceptReject covers the basic accept/reject contract:
// cardinality grows by exactly one on acceptance and zero on rejection.
func TestEchelon_AcceptReject(t *testing.T) {
	F := field.Rationals()
	M := freemod.New(F)
	b1, b2, b4 := M.Monomial(1), M.Monomial(2), M.Monomial(4)

	e := vecmat.NewEchelon(M, nil)

	ok, err := e.Extend(b1.Sub(b2))
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, 1, e.Cardinality())

	ok, err = e.Extend(b2.Sub(b4))
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, 2, e.Cardinality())

	// b1 - b4 = (b1-b2) + (b2-b4): dependent, rejected, state unchanged.
	ok, err = e.Extend(b1.Sub(b4))
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Equal(t, 2, e.Cardinality())
	assert.Equal(t, 2, e.Dense().Rows(), "rejected candidate is discarded")

	// The zero vector is always dependent.
	ok, err = e.Extend(M.Zero())
	require.NoError(t, err)
	assert.False(t, ok)

	assert.Equal(t, 4, e.Stats().Extend)
	assert.Equal(t, 2, e.Stats().Dimension)
}

// TestEchelon_PermutationInvariance: for any insertion order of a fixed
// vector set, the final cardinality equals the dimension of the span.
func TestEchelon_PermutationInvariance(t *testing.T) {
	F := field.Rationals()
	M := freemod.New(F)
	vectors := []*freemod.Elem{
		M.Monomial(0),
		M.Monomial(1),
		M.Monomial(0).Add(M.Monomial(1)),           // dependent on the two above
		M.Monomial(2).Scale(F.FromInt(3)),          // new direction
		M.Monomial(1).Sub(M.Monomial(2)),           // dependent
		M.Monomial(0).Add(M.Monomial(2).Scale(F.FromInt(-7))), // dependent
	}
	const wantDim = 3

	perms := permutations(len(vectors))
	for _, p := range perms {
		e := vecmat.NewEchelon(M, nil)
		for _, idx := range p {
			_, err := e.Extend(vectors[idx])
			require.NoError(t, err)
		}
		assert.Equal(t, wantDim, e.Cardinality(), "order %v must not change the dimension", p)
	}
}

// TestEchelon_BasisSubsetOfInput: accepted vectors are returned verbatim in
// acceptance order.
func TestEchelon_BasisSubsetOfInput(t *testing.T) {
	F := field.Rationals()
	M := freemod.New(F)
	v1 := M.Monomial("a")
	v2 := M.Monomial("a").Scale(F.FromInt(2)) // dependent
	v3 := M.Monomial("b")

	e := vecmat.NewEchelon(M, nil)
	for _, v := range []*freemod.Elem{v1, v2, v3} {
		_, err := e.Extend(v)
		require.NoError(t, err)
	}

	basis := e.Basis()
	require.Len(t, basis, 2)
	assert.Same(t, v1, basis[0].(*freemod.Elem))
	assert.Same(t, v3, basis[1].(*freemod.Elem))
}

// TestEchelon_AmbientMismatchFailsExtend: decomposition failures surface
// and leave the store untouched.
func TestEchelon_AmbientMismatchFailsExtend(t *testing.T) {
	F := field.Rationals()
	M := freemod.New(F)
	foreign := freemod.New(F)

	e := vecmat.NewEchelon(M, nil)
	_, err := e.Extend(foreign.Monomial(1))
	assert.ErrorIs(t, err, vecmat.ErrAmbientMismatch)
	assert.Equal(t, 0, e.Cardinality())
}

// TestEchelon_NotEchelonPrecondition: corrupting the embedded row store
// trips the precondition sentinel.
func TestEchelon_NotEchelonPrecondition(t *testing.T) {
	F := field.Rationals()
	M := freemod.New(F)

	e := vecmat.NewEchelon(M, nil)
	require.NoError(t, e.AddVector(M.Monomial(1))) // bypasses Extend: clears the flag

	_, err := e.Extend(M.Monomial(2))
	assert.ErrorIs(t, err, vecmat.ErrNotEchelon)
}

// permutations enumerates all orderings of {0,...,n-1}; n stays tiny here.
func permutations(n int) [][]int {
	idx := make([]int, n)
	for i := range idx {
		idx[i] = i
	}
	var out [][]int
	var rec func(k int)
	rec = func(k int) {
		if k == n {
			p := make([]int, n)
			copy(p, idx)
			out = append(out, p)

			return
		}
		for i := k; i < n; i++ {
			idx[k], idx[i] = idx[i], idx[k]
			rec(k + 1)
			idx[k], idx[i] = idx[i], idx[k]
		}
	}
	rec(0)

	return out
}
