// SPDX-License-Identifier: MIT

package freemod_test

import (
	"testing"

	"github.com/katalvlaran/diagharm/field"
	"github.com/katalvlaran/diagharm/freemod"
	"github.com/katalvlaran/diagharm/vecmat"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestElem_Arithmetic checks module-level add/scale and zero collapsing.
func TestElem_Arithmetic(t *testing.T) {
	F := field.Rationals()
	M := freemod.New(F)

	v := M.Term(1, F.FromInt(2)).Add(M.Monomial(4))
	w := M.Term(1, F.FromInt(-2)).Add(M.Monomial(8))

	sum := v.Add(w)
	assert.True(t, sum.Coeff(1).IsZero(), "opposite coefficients cancel")
	assert.True(t, sum.Coeff(4).Equal(F.One()))
	assert.True(t, sum.Coeff(8).Equal(F.One()))

	assert.True(t, v.Sub(v).IsZero(), "v - v = 0")
	assert.True(t, v.Scale(F.Zero()).IsZero(), "0·v = 0")
	assert.Equal(t, "1*B[4] + 2*B[1]", v.String())
}

// TestModule_Decompose verifies the ambient capability and its mismatch error.
func TestModule_Decompose(t *testing.T) {
	F := field.Rationals()
	M := freemod.New(F)
	other := freemod.New(F)

	v := M.Term("a", F.FromInt(3))
	terms, err := M.Decompose(v)
	require.NoError(t, err)
	require.Len(t, terms, 1)
	assert.Equal(t, "a", terms[0].Key)
	assert.True(t, terms[0].Coeff.Equal(F.FromInt(3)))

	_, err = other.Decompose(v)
	assert.ErrorIs(t, err, vecmat.ErrAmbientMismatch, "foreign module element must be rejected")

	_, err = M.Decompose("not a vector")
	assert.ErrorIs(t, err, vecmat.ErrAmbientMismatch)
}

// TestModule_Combine reconstructs a linear combination exactly.
func TestModule_Combine(t *testing.T) {
	F := field.Rationals()
	M := freemod.New(F)

	b1, b2 := M.Monomial(1), M.Monomial(2)
	got := M.Combine(
		[]field.Element{field.Rat(1, 2), F.FromInt(-3)},
		[]vecmat.Vector{b1, b2},
	)

	want := M.Term(1, field.Rat(1, 2)).Add(M.Term(2, F.FromInt(-3)))
	assert.True(t, got.(*freemod.Elem).Equal(want))
}
