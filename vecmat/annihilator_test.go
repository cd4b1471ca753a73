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

// TestAnnihilatorBasis_IdentityActionIsInjective: with the identity action
// nothing is annihilated (scenario: B = {x, y}, S = {id} → empty result).
func TestAnnihilatorBasis_IdentityActionIsInjective(t *testing.T) {
	F := field.Rationals()
	M := freemod.New(F)
	B := []vecmat.Vector{M.Monomial("x"), M.Monomial("y")}

	identity := func(_, v any) vecmat.Vector { return v }

	ann, err := vecmat.AnnihilatorBasis(M, B, []vecmat.Actor{"id"}, identity, vecmat.Left, nil)
	require.NoError(t, err)
	assert.Empty(t, ann, "an injective action has a trivial annihilator")
}

// TestAnnihilatorBasis_NontrivialKernel: the action v ↦ (v_x − v_y)·B[img]
// kills exactly the multiples of x + y.
func TestAnnihilatorBasis_NontrivialKernel(t *testing.T) {
	F := field.Rationals()
	M := freemod.New(F)
	image := freemod.New(F)

	x, y := M.Monomial("x"), M.Monomial("y")
	B := []vecmat.Vector{x, y}

	diff := func(_, v any) vecmat.Vector {
		e := v.(*freemod.Elem)

		return image.Term("img", e.Coeff("x").Sub(e.Coeff("y")))
	}

	ann, err := vecmat.AnnihilatorBasis(M, B, []vecmat.Actor{"d"}, diff, vecmat.Left, image)
	require.NoError(t, err)
	require.Len(t, ann, 1, "count = rank(B) - rank(image matrix) = 2 - 1")

	got := ann[0].(*freemod.Elem)
	assert.True(t, diff("d", got).(*freemod.Elem).IsZero(), "result is annihilated exactly")
	assert.True(t, got.Coeff("x").Equal(got.Coeff("y")), "kernel is spanned by x + y")
}

// TestAnnihilatorBasis_RightSide: right actions reduce to left actions by
// swapping the argument order.
func TestAnnihilatorBasis_RightSide(t *testing.T) {
	F := field.Rationals()
	M := freemod.New(F)

	x, y := M.Monomial("x"), M.Monomial("y")
	B := []vecmat.Vector{x, y}

	// With side=Right the engine invokes act(vector, actor): the vector
	// arrives first. Keep only the x-coefficient; kernel = span{y}.
	act := func(a, _ any) vecmat.Vector {
		v := a.(*freemod.Elem)

		return M.Term("x", v.Coeff("x"))
	}

	ann, err := vecmat.AnnihilatorBasis(M, B, []vecmat.Actor{"s"}, act, vecmat.Right, nil)
	require.NoError(t, err)
	require.Len(t, ann, 1)
	got := ann[0].(*freemod.Elem)
	assert.True(t, got.Coeff("x").IsZero(), "only y survives the kernel")
	assert.False(t, got.Coeff("y").IsZero())
}

// TestAnnihilatorBasis_EmptyActorsKeepEverything: with no actors the whole
// span is annihilated — one combination per basis vector.
func TestAnnihilatorBasis_EmptyActorsKeepEverything(t *testing.T) {
	F := field.Rationals()
	M := freemod.New(F)
	B := []vecmat.Vector{M.Monomial(0), M.Monomial(1)}

	ann, err := vecmat.AnnihilatorBasis(M, B, nil, nil, vecmat.Left, nil)
	require.NoError(t, err)
	assert.Len(t, ann, 2, "empty actor family annihilates the whole span")
}

// TestAnnihilatorBasis_EmptyBasis returns no combinations.
func TestAnnihilatorBasis_EmptyBasis(t *testing.T) {
	M := freemod.New(field.Rationals())

	ann, err := vecmat.AnnihilatorBasis(M, nil, []vecmat.Actor{"s"}, func(_, v any) vecmat.Vector { return v }, vecmat.Left, nil)
	require.NoError(t, err)
	assert.Empty(t, ann)
}
