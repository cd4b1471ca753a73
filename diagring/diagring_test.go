// SPDX-License-Identifier: MIT

package diagring_test

import (
	"testing"

	"github.com/katalvlaran/diagharm/combin"
	"github.com/katalvlaran/diagharm/diagring"
	"github.com/katalvlaran/diagharm/field"
	"github.com/katalvlaran/diagharm/grading"
	"github.com/katalvlaran/diagharm/subspace"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_Validation(t *testing.T) {
	_, err := diagring.New(field.Rationals(), 0, 2)
	assert.ErrorIs(t, err, diagring.ErrInvalidShape)

	d, err := diagring.New(field.Rationals(), 5, 3)
	require.NoError(t, err)
	assert.Equal(t, 5, d.NumCols())
	assert.Equal(t, 3, d.NumRows())
	assert.Equal(t, "3 rows of 5 variables over QQ", d.String())
	assert.Equal(t, "x12", d.Var(1, 2).String())
}

func TestMultidegree(t *testing.T) {
	d, err := diagring.New(field.Rationals(), 3, 2)
	require.NoError(t, err)

	// x00·x01²·x10²·x11³ has multidegree (3,5).
	p := d.Var(0, 0).Mul(d.Var(0, 1).Pow(2)).Mul(d.Var(1, 0).Pow(2)).Mul(d.Var(1, 1).Pow(3))
	deg, err := d.Multidegree(p)
	require.NoError(t, err)
	assert.Equal(t, grading.D(3, 5), deg)

	_, err = d.Multidegree(d.Polynomials().Zero())
	assert.ErrorIs(t, err, diagring.ErrZeroPolynomial)

	_, err = d.Multidegree(d.Var(0, 0).Add(d.Var(1, 0)))
	assert.ErrorIs(t, err, diagring.ErrNotHomogeneous)
}

func TestRowPermutation(t *testing.T) {
	d, err := diagring.New(field.Rationals(), 3, 5)
	require.NoError(t, err)

	// Rows permuted by the cycles (0 1 3)(2 4).
	sigma := combin.Perm{1, 3, 4, 0, 2}
	lifted := d.RowPermutation(sigma)
	require.Len(t, lifted, 15)
	// Variable (0,j) moves to (1,j), so letters 0,1,2 map to 3,4,5.
	assert.Equal(t, combin.Perm{3, 4, 5, 9, 10, 11, 12, 13, 14, 0, 1, 2, 6, 7, 8}, lifted)

	colSwap := d.ColumnPermutation(combin.Perm{1, 0, 2})
	assert.Equal(t, 1, colSwap[0], "(0,0) ↦ (0,1)")
	assert.Equal(t, 3+1, colSwap[3], "(1,0) ↦ (1,1)")
}

func TestPolarization(t *testing.T) {
	d, err := diagring.New(field.Rationals(), 4, 3)
	require.NoError(t, err)

	// p = x00·x10³·x11 + x21.
	p := d.Var(0, 0).Mul(d.Var(1, 0).Pow(3)).Mul(d.Var(1, 1)).Add(d.Var(2, 1))

	assert.Equal(t, "6*x00*x10*x11*x20", d.Polarization(p, 1, 2, 2).String())
	assert.Equal(t, "x00*x10^3*x21 + 3*x00*x10^2*x11*x20", d.Polarization(p, 1, 2, 1).String())
	assert.Equal(t, "6*x00^2*x10*x11", d.Polarization(p, 1, 0, 2).String())
	assert.Equal(t, "x01", d.Polarization(p, 2, 0, 1).String())
}

func TestPolarizationOperators_Shifts(t *testing.T) {
	d, err := diagring.New(field.Rationals(), 4, 2)
	require.NoError(t, err)

	down := d.PolarizationOperators(diagring.Down)
	require.Len(t, down, 3)
	for _, shift := range []grading.Degree{grading.D(-1, 1), grading.D(-2, 1), grading.D(-3, 1)} {
		assert.Len(t, down[shift], 1, "shift %v", shift)
	}

	all := d.PolarizationOperators(diagring.All)
	assert.Len(t, all, 6)
	assert.Len(t, all[grading.D(1, -2)], 1)
}

func TestHigherSpecht_FirstRow(t *testing.T) {
	d, err := diagring.New(field.Rationals(), 3, 2)
	require.NoError(t, err)

	h, err := d.HigherSpecht(combin.Partition{3}.InitialTableau(), nil, false)
	require.NoError(t, err)
	assert.Equal(t, "6", h.String())

	h, err = d.HigherSpecht(combin.Tableau{{1, 3}, {2}}, nil, false)
	require.NoError(t, err)
	assert.Equal(t, "-x00*x01 + x01*x02", h.String())

	h, err = d.HigherSpecht(combin.Tableau{{1, 2}, {3}}, nil, false)
	require.NoError(t, err)
	assert.Equal(t, "-2*x00 + 2*x02", h.String())

	_, err = d.HigherSpecht(combin.Partition{2, 2}.InitialTableau(), nil, false)
	assert.ErrorIs(t, err, diagring.ErrShapeSize)
}

func TestHarmonicSpaceByShape_Trivial(t *testing.T) {
	d, err := diagring.New(field.Rationals(), 3, 2)
	require.NoError(t, err)

	S, err := d.HarmonicSpaceByShape(combin.Partition{3})
	require.NoError(t, err)
	dims, err := S.Dimensions()
	require.NoError(t, err)
	assert.Equal(t, map[subspace.Degree]int{grading.D(0, 0): 1}, dims,
		"the trivial shape contributes the constants")
}

func TestHarmonicSpaceByShape_Sign(t *testing.T) {
	d, err := diagring.New(field.Rationals(), 3, 2)
	require.NoError(t, err)

	// The sign shape: the bigraded dimensions are the coefficients of the
	// q,t-Catalan polynomial C₃(q,t) = q³ + q²t + qt² + t³ + qt.
	S, err := d.HarmonicSpaceByShape(combin.Partition{1, 1, 1})
	require.NoError(t, err)
	dims, err := S.Dimensions()
	require.NoError(t, err)
	assert.Equal(t, map[subspace.Degree]int{
		grading.D(3, 0): 1,
		grading.D(2, 1): 1,
		grading.D(1, 2): 1,
		grading.D(0, 3): 1,
		grading.D(1, 1): 1,
	}, dims)
}

func TestHarmonicCharacter(t *testing.T) {
	d, err := diagring.New(field.Rationals(), 3, 2)
	require.NoError(t, err)

	char, err := d.HarmonicCharacter(combin.Partition{3})
	require.NoError(t, err)
	assert.Equal(t, map[grading.Degree]int{grading.D(0, 0): 1}, char)

	char, err = d.HarmonicCharacter(combin.Partition{1, 1, 1})
	require.NoError(t, err)
	assert.Equal(t, map[grading.Degree]int{
		grading.D(3, 0): 1,
		grading.D(1, 1): 1,
	}, char, "sign shape: s₍₃₎ + s₍₁,₁₎ as a GL₂ character")

	char, err = d.HarmonicCharacter(combin.Partition{2, 1})
	require.NoError(t, err)
	assert.Equal(t, map[grading.Degree]int{
		grading.D(1, 0): 1,
		grading.D(2, 0): 1,
	}, char, "standard shape: s₍₁₎ + s₍₂₎ as a GL₂ character")
}
