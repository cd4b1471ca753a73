// Package diagharm computes diagonally-harmonic polynomial spaces and the
// associated symmetric-group / general-linear-group characters, on top of a
// generic graded subspace-closure engine with exact incremental linear
// algebra.
//
// 🚀 What is diagharm?
//
//	A pure-Go library for exact computational commutative algebra:
//		• Exact fields: rationals (big.Rat) and prime fields GF(p)
//		• Incremental row-echelon stores for linear-independence testing
//		• Annihilator (kernel) bases for bilinear actions
//		• A graded closure engine: smallest subspace containing a set of
//		  generators and stable under degree-shifting linear operators
//		• Sparse multivariate polynomials and polynomial differential operators
//		• Partitions, standard tableaux, Young idempotents, Specht polynomials
//		• Diagonal polynomial rings with polarization operators and
//		  harmonic-space / harmonic-character computations
//
// ✨ Why choose diagharm?
//
//   - Exact by construction – no floating point, no tolerances; every
//     independence test is a true zero/nonzero decision
//   - Incremental – bases grow vector by vector; nothing is recomputed
//   - Generic – any ambient space works, given a base field and a
//     decomposition capability
//
// Package layout:
//
//	field/     — exact field abstraction: QQ and GF(p)
//	ranker/    — append-only basis-key → column indexer
//	vecmat/    — growable exact matrices, echelon stores, annihilators
//	subspace/  — graded subspace-closure engine (worklist fixpoint)
//	grading/   — integer multidegrees used as bucket keys
//	poly/      — sparse multivariate polynomials over exact fields
//	freemod/   — free modules on arbitrary basis keys
//	combin/    — partitions, permutations, standard tableaux
//	specht/    — Young idempotents and (higher) Specht polynomials
//	diagring/  — diagonal polynomial rings, polarization, harmonic spaces
//	hilbert/   — Hilbert-series presentation of graded dimensions
//	charcache/ — explicit on-disk memo store for computed characters
//
// Quick example — the derivatives of the Vandermonde determinant in three
// variables span a space of dimension 3! = 6:
//
//	R, _ := poly.NewRing(field.Rationals(), "x", "y", "z")
//	x, y, z := R.Gen(0), R.Gen(1), R.Gen(2)
//	delta := x.Sub(y).Mul(y.Sub(z)).Mul(x.Sub(z))
//	S, _ := subspace.New(R, subspace.Generators{grading.D(3): {delta}}, ...)
//	dim, _ := S.Dimension() // 6
//
//	go get github.com/katalvlaran/diagharm
package diagharm
