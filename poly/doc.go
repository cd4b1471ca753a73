// SPDX-License-Identifier: MIT

// Package poly implements sparse multivariate polynomials over an exact
// field, the main ambient space of the diagonal-harmonic computations.
//
// A Ring fixes the base field and the variable names; a Poly is a finite
// map from monomials (exponent vectors) to nonzero coefficients. All
// elements are immutable — every operation returns a fresh polynomial.
//
// Beyond ring arithmetic the package provides:
//
//   - Derivative — iterated partial derivative in one variable
//   - DiffAction — a polynomial applied as a differential operator to
//     another (each variable substituted by ∂/∂x), the pairing used by
//     harmonic-space and annihilator computations
//   - Act — the permutation action on variables
//
// Ring implements vecmat.Ambient: polynomials decompose into (monomial,
// coefficient) pairs, monomials being the stable basis keys.
package poly
