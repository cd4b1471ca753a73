// SPDX-License-Identifier: MIT

// Package field defines the exact-arithmetic scalar abstraction used by all
// matrix and polynomial computations in diagharm.
//
// A Field hands out Elements; Elements are immutable values supporting the
// usual ring/field operations. Two implementations are provided:
//
//   - Rationals() — the field ℚ, backed by math/big.Rat (arbitrary precision)
//   - Prime(p)    — the finite field GF(p) for a prime modulus p < 2³¹
//
// Exactness policy: every comparison is a true zero/nonzero decision. There
// is no epsilon, no rounding, no floating point anywhere. Correctness of
// dimension counts downstream (echelon stores, annihilators, closures)
// depends on this.
//
// Elements of distinct fields must never be mixed; doing so is a programmer
// error and panics. Division by zero likewise panics: all elimination code
// checks pivots for zero before inverting.
package field
