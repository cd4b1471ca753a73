// SPDX-License-Identifier: MIT

// Package hilbert renders degree → dimension maps as Hilbert series: plain
// q-polynomials for singly graded spaces, polynomials in q0..q_{r−1} for
// multigraded ones. Rendering is deterministic (total degree descending,
// then lexicographically descending exponents), so series strings are
// directly comparable and suitable for golden files.
package hilbert
