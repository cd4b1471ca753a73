// SPDX-License-Identifier: MIT

// Package specht constructs higher Specht polynomials, the symmetric-group
// equivariant bases of the coinvariant spaces of K[x₁,...,xₙ].
//
// The family H_{P,Q}, indexed by pairs of standard tableaux of the same
// shape λ, is built from the index filling of P placed at the positions
// named by Q, followed by the Young idempotent of Q (row symmetrization,
// then signed column antisymmetrization). For fixed P the family (H_{P,Q})_Q
// spans an irreducible module of type λ.
//
// HigherSpechtHarmonic projects H_{P,Q} into the harmonic polynomials: the
// unique (up to scalar) element of a carefully chosen candidate span killed
// by every power sum p₁,...,pₙ acting as a differential operator. The
// candidates pair each lower-cocharge tableau with the monomial symmetric
// polynomials filling the cocharge gap.
//
// Reference: Ariki, Terasoma, Yamada, "Higher Specht polynomials for the
// symmetric group and the wreath product".
package specht
