// SPDX-License-Identifier: MIT

// Package diagring implements the diagonal polynomial ring: r rows of n
// variables x₍ᵢⱼ₎ over an exact field, graded by the ℤʳ multidegree that
// sums exponents row by row.
//
// The package provides the two operator families of the theory:
//   - row permutations, the Sₙ-action permuting columns and the GLᵣ-weight
//     preserving row swaps;
//   - polarization operators E_{i1→i2,d} = Σⱼ x_{i2,j}·∂ᵈ/∂x_{i1,j}ᵈ,
//     which shift the multidegree by −d·eᵢ₁ + eᵢ₂.
//
// On top of these sit the harmonic computations: HarmonicSpaceByShape
// closes the harmonic higher Specht polynomials of a shape under downward
// polarization, and HarmonicCharacter extracts the GLᵣ character as the
// multidegree-indexed count of highest-weight vectors (elements killed by
// every lowering polarization).
package diagring
