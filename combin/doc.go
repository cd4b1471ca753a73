// SPDX-License-Identifier: MIT

// Package combin provides the small combinatorics toolkit behind the Specht
// and harmonic-space constructions: integer partitions, permutations with
// sign, standard Young tableaux, reading words, index fillings and cocharge.
//
// Conventions:
//   - Partition: weakly decreasing positive parts, e.g. Partition{3, 2, 1}.
//   - Tableau: rows top-down (English convention), entries 1..n for
//     standard tableaux.
//   - Perm: one-line notation on 0..n−1; Perm{1, 2, 0} maps 0↦1, 1↦2, 2↦0.
//
// All enumerations are deterministic: partitions in reverse lexicographic
// order, permutations in lexicographic order, standard tableaux in the order
// induced by the row choices for successive entries.
package combin
