// SPDX-License-Identifier: MIT

package combin

// Perm is a permutation of 0..n−1 in one-line notation: s[i] is the image
// of i.
type Perm []int

// Identity returns the identity permutation on n letters.
func Identity(n int) Perm {
	s := make(Perm, n)
	for i := range s {
		s[i] = i
	}

	return s
}

// Inverse returns s⁻¹.
func (s Perm) Inverse() Perm {
	inv := make(Perm, len(s))
	for i, v := range s {
		inv[v] = i
	}

	return inv
}

// Compose returns s∘t, the permutation mapping i to s[t[i]].
func (s Perm) Compose(t Perm) Perm {
	out := make(Perm, len(s))
	for i := range out {
		out[i] = s[t[i]]
	}

	return out
}

// Sign returns (−1)^(number of transpositions), computed from the cycle
// structure. Complexity: O(n).
func (s Perm) Sign() int {
	seen := make([]bool, len(s))
	sign := 1
	for i := range s {
		if seen[i] {
			continue
		}
		length := 0
		for j := i; !seen[j]; j = s[j] {
			seen[j] = true
			length++
		}
		if length%2 == 0 {
			sign = -sign
		}
	}

	return sign
}

// Permutations enumerates all n! permutations of 0..n−1 in lexicographic
// order. Permutations(0) yields the single empty permutation.
func Permutations(n int) []Perm {
	var out []Perm
	used := make([]bool, n)
	cur := make(Perm, 0, n)
	var rec func()
	rec = func() {
		if len(cur) == n {
			out = append(out, append(Perm(nil), cur...))

			return
		}
		for v := 0; v < n; v++ {
			if used[v] {
				continue
			}
			used[v] = true
			cur = append(cur, v)
			rec()
			cur = cur[:len(cur)-1]
			used[v] = false
		}
	}
	rec()

	return out
}

// permutationsWithin enumerates the permutations of 0..n−1 that fix every
// letter outside the given blocks and permute each block's letters among
// themselves. Blocks hold 0-based letters.
func permutationsWithin(n int, blocks [][]int) []Perm {
	out := []Perm{Identity(n)}
	for _, block := range blocks {
		if len(block) < 2 {
			continue
		}
		arrangements := Permutations(len(block))
		next := make([]Perm, 0, len(out)*len(arrangements))
		for _, base := range out {
			for _, a := range arrangements {
				s := append(Perm(nil), base...)
				for i, v := range a {
					s[block[i]] = base[block[v]]
				}
				next = append(next, s)
			}
		}
		out = next
	}

	return out
}
