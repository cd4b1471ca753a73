// SPDX-License-Identifier: MIT

package ranker

// Key identifies a basis element of some ambient space. Keys must be
// comparable (usable as map keys) and stable: equal keys always denote the
// same basis element.
type Key any

// Ranker maps keys to dense column indices, append-only.
//
// Not safe for concurrent use; each computation instance owns its rankers.
type Ranker struct {
	rank   map[Key]int
	unrank []Key
}

// New returns an empty Ranker.
func New() *Ranker {
	return &Ranker{rank: make(map[Key]int)}
}

// Rank returns the column index of k, assigning the next free index
// (starting at 0, monotonically increasing) on first sight.
// Complexity: O(1) amortized.
func (r *Ranker) Rank(k Key) int {
	if i, ok := r.rank[k]; ok {
		return i
	}
	i := len(r.unrank)
	r.rank[k] = i
	r.unrank = append(r.unrank, k)

	return i
}

// Unrank returns the key assigned to index i and whether such a key exists.
// Complexity: O(1).
func (r *Ranker) Unrank(i int) (Key, bool) {
	if i < 0 || i >= len(r.unrank) {
		return nil, false
	}

	return r.unrank[i], true
}

// Len returns the number of distinct keys ranked so far.
func (r *Ranker) Len() int { return len(r.unrank) }
