// SPDX-License-Identifier: MIT

package subspace

import (
	"fmt"

	"github.com/katalvlaran/diagharm/vecmat"
)

// ungradedDegree is the neutral bucket key used by NewUngraded.
const ungradedDegree = 0

// workItem is one pending operator application: v was accepted at degree
// src; op's image of v is to be offered to bucket dst.
type workItem struct {
	v   vecmat.Vector
	src Degree
	dst Degree
	op  Operator
}

// Subspace is the graded closure of a set of generators under a family of
// degree-shifting operators. Construction seeds the buckets and the
// worklist; Finalize (called lazily by the query methods) drains the
// worklist exactly once and memoizes.
//
// Not safe for concurrent use. Independent instances share no state.
type Subspace struct {
	ambient    vecmat.Ambient
	operators  Operators
	addDegrees AddDegreesFunc
	bases      map[Degree]*vecmat.Echelon
	todo       []workItem
	finalized  bool
	stats      *vecmat.Stats
}

// New constructs the closure of generators under operators over ambient.
//
// Each generator list is filtered through its bucket's echelon store (only
// the independent subset seeds the closure), and every accepted generator
// is scheduled against every operator shift. The heavy work happens later,
// in Finalize.
func New(ambient vecmat.Ambient, generators Generators, operators Operators, addDegrees AddDegreesFunc, opts ...Option) (*Subspace, error) {
	if ambient == nil {
		return nil, ErrNilAmbient
	}
	if addDegrees == nil {
		return nil, ErrNilAddDegrees
	}
	s := &Subspace{
		ambient:    ambient,
		operators:  operators,
		addDegrees: addDegrees,
		bases:      make(map[Degree]*vecmat.Echelon),
		stats:      &vecmat.Stats{},
	}
	for _, opt := range opts {
		opt(s)
	}

	for d, gens := range generators {
		basis := vecmat.NewEchelon(ambient, s.stats)
		s.bases[d] = basis
		var accepted []vecmat.Vector
		for _, g := range gens {
			ok, err := basis.Extend(g)
			if err != nil {
				return nil, fmt.Errorf("subspace: seeding degree %v: %w", d, err)
			}
			if ok {
				accepted = append(accepted, g)
			}
		}
		s.schedule(d, accepted)
	}

	return s, nil
}

// NewUngraded constructs the closure of generators under operators without
// any grading: a single bucket at a neutral degree holds everything, and
// all operator shifts collapse onto it.
func NewUngraded(ambient vecmat.Ambient, generators []vecmat.Vector, operators []func(vecmat.Vector) vecmat.Vector, opts ...Option) (*Subspace, error) {
	ops := make([]Operator, len(operators))
	for i, f := range operators {
		ops[i] = Lift(f)
	}
	keep := func(Degree, Degree) (Degree, error) { return ungradedDegree, nil }

	return New(ambient,
		Generators{ungradedDegree: generators},
		Operators{ungradedDegree: ops},
		keep, opts...)
}

// schedule enqueues one worklist item per (vector, operator) pair for every
// shift whose combination with d survives pruning. Pruned shifts are
// skipped silently; that is the engine's only use of the error value.
func (s *Subspace) schedule(d Degree, vectors []vecmat.Vector) {
	if len(vectors) == 0 {
		return
	}
	for shift, ops := range s.operators {
		dst, err := s.addDegrees(d, shift)
		if err != nil {
			continue // pruning, not a failure
		}
		for _, op := range ops {
			for _, v := range vectors {
				s.todo = append(s.todo, workItem{v: v, src: d, dst: dst, op: op})
			}
		}
	}
}

// Finalize drains the worklist to exhaustion: pop an item, apply the
// operator, offer the image to the target bucket, and on acceptance
// schedule the image like a fresh generator. Idempotent — the second call
// is a no-op.
//
// The drain order is last-in-first-out; it influences only the order
// operators observe vectors, never the final per-degree dimensions.
// Finalize must run to completion on one goroutine: interrupting it would
// leave an echelon store mid-update. Termination is the caller's contract
// (see the package documentation).
func (s *Subspace) Finalize() error {
	if s.finalized {
		return nil
	}
	for len(s.todo) > 0 {
		item := s.todo[len(s.todo)-1]
		s.todo = s.todo[:len(s.todo)-1]

		w := item.op(item.v, item.src)
		basis, ok := s.bases[item.dst]
		if !ok {
			basis = vecmat.NewEchelon(s.ambient, s.stats)
			s.bases[item.dst] = basis
		}
		accepted, err := basis.Extend(w)
		if err != nil {
			return fmt.Errorf("subspace: extending degree %v: %w", item.dst, err)
		}
		if accepted {
			s.schedule(item.dst, []vecmat.Vector{w})
		}
	}
	s.finalized = true

	return nil
}

// Dimension finalizes and returns the total dimension of the closure, the
// sum of basis sizes over all degree buckets.
func (s *Subspace) Dimension() (int, error) {
	if err := s.Finalize(); err != nil {
		return 0, err
	}
	total := 0
	for _, basis := range s.bases {
		total += basis.Cardinality()
	}

	return total, nil
}

// Dimensions finalizes and returns the degree → dimension mapping. Buckets
// that never accepted a vector are omitted.
func (s *Subspace) Dimensions() (map[Degree]int, error) {
	if err := s.Finalize(); err != nil {
		return nil, err
	}
	dims := make(map[Degree]int, len(s.bases))
	for d, basis := range s.bases {
		if n := basis.Cardinality(); n > 0 {
			dims[d] = n
		}
	}

	return dims, nil
}

// Bases finalizes and returns the per-degree echelon stores, for
// post-processing such as annihilator-based character extraction. The map
// and the stores are live — callers must treat them as read-only.
func (s *Subspace) Bases() (map[Degree]*vecmat.Echelon, error) {
	if err := s.Finalize(); err != nil {
		return nil, err
	}

	return s.bases, nil
}

// Matrix finalizes and returns the coordinate matrix of the single bucket;
// valid only for the ungraded case (ErrGraded otherwise).
func (s *Subspace) Matrix() (*vecmat.Dense, error) {
	if err := s.Finalize(); err != nil {
		return nil, err
	}
	if len(s.bases) != 1 {
		return nil, ErrGraded
	}
	for _, basis := range s.bases {
		return basis.Dense(), nil
	}

	return nil, ErrGraded // unreachable
}

// Stats returns the shared work counters (extensions attempted, vectors
// accepted, rows added).
func (s *Subspace) Stats() *vecmat.Stats { return s.stats }
