// SPDX-License-Identifier: MIT

package subspace

import "github.com/katalvlaran/diagharm/vecmat"

// Degree is an opaque bucket key. It must be comparable (usable as a map
// key); nothing else is assumed — no ordering, no arithmetic. grading.Degree
// is the usual choice.
type Degree any

// Generators maps each degree to the generator vectors supplied at that
// bucket.
type Generators map[Degree][]vecmat.Vector

// Operator is a linear endomorphism of the ambient space. src is the degree
// of the bucket the input vector was accepted into; operators that do not
// depend on their input's degree simply ignore it.
type Operator func(v vecmat.Vector, src Degree) vecmat.Vector

// Operators maps each degree shift to the operators carrying that shift.
type Operators map[Degree][]Operator

// AddDegreesFunc combines a bucket degree with an operator shift into the
// target bucket degree. Returning a non-nil error prunes the combination:
// the engine skips that shift for that vector and moves on.
type AddDegreesFunc func(d, shift Degree) (Degree, error)

// Lift adapts a plain vector endomorphism into an Operator.
func Lift(f func(v vecmat.Vector) vecmat.Vector) Operator {
	return func(v vecmat.Vector, _ Degree) vecmat.Vector { return f(v) }
}
