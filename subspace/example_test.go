// SPDX-License-Identifier: MIT

package subspace_test

import (
	"fmt"

	"github.com/katalvlaran/diagharm/field"
	"github.com/katalvlaran/diagharm/grading"
	"github.com/katalvlaran/diagharm/poly"
	"github.com/katalvlaran/diagharm/subspace"
	"github.com/katalvlaran/diagharm/vecmat"
)

// ExampleNew closes the Vandermonde determinant of three variables under
// all partial derivatives and reads off the graded dimensions.
func ExampleNew() {
	R, _ := poly.NewRing(field.Rationals(), "x", "y", "z")
	x, y, z := R.Gen(0), R.Gen(1), R.Gen(2)
	delta := x.Sub(y).Mul(y.Sub(z)).Mul(x.Sub(z))

	ops := make([]subspace.Operator, R.NumVars())
	for i := range ops {
		idx := i
		ops[i] = subspace.Lift(func(v vecmat.Vector) vecmat.Vector {
			return v.(*poly.Poly).Derivative(idx, 1)
		})
	}

	S, _ := subspace.New(R,
		subspace.Generators{grading.D(3): {delta}},
		subspace.Operators{grading.D(-1): ops},
		subspace.Graded(grading.SumPruneNegative))

	dim, _ := S.Dimension()
	dims, _ := S.Dimensions()
	fmt.Println("dimension:", dim)
	for d := 3; d >= 0; d-- {
		fmt.Printf("degree %d: %d\n", d, dims[grading.D(d)])
	}
	// Output:
	// dimension: 6
	// degree 3: 1
	// degree 2: 2
	// degree 1: 2
	// degree 0: 1
}
