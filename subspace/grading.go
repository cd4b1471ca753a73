// SPDX-License-Identifier: MIT

package subspace

import "github.com/katalvlaran/diagharm/grading"

// Graded adapts a grading.Degree combination function (grading.Sum,
// grading.SumPruneNegative, grading.SumSymmetric) to an AddDegreesFunc.
// Buckets and shifts must then all be grading.Degree values; anything else
// is a programmer error and panics on the type assertion.
func Graded(f func(d1, d2 grading.Degree) (grading.Degree, error)) AddDegreesFunc {
	return func(d, shift Degree) (Degree, error) {
		out, err := f(d.(grading.Degree), shift.(grading.Degree))
		if err != nil {
			return nil, err
		}

		return out, nil
	}
}
