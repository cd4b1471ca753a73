// SPDX-License-Identifier: MIT

package vecmat

import "fmt"

// Actor is an opaque element acting on ambient vectors (a polynomial used
// as a differential operator, a group-algebra element, ...).
type Actor any

// Action is a bilinear pairing of two opaque operands. For a left action
// the first operand is the actor; AnnihilatorBasis swaps the arguments when
// the actors act on the right.
type Action func(x, y any) Vector

// Side selects on which side of the basis the actors act.
type Side int

const (
	// Left: images are action(actor, b).
	Left Side = iota
	// Right: images are action(b, actor); reduced to a left action by
	// swapping the argument order.
	Right
)

// AnnihilatorBasis returns a basis of the annihilator of S in the span of B:
// all combinations of the (assumed linearly independent) vectors B killed
// by the action of every actor in S.
//
// For each actor, the images of all of B are assembled as a row block via a
// plain row store over image (one row per basis vector); the blocks are
// concatenated horizontally across actors, and the left kernel of the full
// concatenation is computed over the image's base field. Each kernel vector
// (c_1, ..., c_k) is reconstructed in the domain as Σ c_i·B_i.
//
// image is the ambient the action maps into; pass nil when it coincides
// with domain. The returned combinations are linearly independent, and
// their count equals len(B) − rank(stacked action-image matrix).
//
// Complexity: O(|S|·|B|) action applications plus one exact elimination on
// a |B| × (Σ block widths) matrix.
func AnnihilatorBasis(domain Ambient, B []Vector, S []Actor, action Action, side Side, image Ambient) ([]Vector, error) {
	if len(B) == 0 {
		return nil, nil
	}
	if image == nil {
		image = domain
	}

	apply := func(s Actor, b Vector) Vector {
		if side == Right {
			return action(b, s)
		}

		return action(s, b)
	}

	stacked, err := NewDense(image.BaseField(), len(B), 0)
	if err != nil {
		return nil, err
	}
	for _, s := range S {
		block := NewMatrix(image, nil)
		for _, b := range B {
			if err = block.AddVector(apply(s, b)); err != nil {
				return nil, fmt.Errorf("vecmat: annihilator image: %w", err)
			}
		}
		if stacked, err = stacked.Augment(block.Dense()); err != nil {
			return nil, err
		}
	}

	kernel := stacked.LeftKernel()
	result := make([]Vector, 0, len(kernel))
	for _, coeffs := range kernel {
		result = append(result, domain.Combine(coeffs, B))
	}

	return result, nil
}
