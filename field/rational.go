// SPDX-License-Identifier: MIT

package field

import "math/big"

// rationals is the field ℚ. It is stateless; a single shared instance is
// handed out by Rationals().
type rationals struct{}

var qq Field = rationals{}

// Rationals returns the field of rational numbers backed by math/big.Rat.
// All elements are arbitrary-precision; arithmetic never overflows.
func Rationals() Field { return qq }

func (rationals) Zero() Element { return ratElem{v: new(big.Rat)} }

func (rationals) One() Element { return ratElem{v: big.NewRat(1, 1)} }

func (rationals) FromInt(n int64) Element { return ratElem{v: big.NewRat(n, 1)} }

func (rationals) String() string { return "QQ" }

// Rat embeds the fraction n/d into ℚ. d must be nonzero (big.Rat panics
// otherwise, which matches the division-by-zero policy of this package).
func Rat(n, d int64) Element { return ratElem{v: big.NewRat(n, d)} }

// ratElem is an immutable rational scalar. The inner *big.Rat is never
// mutated after construction.
type ratElem struct {
	v *big.Rat
}

func (a ratElem) Add(b Element) Element {
	return ratElem{v: new(big.Rat).Add(a.v, b.(ratElem).v)}
}

func (a ratElem) Sub(b Element) Element {
	return ratElem{v: new(big.Rat).Sub(a.v, b.(ratElem).v)}
}

func (a ratElem) Mul(b Element) Element {
	return ratElem{v: new(big.Rat).Mul(a.v, b.(ratElem).v)}
}

func (a ratElem) Neg() Element {
	return ratElem{v: new(big.Rat).Neg(a.v)}
}

func (a ratElem) Inv() Element {
	if a.v.Sign() == 0 {
		panic("field: inverse of zero in QQ")
	}

	return ratElem{v: new(big.Rat).Inv(a.v)}
}

func (a ratElem) IsZero() bool { return a.v.Sign() == 0 }

func (a ratElem) Equal(b Element) bool { return a.v.Cmp(b.(ratElem).v) == 0 }

func (a ratElem) Field() Field { return qq }

// String renders "3", "-1/2", etc. via big.Rat.RatString.
func (a ratElem) String() string { return a.v.RatString() }
