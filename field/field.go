// SPDX-License-Identifier: MIT

package field

// Element is an immutable scalar of some exact field. All operations return
// fresh Elements; receivers are never mutated.
//
// Implementations must guarantee exact arithmetic: IsZero is a true
// mathematical test, never a tolerance check.
type Element interface {
	// Add returns the sum of the receiver and b. Complexity: O(1) for GF(p),
	// O(len) for rationals.
	Add(b Element) Element

	// Sub returns the difference receiver − b.
	Sub(b Element) Element

	// Mul returns the product of the receiver and b.
	Mul(b Element) Element

	// Neg returns the additive inverse.
	Neg() Element

	// Inv returns the multiplicative inverse. Inverting zero is a programmer
	// error and panics; elimination code must test pivots first.
	Inv() Element

	// IsZero reports whether the receiver is the additive identity.
	IsZero() bool

	// Equal reports exact equality with b.
	Equal(b Element) bool

	// Field returns the owning field.
	Field() Field

	// String renders the element in a human-readable, deterministic form.
	String() string
}

// Field is a factory of Elements sharing one exact arithmetic.
type Field interface {
	// Zero returns the additive identity.
	Zero() Element

	// One returns the multiplicative identity.
	One() Element

	// FromInt embeds an integer into the field.
	FromInt(n int64) Element

	// String names the field ("QQ", "GF(7)", ...).
	String() string
}
