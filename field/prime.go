// SPDX-License-Identifier: MIT

package field

import "fmt"

// maxPrimeModulus bounds p so that (p-1)² fits a uint64 product.
const maxPrimeModulus = 1 << 31

// primeField is GF(p) for a prime modulus p. Elements are residues in
// [0, p); all arithmetic is modular on uint64 values.
type primeField struct {
	p uint64
}

// Prime returns the finite field GF(p).
//
// Returns ErrNotPrime for composite (or <2) moduli and ErrModulusTooLarge
// for p ≥ 2³¹. Complexity of the primality check: O(√p) trial division,
// paid once at construction.
func Prime(p uint64) (Field, error) {
	if p >= maxPrimeModulus {
		return nil, ErrModulusTooLarge
	}
	if !isPrime(p) {
		return nil, ErrNotPrime
	}

	return &primeField{p: p}, nil
}

// isPrime is trial division; moduli are small by construction.
func isPrime(n uint64) bool {
	if n < 2 {
		return false
	}
	for d := uint64(2); d*d <= n; d++ {
		if n%d == 0 {
			return false
		}
	}

	return true
}

func (f *primeField) Zero() Element { return pElem{f: f} }
func (f *primeField) One() Element  { return pElem{v: 1 % f.p, f: f} }

func (f *primeField) FromInt(n int64) Element {
	m := n % int64(f.p)
	if m < 0 {
		m += int64(f.p)
	}

	return pElem{v: uint64(m), f: f}
}

func (f *primeField) String() string { return fmt.Sprintf("GF(%d)", f.p) }

// pElem is a residue modulo the owning field's prime.
type pElem struct {
	v uint64
	f *primeField
}

// sameField guards against mixing residues of distinct moduli; that is a
// programmer error, not a recoverable condition.
func (a pElem) sameField(b Element) pElem {
	e := b.(pElem)
	if e.f != a.f {
		panic("field: mixed GF(p) moduli")
	}

	return e
}

func (a pElem) Add(b Element) Element {
	e := a.sameField(b)

	return pElem{v: (a.v + e.v) % a.f.p, f: a.f}
}

func (a pElem) Sub(b Element) Element {
	e := a.sameField(b)

	return pElem{v: (a.v + a.f.p - e.v) % a.f.p, f: a.f}
}

func (a pElem) Mul(b Element) Element {
	e := a.sameField(b)

	return pElem{v: (a.v * e.v) % a.f.p, f: a.f}
}

func (a pElem) Neg() Element {
	if a.v == 0 {
		return a
	}

	return pElem{v: a.f.p - a.v, f: a.f}
}

// Inv computes a⁻¹ = a^(p−2) by square-and-multiply (Fermat).
// Complexity: O(log p) multiplications.
func (a pElem) Inv() Element {
	if a.v == 0 {
		panic("field: inverse of zero in GF(p)")
	}
	result := uint64(1)
	base := a.v
	exp := a.f.p - 2
	for exp > 0 {
		if exp&1 == 1 {
			result = (result * base) % a.f.p
		}
		base = (base * base) % a.f.p
		exp >>= 1
	}

	return pElem{v: result, f: a.f}
}

func (a pElem) IsZero() bool { return a.v == 0 }

func (a pElem) Equal(b Element) bool {
	e := a.sameField(b)

	return a.v == e.v
}

func (a pElem) Field() Field { return a.f }

func (a pElem) String() string { return fmt.Sprintf("%d", a.v) }
