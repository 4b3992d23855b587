// Package modarith provides the modular-arithmetic primitives shared by the
// finite-field and elliptic-curve back-ends: modular inverse, modular square
// root, and fixed-rule big-endian integer encoding.
//
// Every back-end in this module works over a different modulus (the RFC 5114
// MODP prime, the Curve25519 field prime, the respective group orders), so
// the arithmetic here is expressed on math/big rather than ported to
// fixed-width limbs the way the teacher codebase does for the single
// secp256k1 field it targets — see DESIGN.md for the rationale.
package modarith

import (
	"errors"
	"math/big"
)

// ErrNoInverse is returned by ModInv when a has no inverse modulo m, i.e.
// gcd(a, m) != 1.
var ErrNoInverse = errors.New("modarith: no modular inverse exists")

// ModInv computes the modular multiplicative inverse of a modulo m using the
// extended Euclidean algorithm. It fails with ErrNoInverse when a and m are
// not coprime.
func ModInv(a, m *big.Int) (*big.Int, error) {
	if m.Sign() <= 0 {
		return nil, errors.New("modarith: modulus must be positive")
	}

	g := new(big.Int)
	x := new(big.Int)
	aMod := new(big.Int).Mod(a, m)
	g.GCD(x, nil, aMod, m)

	if g.Cmp(big.NewInt(1)) != 0 {
		return nil, ErrNoInverse
	}

	x.Mod(x, m)
	return x, nil
}

// ModExp computes base^exp mod m. It is a thin wrapper over big.Int.Exp that
// also accepts a negative exp, handled by inverting base with ModInv first
// (it returns 0 when base has no inverse modulo m).
func ModExp(base, exp, m *big.Int) *big.Int {
	if exp.Sign() >= 0 {
		return new(big.Int).Exp(base, exp, m)
	}
	inv, err := ModInv(base, m)
	if err != nil {
		return big.NewInt(0)
	}
	return new(big.Int).Exp(inv, new(big.Int).Neg(exp), m)
}
