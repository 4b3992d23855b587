// Package curve25519m implements affine-coordinate arithmetic on Curve25519
// in Montgomery form: v² ≡ u³ + 486662·u² + u (mod p), p = 2²⁵⁵ - 19.
//
// This is distinct from golang.org/x/crypto/curve25519, which only exposes
// the u-coordinate-only X25519 Diffie-Hellman function; EC-ElGamal's
// homomorphic combine (spec.md §4.4) needs true affine point addition with
// both coordinates tracked, which the X25519 API does not expose.
package curve25519m

import (
	"errors"
	"math/big"

	"github.com/cryptoballot/evote-core/modarith"
)

// ErrNotOnCurve is returned whenever an operation is given a point that does
// not satisfy the curve equation.
var ErrNotOnCurve = errors.New("curve25519m: point is not on the curve")

// A24 is the Montgomery curve coefficient "486662" from spec.md §4.2.
var A24 = big.NewInt(486662)

// P is the Curve25519 field prime 2²⁵⁵ - 19.
var P = func() *big.Int {
	p := new(big.Int).Lsh(big.NewInt(1), 255)
	p.Sub(p, big.NewInt(19))
	return p
}()

// Order is the prime order of the Curve25519 subgroup used for scalar
// arithmetic: 2²⁵² + 27742317777372353535851937790883648493.
var Order = func() *big.Int {
	o := new(big.Int).Lsh(big.NewInt(1), 252)
	rest, ok := new(big.Int).SetString("27742317777372353535851937790883648493", 10)
	if !ok {
		panic("curve25519m: invalid order constant")
	}
	o.Add(o, rest)
	return o
}()

// Point is an affine point on the curve, or the neutral element encoded as
// (1, 0) per spec.md §3 — a deliberate sentinel reuse flagged as a redesign
// item in spec.md §9 and kept here only for wire/back-end compatibility;
// Neutral is always compared against explicitly rather than relying on
// arithmetic identities that happen to hold for (1, 0).
type Point struct {
	U, V *big.Int
}

// Neutral is the identity element for Add.
var Neutral = Point{U: big.NewInt(1), V: big.NewInt(0)}

// BaseU, BaseV are the coordinates of the standard Curve25519 base point.
var (
	BaseU = big.NewInt(9)
	BaseV = computeBaseV()
)

// Base is the standard generator point (BaseU, BaseV).
var Base = Point{U: BaseU, V: BaseV}

func computeBaseV() *big.Int {
	v, err := ComputeV(BaseU)
	if err != nil {
		panic("curve25519m: base point is not on the curve: " + err.Error())
	}
	return v
}

// rhs evaluates u³ + 486662·u² + u (mod p).
func rhs(u *big.Int) *big.Int {
	u2 := new(big.Int).Mul(u, u)
	u2.Mod(u2, P)
	u3 := new(big.Int).Mul(u2, u)
	u3.Mod(u3, P)

	t := new(big.Int).Mul(A24, u2)
	t.Mod(t, P)

	out := new(big.Int).Add(u3, t)
	out.Add(out, u)
	out.Mod(out, P)
	return out
}

// ComputeV picks the canonical ("even", i.e. least-significant-bit-clear)
// square root of u³ + 486662·u² + u (mod p), as spec.md §4.2 requires of
// compute_v. It fails with ErrNotOnCurve if u does not correspond to any
// point on the curve.
func ComputeV(u *big.Int) (*big.Int, error) {
	square := rhs(u)
	root, err := modarith.ModSqrt(square, P)
	if err != nil {
		return nil, ErrNotOnCurve
	}
	if root.Bit(0) == 1 {
		root = new(big.Int).Sub(P, root)
	}
	return root, nil
}

// OnCurve reports whether (u, v) satisfies v² ≡ u³ + 486662·u² + u (mod p).
// The neutral sentinel (1, 0) is accepted, matching spec.md §3's treatment
// of it as a valid GroupElement variant.
func OnCurve(pt Point) bool {
	if isNeutral(pt) {
		return true
	}
	lhs := new(big.Int).Mul(pt.V, pt.V)
	lhs.Mod(lhs, P)
	return lhs.Cmp(rhs(pt.U)) == 0
}

func isNeutral(pt Point) bool {
	return pt.U.Cmp(Neutral.U) == 0 && pt.V.Cmp(Neutral.V) == 0
}

// Negate returns (u, -v mod p); negating the neutral element returns the
// neutral element.
func Negate(pt Point) Point {
	if isNeutral(pt) {
		return Neutral
	}
	negV := new(big.Int).Neg(pt.V)
	negV.Mod(negV, P)
	return Point{U: new(big.Int).Set(pt.U), V: negV}
}
