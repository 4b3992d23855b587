package modarith

import (
	"errors"
	"math/big"
)

// ErrNonResidue is returned by ModSqrt when a is not a quadratic residue
// modulo p.
var ErrNonResidue = errors.New("modarith: not a quadratic residue")

var (
	big0 = big.NewInt(0)
	big1 = big.NewInt(1)
	big2 = big.NewInt(2)
	big3 = big.NewInt(3)
	big4 = big.NewInt(4)
	big5 = big.NewInt(5)
	big8 = big.NewInt(8)
)

// ModSqrt returns a square root of a modulo the odd prime p, via
// Tonelli-Shanks, with a dedicated fast path for p ≡ 5 (mod 8) — the case
// that covers the Curve25519 field prime 2^255 - 19, where the general
// algorithm's factoring-out-powers-of-two loop degenerates to a single
// exponentiation plus a sign correction, exactly as spec.md §4.1 describes.
//
// The returned root is not guaranteed to be the "positive" or "even" one;
// callers that need a canonical representative (curve25519m.ComputeV) apply
// their own selection rule on top of this.
func ModSqrt(a, p *big.Int) (*big.Int, error) {
	aMod := new(big.Int).Mod(a, p)
	if aMod.Sign() == 0 {
		return big.NewInt(0), nil
	}
	if !isQuadraticResidue(aMod, p) {
		return nil, ErrNonResidue
	}

	mod4 := new(big.Int).Mod(p, big4)
	if mod4.Cmp(big3) == 0 {
		// p ≡ 3 (mod 4): root = a^((p+1)/4) mod p.
		exp := new(big.Int).Add(p, big1)
		exp.Rsh(exp, 2)
		return new(big.Int).Exp(aMod, exp, p), nil
	}

	mod8 := new(big.Int).Mod(p, big8)
	if mod8.Cmp(big5) == 0 {
		return modSqrt5Mod8(aMod, p), nil
	}

	return tonelliShanks(aMod, p), nil
}

// modSqrt5Mod8 implements the p ≡ 5 (mod 8) fast path: candidate = a^((p+3)/8);
// if candidate^2 != a, multiply by the fixed element i = 2^((p-1)/4), a
// primitive fourth root of unity modulo p, to correct the sign (RFC 8032
// §5.1.3 / the same trick used for Curve25519 and Ed25519 field arithmetic).
func modSqrt5Mod8(a, p *big.Int) *big.Int {
	exp := new(big.Int).Add(p, big3)
	exp.Rsh(exp, 3)
	candidate := new(big.Int).Exp(a, exp, p)

	check := new(big.Int).Mul(candidate, candidate)
	check.Mod(check, p)
	if check.Cmp(a) == 0 {
		return candidate
	}

	iExp := new(big.Int).Sub(p, big1)
	iExp.Rsh(iExp, 2)
	i := new(big.Int).Exp(big2, iExp, p)

	candidate.Mul(candidate, i)
	candidate.Mod(candidate, p)
	return candidate
}

// tonelliShanks is the general algorithm, used for primes not of the 3-mod-4
// or 5-mod-8 shape (the order-of-two reference backends in this module never
// exercise this path, but mod_sqrt is specified generically in spec.md §4.1).
func tonelliShanks(a, p *big.Int) *big.Int {
	// Factor p-1 = q * 2^s with q odd.
	q := new(big.Int).Sub(p, big1)
	s := 0
	for q.Bit(0) == 0 {
		q.Rsh(q, 1)
		s++
	}

	// Find a quadratic non-residue z.
	z := big.NewInt(2)
	for isQuadraticResidue(z, p) {
		z.Add(z, big1)
	}

	m := s
	c := new(big.Int).Exp(z, q, p)
	t := new(big.Int).Exp(a, q, p)
	qPlus1Over2 := new(big.Int).Add(q, big1)
	qPlus1Over2.Rsh(qPlus1Over2, 1)
	r := new(big.Int).Exp(a, qPlus1Over2, p)

	for {
		if t.Cmp(big1) == 0 {
			return r
		}

		i := 0
		tt := new(big.Int).Set(t)
		for tt.Cmp(big1) != 0 {
			tt.Mul(tt, tt)
			tt.Mod(tt, p)
			i++
		}

		b := new(big.Int).Exp(c, new(big.Int).Lsh(big1, uint(m-i-1)), p)
		m = i
		c = new(big.Int).Mul(b, b)
		c.Mod(c, p)
		t.Mul(t, c)
		t.Mod(t, p)
		r.Mul(r, b)
		r.Mod(r, p)
	}
}

func isQuadraticResidue(a, p *big.Int) bool {
	if a.Sign() == 0 {
		return true
	}
	exp := new(big.Int).Sub(p, big1)
	exp.Rsh(exp, 1)
	return new(big.Int).Exp(a, exp, p).Cmp(big1) == 0
}
