// Package ecdsa25519 implements ECDSA over curve25519m with RFC 6979
// deterministic nonces (spec.md §4.5), grounded on
// original_source/backend/ecdsa.py's ECDSA_sign/ECDSA_verify.
package ecdsa25519

import (
	"crypto/rand"
	"math/big"

	sha256simd "github.com/minio/sha256-simd"

	"github.com/cryptoballot/evote-core/curve25519m"
	"github.com/cryptoballot/evote-core/everr"
	"github.com/cryptoballot/evote-core/modarith"
	"github.com/cryptoballot/evote-core/rfc6979"
)

// Signature is an ECDSA (r, s) pair.
type Signature struct {
	R, S *big.Int
}

func hashInt(message []byte) *big.Int {
	sum := sha256simd.Sum256(message)
	return new(big.Int).SetBytes(sum[:])
}

// GenKeys draws a private scalar in [1, Order-1] and computes Q = d*Base.
func GenKeys() (*big.Int, curve25519m.Point, error) {
	x, pub, err := genScalarAndPoint()
	if err != nil {
		return nil, curve25519m.Point{}, err
	}
	if !curve25519m.OnCurve(pub) {
		return nil, curve25519m.Point{}, everr.ErrInvalidKey
	}
	return x, pub, nil
}

func genScalarAndPoint() (*big.Int, curve25519m.Point, error) {
	x, err := randScalar()
	if err != nil {
		return nil, curve25519m.Point{}, err
	}
	return x, curve25519m.ScalarMult(x, curve25519m.Base), nil
}

func randScalar() (*big.Int, error) {
	bound := new(big.Int).Sub(curve25519m.Order, big.NewInt(1))
	n, err := rand.Int(rand.Reader, bound)
	if err != nil {
		return nil, err
	}
	return n.Add(n, big.NewInt(1)), nil
}

// Sign produces a deterministic ECDSA signature over message using
// privateKey.
func Sign(privateKey *big.Int, message []byte) (Signature, error) {
	if privateKey.Sign() <= 0 || privateKey.Cmp(curve25519m.Order) >= 0 {
		return Signature{}, everr.ErrInvalidKey
	}

	h := hashInt(message)

	for {
		k, err := rfc6979.GenerateNonce(privateKey, message, curve25519m.Order)
		if err != nil {
			return Signature{}, err
		}

		r := curve25519m.ScalarMult(k, curve25519m.Base)
		rMod := new(big.Int).Mod(r.U, curve25519m.Order)
		if rMod.Sign() == 0 {
			continue
		}

		kInv, err := modarith.ModInv(k, curve25519m.Order)
		if err != nil {
			continue
		}

		xr := new(big.Int).Mul(privateKey, rMod)
		s := new(big.Int).Add(h, xr)
		s.Mul(s, kInv)
		s.Mod(s, curve25519m.Order)
		if s.Sign() == 0 {
			continue
		}

		return Signature{R: rMod, S: s}, nil
	}
}

// Verify reports whether sig is a valid ECDSA signature of message under
// publicKey.
func Verify(publicKey curve25519m.Point, message []byte, sig Signature) bool {
	if !curve25519m.OnCurve(publicKey) {
		return false
	}
	if sig.R.Sign() <= 0 || sig.R.Cmp(curve25519m.Order) >= 0 {
		return false
	}
	if sig.S.Sign() <= 0 || sig.S.Cmp(curve25519m.Order) >= 0 {
		return false
	}

	h := hashInt(message)

	w, err := modarith.ModInv(sig.S, curve25519m.Order)
	if err != nil {
		return false
	}

	u1 := new(big.Int).Mul(h, w)
	u1.Mod(u1, curve25519m.Order)
	u2 := new(big.Int).Mul(sig.R, w)
	u2.Mod(u2, curve25519m.Order)

	p1 := curve25519m.ScalarMult(u1, curve25519m.Base)
	p2 := curve25519m.ScalarMult(u2, publicKey)
	r := curve25519m.Add(p1, p2)

	rMod := new(big.Int).Mod(r.U, curve25519m.Order)
	return rMod.Cmp(sig.R) == 0
}
