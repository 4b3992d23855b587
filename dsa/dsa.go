// Package dsa implements classic DSA over the RFC 5114 MODP Group 24
// subgroup with RFC 6979 deterministic nonces (spec.md §4.5), grounded on
// original_source/backend/dsa.py's DSA_sign/DSA_verify.
package dsa

import (
	"math/big"

	sha256simd "github.com/minio/sha256-simd"

	"github.com/cryptoballot/evote-core/everr"
	"github.com/cryptoballot/evote-core/modarith"
	"github.com/cryptoballot/evote-core/modp"
	"github.com/cryptoballot/evote-core/rfc6979"
)

// Signature is a DSA (r, s) pair.
type Signature struct {
	R, S *big.Int
}

// hashInt returns SHA-256(message) as a (full 256-bit) integer, matching
// original_source's H(message) = int(SHA256(message).hexdigest(), 16).
func hashInt(message []byte) *big.Int {
	sum := sha256simd.Sum256(message)
	return new(big.Int).SetBytes(sum[:])
}

// GenKeys draws a private key in [1, q-1] and computes y = g^x mod p.
func GenKeys() (*big.Int, *big.Int, error) {
	kp, err := modp.GenKeys()
	if err != nil {
		return nil, nil, err
	}
	return kp.PrivateKey, kp.PublicKey, nil
}

// Sign produces a deterministic DSA signature over message using privateKey.
func Sign(privateKey *big.Int, message []byte) (Signature, error) {
	if privateKey.Sign() <= 0 || privateKey.Cmp(modp.Q) >= 0 {
		return Signature{}, everr.ErrInvalidKey
	}

	h := hashInt(message)

	for {
		k, err := rfc6979.GenerateNonce(privateKey, message, modp.Q)
		if err != nil {
			return Signature{}, err
		}

		r := new(big.Int).Exp(modp.G, k, modp.P)
		r.Mod(r, modp.Q)
		if r.Sign() == 0 {
			continue
		}

		kInv, err := modarith.ModInv(k, modp.Q)
		if err != nil {
			continue
		}

		xr := new(big.Int).Mul(privateKey, r)
		s := new(big.Int).Add(h, xr)
		s.Mul(s, kInv)
		s.Mod(s, modp.Q)
		if s.Sign() == 0 {
			continue
		}

		return Signature{R: r, S: s}, nil
	}
}

// Verify reports whether sig is a valid DSA signature of message under
// publicKey.
func Verify(publicKey *big.Int, message []byte, sig Signature) bool {
	if sig.R.Sign() <= 0 || sig.R.Cmp(modp.Q) >= 0 {
		return false
	}
	if sig.S.Sign() <= 0 || sig.S.Cmp(modp.Q) >= 0 {
		return false
	}
	if publicKey.Sign() <= 0 || publicKey.Cmp(modp.P) >= 0 {
		return false
	}

	h := new(big.Int).Mod(hashInt(message), modp.Q)

	w, err := modarith.ModInv(sig.S, modp.Q)
	if err != nil {
		return false
	}

	u1 := new(big.Int).Mul(h, w)
	u1.Mod(u1, modp.Q)
	u2 := new(big.Int).Mul(sig.R, w)
	u2.Mod(u2, modp.Q)

	gu1 := new(big.Int).Exp(modp.G, u1, modp.P)
	yu2 := new(big.Int).Exp(publicKey, u2, modp.P)
	v := new(big.Int).Mul(gu1, yu2)
	v.Mod(v, modp.P)
	v.Mod(v, modp.Q)

	return v.Cmp(sig.R) == 0
}
