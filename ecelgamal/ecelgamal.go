// Package ecelgamal implements EC-ElGamal over curve25519m (spec.md §4.4):
// key generation, bit encryption with the base point as the encoded unit,
// homomorphic tally combination by point addition, and decryption by a
// precomputed-table discrete-log search bounded by a caller-supplied tally
// limit.
package ecelgamal

import (
	"crypto/rand"
	"errors"
	"math/big"

	"github.com/cryptoballot/evote-core/curve25519m"
)

// ErrInvalidMessage reports a vote bit that is neither 0 nor 1.
var ErrInvalidMessage = errors.New("ecelgamal: message must be 0 or 1")

// ErrDecodeFailure reports that the decrypted point did not match any
// multiple of the base point up to the caller's declared tally bound.
var ErrDecodeFailure = errors.New("ecelgamal: decode search exceeded bound")

// KeyPair is an EC-ElGamal key pair: PublicKey = PrivateKey * Base.
type KeyPair struct {
	PrivateKey *big.Int
	PublicKey  curve25519m.Point
}

// Ciphertext is a pair of curve points (C1, C2).
type Ciphertext struct {
	C1, C2 curve25519m.Point
}

// GenKeys draws a uniform private scalar in [1, Order-1] and computes the
// matching public point.
func GenKeys() (KeyPair, error) {
	x, err := randScalar()
	if err != nil {
		return KeyPair{}, err
	}
	pub := curve25519m.ScalarMult(x, curve25519m.Base)
	return KeyPair{PrivateKey: x, PublicKey: pub}, nil
}

// Encode maps a vote bit to its curve encoding: 0 to the neutral element, 1
// to the base point, matching original_source's EGencode.
func Encode(message int) (curve25519m.Point, error) {
	switch message {
	case 0:
		return curve25519m.Neutral, nil
	case 1:
		return curve25519m.Base, nil
	default:
		return curve25519m.Point{}, ErrInvalidMessage
	}
}

// EncryptBit encrypts a single vote bit.
func EncryptBit(message int, publicKey curve25519m.Point) (Ciphertext, error) {
	m, err := Encode(message)
	if err != nil {
		return Ciphertext{}, err
	}

	k, err := randScalar()
	if err != nil {
		return Ciphertext{}, err
	}

	c1 := curve25519m.ScalarMult(k, curve25519m.Base)
	s := curve25519m.ScalarMult(k, publicKey)
	c2 := curve25519m.Add(m, s)
	return Ciphertext{C1: c1, C2: c2}, nil
}

// Combine homomorphically adds two encrypted tallies by point addition.
func Combine(a, b Ciphertext) Ciphertext {
	return Ciphertext{
		C1: curve25519m.Add(a.C1, b.C1),
		C2: curve25519m.Add(a.C2, b.C2),
	}
}

// DecryptBitOrSmall recovers the plaintext exponent m from a ciphertext
// whose encoded point is m*Base, by subtracting the shared secret and
// searching the multiples of Base up to maxTally (inclusive).
func DecryptBitOrSmall(privateKey *big.Int, ct Ciphertext, maxTally int) (int, error) {
	s := curve25519m.ScalarMult(privateKey, ct.C1)
	negS := curve25519m.Negate(s)
	m := curve25519m.Add(ct.C2, negS)

	table := precomputeTable(maxTally)
	for i, pt := range table {
		if pt.U.Cmp(m.U) == 0 && pt.V.Cmp(m.V) == 0 {
			return i, nil
		}
	}
	return 0, ErrDecodeFailure
}

// precomputeTable builds [0*Base, 1*Base, ..., maxTally*Base].
// DecryptBitOrSmall rebuilds it on every call; the table is not cached
// between calls.
func precomputeTable(maxTally int) []curve25519m.Point {
	table := make([]curve25519m.Point, maxTally+1)
	table[0] = curve25519m.Neutral
	for i := 1; i <= maxTally; i++ {
		table[i] = curve25519m.Add(table[i-1], curve25519m.Base)
	}
	return table
}

func randScalar() (*big.Int, error) {
	bound := new(big.Int).Sub(curve25519m.Order, big.NewInt(1))
	n, err := rand.Int(rand.Reader, bound)
	if err != nil {
		return nil, err
	}
	return n.Add(n, big.NewInt(1)), nil
}
