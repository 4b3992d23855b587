// Package engine implements the back-end-agnostic voting engine (spec.md
// §4.6): ballot creation, encryption and signing, signature verification,
// homomorphic combination into a tally, and final-result decryption.
//
// An Engine is constructed once per election with a chosen back-end (FF or
// EC) and holds the election KeyPair for its lifetime. Per spec.md §9's
// "back-end polymorphism" redesign note, FF and EC are modelled as a sum
// type: Engine holds one concrete cryptoBackend implementation behind an
// unexported interface, selected once at New and never switched — not as a
// class hierarchy a caller could subclass.
package engine

import (
	"github.com/cryptoballot/evote-core/ballot"
	"github.com/cryptoballot/evote-core/signer"
)

// Backend selects which cryptographic back-end an Engine uses.
type Backend = ballot.Backend

const (
	// BackendFF selects exponential ElGamal over the RFC 5114 MODP
	// subgroup with DSA signatures.
	BackendFF = ballot.FF
	// BackendEC selects EC-ElGamal over Curve25519 with ECDSA signatures.
	BackendEC = ballot.EC
)

// Vote is a length-K indicator vector over {0, 1} with exactly one 1
// (spec.md §3).
type Vote []int

// cryptoBackend is the unexported interface the two concrete back-ends
// (ffBackend, ecBackend) implement. It captures exactly the operations the
// engine needs: encrypt a single bit under the election public key,
// homomorphically combine two ciphertexts, decode a combined ciphertext to
// a small integer, and hand back the signer.Scheme used to sign and
// verify ballots produced under this back-end.
type cryptoBackend interface {
	publicKey() ballot.PublicKey
	encryptBit(m int) (ballot.Ciphertext, error)
	combine(a, b ballot.Ciphertext) ballot.Ciphertext
	decryptSmall(ct ballot.Ciphertext, maxTally int) (int, error)
	scheme() signer.Scheme
}
