// Package signer defines the back-end-neutral signing interface the voting
// engine dispatches through (spec.md §9's "back-end polymorphism" redesign
// note): a tagged variant of two concrete signature schemes, never
// subclassing. DSAScheme and ECDSAScheme each implement Scheme over their
// own group (modp's MODP subgroup, curve25519m's Curve25519 subgroup)
// while presenting the same three operations to the engine.
package signer

import (
	"math/big"

	"github.com/cryptoballot/evote-core/ballot"
)

// Scheme is implemented by DSAScheme and ECDSAScheme. Private keys are
// represented as *big.Int in both schemes (a DSA exponent or an ECDSA
// scalar), so Scheme does not need a separate opaque key type the way the
// ciphertext/public-key tagged unions in package ballot do.
type Scheme interface {
	// GenerateKeyPair returns a fresh ephemeral signing key and the
	// ballot.PublicKey that verifiers will check signatures against.
	GenerateKeyPair() (*big.Int, ballot.PublicKey, error)
	// Sign produces a deterministic signature over message using priv.
	Sign(priv *big.Int, message []byte) (ballot.Signature, error)
	// Verify reports whether sig is a valid signature of message under pub.
	Verify(pub ballot.PublicKey, message []byte, sig ballot.Signature) bool
}
