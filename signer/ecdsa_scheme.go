package signer

import (
	"math/big"

	"github.com/cryptoballot/evote-core/ballot"
	"github.com/cryptoballot/evote-core/ecdsa25519"
)

// ECDSAScheme implements Scheme over package ecdsa25519 (ECDSA over
// Curve25519 in Montgomery form).
type ECDSAScheme struct{}

var _ Scheme = ECDSAScheme{}

// GenerateKeyPair draws a fresh ECDSA key pair.
func (ECDSAScheme) GenerateKeyPair() (*big.Int, ballot.PublicKey, error) {
	x, pub, err := ecdsa25519.GenKeys()
	if err != nil {
		return nil, ballot.PublicKey{}, err
	}
	return x, ballot.NewECPublicKey(pub), nil
}

// Sign produces a deterministic ECDSA signature over message.
func (ECDSAScheme) Sign(priv *big.Int, message []byte) (ballot.Signature, error) {
	sig, err := ecdsa25519.Sign(priv, message)
	if err != nil {
		return ballot.Signature{}, err
	}
	return ballot.Signature{R: sig.R, S: sig.S}, nil
}

// Verify reports whether sig is a valid ECDSA signature of message under pub.
func (ECDSAScheme) Verify(pub ballot.PublicKey, message []byte, sig ballot.Signature) bool {
	if pub.Backend != ballot.EC {
		return false
	}
	return ecdsa25519.Verify(pub.EC, message, ecdsa25519.Signature{R: sig.R, S: sig.S})
}
