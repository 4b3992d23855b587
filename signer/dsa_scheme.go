package signer

import (
	"math/big"

	"github.com/cryptoballot/evote-core/ballot"
	"github.com/cryptoballot/evote-core/dsa"
)

// DSAScheme implements Scheme over package dsa (classic DSA over the RFC
// 5114 MODP Group 24 subgroup).
type DSAScheme struct{}

var _ Scheme = DSAScheme{}

// GenerateKeyPair draws a fresh DSA key pair.
func (DSAScheme) GenerateKeyPair() (*big.Int, ballot.PublicKey, error) {
	x, y, err := dsa.GenKeys()
	if err != nil {
		return nil, ballot.PublicKey{}, err
	}
	return x, ballot.NewFFPublicKey(y), nil
}

// Sign produces a deterministic DSA signature over message.
func (DSAScheme) Sign(priv *big.Int, message []byte) (ballot.Signature, error) {
	sig, err := dsa.Sign(priv, message)
	if err != nil {
		return ballot.Signature{}, err
	}
	return ballot.Signature{R: sig.R, S: sig.S}, nil
}

// Verify reports whether sig is a valid DSA signature of message under pub.
func (DSAScheme) Verify(pub ballot.PublicKey, message []byte, sig ballot.Signature) bool {
	if pub.Backend != ballot.FF {
		return false
	}
	return dsa.Verify(pub.FF, message, dsa.Signature{R: sig.R, S: sig.S})
}
