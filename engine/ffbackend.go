package engine

import (
	"github.com/cryptoballot/evote-core/ballot"
	"github.com/cryptoballot/evote-core/modp"
	"github.com/cryptoballot/evote-core/signer"
)

// ffBackend implements cryptoBackend over package modp (exponential
// ElGamal over the RFC 5114 MODP subgroup) and signs with DSAScheme.
type ffBackend struct {
	kp modp.KeyPair
}

func newFFBackend() (*ffBackend, error) {
	kp, err := modp.GenKeys()
	if err != nil {
		return nil, err
	}
	return &ffBackend{kp: kp}, nil
}

func (b *ffBackend) publicKey() ballot.PublicKey {
	return ballot.NewFFPublicKey(b.kp.PublicKey)
}

func (b *ffBackend) encryptBit(m int) (ballot.Ciphertext, error) {
	ct, err := modp.EncryptBit(m, b.kp.PublicKey)
	if err != nil {
		return ballot.Ciphertext{}, err
	}
	return ballot.NewFFCiphertext(ct), nil
}

// combine multiplies the two ciphertexts component-wise modulo P (spec.md
// §4.6). Neither operand is ever the (1, 1) multiplicative identity in
// practice — Engine.Combine seeds its fold with the first ballot's
// ciphertext directly rather than starting from an identity sentinel, per
// the "neutral element vs. ciphertext sentinel" redesign note in spec.md
// §9 — but (1, 1) is what the identity would be, were one needed.
func (b *ffBackend) combine(a, c ballot.Ciphertext) ballot.Ciphertext {
	return ballot.NewFFCiphertext(modp.Combine(a.FF, c.FF))
}

func (b *ffBackend) decryptSmall(ct ballot.Ciphertext, maxTally int) (int, error) {
	return modp.DecryptExp(b.kp.PrivateKey, ct.FF, maxTally)
}

func (b *ffBackend) scheme() signer.Scheme {
	return signer.DSAScheme{}
}
