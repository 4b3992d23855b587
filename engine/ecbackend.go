package engine

import (
	"github.com/cryptoballot/evote-core/ballot"
	"github.com/cryptoballot/evote-core/ecelgamal"
	"github.com/cryptoballot/evote-core/signer"
)

// ecBackend implements cryptoBackend over package ecelgamal (EC-ElGamal
// over Curve25519 in Montgomery form) and signs with ECDSAScheme.
type ecBackend struct {
	kp ecelgamal.KeyPair
}

func newECBackend() (*ecBackend, error) {
	kp, err := ecelgamal.GenKeys()
	if err != nil {
		return nil, err
	}
	return &ecBackend{kp: kp}, nil
}

func (b *ecBackend) publicKey() ballot.PublicKey {
	return ballot.NewECPublicKey(b.kp.PublicKey)
}

func (b *ecBackend) encryptBit(m int) (ballot.Ciphertext, error) {
	ct, err := ecelgamal.EncryptBit(m, b.kp.PublicKey)
	if err != nil {
		return ballot.Ciphertext{}, err
	}
	return ballot.NewECCiphertext(ct), nil
}

func (b *ecBackend) combine(a, c ballot.Ciphertext) ballot.Ciphertext {
	return ballot.NewECCiphertext(ecelgamal.Combine(a.EC, c.EC))
}

func (b *ecBackend) decryptSmall(ct ballot.Ciphertext, maxTally int) (int, error) {
	return ecelgamal.DecryptBitOrSmall(b.kp.PrivateKey, ct.EC, maxTally)
}

func (b *ecBackend) scheme() signer.Scheme {
	return signer.ECDSAScheme{}
}
