package signer

import (
	"math/big"
	"testing"

	"github.com/cryptoballot/evote-core/ballot"
)

func TestDSASchemeRoundTrip(t *testing.T) {
	s := DSAScheme{}
	priv, pub, err := s.GenerateKeyPair()
	if err != nil {
		t.Fatalf("GenerateKeyPair: %v", err)
	}
	msg := []byte("an important message")
	sig, err := s.Sign(priv, msg)
	if err != nil {
		t.Fatalf("Sign: %v", err)
	}
	if !s.Verify(pub, msg, sig) {
		t.Fatal("Verify: want true")
	}
	if s.Verify(pub, []byte("a different message"), sig) {
		t.Fatal("Verify(wrong message): want false")
	}
}

func TestECDSASchemeRoundTrip(t *testing.T) {
	s := ECDSAScheme{}
	priv, pub, err := s.GenerateKeyPair()
	if err != nil {
		t.Fatalf("GenerateKeyPair: %v", err)
	}
	msg := []byte("a very important message")
	sig, err := s.Sign(priv, msg)
	if err != nil {
		t.Fatalf("Sign: %v", err)
	}
	if !s.Verify(pub, msg, sig) {
		t.Fatal("Verify: want true")
	}
	if s.Verify(pub, []byte("a different message"), sig) {
		t.Fatal("Verify(wrong message): want false")
	}
}

func TestSchemesRejectWrongBackend(t *testing.T) {
	dsaS := DSAScheme{}
	_, ecPub, err := ECDSAScheme{}.GenerateKeyPair()
	if err != nil {
		t.Fatalf("GenerateKeyPair: %v", err)
	}
	sig := ballot.Signature{R: big.NewInt(1), S: big.NewInt(1)}
	if dsaS.Verify(ecPub, []byte("x"), sig) {
		t.Fatal("Verify(cross-backend key): want false")
	}
}
