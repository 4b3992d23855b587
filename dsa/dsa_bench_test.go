package dsa

import (
	"math/big"
	"testing"
)

var (
	benchPriv *big.Int
	benchPub  *big.Int
	benchMsg  []byte
	benchSig  Signature
)

func initBenchmarkData() {
	x, y, err := GenKeys()
	if err != nil {
		panic(err)
	}
	benchPriv = x
	benchPub = y
	benchMsg = []byte("benchmark ballot payload")

	sig, err := Sign(benchPriv, benchMsg)
	if err != nil {
		panic(err)
	}
	benchSig = sig
}

func BenchmarkSign(b *testing.B) {
	if benchPriv == nil {
		initBenchmarkData()
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := Sign(benchPriv, benchMsg); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkVerify(b *testing.B) {
	if benchPriv == nil {
		initBenchmarkData()
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		Verify(benchPub, benchMsg, benchSig)
	}
}
