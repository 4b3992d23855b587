package modp

import "testing"

var (
	benchKeys KeyPair
	benchCT   Ciphertext
)

func initBenchmarkData() {
	kp, err := GenKeys()
	if err != nil {
		panic(err)
	}
	benchKeys = kp

	ct, err := EncryptBit(1, benchKeys.PublicKey)
	if err != nil {
		panic(err)
	}
	benchCT = ct
}

func BenchmarkEncryptBit(b *testing.B) {
	if benchKeys.PublicKey == nil {
		initBenchmarkData()
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := EncryptBit(1, benchKeys.PublicKey); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkDecryptExp(b *testing.B) {
	if benchKeys.PublicKey == nil {
		initBenchmarkData()
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := DecryptExp(benchKeys.PrivateKey, benchCT, 64); err != nil {
			b.Fatal(err)
		}
	}
}
