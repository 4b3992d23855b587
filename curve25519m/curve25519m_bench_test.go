package curve25519m

import (
	"math/big"
	"testing"
)

var (
	benchScalar *big.Int
	benchPoint  Point
)

func initBenchmarkData() {
	benchScalar = new(big.Int).Sub(Order, big.NewInt(12345))
	benchPoint = ScalarMult(big.NewInt(7), Base)
}

func BenchmarkScalarMult(b *testing.B) {
	if benchScalar == nil {
		initBenchmarkData()
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		ScalarMult(benchScalar, Base)
	}
}

func BenchmarkAdd(b *testing.B) {
	if benchScalar == nil {
		initBenchmarkData()
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		Add(Base, benchPoint)
	}
}
