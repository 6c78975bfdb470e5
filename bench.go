package bigint

import (
	"math/big"
	"testing"
)

var (
	BenchBigIntResult *big.Int
	BenchBoolResult   bool
	BenchIntResult    Int
	BenchInt64Result  int64
	BenchStringResult string

	BenchInt641, BenchInt642 int64 = 12093749018, 18927348917
)

func BenchmarkInt64Mul(b *testing.B) {
	for i := 0; i < b.N; i++ {
		BenchInt64Result = BenchInt641 * BenchInt642
	}
}

func BenchmarkInt64Add(b *testing.B) {
	for i := 0; i < b.N; i++ {
		BenchInt64Result = BenchInt641 + BenchInt642
	}
}

func BenchmarkIntAdd(b *testing.B) {
	x, y := IntFrom64(BenchInt641), IntFrom64(BenchInt642)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		BenchIntResult = x.Add(y)
	}
}

func BenchmarkIntSub(b *testing.B) {
	x, y := IntFrom64(BenchInt641), IntFrom64(BenchInt642)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		BenchIntResult = x.Sub(y)
	}
}

func BenchmarkIntMul(b *testing.B) {
	x, y := IntFrom64(BenchInt641), IntFrom64(BenchInt642)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		BenchIntResult = x.Mul(y)
	}
}

func BenchmarkIntCmp(b *testing.B) {
	x, y := IntFrom64(BenchInt641), IntFrom64(BenchInt642)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		BenchBoolResult = x.Cmp(y) < 0
	}
}

func BenchmarkIntString(b *testing.B) {
	x := IntFrom64(BenchInt641)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		BenchStringResult = x.String()
	}
}

func BenchmarkBigIntAdd(b *testing.B) {
	x, y := big.NewInt(BenchInt641), big.NewInt(BenchInt642)
	z := new(big.Int)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		BenchBigIntResult = z.Add(x, y)
	}
}

func BenchmarkBigIntMul(b *testing.B) {
	x, y := big.NewInt(BenchInt641), big.NewInt(BenchInt642)
	z := new(big.Int)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		BenchBigIntResult = z.Mul(x, y)
	}
}
