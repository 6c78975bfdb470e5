package linalg

import (
	"errors"
	"math/big"
	"testing"

	bigint "github.com/shabbyrobe/go-bigint"
	"github.com/shabbyrobe/golib/assert"
)

var i64 = bigint.IntFrom64

func vec(vs ...int64) Vector {
	elems := make([]bigint.Int, len(vs))
	for i, v := range vs {
		elems[i] = i64(v)
	}
	return NewVector(elems...)
}

func TestVectorAdd(t *testing.T) {
	tt := assert.WrapTB(t)

	v, err := vec(1, -2, 3).Add(vec(10, 20, -30))
	tt.MustOK(err)
	tt.MustAssert(v.Equal(vec(11, 18, -27)))

	_, err = vec(1, 2).Add(vec(1, 2, 3))
	tt.MustAssert(errors.Is(err, ErrDimensionMismatch))
}

func TestVectorSub(t *testing.T) {
	tt := assert.WrapTB(t)

	v, err := vec(1, -2, 3).Sub(vec(10, 20, -30))
	tt.MustOK(err)
	tt.MustAssert(v.Equal(vec(-9, -22, 33)))

	_, err = vec(1, 2, 3).Sub(vec(1, 2))
	tt.MustAssert(errors.Is(err, ErrDimensionMismatch))
}

func TestVectorScalarMul(t *testing.T) {
	tt := assert.WrapTB(t)

	v := vec(1, -2, 0).ScalarMul(i64(-3))
	tt.MustAssert(v.Equal(vec(-3, 6, 0)))
}

func TestVectorDot(t *testing.T) {
	tt := assert.WrapTB(t)

	d, err := vec(1, 2, 3).Dot(vec(4, -5, 6))
	tt.MustOK(err)
	tt.MustAssert(d.Equal(i64(12)))

	_, err = vec(1).Dot(vec(1, 2))
	tt.MustAssert(errors.Is(err, ErrDimensionMismatch))
}

func TestVectorDotFullPrecision(t *testing.T) {
	tt := assert.WrapTB(t)

	// Sums of products carry no precision ceiling:
	big1, _ := bigint.IntFromString("10000000000000000000000000000000000000001")
	big2, _ := bigint.IntFromString("1000000000000000000000000000005")

	v := NewVector(big1, big1)
	w := NewVector(big2, big2)
	d, err := v.Dot(w)
	tt.MustOK(err)

	expected := new(big.Int).Mul(big1.AsBigInt(), big2.AsBigInt())
	expected.Mul(expected, new(big.Int).SetInt64(2))
	tt.MustAssert(d.AsBigInt().Cmp(expected) == 0, "found: %s", d)
}

func TestVectorAt(t *testing.T) {
	tt := assert.WrapTB(t)

	v := vec(1, 2, 3)
	tt.MustEqual(3, v.Len())

	e, err := v.At(1)
	tt.MustOK(err)
	tt.MustAssert(e.Equal(i64(2)))

	_, err = v.At(-1)
	tt.MustAssert(errors.Is(err, ErrOutOfRange))
	_, err = v.At(3)
	tt.MustAssert(errors.Is(err, ErrOutOfRange))
}

func TestVectorZero(t *testing.T) {
	tt := assert.WrapTB(t)

	z := ZeroVector(3)
	tt.MustAssert(z.Equal(vec(0, 0, 0)))

	v, err := vec(1, 2, 3).Add(z)
	tt.MustOK(err)
	tt.MustAssert(v.Equal(vec(1, 2, 3)))
}

func TestVectorString(t *testing.T) {
	tt := assert.WrapTB(t)

	tt.MustEqual("[1 -2 3]", vec(1, -2, 3).String())
	tt.MustEqual("[]", NewVector().String())
}
