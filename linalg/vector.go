// Package linalg provides vectors and matrices of bigint.Int values.
//
// All arithmetic is exact: sums of products are accumulated with the full
// precision of the underlying integer type, so there is no magnitude at
// which results start to degrade.
package linalg

import (
	"strings"

	bigint "github.com/shabbyrobe/go-bigint"
)

// Vector is a fixed-length sequence of bigint.Int values. The zero value is
// an empty vector.
type Vector struct {
	elems []bigint.Int
}

// NewVector copies elems into a new Vector.
func NewVector(elems ...bigint.Int) Vector {
	cp := make([]bigint.Int, len(elems))
	copy(cp, elems)
	return Vector{elems: cp}
}

// ZeroVector returns a Vector of n zero values.
func ZeroVector(n int) Vector {
	if n < 0 {
		n = 0
	}
	return Vector{elems: make([]bigint.Int, n)}
}

func (v Vector) Len() int { return len(v.elems) }

// At returns the element at index i.
func (v Vector) At(i int) (bigint.Int, error) {
	if i < 0 || i >= len(v.elems) {
		return bigint.Int{}, ErrOutOfRange
	}
	return v.elems[i], nil
}

// Add returns the element-wise sum v+w. The operands must have the same
// length.
func (v Vector) Add(w Vector) (Vector, error) {
	if len(v.elems) != len(w.elems) {
		return Vector{}, ErrDimensionMismatch
	}
	out := make([]bigint.Int, len(v.elems))
	for i := range v.elems {
		out[i] = v.elems[i].Add(w.elems[i])
	}
	return Vector{elems: out}, nil
}

// Sub returns the element-wise difference v-w. The operands must have the
// same length.
func (v Vector) Sub(w Vector) (Vector, error) {
	if len(v.elems) != len(w.elems) {
		return Vector{}, ErrDimensionMismatch
	}
	out := make([]bigint.Int, len(v.elems))
	for i := range v.elems {
		out[i] = v.elems[i].Sub(w.elems[i])
	}
	return Vector{elems: out}, nil
}

// ScalarMul returns v with every element multiplied by k.
func (v Vector) ScalarMul(k bigint.Int) Vector {
	out := make([]bigint.Int, len(v.elems))
	for i := range v.elems {
		out[i] = v.elems[i].Mul(k)
	}
	return Vector{elems: out}
}

// Dot returns the sum of the pairwise products of v and w. The operands
// must have the same length.
func (v Vector) Dot(w Vector) (bigint.Int, error) {
	if len(v.elems) != len(w.elems) {
		return bigint.Int{}, ErrDimensionMismatch
	}
	var sum bigint.Int
	for i := range v.elems {
		sum = sum.Add(v.elems[i].Mul(w.elems[i]))
	}
	return sum, nil
}

func (v Vector) Equal(w Vector) bool {
	if len(v.elems) != len(w.elems) {
		return false
	}
	for i := range v.elems {
		if !v.elems[i].Equal(w.elems[i]) {
			return false
		}
	}
	return true
}

func (v Vector) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i, e := range v.elems {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(e.String())
	}
	sb.WriteByte(']')
	return sb.String()
}
