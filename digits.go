package bigint

import (
	"math/bits"
)

// normDigits rewrites a little-endian digit sequence into canonical form:
// every digit below digitRadix, no high zero digits, at least one digit.
//
// Input digits may hold any uint64 value; the carry pass reduces them. The
// running carry never exceeds digitRadix, but digit+carry can still spill
// past 64 bits, so the sum goes through bits.Add64 and the spilled bit is
// folded back into the carry (one spilled 2^64 is 2^32 carry units).
//
// normDigits works in place; callers own the slice they pass.
func normDigits(digits []uint64) []uint64 {
	if len(digits) == 0 {
		return []uint64{0}
	}
	var carry uint64
	for i, d := range digits {
		v, spill := bits.Add64(d, carry, 0)
		digits[i] = v & digitMask
		carry = (v >> digitBits) + (spill << digitBits)
	}
	for carry != 0 {
		digits = append(digits, carry&digitMask)
		carry >>= digitBits
	}
	return trimDigits(digits)
}

// trimDigits strips high zero digits, always keeping at least one.
func trimDigits(digits []uint64) []uint64 {
	n := len(digits)
	for n > 1 && digits[n-1] == 0 {
		n--
	}
	return digits[:n]
}

// cmpDigits compares two canonical magnitudes and returns -1, 0 or 1.
// Canonical form means length alone orders differing lengths.
func cmpDigits(x, y []uint64) int {
	if len(x) != len(y) {
		if len(x) < len(y) {
			return -1
		}
		return 1
	}
	for i := len(x) - 1; i >= 0; i-- {
		if x[i] != y[i] {
			if x[i] < y[i] {
				return -1
			}
			return 1
		}
	}
	return 0
}

// addDigits sums two canonical magnitudes. The per-position sum of two
// canonical digits plus a carry tops out well below 2^34, so plain uint64
// arithmetic is safe here.
func addDigits(x, y []uint64) []uint64 {
	if len(x) < len(y) {
		x, y = y, x
	}
	out := make([]uint64, len(x), len(x)+1)
	var carry uint64
	for i, xd := range x {
		s := xd + carry
		if i < len(y) {
			s += y[i]
		}
		out[i] = s & digitMask
		carry = s >> digitBits
	}
	if carry != 0 {
		out = append(out, carry)
	}
	return out
}

// subDigits computes ||x| - |y|| as a canonical magnitude. swapped reports
// that |y| was the larger operand, i.e. the true signed difference is
// negative. A zero result always reports swapped == false; zero has no sign.
func subDigits(x, y []uint64) (out []uint64, swapped bool) {
	if cmpDigits(x, y) < 0 {
		x, y = y, x
		swapped = true
	}
	out = make([]uint64, len(x))
	var borrow uint64
	for i, xd := range x {
		var yd uint64
		if i < len(y) {
			yd = y[i]
		}
		if xd < yd+borrow {
			out[i] = digitRadix + xd - yd - borrow
			borrow = 1
		} else {
			out[i] = xd - yd - borrow
			borrow = 0
		}
	}
	out = trimDigits(out)
	if len(out) == 1 && out[0] == 0 {
		swapped = false
	}
	return out, swapped
}

// mulDigits long-multiplies two canonical magnitudes.
//
// Each pairwise product spans up to 64 bits, so it is split into 32-bit
// halves before accumulation; the low half lands at position i+j and the
// high half at i+j+1. Accumulating the unsplit product in one slot would
// leave no headroom for the carries that stack on top of it.
func mulDigits(x, y []uint64) []uint64 {
	acc := make([]uint64, len(x)+len(y))
	for i, xd := range x {
		if xd == 0 {
			continue
		}
		for j, yd := range y {
			p := xd * yd
			lo, hi := p&digitMask, p>>digitBits
			s := acc[i+j] + lo
			acc[i+j] = s & digitMask
			carry := hi + (s >> digitBits)
			for k := i + j + 1; carry != 0; k++ {
				s = acc[k] + carry
				acc[k] = s & digitMask
				carry = s >> digitBits
			}
		}
	}
	return trimDigits(acc)
}
