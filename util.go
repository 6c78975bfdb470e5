package bigint

type RandSource interface {
	Uint64() uint64
}

// RandInt generates a non-negative random integer of up to maxDigits
// base-2^32 digits from an external source.
func RandInt(source RandSource, maxDigits int) Int {
	if maxDigits <= 0 {
		return zeroInt
	}
	digits := make([]uint64, maxDigits)
	for i := range digits {
		digits[i] = source.Uint64() & digitMask
	}
	return norm(1, digits)
}

// DifferenceInt subtracts the smaller of a and b from the larger.
func DifferenceInt(a, b Int) Int {
	if a.Cmp(b) >= 0 {
		return a.Sub(b)
	}
	return b.Sub(a)
}

func LargerInt(a, b Int) Int {
	if a.Cmp(b) >= 0 {
		return a
	}
	return b
}

func SmallerInt(a, b Int) Int {
	if a.Cmp(b) <= 0 {
		return a
	}
	return b
}
