package bigint

import (
	"fmt"
	"math/big"
	"strconv"
)

// Int is a signed integer of unbounded magnitude.
//
// The magnitude is a little-endian sequence of base-2^32 digits held in
// uint64 slots; the spare high bits give carries room during arithmetic.
// sign is -1, 0 or 1, and is 0 exactly when the magnitude is zero.
//
// Int is a value type: every operation returns a new Int and no operation
// mutates its operands, so values may be freely copied and shared. The Go
// zero value Int{} behaves as zero.
type Int struct {
	sign   int8
	digits []uint64
}

// norm is the single path by which a computed Int comes into existence. It
// reduces digits to canonical form and reconciles the sign with the
// magnitude: a zero magnitude forces sign 0, and a nonzero magnitude with
// sign 0 becomes positive. norm takes ownership of the digits slice.
func norm(sign int8, digits []uint64) Int {
	digits = normDigits(digits)
	if len(digits) == 1 && digits[0] == 0 {
		return Int{sign: 0, digits: digits}
	}
	if sign == 0 {
		sign = 1
	}
	return Int{sign: sign, digits: digits}
}

// IntFromDigits creates an Int from a little-endian digit sequence in base
// 2^32 and a sign (negative if sign < 0, zero treated as positive for a
// nonzero magnitude).
//
// The input need not be canonical: digit values at or above 2^32 are
// reduced by carry propagation, high zero digits are stripped, and an
// inconsistent sign (a signed zero, or sign 0 with a nonzero magnitude) is
// corrected rather than rejected.
func IntFromDigits(sign int, digits []uint64) Int {
	cp := make([]uint64, len(digits))
	copy(cp, digits)
	var s int8
	if sign < 0 {
		s = -1
	} else if sign > 0 {
		s = 1
	}
	return norm(s, cp)
}

func IntFrom64(v int64) Int {
	if v == 0 {
		return zeroInt
	}
	var sign int8 = 1
	u := uint64(v)
	if v < 0 {
		sign = -1
		u = -u
	}
	return Int{sign: sign, digits: u64Digits(u)}
}

func IntFrom32(v int32) Int { return IntFrom64(int64(v)) }
func IntFrom16(v int16) Int { return IntFrom64(int64(v)) }
func IntFrom8(v int8) Int   { return IntFrom64(int64(v)) }
func IntFromInt(v int) Int  { return IntFrom64(int64(v)) }

func IntFromU64(v uint64) Int {
	if v == 0 {
		return zeroInt
	}
	return Int{sign: 1, digits: u64Digits(v)}
}

func u64Digits(u uint64) []uint64 {
	if u>>digitBits == 0 {
		return []uint64{u}
	}
	return []uint64{u & digitMask, u >> digitBits}
}

// IntFromString creates an Int from a string. Decimal and 0x-prefixed
// hexadecimal strings are supported.
func IntFromString(s string) (out Int, err error) {
	// This deliberately limits the scope of what we accept as input just in
	// case we decide to hand-roll our own fast decimal-only parser:
	b, ok := new(big.Int).SetString(s, 0)
	if !ok {
		return out, fmt.Errorf("bigint: string %q invalid", s)
	}
	return IntFromBigInt(b), nil
}

// IntFromBigInt creates an Int from a big.Int. The conversion is always
// exact; there is no magnitude an Int cannot hold.
func IntFromBigInt(v *big.Int) Int {
	s := v.Sign()
	if s == 0 {
		return zeroInt
	}

	words := v.Bits()

	var digits []uint64
	switch intSize {
	case 64:
		digits = make([]uint64, 0, len(words)*2)
		for _, w := range words {
			digits = append(digits, uint64(w)&digitMask, uint64(w)>>digitBits)
		}
	case 32:
		digits = make([]uint64, len(words))
		for i, w := range words {
			digits[i] = uint64(w)
		}
	default:
		panic("bigint: unsupported bit size")
	}

	return norm(int8(s), digits)
}

func (i Int) IsZero() bool { return i.sign == 0 }

// Sign returns -1 for a negative value, 0 for zero and 1 for a positive
// value.
func (i Int) Sign() int { return int(i.sign) }

// Raw returns the sign and a copy of the canonical digit sequence. See
// IntFromDigits() for the counterpart.
func (i Int) Raw() (sign int, digits []uint64) {
	if len(i.digits) == 0 {
		return int(i.sign), []uint64{0}
	}
	digits = make([]uint64, len(i.digits))
	copy(digits, i.digits)
	return int(i.sign), digits
}

// IntoBigInt copies this Int into a big.Int, allowing you to retain and
// recycle memory.
func (i Int) IntoBigInt(b *big.Int) {
	switch intSize {
	case 64:
		words := make([]big.Word, (len(i.digits)+1)/2)
		for idx, d := range i.digits {
			if idx%2 == 0 {
				words[idx/2] = big.Word(d)
			} else {
				words[idx/2] |= big.Word(d) << digitBits
			}
		}
		b.SetBits(words)

	case 32:
		words := make([]big.Word, len(i.digits))
		for idx, d := range i.digits {
			words[idx] = big.Word(d)
		}
		b.SetBits(words)

	default:
		panic("bigint: unsupported bit size")
	}

	if i.sign < 0 {
		b.Neg(b)
	}
}

// AsBigInt allocates a new big.Int and copies this Int into it. Composing
// AsBigInt with the arithmetic methods always agrees with the same
// arithmetic performed by big.Int directly.
func (i Int) AsBigInt() (b *big.Int) {
	b = new(big.Int)
	i.IntoBigInt(b)
	return b
}

// AsInt64 truncates the Int to fit in an int64. Values outside the range
// will over/underflow. See IsInt64() if you want to check before you
// convert.
func (i Int) AsInt64() int64 {
	var u uint64
	if len(i.digits) > 0 {
		u = i.digits[0]
	}
	if len(i.digits) > 1 {
		u |= i.digits[1] << digitBits
	}
	if i.sign < 0 {
		return -int64(u)
	}
	return int64(u)
}

// IsInt64 reports whether i can be represented as an int64.
func (i Int) IsInt64() bool {
	if i.sign == 0 {
		return true
	}
	if len(i.digits) > 2 {
		return false
	}
	u := i.digits[0]
	if len(i.digits) == 2 {
		u |= i.digits[1] << digitBits
	}
	if i.sign < 0 {
		return u <= 1<<63
	}
	return u <= maxInt64
}

// Neg returns -i. Zero is returned unchanged.
func (i Int) Neg() Int {
	if i.sign == 0 {
		return i
	}
	return Int{sign: -i.sign, digits: i.digits}
}

// Abs returns |i|.
func (i Int) Abs() Int {
	if i.sign < 0 {
		return Int{sign: 1, digits: i.digits}
	}
	return i
}

func (i Int) Equal(n Int) bool {
	if i.sign != n.sign {
		return false
	}
	if i.sign == 0 {
		return true
	}
	if len(i.digits) != len(n.digits) {
		return false
	}
	for idx := range i.digits {
		if i.digits[idx] != n.digits[idx] {
			return false
		}
	}
	return true
}

// Cmp compares i to n and returns:
//
//	< 0 if i <  n
//	  0 if i == n
//	> 0 if i >  n
//
// The specific value returned by Cmp is undefined, but it is guaranteed to
// satisfy the above constraints.
func (i Int) Cmp(n Int) int {
	if i.sign != n.sign {
		if i.sign < n.sign {
			return -1
		}
		return 1
	}
	if i.sign == 0 {
		return 0
	}
	c := cmpDigits(i.digits, n.digits)
	if i.sign < 0 {
		// Both negative: the larger magnitude is the smaller value.
		switch {
		case c < 0:
			return 1
		case c > 0:
			return -1
		default:
			return 0
		}
	}
	return c
}

func (i Int) LessThan(n Int) bool         { return i.Cmp(n) < 0 }
func (i Int) LessOrEqualTo(n Int) bool    { return i.Cmp(n) <= 0 }
func (i Int) GreaterThan(n Int) bool      { return i.Cmp(n) > 0 }
func (i Int) GreaterOrEqualTo(n Int) bool { return i.Cmp(n) >= 0 }

// Add returns the sum i+n.
func (i Int) Add(n Int) Int {
	if i.sign == 0 {
		return n
	}
	if n.sign == 0 {
		return i
	}

	if i.sign == n.sign {
		return norm(i.sign, addDigits(i.digits, n.digits))
	}

	// Mixed signs reduce to a magnitude subtraction; the flag from
	// subDigits says whether the negative operand's magnitude won.
	pos, neg := i, n
	if i.sign < 0 {
		pos, neg = n, i
	}
	diff, swapped := subDigits(pos.digits, neg.digits)
	var sign int8 = 1
	if swapped {
		sign = -1
	}
	return norm(sign, diff)
}

// Sub returns the difference i-n.
func (i Int) Sub(n Int) Int {
	return i.Add(n.Neg())
}

// Mul returns the product i*n using long multiplication in base 2^32.
func (i Int) Mul(n Int) Int {
	if i.sign == 0 || n.sign == 0 {
		return zeroInt
	}
	return norm(i.sign*n.sign, mulDigits(i.digits, n.digits))
}

func (i Int) Inc() Int { return i.Add(oneInt) }
func (i Int) Dec() Int { return i.Sub(oneInt) }

func (i Int) String() string {
	if i.sign == 0 {
		return "0"
	}
	if len(i.digits) == 1 {
		if i.sign < 0 {
			return "-" + strconv.FormatUint(i.digits[0], 10)
		}
		return strconv.FormatUint(i.digits[0], 10)
	}
	return i.AsBigInt().String()
}

func (i Int) Format(s fmt.State, c rune) {
	// FIXME: This is good enough for now, but not forever.
	i.AsBigInt().Format(s, c)
}

// GoString renders the value for debugging: the decimal value alongside the
// raw digit sequence. Zero is always the literal "bigint.Int(0)".
func (i Int) GoString() string {
	if i.sign == 0 {
		return "bigint.Int(0)"
	}
	return fmt.Sprintf("bigint.Int(%s, digits=%v)", i.String(), i.digits)
}

func (i Int) MarshalText() ([]byte, error) {
	return []byte(i.String()), nil
}

func (i *Int) UnmarshalText(bts []byte) (err error) {
	v, err := IntFromString(string(bts))
	if err != nil {
		return err
	}
	*i = v
	return nil
}

func (i Int) MarshalJSON() ([]byte, error) {
	return []byte(`"` + i.String() + `"`), nil
}

func (i *Int) UnmarshalJSON(bts []byte) (err error) {
	if len(bts) == 0 {
		return fmt.Errorf("bigint: invalid JSON %q", string(bts))
	}
	if bts[0] == '"' {
		ln := len(bts)
		if ln < 2 || bts[ln-1] != '"' {
			return fmt.Errorf("bigint: invalid JSON %q", string(bts))
		}
		bts = bts[1 : ln-1]
	}

	v, err := IntFromString(string(bts))
	if err != nil {
		return err
	}
	*i = v
	return nil
}

// MarshalBinary encodes the Int as one sign byte (0, 1 or 2 for zero,
// positive, negative) followed by the big-endian bytes of the magnitude.
func (i Int) MarshalBinary() ([]byte, error) {
	var sign byte
	switch {
	case i.sign > 0:
		sign = 1
	case i.sign < 0:
		sign = 2
	}
	b := i.AsBigInt()
	return append([]byte{sign}, b.Abs(b).Bytes()...), nil
}

func (i *Int) UnmarshalBinary(data []byte) error {
	if len(data) == 0 {
		return fmt.Errorf("bigint: empty binary payload")
	}
	b := new(big.Int).SetBytes(data[1:])
	switch data[0] {
	case 0, 1:
	case 2:
		b.Neg(b)
	default:
		return fmt.Errorf("bigint: invalid sign byte %d", data[0])
	}
	*i = IntFromBigInt(b)
	return nil
}
