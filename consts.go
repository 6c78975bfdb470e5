package bigint

import (
	"math/big"
)

const (
	// digitBits is the width of one digit of the magnitude. Digits are kept
	// in uint64 slots so that carries have 32 bits of headroom.
	digitBits = 32

	// digitRadix is the base of the positional representation.
	digitRadix = 1 << digitBits

	// digitMask masks a uint64 down to a single canonical digit.
	digitMask = digitRadix - 1

	maxUint64 = 1<<64 - 1
	maxInt64  = 1<<63 - 1

	intSize = 32 << (^uint(0) >> 63)
)

var (
	zeroInt = Int{sign: 0, digits: []uint64{0}}
	oneInt  = Int{sign: 1, digits: []uint64{1}}

	big0 = new(big.Int).SetInt64(0)
	big1 = new(big.Int).SetInt64(1)

	// bigRadix is 1 << 32, the magnitude of a single digit position.
	bigRadix = new(big.Int).Lsh(big1, digitBits)
)
