/*
Package bigint provides a signed integer type (Int) of unbounded magnitude,
implementing most of the comparison and arithmetic portions of the big.Int
API as a value type.

Int is a value type; all operations return new values.

Simple example:

	a := bigint.IntFrom64(15)
	b := bigint.IntFrom64(-8)
	fmt.Println(a.Mul(b))
	// Output: -120

Int can be created from a variety of sources:

	IntFromDigits(sign int, digits []uint64) Int
	IntFrom64(v int64) Int
	IntFrom32(v int32) Int
	IntFrom16(v int16) Int
	IntFrom8(v int8) Int
	IntFromInt(v int) Int
	IntFromU64(v uint64) Int
	IntFromString(s string) (out Int, err error)
	IntFromBigInt(v *big.Int) Int

Int supports the following formatting and marshalling interfaces:

	- fmt.Formatter
	- fmt.Stringer
	- fmt.GoStringer
	- json.Marshaler
	- json.Unmarshaler
	- encoding.TextMarshaler
	- encoding.TextUnmarshaler
	- encoding.BinaryMarshaler
	- encoding.BinaryUnmarshaler

The magnitude is stored as base-2^32 digits in uint64 slots, least
significant digit first. Every exported constructor and operation returns a
value in canonical form: no high zero digits, every digit below 2^32, and a
single representation of zero.
*/
package bigint
