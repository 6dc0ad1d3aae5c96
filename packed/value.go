package packed

import (
	"math"
	"strconv"
)

// Value is a single typed datum as it crosses a byte stack. Numeric
// payloads are widened into one 64-bit field, signed kinds sign-extended.
// The zero Value has KindInvalid and no payload.
type Value struct {
	kind Kind
	bits uint64
	str  string
}

// Kind reports the runtime type of v.
func (v Value) Kind() Kind {
	return v.kind
}

// ---------------------------------------------------------------------------
// Signed integers
// ---------------------------------------------------------------------------

// FromInt8 creates an Int8 value.
func FromInt8(n int8) Value {
	return Value{kind: KindInt8, bits: uint64(int64(n))}
}

// Int8 returns v as an int8.
// Panics if v is not an Int8.
func (v Value) Int8() int8 {
	if v.kind != KindInt8 {
		panic("Value.Int8: not an Int8")
	}
	return int8(v.bits)
}

// FromInt16 creates an Int16 value.
func FromInt16(n int16) Value {
	return Value{kind: KindInt16, bits: uint64(int64(n))}
}

// Int16 returns v as an int16.
// Panics if v is not an Int16.
func (v Value) Int16() int16 {
	if v.kind != KindInt16 {
		panic("Value.Int16: not an Int16")
	}
	return int16(v.bits)
}

// FromInt32 creates an Int32 value.
func FromInt32(n int32) Value {
	return Value{kind: KindInt32, bits: uint64(int64(n))}
}

// Int32 returns v as an int32.
// Panics if v is not an Int32.
func (v Value) Int32() int32 {
	if v.kind != KindInt32 {
		panic("Value.Int32: not an Int32")
	}
	return int32(v.bits)
}

// FromInt64 creates an Int64 value.
func FromInt64(n int64) Value {
	return Value{kind: KindInt64, bits: uint64(n)}
}

// Int64 returns v as an int64.
// Panics if v is not an Int64.
func (v Value) Int64() int64 {
	if v.kind != KindInt64 {
		panic("Value.Int64: not an Int64")
	}
	return int64(v.bits)
}

// ---------------------------------------------------------------------------
// Unsigned integers
// ---------------------------------------------------------------------------

// FromUint8 creates a Uint8 value.
func FromUint8(n uint8) Value {
	return Value{kind: KindUint8, bits: uint64(n)}
}

// Uint8 returns v as a uint8.
// Panics if v is not a Uint8.
func (v Value) Uint8() uint8 {
	if v.kind != KindUint8 {
		panic("Value.Uint8: not a Uint8")
	}
	return uint8(v.bits)
}

// FromUint16 creates a Uint16 value.
func FromUint16(n uint16) Value {
	return Value{kind: KindUint16, bits: uint64(n)}
}

// Uint16 returns v as a uint16.
// Panics if v is not a Uint16.
func (v Value) Uint16() uint16 {
	if v.kind != KindUint16 {
		panic("Value.Uint16: not a Uint16")
	}
	return uint16(v.bits)
}

// FromUint32 creates a Uint32 value.
func FromUint32(n uint32) Value {
	return Value{kind: KindUint32, bits: uint64(n)}
}

// Uint32 returns v as a uint32.
// Panics if v is not a Uint32.
func (v Value) Uint32() uint32 {
	if v.kind != KindUint32 {
		panic("Value.Uint32: not a Uint32")
	}
	return uint32(v.bits)
}

// FromUint64 creates a Uint64 value.
func FromUint64(n uint64) Value {
	return Value{kind: KindUint64, bits: n}
}

// Uint64 returns v as a uint64.
// Panics if v is not a Uint64.
func (v Value) Uint64() uint64 {
	if v.kind != KindUint64 {
		panic("Value.Uint64: not a Uint64")
	}
	return v.bits
}

// ---------------------------------------------------------------------------
// Floats
// ---------------------------------------------------------------------------

// FromFloat32 creates a Float32 value.
func FromFloat32(f float32) Value {
	return Value{kind: KindFloat32, bits: uint64(math.Float32bits(f))}
}

// Float32 returns v as a float32.
// Panics if v is not a Float32.
func (v Value) Float32() float32 {
	if v.kind != KindFloat32 {
		panic("Value.Float32: not a Float32")
	}
	return math.Float32frombits(uint32(v.bits))
}

// FromFloat64 creates a Float64 value.
func FromFloat64(f float64) Value {
	return Value{kind: KindFloat64, bits: math.Float64bits(f)}
}

// Float64 returns v as a float64.
// Panics if v is not a Float64.
func (v Value) Float64() float64 {
	if v.kind != KindFloat64 {
		panic("Value.Float64: not a Float64")
	}
	return math.Float64frombits(v.bits)
}

// ---------------------------------------------------------------------------
// Strings
// ---------------------------------------------------------------------------

// FromString creates a String value.
func FromString(s string) Value {
	return Value{kind: KindString, str: s}
}

// Str returns v as a string.
// Panics if v is not a String.
func (v Value) Str() string {
	if v.kind != KindString {
		panic("Value.Str: not a String")
	}
	return v.str
}

// ---------------------------------------------------------------------------
// Display
// ---------------------------------------------------------------------------

// String formats v for display: numbers in decimal, strings verbatim.
func (v Value) String() string {
	switch v.kind {
	case KindInt8, KindInt16, KindInt32, KindInt64:
		return strconv.FormatInt(int64(v.bits), 10)
	case KindUint8, KindUint16, KindUint32, KindUint64:
		return strconv.FormatUint(v.bits, 10)
	case KindFloat32:
		return strconv.FormatFloat(float64(math.Float32frombits(uint32(v.bits))), 'g', -1, 32)
	case KindFloat64:
		return strconv.FormatFloat(math.Float64frombits(v.bits), 'g', -1, 64)
	case KindString:
		return v.str
	default:
		return "<invalid>"
	}
}
