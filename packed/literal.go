package packed

import (
	"fmt"
	"strconv"
)

// ParseLiteral parses source text into a value of the given kind. Integer
// literals are decimal with an optional sign, floats accept anything
// strconv.ParseFloat does, and string literals must carry their surrounding
// double quotes, which are stripped.
func ParseLiteral(k Kind, text string) (Value, error) {
	switch k {
	case KindInt8, KindInt16, KindInt32, KindInt64:
		size, _ := k.payloadSize()
		n, err := strconv.ParseInt(text, 10, size*8)
		if err != nil {
			return Value{}, fmt.Errorf("%w: cannot parse %s from %q", ErrBadLiteral, k, text)
		}
		return Value{kind: k, bits: uint64(n)}, nil

	case KindUint8, KindUint16, KindUint32, KindUint64:
		size, _ := k.payloadSize()
		n, err := strconv.ParseUint(text, 10, size*8)
		if err != nil {
			return Value{}, fmt.Errorf("%w: cannot parse %s from %q", ErrBadLiteral, k, text)
		}
		return Value{kind: k, bits: n}, nil

	case KindFloat32:
		f, err := strconv.ParseFloat(text, 32)
		if err != nil {
			return Value{}, fmt.Errorf("%w: cannot parse %s from %q", ErrBadLiteral, k, text)
		}
		return FromFloat32(float32(f)), nil

	case KindFloat64:
		f, err := strconv.ParseFloat(text, 64)
		if err != nil {
			return Value{}, fmt.Errorf("%w: cannot parse %s from %q", ErrBadLiteral, k, text)
		}
		return FromFloat64(f), nil

	case KindString:
		if len(text) < 2 || text[0] != '"' || text[len(text)-1] != '"' {
			return Value{}, fmt.Errorf("%w: string literal %q is not quoted", ErrBadLiteral, text)
		}
		return FromString(text[1 : len(text)-1]), nil

	default:
		return Value{}, fmt.Errorf("%w: %#x", ErrBadTag, byte(k))
	}
}
