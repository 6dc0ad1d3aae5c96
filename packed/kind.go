package packed

import "fmt"

// Kind identifies the runtime type of a packed value. The byte value of a
// Kind is its wire tag.
type Kind byte

// Wire tags - one byte ahead of each payload on the stack
const (
	KindInvalid Kind = 0x0 // zero value, never encoded
	KindInt8    Kind = 0x1
	KindInt16   Kind = 0x2
	KindInt32   Kind = 0x3
	KindInt64   Kind = 0x4
	KindUint8   Kind = 0x5
	KindUint16  Kind = 0x6
	KindUint32  Kind = 0x7
	KindUint64  Kind = 0x8
	KindFloat32 Kind = 0x9
	KindFloat64 Kind = 0xA
	KindString  Kind = 0xB // four-byte length, then the bytes
)

// payloadSize returns the encoded payload width for fixed-width kinds. The
// second result is false for KindString, whose payload carries its own
// length, and for unknown tags.
func (k Kind) payloadSize() (int, bool) {
	switch k {
	case KindInt8, KindUint8:
		return 1, true
	case KindInt16, KindUint16:
		return 2, true
	case KindInt32, KindUint32, KindFloat32:
		return 4, true
	case KindInt64, KindUint64, KindFloat64:
		return 8, true
	default:
		return 0, false
	}
}

func (k Kind) String() string {
	switch k {
	case KindInt8:
		return "Int8"
	case KindInt16:
		return "Int16"
	case KindInt32:
		return "Int32"
	case KindInt64:
		return "Int64"
	case KindUint8:
		return "Uint8"
	case KindUint16:
		return "Uint16"
	case KindUint32:
		return "Uint32"
	case KindUint64:
		return "Uint64"
	case KindFloat32:
		return "Float32"
	case KindFloat64:
		return "Float64"
	case KindString:
		return "String"
	default:
		return fmt.Sprintf("Kind(%#x)", byte(k))
	}
}
