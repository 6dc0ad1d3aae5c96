package packed

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/chazu/bytestack/stack"
)

// ---------------------------------------------------------------------------
// Wire codec
// ---------------------------------------------------------------------------

func reverse(p []byte) {
	for i, j := 0, len(p)-1; i < j; i, j = i+1, j-1 {
		p[i], p[j] = p[j], p[i]
	}
}

// PushValue packs v onto s. The wire form is appended reversed, keeping the
// tag byte on top of the stack.
func PushValue(s *stack.Stack, v Value) error {
	var wire []byte

	switch v.kind {
	case KindString:
		if uint64(len(v.str)) > math.MaxUint32 {
			return fmt.Errorf("%w: %d bytes", ErrStringTooLong, len(v.str))
		}
		wire = make([]byte, 5+len(v.str))
		wire[0] = byte(KindString)
		binary.LittleEndian.PutUint32(wire[1:], uint32(len(v.str)))
		copy(wire[5:], v.str)

	default:
		size, ok := v.kind.payloadSize()
		if !ok {
			return fmt.Errorf("%w: %#x", ErrBadTag, byte(v.kind))
		}
		var buf [9]byte
		buf[0] = byte(v.kind)
		switch size {
		case 1:
			buf[1] = byte(v.bits)
		case 2:
			binary.LittleEndian.PutUint16(buf[1:], uint16(v.bits))
		case 4:
			binary.LittleEndian.PutUint32(buf[1:], uint32(v.bits))
		case 8:
			binary.LittleEndian.PutUint64(buf[1:], v.bits)
		}
		wire = buf[:1+size]
	}

	reverse(wire)
	return s.Push(wire)
}

// PopValue unpacks the value on top of s: the tag byte first, then the
// payload. A failed pop can leave part of the value consumed; the stream is
// not recoverable past the first error.
func PopValue(s *stack.Stack) (Value, error) {
	var scratch [8]byte

	if err := s.PopInto(scratch[:1], 1); err != nil {
		return Value{}, err
	}
	k := Kind(scratch[0])

	if size, ok := k.payloadSize(); ok {
		if err := s.PopInto(scratch[:size], size); err != nil {
			return Value{}, err
		}
		var bits uint64
		switch size {
		case 1:
			bits = uint64(scratch[0])
		case 2:
			bits = uint64(binary.LittleEndian.Uint16(scratch[:2]))
		case 4:
			bits = uint64(binary.LittleEndian.Uint32(scratch[:4]))
		case 8:
			bits = binary.LittleEndian.Uint64(scratch[:8])
		}
		// Re-widen signed payloads so the decoded Value matches its
		// constructor form.
		switch k {
		case KindInt8:
			bits = uint64(int64(int8(bits)))
		case KindInt16:
			bits = uint64(int64(int16(bits)))
		case KindInt32:
			bits = uint64(int64(int32(bits)))
		}
		return Value{kind: k, bits: bits}, nil
	}

	if k != KindString {
		return Value{}, fmt.Errorf("%w: %#x", ErrBadTag, byte(k))
	}
	if err := s.PopInto(scratch[:4], 4); err != nil {
		return Value{}, err
	}
	n := binary.LittleEndian.Uint32(scratch[:4])
	if uint64(n) > uint64(s.Len()) {
		return Value{}, fmt.Errorf("%w: string of %d bytes with %d live", stack.ErrUnderflow, n, s.Len())
	}
	buf := make([]byte, n)
	if err := s.PopInto(buf, int(n)); err != nil {
		return Value{}, err
	}
	return Value{kind: KindString, str: string(buf)}, nil
}

// ---------------------------------------------------------------------------
// Argument lists
// ---------------------------------------------------------------------------

// PushArgs packs vs left to right, leaving the last argument on top.
func PushArgs(s *stack.Stack, vs ...Value) error {
	for _, v := range vs {
		if err := PushValue(s, v); err != nil {
			return err
		}
	}
	return nil
}

// PopArgs unpacks n values from s in pop order, the last-pushed argument
// first.
func PopArgs(s *stack.Stack, n int) ([]Value, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: %d arguments", stack.ErrNegativeCount, n)
	}
	out := make([]Value, 0, n)
	for i := 0; i < n; i++ {
		v, err := PopValue(s)
		if err != nil {
			return nil, fmt.Errorf("argument %d: %w", i, err)
		}
		out = append(out, v)
	}
	return out, nil
}
