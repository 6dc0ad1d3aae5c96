package packed

import (
	"bytes"
	"errors"
	"testing"

	"github.com/chazu/bytestack/stack"
)

func testStack(t *testing.T) *stack.Stack {
	t.Helper()
	s, err := stack.New(16, 16)
	if err != nil {
		t.Fatalf("stack.New failed: %v", err)
	}
	return s
}

func TestPushPopRoundTrip(t *testing.T) {
	values := []Value{
		FromInt8(-128),
		FromInt8(127),
		FromInt16(-1),
		FromInt32(-2147483648),
		FromInt64(9223372036854775807),
		FromUint8(0),
		FromUint16(0x1234),
		FromUint32(4294967295),
		FromUint64(18446744073709551615),
		FromFloat32(1.5),
		FromFloat64(-2.5e-3),
		FromString("hello stack"),
		FromString(""),
	}

	for _, want := range values {
		s := testStack(t)
		if err := PushValue(s, want); err != nil {
			t.Fatalf("PushValue(%v %v) failed: %v", want.Kind(), want, err)
		}
		got, err := PopValue(s)
		if err != nil {
			t.Fatalf("PopValue after %v %v failed: %v", want.Kind(), want, err)
		}
		if got != want {
			t.Errorf("round trip = %v %v, want %v %v", got.Kind(), got, want.Kind(), want)
		}
		if s.Len() != 0 {
			t.Errorf("Len() = %d after popping %v value, want 0", s.Len(), want.Kind())
		}
	}
}

func TestWireLayout(t *testing.T) {
	// A Uint16 is three wire bytes stored payload-high-byte first, with
	// the tag on top where the next pop finds it.
	s := testStack(t)
	if err := PushValue(s, FromUint16(0x1234)); err != nil {
		t.Fatalf("PushValue failed: %v", err)
	}
	if s.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", s.Len())
	}
	got, err := s.Slice(0, 3)
	if err != nil {
		t.Fatalf("Slice failed: %v", err)
	}
	want := []byte{0x12, 0x34, byte(KindUint16)}
	if !bytes.Equal(got, want) {
		t.Errorf("wire bytes = %x, want %x", got, want)
	}
}

func TestValuesPopInReverseOrder(t *testing.T) {
	s := testStack(t)
	if err := PushValue(s, FromInt32(1)); err != nil {
		t.Fatalf("PushValue failed: %v", err)
	}
	if err := PushValue(s, FromString("two")); err != nil {
		t.Fatalf("PushValue failed: %v", err)
	}
	if err := PushValue(s, FromFloat64(3)); err != nil {
		t.Fatalf("PushValue failed: %v", err)
	}

	v, err := PopValue(s)
	if err != nil {
		t.Fatalf("PopValue failed: %v", err)
	}
	if v.Float64() != 3 {
		t.Errorf("first pop = %v, want 3", v)
	}
	v, err = PopValue(s)
	if err != nil {
		t.Fatalf("PopValue failed: %v", err)
	}
	if v.Str() != "two" {
		t.Errorf("second pop = %v, want %q", v, "two")
	}
	v, err = PopValue(s)
	if err != nil {
		t.Fatalf("PopValue failed: %v", err)
	}
	if v.Int32() != 1 {
		t.Errorf("third pop = %v, want 1", v)
	}
	if s.Len() != 0 {
		t.Errorf("Len() = %d after popping all values, want 0", s.Len())
	}
}

func TestPopValueEmptyStack(t *testing.T) {
	s := testStack(t)
	if _, err := PopValue(s); !errors.Is(err, stack.ErrUnderflow) {
		t.Errorf("PopValue on empty stack error = %v, want ErrUnderflow", err)
	}
}

func TestPopValueBadTag(t *testing.T) {
	s := testStack(t)
	if err := s.Push([]byte{0xEE}); err != nil {
		t.Fatalf("Push failed: %v", err)
	}
	if _, err := PopValue(s); !errors.Is(err, ErrBadTag) {
		t.Errorf("PopValue error = %v, want ErrBadTag", err)
	}
}

func TestPushValueBadKind(t *testing.T) {
	s := testStack(t)
	if err := PushValue(s, Value{}); !errors.Is(err, ErrBadTag) {
		t.Errorf("PushValue of zero Value error = %v, want ErrBadTag", err)
	}
	if s.Len() != 0 {
		t.Errorf("Len() = %d after rejected push, want 0", s.Len())
	}
}

func TestPopValueTruncatedPayload(t *testing.T) {
	// An Int32 tag with only two payload bytes beneath it.
	s := testStack(t)
	if err := s.Push([]byte{0xAA, 0xBB, byte(KindInt32)}); err != nil {
		t.Fatalf("Push failed: %v", err)
	}
	if _, err := PopValue(s); !errors.Is(err, stack.ErrUnderflow) {
		t.Errorf("PopValue error = %v, want ErrUnderflow", err)
	}
}

func TestPopValueCorruptStringLength(t *testing.T) {
	// A String tag whose length field claims four billion bytes. The
	// decoder must fail before allocating.
	s := testStack(t)
	if err := s.Push([]byte{0xFF, 0xFF, 0xFF, 0xFF, byte(KindString)}); err != nil {
		t.Fatalf("Push failed: %v", err)
	}
	if _, err := PopValue(s); !errors.Is(err, stack.ErrUnderflow) {
		t.Errorf("PopValue error = %v, want ErrUnderflow", err)
	}
}

func TestPushPopArgs(t *testing.T) {
	s := testStack(t)
	err := PushArgs(s, FromInt8(1), FromUint16(2), FromString("three"))
	if err != nil {
		t.Fatalf("PushArgs failed: %v", err)
	}

	got, err := PopArgs(s, 3)
	if err != nil {
		t.Fatalf("PopArgs failed: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("PopArgs returned %d values, want 3", len(got))
	}
	if got[0].Str() != "three" {
		t.Errorf("args[0] = %v, want %q", got[0], "three")
	}
	if got[1].Uint16() != 2 {
		t.Errorf("args[1] = %v, want 2", got[1])
	}
	if got[2].Int8() != 1 {
		t.Errorf("args[2] = %v, want 1", got[2])
	}
	if s.Len() != 0 {
		t.Errorf("Len() = %d after PopArgs, want 0", s.Len())
	}
}

func TestPopArgsErrors(t *testing.T) {
	s := testStack(t)
	if _, err := PopArgs(s, -1); !errors.Is(err, stack.ErrNegativeCount) {
		t.Errorf("PopArgs(-1) error = %v, want ErrNegativeCount", err)
	}

	if err := PushArgs(s, FromInt8(1)); err != nil {
		t.Fatalf("PushArgs failed: %v", err)
	}
	if _, err := PopArgs(s, 2); !errors.Is(err, stack.ErrUnderflow) {
		t.Errorf("PopArgs(2) with one value error = %v, want ErrUnderflow", err)
	}
}
