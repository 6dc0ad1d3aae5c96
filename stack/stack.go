package stack

import (
	"fmt"
	"io"
)

// ---------------------------------------------------------------------------
// Stack: growable byte LIFO
// ---------------------------------------------------------------------------

// Stack is a last-in-first-out byte buffer that grows by a fixed step.
//
// The buffer length is the capacity. Bytes [0, Len()) are live; bytes
// [Len(), Cap()) are zero, an invariant maintained by the pop operations.
// Growth reallocates the buffer, so no caller may hold a view into it:
// every extraction returns an independently owned copy.
//
// A Stack assumes a single owner and provides no synchronization; see
// Guarded for concurrent use. The zero Stack is not usable, create one
// with New.
type Stack struct {
	data []byte // owned buffer; len(data) is the capacity
	sp   int    // stack pointer: count of live bytes, one past the top
	step int    // bytes added per growth step

	meter *Meter // optional instrumentation, nil when unset
}

// New creates a stack with the given initial capacity and growth step.
// Both values must be positive: a non-positive step would make the growth
// loop in Push spin forever. Allocation failure is fatal (runtime panic),
// there is no recovery path inside this package.
func New(initialSize, growthStep int) (*Stack, error) {
	if initialSize <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidInitialSize, initialSize)
	}
	if growthStep <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidGrowthStep, growthStep)
	}
	return &Stack{
		data: make([]byte, initialSize),
		step: growthStep,
	}, nil
}

// Len returns the number of live bytes (the stack pointer).
func (s *Stack) Len() int { return s.sp }

// Cap returns the allocated capacity in bytes. Capacity only ever grows,
// in multiples of the growth step above the initial size.
func (s *Stack) Cap() int { return len(s.data) }

// GrowthStep returns the configured growth step.
func (s *Stack) GrowthStep() int { return s.step }

// SetMeter attaches m to the stack. A nil meter disables instrumentation.
func (s *Stack) SetMeter(m *Meter) { s.meter = m }

// grow reallocates the buffer with step more bytes, preserving all live
// bytes at their offsets. The added region is zeroed by allocation.
func (s *Stack) grow() {
	oldCap := len(s.data)
	next := make([]byte, oldCap+s.step)
	copy(next, s.data)
	s.data = next
	if s.meter != nil {
		s.meter.recordGrow(oldCap, len(s.data))
	}
}

// Push appends the bytes of p to the top of the stack. The buffer is grown
// by the configured step whenever it is full; the check runs per byte and
// repeats until there is room, so the capacity invariant holds after every
// single byte written, not just after the whole push.
func (s *Stack) Push(p []byte) error {
	if s.data == nil {
		return ErrReleased
	}
	for _, b := range p {
		for s.sp >= len(s.data) {
			s.grow()
		}
		s.data[s.sp] = b
		s.sp++
	}
	if s.meter != nil {
		s.meter.recordPush(len(p), s.sp)
	}
	return nil
}

// PopDiscard removes the top n bytes without returning them. Each vacated
// slot is zeroed at the offset it occupied. On any error the stack is
// untouched. Popping never reallocates.
func (s *Stack) PopDiscard(n int) error {
	if s.data == nil {
		return ErrReleased
	}
	if n < 0 {
		return fmt.Errorf("%w: %d", ErrNegativeCount, n)
	}
	if n > s.sp {
		return fmt.Errorf("%w: popping %d of %d live bytes", ErrUnderflow, n, s.sp)
	}
	for i := 0; i < n; i++ {
		s.sp--
		s.data[s.sp] = 0
	}
	if s.meter != nil {
		s.meter.recordPop(n)
	}
	return nil
}

// PopInto pops n bytes into buf in reverse storage order: the most recently
// pushed byte lands in buf[0], the next in buf[1], and so on. Each slot in
// the stack's own buffer is zeroed as soon as its byte is copied out. On
// any error the stack is untouched.
func (s *Stack) PopInto(buf []byte, n int) error {
	if s.data == nil {
		return ErrReleased
	}
	if n < 0 {
		return fmt.Errorf("%w: %d", ErrNegativeCount, n)
	}
	if n > s.sp {
		return fmt.Errorf("%w: popping %d of %d live bytes", ErrUnderflow, n, s.sp)
	}
	if len(buf) < n {
		return fmt.Errorf("%w: need %d, have %d", io.ErrShortBuffer, n, len(buf))
	}
	for i := 0; i < n; i++ {
		s.sp--
		buf[i] = s.data[s.sp]
		s.data[s.sp] = 0
	}
	if s.meter != nil {
		s.meter.recordPop(n)
	}
	return nil
}

// Pop removes the top n bytes and returns them as a fresh buffer in reverse
// storage order. Ownership of the result transfers fully to the caller; the
// stack keeps no reference to it.
func (s *Stack) Pop(n int) ([]byte, error) {
	if s.data == nil {
		return nil, ErrReleased
	}
	if n < 0 {
		return nil, fmt.Errorf("%w: %d", ErrNegativeCount, n)
	}
	if n > s.sp {
		return nil, fmt.Errorf("%w: popping %d of %d live bytes", ErrUnderflow, n, s.sp)
	}
	buf := make([]byte, n)
	if err := s.PopInto(buf, n); err != nil {
		return nil, err
	}
	return buf, nil
}

// Slice copies the raw bytes at offsets [from, to) into a fresh buffer, in
// storage order. This is an absolute-offset read of the underlying region,
// not a stack operation: the range may extend past the stack pointer into
// the zeroed dead region, but never past the capacity. The stack is not
// modified.
func (s *Stack) Slice(from, to int) ([]byte, error) {
	if s.data == nil {
		return nil, ErrReleased
	}
	if from < 0 || to < from || to > len(s.data) {
		return nil, fmt.Errorf("%w: [%d:%d) with capacity %d", ErrOutOfBounds, from, to, len(s.data))
	}
	out := make([]byte, to-from)
	copy(out, s.data[from:to])
	return out, nil
}

// Release drops the owned buffer. Every later operation, including a second
// Release, fails with ErrReleased.
func (s *Stack) Release() error {
	if s.data == nil {
		return ErrReleased
	}
	s.data = nil
	s.sp = 0
	return nil
}
