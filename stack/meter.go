package stack

import "sync/atomic"

// ---------------------------------------------------------------------------
// Meter: growth and throughput counters
// ---------------------------------------------------------------------------

// Meter aggregates activity counters for one or more stacks. Counters are
// atomic so a meter may be shared across goroutines (for example through a
// Guarded stack). The zero Meter is ready to use.
type Meter struct {
	grows       atomic.Uint64 // growth steps taken
	bytesPushed atomic.Uint64
	bytesPopped atomic.Uint64 // includes discarded bytes
	peak        atomic.Int64  // highest live size seen after a push

	// OnGrow, when set, is called after every growth step with the
	// capacity before and after. Set it before attaching the meter; the
	// callback must not touch the stack it observes.
	OnGrow func(oldCap, newCap int)
}

func (m *Meter) recordGrow(oldCap, newCap int) {
	m.grows.Add(1)
	if m.OnGrow != nil {
		m.OnGrow(oldCap, newCap)
	}
}

func (m *Meter) recordPush(n, sp int) {
	m.bytesPushed.Add(uint64(n))
	for {
		cur := m.peak.Load()
		if int64(sp) <= cur || m.peak.CompareAndSwap(cur, int64(sp)) {
			return
		}
	}
}

func (m *Meter) recordPop(n int) {
	m.bytesPopped.Add(uint64(n))
}

// Grows returns the number of growth steps taken.
func (m *Meter) Grows() uint64 { return m.grows.Load() }

// BytesPushed returns the total number of bytes pushed.
func (m *Meter) BytesPushed() uint64 { return m.bytesPushed.Load() }

// BytesPopped returns the total number of bytes popped, counting discards.
func (m *Meter) BytesPopped() uint64 { return m.bytesPopped.Load() }

// Peak returns the highest live size observed after any push.
func (m *Meter) Peak() int { return int(m.peak.Load()) }
