package stack

import "sync"

// ---------------------------------------------------------------------------
// Guarded: externally locked stack for concurrent embedders
// ---------------------------------------------------------------------------

// Guarded wraps a Stack with one mutex per instance. The core Stack assumes
// a single owner, and growth reallocates the buffer, which rules out
// lock-free sharing: concurrent embedders serialize every operation behind
// the instance lock instead.
type Guarded struct {
	mu sync.Mutex
	st *Stack
}

// NewGuarded creates a lock-guarded stack with the given initial capacity
// and growth step.
func NewGuarded(initialSize, growthStep int) (*Guarded, error) {
	st, err := New(initialSize, growthStep)
	if err != nil {
		return nil, err
	}
	return &Guarded{st: st}, nil
}

// Push appends the bytes of p to the top of the stack.
func (g *Guarded) Push(p []byte) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.st.Push(p)
}

// PopDiscard removes the top n bytes, zeroing the vacated slots.
func (g *Guarded) PopDiscard(n int) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.st.PopDiscard(n)
}

// PopInto pops n bytes into buf in reverse storage order.
func (g *Guarded) PopInto(buf []byte, n int) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.st.PopInto(buf, n)
}

// Pop removes the top n bytes and returns them as a fresh buffer.
func (g *Guarded) Pop(n int) ([]byte, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.st.Pop(n)
}

// Slice copies the raw bytes at offsets [from, to) into a fresh buffer.
func (g *Guarded) Slice(from, to int) ([]byte, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.st.Slice(from, to)
}

// Release drops the owned buffer.
func (g *Guarded) Release() error {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.st.Release()
}

// Len returns the number of live bytes.
func (g *Guarded) Len() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.st.Len()
}

// Cap returns the allocated capacity in bytes.
func (g *Guarded) Cap() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.st.Cap()
}

// GrowthStep returns the configured growth step.
func (g *Guarded) GrowthStep() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.st.GrowthStep()
}

// SetMeter attaches m to the underlying stack.
func (g *Guarded) SetMeter(m *Meter) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.st.SetMeter(m)
}
