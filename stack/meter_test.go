package stack

import "testing"

func TestMeterCountsActivity(t *testing.T) {
	s := mustNew(t, 4, 4)
	m := &Meter{}
	s.SetMeter(m)

	// Nine bytes through a four-byte buffer: grows at the fifth and ninth
	// byte, capacity 4 -> 8 -> 12.
	if err := s.Push(make([]byte, 9)); err != nil {
		t.Fatalf("Push failed: %v", err)
	}
	if got := m.Grows(); got != 2 {
		t.Errorf("Grows() = %d, want 2", got)
	}
	if got := m.BytesPushed(); got != 9 {
		t.Errorf("BytesPushed() = %d, want 9", got)
	}
	if got := m.Peak(); got != 9 {
		t.Errorf("Peak() = %d, want 9", got)
	}
	if s.Cap() != 12 {
		t.Errorf("Cap() = %d, want 12", s.Cap())
	}

	if err := s.PopDiscard(5); err != nil {
		t.Fatalf("PopDiscard failed: %v", err)
	}
	if got := m.BytesPopped(); got != 5 {
		t.Errorf("BytesPopped() = %d, want 5", got)
	}

	// Pushing back below the high-water mark must not move the peak.
	if err := s.Push(make([]byte, 2)); err != nil {
		t.Fatalf("Push failed: %v", err)
	}
	if got := m.Peak(); got != 9 {
		t.Errorf("Peak() = %d after refill, want 9", got)
	}
	if got := m.BytesPushed(); got != 11 {
		t.Errorf("BytesPushed() = %d, want 11", got)
	}
}

func TestMeterOnGrowCallback(t *testing.T) {
	s := mustNew(t, 2, 3)
	m := &Meter{}
	var pairs [][2]int
	m.OnGrow = func(oldCap, newCap int) {
		pairs = append(pairs, [2]int{oldCap, newCap})
	}
	s.SetMeter(m)

	if err := s.Push(make([]byte, 7)); err != nil {
		t.Fatalf("Push failed: %v", err)
	}

	want := [][2]int{{2, 5}, {5, 8}}
	if len(pairs) != len(want) {
		t.Fatalf("OnGrow fired %d times, want %d", len(pairs), len(want))
	}
	for i, p := range pairs {
		if p != want[i] {
			t.Errorf("grow %d = %d -> %d, want %d -> %d", i, p[0], p[1], want[i][0], want[i][1])
		}
	}
}

func TestMeterPeakIsHighWaterMark(t *testing.T) {
	s := mustNew(t, 8, 8)
	m := &Meter{}
	s.SetMeter(m)

	if err := s.Push(make([]byte, 6)); err != nil {
		t.Fatalf("Push failed: %v", err)
	}
	if err := s.PopDiscard(6); err != nil {
		t.Fatalf("PopDiscard failed: %v", err)
	}
	if err := s.Push(make([]byte, 3)); err != nil {
		t.Fatalf("Push failed: %v", err)
	}

	if got := m.Peak(); got != 6 {
		t.Errorf("Peak() = %d, want 6", got)
	}
	if got := m.BytesPushed(); got != 9 {
		t.Errorf("BytesPushed() = %d, want 9", got)
	}
	if got := m.BytesPopped(); got != 6 {
		t.Errorf("BytesPopped() = %d, want 6", got)
	}
}
