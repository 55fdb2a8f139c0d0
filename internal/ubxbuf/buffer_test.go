package ubxbuf

import "testing"

func TestGrowable(t *testing.T) {
	b := NewGrowable()
	if b.Len() != 0 {
		t.Fatalf("expected empty, got len=%d", b.Len())
	}
	if overflow := b.ExtendFromSlice([]byte{1, 2, 3}); overflow != 0 {
		t.Fatalf("expected no overflow, got %d", overflow)
	}
	if b.Len() != 3 {
		t.Fatalf("expected len=3, got %d", b.Len())
	}
	if got := b.Slice(0, 3); string(got) != string([]byte{1, 2, 3}) {
		t.Fatalf("unexpected slice: %v", got)
	}
	b.Drain(2)
	if b.Len() != 1 || b.At(0) != 3 {
		t.Fatalf("expected [3] after drain, got len=%d at0=%d", b.Len(), b.At(0))
	}
	b.Clear()
	if b.Len() != 0 {
		t.Fatalf("expected empty after clear, got %d", b.Len())
	}
}

func TestGrowableFind(t *testing.T) {
	b := NewGrowable()
	b.ExtendFromSlice([]byte{0xB5, 0x01, 0x62})
	idx, ok := b.Find(0x62)
	if !ok || idx != 2 {
		t.Fatalf("expected index 2, got idx=%d ok=%v", idx, ok)
	}
	if _, ok := b.Find(0xFF); ok {
		t.Fatalf("expected not found")
	}
}

func TestFixedDrainAll(t *testing.T) {
	b := NewFixed(4)
	b.ExtendFromSlice([]byte{1, 2, 3})
	b.Drain(10)
	if b.Len() != 0 {
		t.Fatalf("expected 0 after over-draining, got %d", b.Len())
	}
}

func TestFixedOverflow(t *testing.T) {
	b := NewFixed(4)
	overflow := b.ExtendFromSlice([]byte{1, 2, 3, 4, 5, 6})
	if overflow != 2 {
		t.Fatalf("expected overflow=2, got %d", overflow)
	}
	if b.Len() != 4 {
		t.Fatalf("expected len=4 (capacity), got %d", b.Len())
	}
}

func TestFixedCompactionAfterPartialDrain(t *testing.T) {
	b := NewFixed(4)
	b.ExtendFromSlice([]byte{1, 2, 3, 4})
	b.Drain(2)
	if b.Len() != 2 {
		t.Fatalf("expected len=2, got %d", b.Len())
	}
	// space should be reclaimed: extending with 2 more bytes should not overflow.
	overflow := b.ExtendFromSlice([]byte{5, 6})
	if overflow != 0 {
		t.Fatalf("expected no overflow after compaction, got %d", overflow)
	}
	want := []byte{3, 4, 5, 6}
	got := b.Slice(0, 4)
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, got)
		}
	}
}

func TestFixedLinearBorrowsCallerSlice(t *testing.T) {
	backing := make([]byte, 4)
	b := NewFixedLinear(backing)
	if b.MaxCapacity() != 4 {
		t.Fatalf("expected capacity=4, got %d", b.MaxCapacity())
	}
	overflow := b.ExtendFromSlice([]byte{9, 9, 9, 9, 9})
	if overflow != 1 {
		t.Fatalf("expected overflow=1, got %d", overflow)
	}
	// backing array itself should now hold the written prefix.
	for i := 0; i < 4; i++ {
		if backing[i] != 9 {
			t.Fatalf("expected backing written through, got %v", backing)
		}
	}
}

func TestIndexOutOfRangePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic on out-of-range At")
		}
	}()
	b := NewFixed(4)
	b.ExtendFromSlice([]byte{1, 2})
	_ = b.At(2)
}

func TestSliceOutOfRangePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic on out-of-range Slice")
		}
	}()
	b := NewGrowable()
	b.ExtendFromSlice([]byte{1, 2})
	_ = b.Slice(0, 3)
}
