package ubx

import (
	"testing"

	"github.com/kstaniek/go-ubx/internal/ubxbuf"
)

func newGrowableWith(bytes ...byte) *ubxbuf.Growable {
	b := ubxbuf.NewGrowable()
	b.ExtendFromSlice(bytes)
	return b
}

func TestDualBufferSplitIndexing(t *testing.T) {
	buf := newGrowableWith(1, 2, 3, 4)
	newb := []byte{5, 6, 7, 8}
	d := newDualBuffer(buf, newb)
	defer d.finish()
	for i := 0; i < 8; i++ {
		if got := d.at(i); got != byte(i+1) {
			t.Fatalf("at(%d) = %d, want %d", i, got, i+1)
		}
	}
}

func TestDualBufferTakeTooManyPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic")
		}
	}()
	buf := newGrowableWith(1, 2, 3, 4)
	d := newDualBuffer(buf, nil)
	defer d.finish()
	_, _ = d.take(6)
}

func TestDualBufferTakeRangeUnderlying(t *testing.T) {
	buf := newGrowableWith(1, 2, 3, 4)
	func() {
		d := newDualBuffer(buf, nil)
		defer d.finish()
		x, err := d.take(3)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if string(x) != string([]byte{1, 2, 3}) {
			t.Fatalf("unexpected take: %v", x)
		}
	}()
	if got := buf.Slice(0, buf.Len()); string(got) != string([]byte{4}) {
		t.Fatalf("expected [4] left in buffer, got %v", got)
	}
}

func TestDualBufferTakeRangeNew(t *testing.T) {
	buf := ubxbuf.NewGrowable()
	newb := []byte{1, 2, 3, 4}
	func() {
		d := newDualBuffer(buf, newb)
		defer d.finish()
		x, err := d.take(3)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if string(x) != string([]byte{1, 2, 3}) {
			t.Fatalf("unexpected take: %v", x)
		}
	}()
	if got := buf.Slice(0, buf.Len()); string(got) != string([]byte{4}) {
		t.Fatalf("expected [4] left in buffer, got %v", got)
	}
}

func TestDualBufferTakeRangeOverlapping(t *testing.T) {
	buf := newGrowableWith(1, 2, 3, 4)
	newb := []byte{5, 6, 7, 8}
	func() {
		d := newDualBuffer(buf, newb)
		defer d.finish()
		x, err := d.take(6)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if string(x) != string([]byte{1, 2, 3, 4, 5, 6}) {
			t.Fatalf("unexpected take: %v", x)
		}
	}()
	if got := buf.Slice(0, buf.Len()); string(got) != string([]byte{7, 8}) {
		t.Fatalf("expected [7 8] left in buffer, got %v", got)
	}
}

func TestDualBufferTakeMultiRanges(t *testing.T) {
	buf := newGrowableWith(1, 2, 3, 4, 5, 6, 7)
	newb := []byte{8, 9, 10, 11, 12}
	func() {
		d := newDualBuffer(buf, newb)
		defer d.finish()
		for _, want := range [][]byte{{1, 2, 3}, {4, 5, 6}, {7, 8, 9}, {10, 11, 12}} {
			got, err := d.take(3)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if string(got) != string(want) {
				t.Fatalf("got %v, want %v", got, want)
			}
		}
	}()
	if buf.Len() != 0 {
		t.Fatalf("expected buffer empty, got len=%d", buf.Len())
	}
}

func TestDualBufferCanDrainAndTake(t *testing.T) {
	buf := newGrowableWith(1, 2, 3, 4)
	newb := []byte{5, 6, 7, 8}
	d := newDualBuffer(buf, newb)
	defer d.finish()
	if !d.canDrainAndTake(2, 4) {
		t.Fatalf("expected drain(2)+take(4) to be feasible")
	}
	if d.canDrainAndTake(2, 100) {
		t.Fatalf("expected drain(2)+take(100) to be infeasible")
	}
}

func TestDualBufferPotentialLostBytes(t *testing.T) {
	buf := ubxbuf.NewFixed(4)
	buf.ExtendFromSlice([]byte{1, 2, 3, 4})
	newb := []byte{5, 6, 7, 8}
	d := newDualBuffer(buf, newb)
	defer d.finish()
	if got := d.potentialLostBytes(); got != 4 {
		t.Fatalf("expected 4 potentially lost bytes, got %d", got)
	}
}

func TestDualBufferFinishCommitsTail(t *testing.T) {
	buf := newGrowableWith(1, 2)
	newb := []byte{3, 4, 5}
	d := newDualBuffer(buf, newb)
	_, err := d.take(2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	d.finish()
	if got := buf.Slice(0, buf.Len()); string(got) != string([]byte{3, 4, 5}) {
		t.Fatalf("expected [3 4 5] committed back, got %v", got)
	}
}
