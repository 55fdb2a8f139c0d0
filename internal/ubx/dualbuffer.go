package ubx

import (
	"github.com/kstaniek/go-ubx/internal/ubxbuf"
	"github.com/kstaniek/go-ubx/internal/ubxerr"
)

// dualBuffer presents a persistent buffer and a freshly supplied input
// slice as one logical byte stream, materializing bytes from the input
// slice into the persistent buffer only when take() actually needs a
// contiguous view that spans both. Unlike the Rust original this has no
// destructor: callers MUST call finish() on every exit path (including
// error returns) to commit the unconsumed tail back into the persistent
// buffer, mirroring the Rust DualBuffer's Drop impl.
type dualBuffer struct {
	buf    ubxbuf.UnderlyingBuffer
	off    int
	newBuf []byte
	newOff int
}

func newDualBuffer(buf ubxbuf.UnderlyingBuffer, newBuf []byte) *dualBuffer {
	return &dualBuffer{buf: buf, newBuf: newBuf}
}

// at returns the logical byte at index i across both spans.
func (d *dualBuffer) at(i int) byte {
	if d.off+i < d.buf.Len() {
		return d.buf.At(i + d.off)
	}
	return d.newBuf[d.newOff+i-(d.buf.Len()-d.off)]
}

// len returns the total number of accessible bytes in this view. take()
// may still fail to materialize this many bytes at once if they don't fit
// the persistent buffer's capacity.
func (d *dualBuffer) len() int {
	return d.buf.Len() - d.off + len(d.newBuf) - d.newOff
}

// clear drops every accessible byte.
func (d *dualBuffer) clear() {
	d.drain(d.len())
}

// drain removes count elements without materializing a view into them.
func (d *dualBuffer) drain(count int) {
	underlyingBytes := min(d.buf.Len()-d.off, count)
	newBytes := saturatingSub(count, underlyingBytes)
	d.off += underlyingBytes
	d.newOff += newBytes
}

// potentialLostBytes reports how many bytes would be dropped if finish
// were called right now, because the persistent buffer's capacity can't
// hold the full unconsumed tail.
func (d *dualBuffer) potentialLostBytes() int {
	if d.len() <= d.buf.MaxCapacity() {
		return 0
	}
	return d.len() - d.buf.MaxCapacity()
}

// canDrainAndTake reports whether take(takeN) would succeed after first
// draining drainN bytes, without performing either operation.
func (d *dualBuffer) canDrainAndTake(drainN, takeN int) bool {
	underlyingBytes := min(d.buf.Len()-d.off, drainN)
	newBytes := saturatingSub(drainN, underlyingBytes)

	drainedOff := d.off + underlyingBytes
	drainedNewOff := d.newOff + newBytes

	if takeN > d.buf.Len()-drainedOff+len(d.newBuf)-drainedNewOff {
		return false
	}

	underlyingBytes = min(d.buf.Len()-drainedOff, takeN)
	newBytes = saturatingSub(takeN, underlyingBytes)

	if underlyingBytes == 0 {
		return true
	}
	if newBytes == 0 {
		return true
	}
	if newBytes > d.buf.MaxCapacity()-(d.buf.Len()-drainedOff) {
		return false
	}
	return true
}

// peekRaw returns the two spans (persistent, new) covering [lo, hi)
// without consuming anything or materializing a contiguous copy.
func (d *dualBuffer) peekRaw(lo, hi int) (persistent, newer []byte) {
	split := d.buf.Len() - d.off
	if lo >= split {
		persistent = nil
	} else {
		end := hi + d.off
		if end > d.buf.Len() {
			end = d.buf.Len()
		}
		persistent = d.buf.Slice(lo+d.off, end)
	}
	if hi <= split {
		newer = nil
	} else {
		start := d.newOff + saturatingSub(lo, split)
		newer = d.newBuf[start : hi-split+d.newOff]
	}
	return persistent, newer
}

// take returns a contiguous view of the next count bytes, copying bytes
// from the new-input span into the persistent buffer only if a span
// crossing both is requested. Panics if count exceeds len() (a caller
// bug, mirroring the Rust original), and returns *ubxerr.OutOfMemoryError
// if the persistent buffer cannot be grown to hold the materialized span.
func (d *dualBuffer) take(count int) ([]byte, error) {
	underlyingBytes := min(d.buf.Len()-d.off, count)
	newBytes := saturatingSub(count, underlyingBytes)

	if newBytes > len(d.newBuf)-d.newOff {
		panic("ubx: dualBuffer.take: insufficient bytes available")
	}

	if underlyingBytes == 0 {
		offset := d.newOff
		d.newOff += count
		return d.newBuf[offset : offset+count], nil
	}

	if newBytes == 0 {
		offset := d.off
		d.off += count
		return d.buf.Slice(offset, offset+count), nil
	}

	if d.buf.MaxCapacity() < count {
		return nil, &ubxerr.OutOfMemoryError{RequiredSize: count}
	}

	if newBytes < d.buf.MaxCapacity()-d.buf.Len() {
		// Persistent buffer has enough spare capacity to absorb the
		// crossing span without first compacting.
		bytesNotMoved := d.buf.ExtendFromSlice(d.newBuf[d.newOff:])
		d.newOff += len(d.newBuf) - d.newOff - bytesNotMoved
		off := d.off
		d.off += count
		return d.buf.Slice(off, off+count), nil
	}

	// Last resort: compact the persistent buffer down to its unconsumed
	// tail, then extend it with exactly the bytes this take needs.
	d.buf.Drain(d.off)
	d.off = 0
	d.buf.ExtendFromSlice(d.newBuf[d.newOff : d.newOff+newBytes])
	d.newOff += newBytes
	d.off += count
	return d.buf.Slice(0, count), nil
}

// finish commits the unconsumed tail back into the persistent buffer:
// drops everything already consumed, then appends whatever of the new
// span remains. Every exit path from code using a dualBuffer must call
// this exactly once, since Go has no destructor to do it implicitly.
func (d *dualBuffer) finish() {
	d.buf.Drain(d.off)
	d.buf.ExtendFromSlice(d.newBuf[d.newOff:])
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func saturatingSub(a, b int) int {
	if a < b {
		return 0
	}
	return a - b
}
