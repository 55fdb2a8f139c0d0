package ubx

import (
	"github.com/kstaniek/go-ubx/internal/checksum"
	"github.com/kstaniek/go-ubx/internal/ubxbuf"
	"github.com/kstaniek/go-ubx/internal/ubxerr"
)

// Parser holds the persistent unconsumed-byte state across Consume calls
// for one protocol variant. It performs no I/O and never blocks; feeding
// it bytes and draining its iterator is entirely the caller's business.
type Parser struct {
	buf     ubxbuf.UnderlyingBuffer
	variant Variant
}

// NewParser builds a parser over a caller-chosen buffer capability. Use
// NewGrowableParser, NewFixedParser, or NewFixedLinearParser for the three
// capability variants this codec ships.
func NewParser(variant Variant, buf ubxbuf.UnderlyingBuffer) *Parser {
	return &Parser{buf: buf, variant: variant}
}

// NewGrowableParser allocates a parser whose persistent buffer grows to
// fit whatever residual bytes accumulate between calls.
func NewGrowableParser(variant Variant) *Parser {
	return NewParser(variant, ubxbuf.NewGrowable())
}

// NewFixedParser allocates a parser whose persistent buffer is capped at
// capacity bytes; frames that would require more are reported as
// OutOfMemory rather than grown into.
func NewFixedParser(variant Variant, capacity int) *Parser {
	return NewParser(variant, ubxbuf.NewFixed(capacity))
}

// NewFixedLinearParser builds a parser over a caller-owned backing array,
// capped at len(backing); the persistent buffer never allocates.
func NewFixedLinearParser(variant Variant, backing []byte) *Parser {
	return NewParser(variant, ubxbuf.NewFixedLinear(backing))
}

// Consume returns an iterator over every complete packet (or structural
// error) decodable from the persistent buffer's residual bytes followed
// by input. The iterator must be driven to exhaustion (Next returning
// ok=false) or explicitly Close'd; either commits the unconsumed tail
// back into the parser for the next call.
func (p *Parser) Consume(input []byte) *Iterator {
	return &Iterator{p: p, d: newDualBuffer(p.buf, input)}
}

// Iterator yields packets one at a time from a single Consume call. It is
// not safe for concurrent use, and must not outlive the Parser it was
// created from.
type Iterator struct {
	p    *Parser
	d    *dualBuffer
	done bool
}

// Close commits the iterator's unconsumed tail back into the parser. Safe
// to call multiple times, and safe (but unnecessary) to call after Next
// has already reported exhaustion.
func (it *Iterator) Close() {
	if it.done {
		return
	}
	it.d.finish()
	it.done = true
}

// Next advances the iterator by one step. ok is false once the buffered
// bytes are exhausted (no complete frame remains); the caller should stop
// iterating, not retry. A true ok with a non-nil err reports a structural
// framing error for the bytes just consumed; the iterator remains usable
// for the next candidate frame.
func (it *Iterator) Next() (pkt Packet, err error, ok bool) {
	if it.done {
		return Packet{}, nil, false
	}
	d := it.d
	maxPayload := maxPayloadLenFor(it.p.variant)

	for {
		if d.len() < 2 {
			it.Close()
			return Packet{}, nil, false
		}
		if d.at(0) != Sync1 {
			if k, found := findSync1(d); found {
				d.drain(k)
				continue
			}
			d.clear()
			it.Close()
			return Packet{}, nil, false
		}
		if d.len() < 2 {
			it.Close()
			return Packet{}, nil, false
		}
		if d.at(1) != Sync2 {
			d.drain(1)
			continue
		}
		if d.len() < headerLen {
			it.Close()
			return Packet{}, nil, false
		}

		length := int(d.at(4)) | int(d.at(5))<<8
		if length > maxPayload {
			d.drain(2)
			return Packet{}, &ubxerr.InvalidPacketLenError{Packet: "frame", Expect: maxPayload, Got: length}, true
		}

		total := FrameSize(length)
		if d.len() < total {
			it.Close()
			return Packet{}, nil, false
		}

		if !d.canDrainAndTake(0, total) && d.buf.MaxCapacity() < total {
			d.drain(2)
			return Packet{}, &ubxerr.OutOfMemoryError{RequiredSize: total}, true
		}

		frame, takeErr := d.take(total)
		if takeErr != nil {
			return Packet{}, takeErr, true
		}

		class, id := frame[2], frame[3]
		payload := frame[headerLen : headerLen+length]

		c := checksum.New()
		c.Update(frame[2 : headerLen+length])
		if valErr := c.Validate(frame[headerLen+length], frame[headerLen+length+1]); valErr != nil {
			return Packet{}, valErr, true
		}

		kind := match(it.p.variant, class, id, payload)
		return Packet{Class: class, ID: id, Payload: payload, Kind: kind}, nil, true
	}
}

// findSync1 scans the logical dual-buffer view for the first Sync1 byte,
// returning its offset from the current head. Used after a false start
// (head byte wasn't Sync1) to resynchronize without backtracking.
func findSync1(d *dualBuffer) (int, bool) {
	n := d.len()
	for i := 0; i < n; i++ {
		if d.at(i) == Sync1 {
			return i, true
		}
	}
	return 0, false
}
