package message

import (
	"github.com/kstaniek/go-ubx/internal/checksum"
	"github.com/kstaniek/go-ubx/internal/ubxerr"
)

const ackPayloadLen = 2

// --- ACK-ACK (0x05 0x01), fixed 2 bytes ---

type AckAckRef View

func NewAckAckRef(payload []byte) (AckAckRef, error) {
	if len(payload) != ackPayloadLen {
		return nil, &ubxerr.InvalidPacketLenError{Packet: "ACK-ACK", Expect: ackPayloadLen, Got: len(payload)}
	}
	return AckAckRef(payload), nil
}

func (v AckAckRef) ClassID() uint8 { return View(v).u8(0) }
func (v AckAckRef) MsgID() uint8   { return View(v).u8(1) }

// IsAckFor reports whether this ACK-ACK acknowledges the given message
// kind.
func (v AckAckRef) IsAckFor(class, id byte) bool {
	return v.ClassID() == class && v.MsgID() == id
}

type AckAckOwned struct{ data [ackPayloadLen]byte }

func NewAckAckOwned(payload []byte) (*AckAckOwned, error) {
	if _, err := NewAckAckRef(payload); err != nil {
		return nil, err
	}
	o := &AckAckOwned{}
	copy(o.data[:], payload)
	return o, nil
}

func (o *AckAckOwned) View() AckAckRef { return AckAckRef(o.data[:]) }

// AckAckBuilder composes an outbound ACK-ACK frame.
type AckAckBuilder struct {
	ClassID byte
	MsgID   byte
}

// Build returns the complete 10-byte wire frame: sync, class 0x05, id
// 0x01, little-endian length 2, the two payload bytes, and the Fletcher-16
// checksum.
func (b AckAckBuilder) Build() [10]byte {
	var frame [10]byte
	writeFixedHeader(frame[:], 0x05, 0x01, ackPayloadLen)
	frame[6] = b.ClassID
	frame[7] = b.MsgID
	finalizeChecksum(frame[:])
	return frame
}

// --- ACK-NAK (0x05 0x00), fixed 2 bytes ---

type AckNakRef View

func NewAckNakRef(payload []byte) (AckNakRef, error) {
	if len(payload) != ackPayloadLen {
		return nil, &ubxerr.InvalidPacketLenError{Packet: "ACK-NAK", Expect: ackPayloadLen, Got: len(payload)}
	}
	return AckNakRef(payload), nil
}

func (v AckNakRef) ClassID() uint8 { return View(v).u8(0) }
func (v AckNakRef) MsgID() uint8   { return View(v).u8(1) }

func (v AckNakRef) IsNakFor(class, id byte) bool {
	return v.ClassID() == class && v.MsgID() == id
}

type AckNakOwned struct{ data [ackPayloadLen]byte }

func NewAckNakOwned(payload []byte) (*AckNakOwned, error) {
	if _, err := NewAckNakRef(payload); err != nil {
		return nil, err
	}
	o := &AckNakOwned{}
	copy(o.data[:], payload)
	return o, nil
}

func (o *AckNakOwned) View() AckNakRef { return AckNakRef(o.data[:]) }

// AckNakBuilder composes an outbound ACK-NAK frame.
type AckNakBuilder struct {
	ClassID byte
	MsgID   byte
}

func (b AckNakBuilder) Build() [10]byte {
	var frame [10]byte
	writeFixedHeader(frame[:], 0x05, 0x00, ackPayloadLen)
	frame[6] = b.ClassID
	frame[7] = b.MsgID
	finalizeChecksum(frame[:])
	return frame
}

// writeFixedHeader writes sync, class, id, and the little-endian payload
// length into the first 6 bytes of frame, leaving the payload and
// checksum bytes for the caller.
func writeFixedHeader(frame []byte, class, id byte, payloadLen int) {
	frame[0] = 0xB5
	frame[1] = 0x62
	frame[2] = class
	frame[3] = id
	putU16(frame, 4, uint16(payloadLen))
}

// finalizeChecksum computes the Fletcher-16 checksum over frame[2:len-2]
// and writes it into the last two bytes of frame.
func finalizeChecksum(frame []byte) {
	c := checksum.New()
	c.Update(frame[2 : len(frame)-2])
	a, b := c.Result()
	frame[len(frame)-2] = a
	frame[len(frame)-1] = b
}
