// Package ubxerr defines the structural error kinds produced by the UBX
// codec: framing errors from the parser and payload errors from a message's
// validate function. Both the buffer/parser layer and the message catalog
// import this package, so the catalog does not depend on the parser.
package ubxerr

import "fmt"

// InvalidChecksumError is returned when a frame's header and length are
// plausible but the computed Fletcher-16 checksum differs from the two
// trailing bytes received on the wire.
type InvalidChecksumError struct {
	// Expect and Got are the received and computed checksums packed as
	// little-endian u16 (CK_A in the low byte, CK_B in the high byte).
	Expect uint16
	Got    uint16
}

func (e *InvalidChecksumError) Error() string {
	return fmt.Sprintf("ubx: invalid checksum: expect=0x%04x got=0x%04x", e.Expect, e.Got)
}

// InvalidPacketLenError is returned when a message's validate function finds
// the payload length incompatible with that message kind's required size,
// and by the parser when a frame's declared length exceeds the active
// variant's payload ceiling.
type InvalidPacketLenError struct {
	Packet string
	Expect int
	Got    int
}

func (e *InvalidPacketLenError) Error() string {
	return fmt.Sprintf("ubx: %s: invalid packet length: expect=%d got=%d", e.Packet, e.Expect, e.Got)
}

// InvalidFieldError is returned when a validate function finds a may-fail
// mapped field whose raw value failed its is_valid predicate.
type InvalidFieldError struct {
	Packet string
	Field  string
}

func (e *InvalidFieldError) Error() string {
	return fmt.Sprintf("ubx: %s: invalid field %q", e.Packet, e.Field)
}

// OutOfMemoryError is returned when a frame's total size exceeds the
// persistent buffer's max capacity and cannot be materialized.
type OutOfMemoryError struct {
	RequiredSize int
}

func (e *OutOfMemoryError) Error() string {
	return fmt.Sprintf("ubx: out of memory: required_size=%d", e.RequiredSize)
}
