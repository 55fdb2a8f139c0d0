package ubx

// Wire-level frame constants, per the UBX frame layout: two sync bytes,
// class, message ID, a little-endian u16 length, the payload, and a
// two-byte Fletcher-16 checksum.
const (
	Sync1 = 0xB5
	Sync2 = 0x62

	// headerLen is the number of bytes preceding the payload (sync x2,
	// class, id, length x2).
	headerLen = 6
	// checksumLen is the number of trailing checksum bytes.
	checksumLen = 2
	// frameOverhead is headerLen + checksumLen: total frame size minus
	// payload length.
	frameOverhead = headerLen + checksumLen
)

// FrameSize returns the total wire size of a frame carrying a payload of
// length payloadLen.
func FrameSize(payloadLen int) int {
	return frameOverhead + payloadLen
}
