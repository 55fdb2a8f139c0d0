// Package message is the catalog of UBX message kinds: per-kind typed
// views (Ref, borrowed; Owned, copied), validate functions, field
// accessors, and builders for send-capable kinds. It depends only on
// ubxerr and checksum, not on the parser/dispatch engine, so the engine can
// import this package without a cycle.
package message

import "encoding/binary"

// View is a validated payload slice. Every per-kind *Ref type is a View
// with accessor methods; Owned types expose the same accessors through a
// View() method over their inline copy.
type View []byte

func (v View) u8(off int) uint8   { return v[off] }
func (v View) i8(off int) int8    { return int8(v[off]) }
func (v View) u16(off int) uint16 { return binary.LittleEndian.Uint16(v[off:]) }
func (v View) i16(off int) int16  { return int16(binary.LittleEndian.Uint16(v[off:])) }
func (v View) u32(off int) uint32 { return binary.LittleEndian.Uint32(v[off:]) }
func (v View) i32(off int) int32  { return int32(binary.LittleEndian.Uint32(v[off:])) }

func putU8(buf []byte, off int, v uint8)   { buf[off] = v }
func putU16(buf []byte, off int, v uint16) { binary.LittleEndian.PutUint16(buf[off:], v) }
func putI16(buf []byte, off int, v int16)  { binary.LittleEndian.PutUint16(buf[off:], uint16(v)) }
func putU32(buf []byte, off int, v uint32) { binary.LittleEndian.PutUint32(buf[off:], v) }
func putI32(buf []byte, off int, v int32)  { binary.LittleEndian.PutUint32(buf[off:], uint32(v)) }

// scaleI32 returns raw*scale as the wider float a scaled i32 field exposes.
func scaleI32(raw int32, scale float64) float64 { return float64(raw) * scale }

// scaleU32 returns raw*scale as the wider float a scaled u32 field exposes.
func scaleU32(raw uint32, scale float64) float64 { return float64(raw) * scale }

// scaleI16 returns raw*scale as the wider float a scaled i16 field exposes.
func scaleI16(raw int16, scale float64) float64 { return float64(raw) * scale }

// scaleU16 returns raw*scale as the wider float a scaled u16 field exposes.
func scaleU16(raw uint16, scale float64) float64 { return float64(raw) * scale }

// unscaleI32 rounds and saturates f/scale into an int32, the builder-side
// inverse of scaleI32.
func unscaleI32(f, scale float64) int32 {
	v := f / scale
	if v > 2147483647 {
		return 2147483647
	}
	if v < -2147483648 {
		return -2147483648
	}
	return int32(roundHalfAwayFromZero(v))
}

// unscaleU32 rounds and saturates f/scale into a uint32.
func unscaleU32(f, scale float64) uint32 {
	v := f / scale
	if v < 0 {
		return 0
	}
	if v > 4294967295 {
		return 4294967295
	}
	return uint32(roundHalfAwayFromZero(v))
}

// unscaleI16 rounds and saturates f/scale into an int16.
func unscaleI16(f, scale float64) int16 {
	v := f / scale
	if v > 32767 {
		return 32767
	}
	if v < -32768 {
		return -32768
	}
	return int16(roundHalfAwayFromZero(v))
}

func roundHalfAwayFromZero(v float64) float64 {
	if v >= 0 {
		return float64(int64(v + 0.5))
	}
	return float64(int64(v - 0.5))
}
