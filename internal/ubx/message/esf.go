package message

import "github.com/kstaniek/go-ubx/internal/ubxerr"

// --- ESF-MEAS (0x10 0x02), variable: 8-byte header (timeTag, flags,
// id) followed by a sequence of 4-byte packed sensor-measurement data
// blocks. The optional trailing calibTtag block present when the
// "calibTtagValid" flag bit is set is not modeled; the accessor always
// treats the whole trailing region as data blocks, which is the common
// case for the representative catalog this codec carries. ---

const (
	esfMeasHeaderLen = 8
	esfMeasBlockLen  = 4
	// esfMeasMaxBlocks is the widest numMeas the 5-bit count field in Flags
	// can encode.
	esfMeasMaxBlocks = 31
	esfMeasMaxLen    = esfMeasHeaderLen + esfMeasMaxBlocks*esfMeasBlockLen
)

type EsfMeasRef View

func NewEsfMeasRef(payload []byte) (EsfMeasRef, error) {
	if len(payload) < esfMeasHeaderLen {
		return nil, &ubxerr.InvalidPacketLenError{Packet: "ESF-MEAS", Expect: esfMeasHeaderLen, Got: len(payload)}
	}
	trailing := payload[esfMeasHeaderLen:]
	if len(trailing)%esfMeasBlockLen != 0 {
		return nil, &ubxerr.InvalidFieldError{Packet: "ESF-MEAS", Field: "data"}
	}
	return EsfMeasRef(payload), nil
}

func (v EsfMeasRef) TimeTag() uint32 { return View(v).u32(0) }
func (v EsfMeasRef) Flags() uint16   { return View(v).u16(4) }
func (v EsfMeasRef) ID() uint16      { return View(v).u16(6) }

func (v EsfMeasRef) Data() EsfMeasDataIter {
	return EsfMeasDataIter{data: View(v)[esfMeasHeaderLen:]}
}

type EsfMeasDataIter struct {
	data   View
	offset int
}

func (it *EsfMeasDataIter) Next() (uint32, bool) {
	if it.offset >= len(it.data) {
		return 0, false
	}
	raw := it.data.u32(it.offset)
	it.offset += esfMeasBlockLen
	return raw, true
}

// EsfMeasOwned copies an ESF-MEAS payload into an inline array sized to
// esfMeasMaxLen.
type EsfMeasOwned struct {
	data [esfMeasMaxLen]byte
	n    int
}

func NewEsfMeasOwned(payload []byte) (*EsfMeasOwned, error) {
	if _, err := NewEsfMeasRef(payload); err != nil {
		return nil, err
	}
	if len(payload) > esfMeasMaxLen {
		return nil, &ubxerr.InvalidPacketLenError{Packet: "ESF-MEAS", Expect: esfMeasMaxLen, Got: len(payload)}
	}
	o := &EsfMeasOwned{n: len(payload)}
	copy(o.data[:], payload)
	return o, nil
}

func (o *EsfMeasOwned) View() EsfMeasRef { return EsfMeasRef(o.data[:o.n]) }

// --- ESF-RAW (0x10 0x03), variable: 4 reserved bytes followed by 8-byte
// (data u32, sensor time tag u32) blocks. ---

const (
	esfRawHeaderLen = 4
	esfRawBlockLen  = 8
	// esfRawMaxBlocks mirrors esfMeasMaxBlocks: the same 5-bit measurement
	// count ceiling applies to the raw sensor stream.
	esfRawMaxBlocks = 31
	esfRawMaxLen    = esfRawHeaderLen + esfRawMaxBlocks*esfRawBlockLen
)

type EsfRawRef View

func NewEsfRawRef(payload []byte) (EsfRawRef, error) {
	if len(payload) < esfRawHeaderLen {
		return nil, &ubxerr.InvalidPacketLenError{Packet: "ESF-RAW", Expect: esfRawHeaderLen, Got: len(payload)}
	}
	trailing := payload[esfRawHeaderLen:]
	if len(trailing)%esfRawBlockLen != 0 {
		return nil, &ubxerr.InvalidFieldError{Packet: "ESF-RAW", Field: "blocks"}
	}
	return EsfRawRef(payload), nil
}

func (v EsfRawRef) Blocks() EsfRawBlockIter {
	return EsfRawBlockIter{data: View(v)[esfRawHeaderLen:]}
}

type EsfRawBlockIter struct {
	data   View
	offset int
}

type EsfRawBlock struct {
	Data      uint32
	SensorTag uint32
}

func (it *EsfRawBlockIter) Next() (EsfRawBlock, bool) {
	if it.offset >= len(it.data) {
		return EsfRawBlock{}, false
	}
	block := it.data[it.offset : it.offset+esfRawBlockLen]
	it.offset += esfRawBlockLen
	return EsfRawBlock{
		Data:      View(block).u32(0),
		SensorTag: View(block).u32(4),
	}, true
}

// EsfRawOwned copies an ESF-RAW payload into an inline array sized to
// esfRawMaxLen.
type EsfRawOwned struct {
	data [esfRawMaxLen]byte
	n    int
}

func NewEsfRawOwned(payload []byte) (*EsfRawOwned, error) {
	if _, err := NewEsfRawRef(payload); err != nil {
		return nil, err
	}
	if len(payload) > esfRawMaxLen {
		return nil, &ubxerr.InvalidPacketLenError{Packet: "ESF-RAW", Expect: esfRawMaxLen, Got: len(payload)}
	}
	o := &EsfRawOwned{n: len(payload)}
	copy(o.data[:], payload)
	return o, nil
}

func (o *EsfRawOwned) View() EsfRawRef { return EsfRawRef(o.data[:o.n]) }

// --- ESF-STATUS (0x10 0x10), variable: 16-byte header followed by
// 4-byte per-sensor status blocks. ---

const (
	esfStatusHeaderLen = 16
	esfStatusBlockLen  = 4
	// esfStatusMaxLen is the published max_payload_len for ESF-STATUS.
	esfStatusMaxLen = 1240
)

type EsfStatusRef View

func NewEsfStatusRef(payload []byte) (EsfStatusRef, error) {
	if len(payload) < esfStatusHeaderLen {
		return nil, &ubxerr.InvalidPacketLenError{Packet: "ESF-STATUS", Expect: esfStatusHeaderLen, Got: len(payload)}
	}
	trailing := payload[esfStatusHeaderLen:]
	if len(trailing)%esfStatusBlockLen != 0 {
		return nil, &ubxerr.InvalidFieldError{Packet: "ESF-STATUS", Field: "sensors"}
	}
	return EsfStatusRef(payload), nil
}

func (v EsfStatusRef) Itow() uint32    { return View(v).u32(0) }
func (v EsfStatusRef) Version() uint8  { return View(v).u8(4) }
func (v EsfStatusRef) InitStatus1() uint8 { return View(v).u8(5) }
func (v EsfStatusRef) InitStatus2() uint8 { return View(v).u8(6) }
func (v EsfStatusRef) FusionMode() EsfStatusFusionMode {
	return EsfStatusFusionMode(View(v).u8(12))
}
func (v EsfStatusRef) NumSens() uint8 { return View(v).u8(15) }

func (v EsfStatusRef) Sensors() EsfSensorStatusIter {
	return EsfSensorStatusIter{data: View(v)[esfStatusHeaderLen:]}
}

type EsfSensorStatusIter struct {
	data   View
	offset int
}

type EsfSensorStatus struct {
	SensStatus1 uint8
	SensStatus2 uint8
	Freq        uint8
	Faults      uint8
}

func (it *EsfSensorStatusIter) Next() (EsfSensorStatus, bool) {
	if it.offset >= len(it.data) {
		return EsfSensorStatus{}, false
	}
	raw := it.data.u32(it.offset)
	it.offset += esfStatusBlockLen
	return EsfSensorStatus{
		SensStatus1: uint8(raw),
		SensStatus2: uint8(raw >> 8),
		Freq:        uint8(raw >> 16),
		Faults:      uint8(raw >> 24),
	}, true
}

// EsfStatusOwned copies an ESF-STATUS payload into an inline array sized to
// esfStatusMaxLen.
type EsfStatusOwned struct {
	data [esfStatusMaxLen]byte
	n    int
}

func NewEsfStatusOwned(payload []byte) (*EsfStatusOwned, error) {
	if _, err := NewEsfStatusRef(payload); err != nil {
		return nil, err
	}
	if len(payload) > esfStatusMaxLen {
		return nil, &ubxerr.InvalidPacketLenError{Packet: "ESF-STATUS", Expect: esfStatusMaxLen, Got: len(payload)}
	}
	o := &EsfStatusOwned{n: len(payload)}
	copy(o.data[:], payload)
	return o, nil
}

func (o *EsfStatusOwned) View() EsfStatusRef { return EsfStatusRef(o.data[:o.n]) }

// --- ESF-ALG (0x10 0x14), fixed 16 bytes ---

const esfAlgLen = 16

type EsfAlgRef View

func NewEsfAlgRef(payload []byte) (EsfAlgRef, error) {
	if len(payload) != esfAlgLen {
		return nil, &ubxerr.InvalidPacketLenError{Packet: "ESF-ALG", Expect: esfAlgLen, Got: len(payload)}
	}
	return EsfAlgRef(payload), nil
}

func (v EsfAlgRef) Itow() uint32         { return View(v).u32(0) }
func (v EsfAlgRef) Version() uint8       { return View(v).u8(4) }
func (v EsfAlgRef) Flags() EsfAlgFlags   { return EsfAlgFlags(View(v).u8(5)) }
func (v EsfAlgRef) Error() uint8         { return View(v).u8(6) }
func (v EsfAlgRef) YawDegrees() float64  { return scaleU32(View(v).u32(8), 1e-2) }
func (v EsfAlgRef) PitchDegrees() float64 { return scaleI16(View(v).i16(12), 1e-2) }
func (v EsfAlgRef) RollDegrees() float64 { return scaleI16(View(v).i16(14), 1e-2) }

type EsfAlgOwned struct{ data [esfAlgLen]byte }

func NewEsfAlgOwned(payload []byte) (*EsfAlgOwned, error) {
	if _, err := NewEsfAlgRef(payload); err != nil {
		return nil, err
	}
	o := &EsfAlgOwned{}
	copy(o.data[:], payload)
	return o, nil
}

func (o *EsfAlgOwned) View() EsfAlgRef { return EsfAlgRef(o.data[:]) }
