package message

import "github.com/kstaniek/go-ubx/internal/ubxerr"

// --- CFG-PRT (0x06 0x00), fixed 20 bytes (UART variant) ---

const cfgPrtLen = 20

type UartPortID uint8

const (
	UartPortIDUart1 UartPortID = 1
	UartPortIDUart2 UartPortID = 2
	UartPortIDUsb   UartPortID = 3
)

func (p UartPortID) Valid() bool {
	return p == UartPortIDUart1 || p == UartPortIDUart2 || p == UartPortIDUsb
}

type CfgPrtRef View

func NewCfgPrtRef(payload []byte) (CfgPrtRef, error) {
	if len(payload) != cfgPrtLen {
		return nil, &ubxerr.InvalidPacketLenError{Packet: "CFG-PRT", Expect: cfgPrtLen, Got: len(payload)}
	}
	portID := UartPortID(View(payload).u8(0))
	if !portID.Valid() {
		return nil, &ubxerr.InvalidFieldError{Packet: "CFG-PRT", Field: "portID"}
	}
	return CfgPrtRef(payload), nil
}

func (v CfgPrtRef) PortID() UartPortID      { return UartPortID(View(v).u8(0)) }
func (v CfgPrtRef) TxReady() uint16          { return View(v).u16(2) }
func (v CfgPrtRef) Mode() uint32             { return View(v).u32(4) }
func (v CfgPrtRef) BaudRate() uint32         { return View(v).u32(8) }
func (v CfgPrtRef) InProtoMask() uint16      { return View(v).u16(12) }
func (v CfgPrtRef) OutProtoMask() uint16     { return View(v).u16(14) }
func (v CfgPrtRef) Flags() uint16            { return View(v).u16(16) }

type CfgPrtOwned struct{ data [cfgPrtLen]byte }

func NewCfgPrtOwned(payload []byte) (*CfgPrtOwned, error) {
	if _, err := NewCfgPrtRef(payload); err != nil {
		return nil, err
	}
	o := &CfgPrtOwned{}
	copy(o.data[:], payload)
	return o, nil
}

func (o *CfgPrtOwned) View() CfgPrtRef { return CfgPrtRef(o.data[:]) }

// CfgPrtUARTBuilder composes an outbound CFG-PRT frame configuring a UART
// port.
type CfgPrtUARTBuilder struct {
	PortID       UartPortID
	TxReady      uint16
	Mode         uint32
	BaudRate     uint32
	InProtoMask  uint16
	OutProtoMask uint16
	Flags        uint16
}

func (b CfgPrtUARTBuilder) Build() [28]byte {
	var frame [28]byte
	writeFixedHeader(frame[:], 0x06, 0x00, cfgPrtLen)
	payload := frame[6 : 6+cfgPrtLen]
	putU8(payload, 0, uint8(b.PortID))
	putU16(payload, 2, b.TxReady)
	putU32(payload, 4, b.Mode)
	putU32(payload, 8, b.BaudRate)
	putU16(payload, 12, b.InProtoMask)
	putU16(payload, 14, b.OutProtoMask)
	putU16(payload, 16, b.Flags)
	finalizeChecksum(frame[:])
	return frame
}

// --- CFG-MSG (0x06 0x01), fixed 8 bytes: set the send rate of a given
// message kind on all six I/O ports. ---

const cfgMsgLen = 8

type CfgMsgRef View

func NewCfgMsgRef(payload []byte) (CfgMsgRef, error) {
	if len(payload) != cfgMsgLen {
		return nil, &ubxerr.InvalidPacketLenError{Packet: "CFG-MSG", Expect: cfgMsgLen, Got: len(payload)}
	}
	return CfgMsgRef(payload), nil
}

func (v CfgMsgRef) MsgClass() uint8 { return View(v).u8(0) }
func (v CfgMsgRef) MsgID() uint8    { return View(v).u8(1) }
func (v CfgMsgRef) Rates() [6]uint8 {
	var rates [6]uint8
	copy(rates[:], v[2:8])
	return rates
}

type CfgMsgOwned struct{ data [cfgMsgLen]byte }

func NewCfgMsgOwned(payload []byte) (*CfgMsgOwned, error) {
	if _, err := NewCfgMsgRef(payload); err != nil {
		return nil, err
	}
	o := &CfgMsgOwned{}
	copy(o.data[:], payload)
	return o, nil
}

func (o *CfgMsgOwned) View() CfgMsgRef { return CfgMsgRef(o.data[:]) }

// CfgMsgBuilder composes an outbound CFG-MSG frame setting the send rate
// of (MsgClass, MsgID) on all six I/O ports.
type CfgMsgBuilder struct {
	MsgClass byte
	MsgID    byte
	Rates    [6]byte
}

func (b CfgMsgBuilder) Build() [16]byte {
	var frame [16]byte
	writeFixedHeader(frame[:], 0x06, 0x01, cfgMsgLen)
	payload := frame[6 : 6+cfgMsgLen]
	payload[0] = b.MsgClass
	payload[1] = b.MsgID
	copy(payload[2:8], b.Rates[:])
	finalizeChecksum(frame[:])
	return frame
}

// --- CFG-RATE (0x06 0x08), fixed 6 bytes ---

const cfgRateLen = 6

type AlignmentToReferenceTime uint16

const (
	AlignmentToReferenceTimeUTC  AlignmentToReferenceTime = 0
	AlignmentToReferenceTimeGPS  AlignmentToReferenceTime = 1
	AlignmentToReferenceTimeGLO  AlignmentToReferenceTime = 2
	AlignmentToReferenceTimeBDS  AlignmentToReferenceTime = 3
	AlignmentToReferenceTimeGAL  AlignmentToReferenceTime = 4
)

type CfgRateRef View

func NewCfgRateRef(payload []byte) (CfgRateRef, error) {
	if len(payload) != cfgRateLen {
		return nil, &ubxerr.InvalidPacketLenError{Packet: "CFG-RATE", Expect: cfgRateLen, Got: len(payload)}
	}
	return CfgRateRef(payload), nil
}

func (v CfgRateRef) MeasureRateMS() uint16 { return View(v).u16(0) }
func (v CfgRateRef) NavRate() uint16       { return View(v).u16(2) }
func (v CfgRateRef) TimeRef() AlignmentToReferenceTime {
	return AlignmentToReferenceTime(View(v).u16(4))
}

type CfgRateOwned struct{ data [cfgRateLen]byte }

func NewCfgRateOwned(payload []byte) (*CfgRateOwned, error) {
	if _, err := NewCfgRateRef(payload); err != nil {
		return nil, err
	}
	o := &CfgRateOwned{}
	copy(o.data[:], payload)
	return o, nil
}

func (o *CfgRateOwned) View() CfgRateRef { return CfgRateRef(o.data[:]) }

// CfgRateBuilder composes an outbound CFG-RATE frame.
type CfgRateBuilder struct {
	MeasureRateMS uint16
	NavRate       uint16
	TimeRef       AlignmentToReferenceTime
}

func (b CfgRateBuilder) Build() [14]byte {
	var frame [14]byte
	writeFixedHeader(frame[:], 0x06, 0x08, cfgRateLen)
	payload := frame[6 : 6+cfgRateLen]
	putU16(payload, 0, b.MeasureRateMS)
	putU16(payload, 2, b.NavRate)
	putU16(payload, 4, uint16(b.TimeRef))
	finalizeChecksum(frame[:])
	return frame
}

// --- CFG-RST (0x06 0x04), fixed 4 bytes ---

const cfgRstLen = 4

type ResetMode uint8

const (
	ResetModeHardware              ResetMode = 0x00
	ResetModeControlledSoftware    ResetMode = 0x01
	ResetModeControlledGNSSOnly    ResetMode = 0x02
	ResetModeHardwareAfterShutdown ResetMode = 0x04
	ResetModeControlledGNSSStop    ResetMode = 0x08
	ResetModeControlledGNSSStart   ResetMode = 0x09
)

type CfgRstRef View

func NewCfgRstRef(payload []byte) (CfgRstRef, error) {
	if len(payload) != cfgRstLen {
		return nil, &ubxerr.InvalidPacketLenError{Packet: "CFG-RST", Expect: cfgRstLen, Got: len(payload)}
	}
	return CfgRstRef(payload), nil
}

func (v CfgRstRef) NavBbrMask() uint16  { return View(v).u16(0) }
func (v CfgRstRef) ResetMode() ResetMode { return ResetMode(View(v).u8(2)) }

type CfgRstOwned struct{ data [cfgRstLen]byte }

func NewCfgRstOwned(payload []byte) (*CfgRstOwned, error) {
	if _, err := NewCfgRstRef(payload); err != nil {
		return nil, err
	}
	o := &CfgRstOwned{}
	copy(o.data[:], payload)
	return o, nil
}

func (o *CfgRstOwned) View() CfgRstRef { return CfgRstRef(o.data[:]) }

// CfgRstBuilder composes an outbound CFG-RST frame.
type CfgRstBuilder struct {
	NavBbrMask uint16
	ResetMode  ResetMode
}

func (b CfgRstBuilder) Build() [12]byte {
	var frame [12]byte
	writeFixedHeader(frame[:], 0x06, 0x04, cfgRstLen)
	payload := frame[6 : 6+cfgRstLen]
	putU16(payload, 0, b.NavBbrMask)
	putU8(payload, 2, uint8(b.ResetMode))
	finalizeChecksum(frame[:])
	return frame
}
