package message

import "github.com/kstaniek/go-ubx/internal/ubxerr"

// --- NAV-POSLLH (0x01 0x02), fixed 28 bytes ---

type NavPosllhRef View

const navPosllhLen = 28

func NewNavPosllhRef(payload []byte) (NavPosllhRef, error) {
	if len(payload) != navPosllhLen {
		return nil, &ubxerr.InvalidPacketLenError{Packet: "NAV-POSLLH", Expect: navPosllhLen, Got: len(payload)}
	}
	return NavPosllhRef(payload), nil
}

func (v NavPosllhRef) Itow() uint32        { return View(v).u32(0) }
func (v NavPosllhRef) LonDegrees() float64 { return scaleI32(View(v).i32(4), 1e-7) }
func (v NavPosllhRef) LatDegrees() float64 { return scaleI32(View(v).i32(8), 1e-7) }
func (v NavPosllhRef) HeightMeters() float64 { return scaleI32(View(v).i32(12), 1e-3) }
func (v NavPosllhRef) HeightMSL() float64    { return scaleI32(View(v).i32(16), 1e-3) }
func (v NavPosllhRef) HAcc() float64         { return scaleU32(View(v).u32(20), 1e-3) }
func (v NavPosllhRef) VAcc() float64         { return scaleU32(View(v).u32(24), 1e-3) }

type NavPosllhOwned struct{ data [navPosllhLen]byte }

func NewNavPosllhOwned(payload []byte) (*NavPosllhOwned, error) {
	if _, err := NewNavPosllhRef(payload); err != nil {
		return nil, err
	}
	o := &NavPosllhOwned{}
	copy(o.data[:], payload)
	return o, nil
}

func (o *NavPosllhOwned) View() NavPosllhRef { return NavPosllhRef(o.data[:]) }

// --- NAV-STATUS (0x01 0x03), fixed 16 bytes ---

type NavStatusRef View

const navStatusLen = 16

func NewNavStatusRef(payload []byte) (NavStatusRef, error) {
	if len(payload) != navStatusLen {
		return nil, &ubxerr.InvalidPacketLenError{Packet: "NAV-STATUS", Expect: navStatusLen, Got: len(payload)}
	}
	return NavStatusRef(payload), nil
}

func (v NavStatusRef) Itow() uint32            { return View(v).u32(0) }
func (v NavStatusRef) FixType() GpsFix         { return GpsFix(View(v).u8(4)) }
func (v NavStatusRef) Flags() NavStatusFlags   { return NavStatusFlags(View(v).u8(5)) }
func (v NavStatusRef) FixStat() FixStatusInfo  { return FixStatusInfo(View(v).u8(6)) }
func (v NavStatusRef) Flags2() NavStatusFlags2 { return NavStatusFlags2(View(v).u8(7)) }
func (v NavStatusRef) TimeToFirstFix() uint32  { return View(v).u32(8) }
func (v NavStatusRef) UptimeMS() uint32        { return View(v).u32(12) }

type NavStatusOwned struct{ data [navStatusLen]byte }

func NewNavStatusOwned(payload []byte) (*NavStatusOwned, error) {
	if _, err := NewNavStatusRef(payload); err != nil {
		return nil, err
	}
	o := &NavStatusOwned{}
	copy(o.data[:], payload)
	return o, nil
}

func (o *NavStatusOwned) View() NavStatusRef { return NavStatusRef(o.data[:]) }

// --- NAV-DOP (0x01 0x04), fixed 18 bytes ---

type NavDopRef View

const navDopLen = 18

func NewNavDopRef(payload []byte) (NavDopRef, error) {
	if len(payload) != navDopLen {
		return nil, &ubxerr.InvalidPacketLenError{Packet: "NAV-DOP", Expect: navDopLen, Got: len(payload)}
	}
	return NavDopRef(payload), nil
}

func (v NavDopRef) Itow() uint32          { return View(v).u32(0) }
func (v NavDopRef) GeometricDOP() float64 { return scaleU16(View(v).u16(4), 1e-2) }
func (v NavDopRef) PositionDOP() float64  { return scaleU16(View(v).u16(6), 1e-2) }
func (v NavDopRef) TimeDOP() float64      { return scaleU16(View(v).u16(8), 1e-2) }
func (v NavDopRef) VerticalDOP() float64  { return scaleU16(View(v).u16(10), 1e-2) }
func (v NavDopRef) HorizontalDOP() float64 { return scaleU16(View(v).u16(12), 1e-2) }
func (v NavDopRef) NorthingDOP() float64  { return scaleU16(View(v).u16(14), 1e-2) }
func (v NavDopRef) EastingDOP() float64   { return scaleU16(View(v).u16(16), 1e-2) }

type NavDopOwned struct{ data [navDopLen]byte }

func NewNavDopOwned(payload []byte) (*NavDopOwned, error) {
	if _, err := NewNavDopRef(payload); err != nil {
		return nil, err
	}
	o := &NavDopOwned{}
	copy(o.data[:], payload)
	return o, nil
}

func (o *NavDopOwned) View() NavDopRef { return NavDopRef(o.data[:]) }

// --- NAV-SOL (0x01 0x06), fixed 52 bytes. Present only in protocol
// variants P14/P23; deprecated by NAV-PVT from P27 on. ---

type NavSolutionRef View

const navSolutionLen = 52

func NewNavSolutionRef(payload []byte) (NavSolutionRef, error) {
	if len(payload) != navSolutionLen {
		return nil, &ubxerr.InvalidPacketLenError{Packet: "NAV-SOL", Expect: navSolutionLen, Got: len(payload)}
	}
	return NavSolutionRef(payload), nil
}

func (v NavSolutionRef) Itow() uint32        { return View(v).u32(0) }
func (v NavSolutionRef) FtowNS() int32       { return View(v).i32(4) }
func (v NavSolutionRef) Week() int16         { return View(v).i16(8) }
func (v NavSolutionRef) FixType() GpsFix     { return GpsFix(View(v).u8(10)) }
func (v NavSolutionRef) Flags() NavStatusFlags { return NavStatusFlags(View(v).u8(11)) }
func (v NavSolutionRef) EcefXMeters() float64  { return scaleI32(View(v).i32(12), 1e-2) }
func (v NavSolutionRef) EcefYMeters() float64  { return scaleI32(View(v).i32(16), 1e-2) }
func (v NavSolutionRef) EcefZMeters() float64  { return scaleI32(View(v).i32(20), 1e-2) }
func (v NavSolutionRef) PositionAccuracyEstimate() float64 {
	return scaleU32(View(v).u32(24), 1e-2)
}
func (v NavSolutionRef) EcefVX() float64 { return scaleI32(View(v).i32(28), 1e-2) }
func (v NavSolutionRef) EcefVY() float64 { return scaleI32(View(v).i32(32), 1e-2) }
func (v NavSolutionRef) EcefVZ() float64 { return scaleI32(View(v).i32(36), 1e-2) }
func (v NavSolutionRef) SpeedAccuracyEstimate() float64 {
	return scaleU32(View(v).u32(40), 1e-2)
}
func (v NavSolutionRef) PDOP() float64  { return scaleU16(View(v).u16(44), 1e-2) }
func (v NavSolutionRef) NumSV() uint8   { return View(v).u8(47) }

type NavSolutionOwned struct{ data [navSolutionLen]byte }

func NewNavSolutionOwned(payload []byte) (*NavSolutionOwned, error) {
	if _, err := NewNavSolutionRef(payload); err != nil {
		return nil, err
	}
	o := &NavSolutionOwned{}
	copy(o.data[:], payload)
	return o, nil
}

func (o *NavSolutionOwned) View() NavSolutionRef { return NavSolutionRef(o.data[:]) }

// --- NAV-PVT (0x01 0x07), fixed 92 bytes ---

type NavPvtRef View

const navPvtLen = 92

func NewNavPvtRef(payload []byte) (NavPvtRef, error) {
	if len(payload) != navPvtLen {
		return nil, &ubxerr.InvalidPacketLenError{Packet: "NAV-PVT", Expect: navPvtLen, Got: len(payload)}
	}
	return NavPvtRef(payload), nil
}

func (v NavPvtRef) Itow() uint32        { return View(v).u32(0) }
func (v NavPvtRef) Year() uint16        { return View(v).u16(4) }
func (v NavPvtRef) Month() uint8        { return View(v).u8(6) }
func (v NavPvtRef) Day() uint8          { return View(v).u8(7) }
func (v NavPvtRef) Hour() uint8         { return View(v).u8(8) }
func (v NavPvtRef) Min() uint8          { return View(v).u8(9) }
func (v NavPvtRef) Sec() uint8          { return View(v).u8(10) }
func (v NavPvtRef) Valid() uint8        { return View(v).u8(11) }
func (v NavPvtRef) TimeAccuracy() uint32 { return View(v).u32(12) }
func (v NavPvtRef) Nanosecond() int32   { return View(v).i32(16) }
func (v NavPvtRef) FixType() GpsFix     { return GpsFix(View(v).u8(20)) }
func (v NavPvtRef) Flags() NavPvtFlags  { return NavPvtFlags(View(v).u8(21)) }
func (v NavPvtRef) Flags2() NavPvtFlags2 { return NavPvtFlags2(View(v).u8(22)) }
func (v NavPvtRef) NumSatellites() uint8 { return View(v).u8(23) }
func (v NavPvtRef) LonDegrees() float64  { return scaleI32(View(v).i32(24), 1e-7) }
func (v NavPvtRef) LatDegrees() float64  { return scaleI32(View(v).i32(28), 1e-7) }
func (v NavPvtRef) HeightMeters() float64 { return scaleI32(View(v).i32(32), 1e-3) }
func (v NavPvtRef) HeightMSL() float64    { return scaleI32(View(v).i32(36), 1e-3) }
func (v NavPvtRef) HorizAccuracy() uint32 { return View(v).u32(40) }
func (v NavPvtRef) VertAccuracy() uint32  { return View(v).u32(44) }
func (v NavPvtRef) VelNorth() float64     { return scaleI32(View(v).i32(48), 1e-3) }
func (v NavPvtRef) VelEast() float64      { return scaleI32(View(v).i32(52), 1e-3) }
func (v NavPvtRef) VelDown() float64      { return scaleI32(View(v).i32(56), 1e-3) }
func (v NavPvtRef) GroundSpeed() float64  { return scaleU32(View(v).u32(60), 1e-3) }
func (v NavPvtRef) HeadingDegrees() float64 { return scaleI32(View(v).i32(64), 1e-5) }
func (v NavPvtRef) SpeedAccuracyEstimate() float64 {
	return scaleU32(View(v).u32(68), 1e-3)
}
func (v NavPvtRef) HeadingAccuracyEstimate() float64 {
	return scaleU32(View(v).u32(72), 1e-5)
}
func (v NavPvtRef) PDOP() uint16 { return View(v).u16(76) }
func (v NavPvtRef) HeadingOfVehicleDegrees() float64 {
	return scaleI32(View(v).i32(84), 1e-5)
}
func (v NavPvtRef) MagneticDeclinationDegrees() float64 {
	return scaleI16(View(v).i16(88), 1e-2)
}
func (v NavPvtRef) MagneticDeclinationAccuracyDegrees() float64 {
	return scaleU16(View(v).u16(90), 1e-2)
}

type NavPvtOwned struct{ data [navPvtLen]byte }

func NewNavPvtOwned(payload []byte) (*NavPvtOwned, error) {
	if _, err := NewNavPvtRef(payload); err != nil {
		return nil, err
	}
	o := &NavPvtOwned{}
	copy(o.data[:], payload)
	return o, nil
}

func (o *NavPvtOwned) View() NavPvtRef { return NavPvtRef(o.data[:]) }

// --- NAV-VELNED (0x01 0x12), fixed 36 bytes ---

type NavVelnedRef View

const navVelnedLen = 36

func NewNavVelnedRef(payload []byte) (NavVelnedRef, error) {
	if len(payload) != navVelnedLen {
		return nil, &ubxerr.InvalidPacketLenError{Packet: "NAV-VELNED", Expect: navVelnedLen, Got: len(payload)}
	}
	return NavVelnedRef(payload), nil
}

func (v NavVelnedRef) Itow() uint32       { return View(v).u32(0) }
func (v NavVelnedRef) VelNorth() float64  { return scaleI32(View(v).i32(4), 1e-2) }
func (v NavVelnedRef) VelEast() float64   { return scaleI32(View(v).i32(8), 1e-2) }
func (v NavVelnedRef) VelDown() float64   { return scaleI32(View(v).i32(12), 1e-2) }
func (v NavVelnedRef) Speed3D() float64   { return scaleU32(View(v).u32(16), 1e-2) }
func (v NavVelnedRef) GroundSpeed() float64 { return scaleU32(View(v).u32(20), 1e-2) }
func (v NavVelnedRef) HeadingDegrees() float64 { return scaleI32(View(v).i32(24), 1e-5) }
func (v NavVelnedRef) SpeedAccuracyEstimate() float64 {
	return scaleU32(View(v).u32(28), 1e-2)
}
func (v NavVelnedRef) CourseHeadingAccuracyEstimate() float64 {
	return scaleU32(View(v).u32(32), 1e-5)
}

type NavVelnedOwned struct{ data [navVelnedLen]byte }

func NewNavVelnedOwned(payload []byte) (*NavVelnedOwned, error) {
	if _, err := NewNavVelnedRef(payload); err != nil {
		return nil, err
	}
	o := &NavVelnedOwned{}
	copy(o.data[:], payload)
	return o, nil
}

func (o *NavVelnedOwned) View() NavVelnedRef { return NavVelnedRef(o.data[:]) }

// --- NAV-HPPOSECEF (0x01 0x13), fixed 28 bytes. P27 on. ---

type NavHpposecefRef View

const navHpposecefLen = 28

func NewNavHpposecefRef(payload []byte) (NavHpposecefRef, error) {
	if len(payload) != navHpposecefLen {
		return nil, &ubxerr.InvalidPacketLenError{Packet: "NAV-HPPOSECEF", Expect: navHpposecefLen, Got: len(payload)}
	}
	return NavHpposecefRef(payload), nil
}

func (v NavHpposecefRef) Version() uint8  { return View(v).u8(0) }
func (v NavHpposecefRef) Itow() uint32    { return View(v).u32(4) }
func (v NavHpposecefRef) EcefXCm() int32  { return View(v).i32(8) }
func (v NavHpposecefRef) EcefYCm() int32  { return View(v).i32(12) }
func (v NavHpposecefRef) EcefZCm() int32  { return View(v).i32(16) }
func (v NavHpposecefRef) EcefXHpMM() float64 { return scaleI32(int32(View(v).i8(20)), 1e-1) }
func (v NavHpposecefRef) EcefYHpMM() float64 { return scaleI32(int32(View(v).i8(21)), 1e-1) }
func (v NavHpposecefRef) EcefZHpMM() float64 { return scaleI32(int32(View(v).i8(22)), 1e-1) }
func (v NavHpposecefRef) Flags() uint8    { return View(v).u8(23) }
func (v NavHpposecefRef) PAcc() float64   { return scaleU32(View(v).u32(24), 1e-1) }

type NavHpposecefOwned struct{ data [navHpposecefLen]byte }

func NewNavHpposecefOwned(payload []byte) (*NavHpposecefOwned, error) {
	if _, err := NewNavHpposecefRef(payload); err != nil {
		return nil, err
	}
	o := &NavHpposecefOwned{}
	copy(o.data[:], payload)
	return o, nil
}

func (o *NavHpposecefOwned) View() NavHpposecefRef { return NavHpposecefRef(o.data[:]) }

// --- NAV-HPPOSLLH (0x01 0x14), fixed 36 bytes. P27 on. ---

type NavHpposllhRef View

const navHpposllhLen = 36

func NewNavHpposllhRef(payload []byte) (NavHpposllhRef, error) {
	if len(payload) != navHpposllhLen {
		return nil, &ubxerr.InvalidPacketLenError{Packet: "NAV-HPPOSLLH", Expect: navHpposllhLen, Got: len(payload)}
	}
	return NavHpposllhRef(payload), nil
}

func (v NavHpposllhRef) Version() uint8     { return View(v).u8(0) }
func (v NavHpposllhRef) Itow() uint32       { return View(v).u32(4) }
func (v NavHpposllhRef) LonDegrees() float64 { return scaleI32(View(v).i32(8), 1e-7) }
func (v NavHpposllhRef) LatDegrees() float64 { return scaleI32(View(v).i32(12), 1e-7) }
func (v NavHpposllhRef) HeightMeters() float64 { return scaleI32(View(v).i32(16), 1e-3) }
func (v NavHpposllhRef) HeightMSL() float64    { return scaleI32(View(v).i32(20), 1e-3) }
func (v NavHpposllhRef) LonHpDegrees() float64 { return scaleI32(int32(View(v).i8(24)), 1e-9) }
func (v NavHpposllhRef) LatHpDegrees() float64 { return scaleI32(int32(View(v).i8(25)), 1e-9) }
func (v NavHpposllhRef) HeightHpMeters() float64 { return scaleI32(int32(View(v).i8(26)), 1e-1) }
func (v NavHpposllhRef) HeightHpMSL() float64    { return scaleI32(int32(View(v).i8(27)), 1e-1) }
func (v NavHpposllhRef) HorizontalAccuracy() float64 { return scaleU32(View(v).u32(28), 1e-1) }
func (v NavHpposllhRef) VerticalAccuracy() float64   { return scaleU32(View(v).u32(32), 1e-1) }

type NavHpposllhOwned struct{ data [navHpposllhLen]byte }

func NewNavHpposllhOwned(payload []byte) (*NavHpposllhOwned, error) {
	if _, err := NewNavHpposllhRef(payload); err != nil {
		return nil, err
	}
	o := &NavHpposllhOwned{}
	copy(o.data[:], payload)
	return o, nil
}

func (o *NavHpposllhOwned) View() NavHpposllhRef { return NavHpposllhRef(o.data[:]) }

// --- NAV-TIMEUTC (0x01 0x21), fixed 20 bytes ---

type NavTimeutcRef View

const navTimeutcLen = 20

func NewNavTimeutcRef(payload []byte) (NavTimeutcRef, error) {
	if len(payload) != navTimeutcLen {
		return nil, &ubxerr.InvalidPacketLenError{Packet: "NAV-TIMEUTC", Expect: navTimeutcLen, Got: len(payload)}
	}
	return NavTimeutcRef(payload), nil
}

func (v NavTimeutcRef) Itow() uint32               { return View(v).u32(0) }
func (v NavTimeutcRef) TimeAccuracyEstimateNS() uint32 { return View(v).u32(4) }
func (v NavTimeutcRef) Nanos() int32               { return View(v).i32(8) }
func (v NavTimeutcRef) Year() uint16               { return View(v).u16(12) }
func (v NavTimeutcRef) Month() uint8               { return View(v).u8(14) }
func (v NavTimeutcRef) Day() uint8                  { return View(v).u8(15) }
func (v NavTimeutcRef) Hour() uint8                 { return View(v).u8(16) }
func (v NavTimeutcRef) Min() uint8                  { return View(v).u8(17) }
func (v NavTimeutcRef) Sec() uint8                  { return View(v).u8(18) }
func (v NavTimeutcRef) ValidFlags() uint8           { return View(v).u8(19) }

type NavTimeutcOwned struct{ data [navTimeutcLen]byte }

func NewNavTimeutcOwned(payload []byte) (*NavTimeutcOwned, error) {
	if _, err := NewNavTimeutcRef(payload); err != nil {
		return nil, err
	}
	o := &NavTimeutcOwned{}
	copy(o.data[:], payload)
	return o, nil
}

func (o *NavTimeutcOwned) View() NavTimeutcRef { return NavTimeutcRef(o.data[:]) }

// --- NAV-SAT (0x01 0x35), variable: 8-byte header + repeated 12-byte
// per-satellite blocks. Present only from protocol variant P27 on (older
// variants expose satellite detail only through NAV-SVINFO, which is not
// in this catalog). ---

const (
	navSatHeaderLen = 8
	navSatBlockLen  = 12
	// navSatMaxLen is the published max_payload_len for NAV-SAT.
	navSatMaxLen = 1240
)

type NavSatRef View

func NewNavSatRef(payload []byte) (NavSatRef, error) {
	if len(payload) < navSatHeaderLen {
		return nil, &ubxerr.InvalidPacketLenError{Packet: "NAV-SAT", Expect: navSatHeaderLen, Got: len(payload)}
	}
	trailing := payload[navSatHeaderLen:]
	if len(trailing)%navSatBlockLen != 0 {
		return nil, &ubxerr.InvalidFieldError{Packet: "NAV-SAT", Field: "svs"}
	}
	return NavSatRef(payload), nil
}

func (v NavSatRef) Itow() uint32   { return View(v).u32(0) }
func (v NavSatRef) Version() uint8 { return View(v).u8(4) }
func (v NavSatRef) NumSvs() uint8  { return View(v).u8(5) }

// Svs returns an iterator over the fixed-size per-satellite blocks
// trailing the NAV-SAT header.
func (v NavSatRef) Svs() NavSatIter {
	return NavSatIter{data: View(v)[navSatHeaderLen:]}
}

type NavSatIter struct {
	data   View
	offset int
}

func (it *NavSatIter) Next() (NavSatSvInfoRef, bool) {
	if it.offset >= len(it.data) {
		return nil, false
	}
	block := it.data[it.offset : it.offset+navSatBlockLen]
	it.offset += navSatBlockLen
	return NavSatSvInfoRef(block), true
}

type NavSatSvInfoRef View

func (v NavSatSvInfoRef) GnssID() uint8   { return View(v).u8(0) }
func (v NavSatSvInfoRef) SvID() uint8     { return View(v).u8(1) }
func (v NavSatSvInfoRef) Cno() uint8      { return View(v).u8(2) }
func (v NavSatSvInfoRef) Elev() int8      { return View(v).i8(3) }
func (v NavSatSvInfoRef) Azim() int16     { return View(v).i16(4) }
func (v NavSatSvInfoRef) PrRes() int16    { return View(v).i16(6) }
func (v NavSatSvInfoRef) Flags() NavSatSvFlags { return NavSatSvFlags(View(v).u32(8)) }

// NavSatOwned copies a NAV-SAT payload into an inline array sized to
// navSatMaxLen, the variable-length counterpart to the fixed-kind *Owned
// types above.
type NavSatOwned struct {
	data [navSatMaxLen]byte
	n    int
}

func NewNavSatOwned(payload []byte) (*NavSatOwned, error) {
	if _, err := NewNavSatRef(payload); err != nil {
		return nil, err
	}
	if len(payload) > navSatMaxLen {
		return nil, &ubxerr.InvalidPacketLenError{Packet: "NAV-SAT", Expect: navSatMaxLen, Got: len(payload)}
	}
	o := &NavSatOwned{n: len(payload)}
	copy(o.data[:], payload)
	return o, nil
}

func (o *NavSatOwned) View() NavSatRef { return NavSatRef(o.data[:o.n]) }
