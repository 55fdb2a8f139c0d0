package message

import "fmt"

// GpsFix demonstrates the "fill the space with a reserved label" enum
// extension policy: every raw byte value from 0-255 is representable,
// either as one of the named fix types or as Reserved(n).
type GpsFix uint8

const (
	GpsFixNoFix                 GpsFix = 0
	GpsFixDeadReckoningOnly     GpsFix = 1
	GpsFix2D                    GpsFix = 2
	GpsFix3D                    GpsFix = 3
	GpsFixGPSPlusDeadReckoning  GpsFix = 4
	GpsFixTimeOnlyFix           GpsFix = 5
)

func (f GpsFix) String() string {
	switch f {
	case GpsFixNoFix:
		return "NoFix"
	case GpsFixDeadReckoningOnly:
		return "DeadReckoningOnly"
	case GpsFix2D:
		return "Fix2D"
	case GpsFix3D:
		return "Fix3D"
	case GpsFixGPSPlusDeadReckoning:
		return "GPSPlusDeadReckoning"
	case GpsFixTimeOnlyFix:
		return "TimeOnlyFix"
	default:
		return fmt.Sprintf("Reserved(%d)", uint8(f))
	}
}

// FixStatusInfo is a bitfield accessor over NAV-STATUS's fixStat byte.
type FixStatusInfo uint8

func (f FixStatusInfo) HasPrPrrCorrection() bool { return f&1 == 1 }

type MapMatchingStatus uint8

const (
	MapMatchingNone  MapMatchingStatus = 0
	MapMatchingValid MapMatchingStatus = 1
	MapMatchingUsed  MapMatchingStatus = 2
	MapMatchingDR    MapMatchingStatus = 3
)

func (f FixStatusInfo) MapMatching() MapMatchingStatus {
	return MapMatchingStatus((f >> 6) & 3)
}

// NavStatusFlags is NAV-STATUS's navigation status flags byte, truncating
// construction: unknown bits are simply readable via Raw(), no value is
// ever rejected.
type NavStatusFlags uint8

func (f NavStatusFlags) GpsFixOk() bool    { return f&0x01 != 0 }
func (f NavStatusFlags) DiffSoln() bool    { return f&0x02 != 0 }
func (f NavStatusFlags) WknSet() bool      { return f&0x04 != 0 }
func (f NavStatusFlags) TowSet() bool      { return f&0x08 != 0 }
func (f NavStatusFlags) Raw() uint8        { return uint8(f) }

// NavStatusFlags2 is NAV-STATUS's second flags byte (power-save/spoofing
// state on newer firmware; reserved on older).
type NavStatusFlags2 uint8

func (f NavStatusFlags2) Raw() uint8 { return uint8(f) }

// NavPvtFlags is NAV-PVT's primary fix-status flags byte.
type NavPvtFlags uint8

const (
	NavPvtFlagsGpsFixOk      NavPvtFlags = 0x01
	NavPvtFlagsDiffSoln      NavPvtFlags = 0x02
	NavPvtFlagsHeadVehValid  NavPvtFlags = 0x20
	NavPvtFlagsCarrSolnFloat NavPvtFlags = 0x40
	NavPvtFlagsCarrSolnFixed NavPvtFlags = 0x80
)

func (f NavPvtFlags) Has(bit NavPvtFlags) bool { return f&bit != 0 }

// NavPvtFlags2 is NAV-PVT's secondary flags byte.
type NavPvtFlags2 uint8

const (
	NavPvtFlags2ConfirmedAvailable NavPvtFlags2 = 0x20
	NavPvtFlags2ConfirmedDate      NavPvtFlags2 = 0x40
	NavPvtFlags2ConfirmedTime      NavPvtFlags2 = 0x80
)

func (f NavPvtFlags2) Has(bit NavPvtFlags2) bool { return f&bit != 0 }

// NavSatQualityIndicator is a closed 3-bit enum: every possible 3-bit
// pattern maps to a named value, so it needs no catch-all.
type NavSatQualityIndicator uint8

const (
	NavSatQualityNoSignal       NavSatQualityIndicator = 0
	NavSatQualitySearching      NavSatQualityIndicator = 1
	NavSatQualitySignalAcquired NavSatQualityIndicator = 2
	NavSatQualitySignalDetected NavSatQualityIndicator = 3
	NavSatQualityCodeLock       NavSatQualityIndicator = 4
	NavSatQualityCarrierLock    NavSatQualityIndicator = 5
)

func navSatQualityFromBits(bits uint32) NavSatQualityIndicator {
	switch {
	case bits >= 5:
		return NavSatQualityCarrierLock
	default:
		return NavSatQualityIndicator(bits)
	}
}

// NavSatSvHealth demonstrates the "named values plus a numbered catch-all"
// enum extension policy: Healthy and Unhealthy are named, anything else
// carries its raw bits in Unknown.
type NavSatSvHealth struct {
	Named   NavSatSvHealthValue
	Unknown uint8 // valid only when Named == NavSatSvHealthIsUnknown
}

type NavSatSvHealthValue uint8

const (
	NavSatSvHealthHealthy NavSatSvHealthValue = iota
	NavSatSvHealthUnhealthy
	NavSatSvHealthIsUnknown
)

func navSatSvHealthFromBits(bits uint32) NavSatSvHealth {
	switch bits {
	case 1:
		return NavSatSvHealth{Named: NavSatSvHealthHealthy}
	case 2:
		return NavSatSvHealth{Named: NavSatSvHealthUnhealthy}
	default:
		return NavSatSvHealth{Named: NavSatSvHealthIsUnknown, Unknown: uint8(bits)}
	}
}

func (h NavSatSvHealth) String() string {
	switch h.Named {
	case NavSatSvHealthHealthy:
		return "Healthy"
	case NavSatSvHealthUnhealthy:
		return "Unhealthy"
	default:
		return fmt.Sprintf("Unknown(%d)", h.Unknown)
	}
}

// NavSatOrbitSource likewise mixes named values with a numbered catch-all.
type NavSatOrbitSource struct {
	Named NavSatOrbitSourceValue
	Other uint8 // valid only when Named == NavSatOrbitSourceIsOther
}

type NavSatOrbitSourceValue uint8

const (
	NavSatOrbitSourceNoInfoAvailable NavSatOrbitSourceValue = iota
	NavSatOrbitSourceEphemeris
	NavSatOrbitSourceAlmanac
	NavSatOrbitSourceAssistNowOffline
	NavSatOrbitSourceAssistNowAutonomous
	NavSatOrbitSourceIsOther
)

func navSatOrbitSourceFromBits(bits uint32) NavSatOrbitSource {
	switch bits {
	case 0:
		return NavSatOrbitSource{Named: NavSatOrbitSourceNoInfoAvailable}
	case 1:
		return NavSatOrbitSource{Named: NavSatOrbitSourceEphemeris}
	case 2:
		return NavSatOrbitSource{Named: NavSatOrbitSourceAlmanac}
	case 3:
		return NavSatOrbitSource{Named: NavSatOrbitSourceAssistNowOffline}
	case 4:
		return NavSatOrbitSource{Named: NavSatOrbitSourceAssistNowAutonomous}
	default:
		return NavSatOrbitSource{Named: NavSatOrbitSourceIsOther, Other: uint8(bits)}
	}
}

// NavSatSvFlags is NAV-SAT's per-satellite 32-bit flags field.
type NavSatSvFlags uint32

func (f NavSatSvFlags) QualityInd() NavSatQualityIndicator {
	return navSatQualityFromBits(uint32(f) & 0x7)
}
func (f NavSatSvFlags) SvUsed() bool { return (f>>3)&0x1 != 0 }
func (f NavSatSvFlags) Health() NavSatSvHealth {
	return navSatSvHealthFromBits((uint32(f) >> 4) & 0x3)
}
func (f NavSatSvFlags) DifferentialCorrectionAvailable() bool { return (f>>6)&0x1 != 0 }
func (f NavSatSvFlags) Smoothed() bool                        { return (f>>7)&0x1 != 0 }
func (f NavSatSvFlags) OrbitSource() NavSatOrbitSource {
	return navSatOrbitSourceFromBits((uint32(f) >> 8) & 0x7)
}
func (f NavSatSvFlags) EphemerisAvailable() bool { return (f>>11)&0x1 != 0 }
func (f NavSatSvFlags) AlmanacAvailable() bool   { return (f>>12)&0x1 != 0 }

// EsfAlgStatus is a closed 3-bit enum with one Invalid catch-all for the
// otherwise-unreachable bit pattern 5-7.
type EsfAlgStatus uint8

const (
	EsfAlgStatusUserDefinedAngles           EsfAlgStatus = 0
	EsfAlgStatusRollPitchAlignmentOngoing   EsfAlgStatus = 1
	EsfAlgStatusRollPitchYawAlignmentOngoing EsfAlgStatus = 2
	EsfAlgStatusCoarseAlignment             EsfAlgStatus = 3
	EsfAlgStatusFineAlignment               EsfAlgStatus = 4
	EsfAlgStatusInvalid                     EsfAlgStatus = 5
)

func esfAlgStatusFromBits(bits uint8) EsfAlgStatus {
	if bits <= 4 {
		return EsfAlgStatus(bits)
	}
	return EsfAlgStatusInvalid
}

// EsfAlgFlags is ESF-ALG's flags byte.
type EsfAlgFlags uint8

func (f EsfAlgFlags) AutoIMUMountAlignOn() bool { return f&0x1 != 0 }
func (f EsfAlgFlags) Status() EsfAlgStatus       { return esfAlgStatusFromBits(uint8((f >> 1) & 0x07)) }

// EsfStatusFusionMode is ESF-STATUS's fusion mode byte: a closed enum
// using the "reserved" policy for any value above the named range.
type EsfStatusFusionMode uint8

const (
	EsfStatusFusionInitializing EsfStatusFusionMode = 0
	EsfStatusFusionFusion       EsfStatusFusionMode = 1
	EsfStatusFusionSuspended    EsfStatusFusionMode = 2
	EsfStatusFusionDisabled     EsfStatusFusionMode = 3
)

func (m EsfStatusFusionMode) String() string {
	switch m {
	case EsfStatusFusionInitializing:
		return "Initializing"
	case EsfStatusFusionFusion:
		return "Fusion"
	case EsfStatusFusionSuspended:
		return "Suspended"
	case EsfStatusFusionDisabled:
		return "Disabled"
	default:
		return fmt.Sprintf("Reserved(%d)", uint8(m))
	}
}
