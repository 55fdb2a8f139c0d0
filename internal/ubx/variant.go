package ubx

import "github.com/kstaniek/go-ubx/internal/ubx/message"

// Variant identifies one of the u-blox firmware protocol versions this
// codec's catalog tracks. Different versions disagree on payload layout
// for a handful of (class,id) pairs, so dispatch is parametric over this
// tag rather than global.
type Variant uint8

const (
	VariantP14 Variant = iota
	VariantP23
	VariantP27
	VariantP31
	VariantP33
)

func (v Variant) String() string {
	switch v {
	case VariantP14:
		return "P14"
	case VariantP23:
		return "P23"
	case VariantP27:
		return "P27"
	case VariantP31:
		return "P31"
	case VariantP33:
		return "P33"
	default:
		return "unknown"
	}
}

// catalogEntry pairs a message kind's (class,id) with the validate
// function that confirms a candidate payload actually has that kind's
// shape.
type catalogEntry struct {
	kind     message.Kind
	validate func([]byte) error
}

// stableEntries are present, with an identical payload shape, across
// every protocol variant this codec supports.
var stableEntries = []catalogEntry{
	{message.KindNavPosllh, voidErr(message.NewNavPosllhRef)},
	{message.KindNavStatus, voidErr(message.NewNavStatusRef)},
	{message.KindNavDop, voidErr(message.NewNavDopRef)},
	{message.KindNavPvt, voidErr(message.NewNavPvtRef)},
	{message.KindNavVelned, voidErr(message.NewNavVelnedRef)},
	{message.KindNavTimeutc, voidErr(message.NewNavTimeutcRef)},
	{message.KindAckNak, voidErr(message.NewAckNakRef)},
	{message.KindAckAck, voidErr(message.NewAckAckRef)},
	{message.KindCfgPrt, voidErr(message.NewCfgPrtRef)},
	{message.KindCfgMsg, voidErr(message.NewCfgMsgRef)},
	{message.KindCfgRate, voidErr(message.NewCfgRateRef)},
	{message.KindCfgRst, voidErr(message.NewCfgRstRef)},
	{message.KindMonVer, voidErr(message.NewMonVerRef)},
	{message.KindEsfMeas, voidErr(message.NewEsfMeasRef)},
	{message.KindEsfRaw, voidErr(message.NewEsfRawRef)},
	{message.KindEsfStatus, voidErr(message.NewEsfStatusRef)},
	{message.KindEsfAlg, voidErr(message.NewEsfAlgRef)},
}

// navSolutionEntry is present only in P14/P23: NAV-SOL was deprecated by
// NAV-PVT starting with protocol version 27.
var navSolutionEntry = catalogEntry{message.KindNavSolution, voidErr(message.NewNavSolutionRef)}

// highPrecisionEntries are present only from P27 on: high-precision
// position reporting and extended satellite detail were added in that
// generation.
var highPrecisionEntries = []catalogEntry{
	{message.KindNavHpposecef, voidErr(message.NewNavHpposecefRef)},
	{message.KindNavHpposllh, voidErr(message.NewNavHpposllhRef)},
	{message.KindNavSat, voidErr(message.NewNavSatRef)},
}

func catalogFor(v Variant) []catalogEntry {
	switch v {
	case VariantP14, VariantP23:
		entries := append([]catalogEntry{}, stableEntries...)
		return append(entries, navSolutionEntry)
	case VariantP27, VariantP31, VariantP33:
		entries := append([]catalogEntry{}, stableEntries...)
		return append(entries, highPrecisionEntries...)
	default:
		return stableEntries
	}
}

// maxPayloadLenFor bounds the parser's required buffer capacity and the
// largest declared length L it will accept for the active variant: the
// maximum of MaxPayloadLen over every kind actually in that variant's
// catalog, not a single ceiling shared by every variant. A variant whose
// catalog excludes the largest-payload kinds gets a correspondingly
// smaller ceiling, so an oversized frame for that variant is rejected
// with InvalidPacketLenError instead of being framed and falling through
// every catalog entry's dispatch match as Unknown.
func maxPayloadLenFor(v Variant) int {
	best := 0
	for _, entry := range catalogFor(v) {
		if n := message.MaxPayloadLen(entry.kind); n > best {
			best = n
		}
	}
	return best
}

// voidErr adapts a NewXxxRef(payload) (T, error) constructor, which this
// package doesn't need the typed result of, into a plain validate
// function.
func voidErr[T any](ctor func([]byte) (T, error)) func([]byte) error {
	return func(payload []byte) error {
		_, err := ctor(payload)
		return err
	}
}

// match implements the dispatch algorithm of the parser's per-variant
// matcher: linear scan through the variant's catalog entries, returning
// the first kind whose (class,id) matches and whose validate succeeds.
// Unknown is returned (not an error) when nothing matches or every match
// fails validation - a malformed known packet degrades gracefully to an
// opaque one rather than becoming a parse error.
func match(v Variant, class, id byte, payload []byte) message.Kind {
	want := message.MakeKind(class, id)
	for _, entry := range catalogFor(v) {
		if entry.kind != want {
			continue
		}
		if err := entry.validate(payload); err != nil {
			continue
		}
		return entry.kind
	}
	return message.KindUnknown
}
