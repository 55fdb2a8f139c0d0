package ubx

import (
	"testing"

	"github.com/kstaniek/go-ubx/internal/ubx/message"
)

func TestMatchStableEntryAcrossVariants(t *testing.T) {
	payload := make([]byte, 16) // NAV-STATUS length
	for _, v := range []Variant{VariantP14, VariantP23, VariantP27, VariantP31, VariantP33} {
		if got := match(v, 0x01, 0x03, payload); got != message.KindNavStatus {
			t.Fatalf("variant %v: match(NAV-STATUS) = %v, want KindNavStatus", v, got)
		}
	}
}

func TestMatchNavSolutionOnlyOnOlderVariants(t *testing.T) {
	payload := make([]byte, 52) // NAV-SOL length
	for _, v := range []Variant{VariantP14, VariantP23} {
		if got := match(v, 0x01, 0x06, payload); got != message.KindNavSolution {
			t.Fatalf("variant %v: match(NAV-SOL) = %v, want KindNavSolution", v, got)
		}
	}
	for _, v := range []Variant{VariantP27, VariantP31, VariantP33} {
		if got := match(v, 0x01, 0x06, payload); got != message.KindUnknown {
			t.Fatalf("variant %v: match(NAV-SOL) = %v, want KindUnknown", v, got)
		}
	}
}

func TestMatchHighPrecisionOnlyFromP27(t *testing.T) {
	payload := make([]byte, 28) // NAV-HPPOSECEF length
	for _, v := range []Variant{VariantP14, VariantP23} {
		if got := match(v, 0x01, 0x13, payload); got != message.KindUnknown {
			t.Fatalf("variant %v: match(NAV-HPPOSECEF) = %v, want KindUnknown", v, got)
		}
	}
	for _, v := range []Variant{VariantP27, VariantP31, VariantP33} {
		if got := match(v, 0x01, 0x13, payload); got != message.KindNavHpposecef {
			t.Fatalf("variant %v: match(NAV-HPPOSECEF) = %v, want KindNavHpposecef", v, got)
		}
	}
}

func TestMatchFallsThroughToUnknownOnValidateFailure(t *testing.T) {
	// Right (class,id) for NAV-STATUS but a payload too short to validate.
	got := match(VariantP27, 0x01, 0x03, make([]byte, 4))
	if got != message.KindUnknown {
		t.Fatalf("match with undersized payload = %v, want KindUnknown", got)
	}
}

func TestMatchUnrecognizedClassID(t *testing.T) {
	if got := match(VariantP27, 0xFE, 0xFD, nil); got != message.KindUnknown {
		t.Fatalf("match(unknown class/id) = %v, want KindUnknown", got)
	}
}

func TestMaxPayloadLenForMatchesCatalogMaximum(t *testing.T) {
	for _, v := range []Variant{VariantP14, VariantP23, VariantP27, VariantP31, VariantP33} {
		want := 0
		for _, entry := range catalogFor(v) {
			if n := message.MaxPayloadLen(entry.kind); n > want {
				want = n
			}
		}
		if got := maxPayloadLenFor(v); got != want {
			t.Fatalf("maxPayloadLenFor(%v) = %d, want %d (recomputed from its own catalog)", v, got, want)
		}
		if want == 0 {
			t.Fatalf("variant %v: catalog maximum computed as 0, want a positive ceiling", v)
		}
	}
}

func TestMaxPayloadLenForExcludesEntriesNotInCatalog(t *testing.T) {
	// NAV-SAT is only in the high-precision catalog; a variant that omits
	// it must not have its ceiling driven by NAV-SAT's max length unless
	// some other entry in its own catalog independently demands it.
	for _, v := range []Variant{VariantP14, VariantP23} {
		for _, entry := range catalogFor(v) {
			if entry.kind == message.KindNavSat {
				t.Fatalf("variant %v: catalog unexpectedly includes NAV-SAT", v)
			}
		}
	}
}

func TestVariantString(t *testing.T) {
	cases := map[Variant]string{
		VariantP14: "P14",
		VariantP23: "P23",
		VariantP27: "P27",
		VariantP31: "P31",
		VariantP33: "P33",
	}
	for v, want := range cases {
		if got := v.String(); got != want {
			t.Fatalf("Variant(%d).String() = %q, want %q", v, got, want)
		}
	}
}
