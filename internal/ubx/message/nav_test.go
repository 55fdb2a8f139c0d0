package message

import (
	"encoding/binary"
	"testing"
)

func buildNavPvtPayload() []byte {
	payload := make([]byte, navPvtLen)
	binary.LittleEndian.PutUint32(payload[0:4], 403200000)
	binary.LittleEndian.PutUint16(payload[4:6], 2026)
	payload[6], payload[7] = 7, 31
	payload[8], payload[9], payload[10] = 12, 0, 0
	payload[20] = byte(GpsFix3D)
	payload[23] = 11
	lon := int32(-1223456789)
	binary.LittleEndian.PutUint32(payload[24:28], uint32(lon))
	binary.LittleEndian.PutUint32(payload[28:32], 407654321)
	return payload
}

func TestNavPvtAccessors(t *testing.T) {
	ref, err := NewNavPvtRef(buildNavPvtPayload())
	if err != nil {
		t.Fatalf("NewNavPvtRef: %v", err)
	}
	if ref.Itow() != 403200000 {
		t.Fatalf("Itow() = %d, want 403200000", ref.Itow())
	}
	if ref.Year() != 2026 || ref.Month() != 7 || ref.Day() != 31 {
		t.Fatalf("date = %d-%d-%d, want 2026-7-31", ref.Year(), ref.Month(), ref.Day())
	}
	if ref.FixType() != GpsFix3D {
		t.Fatalf("FixType() = %v, want Fix3D", ref.FixType())
	}
	if ref.NumSatellites() != 11 {
		t.Fatalf("NumSatellites() = %d, want 11", ref.NumSatellites())
	}
	wantLon := -122.3456789
	if got := ref.LonDegrees(); got-wantLon > 1e-6 || got-wantLon < -1e-6 {
		t.Fatalf("LonDegrees() = %v, want %v", got, wantLon)
	}
}

func TestNavPvtRejectsWrongLength(t *testing.T) {
	if _, err := NewNavPvtRef(make([]byte, navPvtLen-1)); err == nil {
		t.Fatalf("expected an error for a short payload")
	}
}

func TestNavPosllhOwnedCopiesPayload(t *testing.T) {
	payload := make([]byte, navPosllhLen)
	binary.LittleEndian.PutUint32(payload[0:4], 42)
	owned, err := NewNavPosllhOwned(payload)
	if err != nil {
		t.Fatalf("NewNavPosllhOwned: %v", err)
	}
	payload[0] = 0xFF // mutating the source must not affect the owned copy
	if got := owned.View().Itow(); got != 42 {
		t.Fatalf("Itow() after source mutation = %d, want 42", got)
	}
}

func TestNavSatIteratesPerSatelliteBlocks(t *testing.T) {
	payload := make([]byte, navSatHeaderLen+2*navSatBlockLen)
	payload[5] = 2 // numSvs
	block0 := payload[navSatHeaderLen : navSatHeaderLen+navSatBlockLen]
	block0[0], block0[1] = 0, 14 // gnssID, svID
	block1 := payload[navSatHeaderLen+navSatBlockLen:]
	block1[0], block1[1] = 0, 21

	ref, err := NewNavSatRef(payload)
	if err != nil {
		t.Fatalf("NewNavSatRef: %v", err)
	}
	if ref.NumSvs() != 2 {
		t.Fatalf("NumSvs() = %d, want 2", ref.NumSvs())
	}

	it := ref.Svs()
	sv0, ok := it.Next()
	if !ok || sv0.SvID() != 14 {
		t.Fatalf("first Svs() entry svID = %d (ok=%v), want 14", sv0.SvID(), ok)
	}
	sv1, ok := it.Next()
	if !ok || sv1.SvID() != 21 {
		t.Fatalf("second Svs() entry svID = %d (ok=%v), want 21", sv1.SvID(), ok)
	}
	if _, ok := it.Next(); ok {
		t.Fatalf("expected iterator exhaustion after two blocks")
	}
}

func TestNavSatRejectsMisalignedTrailer(t *testing.T) {
	payload := make([]byte, navSatHeaderLen+navSatBlockLen+1)
	if _, err := NewNavSatRef(payload); err == nil {
		t.Fatalf("expected an error for a trailer not divisible by the block size")
	}
}

func TestNavSatOwnedCopiesPayload(t *testing.T) {
	payload := make([]byte, navSatHeaderLen+navSatBlockLen)
	payload[5] = 1
	owned, err := NewNavSatOwned(payload)
	if err != nil {
		t.Fatalf("NewNavSatOwned: %v", err)
	}
	payload[5] = 0xFF
	if got := owned.View().NumSvs(); got != 1 {
		t.Fatalf("NumSvs() after source mutation = %d, want 1", got)
	}
}

func TestNavSatOwnedRejectsOversizePayload(t *testing.T) {
	if _, err := NewNavSatOwned(make([]byte, navSatMaxLen+1)); err == nil {
		t.Fatalf("expected an error for a payload larger than navSatMaxLen")
	}
}

func TestNavHpposecefFlags(t *testing.T) {
	payload := make([]byte, navHpposecefLen)
	payload[23] = 0x01
	ref, err := NewNavHpposecefRef(payload)
	if err != nil {
		t.Fatalf("NewNavHpposecefRef: %v", err)
	}
	if got := ref.Flags(); got != 0x01 {
		t.Fatalf("Flags() = %#x, want 0x01", got)
	}
}
