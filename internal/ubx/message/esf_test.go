package message

import "testing"

func TestEsfAlgAccessors(t *testing.T) {
	payload := make([]byte, esfAlgLen)
	putU32(payload, 0, 55000)    // itow
	payload[4] = 1               // version
	payload[5] = 0x01 | (2 << 1) // flags: auto-align on, status=2
	payload[6] = 0                // error
	putU32(payload, 8, 9000)      // yaw raw, scale 1e-2 -> 90.00 deg
	putI16(payload, 12, -500)     // pitch raw, scale 1e-2 -> -5.00 deg
	putI16(payload, 14, 100)      // roll raw, scale 1e-2 -> 1.00 deg

	ref, err := NewEsfAlgRef(payload)
	if err != nil {
		t.Fatalf("NewEsfAlgRef: %v", err)
	}
	if ref.Itow() != 55000 {
		t.Fatalf("Itow() = %d, want 55000", ref.Itow())
	}
	if !ref.Flags().AutoIMUMountAlignOn() {
		t.Fatalf("AutoIMUMountAlignOn() = false, want true")
	}
	if ref.Flags().Status() != EsfAlgStatusRollPitchYawAlignmentOngoing {
		t.Fatalf("Status() = %v, want RollPitchYawAlignmentOngoing", ref.Flags().Status())
	}
	if got, want := ref.YawDegrees(), 90.0; got != want {
		t.Fatalf("YawDegrees() = %v, want %v", got, want)
	}
	if got, want := ref.PitchDegrees(), -5.0; got != want {
		t.Fatalf("PitchDegrees() = %v, want %v", got, want)
	}
	if got, want := ref.RollDegrees(), 1.0; got != want {
		t.Fatalf("RollDegrees() = %v, want %v", got, want)
	}
}

func TestEsfAlgOwnedRejectsWrongLength(t *testing.T) {
	if _, err := NewEsfAlgOwned(make([]byte, esfAlgLen-1)); err == nil {
		t.Fatalf("expected an error for a short payload")
	}
}

func TestEsfStatusIteratesSensorBlocks(t *testing.T) {
	payload := make([]byte, esfStatusHeaderLen+2*esfStatusBlockLen)
	putU32(payload, 0, 1000) // itow
	payload[12] = byte(EsfStatusFusionFusion)
	payload[15] = 2 // numSens

	block0 := payload[esfStatusHeaderLen : esfStatusHeaderLen+esfStatusBlockLen]
	block0[0], block0[2] = 1, 100 // sensStatus1, freq
	block1 := payload[esfStatusHeaderLen+esfStatusBlockLen:]
	block1[0], block1[2] = 2, 50

	payload[5], payload[6] = 0x01, 0x02 // initStatus1, initStatus2

	ref, err := NewEsfStatusRef(payload)
	if err != nil {
		t.Fatalf("NewEsfStatusRef: %v", err)
	}
	if ref.FusionMode() != EsfStatusFusionFusion {
		t.Fatalf("FusionMode() = %v, want Fusion", ref.FusionMode())
	}
	if ref.NumSens() != 2 {
		t.Fatalf("NumSens() = %d, want 2", ref.NumSens())
	}
	if ref.InitStatus1() != 0x01 || ref.InitStatus2() != 0x02 {
		t.Fatalf("InitStatus1/2 = %#x/%#x, want 0x01/0x02", ref.InitStatus1(), ref.InitStatus2())
	}

	it := ref.Sensors()
	s0, ok := it.Next()
	if !ok || s0.Freq != 100 {
		t.Fatalf("first sensor Freq = %d (ok=%v), want 100", s0.Freq, ok)
	}
	s1, ok := it.Next()
	if !ok || s1.Freq != 50 {
		t.Fatalf("second sensor Freq = %d (ok=%v), want 50", s1.Freq, ok)
	}
	if _, ok := it.Next(); ok {
		t.Fatalf("expected sensor iterator exhaustion")
	}
}

func TestEsfRawIteratesBlocks(t *testing.T) {
	payload := make([]byte, esfRawHeaderLen+esfRawBlockLen)
	putU32(payload[esfRawHeaderLen:], 0, 0xAABBCCDD)
	putU32(payload[esfRawHeaderLen:], 4, 7777)

	ref, err := NewEsfRawRef(payload)
	if err != nil {
		t.Fatalf("NewEsfRawRef: %v", err)
	}
	it := ref.Blocks()
	block, ok := it.Next()
	if !ok {
		t.Fatalf("expected one block")
	}
	if block.Data != 0xAABBCCDD || block.SensorTag != 7777 {
		t.Fatalf("block = %+v, want {0xaabbccdd 7777}", block)
	}
	if _, ok := it.Next(); ok {
		t.Fatalf("expected exhaustion after one block")
	}
}

func TestEsfMeasIteratesDataWords(t *testing.T) {
	payload := make([]byte, esfMeasHeaderLen+2*esfMeasBlockLen)
	putU32(payload, 0, 12345) // timeTag
	putU16(payload, 4, 0x03)  // flags
	putU16(payload, 6, 0x10)  // id
	putU32(payload[esfMeasHeaderLen:], 0, 111)
	putU32(payload[esfMeasHeaderLen:], 4, 222)

	ref, err := NewEsfMeasRef(payload)
	if err != nil {
		t.Fatalf("NewEsfMeasRef: %v", err)
	}
	if ref.TimeTag() != 12345 || ref.ID() != 0x10 {
		t.Fatalf("TimeTag/ID = %d/%#x, want 12345/0x10", ref.TimeTag(), ref.ID())
	}
	it := ref.Data()
	v0, ok := it.Next()
	if !ok || v0 != 111 {
		t.Fatalf("first data word = %d (ok=%v), want 111", v0, ok)
	}
	v1, ok := it.Next()
	if !ok || v1 != 222 {
		t.Fatalf("second data word = %d (ok=%v), want 222", v1, ok)
	}
}

func TestEsfMeasOwnedCopiesPayload(t *testing.T) {
	payload := make([]byte, esfMeasHeaderLen)
	putU32(payload, 0, 999)
	owned, err := NewEsfMeasOwned(payload)
	if err != nil {
		t.Fatalf("NewEsfMeasOwned: %v", err)
	}
	putU32(payload, 0, 0)
	if got := owned.View().TimeTag(); got != 999 {
		t.Fatalf("TimeTag() after source mutation = %d, want 999", got)
	}
}

func TestEsfMeasOwnedRejectsOversizePayload(t *testing.T) {
	if _, err := NewEsfMeasOwned(make([]byte, esfMeasMaxLen+esfMeasBlockLen)); err == nil {
		t.Fatalf("expected an error for a payload larger than esfMeasMaxLen")
	}
}

func TestEsfRawOwnedCopiesPayload(t *testing.T) {
	payload := make([]byte, esfRawHeaderLen+esfRawBlockLen)
	putU32(payload[esfRawHeaderLen:], 0, 4242)
	owned, err := NewEsfRawOwned(payload)
	if err != nil {
		t.Fatalf("NewEsfRawOwned: %v", err)
	}
	putU32(payload[esfRawHeaderLen:], 0, 0)
	it := owned.View().Blocks()
	block, ok := it.Next()
	if !ok || block.Data != 4242 {
		t.Fatalf("block after source mutation = %+v (ok=%v), want Data=4242", block, ok)
	}
}

func TestEsfRawOwnedRejectsOversizePayload(t *testing.T) {
	if _, err := NewEsfRawOwned(make([]byte, esfRawMaxLen+esfRawBlockLen)); err == nil {
		t.Fatalf("expected an error for a payload larger than esfRawMaxLen")
	}
}

func TestEsfStatusOwnedCopiesPayload(t *testing.T) {
	payload := make([]byte, esfStatusHeaderLen)
	payload[4] = 2 // version
	owned, err := NewEsfStatusOwned(payload)
	if err != nil {
		t.Fatalf("NewEsfStatusOwned: %v", err)
	}
	payload[4] = 0
	if got := owned.View().Version(); got != 2 {
		t.Fatalf("Version() after source mutation = %d, want 2", got)
	}
}

func TestEsfStatusOwnedRejectsOversizePayload(t *testing.T) {
	if _, err := NewEsfStatusOwned(make([]byte, esfStatusMaxLen+esfStatusBlockLen)); err == nil {
		t.Fatalf("expected an error for a payload larger than esfStatusMaxLen")
	}
}
