package message

import (
	"bytes"

	"github.com/kstaniek/go-ubx/internal/ubxerr"
)

// --- MON-VER (0x0A 0x04), variable: 40-byte header (30-byte software
// version string, 10-byte hardware version string) followed by zero or
// more 30-byte null-terminated extension strings. ---

const (
	monVerSwLen        = 30
	monVerHwLen         = 10
	monVerHeaderLen     = monVerSwLen + monVerHwLen
	monVerExtensionLen  = 30
	// monVerMaxExtensions bounds how many extension strings a receiver is
	// expected to report; real firmware reports well under ten.
	monVerMaxExtensions = 10
	monVerMaxLen        = monVerHeaderLen + monVerMaxExtensions*monVerExtensionLen
)

type MonVerRef View

func NewMonVerRef(payload []byte) (MonVerRef, error) {
	if len(payload) < monVerHeaderLen {
		return nil, &ubxerr.InvalidPacketLenError{Packet: "MON-VER", Expect: monVerHeaderLen, Got: len(payload)}
	}
	trailing := payload[monVerHeaderLen:]
	if len(trailing)%monVerExtensionLen != 0 {
		return nil, &ubxerr.InvalidFieldError{Packet: "MON-VER", Field: "extension"}
	}
	return MonVerRef(payload), nil
}

func (v MonVerRef) SoftwareVersion() string {
	return cString(v[0:monVerSwLen])
}

func (v MonVerRef) HardwareVersion() string {
	return cString(v[monVerSwLen:monVerHeaderLen])
}

// Extension returns an iterator over the trailing extension strings (free
// form "KEY=VALUE" text per the u-blox ICD, but not parsed further here).
func (v MonVerRef) Extension() MonVerExtensionIter {
	return MonVerExtensionIter{data: View(v)[monVerHeaderLen:]}
}

type MonVerExtensionIter struct {
	data   View
	offset int
}

func (it *MonVerExtensionIter) Next() (string, bool) {
	if it.offset >= len(it.data) {
		return "", false
	}
	block := it.data[it.offset : it.offset+monVerExtensionLen]
	it.offset += monVerExtensionLen
	return cString(block), true
}

func cString(b []byte) string {
	if i := bytes.IndexByte(b, 0); i >= 0 {
		return string(b[:i])
	}
	return string(b)
}

// MonVerOwned copies a MON-VER payload into an inline array sized to
// monVerMaxLen.
type MonVerOwned struct {
	data [monVerMaxLen]byte
	n    int
}

func NewMonVerOwned(payload []byte) (*MonVerOwned, error) {
	if _, err := NewMonVerRef(payload); err != nil {
		return nil, err
	}
	if len(payload) > monVerMaxLen {
		return nil, &ubxerr.InvalidPacketLenError{Packet: "MON-VER", Expect: monVerMaxLen, Got: len(payload)}
	}
	o := &MonVerOwned{n: len(payload)}
	copy(o.data[:], payload)
	return o, nil
}

func (o *MonVerOwned) View() MonVerRef { return MonVerRef(o.data[:o.n]) }
