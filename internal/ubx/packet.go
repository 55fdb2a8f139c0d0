package ubx

import "github.com/kstaniek/go-ubx/internal/ubx/message"

// Packet is one successfully framed and checksum-validated UBX message:
// either recognized by the active protocol variant's catalog (Kind is one
// of the named constants) or opaque (Kind is message.KindUnknown, and
// Payload is exposed verbatim for the caller to inspect or discard).
type Packet struct {
	Class   byte
	ID      byte
	Payload []byte
	Kind    message.Kind
}
