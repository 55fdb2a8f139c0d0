// Package transport provides a reusable asynchronous send queue that decouples
// frame producers from a possibly slow transport (here, a serial link) without
// letting producers block behind it.
package transport

// FrameSink is a generic outbound-frame transmission target: anything that
// can accept a fully-encoded wire frame and hand it to the transport.
type FrameSink interface {
	SendFrame([]byte) error
}
