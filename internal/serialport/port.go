// Package serialport opens the physical link to a u-blox receiver. It is
// the external transport collaborator: everything past Read/Write belongs to
// the parser and builder, not to this package.
package serialport

import (
	"time"

	"github.com/tarm/serial"
)

// Port abstracts tarm/serial for testability.
type Port interface {
	Read(p []byte) (int, error)
	Write(p []byte) (int, error)
	Close() error
}

// Open opens name at the given baud rate with a bounded read timeout, so a
// blocking Read call always returns control to the caller even when the
// receiver goes quiet.
func Open(name string, baud int, readTimeout time.Duration) (Port, error) {
	cfg := &serial.Config{Name: name, Baud: baud, ReadTimeout: readTimeout}
	return serial.OpenPort(cfg)
}
