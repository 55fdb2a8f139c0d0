package serialport

import (
	"context"
	"errors"

	"github.com/kstaniek/go-ubx/internal/logging"
	"github.com/kstaniek/go-ubx/internal/metrics"
	"github.com/kstaniek/go-ubx/internal/transport"
)

var ErrTxOverflow = errors.New("serial tx overflow")

// TXWriter funnels all outbound UBX command frames (already fully encoded by
// a message builder) through one goroutine, so a command send never blocks
// the caller behind a slow or wedged serial device.
type TXWriter struct{ base *transport.AsyncTx }

// NewTXWriter creates a serial TXWriter with a buffered channel of size buf.
func NewTXWriter(parent context.Context, sp Port, buf int) *TXWriter {
	send := func(frame []byte) error {
		_, err := sp.Write(frame)
		return err
	}
	hooks := transport.Hooks{
		OnError: func(err error) {
			metrics.IncError(metrics.ErrSerialWrite)
			logging.L().Error("serial_write_error", "error", err)
		},
		OnAfter: func(n int) { metrics.AddSerialTxBytes(n) },
		OnDrop: func() error {
			metrics.IncError(metrics.ErrSerialOverflow)
			return ErrTxOverflow
		},
	}
	return &TXWriter{base: transport.NewAsyncTx(parent, buf, send, hooks)}
}

// Send queues an already-encoded frame (as built by a message Builder) for
// asynchronous write; it drops with ErrTxOverflow if the buffer is full.
func (w *TXWriter) Send(frame []byte) error { return w.base.SendFrame(frame) }

// Close stops the writer and waits for the pending goroutine to exit.
func (w *TXWriter) Close() { w.base.Close() }
