package main

import (
	"context"

	"github.com/kstaniek/go-ubx/internal/metrics"
	"github.com/kstaniek/go-ubx/internal/serialport"
	"github.com/kstaniek/go-ubx/internal/ubx/message"
)

// enableNavPvt queues a CFG-MSG command that asks the receiver to emit
// NAV-PVT once per navigation solution on UART1 (rate index 1) and turns it
// off on the other five port slots. It demonstrates
// the builder side of the codec against the TXWriter's async send queue.
func enableNavPvt(ctx context.Context, sp serialport.Port, bufSize int) *serialport.TXWriter {
	w := serialport.NewTXWriter(ctx, sp, bufSize)
	frame := message.CfgMsgBuilder{
		MsgClass: 0x01, // NAV
		MsgID:    0x07, // PVT
		Rates:    [6]byte{0, 1, 0, 0, 0, 0},
	}.Build()
	if err := w.Send(frame[:]); err == nil {
		metrics.IncBuilderInvocation("CFG-MSG")
	}
	return w
}
