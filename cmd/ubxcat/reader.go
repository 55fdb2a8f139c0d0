package main

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"os"
	"sync"
	"time"

	"github.com/kstaniek/go-ubx/internal/metrics"
	"github.com/kstaniek/go-ubx/internal/serialport"
	"github.com/kstaniek/go-ubx/internal/ubx"
)

// openSerialPort is a hook for tests.
var openSerialPort = serialport.Open

// runDecodeLoop opens the serial port and starts a goroutine that feeds
// every chunk read from it into the parser and logs each decoded, unknown,
// or malformed frame. It returns as soon as that goroutine is started; the
// goroutine runs until ctx is cancelled or the device reports a fatal error.
// The opened port is returned so the caller can also use it for outbound
// commands.
func runDecodeLoop(ctx context.Context, cfg *appConfig, variant ubx.Variant, l *slog.Logger, wg *sync.WaitGroup) (serialport.Port, error) {
	sp, err := openSerialPort(cfg.serialDev, cfg.baud, cfg.readTimeout)
	if err != nil {
		return nil, err
	}
	l.Info("serial_open", "device", cfg.serialDev, "baud", cfg.baud, "variant", variant)

	parser := ubx.NewFixedParser(variant, cfg.bufferCap)
	wg.Add(1)
	go func() {
		defer wg.Done()
		defer func() { _ = sp.Close() }()
		defer l.Info("serial_rx_end")

		buf := make([]byte, serialReadBufSize)
		backoff := rxBackoffMin
		for {
			select {
			case <-ctx.Done():
				return
			default:
			}
			n, rerr := sp.Read(buf)
			if n > 0 {
				metrics.AddSerialRxBytes(n)
				decodeChunk(parser, buf[:n], variant, l)
				backoff = rxBackoffMin
			}
			if rerr != nil {
				if ctx.Err() != nil {
					return
				}
				var perr *os.PathError
				if errors.As(rerr, &perr) {
					l.Error("serial_read_fatal", "error", rerr)
					return
				}
				if errors.Is(rerr, io.EOF) || errors.Is(rerr, io.ErrUnexpectedEOF) {
					continue
				}
				metrics.IncError(metrics.ErrSerialRead)
				l.Warn("serial_read_error", "error", rerr, "backoff", backoff)
				time.Sleep(backoff)
				backoff *= 2
				if backoff > rxBackoffMax {
					backoff = rxBackoffMax
				}
			}
		}
	}()
	return sp, nil
}

// decodeChunk runs one Consume/Next/Close cycle over a chunk read from the
// wire, logging and counting every packet and structural error it yields.
func decodeChunk(parser *ubx.Parser, chunk []byte, variant ubx.Variant, l *slog.Logger) {
	it := parser.Consume(chunk)
	defer it.Close()
	for {
		pkt, err, ok := it.Next()
		if !ok {
			return
		}
		if err != nil {
			label := ubx.MetricsLabel(err)
			switch label {
			case "checksum":
				metrics.IncChecksumFailure()
			case "oversize":
				metrics.IncOversizeFrame()
			case "buffer_overflow":
				metrics.IncBufferOverflow()
			default:
				metrics.IncError(label)
			}
			l.Warn("decode_error", "error", err, "variant", variant)
			continue
		}
		if pkt.Kind.String() == "UNKNOWN" {
			metrics.IncUnknownFrame(variant.String())
			l.Debug("unknown_frame", "class", pkt.Class, "id", pkt.ID, "len", len(pkt.Payload))
			continue
		}
		metrics.IncFrameDecoded(variant.String(), pkt.Kind.String())
		l.Info("frame_decoded", "kind", pkt.Kind.String(), "len", len(pkt.Payload))
	}
}
