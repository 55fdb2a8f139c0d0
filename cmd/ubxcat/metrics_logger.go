package main

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/kstaniek/go-ubx/internal/metrics"
)

func startMetricsLogger(ctx context.Context, interval time.Duration, l *slog.Logger, wg *sync.WaitGroup) {
	if interval <= 0 {
		return
	}
	wg.Add(1)
	go func() {
		defer wg.Done()
		t := time.NewTicker(interval)
		defer t.Stop()
		for {
			select {
			case <-t.C:
				snap := metrics.Snap()
				l.Info("metrics_snapshot",
					"frames_decoded", snap.FramesDecoded,
					"unknown_frames", snap.UnknownFrames,
					"resync_events", snap.ResyncEvents,
					"checksum_failures", snap.ChecksumFailure,
					"oversize_frames", snap.OversizeFrames,
					"buffer_overflows", snap.BufferOverflow,
					"serial_rx_bytes", snap.SerialRxBytes,
					"errors", snap.Errors,
				)
			case <-ctx.Done():
				return
			}
		}
	}()
}
