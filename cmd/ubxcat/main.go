// Command ubxcat opens a serial link to a u-blox receiver, decodes the
// incoming UBX frame stream, and logs every decoded, unknown, or malformed
// frame. It is a demonstration call site for the codec and its ambient
// stack (config, logging, metrics) - not a network service.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/kstaniek/go-ubx/internal/metrics"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	cfg, showVersion := parseFlags()
	if showVersion {
		fmt.Printf("ubxcat %s (commit %s, built %s)\n", version, commit, date)
		return
	}
	if cfg == nil {
		os.Exit(1)
	}
	l := setupLogger(cfg.logFormat, cfg.logLevel)
	variant, err := parseVariant(cfg.variant)
	if err != nil {
		l.Error("config_error", "error", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	var wg sync.WaitGroup
	startMetricsLogger(ctx, cfg.logEvery, l, &wg)

	sp, err := runDecodeLoop(ctx, cfg, variant, l, &wg)
	if err != nil {
		l.Error("serial_open_error", "error", err)
		return
	}
	tx := enableNavPvt(ctx, sp, 8)
	defer tx.Close()

	ready := true
	metrics.SetReadinessFunc(func() bool { return ready })
	if cfg.metricsAddr != "" {
		metrics.InitBuildInfo(version, commit, date)
		srvHTTP := metrics.StartHTTP(cfg.metricsAddr)
		defer func() { _ = srvHTTP.Shutdown(context.Background()) }()
	}

	sigCh := make(chan os.Signal, 2)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	s := <-sigCh
	l.Info("shutdown_signal", "signal", s.String())
	ready = false
	cancel()
	wg.Wait()
}
