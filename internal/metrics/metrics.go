package metrics

import (
	"net/http"
	"sync"
	"sync/atomic"

	"github.com/kstaniek/go-ubx/internal/logging"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Prometheus counters
var (
	FramesDecoded = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "frames_decoded_total",
		Help: "Total UBX frames decoded, by protocol variant and message kind.",
	}, []string{"variant", "kind"})
	UnknownFrames = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "unknown_frames_total",
		Help: "Total structurally valid frames whose class/id/payload matched no catalog entry, by variant.",
	}, []string{"variant"})
	ResyncEvents = promauto.NewCounter(prometheus.CounterOpts{
		Name: "resync_events_total",
		Help: "Total times the parser discarded bytes while searching for the next sync candidate.",
	})
	ChecksumFailures = promauto.NewCounter(prometheus.CounterOpts{
		Name: "checksum_failures_total",
		Help: "Total frames rejected due to a Fletcher-16 checksum mismatch.",
	})
	OversizeFrames = promauto.NewCounter(prometheus.CounterOpts{
		Name: "oversize_frames_total",
		Help: "Total frames rejected because the declared payload length exceeded the parser ceiling.",
	})
	BufferOverflows = promauto.NewCounter(prometheus.CounterOpts{
		Name: "buffer_overflows_total",
		Help: "Total frames rejected because materializing the payload would exceed buffer capacity.",
	})
	BuilderInvocations = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "builder_invocations_total",
		Help: "Total outbound frames built, by message kind.",
	}, []string{"kind"})
	SerialRxBytes = promauto.NewCounter(prometheus.CounterOpts{
		Name: "serial_rx_bytes_total",
		Help: "Total bytes read from the serial link and fed to the parser.",
	})
	SerialTxBytes = promauto.NewCounter(prometheus.CounterOpts{
		Name: "serial_tx_bytes_total",
		Help: "Total bytes written to the serial link.",
	})
	BuildInfo = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Name: "build_info",
		Help: "Build metadata (value is always 1).",
	}, []string{"version", "commit", "date"})
	Errors = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "errors_total",
		Help: "Error counters by subsystem.",
	}, []string{"where"})

	readinessMu sync.RWMutex
	readinessFn func() bool
)

// Error label constants (stable label values to bound cardinality)
const (
	ErrSerialRead     = "serial_read"
	ErrSerialWrite    = "serial_write"
	ErrSerialOverflow = "serial_tx_overflow"
	ErrParse          = "parse"
	ErrBuild          = "build"
)

// StartHTTP serves Prometheus metrics at /metrics and readiness at /ready on
// addr, using a new mux of its own, from a background goroutine.
func StartHTTP(addr string) *http.Server {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	mux.HandleFunc("/ready", func(w http.ResponseWriter, r *http.Request) {
		if IsReady() {
			w.WriteHeader(http.StatusOK)
			_, _ = w.Write([]byte("ready\n"))
			return
		}
		w.WriteHeader(http.StatusServiceUnavailable)
		_, _ = w.Write([]byte("not ready\n"))
	})

	srv := &http.Server{
		Addr:    addr,
		Handler: mux,
	}
	go func() {
		logging.L().Info("metrics_listen", "addr", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logging.L().Error("metrics_http_error", "error", err)
		}
	}()
	return srv
}

// Local mirrored counters for easy logging (avoid Prometheus scraping in-process)
var (
	localFramesDecoded   uint64
	localUnknownFrames   uint64
	localResyncEvents    uint64
	localChecksumFailure uint64
	localOversizeFrames  uint64
	localBufferOverflow  uint64
	localBuilderInvoked  uint64
	localSerialRxBytes   uint64
	localSerialTxBytes   uint64
	localErrors          uint64
)

// Snapshot is a cheap copy of local counters.
type Snapshot struct {
	FramesDecoded   uint64
	UnknownFrames   uint64
	ResyncEvents    uint64
	ChecksumFailure uint64
	OversizeFrames  uint64
	BufferOverflow  uint64
	BuilderInvoked  uint64
	SerialRxBytes   uint64
	SerialTxBytes   uint64
	Errors          uint64 // sum across error labels
}

func Snap() Snapshot {
	return Snapshot{
		FramesDecoded:   atomic.LoadUint64(&localFramesDecoded),
		UnknownFrames:   atomic.LoadUint64(&localUnknownFrames),
		ResyncEvents:    atomic.LoadUint64(&localResyncEvents),
		ChecksumFailure: atomic.LoadUint64(&localChecksumFailure),
		OversizeFrames:  atomic.LoadUint64(&localOversizeFrames),
		BufferOverflow:  atomic.LoadUint64(&localBufferOverflow),
		BuilderInvoked:  atomic.LoadUint64(&localBuilderInvoked),
		SerialRxBytes:   atomic.LoadUint64(&localSerialRxBytes),
		SerialTxBytes:   atomic.LoadUint64(&localSerialTxBytes),
		Errors:          atomic.LoadUint64(&localErrors),
	}
}

// Wrapper helpers to keep call sites simple.
func IncFrameDecoded(variant, kind string) {
	FramesDecoded.WithLabelValues(variant, kind).Inc()
	atomic.AddUint64(&localFramesDecoded, 1)
}

// IncUnknownFrame records a structurally valid frame that matched no catalog entry.
func IncUnknownFrame(variant string) {
	UnknownFrames.WithLabelValues(variant).Inc()
	atomic.AddUint64(&localUnknownFrames, 1)
}

func IncResync() {
	ResyncEvents.Inc()
	atomic.AddUint64(&localResyncEvents, 1)
}

func IncChecksumFailure() {
	ChecksumFailures.Inc()
	atomic.AddUint64(&localChecksumFailure, 1)
}

func IncOversizeFrame() {
	OversizeFrames.Inc()
	atomic.AddUint64(&localOversizeFrames, 1)
}

func IncBufferOverflow() {
	BufferOverflows.Inc()
	atomic.AddUint64(&localBufferOverflow, 1)
}

// IncBuilderInvocation records an outbound frame built for the given message kind.
func IncBuilderInvocation(kind string) {
	BuilderInvocations.WithLabelValues(kind).Inc()
	atomic.AddUint64(&localBuilderInvoked, 1)
}

func AddSerialRxBytes(n int) {
	SerialRxBytes.Add(float64(n))
	atomic.AddUint64(&localSerialRxBytes, uint64(n))
}

func AddSerialTxBytes(n int) {
	SerialTxBytes.Add(float64(n))
	atomic.AddUint64(&localSerialTxBytes, uint64(n))
}

func IncError(label string) {
	Errors.WithLabelValues(label).Inc()
	atomic.AddUint64(&localErrors, 1)
}

// InitBuildInfo sets the build info gauge (should be called once at startup).
func InitBuildInfo(version, commit, date string) {
	BuildInfo.WithLabelValues(version, commit, date).Set(1)
	// Pre-register common error label series so the first error does not log a registration latency.
	for _, lbl := range []string{
		ErrSerialRead, ErrSerialWrite, ErrSerialOverflow, ErrParse, ErrBuild,
	} {
		Errors.WithLabelValues(lbl).Add(0)
	}
}

// SetReadinessFunc registers a function used by /ready and IsReady.
func SetReadinessFunc(fn func() bool) { readinessMu.Lock(); readinessFn = fn; readinessMu.Unlock() }

// IsReady invokes the registered readiness function if present.
func IsReady() bool {
	readinessMu.RLock()
	fn := readinessFn
	readinessMu.RUnlock()
	if fn == nil { // if not set yet, treat as ready so metrics endpoint doesn't flap
		return true
	}
	return fn()
}

// Ready is a concise alias used at call sites.
func Ready() bool { return IsReady() }
