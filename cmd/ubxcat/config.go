package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/kstaniek/go-ubx/internal/ubx"
)

type appConfig struct {
	serialDev    string
	baud         int
	readTimeout  time.Duration
	variant      string
	bufferCap    int
	logFormat    string
	logLevel     string
	metricsAddr  string
	logEvery     time.Duration
}

func parseFlags() (*appConfig, bool) {
	cfg := &appConfig{}
	serialDev := flag.String("serial", "/dev/ttyACM0", "Serial device path of the u-blox receiver")
	baud := flag.Int("baud", 9600, "Serial baud rate")
	readTimeout := flag.Duration("read-timeout", 200*time.Millisecond, "Serial read timeout")
	variant := flag.String("variant", "p27", "Protocol variant: p14|p23|p27|p31|p33")
	bufferCap := flag.Int("buffer-capacity", 8192, "Fixed parser buffer capacity in bytes")
	logFormat := flag.String("log-format", "text", "Log format: text|json")
	logLevel := flag.String("log-level", "info", "Log level: debug|info|warn|error")
	metricsAddr := flag.String("metrics-addr", "", "Metrics HTTP listen address (e.g., :9100); empty disables")
	logEvery := flag.Duration("log-metrics-interval", 0, "If >0, periodically log metrics counters")
	showVersion := flag.Bool("version", false, "Print version and exit")
	flag.Parse()

	setFlags := map[string]struct{}{}
	flag.Visit(func(f *flag.Flag) { setFlags[f.Name] = struct{}{} })

	cfg.serialDev = *serialDev
	cfg.baud = *baud
	cfg.readTimeout = *readTimeout
	cfg.variant = *variant
	cfg.bufferCap = *bufferCap
	cfg.logFormat = *logFormat
	cfg.logLevel = *logLevel
	cfg.metricsAddr = *metricsAddr
	cfg.logEvery = *logEvery

	if err := applyEnvOverrides(cfg, setFlags); err != nil {
		fmt.Printf("environment override error: %v\n", err)
		return nil, *showVersion
	}
	if err := cfg.validate(); err != nil {
		fmt.Printf("configuration error: %v\n", err)
		return nil, *showVersion
	}
	return cfg, *showVersion
}

// validate performs basic semantic validation of the parsed configuration.
// It does not open the serial device - only range/enum-checks parsed values.
func (c *appConfig) validate() error {
	if c == nil {
		return errors.New("nil config")
	}
	switch c.logFormat {
	case "text", "json":
	default:
		return fmt.Errorf("invalid log-format: %s", c.logFormat)
	}
	switch c.logLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid log-level: %s", c.logLevel)
	}
	if _, err := parseVariant(c.variant); err != nil {
		return err
	}
	if c.baud <= 0 {
		return fmt.Errorf("baud must be > 0 (got %d)", c.baud)
	}
	if c.readTimeout <= 0 {
		return errors.New("read-timeout must be > 0")
	}
	if c.bufferCap <= 0 {
		return fmt.Errorf("buffer-capacity must be > 0 (got %d)", c.bufferCap)
	}
	return nil
}

// parseVariant maps the CLI-facing variant string onto an ubx.Variant.
func parseVariant(s string) (ubx.Variant, error) {
	switch strings.ToLower(s) {
	case "p14":
		return ubx.VariantP14, nil
	case "p23":
		return ubx.VariantP23, nil
	case "p27":
		return ubx.VariantP27, nil
	case "p31":
		return ubx.VariantP31, nil
	case "p33":
		return ubx.VariantP33, nil
	default:
		return 0, fmt.Errorf("invalid variant: %s", s)
	}
}

// applyEnvOverrides maps UBXCAT_* environment variables to config fields
// unless a corresponding flag was explicitly set (flag wins).
func applyEnvOverrides(c *appConfig, set map[string]struct{}) error {
	var firstErr error
	get := func(k string) (string, bool) { v, ok := os.LookupEnv(k); return strings.TrimSpace(v), ok }

	if _, ok := set["serial"]; !ok {
		if v, ok := get("UBXCAT_SERIAL"); ok && v != "" {
			c.serialDev = v
		}
	}
	if _, ok := set["baud"]; !ok {
		if v, ok := get("UBXCAT_BAUD"); ok && v != "" {
			if n, err := strconv.Atoi(v); err == nil && n > 0 {
				c.baud = n
			} else if err != nil && firstErr == nil {
				firstErr = fmt.Errorf("invalid UBXCAT_BAUD: %w", err)
			}
		}
	}
	if _, ok := set["read-timeout"]; !ok {
		if v, ok := get("UBXCAT_READ_TIMEOUT"); ok && v != "" {
			if d, err := time.ParseDuration(v); err == nil && d > 0 {
				c.readTimeout = d
			} else if err != nil && firstErr == nil {
				firstErr = fmt.Errorf("invalid UBXCAT_READ_TIMEOUT: %w", err)
			}
		}
	}
	if _, ok := set["variant"]; !ok {
		if v, ok := get("UBXCAT_VARIANT"); ok && v != "" {
			c.variant = v
		}
	}
	if _, ok := set["buffer-capacity"]; !ok {
		if v, ok := get("UBXCAT_BUFFER_CAPACITY"); ok && v != "" {
			if n, err := strconv.Atoi(v); err == nil && n > 0 {
				c.bufferCap = n
			} else if err != nil && firstErr == nil {
				firstErr = fmt.Errorf("invalid UBXCAT_BUFFER_CAPACITY: %w", err)
			}
		}
	}
	if _, ok := set["log-format"]; !ok {
		if v, ok := get("UBXCAT_LOG_FORMAT"); ok && v != "" {
			c.logFormat = v
		}
	}
	if _, ok := set["log-level"]; !ok {
		if v, ok := get("UBXCAT_LOG_LEVEL"); ok && v != "" {
			c.logLevel = v
		}
	}
	if _, ok := set["metrics-addr"]; !ok {
		if v, ok := get("UBXCAT_METRICS"); ok {
			c.metricsAddr = v
		}
	}
	if _, ok := set["log-metrics-interval"]; !ok {
		if v, ok := get("UBXCAT_LOG_METRICS_INTERVAL"); ok && v != "" {
			if d, err := time.ParseDuration(v); err == nil && d >= 0 {
				c.logEvery = d
			} else if err != nil && firstErr == nil {
				firstErr = fmt.Errorf("invalid UBXCAT_LOG_METRICS_INTERVAL: %w", err)
			}
		}
	}
	return firstErr
}
