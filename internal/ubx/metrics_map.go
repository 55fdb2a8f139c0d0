package ubx

import (
	"github.com/kstaniek/go-ubx/internal/ubxerr"
)

// MetricsLabel classifies a structural decode error into the stable metrics
// label it should be counted under. Unrecognized error types fall back to
// "other" rather than widening label cardinality.
func MetricsLabel(err error) string {
	switch err.(type) {
	case *ubxerr.InvalidChecksumError:
		return "checksum"
	case *ubxerr.InvalidPacketLenError:
		return "oversize"
	case *ubxerr.OutOfMemoryError:
		return "buffer_overflow"
	case *ubxerr.InvalidFieldError:
		return "invalid_field"
	default:
		return "other"
	}
}
