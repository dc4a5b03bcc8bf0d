package observability

import (
	"errors"
	"strconv"
	"sync"
	"time"

	"github.com/danmuck/telestamp/internal/protocol/cp56"
	"github.com/prometheus/client_golang/prometheus"
)

var (
	registerOnce sync.Once

	httpRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "telestamp",
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total HTTP requests.",
		},
		[]string{"node", "method", "path", "status"},
	)
	httpDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "telestamp",
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request duration in seconds.",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"node", "method", "path", "status"},
	)
	codecDecodes = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "telestamp",
			Subsystem: "codec",
			Name:      "decode_total",
			Help:      "CP56Time2a decodes by result.",
		},
		[]string{"result"},
	)
	codecParses = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "telestamp",
			Subsystem: "codec",
			Name:      "parse_total",
			Help:      "Text to CP56Time2a parses by result.",
		},
		[]string{"result"},
	)
)

func RegisterMetrics() {
	registerOnce.Do(func() {
		prometheus.MustRegister(httpRequests, httpDuration, codecDecodes, codecParses)
	})
}

func RecordHTTPRequest(node, method, path string, status int, duration time.Duration) {
	RegisterMetrics()
	statusLabel := strconv.Itoa(status)
	httpRequests.WithLabelValues(node, method, path, statusLabel).Inc()
	httpDuration.WithLabelValues(node, method, path, statusLabel).Observe(duration.Seconds())
}

// RecordDecode counts one decode. short marks a buffer that was too small
// to hold a timestamp.
func RecordDecode(t cp56.Time, short bool) {
	RegisterMetrics()
	codecDecodes.WithLabelValues(DecodeResult(t, short)).Inc()
}

// RecordParse counts one Scan outcome.
func RecordParse(err error) {
	RegisterMetrics()
	codecParses.WithLabelValues(ParseResult(err)).Inc()
}

func DecodeResult(t cp56.Time, short bool) string {
	switch {
	case short:
		return "short"
	case t.Valid():
		return "valid"
	default:
		return "invalid"
	}
}

func ParseResult(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, cp56.ErrLiteralMismatch):
		return "literal_mismatch"
	case errors.Is(err, cp56.ErrUnknownDirective):
		return "unknown_directive"
	case errors.Is(err, cp56.ErrMissingNumber):
		return "missing_number"
	case errors.Is(err, cp56.ErrTruncatedFormat):
		return "truncated_format"
	default:
		return "error"
	}
}
