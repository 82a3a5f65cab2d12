package observability

import (
	"strconv"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	registerOnce sync.Once

	httpRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "rowctl",
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total HTTP requests.",
		},
		[]string{"node", "method", "path", "status"},
	)
	httpDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "rowctl",
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request duration in seconds.",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"node", "method", "path", "status"},
	)
	decodeNotifications = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "rowctl",
			Subsystem: "decode",
			Name:      "notifications_total",
			Help:      "Decoded notifications by characteristic and outcome.",
		},
		[]string{"characteristic", "outcome"},
	)
	decodePayloadBytes = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "rowctl",
			Subsystem: "decode",
			Name:      "payload_bytes",
			Help:      "Notification payload size in bytes.",
			Buckets:   []float64{1, 4, 8, 12, 16, 20, 32, 64, 128},
		},
		[]string{"characteristic"},
	)
	sinkWrites = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "rowctl",
			Subsystem: "sink",
			Name:      "writes_total",
			Help:      "Records handed to sinks.",
		},
		[]string{"sink", "success"},
	)
	sinkDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "rowctl",
			Subsystem: "sink",
			Name:      "write_duration_seconds",
			Help:      "Sink write duration in seconds.",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"sink", "success"},
	)
)

func RegisterMetrics() {
	registerOnce.Do(func() {
		prometheus.MustRegister(httpRequests, httpDuration, decodeNotifications, decodePayloadBytes, sinkWrites, sinkDuration)
	})
}

func RecordHTTPRequest(node, method, path string, status int, duration time.Duration) {
	RegisterMetrics()
	statusLabel := strconv.Itoa(status)
	httpRequests.WithLabelValues(node, method, path, statusLabel).Inc()
	httpDuration.WithLabelValues(node, method, path, statusLabel).Observe(duration.Seconds())
}

// RecordDecode counts one notification. outcome is "ok" or an error kind.
func RecordDecode(characteristic, outcome string, size int) {
	RegisterMetrics()
	decodeNotifications.WithLabelValues(characteristic, outcome).Inc()
	decodePayloadBytes.WithLabelValues(characteristic).Observe(float64(size))
}

func RecordSinkWrite(sink string, duration time.Duration, success bool) {
	RegisterMetrics()
	successLabel := strconv.FormatBool(success)
	sinkWrites.WithLabelValues(sink, successLabel).Inc()
	sinkDuration.WithLabelValues(sink, successLabel).Observe(duration.Seconds())
}
