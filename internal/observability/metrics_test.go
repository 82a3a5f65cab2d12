package observability

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/rs/zerolog/log"
)

func TestRegisterMetricsAndRecordersAreSafe(t *testing.T) {
	RegisterMetrics()
	RegisterMetrics()

	RecordHTTPRequest("rowctl-a", "GET", "/health", 200, 12*time.Millisecond)
	RecordSinkWrite("mqtt", 3*time.Millisecond, true)

	log.Info().Msg("observability/metrics: registration idempotent and recording paths executed")
}

func TestRecordDecodeCountsByOutcome(t *testing.T) {
	before := testutil.ToFloat64(decodeNotifications.WithLabelValues("rowing.stroke_data", "insufficient_data"))
	RecordDecode("rowing.stroke_data", "insufficient_data", 3)
	RecordDecode("rowing.stroke_data", "insufficient_data", 5)
	after := testutil.ToFloat64(decodeNotifications.WithLabelValues("rowing.stroke_data", "insufficient_data"))
	if after-before != 2 {
		t.Fatalf("expected 2 increments, got %v", after-before)
	}
}
