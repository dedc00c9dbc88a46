package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
)

func getCounterValue(c prometheus.Counter) float64 {
	var m dto.Metric
	if err := c.(prometheus.Metric).Write(&m); err != nil {
		return 0
	}
	return m.GetCounter().GetValue()
}

func getCounterVecValue(cv *prometheus.CounterVec, labels ...string) float64 {
	c, err := cv.GetMetricWithLabelValues(labels...)
	if err != nil {
		return 0
	}
	var m dto.Metric
	if err := c.Write(&m); err != nil {
		return 0
	}
	return m.GetCounter().GetValue()
}

func TestMetrics_TranscriptRequestsTotal(t *testing.T) {
	for _, status := range []string{StatusSuccess, StatusNoTranscript, StatusToolNotFound} {
		before := getCounterVecValue(TranscriptRequestsTotal, status)
		TranscriptRequestsTotal.WithLabelValues(status).Inc()
		after := getCounterVecValue(TranscriptRequestsTotal, status)

		if after != before+1 {
			t.Errorf("Expected %s counter to increment by 1, got diff %.0f", status, after-before)
		}
	}
}

func TestMetrics_TrackSelectionsTotal(t *testing.T) {
	before := getCounterVecValue(TrackSelectionsTotal, "manual", "fallback")
	TrackSelectionsTotal.WithLabelValues("manual", "fallback").Inc()
	after := getCounterVecValue(TrackSelectionsTotal, "manual", "fallback")

	if after != before+1 {
		t.Errorf("Expected selection counter to increment by 1, got diff %.0f", after-before)
	}
}

func TestMetrics_TranscriptItemsTotal(t *testing.T) {
	before := getCounterValue(TranscriptItemsTotal)
	TranscriptItemsTotal.Add(3)
	after := getCounterValue(TranscriptItemsTotal)

	if after != before+3 {
		t.Errorf("Expected items counter to increase by 3, got diff %.0f", after-before)
	}
}

func TestMetrics_DownloaderDuration(t *testing.T) {
	DownloaderDuration.WithLabelValues("metadata", "success").Observe(1.5)

	h, err := DownloaderDuration.GetMetricWithLabelValues("metadata", "success")
	if err != nil {
		t.Fatalf("GetMetricWithLabelValues: %v", err)
	}
	var m dto.Metric
	if err := h.(prometheus.Metric).Write(&m); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if m.GetHistogram().GetSampleCount() < 1 {
		t.Error("Expected at least one observation")
	}
}

func TestMetrics_NewHTTPServer(t *testing.T) {
	srv := NewHTTPServer("localhost", 9090)
	TranscriptRequestsTotal.WithLabelValues(StatusSuccess).Add(0)

	if srv.Addr != "localhost:9090" {
		t.Errorf("Expected address 'localhost:9090', got '%s'", srv.Addr)
	}

	rec := httptest.NewRecorder()
	srv.Handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200 from /metrics, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "transcript_requests_total") {
		t.Error("Expected transcript_requests_total in scrape output")
	}
}

func TestMetrics_NewHTTPServer_DefaultPort(t *testing.T) {
	srv := NewHTTPServer("0.0.0.0", 0)

	if srv.Addr != "0.0.0.0:9090" || srv.ReadHeaderTimeout == 0 {
		t.Errorf("Expected address '0.0.0.0:9090', got '%s'", srv.Addr)
	}
}
