package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
)

func TestRecordRequest(t *testing.T) {
	tests := []struct {
		name       string
		tool       string
		duration   float64
		success    bool
		wantStatus string
	}{
		{
			name:       "successful request",
			tool:       "test_tool",
			duration:   0.001,
			success:    true,
			wantStatus: "success",
		},
		{
			name:       "failed request",
			tool:       "test_tool",
			duration:   0.002,
			success:    false,
			wantStatus: "error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			before := getCounterValue(t, RequestsTotal.WithLabelValues(tt.tool, tt.wantStatus))

			RecordRequest(tt.tool, tt.duration, tt.success)

			if got := getCounterValue(t, RequestsTotal.WithLabelValues(tt.tool, tt.wantStatus)); got != before+1 {
				t.Errorf("expected counter %v, got %v", before+1, got)
			}
		})
	}
}

func TestRecordValidation(t *testing.T) {
	tests := []struct {
		name      string
		kind      string
		wantLabel string
	}{
		{"valid", "", "valid"},
		{"checksum failure", "checksum", "checksum"},
		{"bank failure", "bank", "bank"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			before := getCounterValue(t, ValidationsTotal.WithLabelValues(tt.wantLabel))
			RecordValidation(tt.kind)
			if got := getCounterValue(t, ValidationsTotal.WithLabelValues(tt.wantLabel)); got != before+1 {
				t.Errorf("validations_total{result=%q} = %v, want %v", tt.wantLabel, got, before+1)
			}
		})
	}
}

func TestRecordCalculation(t *testing.T) {
	okBefore := getCounterValue(t, CalculationsTotal.WithLabelValues("success"))
	errBefore := getCounterValue(t, CalculationsTotal.WithLabelValues("error"))

	RecordCalculation(true)
	RecordCalculation(false)
	RecordCalculation(false)

	if got := getCounterValue(t, CalculationsTotal.WithLabelValues("success")); got != okBefore+1 {
		t.Errorf("success = %v, want %v", got, okBefore+1)
	}
	if got := getCounterValue(t, CalculationsTotal.WithLabelValues("error")); got != errBefore+2 {
		t.Errorf("error = %v, want %v", got, errBefore+2)
	}
}

func TestRecordLookup(t *testing.T) {
	hitBefore := getCounterValue(t, LookupsTotal.WithLabelValues("bank", "true"))
	missBefore := getCounterValue(t, LookupsTotal.WithLabelValues("city", "false"))

	RecordLookup("bank", true)
	RecordLookup("city", false)

	if got := getCounterValue(t, LookupsTotal.WithLabelValues("bank", "true")); got != hitBefore+1 {
		t.Errorf("bank hits = %v, want %v", got, hitBefore+1)
	}
	if got := getCounterValue(t, LookupsTotal.WithLabelValues("city", "false")); got != missBefore+1 {
		t.Errorf("city misses = %v, want %v", got, missBefore+1)
	}
}

func TestRecordHTTPRequest(t *testing.T) {
	before := getCounterValue(t, HTTPRequestsTotal.WithLabelValues("POST", "200"))

	RecordHTTPRequest("POST", "/mcp", "200", 0.01)

	if got := getCounterValue(t, HTTPRequestsTotal.WithLabelValues("POST", "200")); got != before+1 {
		t.Errorf("http_requests_total = %v, want %v", got, before+1)
	}

	var m dto.Metric
	hist, err := HTTPRequestDuration.GetMetricWithLabelValues("POST", "/mcp")
	if err != nil {
		t.Fatalf("failed to get histogram: %v", err)
	}
	if err := hist.(prometheus.Metric).Write(&m); err != nil {
		t.Fatalf("failed to write histogram: %v", err)
	}
	if m.Histogram.GetSampleCount() < 1 {
		t.Error("expected at least one observation")
	}
}

func TestMetricsRegistered(t *testing.T) {
	metrics := []prometheus.Collector{
		RequestsTotal,
		RequestDuration,
		RequestInFlight,
		PanicsRecovered,
		ValidationsTotal,
		ArgumentTypeErrors,
		CalculationsTotal,
		LookupsTotal,
		RateLimitRejections,
		HTTPRequestsTotal,
		HTTPRequestDuration,
	}

	for i, m := range metrics {
		if m == nil {
			t.Errorf("metric at index %d is nil", i)
		}
	}
}

func TestNamespace(t *testing.T) {
	if Namespace != "clabe_mcp" {
		t.Errorf("expected namespace 'clabe_mcp', got '%s'", Namespace)
	}
}

// Helper to get counter value
func getCounterValue(t *testing.T, c prometheus.Counter) float64 {
	t.Helper()
	var m dto.Metric
	if err := c.Write(&m); err != nil {
		t.Fatalf("failed to write metric: %v", err)
	}
	return m.Counter.GetValue()
}
