package metrics

import (
	"bytes"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestRecorder_ObserveReduction(t *testing.T) {
	t.Parallel()
	r := NewRecorder()

	r.ObserveReduction("sequential", 10, 385, 1, 3*time.Microsecond, nil)
	r.ObserveReduction("parallel", 10, 385, 4, 40*time.Microsecond, nil)
	r.ObserveReduction("parallel", 2, 0, 0, time.Microsecond, errors.New("overflow"))

	if got := testutil.ToFloat64(r.reductions.WithLabelValues("parallel", "success")); got != 1 {
		t.Errorf("parallel success count = %v, want 1", got)
	}
	if got := testutil.ToFloat64(r.reductions.WithLabelValues("parallel", "error")); got != 1 {
		t.Errorf("parallel error count = %v, want 1", got)
	}
	if got := testutil.ToFloat64(r.chunks.WithLabelValues("parallel")); got != 4 {
		t.Errorf("parallel chunks = %v, want 4 (failed runs add none)", got)
	}
	if got := testutil.ToFloat64(r.elements.WithLabelValues("parallel")); got != 12 {
		t.Errorf("parallel elements = %v, want 12", got)
	}
	if got := testutil.ToFloat64(r.lastSum.WithLabelValues("sequential")); got != 385 {
		t.Errorf("sequential last sum = %v, want 385", got)
	}
}

func TestRecorder_Mismatch(t *testing.T) {
	t.Parallel()
	r := NewRecorder()
	r.ObserveMismatch()
	r.ObserveMismatch()
	if got := testutil.ToFloat64(r.mismatches); got != 2 {
		t.Errorf("mismatches = %v, want 2", got)
	}
}

// TestRecorder_NilSafe verifies that a nil recorder can be used freely.
func TestRecorder_NilSafe(t *testing.T) {
	t.Parallel()
	var r *Recorder
	r.ObserveReduction("sequential", 1, 1, 1, time.Millisecond, nil)
	r.ObserveMismatch()
	if err := r.WriteText(&bytes.Buffer{}); err != nil {
		t.Errorf("WriteText on nil recorder: %v", err)
	}
}

func TestRecorder_WriteText(t *testing.T) {
	t.Parallel()
	r := NewRecorder()
	r.ObserveReduction("sequential", 10, 385, 1, time.Microsecond, nil)

	var buf bytes.Buffer
	if err := r.WriteText(&buf); err != nil {
		t.Fatalf("WriteText: %v", err)
	}
	body := buf.String()
	for _, want := range []string{
		"# TYPE parsum_reductions_total counter",
		`parsum_reductions_total{reducer="sequential",status="success"} 1`,
		`parsum_last_sum{reducer="sequential"} 385`,
		"parsum_reduction_duration_seconds_bucket",
		"go_goroutines",
	} {
		if !strings.Contains(body, want) {
			t.Errorf("text exposition should contain %q", want)
		}
	}
}

// TestRecorder_Handler serves the registry over HTTP the way an embedding
// program would.
func TestRecorder_Handler(t *testing.T) {
	t.Parallel()
	r := NewRecorder()
	r.ObserveMismatch()

	handler := promhttp.HandlerFor(r.Registry(), promhttp.HandlerOpts{})
	req := httptest.NewRequest(http.MethodGet, "/metrics", http.NoBody)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "parsum_result_mismatches_total 1") {
		t.Errorf("response should expose the mismatch counter, got:\n%s", rec.Body.String())
	}
}

func TestRecorder_Value(t *testing.T) {
	t.Parallel()
	r := NewRecorder()
	r.ObserveReduction("sequential", 10, 385, 1, time.Microsecond, nil)
	r.ObserveMismatch()

	if v, ok := r.Value("reductions_total", map[string]string{"reducer": "sequential", "status": "success"}); !ok || v != 1 {
		t.Errorf("reductions_total = %v, %v; want 1, true", v, ok)
	}
	if v, ok := r.Value("last_sum", map[string]string{"reducer": "sequential"}); !ok || v != 385 {
		t.Errorf("last_sum = %v, %v; want 385, true", v, ok)
	}
	if v, ok := r.Value("result_mismatches_total", nil); !ok || v != 1 {
		t.Errorf("result_mismatches_total = %v, %v; want 1, true", v, ok)
	}
	if _, ok := r.Value("reductions_total", map[string]string{"reducer": "parallel"}); ok {
		t.Error("unexpected sample for parallel")
	}
	var nilRec *Recorder
	if _, ok := nilRec.Value("last_sum", nil); ok {
		t.Error("nil recorder should report no samples")
	}
}
