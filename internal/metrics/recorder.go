// Package metrics collects runtime memory snapshots and Prometheus metrics
// about reductions.
package metrics

import (
	"io"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	dto "github.com/prometheus/client_model/go"
	"github.com/prometheus/common/expfmt"
)

// Namespace prefixes every metric name.
const Namespace = "parsum"

// Recorder owns a private Prometheus registry with the reduction metrics.
// A nil *Recorder is valid and records nothing.
type Recorder struct {
	registry   *prometheus.Registry
	reductions *prometheus.CounterVec
	duration   *prometheus.HistogramVec
	chunks     *prometheus.CounterVec
	elements   *prometheus.CounterVec
	lastSum    *prometheus.GaugeVec
	mismatches prometheus.Counter
}

// NewRecorder creates a Recorder and registers its collectors plus the Go
// runtime collector.
func NewRecorder() *Recorder {
	r := &Recorder{
		registry: prometheus.NewRegistry(),
		reductions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      "reductions_total",
			Help:      "Reductions run, by reducer and outcome.",
		}, []string{"reducer", "status"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: Namespace,
			Name:      "reduction_duration_seconds",
			Help:      "Wall time of each reduction.",
			Buckets:   prometheus.ExponentialBuckets(1e-6, 10, 8),
		}, []string{"reducer"}),
		chunks: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      "chunks_total",
			Help:      "Partial sums combined, by reducer.",
		}, []string{"reducer"}),
		elements: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      "elements_total",
			Help:      "Input elements reduced, by reducer.",
		}, []string{"reducer"}),
		lastSum: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: Namespace,
			Name:      "last_sum",
			Help:      "Aggregate of the most recent successful reduction.",
		}, []string{"reducer"}),
		mismatches: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      "result_mismatches_total",
			Help:      "Comparisons where successful reducers disagreed.",
		}),
	}
	r.registry.MustRegister(
		r.reductions, r.duration, r.chunks, r.elements, r.lastSum, r.mismatches,
		collectors.NewGoCollector(),
	)
	return r
}

// ObserveReduction records one finished reduction.
func (r *Recorder) ObserveReduction(reducer string, elements int, sum int64, chunks int, d time.Duration, err error) {
	if r == nil {
		return
	}
	status := "success"
	if err != nil {
		status = "error"
	}
	r.reductions.WithLabelValues(reducer, status).Inc()
	r.duration.WithLabelValues(reducer).Observe(d.Seconds())
	r.elements.WithLabelValues(reducer).Add(float64(elements))
	if err == nil {
		r.chunks.WithLabelValues(reducer).Add(float64(chunks))
		r.lastSum.WithLabelValues(reducer).Set(float64(sum))
	}
}

// ObserveMismatch records a disagreement between reducers.
func (r *Recorder) ObserveMismatch() {
	if r == nil {
		return
	}
	r.mismatches.Inc()
}

// Registry exposes the underlying registry, e.g. for promhttp.HandlerFor.
func (r *Recorder) Registry() *prometheus.Registry {
	return r.registry
}

// WriteText writes all metric families in the Prometheus text exposition
// format.
func (r *Recorder) WriteText(w io.Writer) error {
	if r == nil {
		return nil
	}
	families, err := r.registry.Gather()
	if err != nil {
		return err
	}
	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return err
		}
	}
	return nil
}

// Value returns the current value of the counter or gauge sample named name
// (without the namespace) whose labels include all of labels. The boolean is
// false when no such sample exists.
func (r *Recorder) Value(name string, labels map[string]string) (float64, bool) {
	if r == nil {
		return 0, false
	}
	families, err := r.registry.Gather()
	if err != nil {
		return 0, false
	}
	full := prometheus.BuildFQName(Namespace, "", name)
	for _, mf := range families {
		if mf.GetName() != full {
			continue
		}
		for _, m := range mf.GetMetric() {
			if !hasLabels(m, labels) {
				continue
			}
			switch mf.GetType() {
			case dto.MetricType_COUNTER:
				return m.GetCounter().GetValue(), true
			case dto.MetricType_GAUGE:
				return m.GetGauge().GetValue(), true
			}
		}
	}
	return 0, false
}

func hasLabels(m *dto.Metric, want map[string]string) bool {
	matched := 0
	for _, lp := range m.GetLabel() {
		if v, ok := want[lp.GetName()]; ok {
			if v != lp.GetValue() {
				return false
			}
			matched++
		}
	}
	return matched == len(want)
}
