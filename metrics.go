package reedsolomon

import "github.com/prometheus/client_golang/prometheus"

// Metrics bundles the Prometheus instrumentation for decode outcomes. It is
// registered against a caller-supplied Registerer rather than the global
// registry, so a process can run several independently-metered decoders
// (e.g. one per barcode format) without collisions.
//
// A nil *Metrics is a legal, inert receiver for every method below: the
// core Decoder never requires one.
type Metrics struct {
	decodesTotal   *prometheus.CounterVec
	failuresTotal  *prometheus.CounterVec
	correctedCount prometheus.Histogram
}

// NewMetrics registers and returns a new Metrics bundle under reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		decodesTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "reedsolomon",
			Name:      "decodes_total",
			Help:      "Number of Decode calls by outcome.",
		}, []string{"outcome"}),
		failuresTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "reedsolomon",
			Name:      "decode_failures_total",
			Help:      "Number of decode failures by reason.",
		}, []string{"reason"}),
		correctedCount: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "reedsolomon",
			Name:      "corrected_symbols",
			Help:      "Number of symbols corrected per successful decode.",
			Buckets:   prometheus.LinearBuckets(0, 1, 16),
		}),
	}
	reg.MustRegister(m.decodesTotal, m.failuresTotal, m.correctedCount)
	return m
}

func (m *Metrics) observeSuccess(corrected int) {
	if m == nil {
		return
	}
	m.decodesTotal.WithLabelValues("success").Inc()
	m.correctedCount.Observe(float64(corrected))
}

func (m *Metrics) observeFailure(reason string) {
	if m == nil {
		return
	}
	m.decodesTotal.WithLabelValues("failure").Inc()
	m.failuresTotal.WithLabelValues(reason).Inc()
}
