package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/yukimasano/datasets/types"
)

// PrometheusCollector implements types.MetricsCollector backed by Prometheus.
type PrometheusCollector struct {
	reg       prometheus.Registerer
	namespace string
	once      sync.Once

	resolutions     *prometheus.CounterVec
	resolvedRanges  prometheus.Counter
	droppedExamples *prometheus.CounterVec
}

// Compile-time assertion that PrometheusCollector implements MetricsCollector.
var _ types.MetricsCollector = (*PrometheusCollector)(nil)

// NewPrometheus creates a new Prometheus-backed metrics collector.
//
// Parameters:
//   - reg: Prometheus registerer interface (uses prometheus.DefaultRegisterer if nil)
//   - namespace: Prometheus metrics namespace (defaults to "datasets" if empty)
//
// Returns:
//   - *PrometheusCollector: A MetricsCollector implementation using Prometheus
func NewPrometheus(reg prometheus.Registerer, namespace string) *PrometheusCollector {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	if namespace == "" {
		namespace = "datasets"
	}

	return &PrometheusCollector{reg: reg, namespace: namespace}
}

func (p *PrometheusCollector) ensureRegistered() {
	p.once.Do(func() {
		p.resolutions = prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: p.namespace,
			Subsystem: "subsplit",
			Name:      "resolutions_total",
			Help:      "Total lazy subsplit resolutions by remainder strategy.",
		}, []string{"remainder"})

		p.resolvedRanges = prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: p.namespace,
			Subsystem: "subsplit",
			Name:      "resolved_ranges_total",
			Help:      "Total absolute ranges produced by subsplit resolutions.",
		})

		p.droppedExamples = prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: p.namespace,
			Subsystem: "subsplit",
			Name:      "dropped_examples_total",
			Help:      "Total examples discarded by the Drop remainder strategy, by split.",
		}, []string{"split"})

		p.reg.MustRegister(p.resolutions, p.resolvedRanges, p.droppedExamples)
	})
}

// RecordResolution records a completed subsplit resolution.
func (p *PrometheusCollector) RecordResolution(remainder types.Remainder, ranges int) {
	p.ensureRegistered()
	p.resolutions.WithLabelValues(remainder.String()).Inc()
	p.resolvedRanges.Add(float64(ranges))
}

// RecordDroppedExamples records examples discarded by RemainderDrop.
func (p *PrometheusCollector) RecordDroppedExamples(split string, dropped int64) {
	p.ensureRegistered()
	p.droppedExamples.WithLabelValues(split).Add(float64(dropped))
}
