// Package metrics exports Prometheus instrumentation for the stepwise
// max-flow engine.
//
// A Collector is fed through flow.WithOnStep and records, per augmentation,
// the path length and bottleneck, plus the running total flow.
//
// All metric operations are thread-safe via Prometheus's internal locking.
package metrics

import (
	"io"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"

	"github.com/katalvlaran/flowstep/flow"
)

// Namespace for all metrics
const metricsNamespace = "flowstep"

// Subsystem for engine metrics
const engineSubsystem = "engine"

// Collector holds the engine metrics.
//
//   - AugmentationsTotal: number of applied augmenting paths
//   - FlowPushedTotal:    sum of bottlenecks
//   - PathLength:         arcs per augmenting path
//   - TotalFlow:          total flow after the latest step
type Collector struct {
	AugmentationsTotal prometheus.Counter
	FlowPushedTotal    prometheus.Counter
	PathLength         prometheus.Histogram
	TotalFlow          prometheus.Gauge
}

// NewCollector creates the metrics and registers them with reg.
// A nil reg leaves them unregistered.
func NewCollector(reg prometheus.Registerer) (*Collector, error) {
	c := &Collector{
		AugmentationsTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Subsystem: engineSubsystem,
			Name:      "augmentations_total",
			Help:      "Total number of augmenting paths applied",
		}),
		FlowPushedTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Subsystem: engineSubsystem,
			Name:      "flow_pushed_total",
			Help:      "Sum of bottleneck capacities pushed from source to sink",
		}),
		PathLength: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: metricsNamespace,
			Subsystem: engineSubsystem,
			Name:      "path_length",
			Help:      "Number of arcs in each augmenting path",
			Buckets:   prometheus.ExponentialBuckets(1, 2, 8),
		}),
		TotalFlow: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: metricsNamespace,
			Subsystem: engineSubsystem,
			Name:      "total_flow",
			Help:      "Total flow after the latest augmentation",
		}),
	}
	if reg == nil {
		return c, nil
	}
	for _, m := range []prometheus.Collector{c.AugmentationsTotal, c.FlowPushedTotal, c.PathLength, c.TotalFlow} {
		if err := reg.Register(m); err != nil {
			return nil, err
		}
	}

	return c, nil
}

// Observe records one step. Pass it to flow.WithOnStep.
func (c *Collector) Observe(rec flow.StepRecord) {
	c.AugmentationsTotal.Inc()
	c.FlowPushedTotal.Add(rec.Bottleneck)
	c.PathLength.Observe(float64(len(rec.Path)))
	c.TotalFlow.Set(rec.TotalFlow)
}

// WriteText renders everything g gathers in the Prometheus text format.
func WriteText(w io.Writer, g prometheus.Gatherer) error {
	families, err := g.Gather()
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
