// SPDX-License-Identifier: MIT

// Package metrics records run statistics in a private Prometheus registry
// and can dump them in the node-exporter textfile format.
package metrics

import (
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Namespace prefixes every metric name.
const Namespace = "lvcluster"

// Collector holds the metrics of one process.
type Collector struct {
	registry *prometheus.Registry

	Samples    *prometheus.GaugeVec // samples by stage: read, excluded, clustered, dropped
	Pairs      *prometheus.GaugeVec // distance pairs by fate: read, kept, duplicate, self
	Components prometheus.Gauge
	Outcomes   *prometheus.CounterVec // components by resolution kind
	Linkage    prometheus.Histogram // linkage height per cluster
	Duration   *prometheus.HistogramVec
	LastRun    prometheus.Gauge
}

// NewCollector creates a Collector with its own registry.
func NewCollector() *Collector {
	c := &Collector{
		registry: prometheus.NewRegistry(),
		Samples: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: Namespace,
			Name:      "samples",
			Help:      "Number of samples per pipeline stage",
		}, []string{"stage"}),
		Pairs: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: Namespace,
			Name:      "distance_pairs",
			Help:      "Number of distance pairs by fate",
		}, []string{"fate"}),
		Components: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: Namespace,
			Name:      "components",
			Help:      "Number of connected components in the last run",
		}),
		Outcomes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      "cluster_outcomes_total",
			Help:      "Components resolved, by resolution kind",
		}, []string{"kind"}),
		Linkage: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: Namespace,
			Name:      "cluster_linkage_height",
			Help:      "Smallest threshold keeping each cluster connected",
			Buckets:   []float64{0, 1, 2, 5, 10, 12, 15, 20, 50},
		}),
		Duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: Namespace,
			Name:      "step_duration_seconds",
			Help:      "Duration of pipeline steps",
			Buckets:   prometheus.DefBuckets,
		}, []string{"step"}),
		LastRun: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: Namespace,
			Name:      "last_run_timestamp_seconds",
			Help:      "Unix time the last run finished",
		}),
	}
	c.registry.MustRegister(c.Samples, c.Pairs, c.Components, c.Outcomes, c.Linkage, c.Duration, c.LastRun)

	return c
}

// Registry exposes the underlying registry.
func (c *Collector) Registry() *prometheus.Registry { return c.registry }

// ObserveStep records how long step took since start.
func (c *Collector) ObserveStep(step string, start time.Time) {
	c.Duration.WithLabelValues(step).Observe(time.Since(start).Seconds())
}

// Outcome counts one resolved component of the given kind.
func (c *Collector) Outcome(kind string) {
	c.Outcomes.WithLabelValues(kind).Inc()
}

// Finish stamps the run completion time.
func (c *Collector) Finish(at time.Time) {
	c.LastRun.Set(float64(at.Unix()))
}

// WriteTextfile writes every metric to path in the text exposition format.
func (c *Collector) WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, c.registry); err != nil {
		return fmt.Errorf("metrics: write %s: %w", path, err)
	}

	return nil
}
