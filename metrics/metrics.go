// Package metrics exports shortest-path search statistics as Prometheus
// collectors.
//
// A Collector is itself a prometheus.Collector, so one MustRegister call
// exposes every series:
//
//	lvpath_searches_total{exhaustiveness}      counter
//	lvpath_search_duration_seconds             histogram
//	lvpath_iterations_total                    counter
//	lvpath_unnecessary_heap_elements_total     counter
//	lvpath_peak_heap_size                      gauge (max seen)
//	lvpath_peak_store_size                     gauge (max seen)
//
// All methods are safe for concurrent use.
package metrics

import (
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/katalvlaran/lvpath/dijkstra"
	"github.com/katalvlaran/lvpath/perf"
)

// DefaultNamespace prefixes every metric name.
const DefaultNamespace = "lvpath"

// Collector aggregates search outcomes.
type Collector struct {
	searches    *prometheus.CounterVec
	duration    prometheus.Histogram
	iterations  prometheus.Counter
	unnecessary prometheus.Counter
	peakHeap    prometheus.Gauge
	peakStore   prometheus.Gauge

	mu                   sync.Mutex
	maxHeap, maxStoreLen int
}

// New builds an unregistered Collector. An empty namespace selects
// DefaultNamespace.
func New(namespace string) *Collector {
	if namespace == "" {
		namespace = DefaultNamespace
	}
	return &Collector{
		searches: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "searches_total",
			Help:      "Searches run, by exhaustiveness.",
		}, []string{"exhaustiveness"}),
		duration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "search_duration_seconds",
			Help:      "Wall time of one search.",
			Buckets:   prometheus.ExponentialBuckets(1e-6, 4, 12),
		}),
		iterations: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "iterations_total",
			Help:      "Queue extractions across all searches.",
		}),
		unnecessary: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "unnecessary_heap_elements_total",
			Help:      "Stale queue entries skipped across all searches.",
		}),
		peakHeap: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "peak_heap_size",
			Help:      "Largest queue size observed in any search.",
		}),
		peakStore: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "peak_store_size",
			Help:      "Largest distance store size observed in any search.",
		}),
	}
}

// Describe implements prometheus.Collector.
func (c *Collector) Describe(ch chan<- *prometheus.Desc) {
	c.searches.Describe(ch)
	c.duration.Describe(ch)
	c.iterations.Describe(ch)
	c.unnecessary.Describe(ch)
	c.peakHeap.Describe(ch)
	c.peakStore.Describe(ch)
}

// Collect implements prometheus.Collector.
func (c *Collector) Collect(ch chan<- prometheus.Metric) {
	c.searches.Collect(ch)
	c.duration.Collect(ch)
	c.iterations.Collect(ch)
	c.unnecessary.Collect(ch)
	c.peakHeap.Collect(ch)
	c.peakStore.Collect(ch)
}

// Observe records one finished search.
func (c *Collector) Observe(ex dijkstra.Exhaustiveness, d time.Duration) {
	c.searches.WithLabelValues(ex.String()).Inc()
	c.duration.Observe(d.Seconds())
}

// AddWork adds the difference between two snapshots of the same counter
// (after minus before) to the work counters and raises the peak gauges to
// after's maxima.
func (c *Collector) AddWork(before, after perf.Snapshot) {
	c.iterations.Add(float64(after.Iterations - before.Iterations))
	c.unnecessary.Add(float64(after.UnnecessaryHeapElements - before.UnnecessaryHeapElements))

	c.mu.Lock()
	defer c.mu.Unlock()
	if after.MaxMaxHeapSize > c.maxHeap {
		c.maxHeap = after.MaxMaxHeapSize
		c.peakHeap.Set(float64(c.maxHeap))
	}
	if after.MaxMaxDistanceArraySize > c.maxStoreLen {
		c.maxStoreLen = after.MaxMaxDistanceArraySize
		c.peakStore.Set(float64(c.maxStoreLen))
	}
}

var _ prometheus.Collector = (*Collector)(nil)
