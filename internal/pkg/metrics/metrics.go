package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "cryptovault"

// Recorder records the outcome and latency of crypto operations
type Recorder interface {
	ObserveOperation(operation, algorithm, result string, elapsed time.Duration)
}

// Collector owns a private registry with the operation counter and latency histogram
type Collector struct {
	registry   *prometheus.Registry
	operations *prometheus.CounterVec
	durations  *prometheus.HistogramVec
}

// NewCollector creates the collectors and registers them, together with the Go and process collectors,
// on a fresh registry
func NewCollector() (*Collector, error) {
	c := &Collector{
		registry: prometheus.NewRegistry(),
		operations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "operations_total",
			Help:      "Number of crypto operations by operation, algorithm and result.",
		}, []string{"operation", "algorithm", "result"}),
		durations: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "operation_duration_seconds",
			Help:      "Latency of crypto operations.",
			Buckets:   prometheus.ExponentialBuckets(0.0001, 4, 10),
		}, []string{"operation", "algorithm"}),
	}

	for _, collector := range []prometheus.Collector{
		c.operations,
		c.durations,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	} {
		if err := c.registry.Register(collector); err != nil {
			return nil, err
		}
	}

	return c, nil
}

// ObserveOperation increments the operation counter and records the latency
func (c *Collector) ObserveOperation(operation, algorithm, result string, elapsed time.Duration) {
	c.operations.WithLabelValues(operation, algorithm, result).Inc()
	c.durations.WithLabelValues(operation, algorithm).Observe(elapsed.Seconds())
}

// Handler serves the registry in the Prometheus exposition format
func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{})
}
