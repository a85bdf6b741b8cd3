package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var Observer = &Metrics{
	mutex:      new(sync.RWMutex),
	prometheus: NewPrometheusMetrics(),
}

func init() {
	prometheus.MustRegister(Observer.prometheus.Splits, Observer.prometheus.Predictions)
}

type Metrics struct {
	mutex      *sync.RWMutex
	prometheus Prometheus
}

// Split counts one completed validation split for the given strategy.
func (m *Metrics) Split(strategy string) {
	m.prometheus.Splits.WithLabelValues(strategy).Inc()
}

// Predictions counts n predictions made for the given strategy.
func (m *Metrics) Predictions(strategy string, n int) {
	m.prometheus.Predictions.WithLabelValues(strategy).Add(float64(n))
}
