package metrics

import "github.com/prometheus/client_golang/prometheus"

type Prometheus struct {
	Splits      *prometheus.CounterVec
	Predictions *prometheus.CounterVec
}

func NewPrometheusMetrics() Prometheus {
	return Prometheus{
		Splits: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "crossval",
				Name:      "splits",
			}, []string{"strategy"}),
		Predictions: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "crossval",
				Name:      "predictions",
			}, []string{"strategy"}),
	}
}
