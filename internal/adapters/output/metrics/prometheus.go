package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// PrometheusRecorder counts directives and their latency by version,
// namespace, name and outcome.
type PrometheusRecorder struct {
	total    *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

func NewPrometheusRecorder(reg prometheus.Registerer) (*PrometheusRecorder, error) {
	labels := []string{"version", "namespace", "name", "outcome"}
	r := &PrometheusRecorder{
		total: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "housemate_alexa",
			Name:      "directives_total",
			Help:      "Number of directives handled.",
		}, labels),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "housemate_alexa",
			Name:      "directive_duration_seconds",
			Help:      "Time spent translating a directive, backend call included.",
			Buckets:   []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
		}, labels),
	}
	for _, c := range []prometheus.Collector{r.total, r.duration} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return r, nil
}

func (r *PrometheusRecorder) ObserveDirective(version, namespace, name, outcome string, elapsedSeconds float64) {
	r.total.WithLabelValues(version, namespace, name, outcome).Inc()
	r.duration.WithLabelValues(version, namespace, name, outcome).Observe(elapsedSeconds)
}
