// Package metrics exports universe diagnostics to Prometheus.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Recorder tracks generation progress for one universe.
type Recorder struct {
	generations prometheus.Counter
	generation  prometheus.Gauge
	population  prometheus.Gauge
	sweep       prometheus.Histogram
}

// NewRecorder registers the universe collectors on reg, labelled by rule.
func NewRecorder(reg prometheus.Registerer, rule string) (*Recorder, error) {
	labels := prometheus.Labels{"rule": rule}
	r := &Recorder{
		generations: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace:   "ca",
			Name:        "generations_total",
			Help:        "Generations committed since start.",
			ConstLabels: labels,
		}),
		generation: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace:   "ca",
			Name:        "generation",
			Help:        "Index of the most recently committed generation since the last seed.",
			ConstLabels: labels,
		}),
		population: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace:   "ca",
			Name:        "population",
			Help:        "Cells in a non-zero state in the committed generation.",
			ConstLabels: labels,
		}),
		sweep: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace:   "ca",
			Name:        "sweep_seconds",
			Help:        "Time spent sweeping and committing one generation.",
			ConstLabels: labels,
			Buckets:     prometheus.ExponentialBuckets(0.0001, 4, 8),
		}),
	}
	for _, c := range []prometheus.Collector{r.generations, r.generation, r.population, r.sweep} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// ObserveGeneration records one committed generation.
func (r *Recorder) ObserveGeneration(generation uint64, population int, sweep time.Duration) {
	r.generations.Inc()
	r.generation.Set(float64(generation))
	r.population.Set(float64(population))
	r.sweep.Observe(sweep.Seconds())
}

// Handler serves the metrics gathered by g.
func Handler(g prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(g, promhttp.HandlerOpts{})
}
