package metrics

import (
	"net/http"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type PromMetrics struct {
	registry   *prometheus.Registry
	gauges     map[MetricName]*prometheus.GaugeVec
	counters   map[MetricName]*prometheus.CounterVec
	histograms map[MetricName]*prometheus.HistogramVec
}

// NewPromMetrics метрики колеса в собственном реестре
func NewPromMetrics() *PromMetrics {
	m := &PromMetrics{
		registry: prometheus.NewRegistry(),
		gauges: map[MetricName]*prometheus.GaugeVec{
			MetricSpinningGauge: prometheus.NewGaugeVec(
				prometheus.GaugeOpts{
					Name: string(MetricSpinningGauge),
					Help: "Whether the wheel is spinning right now",
				},
				nil),
		},
		counters: map[MetricName]*prometheus.CounterVec{
			MetricDrawsCounter: prometheus.NewCounterVec(
				prometheus.CounterOpts{
					Name: string(MetricDrawsCounter),
					Help: "Total number of draws by winning prize",
				},
				[]string{"index"}),
			MetricDrawsIgnoredCounter: prometheus.NewCounterVec(
				prometheus.CounterOpts{
					Name: string(MetricDrawsIgnoredCounter),
					Help: "Total number of ignored draw requests",
				},
				nil),
			MetricSpinsCompletedCounter: prometheus.NewCounterVec(
				prometheus.CounterOpts{
					Name: string(MetricSpinsCompletedCounter),
					Help: "Total number of completed spins",
				},
				[]string{"via"}),
			MetricSpinsAbandonedCounter: prometheus.NewCounterVec(
				prometheus.CounterOpts{
					Name: string(MetricSpinsAbandonedCounter),
					Help: "Total number of abandoned spins",
				},
				nil),
		},
		histograms: map[MetricName]*prometheus.HistogramVec{
			MetricSpinCompletionObserver: prometheus.NewHistogramVec(
				prometheus.HistogramOpts{
					Name:    string(MetricSpinCompletionObserver),
					Help:    "Distribution of time between spin start and completion",
					Buckets: []float64{1, 2, 3, 4, 5, 6, 7, 8, 10, 15, 30},
				},
				nil),
		},
	}
	for k := range m.gauges {
		m.registry.MustRegister(m.gauges[k])
	}
	for k := range m.counters {
		m.registry.MustRegister(m.counters[k])
	}
	for k := range m.histograms {
		m.registry.MustRegister(m.histograms[k])
	}

	return m
}

func (m *PromMetrics) Gauge(name MetricName, labels Labels) Gauge {
	v, ok := m.gauges[name]
	if !ok {
		return nopGauge
	}
	return v.With(promLabels(labels))
}

func (m *PromMetrics) Counter(name MetricName, labels Labels) Counter {
	v, ok := m.counters[name]
	if !ok {
		return nopCounter
	}
	return v.With(promLabels(labels))
}

func (m *PromMetrics) Observer(name MetricName, labels Labels) Observer {
	v, ok := m.histograms[name]
	if !ok {
		return nopObserver
	}
	return v.With(promLabels(labels))
}

// promLabels значения меток должны быть валидным UTF-8, иначе With паникует
func promLabels(labels Labels) prometheus.Labels {
	out := make(prometheus.Labels, len(labels))
	for k, v := range labels {
		out[k] = strings.ToValidUTF8(v, "\uFFFD")
	}
	return out
}

// Handler отдаёт метрики в формате Prometheus
func (m *PromMetrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
