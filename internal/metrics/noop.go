package metrics

var (
	nopGauge    = &noopGauge{}
	nopCounter  = &noopCounter{}
	nopObserver = &noopObserver{}

	noop Metrics = &noopMetrics{}
)

type noopMetrics struct{}

func Noop() Metrics {
	return noop
}

func (m *noopMetrics) Counter(name MetricName, labels Labels) Counter {
	return nopCounter
}

func (m *noopMetrics) Gauge(name MetricName, labels Labels) Gauge {
	return nopGauge
}

func (m *noopMetrics) Observer(name MetricName, labels Labels) Observer {
	return nopObserver
}

type noopGauge struct{}

func (*noopGauge) Set(v float64) {}

type noopCounter struct{}

func (*noopCounter) Inc() {}

type noopObserver struct{}

func (*noopObserver) Observe(v float64) {}
