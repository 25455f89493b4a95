package metrics

type MetricName string

const (
	// Выполненные розыгрыши. Labels: index (номер приза с 0).
	MetricDrawsCounter MetricName = "wheel_draws_total"
	// Запросы розыгрыша, отклонённые во время вращения или без валидной конфигурации.
	MetricDrawsIgnoredCounter MetricName = "wheel_draws_ignored_total"
	// Завершённые вращения. Labels: via (signal, watchdog).
	MetricSpinsCompletedCounter MetricName = "wheel_spins_completed_total"
	// Вращения, брошенные сменой шага или конфигурации.
	MetricSpinsAbandonedCounter MetricName = "wheel_spins_abandoned_total"
	// 1 пока колесо вращается.
	MetricSpinningGauge MetricName = "wheel_spinning"
	// Время от старта вращения до его завершения.
	MetricSpinCompletionObserver MetricName = "wheel_spin_completion_seconds"
)

const (
	CompletedBySignal   = "signal"
	CompletedByWatchdog = "watchdog"
)

type Labels map[string]string

type Gauge interface {
	Set(v float64)
}

type Counter interface {
	Inc()
}

type Observer interface {
	Observe(v float64)
}

type Metrics interface {
	Counter(name MetricName, labels Labels) Counter
	Gauge(name MetricName, labels Labels) Gauge
	Observer(name MetricName, labels Labels) Observer
}
