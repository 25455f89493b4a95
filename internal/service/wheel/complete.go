package wheel

import (
	"fmt"

	"prize_wheel/internal/metrics"
	"prize_wheel/internal/model"
	servModel "prize_wheel/internal/service/wheel/model"

	"github.com/sirupsen/logrus"
)

// CompleteSpin сигнал слоя отрисовки о завершении анимации.
// Сигнал для неизвестного или уже завершённого вращения игнорируется
func (s *serv) CompleteSpin(spinID string) (model.Result, bool) {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	if s.pending == nil || s.pending.ID != spinID {
		return model.Result{}, false
	}

	return s.finish(metrics.CompletedBySignal), true
}

// expire срабатывание сторожевого таймера
func (s *serv) expire(spinID string) {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	if s.pending == nil || s.pending.ID != spinID {
		return
	}

	s.log.WithField("spin_id", spinID).Warn("completion signal not received, finishing spin by watchdog")
	s.finish(metrics.CompletedByWatchdog)
}

// finish Spinning -> Idle, показ результата
func (s *serv) finish(via string) model.Result {
	spin := s.pending
	s.stopWatchdog()
	s.pending = nil
	s.wheel.IsSpinning = false

	s.metrics.Gauge(metrics.MetricSpinningGauge, nil).Set(0)
	s.metrics.Counter(metrics.MetricSpinsCompletedCounter, metrics.Labels{"via": via}).Inc()
	s.metrics.Observer(metrics.MetricSpinCompletionObserver, nil).Observe(s.now().Sub(spin.StartedAt).Seconds())

	name := s.prizes[spin.WinnerIndex].Name
	result := model.Result{
		SpinID:      spin.ID,
		WinnerIndex: spin.WinnerIndex,
		PrizeName:   name,
		Message:     fmt.Sprintf(servModel.WinnerMessageFormat, name),
	}
	s.display = result.Message
	s.lastResult = &result

	s.log.WithFields(logrus.Fields{
		"spin_id": spin.ID,
		"prize":   name,
		"via":     via,
	}).Info("spin completed")
	return result
}
