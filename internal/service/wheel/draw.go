package wheel

import (
	"strconv"
	"time"

	"prize_wheel/internal/logger"
	"prize_wheel/internal/metrics"
	"prize_wheel/internal/model"

	"github.com/sirupsen/logrus"
)

// RequestDraw запускает вращение. Запрос игнорируется (ok = false), если колесо
// уже крутится, конфигурация невалидна или мастер не на шаге колеса
func (s *serv) RequestDraw() (model.Spin, bool) {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	if s.wheel.IsSpinning || s.step != model.StepGame || !Validate(s.prizes).Valid {
		s.metrics.Counter(metrics.MetricDrawsIgnoredCounter, nil).Inc()
		return model.Spin{}, false
	}

	s.display = ""
	s.lastResult = nil

	// КЛЮЧЕВОЙ ВЫЗОВ: выбор приза
	winner, fallback := SelectWinner(s.prizes, s.rnd.Float64())
	if fallback {
		s.log.WithField("caller", logger.Caller(0)).Debug("no cumulative boundary matched, last prize selected")
	}

	n := len(s.prizes)
	jitter := Jitter(n, s.cfg.JitterSafeFactor(), s.rnd.Float64())
	finalAngle := TargetAngle(winner, n, s.wheel.CurrentRotation, s.cfg.BaselineTurns(), jitter)

	s.wheel.CurrentRotation = finalAngle
	s.wheel.IsSpinning = true

	spin := model.Spin{
		ID:          s.newID(),
		WinnerIndex: winner,
		TargetAngle: finalAngle,
		Duration:    s.cfg.SpinDuration(),
		Easing:      s.cfg.Easing(),
		StartedAt:   s.now(),
	}
	s.pending = &spin
	s.armWatchdog(spin.ID)

	s.recordDraw(winner)
	s.metrics.Gauge(metrics.MetricSpinningGauge, nil).Set(1)

	s.log.WithFields(logrus.Fields{
		"spin_id": spin.ID,
		"winner":  winner,
		"angle":   finalAngle,
	}).Debug("spin started")

	return spin, true
}

// armWatchdog завершает вращение, если слой отрисовки не прислал сигнал
// в течение длительности анимации плюс запас
func (s *serv) armWatchdog(spinID string) {
	grace := s.cfg.WatchdogGrace()
	if grace <= 0 {
		return
	}
	s.stopWatchdog()
	s.watchdog = time.AfterFunc(s.cfg.SpinDuration()+grace, func() {
		s.expire(spinID)
	})
}

func (s *serv) recordDraw(winner int) {
	s.statsRepo.Record(winner)
	s.metrics.Counter(metrics.MetricDrawsCounter, metrics.Labels{"index": strconv.Itoa(winner)}).Inc()

	for _, stat := range s.statsRepo.CheckDeviation() {
		s.log.WithFields(logrus.Fields{
			"prize":       stat.Name,
			"configured":  stat.Configured,
			"window_freq": stat.WindowFrequency,
		}).Warn("prize frequency drifted from configured probability")
	}
}
