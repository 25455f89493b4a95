package wheel

import (
	"errors"
	"sync"
	"time"

	"prize_wheel/internal/config"
	"prize_wheel/internal/metrics"
	"prize_wheel/internal/model"
	"prize_wheel/internal/repository"
	"prize_wheel/internal/service"
	servModel "prize_wheel/internal/service/wheel/model"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

var (
	ErrPrizeCount    = errors.New("prize count out of range")
	ErrPrizeIndex    = errors.New("prize index out of range")
	ErrInvalidConfig = errors.New("probabilities must sum to 100")
	ErrWrongStep     = errors.New("command not allowed on current step")
)

type Option func(s *serv)

// WithRandom источник случайности для выбора приза и смещения
func WithRandom(rnd Random) Option {
	return func(s *serv) {
		s.rnd = rnd
	}
}

func WithClock(now func() time.Time) Option {
	return func(s *serv) {
		s.now = now
	}
}

func WithMetrics(m metrics.Metrics) Option {
	return func(s *serv) {
		s.metrics = m
	}
}

func WithIDGenerator(newID func() string) Option {
	return func(s *serv) {
		s.newID = newID
	}
}

type serv struct {
	cfg       config.WheelConfig
	statsRepo repository.DrawStatsRepository
	log       *logrus.Entry
	metrics   metrics.Metrics

	rnd   Random
	now   func() time.Time
	newID func() string

	// Всё состояние ниже защищено mtx
	mtx        sync.Mutex
	step       model.Step
	prizes     []model.Prize
	wheel      model.WheelState
	pending    *model.Spin
	watchdog   *time.Timer
	display    string
	lastResult *model.Result
}

// NewWheelService Создать контроллер колеса призов
func NewWheelService(
	cfg config.WheelConfig,
	statsRepo repository.DrawStatsRepository,
	log *logrus.Entry,
	opts ...Option,
) service.WheelService {
	s := &serv{
		cfg:       cfg,
		statsRepo: statsRepo,
		log:       log,
		metrics:   metrics.Noop(),
		rnd:       DefaultRandom(),
		now:       time.Now,
		newID:     uuid.NewString,
		step:      model.StepSetup,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *serv) State() model.Snapshot {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	return s.snapshot()
}

func (s *serv) Sectors() []model.Sector {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	return BuildSectors(s.prizes, s.cfg.SectorColors())
}

func (s *serv) Stats() model.DrawStats {
	return s.statsRepo.Stats()
}

// Close останавливает сторожевой таймер незавершённого вращения
func (s *serv) Close() {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	s.stopWatchdog()
}

func (s *serv) snapshot() model.Snapshot {
	validation := Validate(s.prizes)

	prizes := make([]model.Prize, len(s.prizes))
	copy(prizes, s.prizes)

	snap := model.Snapshot{
		Step:        s.step,
		Prizes:      prizes,
		Validation:  validation,
		Wheel:       s.wheel,
		DrawEnabled: s.drawEnabled(validation),
		DrawLabel:   servModel.DrawLabelIdle,
		Display:     s.display,
	}
	if s.wheel.IsSpinning {
		snap.DrawLabel = servModel.DrawLabelSpinning
	}
	if s.pending != nil {
		pending := *s.pending
		snap.Pending = &pending
	}
	if s.lastResult != nil {
		result := *s.lastResult
		snap.LastResult = &result
	}
	return snap
}

func (s *serv) drawEnabled(validation model.Validation) bool {
	return s.step == model.StepGame && validation.Valid && !s.wheel.IsSpinning
}

func (s *serv) stopWatchdog() {
	if s.watchdog != nil {
		s.watchdog.Stop()
		s.watchdog = nil
	}
}

// cancelSpin бросает незавершённое вращение при смене конфигурации или шага
func (s *serv) cancelSpin() {
	if s.pending != nil {
		s.log.WithField("spin_id", s.pending.ID).Info("spin abandoned")
		s.metrics.Counter(metrics.MetricSpinsAbandonedCounter, nil).Inc()
		s.metrics.Gauge(metrics.MetricSpinningGauge, nil).Set(0)
	}
	s.stopWatchdog()
	s.pending = nil
	s.wheel.IsSpinning = false
}
