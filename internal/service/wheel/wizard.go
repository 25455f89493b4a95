package wheel

import (
	"fmt"

	"prize_wheel/internal/model"
	servModel "prize_wheel/internal/service/wheel/model"

	"github.com/sirupsen/logrus"
)

// Setup Шаг 1: выбор количества призов, переход к настройке с призами по умолчанию
func (s *serv) Setup(count int) (model.Snapshot, error) {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	if err := s.checkCount(count); err != nil {
		return s.snapshot(), err
	}

	s.cancelSpin()
	s.prizes = DefaultPrizes(count)
	s.step = model.StepConfig
	s.display = ""
	s.lastResult = nil

	return s.snapshot(), nil
}

// SetPrizeName Шаг 2: изменение названия приза
func (s *serv) SetPrizeName(index int, name string) (model.Snapshot, error) {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	if err := s.checkEditable(index); err != nil {
		return s.snapshot(), err
	}

	s.prizes[index].Name = name
	return s.snapshot(), nil
}

// SetPrizeProbability Шаг 2: изменение вероятности приза.
// Значение вне [0,100] принимается и отражается в валидации
func (s *serv) SetPrizeProbability(index int, probability int) (model.Snapshot, error) {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	if err := s.checkEditable(index); err != nil {
		return s.snapshot(), err
	}

	s.prizes[index].Probability = probability
	return s.snapshot(), nil
}

// Configure Устанавливает конфигурацию целиком. Валидная конфигурация сразу
// открывает колесо с нулевым поворотом, невалидная остаётся на шаге настройки
func (s *serv) Configure(prizes []model.Prize) (model.Snapshot, error) {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	if err := s.checkCount(len(prizes)); err != nil {
		return s.snapshot(), err
	}

	s.cancelSpin()
	s.prizes = make([]model.Prize, len(prizes))
	copy(s.prizes, prizes)

	validation := Validate(s.prizes)
	if !validation.Valid {
		s.step = model.StepConfig
		s.display = ""
		s.lastResult = nil
		s.log.WithField("total", validation.Total).Debug("configuration rejected")
		return s.snapshot(), nil
	}

	s.establish()
	return s.snapshot(), nil
}

// Confirm Переход с шага настройки к колесу
func (s *serv) Confirm() (model.Snapshot, error) {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	if s.step != model.StepConfig {
		return s.snapshot(), fmt.Errorf("confirm on step %s: %w", s.step, ErrWrongStep)
	}

	validation := Validate(s.prizes)
	if !validation.Valid {
		return s.snapshot(), fmt.Errorf("total %d: %w", validation.Total, ErrInvalidConfig)
	}

	s.establish()
	return s.snapshot(), nil
}

func (s *serv) Back() model.Snapshot {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	switch s.step {
	case model.StepConfig:
		s.step = model.StepSetup
	case model.StepGame:
		s.cancelSpin()
		s.step = model.StepConfig
	}
	return s.snapshot()
}

// Restart Возврат к первому шагу, текущая конфигурация теряется
func (s *serv) Restart() model.Snapshot {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	s.cancelSpin()
	s.step = model.StepSetup
	s.prizes = nil
	s.wheel = model.WheelState{}
	s.display = ""
	s.lastResult = nil

	return s.snapshot()
}

// establish Конфигурация установлена: колесо в исходном положении, статистика обнулена
func (s *serv) establish() {
	s.step = model.StepGame
	s.wheel = model.WheelState{}
	s.display = servModel.ReadyMessage
	s.lastResult = nil
	s.statsRepo.Reset(s.prizes)

	s.log.WithFields(logrus.Fields{
		"prizes": len(s.prizes),
	}).Info("wheel configured")
}

func (s *serv) checkCount(count int) error {
	if count < s.cfg.MinPrizes() || count > s.cfg.MaxPrizes() {
		return fmt.Errorf("%w: %d not in [%d, %d]", ErrPrizeCount, count, s.cfg.MinPrizes(), s.cfg.MaxPrizes())
	}
	return nil
}

func (s *serv) checkEditable(index int) error {
	if s.step != model.StepConfig {
		return fmt.Errorf("edit prize on step %s: %w", s.step, ErrWrongStep)
	}
	if index < 0 || index >= len(s.prizes) {
		return fmt.Errorf("%w: %d", ErrPrizeIndex, index)
	}
	return nil
}
