package env

import (
	"errors"
	"fmt"
	"os"
	"slices"
	"time"

	"prize_wheel/internal/config"

	"gopkg.in/yaml.v3"
)

const (
	wheelConfigEnvName = "WHEEL_CONFIG"
	defaultWheelConfig = "config.yaml"
)

// Допустимые границы параметров анимации
const (
	minSpinDuration = 4 * time.Second
	maxSpinDuration = 6 * time.Second
	minTurns        = 5
	maxTurns        = 10
)

var defaultSectorColors = []string{
	"#fee2e2", "#dbeafe", "#d1fae5", "#fef3c7", "#ede9fe",
	"#ffedd5", "#e0e7ff", "#fce7f3", "#dcfce7", "#fae8ff",
}

type wheelYAML struct {
	Wheel struct {
		MinPrizes         int            `yaml:"min_prizes"`
		MaxPrizes         int            `yaml:"max_prizes"`
		DefaultPrizeCount int            `yaml:"default_prize_count"`
		SpinDuration      time.Duration  `yaml:"spin_duration"`
		WatchdogGrace     *time.Duration `yaml:"watchdog_grace"`
		BaselineTurns     int            `yaml:"baseline_turns"`
		JitterSafeFactor  float64        `yaml:"jitter_safe_factor"`
		Easing            string         `yaml:"easing"`
		SectorColors      []string       `yaml:"sector_colors"`
	} `yaml:"wheel"`
	Stats struct {
		WindowSize            int     `yaml:"window_size"`
		MaxFrequencyDeviation float64 `yaml:"max_frequency_deviation"`
	} `yaml:"stats"`
}

type wheelConfig struct {
	minPrizes         int
	maxPrizes         int
	defaultPrizeCount int
	spinDuration      time.Duration
	watchdogGrace     time.Duration
	baselineTurns     int
	jitterSafeFactor  float64
	easing            string
	sectorColors      []string
	windowSize        int
	maxDeviation      float64
}

// DefaultWheelConfig конфигурация колеса по умолчанию: 10 призов, 6 секунд, 10 оборотов
func DefaultWheelConfig() config.WheelConfig {
	return newDefaultWheelConfig()
}

func newDefaultWheelConfig() *wheelConfig {
	colors := make([]string, len(defaultSectorColors))
	copy(colors, defaultSectorColors)

	return &wheelConfig{
		minPrizes:         3,
		maxPrizes:         10,
		defaultPrizeCount: 10,
		spinDuration:      6 * time.Second,
		watchdogGrace:     2 * time.Second,
		baselineTurns:     10,
		jitterSafeFactor:  0.8,
		easing:            "cubic-bezier(0.2, 0, 0.2, 1)",
		sectorColors:      colors,
		windowSize:        500,
		maxDeviation:      5,
	}
}

// WheelConfigPath путь к YAML конфигурации колеса из окружения
func WheelConfigPath() string {
	path := os.Getenv(wheelConfigEnvName)
	if len(path) == 0 {
		return defaultWheelConfig
	}
	return path
}

// NewWheelConfigFromYAML читает конфигурацию колеса.
// Отсутствующий файл не ошибка: используются значения по умолчанию
func NewWheelConfigFromYAML(path string) (config.WheelConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return newDefaultWheelConfig(), nil
		}
		return nil, fmt.Errorf("read wheel config: %w", err)
	}

	return ParseWheelConfig(data)
}

// ParseWheelConfig незаданные поля берутся из значений по умолчанию
func ParseWheelConfig(data []byte) (config.WheelConfig, error) {
	var raw wheelYAML
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse wheel config: %w", err)
	}

	cfg := newDefaultWheelConfig()
	w := raw.Wheel
	if w.MinPrizes != 0 {
		cfg.minPrizes = w.MinPrizes
	}
	if w.MaxPrizes != 0 {
		cfg.maxPrizes = w.MaxPrizes
	}
	if w.DefaultPrizeCount != 0 {
		cfg.defaultPrizeCount = w.DefaultPrizeCount
	}
	if w.SpinDuration != 0 {
		cfg.spinDuration = w.SpinDuration
	}
	if w.WatchdogGrace != nil {
		// Ноль или отрицательное значение отключает сторожевой таймер
		cfg.watchdogGrace = max(*w.WatchdogGrace, 0)
	}
	if w.BaselineTurns != 0 {
		cfg.baselineTurns = w.BaselineTurns
	}
	if w.JitterSafeFactor != 0 {
		cfg.jitterSafeFactor = w.JitterSafeFactor
	}
	if w.Easing != "" {
		cfg.easing = w.Easing
	}
	if len(w.SectorColors) > 0 {
		cfg.sectorColors = slices.Clone(w.SectorColors)
	}
	if raw.Stats.WindowSize != 0 {
		cfg.windowSize = raw.Stats.WindowSize
	}
	if raw.Stats.MaxFrequencyDeviation != 0 {
		cfg.maxDeviation = raw.Stats.MaxFrequencyDeviation
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (cfg *wheelConfig) validate() error {
	if cfg.minPrizes < 1 || cfg.minPrizes > cfg.maxPrizes {
		return fmt.Errorf("invalid prize bounds [%d, %d]", cfg.minPrizes, cfg.maxPrizes)
	}
	if cfg.defaultPrizeCount < cfg.minPrizes || cfg.defaultPrizeCount > cfg.maxPrizes {
		return fmt.Errorf("default prize count %d out of [%d, %d]", cfg.defaultPrizeCount, cfg.minPrizes, cfg.maxPrizes)
	}
	if cfg.spinDuration < minSpinDuration || cfg.spinDuration > maxSpinDuration {
		return fmt.Errorf("spin duration %s out of [%s, %s]", cfg.spinDuration, minSpinDuration, maxSpinDuration)
	}
	if cfg.baselineTurns < minTurns || cfg.baselineTurns > maxTurns {
		return fmt.Errorf("baseline turns %d out of [%d, %d]", cfg.baselineTurns, minTurns, maxTurns)
	}
	// При коэффициенте 1 и больше колесо может остановиться на границе сектора
	if cfg.jitterSafeFactor <= 0 || cfg.jitterSafeFactor >= 1 {
		return fmt.Errorf("jitter safe factor %v must be in (0, 1)", cfg.jitterSafeFactor)
	}
	if cfg.windowSize <= 0 {
		return errors.New("stats window size must be positive")
	}
	if cfg.maxDeviation <= 0 {
		return errors.New("max frequency deviation must be positive")
	}
	return nil
}

func (cfg *wheelConfig) MinPrizes() int {
	return cfg.minPrizes
}

func (cfg *wheelConfig) MaxPrizes() int {
	return cfg.maxPrizes
}

func (cfg *wheelConfig) DefaultPrizeCount() int {
	return cfg.defaultPrizeCount
}

func (cfg *wheelConfig) SpinDuration() time.Duration {
	return cfg.spinDuration
}

func (cfg *wheelConfig) WatchdogGrace() time.Duration {
	return cfg.watchdogGrace
}

func (cfg *wheelConfig) BaselineTurns() int {
	return cfg.baselineTurns
}

func (cfg *wheelConfig) JitterSafeFactor() float64 {
	return cfg.jitterSafeFactor
}

func (cfg *wheelConfig) Easing() string {
	return cfg.easing
}

func (cfg *wheelConfig) SectorColors() []string {
	return slices.Clone(cfg.sectorColors)
}

func (cfg *wheelConfig) StatsWindowSize() int {
	return cfg.windowSize
}

func (cfg *wheelConfig) MaxFrequencyDeviation() float64 {
	return cfg.maxDeviation
}
