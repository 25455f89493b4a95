package config

import (
	"time"

	"github.com/joho/godotenv"
)

func Load(path string) error {
	err := godotenv.Load(path)
	if err != nil {
		return err
	}
	return nil
}

type WheelConfig interface {
	MinPrizes() int
	MaxPrizes() int
	DefaultPrizeCount() int
	SpinDuration() time.Duration
	WatchdogGrace() time.Duration
	BaselineTurns() int
	JitterSafeFactor() float64
	Easing() string
	SectorColors() []string
	StatsWindowSize() int
	MaxFrequencyDeviation() float64
}

type HTTPConfig interface {
	Address() string
}

type LogConfig interface {
	Level() string
	Format() string
	// Output stderr, stdout, none или путь к файлу
	Output() string
	MaxSizeMB() int
	MaxBackups() int
	MaxAgeDays() int
	Compress() bool
}
