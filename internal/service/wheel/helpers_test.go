package wheel

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"prize_wheel/internal/logger"
	"prize_wheel/internal/model"
	"prize_wheel/internal/repository/draw_stats_repo"
)

type testConfig struct {
	duration time.Duration
	grace    time.Duration
	turns    int
	safe     float64
}

func (c testConfig) MinPrizes() int                 { return 3 }
func (c testConfig) MaxPrizes() int                 { return 10 }
func (c testConfig) DefaultPrizeCount() int         { return 10 }
func (c testConfig) SpinDuration() time.Duration    { return c.duration }
func (c testConfig) WatchdogGrace() time.Duration   { return c.grace }
func (c testConfig) BaselineTurns() int             { return c.turns }
func (c testConfig) JitterSafeFactor() float64      { return c.safe }
func (c testConfig) Easing() string                 { return "cubic-bezier(0.2, 0, 0.2, 1)" }
func (c testConfig) SectorColors() []string         { return []string{"#111", "#222", "#333"} }
func (c testConfig) StatsWindowSize() int           { return 500 }
func (c testConfig) MaxFrequencyDeviation() float64 { return 5 }

func defaultTestConfig() testConfig {
	return testConfig{duration: 6 * time.Second, turns: 10, safe: 0.8}
}

// scriptedRandom отдаёт значения по кругу и считает вызовы
type scriptedRandom struct {
	mu     sync.Mutex
	values []float64
	calls  int
}

func (r *scriptedRandom) Float64() float64 {
	r.mu.Lock()
	defer r.mu.Unlock()

	v := r.values[r.calls%len(r.values)]
	r.calls++
	return v
}

func (r *scriptedRandom) Calls() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.calls
}

func newTestService(t *testing.T, cfg testConfig, opts ...Option) *serv {
	t.Helper()

	seq := 0
	opts = append([]Option{WithIDGenerator(func() string {
		seq++
		return fmt.Sprintf("spin-%d", seq)
	})}, opts...)

	s := NewWheelService(cfg, draw_stats_repo.NewDrawStatsRepository(cfg.StatsWindowSize(), cfg.MaxFrequencyDeviation()), logger.Discard(), opts...).(*serv)
	t.Cleanup(s.Close)
	return s
}

func prizes(probs ...int) []model.Prize {
	out := make([]model.Prize, len(probs))
	for i, p := range probs {
		out[i] = model.Prize{Name: fmt.Sprintf("P%d", i), Probability: p}
	}
	return out
}
