package draw_stats_repo

import (
	"testing"

	"prize_wheel/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func twoPrizes() []model.Prize {
	return []model.Prize{{Name: "A", Probability: 30}, {Name: "B", Probability: 70}}
}

func TestStatsRepo_RecordAndStats(t *testing.T) {
	repo := NewDrawStatsRepository(4, 5)
	repo.Reset(twoPrizes())

	for _, idx := range []int{0, 1, 1, 1, 0, 7, -1} {
		repo.Record(idx)
	}

	stats := repo.Stats()
	require.Len(t, stats.Prizes, 2)
	assert.Equal(t, 5, stats.TotalDraws)
	assert.Equal(t, 2, stats.Prizes[0].Hits)
	assert.Equal(t, 3, stats.Prizes[1].Hits)
	assert.InDelta(t, 0.4, stats.Prizes[0].Frequency, 1e-9)
	// Окно хранит последние 4 розыгрыша: 1, 1, 1, 0
	assert.InDelta(t, 0.25, stats.Prizes[0].WindowFrequency, 1e-9)
	assert.Equal(t, 30, stats.Prizes[0].Configured)
}

func TestStatsRepo_ResetClearsCounters(t *testing.T) {
	repo := NewDrawStatsRepository(10, 5)
	repo.Reset(twoPrizes())
	repo.Record(0)

	repo.Reset([]model.Prize{{Name: "X", Probability: 100}})
	stats := repo.Stats()
	assert.Equal(t, 0, stats.TotalDraws)
	require.Len(t, stats.Prizes, 1)
	assert.Equal(t, "X", stats.Prizes[0].Name)
	assert.Equal(t, 10, stats.WindowSize)
}

func TestStatsRepo_CheckDeviation(t *testing.T) {
	repo := NewDrawStatsRepository(500, 5)
	repo.Reset(twoPrizes())

	// Только приз B: частота A = 0% при заданных 30%
	for i := 0; i < minDrawsToCheck; i++ {
		repo.Record(1)
	}
	drifting := repo.CheckDeviation()
	require.Len(t, drifting, 2)
	assert.Equal(t, 0, drifting[0].Index)

	deviations := repo.Stats().Deviations
	require.Len(t, deviations, 2)
	assert.Equal(t, model.Deviation{Draw: minDrawsToCheck, Index: 0, Configured: 30, WindowFrequency: 0}, deviations[0])
	assert.Equal(t, 1, deviations[1].Index)
	assert.InDelta(t, 1.0, deviations[1].WindowFrequency, 1e-9)

	// Вне периода проверки ничего не возвращается
	repo.Record(1)
	assert.Nil(t, repo.CheckDeviation())
}

func TestStatsRepo_CheckDeviation_WithinTolerance(t *testing.T) {
	repo := NewDrawStatsRepository(500, 5)
	repo.Reset(twoPrizes())

	for i := 0; i < 200; i++ {
		if i%10 < 3 {
			repo.Record(0)
		} else {
			repo.Record(1)
		}
	}
	assert.Empty(t, repo.CheckDeviation())
}
