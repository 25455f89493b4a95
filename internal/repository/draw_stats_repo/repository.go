package draw_stats_repo

import (
	"math"
	"sync"

	"prize_wheel/internal/model"
	repoModel "prize_wheel/internal/repository/draw_stats_repo/model"
)

const (
	// periodDrawsToCheck Периодичность проверки отклонений (каждые N розыгрышей)
	periodDrawsToCheck = 25
	// minDrawsToCheck Минимальное заполнение окна, после которого частоты имеют смысл
	minDrawsToCheck = 100
	// maxDeviationLogs Сколько последних отклонений храним
	maxDeviationLogs = 100
)

// Реализация репозитория статистики розыгрышей
type StatsRepo struct {
	mtx          sync.RWMutex
	state        repoModel.WheelStats
	maxDeviation float64 // процентные пункты
}

// NewDrawStatsRepository Конструктор репозитория с пустым состоянием
func NewDrawStatsRepository(windowSize int, maxDeviation float64) *StatsRepo {
	return &StatsRepo{
		state: repoModel.WheelStats{
			Window:     make([]int, 0, windowSize),
			WindowSize: windowSize,
			Deviations: make([]repoModel.DeviationLog, 0),
		},
		maxDeviation: maxDeviation,
	}
}

// Reset Сбрасывает статистику под новую конфигурацию призов
func (r *StatsRepo) Reset(prizes []model.Prize) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	names := make([]string, len(prizes))
	configured := make([]int, len(prizes))
	for i, p := range prizes {
		names[i] = p.Name
		configured[i] = p.Probability
	}

	r.state = repoModel.WheelStats{
		Names:      names,
		Configured: configured,
		Hits:       make([]int, len(prizes)),
		Window:     make([]int, 0, r.state.WindowSize),
		WindowSize: r.state.WindowSize,
		Deviations: make([]repoModel.DeviationLog, 0),
	}
}

// Record Учитывает выигравший индекс
func (r *StatsRepo) Record(winnerIndex int) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	if winnerIndex < 0 || winnerIndex >= len(r.state.Hits) {
		return
	}

	r.state.TotalDraws++
	r.state.Hits[winnerIndex]++

	// Поддерживаем размер окна
	r.state.Window = append(r.state.Window, winnerIndex)
	if len(r.state.Window) > r.state.WindowSize {
		r.state.Window = r.state.Window[1:]
	}
}

// Stats Возвращает копию статистики
func (r *StatsRepo) Stats() model.DrawStats {
	r.mtx.RLock()
	defer r.mtx.RUnlock()

	windowHits := r.windowHits()
	stats := model.DrawStats{
		TotalDraws: r.state.TotalDraws,
		WindowSize: r.state.WindowSize,
		Prizes:     make([]model.PrizeStat, len(r.state.Hits)),
	}
	for i := range r.state.Hits {
		stats.Prizes[i] = r.prizeStat(i, windowHits)
	}
	stats.Deviations = make([]model.Deviation, len(r.state.Deviations))
	for i, d := range r.state.Deviations {
		stats.Deviations[i] = model.Deviation{
			Draw:            d.Draw,
			Index:           d.Index,
			Configured:      d.Configured,
			WindowFrequency: d.WindowFreq,
		}
	}
	return stats
}

// CheckDeviation Возвращает призы, у которых частота в окне ушла от заданной
// вероятности больше допустимого. Проверка выполняется раз в periodDrawsToCheck розыгрышей
func (r *StatsRepo) CheckDeviation() []model.PrizeStat {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	if r.state.TotalDraws == 0 || r.state.TotalDraws%periodDrawsToCheck != 0 {
		return nil
	}
	if len(r.state.Window) < minDrawsToCheck {
		return nil
	}

	windowHits := r.windowHits()
	var drifting []model.PrizeStat
	for i := range r.state.Hits {
		stat := r.prizeStat(i, windowHits)
		if math.Abs(stat.WindowFrequency*100-float64(stat.Configured)) <= r.maxDeviation {
			continue
		}
		drifting = append(drifting, stat)
		r.state.Deviations = append(r.state.Deviations, repoModel.DeviationLog{
			Draw:       r.state.TotalDraws,
			Index:      i,
			Configured: stat.Configured,
			WindowFreq: stat.WindowFrequency,
		})
	}

	if len(r.state.Deviations) > maxDeviationLogs {
		r.state.Deviations = r.state.Deviations[len(r.state.Deviations)-maxDeviationLogs:]
	}
	return drifting
}

func (r *StatsRepo) windowHits() []int {
	hits := make([]int, len(r.state.Hits))
	for _, idx := range r.state.Window {
		hits[idx]++
	}
	return hits
}

func (r *StatsRepo) prizeStat(i int, windowHits []int) model.PrizeStat {
	stat := model.PrizeStat{
		Index:      i,
		Name:       r.state.Names[i],
		Configured: r.state.Configured[i],
		Hits:       r.state.Hits[i],
	}
	if r.state.TotalDraws > 0 {
		stat.Frequency = float64(stat.Hits) / float64(r.state.TotalDraws)
	}
	if len(r.state.Window) > 0 {
		stat.WindowFrequency = float64(windowHits[i]) / float64(len(r.state.Window))
	}
	return stat
}
