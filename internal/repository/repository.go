package repository

import (
	"prize_wheel/internal/model"
)

// DrawStatsRepository статистика розыгрышей текущей конфигурации (в памяти)
type DrawStatsRepository interface {
	Reset(prizes []model.Prize)
	Record(winnerIndex int)
	Stats() model.DrawStats
	CheckDeviation() []model.PrizeStat
}
