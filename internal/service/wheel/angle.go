package wheel

import (
	"math"

	servModel "prize_wheel/internal/service/wheel/model"
)

// Раскладка секторов: центр сектора i находится на i*sectorAngle,
// сектор занимает [центр - половина, центр + половина). Сектор 0 центрирован на указателе сверху

// SectorAngle ширина сектора в градусах
func SectorAngle(n int) float64 {
	return servModel.FullTurn / float64(n)
}

func SectorCenter(index, n int) float64 {
	return float64(index) * SectorAngle(n)
}

// TargetAdjustment поворот по часовой стрелке, который приводит центр сектора к указателю
func TargetAdjustment(index, n int) float64 {
	return normalizeAngle(servModel.FullTurn - SectorCenter(index, n))
}

// Jitter смещение внутри безопасной зоны сектора: (-safe, +safe), safe = половина сектора * safeFactor
func Jitter(n int, safeFactor, u float64) float64 {
	safeZone := SectorAngle(n) / 2 * safeFactor
	return u*safeZone*2 - safeZone
}

// TargetAngle итоговый накопленный угол: current + turns*360 + diff + jitter.
// Результат всегда больше current: колесо крутится только вперёд
func TargetAngle(index, n int, current float64, turns int, jitter float64) float64 {
	currentMod := normalizeAngle(current)

	diff := TargetAdjustment(index, n) - currentMod
	if diff < 0 {
		diff += servModel.FullTurn
	}

	baseRotation := float64(turns) * servModel.FullTurn
	return current + baseRotation + diff + jitter
}

// normalizeAngle приводит угол к [0, 360)
func normalizeAngle(angle float64) float64 {
	a := math.Mod(angle, servModel.FullTurn)
	if a < 0 {
		a += servModel.FullTurn
	}
	if a >= servModel.FullTurn {
		a = 0
	}
	return a
}
