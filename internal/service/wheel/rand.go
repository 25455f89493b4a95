package wheel

import (
	"math/rand/v2"
)

// Random источник равномерных чисел в [0, 1)
type Random interface {
	Float64() float64
}

type globalRandom struct{}

func (globalRandom) Float64() float64 {
	return rand.Float64()
}

// DefaultRandom глобальный генератор math/rand/v2, безопасен для конкурентного использования
func DefaultRandom() Random {
	return globalRandom{}
}

type seededRandom struct {
	r *rand.Rand
}

// NewSeededRandom воспроизводимый генератор (симуляции, тесты).
// Не потокобезопасен: вызывается только под мьютексом контроллера
func NewSeededRandom(seed uint64) Random {
	return &seededRandom{r: rand.New(rand.NewPCG(seed, 0))}
}

func (s *seededRandom) Float64() float64 {
	return s.r.Float64()
}
