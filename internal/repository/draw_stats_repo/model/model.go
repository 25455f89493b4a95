package model

// Состояние статистики колеса
type WheelStats struct {
	TotalDraws int // Сколько всего розыгрышей с момента последней конфигурации

	Names      []string // Названия призов
	Configured []int    // Заданные вероятности, %
	Hits       []int    // Сколько раз выпал каждый приз

	Window     []int // Окно последних выигравших индексов
	WindowSize int   // Размер окна для анализа частот

	Deviations []DeviationLog // Лог обнаруженных отклонений
}

// Лог отклонения частоты приза от заданной вероятности
type DeviationLog struct {
	Draw       int
	Index      int
	Configured int
	WindowFreq float64
}
