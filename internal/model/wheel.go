package model

import "time"

// Step шаг мастера настройки колеса
type Step int

const (
	StepSetup Step = iota + 1
	StepConfig
	StepGame
)

func (s Step) String() string {
	switch s {
	case StepSetup:
		return "setup"
	case StepConfig:
		return "config"
	case StepGame:
		return "game"
	default:
		return "unknown"
	}
}

type Prize struct {
	Name        string
	Probability int
}

// Validation результат проверки конфигурации призов
type Validation struct {
	Total   int
	Valid   bool
	Message string
	// Invalid индексы призов с вероятностью вне [0,100]
	Invalid []int
}

// WheelState CurrentRotation накапливается и никогда не берётся по модулю 360
type WheelState struct {
	CurrentRotation float64
	IsSpinning      bool
}

// Spin инструкция для слоя отрисовки
type Spin struct {
	ID          string
	WinnerIndex int
	TargetAngle float64
	Duration    time.Duration
	Easing      string
	StartedAt   time.Time
}

type Result struct {
	SpinID      string
	WinnerIndex int
	PrizeName   string
	Message     string
}

type Sector struct {
	Index       int
	Name        string
	Color       string
	StartAngle  float64
	EndAngle    float64
	CenterAngle float64
	SmallLabel  bool
}

// Snapshot полное состояние контроллера для клиента
type Snapshot struct {
	Step        Step
	Prizes      []Prize
	Validation  Validation
	Wheel       WheelState
	DrawEnabled bool
	DrawLabel   string
	Display     string
	Pending     *Spin
	LastResult  *Result
}

type PrizeStat struct {
	Index           int
	Name            string
	Configured      int
	Hits            int
	Frequency       float64
	WindowFrequency float64
}

// Deviation зафиксированный уход частоты приза в окне от заданной вероятности
type Deviation struct {
	Draw            int
	Index           int
	Configured      int
	WindowFrequency float64
}

type DrawStats struct {
	TotalDraws int
	WindowSize int
	Prizes     []PrizeStat
	// Deviations последние отклонения, от старых к новым
	Deviations []Deviation
}
