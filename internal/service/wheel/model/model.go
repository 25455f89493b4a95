package model

// Тексты статусов, которые видит пользователь
const (
	ValidMessage         = "Probability configuration is valid (100%)"
	InvalidMessageFormat = "Total probability must be 100%%, current total: %d%%"
	// OutOfRangeMessageFormat номера призов с 1
	OutOfRangeMessageFormat = "Each probability must be between 0%% and 100%%, check prizes: %s"
	ReadyMessage            = "Ready. Good luck!"
	WinnerMessageFormat     = "Congratulations! You won: [%s]"
	DefaultNameFormat       = "Prize %d"

	DrawLabelIdle     = "Start"
	DrawLabelSpinning = "Spinning..."
)

const (
	// TotalProbability Сумма вероятностей валидной конфигурации
	TotalProbability = 100
	// MinProbability, MaxProbability Границы вероятности одного приза
	MinProbability = 0
	MaxProbability = 100
	// SmallLabelThreshold Начиная с этого количества призов подписи уменьшаются
	SmallLabelThreshold = 8
	// FullTurn Полный оборот, градусы
	FullTurn = 360.0
)
