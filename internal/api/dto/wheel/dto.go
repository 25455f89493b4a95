package wheel

type SetupRequest struct {
	Count int `json:"count" validate:"required,min=1"` // Количество призов (границы задаёт конфигурация)
}

type UpdatePrizeRequest struct {
	Name        *string  `json:"name,omitempty"`        // Новое название
	Probability *Percent `json:"probability,omitempty"` // Новая вероятность, %
}

type ConfigureRequest struct {
	Prizes []Prize `json:"prizes" validate:"required,min=1,dive"`
}

type Prize struct {
	Name        string  `json:"name"`
	Probability Percent `json:"probability"`
}

type ValidationResponse struct {
	Total   int    `json:"total"`   // Сумма вероятностей
	Valid   bool   `json:"valid"`   // Сумма равна 100 и все значения в [0,100]
	Message string `json:"message"` // Статус для пользователя
	Invalid []int  `json:"invalid,omitempty"`
}

type WheelStateResponse struct {
	CurrentRotation float64 `json:"current_rotation"` // Накопленный поворот, градусы
	IsSpinning      bool    `json:"is_spinning"`
}

type SpinResponse struct {
	ID          string  `json:"id"`
	WinnerIndex int     `json:"winner_index"`
	TargetAngle float64 `json:"target_angle"` // Итоговый угол для transform: rotate(...)
	DurationMs  int64   `json:"duration_ms"`
	Easing      string  `json:"easing"`
	Transition  string  `json:"transition"` // Готовое CSS значение transition
}

type ResultResponse struct {
	SpinID      string `json:"spin_id"`
	WinnerIndex int    `json:"winner_index"`
	PrizeName   string `json:"prize_name"`
	Message     string `json:"message"`
}

type SectorResponse struct {
	Index       int     `json:"index"`
	Name        string  `json:"name"`
	Color       string  `json:"color"`
	StartAngle  float64 `json:"start_angle"`
	EndAngle    float64 `json:"end_angle"`
	CenterAngle float64 `json:"center_angle"`
	SmallLabel  bool    `json:"small_label"`
}

type StateResponse struct {
	Step        string             `json:"step"`
	Prizes      []Prize            `json:"prizes"`
	Validation  ValidationResponse `json:"validation"`
	Wheel       WheelStateResponse `json:"wheel"`
	DrawEnabled bool               `json:"draw_enabled"`
	DrawLabel   string             `json:"draw_label"`
	Display     string             `json:"display"`
	Pending     *SpinResponse      `json:"pending,omitempty"`
	LastResult  *ResultResponse    `json:"last_result,omitempty"`
}

type PrizeStatResponse struct {
	Index           int     `json:"index"`
	Name            string  `json:"name"`
	Configured      int     `json:"configured"`
	Hits            int     `json:"hits"`
	Frequency       float64 `json:"frequency"`
	WindowFrequency float64 `json:"window_frequency"`
}

type DeviationResponse struct {
	Draw            int     `json:"draw"` // Номер розыгрыша, на котором замечено отклонение
	Index           int     `json:"index"`
	Configured      int     `json:"configured"`
	WindowFrequency float64 `json:"window_frequency"`
}

type StatsResponse struct {
	TotalDraws int                 `json:"total_draws"`
	WindowSize int                 `json:"window_size"`
	Prizes     []PrizeStatResponse `json:"prizes"`
	Deviations []DeviationResponse `json:"deviations"`
}
